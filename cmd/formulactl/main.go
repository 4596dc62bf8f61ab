package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/GriffinCanCode/formulary/internal/batch"
	"github.com/GriffinCanCode/formulary/internal/client"
	"github.com/GriffinCanCode/formulary/internal/domain/service"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/logging"
	mathProvider "github.com/GriffinCanCode/formulary/internal/providers/math"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	exitRuntime = 3
)

const usage = `usage: formulactl <command> [flags]

commands:
  tools     list available tools
  discover  rank tools against a query
  run       evaluate a batch file
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// catalogue is what tools and discover need from either backend
type catalogue interface {
	batch.Executor
	tools(ctx context.Context, category string) ([]types.Tool, error)
	discover(ctx context.Context, query string, limit int) ([]types.Tool, error)
}

type common struct {
	remote  string
	verbose bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.remote, "remote", "", "base URL of a formulary server")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging to stderr")
}

func (c *common) logger(stderr io.Writer) *logging.Logger {
	if !c.verbose {
		return logging.Nop()
	}
	log, err := logging.New(logging.Config{Level: "debug", Format: "console", OutputPaths: []string{"stderr"}})
	if err != nil {
		fmt.Fprintln(stderr, "formulactl:", err)
		return logging.Nop()
	}
	return log
}

func (c *common) backend(log *logging.Logger) (catalogue, error) {
	if c.remote != "" {
		cfg := client.DefaultConfig()
		cfg.Logger = log
		return remoteBackend{client.New(c.remote, cfg)}, nil
	}
	registry := service.NewRegistry(service.WithLogger(log))
	if err := registry.Register(mathProvider.NewProvider()); err != nil {
		return nil, err
	}
	return localBackend{registry}, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "tools":
		return runTools(ctx, args[1:], stdout, stderr)
	case "discover":
		return runDiscover(ctx, args[1:], stdout, stderr)
	case "run":
		return runBatch(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "formulactl: unknown command %q\n%s", args[0], usage)
		return exitUsage
	}
}

func runTools(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tools", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	category := fs.String("category", "", "only tools of services in this category")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log := c.logger(stderr)
	defer func() { _ = log.Sync() }()
	backend, err := c.backend(log)
	if err != nil {
		return fail(stderr, err)
	}
	tools, err := backend.tools(ctx, *category)
	if err != nil {
		return fail(stderr, err)
	}
	printTools(stdout, tools)
	return exitOK
}

func runDiscover(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("discover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	limit := fs.Int("limit", 5, "maximum tools to return")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "formulactl: discover needs a query")
		return exitUsage
	}

	log := c.logger(stderr)
	defer func() { _ = log.Sync() }()
	backend, err := c.backend(log)
	if err != nil {
		return fail(stderr, err)
	}
	tools, err := backend.discover(ctx, strings.Join(fs.Args(), " "), *limit)
	if err != nil {
		return fail(stderr, err)
	}
	printTools(stdout, tools)
	return exitOK
}

func runBatch(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var c common
	c.register(fs)
	format := fs.String("format", "json", "report format: json, yaml or toml")
	concurrency := fs.Int("concurrency", 4, "calls evaluated at once")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "formulactl: run needs exactly one batch file")
		return exitUsage
	}
	outFormat, err := batch.ParseFormat(*format)
	if err != nil {
		fmt.Fprintln(stderr, "formulactl:", err)
		return exitUsage
	}

	path := fs.Arg(0)
	inFormat, err := batch.FormatFromPath(path)
	if err != nil {
		return fail(stderr, err)
	}
	file, err := batch.Load(path, inFormat)
	if err != nil {
		return fail(stderr, err)
	}

	log := c.logger(stderr)
	defer func() { _ = log.Sync() }()
	backend, err := c.backend(log)
	if err != nil {
		return fail(stderr, err)
	}

	report, err := batch.NewRunner(backend,
		batch.WithLogger(log),
		batch.WithConcurrency(*concurrency),
	).Run(ctx, file)
	if report == nil {
		return fail(stderr, err)
	}

	out, encErr := batch.Encode(report, outFormat)
	if encErr != nil {
		return fail(stderr, encErr)
	}
	if _, werr := stdout.Write(out); werr != nil {
		return fail(stderr, werr)
	}
	if err != nil {
		return fail(stderr, err)
	}

	fmt.Fprintf(stderr, "%d/%d passed\n", report.Passed, report.Total)
	if !report.OK() {
		return exitFailed
	}
	return exitOK
}

func printTools(w io.Writer, tools []types.Tool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range tools {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Name, t.Description)
	}
	_ = tw.Flush()
}

func fail(stderr io.Writer, err error) int {
	if err == nil {
		err = errors.New("unknown error")
	}
	fmt.Fprintln(stderr, "formulactl:", err)
	return exitRuntime
}
