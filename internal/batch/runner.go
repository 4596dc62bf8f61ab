package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GriffinCanCode/formulary/internal/infrastructure/logging"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
	"github.com/GriffinCanCode/formulary/internal/shared/utils"
)

// Executor runs one tool. The service registry and the remote client both
// satisfy it.
type Executor interface {
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Runner evaluates batch files
type Runner struct {
	exec        Executor
	log         *logging.Logger
	concurrency int
	clientID    string
	now         func() time.Time
}

// Option configures a Runner
type Option func(*Runner)

// WithLogger sets the runner logger
func WithLogger(log *logging.Logger) Option {
	return func(r *Runner) { r.log = logging.OrNop(log).Named("batch") }
}

// WithConcurrency runs up to n calls at once; values below one mean one
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n < 1 {
			n = 1
		}
		r.concurrency = n
	}
}

// WithClientID tags every call's context with id
func WithClientID(id string) Option {
	return func(r *Runner) { r.clientID = id }
}

// NewRunner creates a runner over exec
func NewRunner(exec Executor, opts ...Option) *Runner {
	r := &Runner{
		exec:        exec,
		log:         logging.Nop(),
		concurrency: 1,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every call and reports in call order. It returns an error
// for an invalid file, or the context's error when the run was cut short;
// in that case the report still covers every call, the skipped ones failed.
func (r *Runner) Run(ctx context.Context, file *File) (*Report, error) {
	if file == nil {
		return nil, fmt.Errorf("%w: nil batch", utils.ErrInvalidRequest)
	}
	if err := utils.ValidateBatch(file.Requests()); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Name:      file.Name,
		StartedAt: r.now().UTC(),
		Outcomes:  make([]Outcome, len(file.Calls)),
	}
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i := range file.Calls {
		g.Go(func() error {
			report.Outcomes[i] = r.runCall(ctx, report.RunID, i, file.Calls[i])
			return nil
		})
	}
	_ = g.Wait()

	report.DurationMs = milliseconds(time.Since(start))
	report.tally()

	r.log.Info("batch finished",
		zap.String("run_id", report.RunID),
		zap.String("name", report.Name),
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
		zap.Float64("duration_ms", report.DurationMs),
	)

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

func (r *Runner) runCall(ctx context.Context, runID string, index int, call Call) Outcome {
	out := Outcome{Index: index, Name: call.Name, ToolID: call.ToolID}
	if err := ctx.Err(); err != nil {
		out.Error = err.Error()
		return out
	}

	reqID := fmt.Sprintf("%s-%d", runID, index)
	appCtx := &types.Context{RequestID: &reqID}
	if r.clientID != "" {
		clientID := r.clientID
		appCtx.ClientID = &clientID
	}

	start := time.Now()
	result, err := r.exec.Execute(ctx, call.ToolID, call.Params, appCtx)
	out.DurationMs = milliseconds(time.Since(start))

	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Result = result
	out.Mismatches = check(call.Expect, result)
	out.Passed = len(out.Mismatches) == 0

	if !out.Passed {
		r.log.Debug("call failed expectation",
			zap.String("run_id", runID),
			zap.Int("index", index),
			zap.String("tool", call.ToolID),
			zap.Strings("mismatches", out.Mismatches),
		)
	}
	return out
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
