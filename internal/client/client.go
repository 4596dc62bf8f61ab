package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/formulary/internal/api/middleware"
	"github.com/GriffinCanCode/formulary/internal/batch"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/logging"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

// Config tunes transport behaviour
type Config struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// RequestsPerSecond paces calls; zero means unlimited
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
	Breaker           resilience.Settings
	Logger            *logging.Logger
}

// DefaultConfig returns settings for talking to a nearby server
func DefaultConfig() Config {
	return Config{
		Timeout:      30 * time.Second,
		RetryMax:     3,
		RetryWaitMin: 200 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		UserAgent:    "formulactl/1.0",
		Breaker:      resilience.DefaultSettings(),
	}
}

// Client talks to a formulary server
type Client struct {
	Resty   *resty.Client
	Limiter *rate.Limiter
	Breaker *resilience.Breaker
	log     *logging.Logger
}

// New creates a client for the server at baseURL
func New(baseURL string, cfg Config) *Client {
	log := logging.OrNop(cfg.Logger).Named("client")

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = leveledLogger{log}
	// Hand the last response back so its status becomes an APIError
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	httpClient := retryClient.StandardClient()
	httpClient.Timeout = cfg.Timeout

	restyClient := resty.NewWithClient(httpClient).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	limit := rate.Inf
	burst := cfg.Burst
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
	}

	settings := cfg.Breaker
	if settings.IsSuccessful == nil {
		settings.IsSuccessful = healthy
	}

	return &Client{
		Resty:   restyClient,
		Limiter: rate.NewLimiter(limit, burst),
		Breaker: resilience.New("formulary-remote", settings),
		log:     log,
	}
}

// BreakerState returns the current circuit breaker state
func (c *Client) BreakerState() resilience.State {
	return c.Breaker.State()
}

// do paces, guards and sends one request. out receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, headers map[string]string) error {
	if err := c.Limiter.Wait(ctx); err != nil {
		return err
	}

	return c.Breaker.Execute(func() error {
		var apiErr types.ErrorResponse
		req := c.Resty.R().
			SetContext(ctx).
			SetHeaders(headers).
			SetError(&apiErr)
		if out != nil {
			req.SetResult(out)
		}
		if body != nil {
			req.SetHeader("Content-Type", "application/json").SetBody(body)
		}

		resp, err := req.Execute(method, path)
		if err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
		if resp.IsError() {
			return &APIError{StatusCode: resp.StatusCode(), Message: apiErr.Error}
		}
		if resp.StatusCode() != http.StatusOK {
			return fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedResponse, method, path, resp.StatusCode())
		}
		return nil
	})
}

// Health returns the server's health document
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

// Services lists services, optionally filtered by category
func (c *Client) Services(ctx context.Context, category string) (*types.ServicesResponse, error) {
	path := "/services"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out types.ServicesResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Service fetches one service definition
func (c *Client) Service(ctx context.Context, id string) (*types.Service, error) {
	var out types.Service
	if err := c.do(ctx, http.MethodGet, "/services/"+id, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tools lists every tool the server offers
func (c *Client) Tools(ctx context.Context) ([]types.Tool, error) {
	var out types.ToolsResponse
	if err := c.do(ctx, http.MethodGet, "/tools", nil, &out, nil); err != nil {
		return nil, err
	}
	return out.Tools, nil
}

// Discover ranks services and tools against a query
func (c *Client) Discover(ctx context.Context, query string, limit int) (*types.DiscoverResponse, error) {
	var out types.DiscoverResponse
	req := types.DiscoverRequest{Query: query, Limit: limit}
	if err := c.do(ctx, http.MethodPost, "/services/discover", req, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Execute runs one tool remotely. Like the registry, formula failures come
// back as unsuccessful results, not errors.
func (c *Client) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	var headers map[string]string
	if appCtx != nil && appCtx.RequestID != nil {
		headers = map[string]string{middleware.RequestIDHeader: *appCtx.RequestID}
	}

	var out types.Result
	req := types.ExecuteRequest{ToolID: toolID, Params: params}
	if err := c.do(ctx, http.MethodPost, "/services/execute", req, &out, headers); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunBatch sends a whole batch file and returns the server's report
func (c *Client) RunBatch(ctx context.Context, file *batch.File) (*batch.Report, error) {
	if file == nil {
		return nil, errors.New("nil batch")
	}
	var out batch.Report
	if err := c.do(ctx, http.MethodPost, "/services/batch", file, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
