package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/formulary/internal/api/middleware"
	"github.com/GriffinCanCode/formulary/internal/batch"
	"github.com/GriffinCanCode/formulary/internal/domain/service"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/logging"
	"github.com/GriffinCanCode/formulary/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
	"github.com/GriffinCanCode/formulary/internal/shared/utils"
)

// defaultDiscoverLimit applies when a discovery request names no limit
const defaultDiscoverLimit = 5

// Info identifies the running service
type Info struct {
	Name    string
	Version string
}

// Handlers contains all HTTP handlers
type Handlers struct {
	registry         *service.Registry
	metrics          *HandlerMetrics
	log              *logging.Logger
	info             Info
	batchConcurrency int
}

// Option configures Handlers
type Option func(*Handlers)

// WithBatchConcurrency bounds the calls a batch request runs at once
func WithBatchConcurrency(n int) Option {
	return func(h *Handlers) { h.batchConcurrency = n }
}

// NewHandlers creates a new handler set; metrics and log may be nil
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics, log *logging.Logger, info Info, opts ...Option) *Handlers {
	h := &Handlers{
		registry:         registry,
		metrics:          NewHandlerMetrics(metrics),
		log:              logging.OrNop(log).Named("api"),
		info:             info,
		batchConcurrency: 4,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func abort(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, types.ErrorResponse{Error: err.Error()})
}

// statusFor maps registry errors onto HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrServiceNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidToolID), errors.Is(err, utils.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bindStatus distinguishes oversized bodies from malformed ones
func bindStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// callContext carries the request ID and client address into the registry
func callContext(c *gin.Context) *types.Context {
	appCtx := &types.Context{}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		appCtx.RequestID = &reqID
	}
	if ip := c.ClientIP(); ip != "" {
		appCtx.ClientID = &ip
	}
	return appCtx
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": h.info.Name,
		"version": h.info.Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	body := gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	}
	if snap, ok := h.metrics.Snapshot(); ok {
		body["metrics"] = snap
	}
	c.JSON(http.StatusOK, body)
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")
	if err := utils.ValidateString(categoryStr, "category", 1, utils.MaxIDLength, false); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	services := h.registry.List(category)
	if services == nil {
		services = []types.Service{}
	}
	c.JSON(http.StatusOK, types.ServicesResponse{
		Services: services,
		Stats:    h.registry.Stats(),
	})
}

// GetService returns a single service definition
func (h *Handlers) GetService(c *gin.Context) {
	serviceID := c.Param("id")
	provider, ok := h.registry.Get(serviceID)
	if !ok {
		abort(c, http.StatusNotFound, service.ErrServiceNotFound)
		return
	}
	c.JSON(http.StatusOK, provider.Definition())
}

// ListTools lists every tool of every service
func (h *Handlers) ListTools(c *gin.Context) {
	tools := h.registry.Tools()
	if tools == nil {
		tools = []types.Tool{}
	}
	c.JSON(http.StatusOK, types.ToolsResponse{Tools: tools})
}

// DiscoverServices ranks services and tools against a free-text query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, bindStatus(err), err)
		return
	}
	if err := utils.ValidateQuery(req.Query); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultDiscoverLimit
	}
	if limit > utils.MaxDiscoveryHit {
		limit = utils.MaxDiscoveryHit
	}

	c.JSON(http.StatusOK, types.DiscoverResponse{
		Query:    req.Query,
		Services: h.registry.Discover(req.Query, limit),
		Tools:    h.registry.DiscoverTools(req.Query, limit),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, bindStatus(err), err)
		return
	}
	if err := utils.ValidateExecuteRequest(req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, callContext(c))
	if err != nil {
		abort(c, statusFor(err), err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExecuteBatch runs a batch file and returns its report
func (h *Handlers) ExecuteBatch(c *gin.Context) {
	outFormat := batch.FormatJSON
	if q := c.Query("format"); q != "" {
		f, err := batch.ParseFormat(q)
		if err != nil {
			abort(c, http.StatusBadRequest, err)
			return
		}
		outFormat = f
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abort(c, bindStatus(err), err)
		return
	}
	file, err := batch.Decode(body, batch.FormatFromContentType(c.ContentType()))
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	done := h.metrics.Track("batch")
	runner := batch.NewRunner(h.registry,
		batch.WithLogger(h.log),
		batch.WithConcurrency(h.batchConcurrency),
		batch.WithClientID(c.ClientIP()),
	)
	report, err := runner.Run(c.Request.Context(), file)
	if err != nil {
		done(monitoring.StatusError)
		h.log.Warn("batch aborted", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		abort(c, http.StatusServiceUnavailable, err)
		return
	}
	if report.OK() {
		done(monitoring.StatusSuccess)
	} else {
		done(monitoring.StatusFailure)
	}

	// Encode before writing so a report that cannot be rendered is a 500,
	// never a 200 with a truncated body.
	out, err := batch.Encode(report, outFormat)
	if err != nil {
		abort(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, outFormat.ContentType(), out)
}
