package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/formulary/internal/infrastructure/logging"
	"github.com/GriffinCanCode/formulary/internal/shared/types"
)

var (
	ErrEmptyServiceID   = errors.New("service ID cannot be empty")
	ErrInvalidToolID    = errors.New("invalid tool ID format")
	ErrServiceNotFound  = errors.New("service not found")
	ErrDuplicateService = errors.New("service already registered")
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
	log      *logging.Logger
	observer Observer
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Observer receives one callback per executed tool
type Observer interface {
	ObserveExecution(toolID string, result *types.Result, err error, duration time.Duration)
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the registry logger
func WithLogger(log *logging.Logger) Option {
	return func(r *Registry) { r.log = logging.OrNop(log).Named("registry") }
}

// WithObserver reports every execution to o
func WithObserver(o Observer) Option {
	return func(r *Registry) { r.observer = o }
}

// NewRegistry creates a new service registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{log: logging.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return ErrEmptyServiceID
	}

	if _, loaded := r.services.LoadOrStore(def.ID, provider); loaded {
		return fmt.Errorf("%w: %s", ErrDuplicateService, def.ID)
	}
	r.log.Info("service registered", zap.String("service", def.ID), zap.Int("tools", len(def.Tools)))
	return nil
}

// Unregister removes a service provider
func (r *Registry) Unregister(serviceID string) {
	r.services.Delete(serviceID)
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	val, ok := r.services.Load(serviceID)
	if !ok {
		return nil, false
	}
	return val.(Provider), true
}

// List returns all registered services ordered by ID
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
		return true
	})
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services
}

// Tools returns every tool of every registered service
func (r *Registry) Tools() []types.Tool {
	var tools []types.Tool
	for _, def := range r.List(nil) {
		tools = append(tools, def.Tools...)
	}
	return tools
}

// Discover finds relevant services for a given intent
func (r *Registry) Discover(intent string, limit int) []types.Service {
	type scoredService struct {
		service types.Service
		score   float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredService

	for _, def := range r.List(nil) {
		score := serviceRelevance(intentLower, def)
		if score > 0 {
			results = append(results, scoredService{service: def, score: score})
		}
	}

	// Sort by score descending
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}
	output := make([]types.Service, 0, limit)
	for i := 0; i < limit; i++ {
		output = append(output, results[i].service)
	}
	return output
}

// DiscoverTools ranks individual tools against an intent
func (r *Registry) DiscoverTools(intent string, limit int) []types.Tool {
	type scoredTool struct {
		tool  types.Tool
		score float64
	}

	intentLower := strings.ToLower(intent)
	var results []scoredTool
	for _, tool := range r.Tools() {
		if score := toolRelevance(intentLower, tool); score > 0 {
			results = append(results, scoredTool{tool: tool, score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}
	output := make([]types.Tool, 0, limit)
	for i := 0; i < limit; i++ {
		output = append(output, results[i].tool)
	}
	return output
}

// Execute runs a service tool. Formula failures come back as unsuccessful
// results; only malformed IDs and unknown services are errors.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return &types.Result{
			Success: false,
			Error:   stringPtr(ErrInvalidToolID.Error()),
		}, fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}

	serviceID := parts[0]
	provider, ok := r.Get(serviceID)
	if !ok {
		return &types.Result{
			Success: false,
			Error:   stringPtr(fmt.Sprintf("service not found: %s", serviceID)),
		}, fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
	}

	start := time.Now()
	result, err := provider.Execute(ctx, toolID, params, appCtx)
	duration := time.Since(start)

	if r.observer != nil {
		r.observer.ObserveExecution(toolID, result, err, duration)
	}

	fields := []zap.Field{zap.String("tool", toolID), zap.Duration("duration", duration)}
	if appCtx != nil && appCtx.RequestID != nil {
		fields = append(fields, zap.String("request_id", *appCtx.RequestID))
	}
	switch {
	case err != nil:
		r.log.Error("tool execution failed", append(fields, zap.Error(err))...)
	case result != nil && !result.Success:
		if kind, ok := result.Data["error_kind"]; ok {
			fields = append(fields, zap.Any("error_kind", kind))
		}
		r.log.Debug("tool returned failure", fields...)
	default:
		r.log.Debug("tool executed", fields...)
	}

	return result, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	for _, def := range r.List(nil) {
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
	}

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

func serviceRelevance(intent string, service types.Service) float64 {
	score := 0.0

	// Check service name and ID
	if strings.Contains(intent, service.ID) || strings.Contains(intent, strings.ToLower(service.Name)) {
		score += 10.0
	}

	// Check description words
	for _, word := range strings.Fields(strings.ToLower(service.Description)) {
		word = strings.Trim(word, "(),")
		if len(word) > 2 && strings.Contains(intent, word) {
			score += 5.0
		}
	}

	// Check capabilities
	for _, capability := range service.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(capability), "_", " ")
		if strings.Contains(intent, capClean) {
			score += 3.0
		}
	}

	// Check category
	if strings.Contains(intent, string(service.Category)) {
		score += 2.0
	}

	return score
}

func toolRelevance(intent string, tool types.Tool) float64 {
	score := 0.0

	id := strings.ToLower(tool.ID)
	name := strings.ToLower(tool.Name)
	if strings.Contains(intent, id) || strings.Contains(intent, name) {
		score += 10.0
	}

	for _, word := range strings.Fields(intent) {
		if len(word) < 3 {
			continue
		}
		if strings.Contains(id, word) || strings.Contains(name, word) {
			score += 5.0
		}
		if strings.Contains(strings.ToLower(tool.Description), word) {
			score += 2.0
		}
	}

	return score
}

func stringPtr(s string) *string {
	return &s
}
