package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/numericore/mathsvc/internal/types"
)

// Registry manages service discovery and execution
type Registry struct {
	services sync.Map
}

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// NewRegistry creates a new service registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a service provider
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}

	r.services.Store(def.ID, provider)
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

// List returns all registered services
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
	return services
}

// Discover finds relevant services for a given query
func (r *Registry) Discover(query string, limit int) []types.Service {
	type scored struct {
		service types.Service
		score   float64
	}

	queryLower := strings.ToLower(query)
	var results []scored

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		if score := r.calculateRelevance(queryLower, def); score > 0 {
			results = append(results, scored{service: def, score: score})
		}
		return true
	})

	sort.Slice(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	output := make([]types.Service, 0, limit)
	for i := 0; i < len(results) && i < limit; i++ {
		output = append(output, results[i].service)
	}

	return output
}

// Execute runs a service tool
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return &types.Result{
			Success: false,
			Error:   stringPtr("invalid tool ID format"),
		}, fmt.Errorf("invalid tool ID format: %s", toolID)
	}

	serviceID := parts[0]
	provider, ok := r.Get(serviceID)
	if !ok {
		return &types.Result{
			Success: false,
			Error:   stringPtr(fmt.Sprintf("service not found: %s", serviceID)),
		}, fmt.Errorf("service not found: %s", serviceID)
	}

	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalTools int
	categories := make(map[string]int)

	r.services.Range(func(_, value interface{}) bool {
		provider := value.(Provider)
		def := provider.Definition()
		total++
		totalTools += len(def.Tools)
		categories[string(def.Category)]++
		return true
	})

	return map[string]interface{}{
		"total_services": total,
		"total_tools":    totalTools,
		"categories":     categories,
	}
}

// calculateRelevance scores a service against a lowercased query. Tool
// identifiers weigh the most: clients search for the function they
// want, not the service hosting it.
func (r *Registry) calculateRelevance(query string, svc types.Service) float64 {
	score := 0.0

	if strings.Contains(query, svc.ID) || strings.Contains(query, strings.ToLower(svc.Name)) {
		score += 10.0
	}

	for _, tool := range svc.Tools {
		name := strings.TrimPrefix(tool.ID, svc.ID+".")
		if strings.Contains(query, name) || strings.Contains(query, strings.ToLower(tool.Name)) {
			score += 8.0
		}
	}

	for _, word := range strings.Fields(strings.ToLower(svc.Description)) {
		// short words are connectives, not signal
		if len(word) > 3 && strings.Contains(query, word) {
			score += 5.0
		}
	}

	for _, cap := range svc.Capabilities {
		capClean := strings.ReplaceAll(strings.ToLower(cap), "_", " ")
		if strings.Contains(query, capClean) {
			score += 3.0
		}
	}

	return score
}

func stringPtr(s string) *string {
	return &s
}
