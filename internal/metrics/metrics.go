package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	CacheHits      prometheus.Counter
	CacheMisses    prometheus.Counter
	CachePuts      prometheus.Counter
	CacheEvictions *prometheus.CounterVec
	CacheErrors    *prometheus.CounterVec

	RecipeOperations *prometheus.CounterVec
}

// New creates the application metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "cookbook_recipe_cache_hits_total",
			Help: "Total number of recipe lookups served from the cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "cookbook_recipe_cache_misses_total",
			Help: "Total number of recipe lookups that fell through to the store",
		}),
		CachePuts: factory.NewCounter(prometheus.CounterOpts{
			Name: "cookbook_recipe_cache_puts_total",
			Help: "Total number of recipes written to the cache",
		}),
		CacheEvictions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cookbook_recipe_cache_evictions_total",
			Help: "Total number of cache evictions by scope",
		}, []string{"scope"}),
		CacheErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cookbook_recipe_cache_errors_total",
			Help: "Total number of failed cache calls by operation",
		}, []string{"op"}),
		RecipeOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cookbook_recipe_operations_total",
			Help: "Total number of successful recipe writes by operation",
		}, []string{"op"}),
	}
}

// IncrementRecipeOperation counts a successful create, update or delete.
// It is safe to call on a nil *Metrics.
func (m *Metrics) IncrementRecipeOperation(op string) {
	if m == nil {
		return
	}
	m.RecipeOperations.WithLabelValues(op).Inc()
}
