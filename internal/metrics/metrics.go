package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Collector struct {
	mutex     sync.Mutex
	registry  *prometheus.Registry
	observers []Observer

	Encryptions         *prometheus.CounterVec
	EncryptedLetters    prometheus.Counter
	EncryptionDurations prometheus.Histogram

	ConfigsSaved   prometheus.Counter
	ConfigsRemoved prometheus.Counter
	ConfigErrors   *prometheus.CounterVec

	APIRequests  *prometheus.CounterVec
	APIDurations *prometheus.HistogramVec

	ConfigRepositorySize prometheus.Gauge
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		Encryptions: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "encryptions_total",
			Help: "The total number of text encryption requests",
		}, []string{"status"}),
		EncryptedLetters: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "encrypted_letters_total",
			Help: "The total number of letters passed through a machine",
		}),
		EncryptionDurations: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name: "encryption_duration_seconds",
			Help: "Duration of text encryption requests",
		}),
		ConfigsSaved: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "configs_saved_total",
			Help: "The total number of saved machine configurations",
		}),
		ConfigsRemoved: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "configs_removed_total",
			Help: "The total number of removed machine configurations",
		}),
		ConfigErrors: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "config_errors_total",
			Help: "The total number of failed configuration operations",
		}, []string{"op"}),
		APIRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "The total number of handled API requests",
		}, []string{"method", "status"}),
		APIDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "api_request_duration_seconds",
			Help: "Duration of API requests",
		}, []string{"method"}),
		ConfigRepositorySize: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "repo_configs_size",
			Help: "The number of machine configurations stored in the repository",
		}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) AddObserver(observer Observer) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.observers = append(c.observers, observer)
}

func (c *Collector) Observe(ctx context.Context) {
	c.mutex.Lock()
	observers := c.observers
	c.mutex.Unlock()
	for _, observer := range observers {
		go observer.Observe(ctx, c)
	}
}
