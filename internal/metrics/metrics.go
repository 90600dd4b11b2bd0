// Package metrics holds the Prometheus collectors of the API server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so several instances (tests) never
// clash on registration. All methods are safe on a nil *Collector.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	QuestionsCreated prometheus.Counter
	QuestionsDeleted prometheus.Counter
	AnswersCreated   prometheus.Counter
	AnswersDeleted   prometheus.Counter
}

// NewCollector creates the collectors under the given namespace and
// registers them together with the Go runtime and process collectors.
func NewCollector(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		QuestionsCreated: newCounter(namespace, "questions_created_total", "Total number of questions created"),
		QuestionsDeleted: newCounter(namespace, "questions_deleted_total", "Total number of questions deleted"),
		AnswersCreated:   newCounter(namespace, "answers_created_total", "Total number of answers created"),
		AnswersDeleted:   newCounter(namespace, "answers_deleted_total", "Total number of answers deleted"),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.HTTPRequests,
		c.HTTPDuration,
		c.QuestionsCreated,
		c.QuestionsDeleted,
		c.AnswersCreated,
		c.AnswersDeleted,
	)

	return c
}

func newCounter(namespace, name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	})
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}
	return c.registry
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveHTTPRequest records one finished request. route is the matched
// route pattern, never the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) IncQuestionsCreated() {
	if c != nil {
		c.QuestionsCreated.Inc()
	}
}

func (c *Collector) IncQuestionsDeleted() {
	if c != nil {
		c.QuestionsDeleted.Inc()
	}
}

func (c *Collector) IncAnswersCreated() {
	if c != nil {
		c.AnswersCreated.Inc()
	}
}

func (c *Collector) IncAnswersDeleted() {
	if c != nil {
		c.AnswersDeleted.Inc()
	}
}
