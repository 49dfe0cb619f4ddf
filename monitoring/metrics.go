package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the planning workflow.
type Metrics struct {
	WorkflowRuns     prometheus.Counter
	WorkflowDuration prometheus.Histogram
	NodeRuns         *prometheus.CounterVec
	NodeDuration     *prometheus.HistogramVec
	NodeErrors       *prometheus.CounterVec
	ProviderCalls    *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics under the given namespace.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		WorkflowRuns: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workflow_runs_total",
			Help:      "The total number of workflow runs",
		}),
		WorkflowDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "workflow_duration_seconds",
			Help:      "Wall-clock time per workflow run",
			Buckets:   prometheus.DefBuckets,
		}),
		NodeRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_runs_total",
			Help:      "The total number of node executions",
		}, []string{"node"}),
		NodeDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "node_duration_seconds",
			Help:      "Time spent per workflow node",
			Buckets:   prometheus.DefBuckets,
		}, []string{"node"}),
		NodeErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "node_errors_total",
			Help:      "The total number of errors recorded by nodes",
		}, []string{"node"}),
		ProviderCalls: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_calls_total",
			Help:      "The total number of search provider invocations",
		}, []string{"provider"}),
	}
}

// ObserveNode records one node execution.
func (m *Metrics) ObserveNode(node string, start time.Time, errCount int) {
	if m == nil {
		return
	}
	m.NodeRuns.WithLabelValues(node).Inc()
	m.NodeDuration.WithLabelValues(node).Observe(time.Since(start).Seconds())
	if errCount > 0 {
		m.NodeErrors.WithLabelValues(node).Add(float64(errCount))
	}
}

// ObserveWorkflow records one complete workflow run.
func (m *Metrics) ObserveWorkflow(start time.Time) {
	if m == nil {
		return
	}
	m.WorkflowRuns.Inc()
	m.WorkflowDuration.Observe(time.Since(start).Seconds())
}

// ObserveProviderCall records one search provider invocation.
func (m *Metrics) ObserveProviderCall(provider string) {
	if m == nil {
		return
	}
	m.ProviderCalls.WithLabelValues(provider).Inc()
}
