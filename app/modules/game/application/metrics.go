package gameservice

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus instruments for the game service.
type Metrics struct {
	operationAttempts *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	transitions       *prometheus.CounterVec
	conflicts         prometheus.Counter
	timeouts          prometheus.Counter
	eventsDropped     prometheus.Counter
}

// NewMetrics registers the game service instruments on reg. Tests pass
// a fresh prometheus.NewRegistry().
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operationAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "game_operation_attempts_total",
			Help: "Number of game service operations attempted.",
		}, []string{"operation"}),
		operationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "game_operation_failures_total",
			Help: "Number of game service operations that returned an error.",
		}, []string{"operation"}),
		operationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "game_operation_duration_seconds",
			Help:    "Duration of game service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "game_transitions_total",
			Help: "Number of committed game state transitions by action.",
		}, []string{"action"}),
		conflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "game_state_conflicts_total",
			Help: "Number of conditional writes lost to a concurrent action.",
		}),
		timeouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "game_lazy_timeouts_total",
			Help: "Number of deadline catch-up transitions performed on read.",
		}),
		eventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "game_events_dropped_total",
			Help: "Number of best-effort notifications dropped or failed.",
		}),
	}
}

func (m *Metrics) RecordOperationAttempt(operation string) {
	m.operationAttempts.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordOperationFailure(operation string) {
	m.operationFailures.WithLabelValues(operation).Inc()
}

func (m *Metrics) RecordOperationDuration(operation string, d time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

func (m *Metrics) RecordTransition(action string) {
	m.transitions.WithLabelValues(action).Inc()
}

func (m *Metrics) RecordConflict() {
	m.conflicts.Inc()
}

func (m *Metrics) RecordLazyTimeout() {
	m.timeouts.Inc()
}

func (m *Metrics) RecordEventDropped() {
	m.eventsDropped.Inc()
}
