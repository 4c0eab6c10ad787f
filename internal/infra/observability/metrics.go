package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Package-level collectors for the engine's tick loop and the
// request-level wait/total times it produces, grounded on the
// teacher's flat metrics/metrics.go layout (package-level vars plus
// labeled helper funcs, registered once in init()).
var (
	tickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "elevator_sim",
		Name:      "engine_tick_duration_seconds",
		Help:      "Wall-clock time spent processing one simulated tick.",
		Buckets:   prometheus.DefBuckets,
	})

	requestWaitTicks = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "elevator_sim",
		Name:      "request_wait_ticks",
		Help:      "Ticks between a request's call time and its pickup time.",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55},
	})

	requestTotalTicks = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "elevator_sim",
		Name:      "request_total_ticks",
		Help:      "Ticks between a request's call time and its dropoff time.",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89},
	})
)

func init() {
	prometheus.MustRegister(tickDuration, requestWaitTicks, requestTotalTicks)
}

// RecordTickDuration observes the wall-clock cost of one engine tick.
func RecordTickDuration(seconds float64) {
	tickDuration.Observe(seconds)
}

// RecordRequestCompletion observes a completed request's wait and
// total tick counts.
func RecordRequestCompletion(waitTicks, totalTicks int) {
	requestWaitTicks.Observe(float64(waitTicks))
	requestTotalTicks.Observe(float64(totalTicks))
}
