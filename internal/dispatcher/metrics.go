package dispatcher

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace        = "elevator_sim"
	elevatorNameLabel = "elevator"
)

var (
	winningCost = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_winning_cost_ticks",
			Help:      "Cost (wait+travel ticks) of the elevator chosen for a dispatched request",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		},
		[]string{elevatorNameLabel},
	)

	capacityFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_capacity_fallback_total",
			Help:      "Number of dispatches that fell back to tail-append because in-sweep insertion exceeded capacity",
		},
		[]string{elevatorNameLabel},
	)
)

func init() {
	prometheus.MustRegister(winningCost, capacityFallbacks)
}

func recordWinningCost(elevatorName string, cost int) {
	winningCost.With(prometheus.Labels{elevatorNameLabel: elevatorName}).Observe(float64(cost))
}

func incCapacityFallback(elevatorName string) {
	capacityFallbacks.With(prometheus.Labels{elevatorNameLabel: elevatorName}).Inc()
}
