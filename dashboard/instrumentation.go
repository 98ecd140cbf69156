package dashboard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fitdeck/fitdeck/metrics"
)

const namespace = "fitdeck"

// instrumentation holds the request metrics and the dashboard gauges.
type instrumentation struct {
	counterRequests     *prometheus.CounterVec
	histRequestDuration prometheus.Histogram
}

func newInstrumentation(reg prometheus.Registerer, st *metrics.Store) *instrumentation {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "recovery",
		Name:      "sleep_quality",
		Help:      "Current sleep quality score",
	}, func() float64 {
		return float64(st.Recovery().SleepQuality)
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "recovery",
		Name:      "muscle_recovery",
		Help:      "Current muscle recovery score",
	}, func() float64 {
		return float64(st.Recovery().MuscleRecovery)
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "recovery",
		Name:      "readiness",
		Help:      "Current readiness score",
	}, func() float64 {
		return float64(st.Recovery().ReadinessScore)
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "history",
		Name:      "workouts",
		Help:      "Number of workouts in the history",
	}, func() float64 {
		return float64(len(st.History()))
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "history",
		Name:      "minutes",
		Help:      "Total minutes of recorded workouts",
	}, func() float64 {
		return st.Summary().TotalMinutes
	})

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "goals",
		Name:      "count",
		Help:      "Number of tracked goals",
	}, func() float64 {
		return float64(len(st.Goals()))
	})

	return &instrumentation{
		counterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "requests_total",
			Help:      "The total number of dashboard requests",
		}, []string{"method", "status"}),
		histRequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dashboard",
			Name:      "request_duration_seconds",
			Help:      "Dashboard request latency",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
