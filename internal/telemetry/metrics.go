package telemetry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Registrations counts successfully created accounts
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "coursehub",
			Name:      "registrations_total",
			Help:      "Total number of successfully registered users",
		},
	)

	// Logins counts login attempts by outcome
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursehub",
			Name:      "logins_total",
			Help:      "Total number of login attempts by outcome",
		},
		[]string{"result"},
	)

	// AdmissionDenied counts requests rejected by the bearer-token gate
	AdmissionDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursehub",
			Name:      "admission_denied_total",
			Help:      "Total number of requests denied by the token admission check",
		},
		[]string{"reason"},
	)

	// CourseOps counts course mutations by operation
	CourseOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursehub",
			Name:      "course_operations_total",
			Help:      "Total number of course mutations by operation",
		},
		[]string{"operation"},
	)

	// Ensure metrics are only registered once
	once sync.Once
)

// InitMetrics registers all metrics with the global Prometheus registry.
// This function is idempotent and can be called multiple times safely.
func InitMetrics() {
	once.Do(func() {
		// Register metrics, ignoring errors if already registered
		prometheus.DefaultRegisterer.Register(Registrations)
		prometheus.DefaultRegisterer.Register(Logins)
		prometheus.DefaultRegisterer.Register(AdmissionDenied)
		prometheus.DefaultRegisterer.Register(CourseOps)
	})
}
