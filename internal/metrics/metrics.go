package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "officebooking",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint.",
		},
		[]string{"endpoint"},
	)

	bookingsApproved = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "officebooking",
			Name:      "bookings_approved_total",
			Help:      "Bookings transitioned to paid.",
		},
	)

	notificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "officebooking",
			Name:      "notification_failures_total",
			Help:      "Outbound WhatsApp sends that failed.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsApproved, notificationFailures)
	})
}

// IncHTTP increments the counter for an endpoint label.
func IncHTTP(endpoint string) {
	httpRequests.WithLabelValues(endpoint).Inc()
}

func IncApproved() {
	bookingsApproved.Inc()
}

func IncNotificationFailure() {
	notificationFailures.Inc()
}
