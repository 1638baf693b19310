package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inn",
			Name:      "bookings_total",
			Help:      "Booking requests by outcome.",
		},
		[]string{"outcome"},
	)

	messages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "inn",
			Name:      "intake_messages_total",
			Help:      "Intake messages by topic.",
		},
		[]string{"topic"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookings, messages)
	})
}

// IncBooking increments the booking counter for an outcome label.
func IncBooking(outcome string) {
	bookings.WithLabelValues(outcome).Inc()
}

// IncMessage increments the intake counter for a topic label.
func IncMessage(topic string) {
	messages.WithLabelValues(topic).Inc()
}
