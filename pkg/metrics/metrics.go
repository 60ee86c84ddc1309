package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// bookingCount counts successfully committed bookings per doctor.
var bookingCount = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "booking_count",
		Help: "Total Bookings Created",
	},
	[]string{"doctor"},
)

// BookingCreated records one committed booking for the given doctor.
func BookingCreated(doctorName string) {
	bookingCount.WithLabelValues(doctorName).Inc()
}
