package metrics

import (
	"context"
	"net/http"

	bk "github.com/hanksha/condo-amenity-hub/booking"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exports booking activity to Prometheus. It is registered as a
// booking change observer.
type Metrics struct {
	registry  *prometheus.Registry
	mutations *prometheus.CounterVec
	bookings  *prometheus.GaugeVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "condo_hub",
			Name:      "booking_mutations_total",
			Help:      "Successful booking mutations by operation.",
		}, []string{"op"}),
		bookings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "condo_hub",
			Name:      "bookings",
			Help:      "Current bookings by facility and status.",
		}, []string{"facility", "status"}),
	}

	m.registry.MustRegister(m.mutations, m.bookings)

	return m
}

func (m *Metrics) BookingsChanged(_ context.Context, change bk.Change) {
	if change.Op != bk.OpLoad {
		m.mutations.WithLabelValues(string(change.Op)).Inc()
	}

	m.bookings.Reset()

	for _, b := range change.Bookings {
		m.bookings.WithLabelValues(b.FacilityType, string(b.Status)).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
