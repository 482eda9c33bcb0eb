package facade

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/packing-checklist/pkg/apperrors"
)

// Metrics counts facade outcomes
type Metrics struct {
	favoriteToggles *prometheus.CounterVec
	guardRejections *prometheus.CounterVec
}

// NewMetrics creates the facade counters and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		favoriteToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checklist_favorite_toggles_total",
				Help: "Set favorite calls by outcome",
			},
			[]string{"outcome"},
		),
		guardRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checklist_guard_rejections_total",
				Help: "Operations rejected by a state or ownership guard",
			},
			[]string{"operation", "kind"},
		),
	}
	reg.MustRegister(m.favoriteToggles, m.guardRejections)
	return m
}

func (m *Metrics) favoriteOutcome(liked, changed bool) {
	outcome := "noop"
	switch {
	case changed && liked:
		outcome = "liked"
	case changed:
		outcome = "unliked"
	}
	m.favoriteToggles.WithLabelValues(outcome).Inc()
}

// observe counts err when it is an expected guard failure
func (m *Metrics) observe(operation string, err error) {
	kind := apperrors.KindOf(err)
	if kind == "" || kind == apperrors.KindStore || kind == apperrors.KindInvalidInput {
		return
	}
	m.guardRejections.WithLabelValues(operation, string(kind)).Inc()
}
