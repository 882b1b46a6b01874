package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsDecidedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_requests_decided_total",
			Help: "Participation requests moved to a decided status",
		},
		[]string{"status"}, // confirmed | rejected
	)

	admissionConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_admission_conflicts_total",
			Help: "Admission operations refused by a state or capacity guard",
		},
		[]string{"reason"},
	)

	statsHitsEmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "listing_stats_hits_emitted_total",
			Help: "View hits emitted to the stats collaborator",
		},
		[]string{"outcome"}, // ok | error
	)
)

func RecordRequestDecided(status string, n int) {
	if n <= 0 {
		return
	}
	requestsDecidedTotal.WithLabelValues(status).Add(float64(n))
}

func RecordAdmissionConflict(reason string) {
	admissionConflictsTotal.WithLabelValues(reason).Inc()
}

func RecordStatsHit(outcome string) {
	statsHitsEmittedTotal.WithLabelValues(outcome).Inc()
}

// Handler exposes the prometheus registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
