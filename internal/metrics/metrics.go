package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus instruments for the quiz service.
type Metrics struct {
	EventsTotal     *prometheus.CounterVec // label: kind (command|text)
	SessionsStarted prometheus.Counter
	QuizzesFinished *prometheus.CounterVec // label: outcome
	InvalidInput    *prometheus.CounterVec // label: kind (age|option)
	SendErrors      *prometheus.CounterVec // label: transport
}

func New(serviceName string) *Metrics {
	return &Metrics{
		EventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bioage",
				Subsystem: serviceName,
				Name:      "events_total",
				Help:      "Inbound events processed by the engine",
			},
			[]string{"kind"},
		),
		SessionsStarted: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "bioage",
				Subsystem: serviceName,
				Name:      "sessions_started_total",
				Help:      "Quiz sessions created (explicit or implicit restarts)",
			},
		),
		QuizzesFinished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bioage",
				Subsystem: serviceName,
				Name:      "quizzes_finished_total",
				Help:      "Completed quiz runs by outcome",
			},
			[]string{"outcome"},
		),
		InvalidInput: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bioage",
				Subsystem: serviceName,
				Name:      "invalid_input_total",
				Help:      "User inputs rejected by validation",
			},
			[]string{"kind"},
		),
		SendErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bioage",
				Subsystem: serviceName,
				Name:      "send_errors_total",
				Help:      "Outbound delivery failures",
			},
			[]string{"transport"},
		),
	}
}

// RegisterActiveSessions exposes the live session count as a gauge.
func RegisterActiveSessions(serviceName string, count func() float64) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "bioage",
			Subsystem: serviceName,
			Name:      "active_sessions",
			Help:      "Sessions currently held in the store",
		},
		count,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
