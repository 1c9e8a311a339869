package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spirit11_http_requests_total",
			Help: "The total number of HTTP requests served, by method, route and status.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "spirit11_http_request_duration_seconds",
			Help:    "The duration of HTTP requests, by method and route.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "path"}),
		RosterConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spirit11_roster_conflicts_total",
			Help: "The total number of roster mutations abandoned after exhausting retries.",
		}),
		OracleFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spirit11_oracle_failures_total",
			Help: "The total number of assistant oracle calls that fell back to the apology reply.",
		}),
		SessionsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spirit11_sessions_issued_total",
			Help: "The total number of login sessions issued.",
		}),
	}

	reg.MustRegister(
		s.HTTPRequests,
		s.HTTPDuration,
		s.RosterConflicts,
		s.OracleFailures,
		s.SessionsIssued,
	)

	return s
}

func (s *Service) ObserveHTTPRequest(method, path string, status int, duration float64) {
	s.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	s.HTTPDuration.WithLabelValues(method, path).Observe(duration)
}

func (s *Service) IncRosterConflicts() {
	s.RosterConflicts.Inc()
}

func (s *Service) IncOracleFailures() {
	s.OracleFailures.Inc()
}

func (s *Service) IncSessionsIssued() {
	s.SessionsIssued.Inc()
}
