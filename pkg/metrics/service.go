package metrics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var _ Metrics = (*Service)(nil)

// Service holds the Prometheus collectors on a dedicated registry.
type Service struct {
	registry *prometheus.Registry

	RiotRequests        *prometheus.CounterVec
	RiotRequestDuration *prometheus.HistogramVec
	Aggregations        *prometheus.CounterVec
	Degraded            *prometheus.CounterVec
}

// NewService creates and registers the Prometheus metrics.
func NewService() *Service {
	reg := prometheus.NewRegistry()

	s := &Service{
		registry: reg,
		RiotRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaguelookup_riot_requests_total",
			Help: "The total number of requests made to the Riot API.",
		}, []string{"endpoint", "status"}),
		RiotRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leaguelookup_riot_request_duration_seconds",
			Help:    "The duration of the Riot API requests.",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		Aggregations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaguelookup_aggregations_total",
			Help: "The total number of lookups by kind and result.",
		}, []string{"kind", "result"}),
		Degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaguelookup_degraded_entries_total",
			Help: "Entries returned without their remote data.",
		}, []string{"kind"}),
	}

	reg.MustRegister(
		s.RiotRequests,
		s.RiotRequestDuration,
		s.Aggregations,
		s.Degraded,
	)

	return s
}

// Registry used by the service, exposed for gathering.
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Service) ObserveRequest(endpoint string, status int, seconds float64) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	s.RiotRequests.WithLabelValues(endpoint, label).Inc()
	s.RiotRequestDuration.WithLabelValues(endpoint).Observe(seconds)
}

func (s *Service) IncAggregation(kind string, failed bool) {
	result := "success"
	if failed {
		result = "failure"
	}
	s.Aggregations.WithLabelValues(kind, result).Inc()
}

func (s *Service) IncDegraded(kind string) {
	s.Degraded.WithLabelValues(kind).Inc()
}

// Push sends the collected metrics to a Pushgateway.
// The CLI runs a single lookup and exits, so there is nothing to scrape.
func (s *Service) Push(ctx context.Context, url string, job string) error {
	if err := push.New(url, job).Gatherer(s.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("couldn't push metrics to %s: %w", url, err)
	}
	return nil
}
