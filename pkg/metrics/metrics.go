package metrics

// Metrics defines the interface for collecting the lookup metrics.
// This decouples the fetchers and services from Prometheus.
type Metrics interface {
	// ObserveRequest records a Riot API call, status 0 means the request never got a response.
	ObserveRequest(endpoint string, status int, seconds float64)
	// IncAggregation records a finished lookup of the given kind.
	IncAggregation(kind string, failed bool)
	// IncDegraded records a row or participant that was kept without its remote data.
	IncDegraded(kind string)
}

// Nop discards every metric.
type Nop struct{}

func (Nop) ObserveRequest(string, int, float64) {}
func (Nop) IncAggregation(string, bool)         {}
func (Nop) IncDegraded(string)                  {}
