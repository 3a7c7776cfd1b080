package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu           sync.Mutex
	requests     map[string]int
	aggregations map[string]int
	degraded     map[string]int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		requests:     make(map[string]int),
		aggregations: make(map[string]int),
		degraded:     make(map[string]int),
	}
}

func (m *Mock) ObserveRequest(endpoint string, status int, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[endpoint]++
}

func (m *Mock) IncAggregation(kind string, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if failed {
		kind += ":failure"
	}
	m.aggregations[kind]++
}

func (m *Mock) IncDegraded(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.degraded[kind]++
}

// Requests returns the number of requests recorded for the endpoint.
func (m *Mock) Requests(endpoint string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[endpoint]
}

// Aggregations returns the number of lookups recorded, failures use the "kind:failure" key.
func (m *Mock) Aggregations(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.aggregations[kind]
}

// Degraded returns the number of degraded entries recorded.
func (m *Mock) Degraded(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.degraded[kind]
}
