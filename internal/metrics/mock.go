package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu              sync.Mutex
	httpRequests    int
	rosterConflicts int
	oracleFailures  int
	sessionsIssued  int
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) ObserveHTTPRequest(_, _ string, _ int, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.httpRequests++
}

func (m *Mock) IncRosterConflicts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosterConflicts++
}

func (m *Mock) IncOracleFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.oracleFailures++
}

func (m *Mock) IncSessionsIssued() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionsIssued++
}

// HTTPRequests returns the number of observed HTTP requests.
func (m *Mock) HTTPRequests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.httpRequests
}

// RosterConflicts returns the number of recorded roster conflicts.
func (m *Mock) RosterConflicts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rosterConflicts
}

// OracleFailures returns the number of recorded oracle failures.
func (m *Mock) OracleFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.oracleFailures
}

// SessionsIssued returns the number of recorded session issues.
func (m *Mock) SessionsIssued() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionsIssued
}
