package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	ObserveHTTPRequest(method, path string, status int, duration float64)
	IncRosterConflicts()
	IncOracleFailures()
	IncSessionsIssued()
}
