package metrics

import "time"

//go:generate mockery --name Provider --dir . --output ../../mocks --outpkg mocks --with-expecter
type Provider interface {
	IncrementHTTPRequests(method, path, status string)
	RecordHTTPRequestDuration(method, path string, duration time.Duration)
	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)
	IncrementPostOperations(operation string, success bool)
	SetServiceHealth(healthy bool)
}
