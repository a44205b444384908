package observability

import "time"

// OperationContext carries the details of a single client operation.
// Client packages construct one of these per operation and hand it to the
// configured Observer.
type OperationContext struct {
	// Component identifies the emitting client package (e.g. "docstore").
	Component string

	// Operation is the name of the operation (e.g. "upsert", "query").
	Operation string

	// Resource is the primary resource the operation acted on
	// (e.g. a container id).
	Resource string

	// SubResource is additional addressing context (e.g. an item id).
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the operation error, or nil on success.
	Error error

	// Size is the payload size in bytes, where applicable.
	Size int64

	// Metadata holds operation-specific key-value context.
	Metadata map[string]interface{}
}

// Observer receives operation events from client packages.
// Implementations must be safe for concurrent use; clients may emit events
// from multiple goroutines.
//
// The metrics package provides a Prometheus-backed implementation.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
