package metrics

import (
	"github.com/Aleph-Alpha/docstore/v1/observability"
)

// Observer is a Prometheus-backed implementation of the observability
// Observer interface. Attach it to a client with WithObserver to feed that
// client's operation events into the built-in operation metrics.
//
// Observer is safe for concurrent use.
type Observer struct {
	metrics *Metrics
}

// NewObserver creates an Observer recording onto the given Metrics instance.
//
// Example:
//
//	m := metrics.NewMetrics(cfg)
//	client := docstore.NewClient(docstore.Config{}).WithObserver(metrics.NewObserver(m))
func NewObserver(m *Metrics) *Observer {
	return &Observer{metrics: m}
}

// ObserveOperation records one operation event.
func (o *Observer) ObserveOperation(ctx observability.OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}
	o.metrics.RecordOperation(ctx.Component, ctx.Operation, status, ctx.Duration, ctx.Size)
}
