// Package observability defines the shared observer contract used by the
// client packages in this library.
//
// Client packages (such as docstore) emit an OperationContext for every
// operation they perform. Applications attach an Observer implementation via
// each client's WithObserver method to turn those events into metrics,
// traces, or logs. The metrics package ships a Prometheus-backed Observer.
//
// Usage:
//
//	type loggingObserver struct{ log Logger }
//
//	func (o *loggingObserver) ObserveOperation(ctx observability.OperationContext) {
//	    o.log.Info("operation", ctx.Error, map[string]interface{}{
//	        "component": ctx.Component,
//	        "operation": ctx.Operation,
//	        "duration":  ctx.Duration,
//	    })
//	}
//
//	client := docstore.NewClient(cfg).WithObserver(&loggingObserver{log: log})
package observability
