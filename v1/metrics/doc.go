// Package metrics provides Prometheus-based metrics collection and
// exposition for Go applications.
//
// Each service gets a dedicated registry wrapped with a constant "service"
// label, an HTTP server exposing /metrics for scraping, built-in metrics
// for client operations, and factories for registering custom counters,
// histograms, and gauges.
//
// The built-in operation metrics are fed by the Prometheus-backed Observer
// returned from NewObserver, which implements the observability Observer
// interface used by the client packages in this library:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "document-index",
//	})
//	go m.Server.ListenAndServe()
//
//	client := docstore.NewClient(docstore.Config{}).
//	    WithObserver(metrics.NewObserver(m))
//
// Every operation the client performs then increments
// client_operations_total{component,operation,status} and records its
// duration and payload size into the corresponding histograms.
//
// For fx applications, FXModule provides *Metrics and an
// observability.Observer, and manages the /metrics server lifecycle:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{Address: ":9090"}
//	    }),
//	)
package metrics
