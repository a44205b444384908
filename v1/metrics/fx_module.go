package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docstore/v1/observability"
)

// FXModule is an fx.Module that provides and configures the metrics
// instance and its Prometheus-backed observer.
//
// The module:
//  1. Provides the Metrics factory function
//  2. Provides a metrics-backed observability.Observer for client packages
//  3. Starts and stops the /metrics HTTP server with the fx lifecycle
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		func(m *Metrics) observability.Observer { return NewObserver(m) },
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams groups the dependencies needed for metrics
// lifecycle management
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
}

// RegisterMetricsLifecycle starts the metrics HTTP server on application
// start and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(params MetricsLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := params.Metrics.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("ERROR: metrics server failed: %v", err)
				}
			}()
			log.Println("INFO: metrics server started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: Shutting down metrics server")
			return params.Metrics.Server.Shutdown(ctx)
		},
	})
}
