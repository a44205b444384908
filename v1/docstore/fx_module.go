package docstore

import (
	"context"
	"log"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docstore/v1/observability"
)

// FXModule is an fx.Module that provides and configures the docstore client.
// This module registers the client with the Fx dependency injection
// framework, making it available to other components in the application.
//
// The module:
// 1. Provides the docstore client factory function
// 2. Invokes the lifecycle registration to manage the client's lifecycle
//
// Usage:
//
//	app := fx.New(
//	    docstore.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("docstore",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterDocstoreLifecycle),
)

// DocstoreParams groups the dependencies needed to create a docstore client
type DocstoreParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"` // Optional logger from the logger package
	Observer observability.Observer `optional:"true"` // Optional observer, e.g. from the metrics package
}

// NewClientWithDI creates a new docstore client using dependency injection.
// This function is designed to be used with Uber's fx dependency injection
// framework where dependencies are automatically provided via the
// DocstoreParams struct.
//
// Example usage with fx:
//
//	app := fx.New(
//	    docstore.FXModule,
//	    logger.FXModule, // Optional: provides logger
//	    fx.Provide(
//	        func() docstore.Config {
//	            return docstore.Config{}
//	        },
//	    ),
//	)
func NewClientWithDI(params DocstoreParams) *Client {
	// Inject the logger into the config if provided
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}

	client := NewClient(params.Config)
	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}
	return client
}

// DocstoreLifecycleParams groups the dependencies needed for docstore
// lifecycle management
type DocstoreLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
}

// RegisterDocstoreLifecycle registers the docstore client with the fx
// lifecycle system so it is closed cleanly during application shutdown.
func RegisterDocstoreLifecycle(params DocstoreLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: Shutting down docstore client")
			return params.Client.Close()
		},
	})
}
