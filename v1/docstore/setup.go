package docstore

import (
	"log"

	"github.com/Aleph-Alpha/docstore/v1/observability"
)

// NewClient creates and initializes a new in-memory document store client.
// The client owns its own registry of databases; two clients never share
// state, which lets tests run against isolated emulated accounts.
//
// Parameters:
//   - cfg: Configuration for the client
//
// Returns a new client instance that is ready to use.
//
// Example:
//
//	client := docstore.NewClient(docstore.Config{})
//	db, err := client.Databases().CreateIfNotExists(ctx, "app")
//	if err != nil {
//		return err
//	}
func NewClient(cfg Config) *Client {
	// Apply defaults
	if cfg.RequestCharge == 0 {
		cfg.RequestCharge = DefaultRequestCharge
	}

	c := &Client{
		cfg:       cfg,
		logger:    cfg.Logger,
		databases: make(map[string]*Database),
	}

	log.Println("INFO: docstore client initialized")
	return c
}

// Close releases the client. The in-memory store holds no external
// resources; Close exists so lifecycle management can treat this client
// like any network-backed one.
func (c *Client) Close() error {
	if c.logger != nil {
		c.logger.Info("closing docstore client", nil, nil)
	}
	return nil
}

// WithObserver sets the observer for this client and returns the client for
// method chaining. The observer receives events about store operations
// (e.g. upsert, read, query).
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for
// method chaining.
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *Client) WithLogger(logger Logger) *Client {
	c.logger = logger
	return c
}
