// Package docstore provides an in-memory emulation of a partitioned
// document database for Go applications.
//
// The package lets calling code exercise realistic create/read/query/delete
// flows without a network-backed database: partition-aware storage, strict
// document isolation (every write and read hands out a deep copy), a small
// SQL-subset query evaluator, and response envelopes carrying the
// request-charge and diagnostics fields telemetry code expects from a real
// service.
//
// # Architecture
//
// The handle hierarchy mirrors a real document database client:
//   - Client: root handle owning the database registry
//   - Database: created lazily via Databases().CreateIfNotExists
//   - Container: created lazily with a fixed partition key path
//   - Item / Items: single-item and container-wide operations
//
// Handles are address resolution only; documents live in each container's
// store, keyed by the composite of the document id and its serialized
// partition key value. The same id may exist in different partitions.
//
// # Basic Usage
//
//	client := docstore.NewClient(docstore.Config{})
//
//	db, err := client.Databases().CreateIfNotExists(ctx, "app")
//	if err != nil {
//		return err
//	}
//	container, err := db.Containers().CreateIfNotExists(ctx, docstore.ContainerProperties{
//		ID:               "notes",
//		PartitionKeyPath: "/tenantId",
//	})
//	if err != nil {
//		return err
//	}
//
//	items := container.Items()
//	_, err = items.Upsert(ctx, docstore.Document{
//		"id":       "1",
//		"tenantId": "x",
//		"title":    "Quarterly report",
//		"score":    9,
//	})
//
//	resp, err := items.Query(ctx,
//		"SELECT TOP 1 * FROM c WHERE (c.score >= @min) AND (CONTAINS(c.title, @term, true))",
//		&docstore.QueryOptions{
//			PartitionKey: docstore.NewPartitionKey("x"),
//			Parameters: []docstore.QueryParameter{
//				{Name: "@min", Value: 5},
//				{Name: "@term", Value: "report"},
//			},
//		})
//
// # Query Grammar
//
// Exactly three statement shapes are recognized, in this priority order:
//
//	SELECT VALUE COUNT(1) FROM c [WHERE ...]   -> [N]
//	SELECT c.id FROM c [WHERE ...]             -> [{"id": ...}, ...]
//	SELECT [TOP n] * FROM c [WHERE ...]        -> full documents
//
// A WHERE clause is a conjunction of fragments (AND only; OR and NOT are
// not supported). Each fragment is either
//
//	CONTAINS(c.<path>, <operand>, true)        case-insensitive substring
//	c.<path> <op> <operand>                    <op> in {=, <, <=, >, >=}
//
// where <operand> is a named parameter (@name), a quoted string, true,
// false, null, or a numeric literal. Field paths are dotted and resolve
// through nested objects only. Equality compares structurally; ordering
// comparisons require both sides numeric and otherwise evaluate to false.
// Queries or fragments outside the grammar fail with ErrUnsupportedQuery or
// ErrUnsupportedCondition rather than returning a best-effort result.
//
// # Response Envelopes
//
// Every operation result is wrapped in an ItemResponse or FeedResponse
// carrying a constant request charge, an activity id, and client-side
// request statistics (elapsed milliseconds and serialized payload length).
// The values are synthetic; they exist so consumers can exercise logging
// and telemetry paths that read these fields from a real service.
//
// # Error Semantics
//
// Reading an absent item is not an error: the envelope's Resource is nil.
// Deleting an absent item fails with a StatusError carrying code 404; use
// IsNotFoundError or StatusCode to branch on it. Validation failures (bad
// id, bad partition key type, malformed container definition) and grammar
// violations are plain descriptive errors wrapping the package sentinels.
// No operation retries internally: the store has no transient failure
// modes, so every failure is deterministic given the same input.
//
// # FX Module Integration
//
//	app := fx.New(
//	    docstore.FXModule,
//	    fx.Provide(func() docstore.Config {
//	        return docstore.Config{}
//	    }),
//	)
//
// # Concurrency
//
// All methods are safe for concurrent use. Each container guards its
// key -> document map so upserts, reads and deletes may interleave from
// multiple goroutines while the "unique key, at most one document"
// invariant holds. Operations run to completion once started; the ctx
// parameter exists for call-site compatibility and is not used for
// cancellation. No ordering is promised across containers.
package docstore
