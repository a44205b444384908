package docstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Aleph-Alpha/docstore/v1/observability"
)

// Client is the root of the handle hierarchy. It owns the registry of
// databases for its lifetime; nothing is shared through package state, so
// independent clients emulate independent database accounts.
//
// The hierarchy is address resolution only: Client -> Database ->
// Container -> Item. All real work happens in the container's document
// store and the query evaluator.
type Client struct {
	cfg      Config
	logger   Logger
	observer observability.Observer

	mu        sync.Mutex
	databases map[string]*Database
}

// Databases returns the handle for database-level operations.
func (c *Client) Databases() *Databases {
	return &Databases{client: c}
}

// Databases creates and resolves Database handles.
type Databases struct {
	client *Client
}

// CreateIfNotExists returns the database with the given id, creating it on
// first reference. Databases live for the lifetime of the client and are
// never destroyed.
func (d *Databases) CreateIfNotExists(ctx context.Context, id string) (*Database, error) {
	if id == "" {
		return nil, ErrInvalidDatabaseID
	}

	c := d.client
	c.mu.Lock()
	defer c.mu.Unlock()

	db, ok := c.databases[id]
	if !ok {
		db = &Database{
			id:         id,
			client:     c,
			containers: make(map[string]*Container),
		}
		c.databases[id] = db
	}
	return db, nil
}

// Database is a handle for one database and the registry of its containers.
type Database struct {
	id     string
	client *Client

	mu         sync.Mutex
	containers map[string]*Container
}

// ID returns the database id.
func (db *Database) ID() string {
	return db.id
}

// Containers returns the handle for container-level operations.
func (db *Database) Containers() *Containers {
	return &Containers{database: db}
}

// ContainerProperties defines a container at creation time.
type ContainerProperties struct {
	// ID is the container id, unique within its database.
	ID string `json:"id"`

	// PartitionKeyPath is the slash-separated field path whose value
	// determines a document's partition, e.g. "/tenantId" or "/meta/tenant".
	PartitionKeyPath string `json:"partitionKeyPath"`
}

// Containers creates and resolves Container handles.
type Containers struct {
	database *Database
}

// CreateIfNotExists returns the container with the given id, creating it on
// first reference. The partition key path is fixed by the first creation;
// repeat calls with a different path return the existing container without
// re-validating the definition.
func (cs *Containers) CreateIfNotExists(ctx context.Context, props ContainerProperties) (*Container, error) {
	if props.ID == "" || props.PartitionKeyPath == "" {
		return nil, ErrInvalidContainerDefinition
	}

	path := dottedPartitionKeyPath(props.PartitionKeyPath)
	if path == "" {
		return nil, fmt.Errorf("%w: empty partition key path %q", ErrInvalidContainerDefinition, props.PartitionKeyPath)
	}

	db := cs.database
	db.mu.Lock()
	defer db.mu.Unlock()

	container, ok := db.containers[props.ID]
	if !ok {
		container = &Container{
			id:       props.ID,
			database: db,
			props:    props,
			store:    newContainerStore(path),
		}
		db.containers[props.ID] = container
	}
	return container, nil
}

// dottedPartitionKeyPath converts a slash-separated partition key path
// ("/meta/tenant") into the dotted form used for field resolution
// ("meta.tenant").
func dottedPartitionKeyPath(path string) string {
	path = strings.TrimPrefix(path, "/")
	return strings.ReplaceAll(path, "/", ".")
}

// Container is a handle for one container and its document store.
type Container struct {
	id       string
	database *Database
	props    ContainerProperties
	store    *containerStore
}

// ID returns the container id.
func (ct *Container) ID() string {
	return ct.id
}

// Read returns the properties the container was created with.
func (ct *Container) Read(ctx context.Context) (ContainerProperties, error) {
	return ct.props, nil
}

// Item returns a handle for a single item. The zero PartitionKey addresses
// the item across partitions: lookups then scan all partitions and the
// first document with a matching id wins, in unspecified order.
func (ct *Container) Item(id string, partitionKey PartitionKey) *Item {
	return &Item{container: ct, id: id, partitionKey: partitionKey}
}

// Items returns the handle for container-wide item operations.
func (ct *Container) Items() *Items {
	return &Items{container: ct}
}

// PartitionKey scopes an operation to one partition. Build one with
// NewPartitionKey; the zero value means "no partition key" (unscoped).
// NewPartitionKey(nil) is a real scope, the null partition.
type PartitionKey struct {
	value any
	set   bool
}

// NewPartitionKey builds a partition key scope from a JSON-compatible value
// (string, number, boolean, nil, or an array of such values).
func NewPartitionKey(value any) PartitionKey {
	return PartitionKey{value: value, set: true}
}

// Item is a handle for a single item, addressed by id and optionally scoped
// to one partition.
type Item struct {
	container    *Container
	id           string
	partitionKey PartitionKey
}

// Read returns the item wrapped in a response envelope. A missing item is
// not an error: the envelope's Resource is nil and its payload length zero.
func (it *Item) Read(ctx context.Context) (*ItemResponse, error) {
	start := time.Now()
	ct := it.container

	doc, err := ct.store.read(it.id, it.partitionKey.value, it.partitionKey.set)
	resp := newItemResponse(start, ct.charge(), doc)
	ct.observe("read", it.id, start, err, resp.Diagnostics, nil)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete removes the item and returns its pre-removal state in the
// envelope. Deleting an absent item fails with a StatusError carrying
// code 404; a second delete of the same item fails the same way.
func (it *Item) Delete(ctx context.Context) (*ItemResponse, error) {
	start := time.Now()
	ct := it.container

	doc, err := ct.store.delete(it.id, it.partitionKey.value, it.partitionKey.set)
	resp := newItemResponse(start, ct.charge(), doc)
	ct.observe("delete", it.id, start, err, resp.Diagnostics, nil)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Items performs container-wide item operations.
type Items struct {
	container *Container
}

// Upsert validates and stores doc, replacing any prior document with the
// same id and partition key value. There is no insert/update distinction;
// once validation passes the write succeeds. The returned envelope carries
// the stored state.
func (i *Items) Upsert(ctx context.Context, doc Document) (*ItemResponse, error) {
	start := time.Now()
	ct := i.container

	stored, err := ct.store.upsert(doc)
	resp := newItemResponse(start, ct.charge(), stored)
	id, _ := doc["id"].(string)
	ct.observe("upsert", id, start, err, resp.Diagnostics, nil)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// FeedOptions configures ReadAll.
type FeedOptions struct {
	// PartitionKey scopes the read to one partition. The zero value reads
	// all partitions.
	PartitionKey PartitionKey
}

// ReadAll returns every document in the container, optionally scoped to one
// partition, wrapped in a feed envelope.
func (i *Items) ReadAll(ctx context.Context, opts *FeedOptions) (*FeedResponse, error) {
	start := time.Now()
	ct := i.container

	var pk PartitionKey
	if opts != nil {
		pk = opts.PartitionKey
	}
	scope, err := canonicalScope(pk)
	if err != nil {
		return nil, err
	}

	docs, err := ct.store.list(scope.value, scope.set)
	resources := make([]any, 0, len(docs))
	for _, doc := range docs {
		resources = append(resources, doc)
	}
	resp := newFeedResponse(start, ct.charge(), resources)
	ct.observe("readAll", "", start, err, resp.Diagnostics, nil)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// QueryParameter supplies the value of a named query parameter.
type QueryParameter struct {
	// Name is the parameter name including the leading "@", e.g. "@min".
	Name string `json:"name"`

	// Value is the parameter value; any JSON-compatible value is accepted.
	Value any `json:"value"`
}

// QueryOptions configures Query.
type QueryOptions struct {
	// PartitionKey scopes the query to one partition. The zero value
	// queries all partitions.
	PartitionKey PartitionKey

	// Parameters supplies the values of named parameters referenced by the
	// query text.
	Parameters []QueryParameter
}

// Query evaluates a query against the container and returns the results in
// a feed envelope. Exactly three statement shapes are supported:
//
//	SELECT VALUE COUNT(1) FROM c [WHERE ...]
//	SELECT c.id FROM c [WHERE ...]
//	SELECT [TOP n] * FROM c [WHERE ...]
//
// The WHERE clause is a conjunction of comparison and CONTAINS fragments;
// see the package documentation for the full grammar. Anything outside the
// grammar fails with ErrUnsupportedQuery or ErrUnsupportedCondition rather
// than returning a best-effort result set.
func (i *Items) Query(ctx context.Context, query string, opts *QueryOptions) (*FeedResponse, error) {
	start := time.Now()
	ct := i.container

	resources, err := i.evaluate(query, opts)
	resp := newFeedResponse(start, ct.charge(), resources)
	ct.observe("query", "", start, err, resp.Diagnostics, map[string]interface{}{"query": query})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// evaluate runs the parse -> filter -> project pipeline for Query.
func (i *Items) evaluate(query string, opts *QueryOptions) ([]any, error) {
	var pk PartitionKey
	params := make(map[string]any)
	if opts != nil {
		pk = opts.PartitionKey
		for _, p := range opts.Parameters {
			params[p.Name] = p.Value
		}
	}

	parsed, err := parseQuery(query)
	if err != nil {
		return nil, err
	}

	scope, err := canonicalScope(pk)
	if err != nil {
		return nil, err
	}
	docs, err := i.container.store.list(scope.value, scope.set)
	if err != nil {
		return nil, err
	}

	var matched []Document
	for _, doc := range docs {
		ok, err := matchesConditions(doc, parsed.conditions, params)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, doc)
		}
	}

	switch parsed.kind {
	case queryCount:
		return []any{float64(len(matched))}, nil
	case queryIDProjection:
		resources := make([]any, 0, len(matched))
		for _, doc := range matched {
			resources = append(resources, Document{"id": doc["id"]})
		}
		return resources, nil
	default:
		if parsed.top >= 0 && len(matched) > parsed.top {
			matched = matched[:parsed.top]
		}
		resources := make([]any, 0, len(matched))
		for _, doc := range matched {
			resources = append(resources, doc)
		}
		return resources, nil
	}
}

// canonicalScope canonicalizes the value of a set partition key so that
// scope filtering compares like with like against stored documents.
func canonicalScope(pk PartitionKey) (PartitionKey, error) {
	if !pk.set {
		return pk, nil
	}
	value, err := canonicalValue(pk.value)
	if err != nil {
		return PartitionKey{}, fmt.Errorf("%w: %v", ErrInvalidPartitionKey, err)
	}
	return PartitionKey{value: value, set: true}, nil
}

// charge returns the configured request-charge unit.
func (ct *Container) charge() float64 {
	return ct.database.client.cfg.RequestCharge
}
