package docstore

import (
	"context"
	"sync"
	"testing"

	"github.com/Aleph-Alpha/docstore/v1/observability"
)

// TestObserver is a mock observer for testing.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func TestObserveNilObserverNoPanic(t *testing.T) {
	container := newTestContainer(t)

	// Should not panic.
	if _, err := container.Items().Upsert(context.Background(), Document{"id": "1", "tenantId": "x"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
}

func TestObserveUpsertCallsObserver(t *testing.T) {
	ctx := context.Background()
	obs := &TestObserver{}
	client := NewClient(Config{}).WithObserver(obs)
	db, err := client.Databases().CreateIfNotExists(ctx, "app")
	if err != nil {
		t.Fatalf("create database failed: %v", err)
	}
	container, err := db.Containers().CreateIfNotExists(ctx, ContainerProperties{ID: "docs", PartitionKeyPath: "/tenantId"})
	if err != nil {
		t.Fatalf("create container failed: %v", err)
	}

	if _, err := container.Items().Upsert(ctx, Document{"id": "1", "tenantId": "x"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Component != "docstore" {
		t.Fatalf("expected component docstore, got %q", ops[0].Component)
	}
	if ops[0].Operation != "upsert" {
		t.Fatalf("expected operation upsert, got %q", ops[0].Operation)
	}
	if ops[0].Resource != "app/docs" {
		t.Fatalf("expected resource app/docs, got %q", ops[0].Resource)
	}
	if ops[0].SubResource != "1" {
		t.Fatalf("expected sub-resource 1, got %q", ops[0].SubResource)
	}
	if ops[0].Error != nil {
		t.Fatalf("expected no error, got %v", ops[0].Error)
	}
	if ops[0].Size <= 0 {
		t.Fatalf("expected positive payload size, got %d", ops[0].Size)
	}
}

func TestObserveDeleteFailureRecordsError(t *testing.T) {
	ctx := context.Background()
	obs := &TestObserver{}
	client := NewClient(Config{}).WithObserver(obs)
	db, err := client.Databases().CreateIfNotExists(ctx, "app")
	if err != nil {
		t.Fatalf("create database failed: %v", err)
	}
	container, err := db.Containers().CreateIfNotExists(ctx, ContainerProperties{ID: "docs", PartitionKeyPath: "/tenantId"})
	if err != nil {
		t.Fatalf("create container failed: %v", err)
	}

	if _, err := container.Item("missing", NewPartitionKey("x")).Delete(ctx); err == nil {
		t.Fatal("expected delete of absent item to fail")
	}

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Operation != "delete" {
		t.Fatalf("expected operation delete, got %q", ops[0].Operation)
	}
	if ops[0].Error == nil {
		t.Fatal("expected the operation error to be recorded")
	}
}

func TestObserveQueryCarriesQueryMetadata(t *testing.T) {
	ctx := context.Background()
	obs := &TestObserver{}
	client := NewClient(Config{}).WithObserver(obs)
	db, err := client.Databases().CreateIfNotExists(ctx, "app")
	if err != nil {
		t.Fatalf("create database failed: %v", err)
	}
	container, err := db.Containers().CreateIfNotExists(ctx, ContainerProperties{ID: "docs", PartitionKeyPath: "/tenantId"})
	if err != nil {
		t.Fatalf("create container failed: %v", err)
	}

	query := "SELECT VALUE COUNT(1) FROM c"
	if _, err := container.Items().Query(ctx, query, nil); err != nil {
		t.Fatalf("query failed: %v", err)
	}

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Operation != "query" {
		t.Fatalf("expected operation query, got %q", ops[0].Operation)
	}
	if ops[0].Metadata["query"] != query {
		t.Fatalf("expected query metadata, got %v", ops[0].Metadata)
	}
}
