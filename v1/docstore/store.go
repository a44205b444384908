package docstore

import (
	"encoding/json"
	"fmt"
	"sync"
)

// containerStore holds the documents of one container, keyed by the
// composite of the document id and its serialized partition key value.
// Within one container that composite identifies at most one document; the
// same id may exist in different partitions.
//
// All methods are safe for concurrent use.
type containerStore struct {
	// partitionKeyPath is the dotted field path whose value determines a
	// document's partition. Immutable after creation.
	partitionKeyPath string

	// mu guards docs. Upserts, reads and deletes interleave arbitrarily and
	// the key -> document mapping must stay consistent under concurrent
	// writers.
	mu   sync.RWMutex
	docs map[string]Document
}

func newContainerStore(partitionKeyPath string) *containerStore {
	return &containerStore{
		partitionKeyPath: partitionKeyPath,
		docs:             make(map[string]Document),
	}
}

// storageKey builds the composite lookup key for an id and a canonicalized
// partition key value. The partition key is serialized because partition
// key values may be composite (arrays) in principle.
func storageKey(id string, partitionKey any) (string, error) {
	raw, err := json.Marshal(partitionKey)
	if err != nil {
		return "", fmt.Errorf("docstore: serialize partition key: %w", err)
	}
	return id + "\x00" + string(raw), nil
}

// validPartitionKeyValue reports whether a resolved (canonicalized)
// partition key value has one of the allowed types: null, string, number,
// boolean, or an array of JSON values. Objects are not allowed.
func validPartitionKeyValue(v any) bool {
	switch v.(type) {
	case nil, string, float64, bool, []any:
		return true
	default:
		return false
	}
}

// upsert validates and stores a clone of doc, replacing any prior document
// with the same (id, partition key) composite. It returns a second clone of
// the stored state so the caller never shares a reference with the store.
func (s *containerStore) upsert(doc Document) (Document, error) {
	id, ok := doc["id"].(string)
	if !ok || id == "" {
		return nil, ErrInvalidID
	}

	stored, err := cloneDocument(doc)
	if err != nil {
		return nil, err
	}

	partitionKey, found := resolvePath(stored, s.partitionKeyPath)
	if !found {
		return nil, fmt.Errorf("%w: path %q is not set on document %q", ErrInvalidPartitionKey, s.partitionKeyPath, id)
	}
	if !validPartitionKeyValue(partitionKey) {
		return nil, fmt.Errorf("%w: path %q on document %q resolves to an object", ErrInvalidPartitionKey, s.partitionKeyPath, id)
	}

	key, err := storageKey(id, partitionKey)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.docs[key] = stored
	s.mu.Unlock()

	return cloneDocument(stored)
}

// read returns a clone of the document with the given id, or nil when no
// such document exists. When scoped is true the lookup is an exact key
// lookup in the partition identified by partitionKey; otherwise the store
// scans all partitions and the first document with a matching id wins, in
// unspecified order.
func (s *containerStore) read(id string, partitionKey any, scoped bool) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.lookupLocked(id, partitionKey, scoped)
	if err != nil || doc == nil {
		return nil, err
	}
	return cloneDocument(doc)
}

// delete removes the document with the given id and returns its pre-removal
// clone. Unlike read, absence is an error: the emulated service responds
// with a 404 when deleting a missing item.
func (s *containerStore) delete(id string, partitionKey any, scoped bool) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.lookupLocked(id, partitionKey, scoped)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, newNotFoundError(id)
	}

	clone, err := cloneDocument(doc)
	if err != nil {
		return nil, err
	}

	key, err := s.keyOfLocked(doc)
	if err != nil {
		return nil, err
	}
	delete(s.docs, key)

	return clone, nil
}

// list returns clones of all documents. When scoped is true only documents
// whose resolved partition key value deep-equals partitionKey are included.
func (s *containerStore) list(partitionKey any, scoped bool) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Document
	for _, doc := range s.docs {
		if scoped {
			value, _ := resolvePath(doc, s.partitionKeyPath)
			if !deepEqual(value, partitionKey) {
				continue
			}
		}
		clone, err := cloneDocument(doc)
		if err != nil {
			return nil, err
		}
		docs = append(docs, clone)
	}
	return docs, nil
}

// lookupLocked finds a stored document by id, either via an exact key
// lookup or a scan across partitions. Callers must hold mu.
func (s *containerStore) lookupLocked(id string, partitionKey any, scoped bool) (Document, error) {
	if scoped {
		canonical, err := canonicalValue(partitionKey)
		if err != nil {
			return nil, err
		}
		key, err := storageKey(id, canonical)
		if err != nil {
			return nil, err
		}
		return s.docs[key], nil
	}

	for _, doc := range s.docs {
		if doc["id"] == id {
			return doc, nil
		}
	}
	return nil, nil
}

// keyOfLocked recomputes the storage key of a stored document.
func (s *containerStore) keyOfLocked(doc Document) (string, error) {
	id, _ := doc["id"].(string)
	partitionKey, _ := resolvePath(doc, s.partitionKeyPath)
	return storageKey(id, partitionKey)
}
