// store/memory.go
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory document store. It backs tests and offline mode
// and mirrors the semantics of the Postgres store: partial patches, true field
// deletion, and all-or-nothing batches.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]map[string]map[string]interface{}
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]map[string]interface{}),
	}
}

// List returns every document in a collection
func (s *MemoryStore) List(collection string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	records := make([]Record, 0, len(docs))
	for id, doc := range docs {
		records = append(records, Record{ID: id, Data: copyDoc(doc)})
	}
	return records, nil
}

// Query returns documents whose fields equal every entry in filter
func (s *MemoryStore) Query(collection string, filter map[string]interface{}) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []Record
	for id, doc := range s.collections[collection] {
		if matches(doc, filter) {
			records = append(records, Record{ID: id, Data: copyDoc(doc)})
		}
	}
	return records, nil
}

// Add stores a new document and returns its assigned id
func (s *MemoryStore) Add(collection string, doc map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]interface{})
	}
	id := uuid.New().String()
	s.collections[collection][id] = copyDoc(doc)
	return id, nil
}

// Patch applies a partial update to one document
func (s *MemoryStore) Patch(collection, id string, update Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.patchLocked(collection, id, update)
}

// Delete removes one document
func (s *MemoryStore) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deleteLocked(collection, id)
}

// Batch applies every operation or none: all target ids are validated before
// any mutation happens, all under one lock.
func (s *MemoryStore) Batch(ops []WriteOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, op := range ops {
		if _, ok := s.collections[op.Collection][op.ID]; !ok {
			return fmt.Errorf("batch op on %s/%s: %w", op.Collection, op.ID, ErrNotFound)
		}
	}
	for _, op := range ops {
		switch op.Kind {
		case OpPatch:
			if err := s.patchLocked(op.Collection, op.ID, op.Patch); err != nil {
				return err
			}
		case OpDelete:
			if err := s.deleteLocked(op.Collection, op.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *MemoryStore) patchLocked(collection, id string, update Update) error {
	doc, ok := s.collections[collection][id]
	if !ok {
		return fmt.Errorf("patch %s/%s: %w", collection, id, ErrNotFound)
	}
	for key, value := range update.Set {
		doc[key] = value
	}
	for _, key := range update.Delete {
		delete(doc, key)
	}
	return nil
}

func (s *MemoryStore) deleteLocked(collection, id string) error {
	if _, ok := s.collections[collection][id]; !ok {
		return fmt.Errorf("delete %s/%s: %w", collection, id, ErrNotFound)
	}
	delete(s.collections[collection], id)
	return nil
}

// copyDoc deep-copies a document so callers never alias internal state
func copyDoc(doc map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(doc))
	for key, value := range doc {
		if nested, ok := value.(map[string]interface{}); ok {
			copied[key] = copyDoc(nested)
			continue
		}
		copied[key] = value
	}
	return copied
}

func matches(doc, filter map[string]interface{}) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || got != want {
			return false
		}
	}
	return true
}
