// Package app contains the application services that implement the primary
// ports, orchestrating core guards, repositories, and the event hub.
package app

import (
	"sync"

	"github.com/example/dealboard/internal/ports/secondary"
)

// DealStore is the local cache of a pipeline's deals. Reads serve board
// assembly without touching persistence; writes happen only through Load,
// Replace, Remove, and ApplyEvent, keeping the store a mirror of stored
// state rather than a source of truth.
//
// Insertion order is preserved so snapshots render deterministically.
type DealStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*secondary.DealRecord
}

// NewDealStore creates an empty deal store.
func NewDealStore() *DealStore {
	return &DealStore{byID: make(map[string]*secondary.DealRecord)}
}

// Load resets the store to the given records, discarding previous contents.
func (s *DealStore) Load(records []*secondary.DealRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]string, 0, len(records))
	s.byID = make(map[string]*secondary.DealRecord, len(records))
	for _, r := range records {
		if _, ok := s.byID[r.ID]; !ok {
			s.order = append(s.order, r.ID)
		}
		s.byID[r.ID] = r
	}
}

// Get returns the cached record for the given deal, or nil when absent.
func (s *DealStore) Get(id string) *secondary.DealRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// Snapshot returns the cached records in insertion order.
func (s *DealStore) Snapshot() []*secondary.DealRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*secondary.DealRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Len returns the number of cached records.
func (s *DealStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Replace swaps the cached record with the given one, matching by ID. A
// record not present is appended, so replaying the same authoritative state
// twice converges instead of duplicating.
func (s *DealStore) Replace(record *secondary.DealRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(record)
}

// Remove drops the record with the given ID. Removing an absent ID is a
// no-op.
func (s *DealStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(id)
}

// ApplyEvent folds a change event into the cache: inserts append, updates
// replace by ID, deletes remove by ID.
func (s *DealStore) ApplyEvent(event secondary.DealEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Type {
	case secondary.DealEventInsert:
		if event.New != nil {
			s.put(event.New)
		}
	case secondary.DealEventUpdate:
		if event.New != nil {
			s.put(event.New)
		}
	case secondary.DealEventDelete:
		if event.Old != nil {
			s.drop(event.Old.ID)
		}
	}
}

func (s *DealStore) put(record *secondary.DealRecord) {
	if _, ok := s.byID[record.ID]; !ok {
		s.order = append(s.order, record.ID)
	}
	s.byID[record.ID] = record
}

func (s *DealStore) drop(id string) {
	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
