// Package corpus implements the symbol table: a hash-keyed set of Info
// records, keyed by SymbolID, with an auxiliary undocumented set populated
// by the extractor.
package corpus

import (
	"fmt"
	"sort"
	"sync"

	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// Undocumented is one entry of the extractor's undocumented-symbol set.
type Undocumented struct {
	ID       symbolid.ID
	Name     string
	Kind     info.Kind
	Location info.SourceLocation
}

// InfoSet is the corpus: every Info keyed by SymbolID, plus the
// undocumented set. Insert is exclusive on id: no two Info share the same
// id. Mutation methods take a write lock so that extraction — one task per
// compilation unit on a thread pool, writing into a shared, mutex-protected
// table — can populate the table concurrently; the finalizer itself runs
// single-threaded against a fully populated InfoSet.
type InfoSet struct {
	mu            sync.RWMutex
	byID          map[symbolid.ID]*info.Info
	undocumented  map[symbolid.ID]Undocumented
}

// New returns an empty InfoSet.
func New() *InfoSet {
	return &InfoSet{
		byID:         make(map[symbolid.ID]*info.Info),
		undocumented: make(map[symbolid.ID]Undocumented),
	}
}

// ErrDuplicateID is returned by Insert when id is already present.
type ErrDuplicateID struct{ ID symbolid.ID }

func (e *ErrDuplicateID) Error() string {
	return fmt.Sprintf("corpus: duplicate id %s", e.ID)
}

// Insert adds rec to the table. It is an error to insert a record whose ID
// is already present.
func (s *InfoSet) Insert(rec *info.Info) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[rec.ID]; exists {
		return &ErrDuplicateID{ID: rec.ID}
	}
	s.byID[rec.ID] = rec
	return nil
}

// Put inserts rec, overwriting any existing record with the same id. Unlike
// Insert it never errors; it exists for the finalizer's synthetic-entity
// passes (overload folding, base-member copying), which compute a
// deterministic id and should be idempotent if a pass runs twice.
func (s *InfoSet) Put(rec *info.Info) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[rec.ID] = rec
}

// Find returns the record for id, or nil if absent.
func (s *InfoSet) Find(id symbolid.ID) *info.Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byID[id]
}

// MustFind returns the record for id, panicking if absent. Finalizer passes
// use this once they have established (via an id taken from a tranche) that
// the record must exist — a miss at that point is an internal invariant
// violation, not a recoverable condition.
func (s *InfoSet) MustFind(id symbolid.ID) *info.Info {
	rec := s.Find(id)
	if rec == nil {
		panic(fmt.Sprintf("corpus: invariant violation: %s not found", id))
	}
	return rec
}

// Erase removes id from the table. It is used only by the namespace culler:
// no Info is destroyed during finalization by any other pass.
func (s *InfoSet) Erase(id symbolid.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// Len returns the number of records in the table.
func (s *InfoSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Each iterates over every record in a deterministic order (sorted by id),
// so finalizer output and diagnostics are reproducible across runs even
// though callers must not depend on any particular ordering.
func (s *InfoSet) Each(fn func(*info.Info) bool) {
	s.mu.RLock()
	ids := make([]symbolid.ID, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	s.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i].Compare(ids[j]) < 0 })

	for _, id := range ids {
		rec := s.Find(id)
		if rec == nil {
			continue // erased concurrently with iteration start
		}
		if !fn(rec) {
			return
		}
	}
}

// MarkUndocumented records that the extractor found id undocumented.
func (s *InfoSet) MarkUndocumented(u Undocumented) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undocumented[u.ID] = u
}

// IsUndocumented reports whether id was recorded as undocumented.
func (s *InfoSet) IsUndocumented(id symbolid.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.undocumented[id]
	return ok
}

// UndocumentedSet returns a snapshot of the undocumented set.
func (s *InfoSet) UndocumentedSet() []Undocumented {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Undocumented, 0, len(s.undocumented))
	for _, u := range s.undocumented {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Compare(out[j].ID) < 0 })
	return out
}
