// Package state implements the client-side synchronization layer: one store
// per backend resource mirroring the last known server state, plus the
// reconcilers that merge gateway responses into it. Stores are process-wide
// and safe for concurrent readers; within one resource there is no request
// queuing — if two mutations race, each merge is applied in whatever order
// the responses land.
package state

import (
	"sync"

	"github.com/getfolio/folio/pkg/portfolio"
)

// Status is the request lifecycle of a store's most recent operation.
type Status string

// Lifecycle states. A store returns to Loading on the next operation; there
// is no automatic expiry of a terminal state.
const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Snapshot is a point-in-time copy of a store's state. Items is the cached
// list; Item is the independently cached single-entity projection (a getById
// result does not disturb the list).
type Snapshot[T portfolio.Entity] struct {
	Status  Status
	Items   []T
	Item    *T
	Err     string
	Message string
}

// Store holds the synchronized state for one resource. Construct one per
// resource per process; tests construct their own instead of sharing a
// package singleton.
type Store[T portfolio.Entity] struct {
	mu      sync.Mutex
	status  Status
	items   []T
	item    *T
	err     string
	message string

	subs   map[int]func()
	nextID int
}

// NewStore creates an empty store in the idle state.
func NewStore[T portfolio.Entity]() *Store[T] {
	return &Store[T]{status: StatusIdle}
}

// Snapshot returns a copy of the current state. The Items slice is copied so
// callers can never observe a half-applied merge.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot[T]{
		Status:  s.status,
		Err:     s.err,
		Message: s.message,
	}
	if s.items != nil {
		snap.Items = make([]T, len(s.items))
		copy(snap.Items, s.items)
	}
	if s.item != nil {
		item := *s.item
		snap.Item = &item
	}
	return snap
}

// Reset returns the store to its initial empty state. No network call is
// involved.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	s.status = StatusIdle
	s.items = nil
	s.item = nil
	s.err = ""
	s.message = ""
	s.mu.Unlock()
	s.notify()
}

// ClearMessages drops the error and confirmation texts without touching the
// cached data.
func (s *Store[T]) ClearMessages() {
	s.mu.Lock()
	s.err = ""
	s.message = ""
	s.mu.Unlock()
	s.notify()
}

// Subscribe registers a callback invoked after every state change. The
// returned function cancels the subscription. Callbacks run outside the
// store lock and must not assume any ordering between resources.
func (s *Store[T]) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]func())
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store[T]) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// begin marks an operation in flight. Previous error and confirmation texts
// are cleared so a stale banner can never outlive a newer outcome.
func (s *Store[T]) begin() {
	s.mu.Lock()
	s.status = StatusLoading
	s.err = ""
	s.message = ""
	s.mu.Unlock()
	s.notify()
}

// fail records a rejected operation. Cached data is left untouched: a failed
// call never corrupts previously known-good state.
func (s *Store[T]) fail(msg string) {
	s.mu.Lock()
	s.status = StatusFailed
	s.err = msg
	s.mu.Unlock()
	s.notify()
}

// replaceAll is the list merge policy: the fetched list fully replaces the
// cached one.
func (s *Store[T]) replaceAll(items []T, msg string) {
	s.mu.Lock()
	s.status = StatusSucceeded
	if items == nil {
		items = []T{}
	}
	s.items = items
	s.message = msg
	s.mu.Unlock()
	s.notify()
}

// setItem is the getById merge policy: only the single-entity projection
// changes; the cached list stays as it was.
func (s *Store[T]) setItem(item *T, msg string) {
	s.mu.Lock()
	s.status = StatusSucceeded
	s.item = item
	s.message = msg
	s.mu.Unlock()
	s.notify()
}

// appendItem is the create merge policy: append the returned entity unless
// it has no identity or an entity with the same identity is already cached
// (a racing list refetch may have landed first).
func (s *Store[T]) appendItem(item *T, msg string) {
	s.mu.Lock()
	s.status = StatusSucceeded
	s.message = msg
	if item != nil && (*item).EntityID() != "" && !s.containsLocked((*item).EntityID()) {
		s.items = append(s.items, *item)
	}
	s.mu.Unlock()
	s.notify()
}

// replaceItem is the update merge policy: swap the cached entry whose
// identity matches the response entity. No match is a silent no-op, not an
// error.
func (s *Store[T]) replaceItem(item *T, msg string) {
	s.mu.Lock()
	s.status = StatusSucceeded
	s.message = msg
	if item != nil {
		id := (*item).EntityID()
		for i := range s.items {
			if s.items[i].EntityID() == id {
				s.items[i] = *item
				break
			}
		}
	}
	s.mu.Unlock()
	s.notify()
}

// removeItem is the delete merge policy. The id comes from the call site,
// not the response: the server's delete reply is not assumed to echo it.
func (s *Store[T]) removeItem(id string, msg string) {
	s.mu.Lock()
	s.status = StatusSucceeded
	s.message = msg
	kept := s.items[:0]
	for _, it := range s.items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notify()
}

func (s *Store[T]) containsLocked(id string) bool {
	for _, it := range s.items {
		if it.EntityID() == id {
			return true
		}
	}
	return false
}
