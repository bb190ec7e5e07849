package viewstate

import "github.com/MovieMaker93/landscape2/pkg/models"

// Store holds the current ViewState and notifies subscribers when it
// changes. States are values: every patch produces a new complete state,
// and a shared instance is never mutated in place, so consumers comparing
// snapshots detect changes reliably.
//
// The core runs single-threaded and reactive-cooperative; the store does
// no locking. Notifications run synchronously on the calling goroutine
// before Patch returns, which keeps state and derived recomputation
// atomic with respect to further reads.
type Store struct {
	state models.ViewState
	subs  []func(models.ViewState)
}

// NewStore creates a store with the given initial state.
func NewStore(initial models.ViewState) *Store {
	initial.Filters = initial.Filters.Canonical()
	return &Store{state: initial}
}

// Current returns the current state.
func (s *Store) Current() models.ViewState {
	return s.state
}

// Subscribe registers a callback invoked with each new state.
func (s *Store) Subscribe(fn func(models.ViewState)) {
	s.subs = append(s.subs, fn)
}

// Patch merges a sparse update into the current state and returns the new
// state. A patch that changes nothing does not notify subscribers.
func (s *Store) Patch(p models.StatePatch) models.ViewState {
	next := s.state.Apply(p)
	if next.Equal(s.state) {
		return s.state
	}
	s.state = next
	for _, fn := range s.subs {
		fn(next)
	}
	return next
}

// Replace swaps in a complete state, typically one decoded from a URL.
func (s *Store) Replace(state models.ViewState) models.ViewState {
	state.Filters = state.Filters.Canonical()
	if state.Equal(s.state) {
		return s.state
	}
	s.state = state
	for _, fn := range s.subs {
		fn(state)
	}
	return s.state
}
