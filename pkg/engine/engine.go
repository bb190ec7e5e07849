// Package engine wires the catalog, search index, filter engine and
// layout engine behind a single patch operation. Every state change runs
// the whole Filter -> Layout pipeline to completion and publishes one
// read-only snapshot, so no consumer ever pairs a visible set computed
// against a stale state with a fresher layout.
package engine

import (
	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/filter"
	"github.com/MovieMaker93/landscape2/pkg/layout"
	"github.com/MovieMaker93/landscape2/pkg/models"
	"github.com/MovieMaker93/landscape2/pkg/search"
	"github.com/MovieMaker93/landscape2/pkg/viewstate"
)

// Snapshot is the read-only result of one recomputation. The render
// surface consumes it as-is and must not mutate it.
type Snapshot struct {
	State    models.ViewState
	Visible  map[string]bool
	Layout   *layout.Result
	Warnings []string
}

// Engine coordinates a catalog snapshot with the current view state.
type Engine struct {
	cat    *catalog.Catalog
	index  *search.Index
	filter *filter.Engine
	store  *viewstate.Store
	policy layout.Policy

	snapshot Snapshot
	subs     []func(Snapshot)
}

// New builds an engine around a validated catalog and an initial state.
func New(cat *catalog.Catalog, initial models.ViewState, policy layout.Policy) *Engine {
	e := &Engine{
		cat:    cat,
		index:  search.Build(cat.Items()),
		policy: policy,
	}
	e.filter = filter.New(cat, e.index)
	e.store = viewstate.NewStore(initial)
	e.store.Subscribe(func(state models.ViewState) {
		e.recompute(state)
	})
	e.recompute(e.store.Current())
	return e
}

// Catalog returns the current catalog snapshot.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Snapshot returns the latest recomputation result.
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot
}

// State returns the current view state.
func (e *Engine) State() models.ViewState {
	return e.store.Current()
}

// Subscribe registers a callback invoked with each fresh snapshot.
func (e *Engine) Subscribe(fn func(Snapshot)) {
	e.subs = append(e.subs, fn)
}

// Patch applies a sparse state update, recomputes the derived values and
// returns the resulting snapshot. A no-op patch returns the existing
// snapshot unchanged.
func (e *Engine) Patch(p models.StatePatch) Snapshot {
	e.store.Patch(p)
	return e.snapshot
}

// Restore swaps in a complete state, typically decoded from a URL.
func (e *Engine) Restore(state models.ViewState) Snapshot {
	e.store.Replace(state)
	return e.snapshot
}

// ShareLink encodes the current state as a URL query string.
func (e *Engine) ShareLink() string {
	return viewstate.Encode(e.store.Current())
}

// Search returns ranked matches for jump-to-item style lookups. Ranking
// orders these results only; grid placement always follows catalog order.
func (e *Engine) Search(text string) []search.Match {
	matches, restricted := e.index.Query(text)
	if !restricted {
		return nil
	}
	return matches
}

// ReplaceCatalog installs a fresh catalog snapshot (copy-on-write reload)
// and recomputes against the current state. In-flight consumers keep the
// snapshot they started with.
func (e *Engine) ReplaceCatalog(cat *catalog.Catalog) Snapshot {
	e.cat = cat
	e.index = search.Build(cat.Items())
	e.filter = filter.New(cat, e.index)
	e.recompute(e.store.Current())
	return e.snapshot
}

func (e *Engine) recompute(state models.ViewState) {
	visible, filterWarnings := e.filter.ComputeVisible(state.Filters)
	result, gaps := layout.Compute(e.cat, visible, state.ViewportWidth, state.Zoom, state.Grouping, e.policy)

	var warnings []string
	for _, w := range filterWarnings {
		warnings = append(warnings, w.String())
	}
	for _, g := range gaps {
		warnings = append(warnings, g.String())
	}

	e.snapshot = Snapshot{
		State:    state,
		Visible:  visible,
		Layout:   result,
		Warnings: warnings,
	}
	for _, fn := range e.subs {
		fn(e.snapshot)
	}
}
