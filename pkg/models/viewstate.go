package models

import "sort"

// ZoomLevel is a discrete card-size setting.
type ZoomLevel string

const (
	ZoomCompact     ZoomLevel = "compact"
	ZoomDefault     ZoomLevel = "default"
	ZoomComfortable ZoomLevel = "comfortable"
	ZoomLarge       ZoomLevel = "large"
)

// ZoomLevels lists the levels from smallest to largest card size.
var ZoomLevels = []ZoomLevel{ZoomCompact, ZoomDefault, ZoomComfortable, ZoomLarge}

// Valid reports whether z is one of the known zoom levels.
func (z ZoomLevel) Valid() bool {
	for _, l := range ZoomLevels {
		if z == l {
			return true
		}
	}
	return false
}

// GroupingMode selects the partition key for layout buckets.
type GroupingMode string

const (
	GroupByCategory GroupingMode = "category"
	GroupByGroup    GroupingMode = "group"
)

// Valid reports whether g is a known grouping mode.
func (g GroupingMode) Valid() bool {
	return g == GroupByCategory || g == GroupByGroup
}

// FilterCriteria restricts the visible item set. A facet with an empty (or
// absent) value set places no restriction on that facet; an item passes iff
// it satisfies every non-empty facet restriction and, when Query is
// non-empty, matches the search index.
type FilterCriteria struct {
	Facets map[string][]string
	Query  string
}

// Clone returns a deep copy so callers can modify criteria without
// aliasing a shared state.
func (fc FilterCriteria) Clone() FilterCriteria {
	out := FilterCriteria{Query: fc.Query}
	if len(fc.Facets) > 0 {
		out.Facets = make(map[string][]string, len(fc.Facets))
		for name, values := range fc.Facets {
			out.Facets[name] = append([]string(nil), values...)
		}
	}
	return out
}

// Canonical returns a copy with facet values sorted and deduplicated and
// empty restrictions removed. Semantically equal criteria have identical
// canonical forms, which backs both serialization and memoization.
func (fc FilterCriteria) Canonical() FilterCriteria {
	out := FilterCriteria{Query: fc.Query}
	for name, values := range fc.Facets {
		if len(values) == 0 {
			continue
		}
		uniq := make([]string, 0, len(values))
		seen := make(map[string]bool, len(values))
		for _, v := range values {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			uniq = append(uniq, v)
		}
		if len(uniq) == 0 {
			continue
		}
		sort.Strings(uniq)
		if out.Facets == nil {
			out.Facets = make(map[string][]string)
		}
		out.Facets[name] = uniq
	}
	return out
}

// IsEmpty reports whether the criteria place no restriction at all.
func (fc FilterCriteria) IsEmpty() bool {
	if fc.Query != "" {
		return false
	}
	for _, values := range fc.Facets {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// ViewState is the complete, serializable description of what the user is
// currently viewing. It is the single mutable root: every derived value
// (visible set, layout) is a pure function of a ViewState plus a catalog
// snapshot. States are treated as values; patches build new ones.
type ViewState struct {
	Filters       FilterCriteria
	SelectedItem  string
	Grouping      GroupingMode
	Zoom          ZoomLevel
	ViewportWidth int
}

// DefaultViewportWidth is used until the render surface reports a size.
const DefaultViewportWidth = 1200

// DefaultViewState returns the state used at startup when the URL carries
// no parameters.
func DefaultViewState() ViewState {
	return ViewState{
		Grouping:      GroupByCategory,
		Zoom:          ZoomDefault,
		ViewportWidth: DefaultViewportWidth,
	}
}

// Clone returns a deep copy of the state.
func (vs ViewState) Clone() ViewState {
	out := vs
	out.Filters = vs.Filters.Clone()
	return out
}

// StatePatch is a sparse update merged into a ViewState. Nil fields leave
// the corresponding state field untouched.
type StatePatch struct {
	Facets        map[string][]string // per-facet replacement; nil slice clears the restriction
	Query         *string
	SelectedItem  *string
	Grouping      *GroupingMode
	Zoom          *ZoomLevel
	ViewportWidth *int
}

// Apply merges the patch into vs and returns a new complete state. The
// receiver is never modified, so consumers comparing snapshots by identity
// detect changes reliably.
func (vs ViewState) Apply(p StatePatch) ViewState {
	out := vs.Clone()
	for name, values := range p.Facets {
		if out.Filters.Facets == nil {
			out.Filters.Facets = make(map[string][]string)
		}
		if len(values) == 0 {
			delete(out.Filters.Facets, name)
			continue
		}
		out.Filters.Facets[name] = append([]string(nil), values...)
	}
	if p.Query != nil {
		out.Filters.Query = *p.Query
	}
	if p.SelectedItem != nil {
		out.SelectedItem = *p.SelectedItem
	}
	if p.Grouping != nil && p.Grouping.Valid() {
		out.Grouping = *p.Grouping
	}
	if p.Zoom != nil && p.Zoom.Valid() {
		out.Zoom = *p.Zoom
	}
	if p.ViewportWidth != nil && *p.ViewportWidth > 0 {
		out.ViewportWidth = *p.ViewportWidth
	}
	out.Filters = out.Filters.Canonical()
	return out
}

// Equal reports whether two states describe the same view. Facet sets are
// compared canonically, so value order does not matter.
func (vs ViewState) Equal(other ViewState) bool {
	if vs.SelectedItem != other.SelectedItem ||
		vs.Grouping != other.Grouping ||
		vs.Zoom != other.Zoom ||
		vs.ViewportWidth != other.ViewportWidth ||
		vs.Filters.Query != other.Filters.Query {
		return false
	}
	a, b := vs.Filters.Canonical(), other.Filters.Canonical()
	if len(a.Facets) != len(b.Facets) {
		return false
	}
	for name, av := range a.Facets {
		bv, ok := b.Facets[name]
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
	}
	return true
}
