package filter

import (
	"sort"
	"strings"

	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/models"
	"github.com/MovieMaker93/landscape2/pkg/search"
)

// Facet names handled structurally rather than through the item facet map.
const (
	FacetCategory    = "category"
	FacetSubcategory = "subcategory"
	FacetGroup       = "group"
	FacetTags        = "tags"
)

// Warning records a non-fatal filter anomaly: a restriction named a value
// the catalog has never seen. The restriction still applies (matching
// nothing); the warning is surfaced, never thrown.
type Warning struct {
	Facet string
	Value string
}

func (w Warning) String() string {
	return "filter: facet " + w.Facet + " has no value " + w.Value
}

// Engine computes the visible item set for a catalog snapshot. Results
// are memoized by the canonical criteria key; an engine is bound to one
// immutable catalog/index pair, so cached sets never go stale.
type Engine struct {
	cat   *catalog.Catalog
	index *search.Index
	cache map[string]map[string]bool
}

// New creates a filter engine for the given catalog snapshot.
func New(cat *catalog.Catalog, index *search.Index) *Engine {
	return &Engine{
		cat:   cat,
		index: index,
		cache: make(map[string]map[string]bool),
	}
}

// ComputeVisible evaluates the criteria against the catalog and returns
// the visible item ids as an unordered set. Identical criteria always
// yield an identical set; the returned map is shared with the memo cache
// and must be treated as read-only.
func (e *Engine) ComputeVisible(criteria models.FilterCriteria) (map[string]bool, []Warning) {
	canonical := criteria.Canonical()
	key := cacheKey(canonical)
	if cached, ok := e.cache[key]; ok {
		return cached, nil
	}

	visible := make(map[string]bool, e.cat.Len())
	for _, id := range e.cat.ItemIDs() {
		visible[id] = true
	}

	var warnings []Warning
	for _, facet := range sortedFacets(canonical.Facets) {
		values := canonical.Facets[facet]
		accepted := make(map[string]bool)
		for _, value := range values {
			ids := e.matchFacet(facet, value)
			if len(ids) == 0 {
				warnings = append(warnings, Warning{Facet: facet, Value: value})
				continue
			}
			for _, id := range ids {
				accepted[id] = true
			}
		}
		visible = intersect(visible, accepted)
	}

	if matchSet, restricted := e.index.MatchSet(canonical.Query); restricted {
		visible = intersect(visible, matchSet)
	}

	e.cache[key] = visible
	return visible, warnings
}

// matchFacet returns the ids accepted by a single facet value. Category,
// subcategory, group and tags are structural; everything else goes
// through the item facet index.
func (e *Engine) matchFacet(facet, value string) []string {
	switch facet {
	case FacetCategory:
		return e.cat.CategoryItems(value)
	case FacetSubcategory:
		return e.cat.SubcategoryItems(value)
	case FacetGroup:
		return e.cat.GroupItems(value)
	case FacetTags:
		return e.cat.TaggedItems(value)
	default:
		return e.cat.FacetMatches(facet, value)
	}
}

func intersect(a map[string]bool, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for id := range a {
		if b[id] {
			out[id] = true
		}
	}
	return out
}

func sortedFacets(facets map[string][]string) []string {
	names := make([]string, 0, len(facets))
	for name := range facets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// cacheKey builds a canonical string key for memoization. Criteria that
// are semantically equal produce identical keys.
func cacheKey(canonical models.FilterCriteria) string {
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(canonical.Query)
	for _, facet := range sortedFacets(canonical.Facets) {
		b.WriteByte(';')
		b.WriteString(facet)
		b.WriteByte('=')
		b.WriteString(strings.Join(canonical.Facets[facet], ","))
	}
	return b.String()
}
