package viewstate

import (
	"net/url"
	"sort"
	"strings"

	"github.com/MovieMaker93/landscape2/pkg/models"
)

// URL parameter names. Absence of a parameter means "use the default".
const (
	paramQuery       = "q"
	paramItem        = "item"
	paramGroupBy     = "group-by"
	paramZoom        = "zoom"
	paramCategory    = "category"
	paramTags        = "tags"
	facetParamPrefix = "f-"
)

// DecodeWarning records a malformed URL field. The field is dropped and
// its default substituted; the rest of the state still applies.
type DecodeWarning struct {
	Param  string
	Value  string
	Reason string
}

func (w DecodeWarning) String() string {
	return "state: dropped " + w.Param + "=" + w.Value + " (" + w.Reason + ")"
}

// Encode serializes the state to a URL query string. Facet value sets are
// canonicalized (sorted, deduplicated) so semantically equal states always
// serialize identically, and fields at their default are omitted.
//
// ViewportWidth is deliberately not serialized: it describes the local
// render surface, not the view, and the receiving surface reports its own
// size. Decode always yields the default width, so the round-trip
// guarantee covers every field except viewport width.
func Encode(state models.ViewState) string {
	values := url.Values{}
	criteria := state.Filters.Canonical()

	if criteria.Query != "" {
		values.Set(paramQuery, criteria.Query)
	}
	if state.SelectedItem != "" {
		values.Set(paramItem, state.SelectedItem)
	}
	if state.Grouping != "" && state.Grouping != models.GroupByCategory {
		values.Set(paramGroupBy, string(state.Grouping))
	}
	if state.Zoom != "" && state.Zoom != models.ZoomDefault {
		values.Set(paramZoom, string(state.Zoom))
	}

	for _, facet := range sortedFacetNames(criteria.Facets) {
		joined := strings.Join(criteria.Facets[facet], ",")
		switch facet {
		case "category":
			values.Set(paramCategory, joined)
		case "tags":
			values.Set(paramTags, joined)
		default:
			values.Set(facetParamPrefix+facet, joined)
		}
	}

	// url.Values.Encode sorts by key and percent-encodes, which keeps the
	// output canonical.
	return values.Encode()
}

// Decode parses a URL query string into a complete ViewState. Unknown
// parameters are ignored for forward compatibility; any individually
// malformed field is dropped with a warning and its default kept. Decode
// never fails: the worst input yields the default state.
func Decode(query string) (models.ViewState, []DecodeWarning) {
	state := models.DefaultViewState()
	var warnings []DecodeWarning

	query = strings.TrimPrefix(query, "?")
	values, err := url.ParseQuery(query)
	if err != nil {
		// ParseQuery keeps the pairs it could decode; use those and warn
		// about the rest.
		warnings = append(warnings, DecodeWarning{Param: "query", Value: query, Reason: err.Error()})
	}

	for param := range values {
		raw := values.Get(param)
		switch param {
		case paramQuery:
			state.Filters.Query = raw
		case paramItem:
			state.SelectedItem = raw
		case paramGroupBy:
			mode := models.GroupingMode(raw)
			if !mode.Valid() {
				warnings = append(warnings, DecodeWarning{Param: param, Value: raw, Reason: "unknown grouping mode"})
				continue
			}
			state.Grouping = mode
		case paramZoom:
			zoom := models.ZoomLevel(raw)
			if !zoom.Valid() {
				warnings = append(warnings, DecodeWarning{Param: param, Value: raw, Reason: "unknown zoom level"})
				continue
			}
			state.Zoom = zoom
		case paramCategory:
			setFacet(&state, "category", raw)
		case paramTags:
			setFacet(&state, "tags", raw)
		default:
			if facet, ok := strings.CutPrefix(param, facetParamPrefix); ok && facet != "" {
				setFacet(&state, facet, raw)
			}
			// Anything else is an unknown parameter: ignored, not an error.
		}
	}

	state.Filters = state.Filters.Canonical()
	return state, warnings
}

func setFacet(state *models.ViewState, facet, raw string) {
	var accepted []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			accepted = append(accepted, v)
		}
	}
	if len(accepted) == 0 {
		return
	}
	if state.Filters.Facets == nil {
		state.Filters.Facets = make(map[string][]string)
	}
	state.Filters.Facets[facet] = accepted
}

func sortedFacetNames(facets map[string][]string) []string {
	names := make([]string, 0, len(facets))
	for name := range facets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
