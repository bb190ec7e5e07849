package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/engine"
	"github.com/MovieMaker93/landscape2/pkg/models"
)

func testEngine(t *testing.T, viewportWidth int) *engine.Engine {
	t.Helper()
	dataset := &models.Dataset{
		Categories: []models.Category{
			{ID: "runtime", Name: "Runtime", Order: 1},
		},
		Items: []models.Item{
			{ID: "a", Name: "Alpha", Category: "runtime", Facets: map[string]string{"maturity": "graduated"}},
			{ID: "b", Name: "Beta", Category: "runtime", Facets: map[string]string{"maturity": "incubating"}},
			{ID: "c", Name: "Gamma", Category: "runtime", Facets: map[string]string{"maturity": "graduated"}},
			{ID: "d", Name: "Delta", Category: "runtime", Facets: map[string]string{"maturity": "sandbox"}},
			{ID: "e", Name: "Epsilon", Category: "runtime", Facets: map[string]string{"maturity": "graduated"}},
		},
	}
	cat, err := catalog.Load(dataset)
	if err != nil {
		t.Fatalf("failed to load test dataset: %v", err)
	}
	state := models.DefaultViewState()
	state.ViewportWidth = viewportWidth
	return engine.New(cat, state, CellPolicy(models.DefaultSettings()))
}

func TestCellPolicyDimensions(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Layout.PinnedBuckets = []string{"category:runtime"}
	policy := CellPolicy(settings)

	widths := policy.CardWidths
	if !(widths.Compact < widths.Default && widths.Default < widths.Comfortable && widths.Comfortable < widths.Large) {
		t.Errorf("card widths should grow with zoom: %+v", widths)
	}
	heights := policy.CardHeights
	if !(heights.Compact < heights.Default && heights.Default < heights.Comfortable && heights.Comfortable < heights.Large) {
		t.Errorf("card heights should grow with zoom: %+v", heights)
	}
	if len(policy.Pinned) != 1 || policy.Pinned[0] != "category:runtime" {
		t.Errorf("pinned buckets should come from settings: %v", policy.Pinned)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "abc", 10, "abc"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"long string gets ellipsis", "abcdefgh", 5, "abcd…"},
		{"single cell", "abc", 1, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}

func TestInterleave(t *testing.T) {
	got := interleave([]string{"a", "b", "c"}, "|")
	want := []string{"a", "|", "b", "|", "c"}
	if len(got) != len(want) {
		t.Fatalf("interleave length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interleave[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if out := interleave(nil, "|"); len(out) != 0 {
		t.Errorf("interleave(nil) should be empty, got %v", out)
	}
}

func TestCountRestrictions(t *testing.T) {
	criteria := models.FilterCriteria{
		Facets: map[string][]string{
			"maturity": {"graduated", "incubating"},
			"license":  {"Apache-2.0"},
		},
	}
	if n := countRestrictions(criteria); n != 3 {
		t.Errorf("expected 3 restrictions, got %d", n)
	}
	if n := countRestrictions(models.FilterCriteria{Query: "mesh"}); n != 0 {
		t.Errorf("query alone is not a facet restriction, got %d", n)
	}
}

func TestMoveSelectionClamps(t *testing.T) {
	eng := testEngine(t, 200)
	m := NewBrowserModel(eng, CellPolicy(models.DefaultSettings()))

	m.moveSelection(-1)
	if m.selection != 0 {
		t.Errorf("selection should clamp at 0, got %d", m.selection)
	}

	m.moveSelection(100)
	if m.selection != 4 {
		t.Errorf("selection should clamp at last placement, got %d", m.selection)
	}
}

func TestMoveSelectionRow(t *testing.T) {
	// Width 52 with 24-cell cards and a 2-cell gutter gives two columns.
	eng := testEngine(t, 52)
	m := NewBrowserModel(eng, CellPolicy(models.DefaultSettings()))

	cols := eng.Snapshot().Layout.Buckets[0].Columns
	if cols != 2 {
		t.Fatalf("expected 2 columns at width 52, got %d", cols)
	}

	m.moveSelectionRow(1)
	if m.selection != 2 {
		t.Errorf("down from 0 should land on 2, got %d", m.selection)
	}
	m.moveSelectionRow(-1)
	if m.selection != 0 {
		t.Errorf("up from 2 should land on 0, got %d", m.selection)
	}
}

func TestToggleFacet(t *testing.T) {
	eng := testEngine(t, 200)
	m := NewBrowserModel(eng, CellPolicy(models.DefaultSettings()))

	opt := facetOption{Facet: "maturity", Value: "graduated"}
	m.toggleFacet(opt)
	if !m.facetEnabled(opt) {
		t.Fatal("facet should be enabled after toggle")
	}
	if got := len(eng.Snapshot().Visible); got != 3 {
		t.Errorf("expected 3 graduated items visible, got %d", got)
	}

	m.toggleFacet(opt)
	if m.facetEnabled(opt) {
		t.Error("facet should be disabled after second toggle")
	}
	if got := len(eng.Snapshot().Visible); got != 5 {
		t.Errorf("expected full catalog visible again, got %d", got)
	}
}

func TestClearFacets(t *testing.T) {
	eng := testEngine(t, 200)
	m := NewBrowserModel(eng, CellPolicy(models.DefaultSettings()))

	m.toggleFacet(facetOption{Facet: "maturity", Value: "graduated"})
	m.toggleFacet(facetOption{Facet: "maturity", Value: "sandbox"})
	m.clearFacets()

	if n := countRestrictions(eng.State().Filters); n != 0 {
		t.Errorf("expected no restrictions after clear, got %d", n)
	}
}

func TestStepZoomStopsAtEnds(t *testing.T) {
	eng := testEngine(t, 200)
	m := NewBrowserModel(eng, CellPolicy(models.DefaultSettings()))

	m.stepZoom(-1)
	if eng.State().Zoom != models.ZoomCompact {
		t.Errorf("expected compact after zooming out, got %s", eng.State().Zoom)
	}
	m.stepZoom(-1)
	if eng.State().Zoom != models.ZoomCompact {
		t.Errorf("zoom should stop at compact, got %s", eng.State().Zoom)
	}

	for i := 0; i < 10; i++ {
		m.stepZoom(1)
	}
	if eng.State().Zoom != models.ZoomLarge {
		t.Errorf("zoom should stop at large, got %s", eng.State().Zoom)
	}
}

func TestToggleGrouping(t *testing.T) {
	eng := testEngine(t, 200)
	m := NewBrowserModel(eng, CellPolicy(models.DefaultSettings()))
	m.selection = 3

	m.toggleGrouping()
	if eng.State().Grouping != models.GroupByGroup {
		t.Errorf("expected group-by-group, got %s", eng.State().Grouping)
	}
	if m.selection != 0 {
		t.Errorf("switching grouping should reset the selection, got %d", m.selection)
	}

	m.toggleGrouping()
	if eng.State().Grouping != models.GroupByCategory {
		t.Errorf("expected group-by-category, got %s", eng.State().Grouping)
	}
}

func TestFilterPanelSurvivesFacetlessReload(t *testing.T) {
	eng := testEngine(t, 200)
	m := NewBrowserModel(eng, CellPolicy(models.DefaultSettings()))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	if !m.filterActive {
		t.Fatal("filter panel should open while facets exist")
	}

	bare := &models.Dataset{
		Categories: []models.Category{{ID: "runtime", Name: "Runtime", Order: 1}},
		Items: []models.Item{
			{ID: "plain", Name: "Plain", Category: "runtime"},
		},
	}
	cat, err := catalog.Load(bare)
	if err != nil {
		t.Fatalf("failed to load facetless dataset: %v", err)
	}
	eng.ReplaceCatalog(cat)
	m.refreshCatalog()

	if m.filterActive {
		t.Error("filter panel should close when no facets remain")
	}

	// Even with the panel forced open, toggling must not index an empty
	// option list.
	m.filterActive = true
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if n := countRestrictions(eng.State().Filters); n != 0 {
		t.Errorf("nothing to toggle, got %d restrictions", n)
	}
}

func TestSelectedItemID(t *testing.T) {
	eng := testEngine(t, 200)
	m := NewBrowserModel(eng, CellPolicy(models.DefaultSettings()))

	id, ok := m.selectedItemID()
	if !ok || id != "a" {
		t.Errorf("expected first placement %q, got %q (ok=%v)", "a", id, ok)
	}

	m.selection = 99
	if _, ok := m.selectedItemID(); ok {
		t.Error("out-of-range selection should report no item")
	}
}
