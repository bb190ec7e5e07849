package filter

import (
	"testing"

	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/models"
	"github.com/MovieMaker93/landscape2/pkg/search"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	raw := &models.Dataset{
		Categories: []models.Category{
			{ID: "observability", Name: "Observability", Order: 1},
			{ID: "runtime", Name: "Runtime", Order: 2},
		},
		Items: []models.Item{
			{ID: "prometheus", Name: "Prometheus", Category: "observability", Tags: []string{"metrics"}, Facets: map[string]string{"license": "Apache-2.0", "maturity": "graduated"}},
			{ID: "grafana", Name: "Grafana", Category: "observability", Tags: []string{"metrics", "dashboards"}, Facets: map[string]string{"license": "AGPL-3.0", "maturity": "none"}},
			{ID: "containerd", Name: "containerd", Category: "runtime", Facets: map[string]string{"license": "Apache-2.0", "maturity": "graduated"}},
			{ID: "podman", Name: "Podman", Category: "runtime", Facets: map[string]string{"license": "Apache-2.0"}},
		},
	}
	cat, err := catalog.Load(raw)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return New(cat, search.Build(cat.Items()))
}

func criteria(facets map[string][]string, query string) models.FilterCriteria {
	return models.FilterCriteria{Facets: facets, Query: query}
}

func TestComputeVisibleNoRestriction(t *testing.T) {
	e := testEngine(t)

	visible, warnings := e.ComputeVisible(criteria(nil, ""))
	if len(visible) != 4 {
		t.Errorf("expected all 4 items visible, got %d", len(visible))
	}
	if warnings != nil {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestComputeVisibleMaturityFacet(t *testing.T) {
	e := testEngine(t)

	// Restricting maturity to graduated against a catalog where 2 of 4
	// items carry it yields exactly that pair.
	visible, _ := e.ComputeVisible(criteria(map[string][]string{"maturity": {"graduated"}}, ""))
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible items, got %d", len(visible))
	}
	if !visible["prometheus"] || !visible["containerd"] {
		t.Errorf("unexpected visible set: %v", visible)
	}
}

func TestComputeVisibleAndAcrossFacets(t *testing.T) {
	e := testEngine(t)

	visible, _ := e.ComputeVisible(criteria(map[string][]string{
		"license":  {"Apache-2.0"},
		"category": {"runtime"},
	}, ""))
	if len(visible) != 2 || !visible["containerd"] || !visible["podman"] {
		t.Errorf("expected containerd and podman, got %v", visible)
	}
}

func TestComputeVisibleQueryIntersection(t *testing.T) {
	e := testEngine(t)

	visible, _ := e.ComputeVisible(criteria(map[string][]string{"license": {"Apache-2.0"}}, "prome"))
	if len(visible) != 1 || !visible["prometheus"] {
		t.Errorf("expected only prometheus, got %v", visible)
	}

	// A whitespace-only query places no restriction.
	visible, _ = e.ComputeVisible(criteria(nil, "   "))
	if len(visible) != 4 {
		t.Errorf("whitespace query should not restrict, got %d items", len(visible))
	}
}

func TestComputeVisibleUnknownValueWarns(t *testing.T) {
	e := testEngine(t)

	visible, warnings := e.ComputeVisible(criteria(map[string][]string{"license": {"GPL-3.0"}}, ""))
	if len(visible) != 0 {
		t.Errorf("unknown facet value should match nothing, got %v", visible)
	}
	if len(warnings) != 1 || warnings[0].Facet != "license" || warnings[0].Value != "GPL-3.0" {
		t.Errorf("expected a single license warning, got %v", warnings)
	}
}

func TestFilterMonotonicity(t *testing.T) {
	e := testEngine(t)

	unrestricted, _ := e.ComputeVisible(criteria(nil, ""))
	oneFacet, _ := e.ComputeVisible(criteria(map[string][]string{"license": {"Apache-2.0"}}, ""))
	twoFacets, _ := e.ComputeVisible(criteria(map[string][]string{
		"license":  {"Apache-2.0"},
		"maturity": {"graduated"},
	}, ""))

	if len(oneFacet) > len(unrestricted) {
		t.Error("adding a restriction must never grow the visible set")
	}
	if len(twoFacets) > len(oneFacet) {
		t.Error("adding a second restriction must never grow the visible set")
	}
	for id := range twoFacets {
		if !oneFacet[id] {
			t.Errorf("%s visible under stricter criteria but not looser", id)
		}
	}
}

func TestFilterDeterminismAndMemoization(t *testing.T) {
	e := testEngine(t)

	c := criteria(map[string][]string{"license": {"Apache-2.0", "AGPL-3.0"}}, "")
	first, _ := e.ComputeVisible(c)

	// Same criteria with permuted values: canonical form is identical,
	// so membership must be too.
	permuted := criteria(map[string][]string{"license": {"AGPL-3.0", "Apache-2.0"}}, "")
	second, _ := e.ComputeVisible(permuted)

	if len(first) != len(second) {
		t.Fatalf("determinism violated: %d vs %d items", len(first), len(second))
	}
	for id := range first {
		if !second[id] {
			t.Errorf("memberships differ on %s", id)
		}
	}
}
