package layout

import (
	"reflect"
	"testing"

	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	raw := &models.Dataset{
		Categories: []models.Category{
			{ID: "a", Name: "Category A", Order: 1},
			{ID: "b", Name: "Category B", Order: 2},
		},
		Groups: []models.Group{
			{ID: "featured", Name: "Featured"},
		},
		Items: []models.Item{
			{ID: "a1", Name: "Alpha", Category: "a", Group: "featured"},
			{ID: "a2", Name: "Beta", Category: "a"},
			{ID: "a3", Name: "Gamma", Category: "a"},
			{ID: "b1", Name: "Delta", Category: "b"},
		},
	}
	cat, err := catalog.Load(raw)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return cat
}

func allVisible(cat *catalog.Catalog) map[string]bool {
	visible := make(map[string]bool)
	for _, id := range cat.ItemIDs() {
		visible[id] = true
	}
	return visible
}

func TestComputeTwoColumnGrid(t *testing.T) {
	cat := testCatalog(t)

	// Default policy: card 100 wide, gutter 20, so a 250-wide viewport
	// fits two columns.
	result, gaps := Compute(cat, allVisible(cat), 250, models.ZoomDefault, models.GroupByCategory, DefaultPolicy())
	if gaps != nil {
		t.Errorf("unexpected gaps: %v", gaps)
	}
	if len(result.Buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(result.Buckets))
	}

	a := result.Buckets[0]
	if a.Key != "a" || a.Columns != 2 {
		t.Fatalf("bucket a: key=%s columns=%d", a.Key, a.Columns)
	}
	if len(a.Placements) != 3 {
		t.Fatalf("expected 3 placements in bucket a, got %d", len(a.Placements))
	}

	// Row-major fill: row one holds a1 and a2, row two holds a3.
	if a.Placements[0].ItemID != "a1" || a.Placements[1].ItemID != "a2" || a.Placements[2].ItemID != "a3" {
		t.Errorf("unexpected placement order: %v", a.Placements)
	}
	if a.Placements[0].Box.X != 0 || a.Placements[1].Box.X != 120 {
		t.Errorf("row one x positions: %d, %d", a.Placements[0].Box.X, a.Placements[1].Box.X)
	}
	if a.Placements[0].Box.Y != a.Placements[1].Box.Y {
		t.Error("row one must share a y position")
	}
	if a.Placements[2].Box.X != 0 || a.Placements[2].Box.Y <= a.Placements[0].Box.Y {
		t.Errorf("a3 should start row two at x=0: %+v", a.Placements[2].Box)
	}

	b := result.Buckets[1]
	if b.Key != "b" || len(b.Placements) != 1 {
		t.Fatalf("bucket b: key=%s placements=%d", b.Key, len(b.Placements))
	}
	if b.Bounds.Y <= a.Bounds.Y+a.Bounds.Height-1 {
		t.Error("buckets must stack vertically without overlap")
	}
	if result.CanvasHeight != b.Bounds.Y+b.Bounds.Height {
		t.Errorf("canvas height %d != last bucket end %d", result.CanvasHeight, b.Bounds.Y+b.Bounds.Height)
	}
}

func TestComputeIdempotent(t *testing.T) {
	cat := testCatalog(t)
	visible := allVisible(cat)

	first, _ := Compute(cat, visible, 333, models.ZoomComfortable, models.GroupByCategory, DefaultPolicy())
	second, _ := Compute(cat, visible, 333, models.ZoomComfortable, models.GroupByCategory, DefaultPolicy())

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must yield identical layouts")
	}
}

func TestComputeOmitsEmptyBuckets(t *testing.T) {
	cat := testCatalog(t)

	visible := map[string]bool{"b1": true}
	result, _ := Compute(cat, visible, 250, models.ZoomDefault, models.GroupByCategory, DefaultPolicy())

	if len(result.Buckets) != 1 || result.Buckets[0].Key != "b" {
		t.Fatalf("expected only bucket b, got %+v", result.Buckets)
	}
}

func TestComputePinnedBucketStays(t *testing.T) {
	cat := testCatalog(t)

	policy := DefaultPolicy()
	policy.Pinned = []string{"a"}

	visible := map[string]bool{"b1": true}
	result, gaps := Compute(cat, visible, 250, models.ZoomDefault, models.GroupByCategory, policy)
	if gaps != nil {
		t.Errorf("pinned catalog bucket is not a gap: %v", gaps)
	}

	if len(result.Buckets) != 2 {
		t.Fatalf("expected pinned empty bucket plus b, got %+v", result.Buckets)
	}
	if result.Buckets[0].Key != "a" || len(result.Buckets[0].Placements) != 0 {
		t.Errorf("bucket a should render empty: %+v", result.Buckets[0])
	}
}

func TestComputeUnknownPinnedKeyIsGap(t *testing.T) {
	cat := testCatalog(t)

	policy := DefaultPolicy()
	policy.Pinned = []string{"missing"}

	result, gaps := Compute(cat, allVisible(cat), 250, models.ZoomDefault, models.GroupByCategory, policy)
	if len(gaps) != 1 || gaps[0].Key != "missing" {
		t.Fatalf("expected one gap for missing key, got %v", gaps)
	}

	// The failure stays isolated: the unknown bucket renders empty and
	// everything else still lays out.
	found := false
	for _, b := range result.Buckets {
		if b.Key == "missing" {
			found = true
			if len(b.Placements) != 0 {
				t.Errorf("missing bucket must be empty: %+v", b)
			}
		}
	}
	if !found {
		t.Error("missing bucket should still be present, empty")
	}
	if len(result.Buckets) != 3 {
		t.Errorf("expected buckets a, b and missing, got %+v", result.Buckets)
	}
}

func TestComputeMinimumOneColumn(t *testing.T) {
	cat := testCatalog(t)

	result, _ := Compute(cat, allVisible(cat), 10, models.ZoomLarge, models.GroupByCategory, DefaultPolicy())
	for _, b := range result.Buckets {
		if b.Columns != 1 {
			t.Errorf("bucket %s: expected 1 column at tiny width, got %d", b.Key, b.Columns)
		}
	}
}

func TestComputeGroupByGroup(t *testing.T) {
	cat := testCatalog(t)

	result, _ := Compute(cat, allVisible(cat), 250, models.ZoomDefault, models.GroupByGroup, DefaultPolicy())
	if len(result.Buckets) != 1 {
		t.Fatalf("expected one group bucket, got %+v", result.Buckets)
	}
	b := result.Buckets[0]
	if b.Key != "featured" || b.Kind != BucketGroup {
		t.Errorf("unexpected bucket: %+v", b)
	}
	if len(b.Placements) != 1 || b.Placements[0].ItemID != "a1" {
		t.Errorf("expected only a1 in featured, got %+v", b.Placements)
	}
}

func TestCardSizeMonotonicInZoom(t *testing.T) {
	policy := DefaultPolicy()
	prev := 0
	for _, zoom := range models.ZoomLevels {
		w := policy.CardWidths.At(zoom)
		if w < prev {
			t.Errorf("card width must not shrink as zoom grows: %s -> %d", zoom, w)
		}
		prev = w
	}
}

func TestBucketForUnknownKey(t *testing.T) {
	result := &Result{}
	b := result.BucketFor("ghost")
	if b.Key != "ghost" || len(b.Placements) != 0 {
		t.Errorf("unknown key should yield an empty bucket, got %+v", b)
	}
}
