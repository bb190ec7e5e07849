package layout

import (
	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/models"
)

// BucketKind tells the render surface what a bucket's key refers to.
type BucketKind string

const (
	BucketCategory    BucketKind = "category"
	BucketSubcategory BucketKind = "subcategory"
	BucketGroup       BucketKind = "group"
)

// Box is a rectangle in canvas coordinates.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Placement positions one visible item on the canvas.
type Placement struct {
	ItemID string
	Box    Box
}

// Bucket is a rendering partition: a category, subcategory or group with
// its visible items placed row-major in stable catalog order.
type Bucket struct {
	Key        string
	Kind       BucketKind
	Title      string
	Color      string
	Columns    int
	Bounds     Box
	Placements []Placement
}

// Result is a disposable layout snapshot. It is recomputed whole on every
// input change and never mutated in place.
type Result struct {
	Buckets      []Bucket
	CanvasWidth  int
	CanvasHeight int
}

// BucketFor returns the bucket with the given key. A key absent from the
// result yields an empty bucket rather than an error, so a stale request
// never fails the caller.
func (r *Result) BucketFor(key string) Bucket {
	for _, b := range r.Buckets {
		if b.Key == key {
			return b
		}
	}
	return Bucket{Key: key}
}

// Gap records a non-fatal layout anomaly: a pinned bucket key with no
// catalog entry behind it. The bucket renders empty; nothing fails.
type Gap struct {
	Key string
}

func (g Gap) String() string {
	return "layout: no catalog entry for bucket " + g.Key
}

// Policy is the card-size policy: gutter, spacing and per-zoom card
// dimensions. Card size must grow monotonically with the zoom level.
type Policy struct {
	Gutter        int
	BucketSpacing int
	HeaderHeight  int
	CardWidths    models.CardDimension
	CardHeights   models.CardDimension
	Pinned        []string
}

// PolicyFromSettings builds a layout policy from configuration.
func PolicyFromSettings(s models.LayoutSettings) Policy {
	return Policy{
		Gutter:        s.Gutter,
		BucketSpacing: s.BucketSpacing,
		HeaderHeight:  s.CardHeights.Compact / 2,
		CardWidths:    s.CardWidths,
		CardHeights:   s.CardHeights,
		Pinned:        s.PinnedBuckets,
	}
}

// DefaultPolicy returns the policy backing the default settings.
func DefaultPolicy() Policy {
	return PolicyFromSettings(models.DefaultSettings().Layout)
}

func (p Policy) pinned(key string) bool {
	for _, k := range p.Pinned {
		if k == key {
			return true
		}
	}
	return false
}

// Compute arranges the visible items into buckets for the active grouping
// mode. The computation is pure: identical inputs produce byte-identical
// placements, so recomputing after a no-op change is safe and cheap to
// compare. Buckets with no visible items are omitted unless pinned.
func Compute(cat *catalog.Catalog, visible map[string]bool, viewportWidth int, zoom models.ZoomLevel, grouping models.GroupingMode, policy Policy) (*Result, []Gap) {
	if viewportWidth < 1 {
		viewportWidth = 1
	}

	specs := bucketSpecs(cat, grouping)
	result := &Result{CanvasWidth: viewportWidth}

	var gaps []Gap
	seen := make(map[string]bool, len(specs))
	y := 0
	for _, spec := range specs {
		seen[spec.key] = true
		kept := make([]string, 0, len(spec.items))
		for _, id := range spec.items {
			if visible[id] {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 && !policy.pinned(spec.key) {
			continue
		}
		bucket := placeBucket(spec, kept, y, viewportWidth, zoom, policy)
		result.Buckets = append(result.Buckets, bucket)
		y = bucket.Bounds.Y + bucket.Bounds.Height + policy.BucketSpacing
	}

	// Pinned keys with no catalog entry still render, empty. Partial
	// failure stays isolated at bucket granularity.
	for _, key := range policy.Pinned {
		if seen[key] {
			continue
		}
		gaps = append(gaps, Gap{Key: key})
		bucket := placeBucket(bucketSpec{key: key, kind: BucketCategory, title: key}, nil, y, viewportWidth, zoom, policy)
		result.Buckets = append(result.Buckets, bucket)
		y = bucket.Bounds.Y + bucket.Bounds.Height + policy.BucketSpacing
	}

	if len(result.Buckets) > 0 {
		last := result.Buckets[len(result.Buckets)-1]
		result.CanvasHeight = last.Bounds.Y + last.Bounds.Height
	}
	return result, gaps
}

type bucketSpec struct {
	key   string
	kind  BucketKind
	title string
	color string
	items []string
}

// bucketSpecs enumerates candidate buckets in catalog-declared order.
func bucketSpecs(cat *catalog.Catalog, grouping models.GroupingMode) []bucketSpec {
	var specs []bucketSpec
	if grouping == models.GroupByGroup {
		for _, g := range cat.Groups() {
			specs = append(specs, bucketSpec{
				key:   g.ID,
				kind:  BucketGroup,
				title: g.Name,
				items: cat.GroupItems(g.ID),
			})
		}
		return specs
	}
	for _, c := range cat.Categories() {
		if direct := cat.DirectItems(c.ID); len(direct) > 0 || len(c.Subcategories) == 0 {
			specs = append(specs, bucketSpec{
				key:   c.ID,
				kind:  BucketCategory,
				title: c.Name,
				color: c.Color,
				items: direct,
			})
		}
		for _, sub := range c.Subcategories {
			specs = append(specs, bucketSpec{
				key:   sub.ID,
				kind:  BucketSubcategory,
				title: c.Name + " / " + sub.Name,
				color: c.Color,
				items: cat.SubcategoryItems(sub.ID),
			})
		}
	}
	return specs
}

// placeBucket fills one bucket row-major, left to right, top to bottom.
func placeBucket(spec bucketSpec, items []string, offsetY, viewportWidth int, zoom models.ZoomLevel, policy Policy) Bucket {
	cardW := policy.CardWidths.At(zoom)
	cardH := policy.CardHeights.At(zoom)

	columns := 1
	if step := cardW + policy.Gutter; step > 0 {
		columns = viewportWidth / step
		if columns < 1 {
			columns = 1
		}
	}

	bucket := Bucket{
		Key:     spec.key,
		Kind:    spec.kind,
		Title:   spec.title,
		Color:   spec.color,
		Columns: columns,
	}

	rows := 0
	if len(items) > 0 {
		rows = (len(items) + columns - 1) / columns
	}
	for i, id := range items {
		col := i % columns
		row := i / columns
		bucket.Placements = append(bucket.Placements, Placement{
			ItemID: id,
			Box: Box{
				X:      col * (cardW + policy.Gutter),
				Y:      offsetY + policy.HeaderHeight + row*(cardH+policy.Gutter),
				Width:  cardW,
				Height: cardH,
			},
		})
	}

	height := policy.HeaderHeight
	if rows > 0 {
		height += rows*cardH + (rows-1)*policy.Gutter
	}
	bucket.Bounds = Box{X: 0, Y: offsetY, Width: viewportWidth, Height: height}
	return bucket
}
