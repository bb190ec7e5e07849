package catalog

import (
	"sort"

	"github.com/MovieMaker93/landscape2/pkg/models"
)

// Catalog is the validated, read-only view of a dataset. All derived
// indices are built once at load time; nothing mutates a catalog after
// Load returns. Updates are modeled as a new Load producing a fresh
// snapshot, so in-flight computations keep the snapshot they started with.
type Catalog struct {
	categories []models.Category
	groups     []models.Group

	items     map[string]models.Item
	itemOrder []string

	categoryItems map[string][]string // category id -> direct item ids (no subcategory)
	subcatItems   map[string][]string // subcategory id -> item ids
	groupItems    map[string][]string // group id -> member item ids
	tagItems      map[string][]string // tag -> item ids
	facetIndex    map[string]map[string][]string
}

// Load validates the raw dataset and builds the catalog's derived indices.
// Any schema violation fails the whole load; no partial catalog is ever
// returned.
func Load(raw *models.Dataset) (*Catalog, error) {
	if raw == nil {
		return nil, missingField("dataset", "", "document")
	}

	c := &Catalog{
		items:         make(map[string]models.Item, len(raw.Items)),
		categoryItems: make(map[string][]string),
		subcatItems:   make(map[string][]string),
		groupItems:    make(map[string][]string),
		tagItems:      make(map[string][]string),
		facetIndex:    make(map[string]map[string][]string),
	}

	subcatToCategory := make(map[string]string)
	categoryIDs := make(map[string]bool, len(raw.Categories))
	for _, cat := range raw.Categories {
		if cat.ID == "" {
			return nil, missingField("category", cat.Name, "id")
		}
		if cat.Name == "" {
			return nil, missingField("category", cat.ID, "name")
		}
		if categoryIDs[cat.ID] {
			return nil, duplicateID("category", cat.ID)
		}
		categoryIDs[cat.ID] = true
		for _, sub := range cat.Subcategories {
			if sub.ID == "" {
				return nil, missingField("subcategory", sub.Name, "id")
			}
			if sub.Name == "" {
				return nil, missingField("subcategory", sub.ID, "name")
			}
			if _, dup := subcatToCategory[sub.ID]; dup {
				return nil, duplicateID("subcategory", sub.ID)
			}
			subcatToCategory[sub.ID] = cat.ID
		}
	}

	groupIDs := make(map[string]bool, len(raw.Groups))
	for _, g := range raw.Groups {
		if g.ID == "" {
			return nil, missingField("group", g.Name, "id")
		}
		if g.Name == "" {
			return nil, missingField("group", g.ID, "name")
		}
		if groupIDs[g.ID] {
			return nil, duplicateID("group", g.ID)
		}
		groupIDs[g.ID] = true
	}

	for _, item := range raw.Items {
		if item.ID == "" {
			return nil, missingField("item", item.Name, "id")
		}
		if item.Name == "" {
			return nil, missingField("item", item.ID, "name")
		}
		if item.Category == "" {
			return nil, missingField("item", item.ID, "category")
		}
		if _, dup := c.items[item.ID]; dup {
			return nil, duplicateID("item", item.ID)
		}
		if !categoryIDs[item.Category] {
			return nil, danglingRef("item", item.ID, "unknown category "+item.Category)
		}
		if item.Subcategory != "" {
			owner, ok := subcatToCategory[item.Subcategory]
			if !ok {
				return nil, danglingRef("item", item.ID, "unknown subcategory "+item.Subcategory)
			}
			if owner != item.Category {
				return nil, danglingRef("item", item.ID, "subcategory "+item.Subcategory+" not under category "+item.Category)
			}
		}
		if item.Group != "" && !groupIDs[item.Group] {
			return nil, danglingRef("item", item.ID, "unknown group "+item.Group)
		}
		c.items[item.ID] = item
		c.itemOrder = append(c.itemOrder, item.ID)
	}

	// Categories in display order; subcategories likewise. The dataset's
	// order index wins, ties fall back to id so two loads of the same
	// document always agree.
	c.categories = make([]models.Category, len(raw.Categories))
	copy(c.categories, raw.Categories)
	sort.SliceStable(c.categories, func(i, j int) bool {
		if c.categories[i].Order != c.categories[j].Order {
			return c.categories[i].Order < c.categories[j].Order
		}
		return c.categories[i].ID < c.categories[j].ID
	})
	for i := range c.categories {
		subs := make([]models.Subcategory, len(c.categories[i].Subcategories))
		copy(subs, c.categories[i].Subcategories)
		sort.SliceStable(subs, func(a, b int) bool {
			if subs[a].Order != subs[b].Order {
				return subs[a].Order < subs[b].Order
			}
			return subs[a].ID < subs[b].ID
		})
		c.categories[i].Subcategories = subs
	}

	c.groups = make([]models.Group, len(raw.Groups))
	copy(c.groups, raw.Groups)

	// Membership indices are derived from the items' own fields, never
	// from redundant lists in the document, so they cannot disagree with
	// the items. Input order is preserved.
	for _, id := range c.itemOrder {
		item := c.items[id]
		if item.Subcategory != "" {
			c.subcatItems[item.Subcategory] = append(c.subcatItems[item.Subcategory], id)
		} else {
			c.categoryItems[item.Category] = append(c.categoryItems[item.Category], id)
		}
		if item.Group != "" {
			c.groupItems[item.Group] = append(c.groupItems[item.Group], id)
		}
		for _, tag := range item.Tags {
			c.tagItems[tag] = append(c.tagItems[tag], id)
		}
		for facet, value := range item.Facets {
			byValue := c.facetIndex[facet]
			if byValue == nil {
				byValue = make(map[string][]string)
				c.facetIndex[facet] = byValue
			}
			byValue[value] = append(byValue[value], id)
		}
	}

	// Group documents may also enumerate member ids directly. Those are
	// weak references: unknown ids are skipped, known ones are merged in
	// without duplicating items already present via their Group field.
	for _, g := range c.groups {
		seen := make(map[string]bool, len(c.groupItems[g.ID]))
		for _, id := range c.groupItems[g.ID] {
			seen[id] = true
		}
		for _, id := range g.Items {
			if _, ok := c.items[id]; !ok || seen[id] {
				continue
			}
			seen[id] = true
			c.groupItems[g.ID] = append(c.groupItems[g.ID], id)
		}
	}

	return c, nil
}

// Categories returns the categories in display order.
func (c *Catalog) Categories() []models.Category {
	return c.categories
}

// Groups returns the declared groups in input order.
func (c *Catalog) Groups() []models.Group {
	return c.groups
}

// Item looks up a single item by id.
func (c *Catalog) Item(id string) (models.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns all items in their stable catalog order.
func (c *Catalog) Items() []models.Item {
	out := make([]models.Item, 0, len(c.itemOrder))
	for _, id := range c.itemOrder {
		out = append(out, c.items[id])
	}
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.itemOrder)
}

// ItemIDs returns every item id in stable catalog order.
func (c *Catalog) ItemIDs() []string {
	return c.itemOrder
}

// DirectItems returns the ids of items that belong to the category but to
// none of its subcategories, in stable order.
func (c *Catalog) DirectItems(categoryID string) []string {
	return c.categoryItems[categoryID]
}

// SubcategoryItems returns the ids of items in the subcategory, in stable
// order.
func (c *Catalog) SubcategoryItems(subcategoryID string) []string {
	return c.subcatItems[subcategoryID]
}

// CategoryItems returns every item id under the category, direct items
// first, then each subcategory in display order.
func (c *Catalog) CategoryItems(categoryID string) []string {
	var out []string
	out = append(out, c.categoryItems[categoryID]...)
	for _, cat := range c.categories {
		if cat.ID != categoryID {
			continue
		}
		for _, sub := range cat.Subcategories {
			out = append(out, c.subcatItems[sub.ID]...)
		}
		break
	}
	return out
}

// GroupItems returns the member ids of a group, in stable order.
func (c *Catalog) GroupItems(groupID string) []string {
	return c.groupItems[groupID]
}

// TaggedItems returns the ids of items carrying the tag.
func (c *Catalog) TaggedItems(tag string) []string {
	return c.tagItems[tag]
}

// FacetMatches returns the ids of items whose facet has exactly the given
// value. An unknown facet or value yields nil, which is not an error.
func (c *Catalog) FacetMatches(facet, value string) []string {
	byValue := c.facetIndex[facet]
	if byValue == nil {
		return nil
	}
	return byValue[value]
}

// FacetNames returns the names of all facets present in the catalog,
// sorted for stable display.
func (c *Catalog) FacetNames() []string {
	names := make([]string, 0, len(c.facetIndex))
	for name := range c.facetIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FacetValues returns the distinct values observed for a facet, sorted.
func (c *Catalog) FacetValues(facet string) []string {
	byValue := c.facetIndex[facet]
	values := make([]string, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
