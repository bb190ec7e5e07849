package models

// Item is a single landscape entry. Items are immutable once loaded and
// owned exclusively by the catalog.
type Item struct {
	ID          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Category    string            `yaml:"category" json:"category"`
	Subcategory string            `yaml:"subcategory,omitempty" json:"subcategory,omitempty"`
	Group       string            `yaml:"group,omitempty" json:"group,omitempty"`
	Tags        []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Facets      map[string]string `yaml:"facets,omitempty" json:"facets,omitempty"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Metrics     map[string]int    `yaml:"metrics,omitempty" json:"metrics,omitempty"`
	Logo        string            `yaml:"logo,omitempty" json:"logo,omitempty"`
}

// Category is a top-level partition of the landscape. The color token is
// opaque and passed through to the render surface untouched.
type Category struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	Order         int           `yaml:"order" json:"order"`
	Color         string        `yaml:"color,omitempty" json:"color,omitempty"`
	Subcategories []Subcategory `yaml:"subcategories,omitempty" json:"subcategories,omitempty"`
}

// Subcategory is a second-level partition under a category.
type Subcategory struct {
	ID    string `yaml:"id" json:"id"`
	Name  string `yaml:"name" json:"name"`
	Order int    `yaml:"order" json:"order"`
}

// Group is an optional cross-cutting collection. It holds weak references
// to item ids and never owns the items it names.
type Group struct {
	ID    string   `yaml:"id" json:"id"`
	Name  string   `yaml:"name" json:"name"`
	Items []string `yaml:"items,omitempty" json:"items,omitempty"`
}

// Dataset is the raw document produced by the external build step. It is
// schema-validated by the catalog loader before anything else sees it.
type Dataset struct {
	Categories []Category `yaml:"categories" json:"categories"`
	Groups     []Group    `yaml:"groups,omitempty" json:"groups,omitempty"`
	Items      []Item     `yaml:"items" json:"items"`
}
