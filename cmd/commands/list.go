package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MovieMaker93/landscape2/internal/cli"
	"github.com/MovieMaker93/landscape2/pkg/catalog"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Type  string     `json:"type" yaml:"type"`
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single item in the list
type ListItem struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Members     int      `json:"members,omitempty" yaml:"members,omitempty"`
	Values      []string `json:"values,omitempty" yaml:"values,omitempty"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [type]",
		Short: "List landscape entities",
		Long: `List entities in the landscape dataset.

Types:
  items       - List all items (default)
  categories  - List categories and their subcategories
  groups      - List groups with member counts
  facets      - List facet names with their observed values

Examples:
  # List all items
  landscape2 list

  # List categories as YAML
  landscape2 list categories -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	kind := "items"
	if len(args) > 0 {
		kind = args[0]
	}

	cat, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	var result ListResult
	switch kind {
	case "items":
		result = listItems(cat)
	case "categories":
		result = listCategories(cat)
	case "groups":
		result = listGroups(cat)
	case "facets":
		result = listFacets(cat)
	default:
		return fmt.Errorf("unknown list type %q (want items, categories, groups or facets)", kind)
	}

	format := outputFormat(cmd)
	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	switch kind {
	case "items":
		table.Header("ID", "NAME", "CATEGORY", "SUBCATEGORY", "TAGS")
		for _, it := range result.Items {
			table.Row(it.ID, cli.TruncateString(it.Name, 40), it.Category, it.Subcategory,
				cli.TruncateString(strings.Join(it.Tags, ","), 30))
		}
	case "categories":
		table.Header("ID", "NAME", "SUBCATEGORIES", "ITEMS")
		for _, it := range result.Items {
			table.Row(it.ID, it.Name, strings.Join(it.Values, ","), fmt.Sprintf("%d", it.Members))
		}
	case "groups":
		table.Header("ID", "NAME", "MEMBERS")
		for _, it := range result.Items {
			table.Row(it.ID, it.Name, fmt.Sprintf("%d", it.Members))
		}
	case "facets":
		table.Header("FACET", "VALUES")
		for _, it := range result.Items {
			table.Row(it.Name, cli.TruncateString(strings.Join(it.Values, ","), 60))
		}
	}
	table.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d %s\n", result.Count, result.Type)
	return nil
}

func listItems(cat *catalog.Catalog) ListResult {
	result := ListResult{Type: "items", Items: []ListItem{}}
	for _, item := range cat.Items() {
		result.Items = append(result.Items, ListItem{
			ID:          item.ID,
			Name:        item.Name,
			Category:    item.Category,
			Subcategory: item.Subcategory,
			Tags:        item.Tags,
		})
	}
	result.Count = len(result.Items)
	return result
}

func listCategories(cat *catalog.Catalog) ListResult {
	result := ListResult{Type: "categories", Items: []ListItem{}}
	for _, c := range cat.Categories() {
		subs := make([]string, 0, len(c.Subcategories))
		for _, s := range c.Subcategories {
			subs = append(subs, s.ID)
		}
		result.Items = append(result.Items, ListItem{
			ID:      c.ID,
			Name:    c.Name,
			Values:  subs,
			Members: len(cat.CategoryItems(c.ID)),
		})
	}
	result.Count = len(result.Items)
	return result
}

func listGroups(cat *catalog.Catalog) ListResult {
	result := ListResult{Type: "groups", Items: []ListItem{}}
	for _, g := range cat.Groups() {
		result.Items = append(result.Items, ListItem{
			ID:      g.ID,
			Name:    g.Name,
			Members: len(cat.GroupItems(g.ID)),
		})
	}
	result.Count = len(result.Items)
	return result
}

func listFacets(cat *catalog.Catalog) ListResult {
	result := ListResult{Type: "facets", Items: []ListItem{}}
	for _, name := range cat.FacetNames() {
		result.Items = append(result.Items, ListItem{
			Name:   name,
			Values: cat.FacetValues(name),
		})
	}
	result.Count = len(result.Items)
	return result
}
