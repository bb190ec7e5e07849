package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MovieMaker93/landscape2/internal/cli"
)

// StatsResult represents landscape-wide statistics
type StatsResult struct {
	Items         int            `json:"items" yaml:"items"`
	Categories    int            `json:"categories" yaml:"categories"`
	Subcategories int            `json:"subcategories" yaml:"subcategories"`
	Groups        int            `json:"groups" yaml:"groups"`
	Facets        int            `json:"facets" yaml:"facets"`
	PerCategory   map[string]int `json:"per_category" yaml:"per_category"`
}

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show landscape dataset statistics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	result := StatsResult{
		Items:       cat.Len(),
		Categories:  len(cat.Categories()),
		Groups:      len(cat.Groups()),
		Facets:      len(cat.FacetNames()),
		PerCategory: make(map[string]int),
	}
	for _, c := range cat.Categories() {
		result.Subcategories += len(c.Subcategories)
		result.PerCategory[c.ID] = len(cat.CategoryItems(c.ID))
	}

	format := outputFormat(cmd)
	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Items:         %d\n", result.Items)
	fmt.Fprintf(cmd.OutOrStdout(), "Categories:    %d\n", result.Categories)
	fmt.Fprintf(cmd.OutOrStdout(), "Subcategories: %d\n", result.Subcategories)
	fmt.Fprintf(cmd.OutOrStdout(), "Groups:        %d\n", result.Groups)
	fmt.Fprintf(cmd.OutOrStdout(), "Facets:        %d\n", result.Facets)

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("CATEGORY", "ITEMS")
	for _, c := range cat.Categories() {
		table.Row(c.ID, fmt.Sprintf("%d", result.PerCategory[c.ID]))
	}
	table.Flush()
	return nil
}
