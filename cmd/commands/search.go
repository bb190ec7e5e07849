package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MovieMaker93/landscape2/internal/cli"
	"github.com/MovieMaker93/landscape2/pkg/search"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query   string             `json:"query" yaml:"query"`
	Count   int                `json:"count" yaml:"count"`
	Results []SearchItemOutput `json:"results" yaml:"results"`
}

// SearchItemOutput represents a single search result item
type SearchItemOutput struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category" yaml:"category"`
	Tags     []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Score    float64  `json:"score" yaml:"score"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search items in the landscape",
		Long: `Search landscape items by name, tag or description.

Matching is case- and diacritic-insensitive. Results are ranked: prefix
matches on the name come first, then substring matches, then tag matches,
then description matches; ties are broken by item id.

Examples:
  # Find items whose name starts with "envoy"
  landscape2 search envoy

  # JSON output for scripting
  landscape2 search "service mesh" -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	cat, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	index := search.Build(cat.Items())
	matches, restricted := index.Query(query)
	if !restricted {
		return fmt.Errorf("empty query matches everything; give it something to search for")
	}

	output := SearchResultOutput{
		Query:   query,
		Count:   len(matches),
		Results: []SearchItemOutput{},
	}
	for _, m := range matches {
		item, ok := cat.Item(m.ID)
		if !ok {
			continue
		}
		output.Results = append(output.Results, SearchItemOutput{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			Tags:     item.Tags,
			Score:    m.Score,
		})
	}

	format := outputFormat(cmd)
	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, output)
	}

	if output.Count == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No items matched %q\n", query)
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("ID", "NAME", "CATEGORY", "TAGS", "SCORE")
	for _, r := range output.Results {
		table.Row(r.ID, cli.TruncateString(r.Name, 40), r.Category,
			cli.TruncateString(strings.Join(r.Tags, ","), 30),
			fmt.Sprintf("%.1f", r.Score))
	}
	table.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d item(s)\n", output.Count)
	return nil
}
