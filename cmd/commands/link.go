package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MovieMaker93/landscape2/internal/cli"
	"github.com/MovieMaker93/landscape2/pkg/models"
	"github.com/MovieMaker93/landscape2/pkg/viewstate"
)

var (
	linkQuery    string
	linkItem     string
	linkZoom     string
	linkGroupBy  string
	linkCategory []string
	linkTags     []string
	linkFacets   []string
	linkDecode   string
)

// LinkResult represents the decoded state output
type LinkResult struct {
	Query    string              `json:"query,omitempty" yaml:"query,omitempty"`
	Item     string              `json:"item,omitempty" yaml:"item,omitempty"`
	Grouping string              `json:"grouping" yaml:"grouping"`
	Zoom     string              `json:"zoom" yaml:"zoom"`
	Facets   map[string][]string `json:"facets,omitempty" yaml:"facets,omitempty"`
	Warnings []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewLinkCommand creates the link command
func NewLinkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Build or decode a shareable view link",
		Long: `Build a shareable URL query string for a landscape view, or decode
one back into its view state.

The encoding is canonical: facet value sets are sorted, so two links for
the same view always compare equal. Decoding is forgiving: unknown
parameters are ignored and malformed fields fall back to defaults.

Examples:
  # Encode a filtered view
  landscape2 link --query envoy --tag proxy --facet license=Apache-2.0 --zoom large

  # Decode a query string
  landscape2 link --decode "q=envoy&zoom=large&foo=bar"`,
		RunE: runLink,
	}

	cmd.Flags().StringVar(&linkQuery, "query", "", "free-text search query")
	cmd.Flags().StringVar(&linkItem, "item", "", "selected item id")
	cmd.Flags().StringVar(&linkZoom, "zoom", "", "zoom level (compact, default, comfortable, large)")
	cmd.Flags().StringVar(&linkGroupBy, "group-by", "", "grouping mode (category, group)")
	cmd.Flags().StringSliceVar(&linkCategory, "category", nil, "restrict to category id (repeatable)")
	cmd.Flags().StringSliceVar(&linkTags, "tag", nil, "restrict to tag (repeatable)")
	cmd.Flags().StringSliceVar(&linkFacets, "facet", nil, "facet restriction as name=value (repeatable)")
	cmd.Flags().StringVar(&linkDecode, "decode", "", "decode a query string instead of encoding")

	return cmd
}

func runLink(cmd *cobra.Command, args []string) error {
	if linkDecode != "" {
		return runLinkDecode(cmd)
	}

	state := models.DefaultViewState()
	state.Filters.Query = linkQuery
	state.SelectedItem = linkItem
	if linkZoom != "" {
		zoom := models.ZoomLevel(linkZoom)
		if !zoom.Valid() {
			return fmt.Errorf("unknown zoom level %q", linkZoom)
		}
		state.Zoom = zoom
	}
	if linkGroupBy != "" {
		mode := models.GroupingMode(linkGroupBy)
		if !mode.Valid() {
			return fmt.Errorf("unknown grouping mode %q", linkGroupBy)
		}
		state.Grouping = mode
	}

	state.Filters.Facets = make(map[string][]string)
	if len(linkCategory) > 0 {
		state.Filters.Facets["category"] = linkCategory
	}
	if len(linkTags) > 0 {
		state.Filters.Facets["tags"] = linkTags
	}
	for _, pair := range linkFacets {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" || value == "" {
			return fmt.Errorf("invalid facet restriction %q (want name=value)", pair)
		}
		state.Filters.Facets[name] = append(state.Filters.Facets[name], value)
	}

	fmt.Fprintln(cmd.OutOrStdout(), viewstate.Encode(state))
	return nil
}

func runLinkDecode(cmd *cobra.Command) error {
	state, warnings := viewstate.Decode(linkDecode)

	result := LinkResult{
		Query:    state.Filters.Query,
		Item:     state.SelectedItem,
		Grouping: string(state.Grouping),
		Zoom:     string(state.Zoom),
		Facets:   state.Filters.Facets,
	}
	for _, w := range warnings {
		result.Warnings = append(result.Warnings, w.String())
	}

	format := outputFormat(cmd)
	if format == "text" {
		format = "yaml"
	}
	return cli.OutputResults(cmd.OutOrStdout(), format, result)
}
