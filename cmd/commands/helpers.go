package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/dataset"
)

// loadCatalog reads the dataset named by the persistent --data flag and
// returns the validated catalog.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, err := cmd.Flags().GetString("data")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("no dataset file specified (use --data)")
	}
	return dataset.Load(path)
}

// outputFormat returns the persistent --output flag value.
func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = "text"
	}
	return format
}
