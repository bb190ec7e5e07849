package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MovieMaker93/landscape2/internal/cli"
	"github.com/MovieMaker93/landscape2/pkg/catalog"
)

// ValidateResult represents the output structure for the validate command
type ValidateResult struct {
	Valid      bool   `json:"valid" yaml:"valid"`
	Items      int    `json:"items,omitempty" yaml:"items,omitempty"`
	Categories int    `json:"categories,omitempty" yaml:"categories,omitempty"`
	Groups     int    `json:"groups,omitempty" yaml:"groups,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind  string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a landscape dataset file",
		Long: `Validate a landscape dataset file against the schema.

The whole load fails on the first fatal problem: a dangling reference, a
duplicate id, or a missing required field. A dataset that validates here
is guaranteed to load in the browser.

Examples:
  # Validate the default dataset
  landscape2 validate

  # Validate a specific file with JSON output
  landscape2 validate --data landscape.yaml -o json`,
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	format := outputFormat(cmd)

	cat, err := loadCatalog(cmd)
	if err != nil {
		result := ValidateResult{Valid: false, Error: err.Error()}
		var dataErr *catalog.DataError
		if errors.As(err, &dataErr) {
			result.ErrorKind = string(dataErr.Kind)
		}
		if format != "text" {
			if outErr := cli.OutputResults(cmd.OutOrStdout(), format, result); outErr != nil {
				return outErr
			}
			return fmt.Errorf("dataset is invalid")
		}
		cli.PrintError("dataset is invalid: %v", err)
		return fmt.Errorf("dataset is invalid")
	}

	result := ValidateResult{
		Valid:      true,
		Items:      cat.Len(),
		Categories: len(cat.Categories()),
		Groups:     len(cat.Groups()),
	}

	if format != "text" {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}

	cli.PrintSuccess("dataset is valid (%d items, %d categories, %d groups)",
		result.Items, result.Categories, result.Groups)
	return nil
}
