package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/MovieMaker93/landscape2/cmd/commands"
	"github.com/MovieMaker93/landscape2/internal/cli"
	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/dataset"
	"github.com/MovieMaker93/landscape2/pkg/engine"
	"github.com/MovieMaker93/landscape2/pkg/tui"
	"github.com/MovieMaker93/landscape2/pkg/viewstate"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagData     string
	flagSettings string
	flagState    string
	flagWatch    bool
	flagOutput   string
	flagQuiet    bool
	flagNoColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "landscape2",
	Short: "Interactive landscape browser for item catalogs",
	Long: `Landscape2 renders a catalog of items organized into categories,
subcategories and groups as a browsable, filterable, searchable grid.
The current view is shareable: press 'c' in the browser to copy a URL
query string that restores it, and pass one back with --state.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := dataset.LoadSettings(flagSettings)
		if err != nil {
			return err
		}
		if flagData == "" {
			flagData = settings.Data.Path
		}

		cat, err := dataset.Load(flagData)
		if err != nil {
			// A fatal load error must be user-visible; never show an
			// empty landscape claiming success.
			return fmt.Errorf("cannot start: %w", err)
		}

		state, warnings := viewstate.Decode(flagState)
		for _, w := range warnings {
			cli.PrintWarning("%s", w.String())
		}

		policy := tui.CellPolicy(settings)
		eng := engine.New(cat, state, policy)

		app := tui.NewApp(eng, policy)
		p := tea.NewProgram(app, tea.WithAltScreen())

		if flagWatch || settings.Data.Watch {
			watcher, err := dataset.Watch(flagData,
				func(next *catalog.Catalog) { p.Send(tui.CatalogReloadMsg{Catalog: next}) },
				func(err error) { p.Send(tui.ReloadErrorMsg{Err: err}) },
			)
			if err != nil {
				return fmt.Errorf("failed to watch dataset: %w", err)
			}
			defer watcher.Close()
		}

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of landscape2",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("landscape2 version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "d", "", "path to the landscape dataset file")
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "landscape2.settings.yaml", "path to the settings file")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.Flags().StringVar(&flagState, "state", "", "URL query string restoring a shared view")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload the dataset when the file changes")

	cobra.OnInitialize(func() {
		cli.SetGlobalFlags(flagQuiet, flagNoColor)
	})

	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewLinkCommand())
	rootCmd.AddCommand(commands.NewStatsCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
