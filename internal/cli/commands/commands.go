package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"semrun/internal/cli"
	"semrun/internal/config"
	"semrun/internal/discovery"
	"semrun/internal/domain"
	"semrun/internal/execution"
	"semrun/internal/registry"
	"semrun/internal/storage"
	"semrun/internal/ui"
)

// ErrCasesFailed is returned by the run command when at least one case did not
// pass. The summary has already been printed, so callers only set the exit code.
var ErrCasesFailed = errors.New("one or more cases did not pass")

// Loader registers the suites a command operates on
type Loader func(r *registry.Registry)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
	History  *HistoryCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, load Loader) *Commands {
	// Initialize dependencies
	filter := discovery.NewFilter()
	scheduler := execution.NewDepthFirstScheduler()
	jsonStorage := storage.NewJSONStorage(cfg)
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Run:      NewRunCommand(cfg, load, filter, scheduler, jsonStorage, viewer),
		List:     NewListCommand(cfg, load, filter, jsonStorage),
		Failures: NewFailuresCommand(jsonStorage, viewer),
		History:  NewHistoryCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.ApplyFlags(flags.ToConfigFlags())
		if cfg.NoColor {
			color.NoColor = true
		}
		return nil
	}
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the registered cases",
		Long:    "Run every registered case in declaration order and print a summary",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by path pattern (supports wildcards, e.g., '*Closures*' or 'Arithmetic > *')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first case that does not pass")
	runCmd.Flags().DurationVarP(&flags.Timeout, "timeout", "t", 0, "Per-case timeout (default from config, 0 keeps it)")
	runCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the progress bar")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	runCmd.Flags().BoolVar(&flags.History, "history", false, "Record the run in the MySQL history database")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered cases",
		Long:    "Print the group and case tree without running anything",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by path pattern (supports wildcards, e.g., '*Closures*' or 'Arithmetic > *')")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View case failures interactively",
		Long:    "Display the failures of the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	rootCmd.AddCommand(failuresCmd)

	// History command
	historyCmd := &cobra.Command{
		Use:     "history",
		Short:   "Show recent runs",
		Long:    "List recent runs recorded in the MySQL history database",
		RunE:    c.History.Execute,
		PreRunE: applyFlags,
	}
	historyCmd.Flags().IntVarP(&flags.Limit, "limit", "n", 10, "Number of runs to show")
	c.History.limit = &flags.Limit
	rootCmd.AddCommand(historyCmd)
}

// loadTree registers the suites and applies the name filter.
func loadTree(load Loader, filter *discovery.Filter, pattern string) (*domain.Group, error) {
	r := registry.New()
	load(r)
	root, err := r.Build()
	if err != nil {
		return nil, err
	}
	return filter.FilterTree(root, pattern), nil
}
