package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"semrun/internal/config"
	"semrun/internal/discovery"
	"semrun/internal/report"
	"semrun/internal/storage"
	"semrun/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config  *config.Config
	load    Loader
	filter  *discovery.Filter
	storage storage.Storage
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	load Loader,
	filter *discovery.Filter,
	st storage.Storage,
) *ListCommand {
	return &ListCommand{
		config:  cfg,
		load:    load,
		filter:  filter,
		storage: st,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	root, err := loadTree(lc.load, lc.filter, lc.config.Flags.Filter)
	if err != nil {
		return err
	}

	if root.CaseCount() == 0 {
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "No cases found")
		return nil
	}

	// Mark cases that did not pass last time; no stored run is fine
	failed := make(map[string]struct{})
	if last, err := lc.storage.Load(); err == nil {
		for _, f := range last.Details {
			failed[report.FormatPath(f.Path)] = struct{}{}
		}
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintTree(root, failed)
	return nil
}
