package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"semrun/internal/config"
	"semrun/internal/storage"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config *config.Config
	limit  *int
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config) *HistoryCommand {
	return &HistoryCommand{config: cfg}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	limit := 10
	if hc.limit != nil && *hc.limit > 0 {
		limit = *hc.limit
	}

	history, err := storage.OpenHistory(cmd.Context(), hc.config.History)
	if err != nil {
		return err
	}
	defer history.Close()

	runs, err := history.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "No runs recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tDURATION\tPASSED\tFAILED\tERRORED\tTOTAL")
	for _, run := range runs {
		status := fmt.Sprint(run.Counts.Total)
		if run.Aborted {
			status += " (aborted)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
			run.ID, run.StartedAt.Local().Format("2006-01-02 15:04:05"), run.Duration,
			run.Counts.Passed, run.Counts.Failed, run.Counts.Errored, status)
	}
	return w.Flush()
}
