package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"semrun/internal/config"
	"semrun/internal/discovery"
	"semrun/internal/domain"
	"semrun/internal/execution"
	"semrun/internal/report"
	"semrun/internal/storage"
	"semrun/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	load      Loader
	filter    *discovery.Filter
	scheduler execution.Scheduler
	storage   storage.Storage
	viewer    ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	load Loader,
	filter *discovery.Filter,
	scheduler execution.Scheduler,
	st storage.Storage,
	viewer ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		load:      load,
		filter:    filter,
		scheduler: scheduler,
		storage:   st,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	// Configuration errors abort before any case runs
	root, err := loadTree(rc.load, rc.filter, rc.config.Flags.Filter)
	if err != nil {
		return err
	}

	total := root.CaseCount()
	if total == 0 {
		// Replace the previous results so list and failures do not show them
		if err := rc.storage.Save(&domain.Report{StartedAt: time.Now()}); err != nil {
			return fmt.Errorf("failed to save case results: %w", err)
		}
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "No cases to run")
		return nil
	}

	runner := execution.NewRunner(execution.Options{
		CaseTimeout: rc.config.CaseTimeout,
		FailFast:    rc.config.FailFast,
	}, rc.scheduler)
	if rc.showProgress() {
		runner.SetProgress(ui.NewProgressBar(total, os.Stderr))
	}

	// Ctrl+C stops the run between cases
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	result := runner.Run(ctx, root)

	// Save results
	if err := rc.storage.Save(result); err != nil {
		return fmt.Errorf("failed to save case results: %w", err)
	}
	if rc.config.History.Enabled {
		rc.recordHistory(cmd, result)
	}

	output := report.Output(result)
	ui.NewFormatter(cmd.OutOrStdout()).PrintSummary(output)

	if result.OK() {
		return nil
	}
	if rc.config.Flags.OpenFailures && len(output.Details) > 0 {
		if err := rc.viewer.View(output); err != nil {
			return err
		}
	}
	return ErrCasesFailed
}

func (rc *RunCommand) showProgress() bool {
	if rc.config.NoProgress {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// recordHistory is best effort: an unreachable database must not change the
// outcome of the run.
func (rc *RunCommand) recordHistory(cmd *cobra.Command, result *domain.Report) {
	warn := color.New(color.FgYellow)
	history, err := storage.OpenHistory(cmd.Context(), rc.config.History)
	if err != nil {
		warn.Fprintf(cmd.ErrOrStderr(), "Skipping run history: %v\n", err)
		return
	}
	defer history.Close()

	if _, err := history.Record(cmd.Context(), result); err != nil {
		warn.Fprintf(cmd.ErrOrStderr(), "Skipping run history: %v\n", err)
	}
}
