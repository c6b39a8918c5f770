package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"semrun/internal/domain"
	"semrun/internal/report"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
	gray   = color.New(color.FgHiBlack)
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintSummary prints the counts of a run followed by every case that did not
// pass, with its full path and reason.
func (f *Formatter) PrintSummary(output *domain.RunOutput) {
	meta := output.Meta

	// Print header
	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Case Execution Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	// Print table
	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Total Cases", white, fmt.Sprint(meta.Counts.Total))
	f.separator()
	f.row("Passed", green, fmt.Sprint(meta.Counts.Passed))
	f.separator()
	f.row("Failed", red, fmt.Sprint(meta.Counts.Failed))
	f.separator()
	f.row("Errored", red, fmt.Sprint(meta.Counts.Errored))
	f.separator()
	f.row("Duration", white, fmt.Sprintf("%.2fs", meta.DurationSeconds))
	f.separator()
	f.row("Timestamp", white, meta.Timestamp)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	// Print summary line
	fmt.Fprintln(f.out)
	if meta.Aborted {
		yellow.Fprintln(f.out, "! Run stopped before every case executed")
	}
	switch {
	case meta.Counts.Total == 0:
		yellow.Fprintln(f.out, "! No cases were run")
	case meta.Counts.Passed == meta.Counts.Total:
		green.Fprintln(f.out, "✓ All cases passed!")
	default:
		red.Fprintf(f.out, "✗ %d case(s) failed, %d case(s) errored\n", meta.Counts.Failed, meta.Counts.Errored)
		fmt.Fprintln(f.out)
		f.PrintFailures(output.Details)
	}
}

func (f *Formatter) row(label string, c *color.Color, value string) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27s", value)
	fmt.Fprintln(f.out, " │")
}

func (f *Formatter) separator() {
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
}

// PrintFailures lists non-passing cases with their full path and reason.
func (f *Formatter) PrintFailures(failures []domain.CaseFailure) {
	for _, failure := range failures {
		red.Fprintf(f.out, "✗ %s", report.FormatPath(failure.Path))
		gray.Fprintf(f.out, " [%s]\n", failure.Status)
		for _, line := range strings.Split(failure.Message, "\n") {
			fmt.Fprintf(f.out, "    %s\n", line)
		}
	}
}

// PrintTree prints the registered groups and cases in declaration order.
// Cases whose path is in failed (keyed by report.FormatPath) are marked [F].
func (f *Formatter) PrintTree(root *domain.Group, failed map[string]struct{}) {
	groups := countGroups(root)
	green.Fprintf(f.out, "Found %d case(s) in %d group(s):\n\n", root.CaseCount(), groups)

	var prefix []string
	if root.Name != "" {
		prefix = []string{root.Name}
	}
	f.printChildren(root, prefix, "", failed)
}

func (f *Formatter) printChildren(g *domain.Group, path []string, indent string, failed map[string]struct{}) {
	for i, child := range g.Children {
		isLast := i == len(g.Children)-1
		connector, childIndent := "├── ", indent+"│   "
		if isLast {
			connector, childIndent = "└── ", indent+"    "
		}

		if child.Group != nil {
			cyan.Fprintf(f.out, "%s%s%s\n", indent, connector, child.Group.Name)
			f.printChildren(child.Group, domain.JoinPath(path, child.Group.Name), childIndent, failed)
			continue
		}

		fmt.Fprint(f.out, indent+connector)
		yellow.Fprint(f.out, child.Case.Name)
		if _, ok := failed[report.FormatPath(domain.JoinPath(path, child.Case.Name))]; ok {
			fmt.Fprint(f.out, " ")
			red.Fprint(f.out, "[F]")
		}
		fmt.Fprintln(f.out)
	}
}

func countGroups(g *domain.Group) int {
	n := 0
	for _, child := range g.Children {
		if child.Group != nil {
			n += 1 + countGroups(child.Group)
		}
	}
	return n
}
