package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"semrun/internal/domain"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatter_PrintSummary(t *testing.T) {
	t.Run("all passed", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintSummary(&domain.RunOutput{
			Meta: domain.RunMeta{Counts: domain.Counts{Passed: 3, Total: 3}, DurationSeconds: 0.01},
		})
		out := buf.String()
		if !strings.Contains(out, "All cases passed") {
			t.Errorf("expected success line, got:\n%s", out)
		}
	})

	t.Run("failures are listed with full path and reason", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintSummary(&domain.RunOutput{
			Meta: domain.RunMeta{Counts: domain.Counts{Passed: 1, Failed: 1, Errored: 1, Total: 3}},
			Details: []domain.CaseFailure{
				{Path: []string{"Arithmetic", "fails on purpose"}, Status: domain.StatusFailed, Message: "Equal: expected 2 to equal 3"},
				{Path: []string{"Broken", "panics"}, Status: domain.StatusErrored, Message: "panic: boom"},
			},
		})
		out := buf.String()
		for _, want := range []string{
			"1 case(s) failed, 1 case(s) errored",
			"✗ Arithmetic > fails on purpose [failed]",
			"Equal: expected 2 to equal 3",
			"✗ Broken > panics [errored]",
			"panic: boom",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("zero cases is a warning", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintSummary(&domain.RunOutput{})
		if !strings.Contains(buf.String(), "No cases were run") {
			t.Errorf("expected warning, got:\n%s", buf.String())
		}
	})

	t.Run("aborted run", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintSummary(&domain.RunOutput{
			Meta: domain.RunMeta{Counts: domain.Counts{Failed: 1, Total: 1}, Aborted: true},
		})
		if !strings.Contains(buf.String(), "Run stopped before every case executed") {
			t.Errorf("expected abort notice, got:\n%s", buf.String())
		}
	})
}

func TestFormatter_PrintTree(t *testing.T) {
	noop := func(*domain.Env) {}
	root := &domain.Group{Children: []domain.Node{
		{Group: &domain.Group{Name: "Arithmetic", Children: []domain.Node{
			{Case: &domain.Case{Name: "adds", Action: noop}},
			{Case: &domain.Case{Name: "fails on purpose", Action: noop}},
		}}},
		{Group: &domain.Group{Name: "Closures", Children: []domain.Node{
			{Case: &domain.Case{Name: "captures", Action: noop}},
		}}},
	}}

	var buf bytes.Buffer
	NewFormatter(&buf).PrintTree(root, map[string]struct{}{"Arithmetic > fails on purpose": {}})

	expected := `Found 3 case(s) in 2 group(s):

├── Arithmetic
│   ├── adds
│   └── fails on purpose [F]
└── Closures
    └── captures
`
	if buf.String() != expected {
		t.Errorf("unexpected tree:\n%s\nexpected:\n%s", buf.String(), expected)
	}
}

func TestFailureFormatting(t *testing.T) {
	failure := domain.CaseFailure{
		Path:      []string{"Arithmetic", "fails on purpose"},
		Status:    domain.StatusFailed,
		Message:   "Equal: expected 2 to equal 3",
		Primitive: "Equal",
		Expected:  "3",
		Actual:    "2",
	}

	details := formatFailureDetails(failure)
	for _, want := range []string{"Case: fails on purpose", "Path: Arithmetic > fails on purpose", "Expected:[white]  3", "Actual:[white]    2"} {
		if !strings.Contains(details, want) {
			t.Errorf("expected details to contain %q, got:\n%s", want, details)
		}
	}

	if got := listItemText(failure, 0); got != "[yellow]1.[white] fails on purpose" {
		t.Errorf("unexpected list text %q", got)
	}
	failure.Resolved = true
	if got := listItemText(failure, 1); !strings.HasPrefix(got, "[gray]✓") {
		t.Errorf("expected resolved marker, got %q", got)
	}

	if n := countUnresolved([]domain.CaseFailure{{Resolved: true}, {}, {}}); n != 2 {
		t.Errorf("expected 2 unresolved, got %d", n)
	}
}
