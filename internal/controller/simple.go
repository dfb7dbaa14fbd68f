package controller

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/manbearwiz/betterer/internal/model"
)

// SimpleUI implements UI by printing to the command's output stream.
type SimpleUI struct {
	cmd     *cobra.Command
	sources SourceReader
	styled  bool
	levels  map[m.LogLevel]*color.Color
	heading *color.Color
	frames  frameStyles
}

// NewSimpleUI creates a new SimpleUI. When styled is false no ANSI escape
// sequences are written.
func NewSimpleUI(cmd *cobra.Command, sources SourceReader, styled bool) *SimpleUI {
	ui := &SimpleUI{
		cmd:     cmd,
		sources: sources,
		styled:  styled,
		levels: map[m.LogLevel]*color.Color{
			m.LogSuccess: color.New(color.FgGreen),
			m.LogWarn:    color.New(color.FgYellow),
			m.LogError:   color.New(color.FgRed, color.Bold),
			m.LogInfo:    color.New(color.FgCyan),
		},
		heading: color.New(color.Bold),
		frames:  newFrameStyles(styled),
	}

	for _, c := range ui.levels {
		ui.setColor(c)
	}

	ui.setColor(ui.heading)

	return ui
}

func (s *SimpleUI) setColor(c *color.Color) {
	if s.styled {
		c.EnableColor()
		return
	}

	c.DisableColor()
}

// DisplayTestReport prints the outcome of one test followed by its diff logs.
func (s *SimpleUI) DisplayTestReport(ctx context.Context, report m.TestReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s %s\n", s.heading.Sprintf("%q", report.Name), statusLine(report))

	for _, entry := range report.Diff.Logs {
		if entry.Code != nil {
			s.printCodeFrame(ctx, *entry.Code)
			continue
		}

		s.printf("  %s %s\n", s.levels[entry.Level].Sprint(levelIcon(entry.Level)), entry.Message)
	}

	return nil
}

func statusLine(report m.TestReport) string {
	switch report.Status {
	case m.New:
		return fmt.Sprintf("got checked for the first time (%d %s).", report.ResultIssues, pluralise("issue", report.ResultIssues))
	case m.Obsolete:
		return "is no longer run and its results will be removed."
	case m.Better:
		return fmt.Sprintf("got better (%d → %d issues).", report.ExpectedIssues, report.ResultIssues)
	case m.Worse:
		return fmt.Sprintf("got worse (%d → %d issues).", report.ExpectedIssues, report.ResultIssues)
	case m.Same:
		return fmt.Sprintf("stayed the same (%d %s).", report.ResultIssues, pluralise("issue", report.ResultIssues))
	default:
		return report.Status.String()
	}
}

func levelIcon(level m.LogLevel) string {
	switch level {
	case m.LogSuccess:
		return "✔"
	case m.LogWarn:
		return "⚠"
	case m.LogError:
		return "✘"
	case m.LogInfo:
		return "ℹ"
	default:
		return "-"
	}
}

func (s *SimpleUI) printCodeFrame(ctx context.Context, frame m.CodeFrame) {
	s.printf("    %s:%d:%d - %s\n", frame.Path, frame.Line+1, frame.Column+1, frame.Message)

	if s.sources == nil {
		return
	}

	source, err := s.sources.ReadFile(ctx, frame.Path)
	if err != nil {
		slog.Warn("Failed to read source for code frame", "path", frame.Path, "error", err)
		return
	}

	rendered, err := renderCodeFrame(frame, string(source), s.frames)
	if err != nil {
		slog.Warn("Failed to render code frame", "path", frame.Path, "error", err)
		return
	}

	for _, line := range splitLines(rendered) {
		s.printf("    %s\n", line)
	}
}

// DisplaySummary prints a table with one row per test.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.TestReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(reports))

	return nil
}

func renderSummaryTable(reports []m.TestReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Test", "Status", "Fixed", "New", "Existing"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	var totalFixed, totalNew, totalExisting int

	for _, report := range reports {
		fixed, added, existing := report.Diff.Counts()
		totalFixed += fixed
		totalNew += added
		totalExisting += existing

		table.Append([]string{
			report.Name,
			report.Status.String(),
			fmt.Sprintf("%d", fixed),
			fmt.Sprintf("%d", added),
			fmt.Sprintf("%d", existing),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d %s", len(reports), pluralise("test", len(reports))),
		"",
		fmt.Sprintf("%d", totalFixed),
		fmt.Sprintf("%d", totalNew),
		fmt.Sprintf("%d", totalExisting),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayResultsWritten reports that the results file was updated.
func (s *SimpleUI) DisplayResultsWritten(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Results written to %s\n", path)
}

// DisplayMerge reports a completed merge.
func (s *SimpleUI) DisplayMerge(ctx context.Context, path m.Path, tests int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Merged %d %s into %s\n", tests, pluralise("test", tests), path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func pluralise(word string, n int) string {
	if n == 1 {
		return word
	}

	return word + "s"
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimRight(text, "\n"), "\n")
}
