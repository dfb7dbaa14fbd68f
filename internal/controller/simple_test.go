package controller

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/manbearwiz/betterer/internal/model"
)

type fakeSources map[m.Path]string

func (f fakeSources) ReadFile(_ context.Context, path m.Path) ([]byte, error) {
	content, ok := f[path]
	if !ok {
		return nil, errors.New("not found")
	}

	return []byte(content), nil
}

func newTestUI(sources SourceReader) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd, sources, false), &buf
}

func worseReport() m.TestReport {
	return m.TestReport{
		Name:           "no lint",
		Status:         m.Worse,
		ExpectedIssues: 1,
		ResultIssues:   2,
		Diff: m.Diff{
			Files: map[m.Path]m.FileDiff{
				"/src/a.ts": {
					Existing: []m.SerialisedIssue{{uint(0), uint(0), uint(5), "old", "A"}},
					New:      []m.SerialisedIssue{{uint(2), uint(10), uint(3), "no foo", "B"}},
				},
			},
			Paths: []m.Path{"/src/a.ts"},
			Logs: []m.LogEntry{
				{Level: m.LogWarn, Message: `1 existing issue in "src/a.ts".`},
				{Level: m.LogError, Message: `New issue in "src/a.ts"!`},
				{Level: m.LogError, Message: "no foo", Code: &m.CodeFrame{Path: "/src/a.ts", Message: "no foo", Line: 2, Column: 10, Length: 3}},
			},
		},
	}
}

func TestSimpleUI_DisplayTestReport(t *testing.T) {
	ui, buf := newTestUI(fakeSources{"/src/a.ts": frameSource})

	err := ui.DisplayTestReport(context.Background(), worseReport())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"no lint" got worse (1 → 2 issues).`)
	assert.Contains(t, out, `⚠ 1 existing issue in "src/a.ts".`)
	assert.Contains(t, out, `✘ New issue in "src/a.ts"!`)
	assert.Contains(t, out, "/src/a.ts:3:11 - no foo")
	assert.Contains(t, out, "> 3 | const x = foo;")
	assert.NotContains(t, out, "\x1b[")
}

func TestSimpleUI_DisplayTestReport_MissingSource(t *testing.T) {
	ui, buf := newTestUI(fakeSources{})

	err := ui.DisplayTestReport(context.Background(), worseReport())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "/src/a.ts:3:11 - no foo")
	assert.NotContains(t, buf.String(), "const x = foo;")
}

func TestSimpleUI_DisplayTestReport_Statuses(t *testing.T) {
	tests := []struct {
		report m.TestReport
		want   string
	}{
		{m.TestReport{Name: "a", Status: m.New, ResultIssues: 1}, `"a" got checked for the first time (1 issue).`},
		{m.TestReport{Name: "b", Status: m.Obsolete}, `"b" is no longer run`},
		{m.TestReport{Name: "c", Status: m.Better, ExpectedIssues: 3, ResultIssues: 1}, `"c" got better (3 → 1 issues).`},
		{m.TestReport{Name: "d", Status: m.Same, ResultIssues: 4}, `"d" stayed the same (4 issues).`},
	}

	for _, tt := range tests {
		t.Run(tt.report.Status.String(), func(t *testing.T) {
			ui, buf := newTestUI(nil)

			require.NoError(t, ui.DisplayTestReport(context.Background(), tt.report))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestSimpleUI_DisplayTestReport_CancelledContext(t *testing.T) {
	ui, buf := newTestUI(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayTestReport(ctx, worseReport())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestUI(nil)

	reports := []m.TestReport{
		worseReport(),
		{Name: "types", Status: m.Same},
	}

	require.NoError(t, ui.DisplaySummary(context.Background(), reports))

	out := buf.String()
	assert.Contains(t, out, "Test")
	assert.Contains(t, out, "no lint")
	assert.Contains(t, out, "worse")
	assert.Contains(t, out, "types")
	assert.Contains(t, out, "2 tests")
}

func TestSimpleUI_DisplayMergeAndWrite(t *testing.T) {
	ui, buf := newTestUI(nil)

	ui.DisplayMerge(context.Background(), "/repo/.betterer.results", 1)
	ui.DisplayResultsWritten(context.Background(), "/repo/.betterer.results")

	assert.Contains(t, buf.String(), "Merged 1 test into /repo/.betterer.results")
	assert.Contains(t, buf.String(), "Results written to /repo/.betterer.results")
}

func TestSimpleUI_StyledOutputUsesColour(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd, nil, true)
	require.NoError(t, ui.DisplayTestReport(context.Background(), worseReport()))

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestSimpleUI_StyledCodeFrameOffTerminal(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd, fakeSources{"/src/a.ts": frameSource}, true)
	require.NoError(t, ui.DisplayTestReport(context.Background(), worseReport()))

	out := buf.String()
	assert.NotContains(t, out, "> 3 | const x = foo;")
	assert.Contains(t, out, "const x = foo;")
	assert.Contains(t, out, "\x1b[90m")
}
