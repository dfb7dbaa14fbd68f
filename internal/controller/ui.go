// Package controller provides output adapters for displaying diff results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/manbearwiz/betterer/internal/model"
)

// SourceReader loads source files so issues can be shown in context.
type SourceReader interface {
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)
}

// UI defines how diff and merge outcomes are shown to the user.
// Implementations can use different output methods.
type UI interface {
	DisplayTestReport(ctx context.Context, report m.TestReport) error
	DisplaySummary(ctx context.Context, reports []m.TestReport) error
	DisplayResultsWritten(ctx context.Context, path m.Path)
	DisplayMerge(ctx context.Context, path m.Path, tests int)
}

// NewUI returns the UI used by the CLI. Colours are only emitted on terminals.
func NewUI(cmd *cobra.Command, sources SourceReader, isTTY bool) UI {
	return NewSimpleUI(cmd, sources, isTTY)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
