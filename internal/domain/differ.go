package domain

import (
	"cmp"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	m "github.com/manbearwiz/betterer/internal/model"
)

// Differ computes the reportable difference between two snapshots.
type Differ interface {
	Diff(expected, result m.ResultSnapshot) m.Diff
}

// DiffOption configures a Differ.
type DiffOption func(*diffConfig)

type diffConfig struct {
	baseDir string
}

// WithBaseDir makes log messages name files relative to dir.
func WithBaseDir(dir m.Path) DiffOption {
	return func(c *diffConfig) {
		c.baseDir = string(dir)
	}
}

type differ struct {
	config diffConfig
}

// NewDiffer creates a Differ.
func NewDiffer(options ...DiffOption) Differ {
	d := &differ{}
	for _, option := range options {
		option(&d.config)
	}

	return d
}

// Diff matches files, then issues within every matched pair, and collects
// the files that gained or lost issues. Result files are reported in result
// order followed by fixed files in expected order.
func (d *differ) Diff(expected, result m.ResultSnapshot) m.Diff {
	match := MatchFiles(expected, result)
	pairs := match.Pairs()

	fresh := make(map[m.Path]struct{}, len(match.New))
	for _, file := range match.New {
		fresh[file.AbsolutePath] = struct{}{}
	}

	builder := newDiffBuilder(d.config)

	for _, file := range result.Files() {
		if pair, ok := pairs[file.AbsolutePath]; ok {
			builder.add(file.AbsolutePath, DiffIssues(pair.Expected.Issues, file.Issues))
			continue
		}

		if _, ok := fresh[file.AbsolutePath]; !ok {
			panic(fmt.Sprintf("result file %s was neither matched nor new", file.AbsolutePath))
		}

		builder.add(file.AbsolutePath, IssueDiff{New: file.Issues})
	}

	for _, file := range match.Fixed {
		builder.add(file.AbsolutePath, IssueDiff{Fixed: file.Issues})
	}

	slog.Debug("Diffed snapshots",
		"unchanged", len(match.Unchanged),
		"changed", len(match.Changed),
		"moved", len(match.Moved),
		"new", len(match.New),
		"fixed", len(match.Fixed),
		"reported", len(builder.diff.Paths),
	)

	return builder.diff
}

type diffBuilder struct {
	config diffConfig
	diff   m.Diff
}

func newDiffBuilder(config diffConfig) *diffBuilder {
	return &diffBuilder{
		config: config,
		diff: m.Diff{
			Files: map[m.Path]m.FileDiff{},
		},
	}
}

func (b *diffBuilder) add(path m.Path, issues IssueDiff) {
	if !issues.Reportable() {
		return
	}

	b.diff.Files[path] = issues.FileDiff()
	b.diff.Paths = append(b.diff.Paths, path)
	b.diff.Logs = append(b.diff.Logs, b.logs(path, issues)...)
}

func (b *diffBuilder) logs(path m.Path, issues IssueDiff) []m.LogEntry {
	display := b.displayPath(path)

	var logs []m.LogEntry

	if n := len(issues.Fixed); n > 0 {
		logs = append(logs, m.LogEntry{
			Level:   m.LogSuccess,
			Message: fmt.Sprintf("%d fixed %s in %q.", n, pluralise("issue", n), display),
		})
	}

	if n := len(issues.Unchanged) + len(issues.Moved); n > 0 {
		logs = append(logs, m.LogEntry{
			Level:   m.LogWarn,
			Message: fmt.Sprintf("%d existing %s in %q.", n, pluralise("issue", n), display),
		})
	}

	if n := len(issues.New); n > 0 {
		message := fmt.Sprintf("New issue in %q!", display)
		if n > 1 {
			message = fmt.Sprintf("%d new issues in %q, showing the first:", n, display)
		}

		first := firstInSourceOrder(issues.New)

		logs = append(logs,
			m.LogEntry{Level: m.LogError, Message: message},
			m.LogEntry{
				Level:   m.LogError,
				Message: first.Message,
				Code: &m.CodeFrame{
					Path:    path,
					Message: first.Message,
					Line:    first.Line,
					Column:  first.Column,
					Length:  first.Length,
				},
			},
		)
	}

	return logs
}

func (b *diffBuilder) displayPath(path m.Path) string {
	if b.config.baseDir == "" {
		return string(path)
	}

	rel, err := filepath.Rel(b.config.baseDir, string(path))
	if err != nil {
		return string(path)
	}

	return filepath.ToSlash(rel)
}

// firstInSourceOrder returns the issue nearest the top of the file. Ties keep
// discovery order.
func firstInSourceOrder(issues []m.Issue) m.Issue {
	return slices.MinFunc(issues, func(a, b m.Issue) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.Column, b.Column))
	})
}

func pluralise(word string, n int) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
