// Package domain contains the issue diffing core and the workflows built on it.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/manbearwiz/betterer/internal/adapter"
	"github.com/manbearwiz/betterer/internal/controller"
	m "github.com/manbearwiz/betterer/internal/model"
)

var (
	// ErrNewIssues is returned when at least one test gained issues.
	ErrNewIssues = errors.New("new issues found")
	// ErrResultsChanged is returned in strict mode when the results file is outdated.
	ErrResultsChanged = errors.New("results file is out of date")
)

// DiffArgs contains the arguments for comparing a run against recorded results.
type DiffArgs struct {
	// Results is the recorded results file.
	Results m.Path
	// Current holds the results of the fresh run.
	Current m.Path
	// Strict never writes and fails on any change.
	Strict bool
	// Update accepts new issues and always writes.
	Update bool
	// Threads bounds how many tests are diffed at once. Zero means unbounded.
	Threads int
}

// MergeArgs contains the arguments for resolving a conflicted results file.
type MergeArgs struct {
	// Contents are raw results documents, possibly with conflict markers.
	// When empty the file at ResultsPath is read instead.
	Contents    []string
	Cwd         m.Path
	ResultsPath m.Path
}

// Workflow defines the operations exposed to the command line.
type Workflow interface {
	Diff(ctx context.Context, args DiffArgs) error
	Merge(ctx context.Context, args MergeArgs) error
}

type workflow struct {
	adapter.ResultsStore
	adapter.SourceFSAdapter
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	resultsStore adapter.ResultsStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ResultsStore:    resultsStore,
		UI:              ui,
	}
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	args, err := w.absoluteDiffArgs(ctx, args)
	if err != nil {
		return err
	}

	expected, err := w.loadExpected(ctx, args.Results)
	if err != nil {
		return err
	}

	current, err := w.LoadResults(ctx, args.Current)
	if err != nil {
		slog.Error("Failed to load current results", "path", args.Current, "error", err)
		return fmt.Errorf("load current results: %w", err)
	}

	current, err = w.fillMissingHashes(ctx, current)
	if err != nil {
		return err
	}

	differ := NewDiffer(WithBaseDir(m.Path(filepath.Dir(string(args.Results)))))

	reports, err := diffTests(ctx, differ, expected, current, args.Threads)
	if err != nil {
		return fmt.Errorf("diff tests: %w", err)
	}

	for _, report := range reports {
		if err := w.DisplayTestReport(ctx, report); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	if err := w.DisplaySummary(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return w.applyPolicy(ctx, args, reports, current)
}

// absoluteDiffArgs anchors both results files to the working directory so the
// display base and the written results agree with the snapshot keys.
func (w *workflow) absoluteDiffArgs(ctx context.Context, args DiffArgs) (DiffArgs, error) {
	for _, path := range []*m.Path{&args.Results, &args.Current} {
		abs, err := w.AbsPath(ctx, *path)
		if err != nil {
			slog.Error("Failed to resolve path", "path", *path, "error", err)
			return DiffArgs{}, fmt.Errorf("resolve %s: %w", *path, err)
		}

		*path = abs
	}

	return args, nil
}

func (w *workflow) applyPolicy(ctx context.Context, args DiffArgs, reports []m.TestReport, current m.Results) error {
	worse, changed := false, false

	for _, report := range reports {
		worse = worse || report.Status == m.Worse
		changed = changed || report.Changed()
	}

	switch {
	case args.Strict && worse:
		return ErrNewIssues
	case args.Strict && changed:
		return ErrResultsChanged
	case args.Strict:
		return nil
	case worse && !args.Update:
		return ErrNewIssues
	}

	if err := w.SaveResults(ctx, args.Results, current); err != nil {
		return fmt.Errorf("save results: %w", err)
	}

	w.DisplayResultsWritten(ctx, args.Results)

	return nil
}

// loadExpected treats a missing results file as an empty one so the first
// run records a baseline.
func (w *workflow) loadExpected(ctx context.Context, path m.Path) (m.Results, error) {
	results, err := w.LoadResults(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("No recorded results, starting from scratch", "path", path)
		return m.NewResults(), nil
	}

	if err != nil {
		slog.Error("Failed to load recorded results", "path", path, "error", err)
		return m.Results{}, fmt.Errorf("load recorded results: %w", err)
	}

	return results, nil
}

// fillMissingHashes fingerprints files the analyzer reported without a
// content hash. Files that cannot be read keep an empty hash.
func (w *workflow) fillMissingHashes(ctx context.Context, results m.Results) (m.Results, error) {
	filled := m.NewResults()

	for name, snapshot := range results.Tests {
		files := snapshot.Files()

		for i, file := range files {
			if file.Hash != "" {
				continue
			}

			hash, err := w.HashFile(ctx, file.AbsolutePath)
			if err != nil {
				slog.Warn("Failed to hash file", "path", file.AbsolutePath, "error", err)
				continue
			}

			files[i].Hash = hash
		}

		rebuilt, err := m.NewResultSnapshot(files...)
		if err != nil {
			return m.Results{}, fmt.Errorf("test %q: %w", name, err)
		}

		filled.Tests[name] = rebuilt
	}

	return filled, nil
}

// diffTests compares every test independently. Tests run concurrently; each
// goroutine owns its snapshots and writes only its own report slot.
func diffTests(ctx context.Context, differ Differ, expected, current m.Results, threads int) ([]m.TestReport, error) {
	names := testNames(expected, current)
	reports := make([]m.TestReport, len(names))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, name := range names {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			prior, hadPrior := expected.Tests[name]
			result, hasResult := current.Tests[name]
			reports[i] = diffTest(differ, name, prior, hadPrior, result, hasResult)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func diffTest(differ Differ, name string, prior m.ResultSnapshot, hadPrior bool, result m.ResultSnapshot, hasResult bool) m.TestReport {
	report := m.TestReport{
		Name:           name,
		ExpectedIssues: prior.IssueCount(),
		ResultIssues:   result.IssueCount(),
	}

	switch {
	case !hadPrior:
		report.Status = m.New
		return report
	case !hasResult:
		report.Status = m.Obsolete
		return report
	}

	report.Diff = differ.Diff(prior, result)

	fixed, added, _ := report.Diff.Counts()

	switch {
	case added > 0:
		report.Status = m.Worse
	case fixed > 0:
		report.Status = m.Better
	default:
		report.Status = m.Same
	}

	slog.Debug("Diffed test", "test", name, "status", report.Status.String(), "fixed", fixed, "new", added)

	return report
}

func testNames(expected, current m.Results) []string {
	seen := make(map[string]struct{}, len(expected.Tests)+len(current.Tests))
	for name := range expected.Tests {
		seen[name] = struct{}{}
	}

	for name := range current.Tests {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	resultsPath := w.ResolvePath(ctx, args.Cwd, args.ResultsPath)

	contents := args.Contents
	if len(contents) == 0 {
		data, err := w.ReadFile(ctx, resultsPath)
		if err != nil {
			slog.Error("Failed to read results for merge", "path", resultsPath, "error", err)
			return fmt.Errorf("read results: %w", err)
		}

		contents = []string{string(data)}
	}

	merged := m.NewResults()

	for i, content := range contents {
		sides, err := SplitConflict(content)
		if err != nil {
			slog.Error("Failed to split conflict", "path", resultsPath, "content", i, "error", err)
			return fmt.Errorf("content %d: %w", i, err)
		}

		for _, side := range []string{sides.Ours, sides.Theirs} {
			results, err := w.DecodeResults(ctx, resultsPath, []byte(side))
			if err != nil {
				return fmt.Errorf("content %d: %w", i, err)
			}

			mergeResults(merged, results)
		}
	}

	if err := w.SaveResults(ctx, resultsPath, merged); err != nil {
		return fmt.Errorf("save merged results: %w", err)
	}

	w.DisplayMerge(ctx, resultsPath, len(merged.Tests))

	return nil
}

// mergeResults copies every test of src into dst, replacing tests dst already has.
func mergeResults(dst, src m.Results) {
	for name, snapshot := range src.Tests {
		dst.Tests[name] = snapshot
	}
}
