package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	m "github.com/manbearwiz/betterer/internal/model"
)

// ErrUnsupportedVersion is returned for results written by a newer release.
var ErrUnsupportedVersion = errors.New("unsupported results version")

const resultsFilePerm = 0o644

// ResultsStore loads and saves results documents. File paths are stored
// relative to the directory of the results file and resolved to absolute
// paths on load.
type ResultsStore interface {
	LoadResults(ctx context.Context, path m.Path) (m.Results, error)
	SaveResults(ctx context.Context, path m.Path, results m.Results) error
	DecodeResults(ctx context.Context, path m.Path, data []byte) (m.Results, error)
	EncodeResults(ctx context.Context, path m.Path, results m.Results) ([]byte, error)
}

type resultsStore struct {
	fs SourceFSAdapter
}

// NewResultsStore creates a ResultsStore on top of the filesystem adapter.
func NewResultsStore(fs SourceFSAdapter) ResultsStore {
	return &resultsStore{fs: fs}
}

func (s *resultsStore) LoadResults(ctx context.Context, path m.Path) (m.Results, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		return m.Results{}, fmt.Errorf("read results %s: %w", path, err)
	}

	return s.DecodeResults(ctx, path, data)
}

func (s *resultsStore) SaveResults(ctx context.Context, path m.Path, results m.Results) error {
	data, err := s.EncodeResults(ctx, path, results)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(ctx, path, data, resultsFilePerm); err != nil {
		slog.Error("Failed to write results", "path", path, "error", err)
		return fmt.Errorf("write results %s: %w", path, err)
	}

	slog.Debug("Saved results", "path", path, "tests", len(results.Tests))

	return nil
}

func (s *resultsStore) DecodeResults(ctx context.Context, path m.Path, data []byte) (m.Results, error) {
	format, err := FormatForPath(string(path))
	if err != nil {
		return m.Results{}, err
	}

	var doc resultsDocument
	if err := codecs[format].unmarshal(data, &doc); err != nil {
		slog.Error("Failed to decode results", "path", path, "format", format, "error", err)
		return m.Results{}, fmt.Errorf("decode results %s: %w", path, err)
	}

	if doc.Version > m.ResultsVersion {
		return m.Results{}, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, doc.Version, m.ResultsVersion)
	}

	base, err := s.resultsDir(ctx, path)
	if err != nil {
		return m.Results{}, err
	}

	results := m.NewResults()

	for name, test := range doc.Tests {
		snapshot, err := s.snapshotFromDocument(ctx, base, test)
		if err != nil {
			return m.Results{}, fmt.Errorf("test %q in %s: %w", name, path, err)
		}

		results.Tests[name] = snapshot
	}

	return results, nil
}

func (s *resultsStore) EncodeResults(ctx context.Context, path m.Path, results m.Results) ([]byte, error) {
	format, err := FormatForPath(string(path))
	if err != nil {
		return nil, err
	}

	base, err := s.resultsDir(ctx, path)
	if err != nil {
		return nil, err
	}

	doc := resultsDocument{
		Version: m.ResultsVersion,
		Tests:   make(map[string]testDocument, len(results.Tests)),
	}

	for _, name := range results.TestNames() {
		test, err := s.documentFromSnapshot(ctx, base, results.Tests[name])
		if err != nil {
			return nil, fmt.Errorf("test %q: %w", name, err)
		}

		doc.Tests[name] = test
	}

	data, err := codecs[format].marshal(doc)
	if err != nil {
		slog.Error("Failed to encode results", "path", path, "format", format, "error", err)
		return nil, fmt.Errorf("encode results %s: %w", path, err)
	}

	return data, nil
}

// resultsDir is the absolute directory file paths in the document are
// relative to. Snapshot keys are always absolute so files recorded under
// different working directories still match.
func (s *resultsStore) resultsDir(ctx context.Context, path m.Path) (m.Path, error) {
	abs, err := s.fs.AbsPath(ctx, path)
	if err != nil {
		return "", fmt.Errorf("resolve results path %s: %w", path, err)
	}

	return m.Path(filepath.Dir(string(abs))), nil
}

func (s *resultsStore) snapshotFromDocument(ctx context.Context, base m.Path, test testDocument) (m.ResultSnapshot, error) {
	files := make([]m.FileSnapshot, 0, len(test.Files))

	for _, file := range test.Files {
		var issues []m.Issue

		for i, raw := range file.Issues {
			issue, err := m.ParseSerialisedIssue(raw)
			if err != nil {
				return m.ResultSnapshot{}, fmt.Errorf("%s issue %d: %w", file.Path, i, err)
			}

			issues = append(issues, issue)
		}

		files = append(files, m.FileSnapshot{
			AbsolutePath: s.fs.ResolvePath(ctx, base, m.Path(filepath.FromSlash(file.Path))),
			Hash:         file.Hash,
			Issues:       issues,
		})
	}

	return m.NewResultSnapshot(files...)
}

func (s *resultsStore) documentFromSnapshot(ctx context.Context, base m.Path, snapshot m.ResultSnapshot) (testDocument, error) {
	files := snapshot.Files()
	test := testDocument{Files: make([]fileDocument, 0, len(files))}

	for _, file := range files {
		rel, err := s.fs.RelPath(ctx, base, file.AbsolutePath)
		if err != nil {
			return testDocument{}, fmt.Errorf("relative path for %s: %w", file.AbsolutePath, err)
		}

		doc := fileDocument{
			Path: filepath.ToSlash(string(rel)),
			Hash: file.Hash,
		}

		for _, issue := range file.Issues {
			tuple := issue.Serialise()
			doc.Issues = append(doc.Issues, issueTuple(tuple[:]))
		}

		test.Files = append(test.Files, doc)
	}

	return test, nil
}
