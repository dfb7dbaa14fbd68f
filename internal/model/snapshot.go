package model

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicatePath is returned when a snapshot would contain the same path twice.
var ErrDuplicatePath = errors.New("duplicate file path")

// ErrEmptyPath is returned when a file snapshot has no path.
var ErrEmptyPath = errors.New("empty file path")

// FileSnapshot holds the issues recorded for one file.
type FileSnapshot struct {
	AbsolutePath Path
	Hash         string
	Issues       []Issue
}

// ResultSnapshot is the set of file snapshots recorded by one run, keyed by
// absolute path. Files keep the order they were added in.
type ResultSnapshot struct {
	files []FileSnapshot
	index map[Path]int
}

// NewResultSnapshot builds a snapshot from files, rejecting empty and
// duplicate paths.
func NewResultSnapshot(files ...FileSnapshot) (ResultSnapshot, error) {
	snapshot := ResultSnapshot{
		files: make([]FileSnapshot, 0, len(files)),
		index: make(map[Path]int, len(files)),
	}

	for _, file := range files {
		if file.AbsolutePath == "" {
			return ResultSnapshot{}, ErrEmptyPath
		}

		if _, exists := snapshot.index[file.AbsolutePath]; exists {
			return ResultSnapshot{}, fmt.Errorf("%w: %s", ErrDuplicatePath, file.AbsolutePath)
		}

		snapshot.index[file.AbsolutePath] = len(snapshot.files)
		snapshot.files = append(snapshot.files, FileSnapshot{
			AbsolutePath: file.AbsolutePath,
			Hash:         file.Hash,
			Issues:       slices.Clone(file.Issues),
		})
	}

	return snapshot, nil
}

// Files returns the file snapshots in insertion order.
func (r ResultSnapshot) Files() []FileSnapshot {
	return slices.Clone(r.files)
}

// Get looks a file snapshot up by its absolute path.
func (r ResultSnapshot) Get(path Path) (FileSnapshot, bool) {
	i, ok := r.index[path]
	if !ok {
		return FileSnapshot{}, false
	}

	return r.files[i], true
}

// Has reports whether the snapshot contains path.
func (r ResultSnapshot) Has(path Path) bool {
	_, ok := r.index[path]
	return ok
}

// Len returns the number of files in the snapshot.
func (r ResultSnapshot) Len() int {
	return len(r.files)
}

// IssueCount returns the number of issues across all files.
func (r ResultSnapshot) IssueCount() int {
	total := 0
	for _, file := range r.files {
		total += len(file.Issues)
	}

	return total
}
