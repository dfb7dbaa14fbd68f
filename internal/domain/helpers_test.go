package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/manbearwiz/betterer/internal/model"
)

func newSnapshot(t *testing.T, files ...m.FileSnapshot) m.ResultSnapshot {
	t.Helper()

	snapshot, err := m.NewResultSnapshot(files...)
	require.NoError(t, err)

	return snapshot
}

func issue(line, column, length uint, message, hash string) m.Issue {
	return m.Issue{Line: line, Column: column, Length: length, Message: message, Hash: hash}
}

func paths(files []m.FileSnapshot) []m.Path {
	out := make([]m.Path, 0, len(files))
	for _, file := range files {
		out = append(out, file.AbsolutePath)
	}

	return out
}
