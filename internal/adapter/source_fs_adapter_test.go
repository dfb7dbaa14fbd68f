package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/manbearwiz/betterer/internal/model"
)

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.ts")
	writeTestFile(t, path, "const a = 1;\n")

	content, err := adapter.ReadFile(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "const a = 1;\n", string(content))

	_, err = adapter.ReadFile(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceFSAdapter_ReadFile_CancelledContext(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.ReadFile(ctx, m.Path("whatever"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "nested", "dir", ".betterer.results")

	err := adapter.WriteFile(context.Background(), m.Path(path), []byte("first"), 0o644)
	require.NoError(t, err)

	err = adapter.WriteFile(context.Background(), m.Path(path), []byte("second"), 0o644)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "file.ts")
	writeTestFile(t, path, "hello")

	hash, err := adapter.HashFile(context.Background(), m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256([]byte("hello"))), hash)

	_, err = adapter.HashFile(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
	require.Error(t, err)
}

func TestLocalSourceFSAdapter_Paths(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	rel, err := adapter.RelPath(ctx, "/repo", "/repo/src/a.ts")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("src", "a.ts")), rel)

	assert.Equal(t, m.Path(filepath.Join("/repo", "src", "a.ts")), adapter.ResolvePath(ctx, "/repo", "src/a.ts"))
	assert.Equal(t, m.Path("/other/a.ts"), adapter.ResolvePath(ctx, "/repo", "/other/../other/a.ts"))
}

func TestLocalSourceFSAdapter_AbsPath(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)

	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	got, err := adapter.AbsPath(ctx, ".betterer.results")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(root, ".betterer.results")), got)

	got, err = adapter.AbsPath(ctx, "/repo/./src/../a.ts")
	require.NoError(t, err)
	assert.Equal(t, m.Path("/repo/a.ts"), got)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
