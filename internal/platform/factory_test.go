package platform_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/notes/internal/platform"
	"github.com/aretw0/notes/pkg/adapters/fs"
	"github.com/aretw0/notes/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_PersistsAcrossSessions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.yaml")

	first, err := platform.New(path, platform.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, first.Load(ctx))
	n, err := core.NewNote("groceries", "milk eggs bread", "home")
	require.NoError(t, err)
	require.NoError(t, first.Add(ctx, n))

	second, err := platform.New(path, platform.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, second.Load(ctx))
	assert.Equal(t, []core.Note{n}, second.List())
}

func TestNew_IgnoreCase(t *testing.T) {
	ctx := context.Background()
	svc, err := platform.New(filepath.Join(t.TempDir(), "notes.json"),
		platform.WithLogger(quietLogger()),
		platform.WithIgnoreCase(true),
	)
	require.NoError(t, err)
	require.NoError(t, svc.Add(ctx, core.Note{Name: "Todo", Text: "Call Client"}))
	assert.Len(t, svc.SearchByText("client"), 1)
}

func TestNew_WithSerializer(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.book")

	svc, err := platform.New(path,
		platform.WithLogger(quietLogger()),
		platform.WithSerializer(".book", fs.NewYAMLSerializer()),
	)
	require.NoError(t, err)
	require.NoError(t, svc.Add(ctx, core.Note{Name: "a", Text: "b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: 1")
}

func TestResolvePath(t *testing.T) {
	got, err := platform.ResolvePath("", false)
	require.NoError(t, err)
	assert.Equal(t, fs.DefaultFilename, got)

	abs := filepath.Join(t.TempDir(), "x.json")
	got, err = platform.ResolvePath(abs, true)
	require.NoError(t, err)
	assert.Equal(t, abs, got)
}

func TestResolvePath_SearchParents(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "shared-notes.json"), []byte(`{"version":1,"notes":[]}`), 0o600))

	t.Chdir(nested)

	got, err := platform.ResolvePath("shared-notes.json", true)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(filepath.Join(root, "shared-notes.json"))
	require.NoError(t, err)
	gotReal, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotReal)

	got, err = platform.ResolvePath("absent.json", true)
	require.NoError(t, err)
	assert.Equal(t, "absent.json", got, "falls back to the relative path")
}
