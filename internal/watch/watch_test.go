package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func waitBatch(t *testing.T, ch <-chan []string) []string {
	t.Helper()
	select {
	case paths := <-ch:
		return paths
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change batch")
		return nil
	}
}

func TestWatcherReportsMatchingChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "node_modules"), 0o750))

	batches := make(chan []string, 4)
	w, err := New(Config{
		Root:     root,
		Debounce: 50 * time.Millisecond,
		Match:    func(p string) bool { return strings.HasSuffix(p, ".d.ts") },
		SkipDir:  func(name string) bool { return name == "node_modules" },
	}, func(paths []string) { batches <- paths })
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	target := filepath.Join(root, "a-taxonomy.d.ts")
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(target, []byte("type ATaxonomy = 'a';"), 0o600))

	paths := waitBatch(t, batches)
	assert.Equal(t, []string{target}, paths)
	assert.GreaterOrEqual(t, w.Stats().Events, 1)
	assert.GreaterOrEqual(t, w.Stats().Batches, 1)
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	batches := make(chan []string, 4)
	w, err := New(Config{Root: root, Debounce: 50 * time.Millisecond}, func(paths []string) { batches <- paths })
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o750))
	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)
	target := filepath.Join(sub, "x.d.ts")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case paths := <-batches:
			if assert.NotEmpty(t, paths) && paths[len(paths)-1] == target {
				return
			}
		case <-deadline:
			t.Fatal("change in new directory was not reported")
		}
	}
}

func TestWatcherStopsOnContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	w, err := New(Config{Root: t.TempDir()}, func([]string) {})
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx), "second Start is a no-op")

	cancel()
	w.Stop()
	w.Stop()
}

func TestNewErrors(t *testing.T) {
	_, err := New(Config{}, func([]string) {})
	assert.Error(t, err)

	_, err = New(Config{Root: t.TempDir()}, nil)
	assert.Error(t, err)
}

func TestStartMissingRoot(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := New(Config{Root: filepath.Join(t.TempDir(), "missing")}, func([]string) {})
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
}
