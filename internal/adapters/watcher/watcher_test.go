package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hubdeploy/internal/adapters/watcher"
	"hubdeploy/internal/core/ports"
)

// collectEvents drains the watcher's event sequence into a channel so tests
// can wait on individual events with a timeout.
func collectEvents(w ports.Watcher) <-chan ports.WatchEvent {
	out := make(chan ports.WatchEvent, 100)
	go func() {
		defer close(out)
		for ev := range w.Events() {
			out <- ev
		}
	}()
	return out
}

func waitForPath(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("event stream closed before an event for %s arrived", path)
			}
			if ev.Path == path {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for an event for %s", path)
		}
	}
}

func TestWatcher_DetectsFileChanges(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx, dir))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)

	path := filepath.Join(dir, "thermostat.groovy")
	require.NoError(t, os.WriteFile(path, []byte("definition(name: 'Thermostat')"), 0o644))

	ev := waitForPath(t, events, path)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, ev.Operation)
}

func TestWatcher_DetectsRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.groovy")
	require.NoError(t, os.WriteFile(path, []byte("definition()"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx, dir))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)
	require.NoError(t, os.Remove(path))

	ev := waitForPath(t, events, path)
	assert.Contains(t, []ports.WatchOp{ports.OpRemove, ports.OpRename}, ev.Operation)
}

func TestWatcher_StartFailsOnMissingDirectory(t *testing.T) {
	ctx := context.Background()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	err = w.Start(ctx, filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestWatcher_ContextCancelEndsEvents(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx, dir))
	defer func() { _ = w.Stop() }()

	events := collectEvents(w)
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// A buffered event may still be in flight; the stream must
			// close right after.
			_, ok = <-events
			assert.False(t, ok)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not close after context cancellation")
	}
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	dir := t.TempDir()

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background(), dir))

	events := collectEvents(w)
	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not close after Stop")
	}
}
