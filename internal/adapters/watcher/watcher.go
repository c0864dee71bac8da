// Package watcher implements file system watching for watch mode.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/fsnotify/fsnotify"

	"hubdeploy/internal/core/ports"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements file system watching using fsnotify. It watches a
// single directory, not a tree; editors save through temp-file renames, so
// watching the containing directory is what catches a file change reliably.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching the given directory.
func (w *Watcher) Start(ctx context.Context, dir string) error {
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns an iterator of file system events. The sequence ends when
// the watcher stops or its context is cancelled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent := convertEvent(event)
			if watchEvent == nil {
				continue
			}

			select {
			case w.events <- *watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// convertEvent maps an fsnotify event to a ports.WatchEvent. Chmod-only
// events carry no content change and are dropped.
func convertEvent(event fsnotify.Event) *ports.WatchEvent {
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpWrite}
	case event.Op&fsnotify.Create == fsnotify.Create:
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpCreate}
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpRemove}
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		return &ports.WatchEvent{Path: event.Name, Operation: ports.OpRename}
	default:
		return nil
	}
}
