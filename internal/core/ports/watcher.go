package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpCreate indicates a file was created.
	OpCreate WatchOp = iota
	// OpWrite indicates a file was modified.
	OpWrite
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent represents a file system event from the watcher.
type WatchEvent struct {
	// Path is the path of the file that changed.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher watches a directory for file changes. Editors save through
// temp-file renames, so watching the containing directory rather than the
// file itself is what keeps a watch session alive across saves.
type Watcher interface {
	// Start begins watching the given directory.
	Start(ctx context.Context, dir string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	Events() iter.Seq[WatchEvent]
}

// Hasher digests file contents, for detecting saves that changed nothing.
type Hasher interface {
	// HashFile returns a stable digest of the file's contents.
	HashFile(path string) (string, error)
}
