// Package fs provides file system helpers for the watch loop.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"hubdeploy/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher digests file contents with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the XXHash of a file's content.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
