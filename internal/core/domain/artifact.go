// Package domain holds the pure types and functions of the deploy pipeline.
package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// Kind identifies which of the hub's two code namespaces a source file belongs to.
type Kind string

const (
	// KindApp is user app code, managed under the hub's /app endpoints.
	KindApp Kind = "app"

	// KindDriver is device driver code, managed under the hub's /driver endpoints.
	KindDriver Kind = "driver"
)

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindApp:
		return KindApp, nil
	case KindDriver:
		return KindDriver, nil
	default:
		return "", zerr.With(ErrInvalidKind, "kind", s)
	}
}

// SourceArtifact is a Groovy source file read into memory.
type SourceArtifact struct {
	Path   string
	Source string
}

// Empty reports whether the artifact contains no code.
// Whitespace-only files count as empty.
func (a SourceArtifact) Empty() bool {
	return strings.TrimSpace(a.Source) == ""
}

// DetectKind classifies source text as app or driver.
// Drivers declare capabilities inside their metadata block; apps never do.
func DetectKind(source string) Kind {
	if strings.Contains(source, `capability "`) || strings.Contains(source, "capability '") {
		return KindDriver
	}
	return KindApp
}

var (
	definitionNamePattern = regexp.MustCompile(`definition\s*\(\s*name\s*:\s*["']([^"']+)["']`)
	looseNamePattern      = regexp.MustCompile(`name:\s*["']([^"']+)["']`)
)

// ExtractName pulls the declared name out of source text.
// It prefers the name inside a definition(...) block and falls back to the
// first name: entry anywhere in the file. The second return value is false
// when neither form is present.
func ExtractName(source string) (string, bool) {
	if m := definitionNamePattern.FindStringSubmatch(source); m != nil {
		return m[1], true
	}
	if m := looseNamePattern.FindStringSubmatch(source); m != nil {
		return m[1], true
	}
	return "", false
}

// NameFromPath derives a display name from a file path, for sources that
// declare no name. Hyphens and underscores become spaces so the stem can
// match catalog entries named with plain words.
func NameFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.ReplaceAll(stem, "-", " ")
	return strings.ReplaceAll(stem, "_", " ")
}
