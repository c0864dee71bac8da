package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// MaxTypeCandidates caps how many catalog entries an ambiguous match reports.
const MaxTypeCandidates = 15

// TypeEntry is one row of the hub's installed-code catalog.
type TypeEntry struct {
	ID   int
	Name string
}

// MatchTypes returns the catalog entries whose names contain query,
// case-insensitively, preserving catalog order. Names are compared trimmed.
func MatchTypes(entries []TypeEntry, query string) []TypeEntry {
	q := normalizeTypeName(query)
	var matches []TypeEntry
	for _, entry := range entries {
		if strings.Contains(normalizeTypeName(entry.Name), q) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// ResolveType finds the single catalog entry named by query.
// An exact name match wins immediately, even when other entries contain the
// query as a substring. Otherwise exactly one substring match resolves; zero
// matches yield ErrTypeNotFound and several yield ErrTypeAmbiguous.
func ResolveType(entries []TypeEntry, query string) (TypeEntry, error) {
	q := normalizeTypeName(query)

	var matches []TypeEntry
	for _, entry := range entries {
		name := normalizeTypeName(entry.Name)
		if name == q {
			return TypeEntry{ID: entry.ID, Name: strings.TrimSpace(entry.Name)}, nil
		}
		if strings.Contains(name, q) {
			matches = append(matches, entry)
		}
	}

	switch len(matches) {
	case 1:
		return TypeEntry{ID: matches[0].ID, Name: strings.TrimSpace(matches[0].Name)}, nil
	case 0:
		return TypeEntry{}, zerr.With(ErrTypeNotFound, "query", query)
	default:
		err := zerr.With(ErrTypeAmbiguous, "query", query)
		return TypeEntry{}, zerr.With(err, "matches", len(matches))
	}
}

func normalizeTypeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
