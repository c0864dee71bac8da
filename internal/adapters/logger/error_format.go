package logger

import (
	"errors"
	"strings"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+). Errors without it fall back to Error().
type messager interface {
	Message() string
}

// collectErrorEntries walks the cause chain. Errors that can report a bare
// message contribute just that; the first one that cannot contributes its
// full text and ends the walk.
func collectErrorEntries(err error) []string {
	var entries []string

	current := err
	for current != nil {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, current.Error())
			break
		}
		entries = append(entries, m.Message())
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders the chain as a root line followed by an
// indented cause tree.
func formatErrorEntries(entries []string) string {
	var out []string

	for i, entry := range entries {
		lines := strings.Split(entry, "\n")

		if i == 0 {
			out = append(out, "Error: "+lines[0])
			for _, line := range lines[1:] {
				out = append(out, "       "+line)
			}
			continue
		}

		if i == 1 {
			out = append(out, "", "  Caused by:")
		}
		out = append(out, "    → "+lines[0])
		for _, line := range lines[1:] {
			out = append(out, "      "+line)
		}
	}

	return strings.Join(out, "\n")
}
