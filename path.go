package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// Path segments are decoded strings. A leading empty segment marks an
// absolute path, a trailing empty segment marks a trailing slash, and
// the single empty segment marks the absolute empty path "/".

func parsePath(s string) ([]string, error) {
	switch s {
	case "/":
		// Absolute empty path, kept as a single empty segment so the
		// leading slash survives a round trip.
		return []string{""}, nil
	case "":
		return nil, nil
	}
	parts := strings.Split(s, "/")
	path := make([]string, len(parts))
	for i, part := range parts {
		segment, err := grammar.DecodeElement(part, grammar.PCharNotPctEncoded, grammar.CtxPath)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		path[i] = segment
	}
	return path, nil
}

func isPathAbsolute(path []string) bool {
	return len(path) > 0 && path[0] == ""
}

func canNavigatePathUpOneLevel(path []string) bool {
	switch {
	case len(path) == 0:
		return false
	case path[0] == "":
		// A leading empty segment is the absolute root marker and is
		// never popped.
		return len(path) > 1
	default:
		return true
	}
}

// normalizePath applies the remove_dot_segments routine of RFC 3986
// section 5.2.4 to decoded path segments. The atDirectoryLevel flag
// tracks whether the rebuilt path currently refers to a directory, so
// that "." and ".." leave a trailing slash behind.
func normalizePath(path []string) []string {
	atDirectoryLevel := false
	normalized := make([]string, 0, len(path))
	for _, segment := range path {
		switch segment {
		case ".":
			atDirectoryLevel = true
		case "..":
			if len(normalized) > 0 && canNavigatePathUpOneLevel(normalized) {
				normalized = normalized[:len(normalized)-1]
			}
			atDirectoryLevel = true
		default:
			// An empty segment marks a transition to a directory level
			// context. If we're already in that context, the transition
			// is ignored.
			if !atDirectoryLevel || segment != "" {
				normalized = append(normalized, segment)
			}
			atDirectoryLevel = segment == ""
		}
	}
	if atDirectoryLevel && len(normalized) > 0 && normalized[len(normalized)-1] != "" {
		normalized = append(normalized, "")
	}
	return normalized
}
