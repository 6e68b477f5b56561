package fileutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandPatterns resolves source patterns into paths, in pattern order.
//
// Patterns containing glob syntax (*, ?, [, {) are expanded with ** support;
// directories are skipped. A pattern starting with "!" removes previously
// collected paths that match it. Literal paths are kept even when they do
// not exist, so the caller can report them. Duplicates are dropped, keeping
// the first occurrence.
func ExpandPatterns(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		if exclude, ok := strings.CutPrefix(pattern, "!"); ok {
			kept, err := excludeMatches(paths, exclude)
			if err != nil {
				return nil, err
			}
			paths = kept
			seen = make(map[string]bool, len(paths))
			for _, p := range paths {
				seen[p] = true
			}
			continue
		}

		if !HasGlobMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				paths = append(paths, pattern)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	return paths, nil
}

// HasGlobMeta reports whether pattern uses glob syntax.
func HasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// excludeMatches drops every path matching pattern.
func excludeMatches(paths []string, pattern string) ([]string, error) {
	pattern = filepath.Clean(pattern)
	kept := paths[:0:0]
	for _, p := range paths {
		matched, err := doublestar.PathMatch(pattern, filepath.Clean(p))
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", "!"+pattern, err)
		}
		if !matched {
			kept = append(kept, p)
		}
	}
	return kept, nil
}
