// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-html2js/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-html2js") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for bundle write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnsupportedTarget lists the targets the compiler knows.
func ForUnsupportedTarget(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available targets: " + strings.Join(available, ", "))
}

// ForUnknownEngine lists the template engines usable with --process.
func ForUnknownEngine(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available engines: " + strings.Join(available, ", "))
}

// ForMinification returns hints for templates the minifier rejects.
func ForMinification() string {
	return formatHints([]string{
		"check the template for unclosed tags or comments",
		"run without htmlmin options to bundle it unminified",
	})
}

// ForQuoteChar returns hints for quote character errors.
func ForQuoteChar() string {
	return format(`use a single character such as " or '`)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
