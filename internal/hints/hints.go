// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests the --config flag and creating a config under the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config location (contains go-quotepdf) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-quotepdf") {
			hint += " or create one under " + p
			break
		}
	}

	return format(hint)
}

// ForNoInput returns hints when no quote file was given and no default is configured.
func ForNoInput() string {
	return formatHints([]string{
		"pass a quote file: quotepdf export quote.yaml",
		"set input.defaultDir in your config",
	})
}

// ForNoCatalog returns hints when item references need a catalog but none is configured.
func ForNoCatalog() string {
	return formatHints([]string{
		"use --catalog /path/to/catalog.json",
		"set catalog.path in your config",
	})
}

// ForUnsupportedCurrency returns a hint listing the supported currency codes.
func ForUnsupportedCurrency(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("supported currencies: " + strings.Join(available, ", "))
}

// ForUnsupportedLocale returns a hint listing the supported locale names.
func ForUnsupportedLocale(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("supported locales: " + strings.Join(available, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
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
