package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	quotepdf "github.com/alnah/go-quotepdf"
	"github.com/alnah/go-quotepdf/internal/budget"
	"github.com/alnah/go-quotepdf/internal/catalog"
	"github.com/alnah/go-quotepdf/internal/config"
	"github.com/alnah/go-quotepdf/internal/hints"
	"github.com/alnah/go-quotepdf/internal/locale"
	"github.com/alnah/go-quotepdf/internal/money"
)

// Exit codes for the quotepdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // PDF rendering errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, quotepdf.ErrPDFGeneration) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadQuote) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, quotepdf.ErrWriteDocument) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, quotepdf.ErrNoItems) ||
		errors.Is(err, quotepdf.ErrUnsupportedCurrency) ||
		errors.Is(err, quotepdf.ErrUnsupportedLocale) ||
		errors.Is(err, catalog.ErrItemNotFound) ||
		errors.Is(err, catalog.ErrDuplicateID) ||
		errors.Is(err, catalog.ErrCatalogParse) ||
		errors.Is(err, budget.ErrInvalidQuantity) ||
		errors.Is(err, ErrQuoteParse) ||
		errors.Is(err, ErrInvalidQuoteExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrNoCatalog) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}

// printError writes err to w, appending an actionable hint when one applies.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%v%s\n", err, hintFor(err))
}

// hintFor returns a remediation hint for errors with a known fix, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		var searched []string
		if dir, dirErr := os.UserConfigDir(); dirErr == nil {
			searched = append(searched, filepath.Join(dir, "go-quotepdf"))
		}
		return hints.ForConfigNotFound(searched)
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, ErrNoCatalog):
		return hints.ForNoCatalog()
	case errors.Is(err, quotepdf.ErrUnsupportedCurrency):
		return hints.ForUnsupportedCurrency(money.Codes())
	case errors.Is(err, quotepdf.ErrUnsupportedLocale):
		return hints.ForUnsupportedLocale(locale.Names())
	case errors.Is(err, quotepdf.ErrWriteDocument):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
