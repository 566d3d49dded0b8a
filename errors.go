package quotepdf

import (
	"errors"

	"github.com/alnah/go-quotepdf/internal/locale"
	"github.com/alnah/go-quotepdf/internal/money"
)

// Sentinel errors for library operations.
var (
	ErrNoItems       = errors.New("quote has no items")
	ErrPDFGeneration = errors.New("PDF generation failed")
	ErrWriteDocument = errors.New("failed to write document")
)

// Configuration errors, aliased from internal packages so callers can match
// them without importing internals.
var (
	ErrUnsupportedCurrency = money.ErrUnsupportedCurrency
	ErrUnsupportedLocale   = locale.ErrUnsupportedLocale
)
