package quotepdf

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Default exporter settings.
const (
	DefaultCurrency     = "USD"
	DefaultLocale       = "en-US"
	DefaultImageTimeout = 5 * time.Second
)

// MaxFilenameClientLength caps the sanitized client name embedded in the
// output filename.
const MaxFilenameClientLength = 30

// defaultConcurrency bounds parallel image fetches when not configured.
const defaultConcurrency = 8

// LineItem is one quoted product line. Prices use decimal arithmetic end to
// end; they are never floats.
type LineItem struct {
	ID        int64           // Identity for thumbnail caching; must be unique and non-zero to cache
	Name      string          // Display name (ItemFallback when empty)
	Size      string          // Free-text dimensions, printed with the configured unit suffix
	UnitPrice decimal.Decimal // Exact unit price
	ImageURL  string          // Thumbnail source (empty = blank thumbnail cell)
	Quantity  int
	Total     decimal.Decimal // Quantity times unit price, computed upstream
}

// ClientInfo identifies the quote recipient.
type ClientInfo struct {
	Name  string // Empty = body and filename fallbacks apply
	Phone string // Optional, printed under the name when present
	Date  string // Optional ISO date (YYYY-MM-DD); today when absent or malformed
}

// Input contains everything needed to export one quote document.
// Items is a pointer slice so upstream collaborators can hand over sparse
// lists; nil entries are dropped during validation.
type Input struct {
	Items  []*LineItem
	Client ClientInfo
}

// Strings holds every fixed piece of document text. The body fallback
// (ClientFallback) and the filename fallback (FileClientFallback) are
// intentionally distinct settings.
type Strings struct {
	Title              string // Document heading
	ClientFallback     string // Printed when the client name is empty
	FileClientFallback string // Used in the filename when the client name sanitizes to nothing
	FilenamePrefix     string
	ItemFallback       string // Printed when a line item has no name
	SizeUnit           string // Suffix for the size column, e.g. "cm"
	Tagline            string
	ValidityNote       string
	TotalLabel         string
	ColumnItem         string
	ColumnSize         string
	ColumnQuantity     string
	ColumnUnitPrice    string
	ColumnTotal        string
}

// DefaultStrings returns the built-in document strings.
func DefaultStrings() Strings {
	return Strings{
		Title:              "QUOTE",
		ClientFallback:     "Final Customer",
		FileClientFallback: "Client",
		FilenamePrefix:     "Quote",
		ItemFallback:       "Item",
		SizeUnit:           "cm",
		Tagline:            "Thank you for your preference.",
		ValidityNote:       "Prices valid for 7 days from the issue date.",
		TotalLabel:         "TOTAL",
		ColumnItem:         "Item",
		ColumnSize:         "Size",
		ColumnQuantity:     "Qty",
		ColumnUnitPrice:    "Unit price",
		ColumnTotal:        "Total",
	}
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	imageTimeout time.Duration
	httpClient   *http.Client
	brandingURL  string
	currency     string
	locale       string
	strings      Strings
	creationDate time.Time
	concurrency  int
}

// WithImageTimeout bounds each image fetch.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithImageTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("quotepdf: WithImageTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.imageTimeout = d
	}
}

// WithHTTPClient replaces the HTTP client used for image fetches.
// A nil client keeps the default.
func WithHTTPClient(c *http.Client) Option {
	return func(e *Exporter) {
		if c != nil {
			e.cfg.httpClient = c
		}
	}
}

// WithBrandingURL sets the logo fetched into the document header.
// Fetch failures degrade to a header without a logo.
func WithBrandingURL(url string) Option {
	return func(e *Exporter) {
		e.cfg.brandingURL = url
	}
}

// WithCurrency sets the ISO 4217 code used for money formatting.
func WithCurrency(code string) Option {
	return func(e *Exporter) {
		e.cfg.currency = code
	}
}

// WithLocale sets the BCP 47 tag controlling date and number formatting.
func WithLocale(tag string) Option {
	return func(e *Exporter) {
		e.cfg.locale = tag
	}
}

// WithStrings overrides document strings. Zero-value fields keep their
// defaults.
func WithStrings(s Strings) Option {
	return func(e *Exporter) {
		e.cfg.strings = mergeStrings(e.cfg.strings, s)
	}
}

// WithResolver replaces the image resolver. Intended for tests and for
// callers with their own image sources.
func WithResolver(r ImageResolver) Option {
	return func(e *Exporter) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithCreationDate pins the PDF metadata creation date, making output bytes
// reproducible for identical input.
func WithCreationDate(t time.Time) Option {
	return func(e *Exporter) {
		e.cfg.creationDate = t
	}
}

// WithConcurrency bounds parallel image fetches.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithConcurrency(n int) Option {
	if n <= 0 {
		panic("quotepdf: WithConcurrency count must be positive")
	}
	return func(e *Exporter) {
		e.cfg.concurrency = n
	}
}

// WithClock replaces the time source used for fallback issue dates.
// Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

// mergeStrings overlays non-empty fields of override onto base.
func mergeStrings(base, override Strings) Strings {
	if override.Title != "" {
		base.Title = override.Title
	}
	if override.ClientFallback != "" {
		base.ClientFallback = override.ClientFallback
	}
	if override.FileClientFallback != "" {
		base.FileClientFallback = override.FileClientFallback
	}
	if override.FilenamePrefix != "" {
		base.FilenamePrefix = override.FilenamePrefix
	}
	if override.ItemFallback != "" {
		base.ItemFallback = override.ItemFallback
	}
	if override.SizeUnit != "" {
		base.SizeUnit = override.SizeUnit
	}
	if override.Tagline != "" {
		base.Tagline = override.Tagline
	}
	if override.ValidityNote != "" {
		base.ValidityNote = override.ValidityNote
	}
	if override.TotalLabel != "" {
		base.TotalLabel = override.TotalLabel
	}
	if override.ColumnItem != "" {
		base.ColumnItem = override.ColumnItem
	}
	if override.ColumnSize != "" {
		base.ColumnSize = override.ColumnSize
	}
	if override.ColumnQuantity != "" {
		base.ColumnQuantity = override.ColumnQuantity
	}
	if override.ColumnUnitPrice != "" {
		base.ColumnUnitPrice = override.ColumnUnitPrice
	}
	if override.ColumnTotal != "" {
		base.ColumnTotal = override.ColumnTotal
	}
	return base
}
