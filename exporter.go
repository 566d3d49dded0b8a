package quotepdf

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alnah/go-quotepdf/internal/dateutil"
	"github.com/alnah/go-quotepdf/internal/fileutil"
	"github.com/alnah/go-quotepdf/internal/locale"
	"github.com/alnah/go-quotepdf/internal/money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Exporter renders quote documents. It is immutable after construction and
// safe for concurrent use.
type Exporter struct {
	cfg      exporterConfig
	resolver ImageResolver
	now      func() time.Time
	cur      money.Currency
	loc      locale.Locale
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithCurrency, WithLocale,
// WithBrandingURL). Returns error for an unsupported currency or locale.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{
		cfg: exporterConfig{
			imageTimeout: DefaultImageTimeout,
			currency:     DefaultCurrency,
			locale:       DefaultLocale,
			strings:      DefaultStrings(),
			concurrency:  defaultConcurrency,
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	cur, err := money.Lookup(e.cfg.currency)
	if err != nil {
		return nil, err
	}
	e.cur = cur

	loc, err := locale.Match(e.cfg.locale)
	if err != nil {
		return nil, err
	}
	e.loc = loc

	if e.resolver == nil {
		e.resolver = newHTTPResolver(e.cfg.httpClient, e.cfg.imageTimeout)
	}

	return e, nil
}

// Export renders one quote document. The context covers the whole export;
// image fetches additionally carry their own per-fetch timeout.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (e *Exporter) Export(ctx context.Context, input Input) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	items := sanitizeItems(input.Items)
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	images, branding := e.resolveImages(ctx, items)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	l := &layout{
		items:    items,
		client:   input.Client,
		total:    aggregateTotal(items),
		images:   images,
		branding: branding,
		issued:   dateutil.IssueDate(input.Client.Date, e.now),
		str:      e.cfg.strings,
		cur:      e.cur,
		loc:      e.loc,
		created:  e.cfg.creationDate,
	}

	pdf, err := e.buildPDF(l)
	if err != nil {
		return nil, err
	}

	return &Document{
		PDF:      pdf,
		Filename: e.filename(input.Client.Name),
	}, nil
}

// sanitizeItems drops nil entries and copies the rest by value so later
// caller mutations cannot reach the renderer.
func sanitizeItems(items []*LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, *item)
	}
	return out
}

// aggregateTotal sums line totals with decimal arithmetic. Zero-value totals
// count as zero.
func aggregateTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}
	return total
}

// resolveImages fetches every distinct item thumbnail plus the branding logo
// concurrently. Items without an identity or image URL get no cache entry at
// all; failed fetches leave nil entries. Both render as a blank cell.
func (e *Exporter) resolveImages(ctx context.Context, items []LineItem) (map[int64][]byte, []byte) {
	images := make(map[int64][]byte, len(items))
	var branding []byte
	var mu sync.Mutex

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.cfg.concurrency)

	seen := make(map[int64]bool, len(items))
	for _, item := range items {
		if item.ID == 0 || item.ImageURL == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		eg.Go(func() error {
			data := e.resolver.Resolve(gctx, item.ImageURL)
			mu.Lock()
			images[item.ID] = data
			mu.Unlock()
			return nil
		})
	}

	if e.cfg.brandingURL != "" {
		eg.Go(func() error {
			branding = e.resolver.Resolve(gctx, e.cfg.brandingURL)
			return nil
		})
	}

	_ = eg.Wait() // no goroutine returns an error
	return images, branding
}

// filename derives "<Prefix>_<SanitizedClient>.pdf". A client name that
// sanitizes to nothing falls back to the file client fallback, sanitized the
// same way.
func (e *Exporter) filename(clientName string) string {
	name := fileutil.SanitizeName(clientName, MaxFilenameClientLength)
	if name == "" {
		name = fileutil.SanitizeName(e.cfg.strings.FileClientFallback, MaxFilenameClientLength)
	}
	return e.cfg.strings.FilenamePrefix + "_" + name + ".pdf"
}
