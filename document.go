package quotepdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alnah/go-quotepdf/internal/locale"
	"github.com/alnah/go-quotepdf/internal/money"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

// File permissions for created artifacts.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Document is a rendered quote: the PDF bytes plus the filename derived from
// the client name.
type Document struct {
	PDF      []byte
	Filename string
}

// Save writes the document into dir, creating it if needed, and returns the
// full path. An empty dir means the current directory.
func (d *Document) Save(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	path := filepath.Join(dir, d.Filename)
	// #nosec G306 -- quote PDFs are meant to be readable
	if err := os.WriteFile(path, d.PDF, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return path, nil
}

// layout carries everything buildPDF needs, resolved and validated upstream.
type layout struct {
	items    []LineItem
	client   ClientInfo
	total    decimal.Decimal
	images   map[int64][]byte
	branding []byte
	issued   time.Time
	str      Strings
	cur      money.Currency
	loc      locale.Locale
	created  time.Time
}

// Color palette.
var (
	colorInk       = &props.Color{Red: 17, Green: 24, Blue: 39}
	colorMuted     = &props.Color{Red: 107, Green: 114, Blue: 128}
	colorAccent    = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorTableHead = &props.Color{Red: 241, Green: 245, Blue: 249}
	colorRowAlt    = &props.Color{Red: 249, Green: 250, Blue: 251}
	colorRule      = &props.Color{Red: 226, Green: 232, Blue: 240}
)

// Page geometry in millimeters.
const (
	leftMargin  = 15
	topMargin   = 12
	rightMargin = 15

	headerHeight     = 20 // branding logo and title band
	rowHeight        = 18 // item row, tall enough for a thumbnail
	thumbnailPercent = 85 // image size inside its cell

	// summaryHeight is the vertical extent of the summary block: separator,
	// spacer, total box, spacer, tagline, validity note. It must stay in
	// sync with the row heights in buildSummary.
	summaryHeight = 1 + 3 + 12 + 3 + 5 + 5
)

// buildPDF renders the layout into PDF bytes.
func (e *Exporter) buildPDF(l *layout) ([]byte, error) {
	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(leftMargin).
		WithTopMargin(topMargin).
		WithRightMargin(rightMargin)
	if !l.created.IsZero() {
		builder = builder.WithCreationDate(l.created)
	}
	m := maroto.New(builder.Build())

	m.AddRows(buildHeader(l)...)
	m.AddRows(buildClientBlock(l)...)
	m.AddRows(buildItemsTable(l)...)

	// The summary never splits across pages: when it does not fit below the
	// table it starts at the top margin of a fresh page.
	if !m.FitlnCurrentPage(summaryHeight) {
		m.AddPages(page.New())
	}
	m.AddRows(buildSummary(l)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return doc.GetBytes(), nil
}

// buildHeader renders the branding logo (when resolved) and the document
// title, separated from the body by a rule.
func buildHeader(l *layout) []core.Row {
	logoCol := col.New(4)
	if len(l.branding) > 0 {
		logoCol = logoCol.Add(image.NewFromBytes(l.branding, extension.Png, props.Rect{
			Percent: thumbnailPercent,
			Center:  true,
		}))
	}

	return []core.Row{
		row.New(headerHeight).Add(
			logoCol,
			col.New(8).Add(text.New(l.str.Title, props.Text{
				Size:  24,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: colorAccent,
				Top:   4,
			})),
		),
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorRule,
		}),
		row.New(6),
	}
}

// buildClientBlock renders the client identity, the issue date, and the
// optional phone line.
func buildClientBlock(l *layout) []core.Row {
	name := l.client.Name
	if name == "" {
		name = l.str.ClientFallback
	}

	rows := []core.Row{
		row.New(6).Add(
			col.New(8).Add(text.New(name, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Color: colorInk,
			})),
			col.New(4).Add(text.New(l.issued.Format(l.loc.DateLayout), props.Text{
				Size:  9,
				Align: align.Right,
				Color: colorMuted,
			})),
		),
	}
	if l.client.Phone != "" {
		rows = append(rows, row.New(5).Add(
			col.New(12).Add(text.New(l.client.Phone, props.Text{
				Size:  8,
				Color: colorMuted,
			})),
		))
	}
	return append(rows, row.New(6))
}

// buildItemsTable renders the column header and one row per line item with
// alternating backgrounds.
func buildItemsTable(l *layout) []core.Row {
	rows := make([]core.Row, 0, len(l.items)+1)

	rows = append(rows, row.New(7).Add(
		col.New(2),
		col.New(3).Add(text.New(l.str.ColumnItem, headerTextProps(align.Left))),
		col.New(2).Add(text.New(l.str.ColumnSize, headerTextProps(align.Center))),
		col.New(1).Add(text.New(l.str.ColumnQuantity, headerTextProps(align.Center))),
		col.New(2).Add(text.New(l.str.ColumnUnitPrice, headerTextProps(align.Right))),
		col.New(2).Add(text.New(l.str.ColumnTotal, headerTextProps(align.Right))),
	).WithStyle(&props.Cell{
		BackgroundColor: colorTableHead,
		BorderType:      border.Bottom,
		BorderColor:     colorRule,
	}))

	for idx := range l.items {
		rows = append(rows, buildItemRow(l, idx))
	}
	return rows
}

// buildItemRow renders one line item: thumbnail, name, size, quantity, unit
// price, and line total.
func buildItemRow(l *layout, idx int) core.Row {
	item := l.items[idx]

	name := item.Name
	if name == "" {
		name = l.str.ItemFallback
	}
	size := ""
	if item.Size != "" {
		size = item.Size + " " + l.str.SizeUnit
	}

	thumb := col.New(2)
	if png, ok := thumbnailFor(l, idx); ok {
		thumb = thumb.Add(image.NewFromBytes(png, extension.Png, props.Rect{
			Percent: thumbnailPercent,
			Center:  true,
		}))
	}

	r := row.New(rowHeight).Add(
		thumb,
		col.New(3).Add(text.New(name, cellTextProps(align.Left))),
		col.New(2).Add(text.New(size, cellTextProps(align.Center))),
		col.New(1).Add(text.New(strconv.Itoa(item.Quantity), cellTextProps(align.Center))),
		col.New(2).Add(text.New(money.Format(item.UnitPrice, l.cur, l.loc), cellTextProps(align.Right))),
		col.New(2).Add(text.New(money.Format(item.Total, l.cur, l.loc), cellTextProps(align.Right))),
	)
	if idx%2 == 0 {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorRowAlt})
	}
	return r
}

// thumbnailFor returns the cached PNG for the item at idx. Bounds and cache
// checks keep a stale cache or sparse list from panicking; a miss leaves the
// thumbnail cell blank.
func thumbnailFor(l *layout, idx int) ([]byte, bool) {
	if idx < 0 || idx >= len(l.items) {
		return nil, false
	}
	png := l.images[l.items[idx].ID]
	if len(png) == 0 {
		return nil, false
	}
	return png, true
}

// buildSummary renders the grand total box, the tagline, and the validity
// note. Row heights here must stay in sync with summaryHeight.
func buildSummary(l *layout) []core.Row {
	return []core.Row{
		row.New(1).WithStyle(&props.Cell{
			BorderType:  border.Bottom,
			BorderColor: colorRule,
		}),
		row.New(3),
		row.New(12).Add(
			col.New(9).Add(text.New(l.str.TotalLabel, props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: colorInk,
				Top:   3.5,
			})),
			col.New(3).Add(text.New(money.Format(l.total, l.cur, l.loc), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: colorAccent,
				Top:   3.5,
			})),
		).WithStyle(&props.Cell{
			BackgroundColor: colorTableHead,
			BorderType:      border.Full,
			BorderColor:     colorRule,
		}),
		row.New(3),
		row.New(5).Add(
			col.New(12).Add(text.New(l.str.Tagline, props.Text{
				Size:  8,
				Align: align.Center,
				Color: colorMuted,
			})),
		),
		row.New(5).Add(
			col.New(12).Add(text.New(l.str.ValidityNote, props.Text{
				Size:  8,
				Align: align.Center,
				Color: colorMuted,
			})),
		),
	}
}

func headerTextProps(a align.Type) props.Text {
	return props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: a,
		Color: colorInk,
		Top:   1.5,
	}
}

func cellTextProps(a align.Type) props.Text {
	return props.Text{
		Size:  9,
		Align: a,
		Color: colorInk,
		Top:   7,
	}
}
