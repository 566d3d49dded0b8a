// Package quotepdf renders sales quotes as PDF documents.
//
// # Quick Start
//
// Create an exporter, export a quote, and save the result:
//
//	exp, err := quotepdf.NewExporter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := exp.Export(ctx, quotepdf.Input{
//	    Client: quotepdf.ClientInfo{Name: "Acme Corp", Date: "2026-01-15"},
//	    Items: []*quotepdf.LineItem{
//	        {
//	            ID:        1,
//	            Name:      "Ceramic Mug",
//	            Size:      "9x8",
//	            UnitPrice: decimal.NewFromFloat(12.50),
//	            Quantity:  3,
//	            Total:     decimal.NewFromFloat(37.50),
//	            ImageURL:  "https://example.com/mug.png",
//	        },
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := doc.Save("out")
//
// The document filename is derived from the client name: "Quote_AcmeCorp.pdf".
//
// # Export Pipeline
//
// Each export follows these stages:
//
//  1. Input sanitization (nil line items dropped, empty quotes rejected)
//  2. Concurrent image resolution (item thumbnails and branding logo,
//     normalized to PNG; failures degrade to blank cells)
//  3. Layout assembly (localized dates and money, fallback strings)
//  4. PDF rendering via maroto (A4, keep-together summary block)
//
// # Configuration
//
// Use functional options to customize the exporter:
//
//	exp, err := quotepdf.NewExporter(
//	    quotepdf.WithCurrency("BRL"),
//	    quotepdf.WithLocale("pt-BR"),
//	    quotepdf.WithBrandingURL("https://example.com/logo.png"),
//	    quotepdf.WithImageTimeout(10 * time.Second),
//	    quotepdf.WithStrings(quotepdf.Strings{Title: "ORÇAMENTO"}),
//	)
//
// Image fetching never fails an export: unreachable or undecodable images
// leave their table cell blank, and a failed branding fetch produces a
// header without a logo.
//
// # Reproducible Output
//
// PDF metadata normally embeds the generation time, so two exports of the
// same quote differ byte for byte. Pin the creation date to make output
// reproducible:
//
//	exp, err := quotepdf.NewExporter(
//	    quotepdf.WithCreationDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
//	)
package quotepdf
