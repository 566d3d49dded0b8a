package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// clientFlags holds client identity overrides.
type clientFlags struct {
	name  string
	phone string
	date  string
}

// documentFlags holds document appearance flags.
type documentFlags struct {
	currency     string
	locale       string
	brandingURL  string
	title        string
	sizeUnit     string
	creationDate string
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common   commonFlags
	output   string
	catalog  string
	workers  int
	timeout  string
	client   clientFlags
	document documentFlags
}

// catalogFlags holds all flags for the catalog command.
type catalogFlags struct {
	common commonFlags
	path   string
	filter string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addClientFlags adds client override flags to a FlagSet.
func addClientFlags(fs *flag.FlagSet, f *clientFlags) {
	fs.StringVar(&f.name, "client-name", "", "client name (overrides quote file)")
	fs.StringVar(&f.phone, "client-phone", "", "client phone (overrides quote file)")
	fs.StringVar(&f.date, "client-date", "", "issue date YYYY-MM-DD (overrides quote file)")
}

// addDocumentFlags adds document appearance flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.currency, "currency", "", "currency code: USD, BRL, EUR, GBP")
	fs.StringVar(&f.locale, "locale", "", "locale tag: en-US, pt-BR, ...")
	fs.StringVar(&f.brandingURL, "branding-url", "", "header logo URL")
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.sizeUnit, "size-unit", "", "unit label for item sizes")
	fs.StringVar(&f.creationDate, "creation-date", "", "pin PDF creation date (YYYY-MM-DD)")
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string) (*exportFlags, []string, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.catalog, "catalog", "", "catalog JSON file")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel exports (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "image fetch timeout (e.g., 5s, 30s)")

	addCommonFlags(fs, &f.common)
	addClientFlags(fs, &f.client)
	addDocumentFlags(fs, &f.document)

	fs.Usage = func() { printExportUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseCatalogFlags parses catalog command flags and returns positional args.
func parseCatalogFlags(args []string) (*catalogFlags, []string, error) {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	f := &catalogFlags{}

	fs.StringVar(&f.path, "catalog", "", "catalog JSON file")
	fs.StringVarP(&f.filter, "filter", "f", "", "filter items by name substring")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printCatalogUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
