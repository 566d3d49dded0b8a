package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	quotepdf "github.com/alnah/go-quotepdf"
	"github.com/alnah/go-quotepdf/internal/budget"
	"github.com/alnah/go-quotepdf/internal/catalog"
	"github.com/alnah/go-quotepdf/internal/config"
	"github.com/alnah/go-quotepdf/internal/dateutil"
	"github.com/alnah/go-quotepdf/internal/yamlutil"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput               = errors.New("no quote file specified")
	ErrNoCatalog             = errors.New("no catalog file specified")
	ErrReadQuote             = errors.New("failed to read quote file")
	ErrQuoteParse            = errors.New("failed to parse quote file")
	ErrInvalidQuoteExtension = errors.New("file must have .yaml or .yml extension")
	ErrInvalidWorkerCount    = errors.New("invalid worker count")
)

// maxWorkers bounds batch concurrency; exports are I/O-light, so more
// workers than this just thrash the scheduler.
const maxWorkers = 32

// quoteFile mirrors the YAML layout of a quote request on disk.
type quoteFile struct {
	Client struct {
		Name  string `yaml:"name"`
		Phone string `yaml:"phone"`
		Date  string `yaml:"date"`
	} `yaml:"client"`
	Items []quoteItem `yaml:"items"`
}

// quoteItem is one requested line. Catalog quotes give just id and quantity;
// inline quotes carry the full item.
type quoteItem struct {
	ID        int64   `yaml:"id"`
	Quantity  int     `yaml:"quantity"`
	Name      string  `yaml:"name"`
	Size      string  `yaml:"size"`
	UnitPrice float64 `yaml:"unitPrice"`
	ImageURL  string  `yaml:"imageUrl"`
}

// ExportResult holds the outcome of a single export.
type ExportResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// exportParams groups parameters shared across the batch.
type exportParams struct {
	exporter  *quotepdf.Exporter
	catalog   *catalog.Catalog
	outputDir string
	client    quotepdf.ClientInfo // non-empty fields override the quote file
}

// runExport orchestrates the export process.
func runExport(ctx context.Context, positional []string, flags *exportFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg := config.DefaultConfig()
	configPath := flags.common.config
	if configPath == "" {
		configPath = envCfg.ConfigPath
	}
	if configPath != "" {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	applyEnvConfig(envCfg, cfg)
	mergeExportFlags(flags, cfg)

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}

	files, err := discoverQuoteFiles(inputPath)
	if err != nil {
		return fmt.Errorf("discovering quote files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no quote files found in %s", inputPath)
	}

	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
	}

	opts, err := buildExporterOptions(flags, envCfg, cfg, env)
	if err != nil {
		return err
	}
	exporter, err := quotepdf.NewExporter(opts...)
	if err != nil {
		return err
	}

	params := &exportParams{
		exporter:  exporter,
		catalog:   cat,
		outputDir: resolveOutputDir(flags.output, cfg),
		client: quotepdf.ClientInfo{
			Name:  flags.client.name,
			Phone: flags.client.phone,
			Date:  flags.client.date,
		},
	}

	results := exportBatch(ctx, params, files, resolveWorkers(flags.workers, envCfg.Workers))

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d export(s) failed", failed)
	}
	return nil
}

// mergeExportFlags merges CLI flags into config. CLI values override config values.
func mergeExportFlags(flags *exportFlags, cfg *config.Config) {
	if flags.catalog != "" {
		cfg.Catalog.Path = flags.catalog
	}
	if flags.document.currency != "" {
		cfg.Document.Currency = flags.document.currency
	}
	if flags.document.locale != "" {
		cfg.Document.Locale = flags.document.locale
	}
	if flags.document.brandingURL != "" {
		cfg.Document.BrandingURL = flags.document.brandingURL
	}
	if flags.document.title != "" {
		cfg.Strings.Title = flags.document.title
	}
	if flags.document.sizeUnit != "" {
		cfg.Strings.SizeUnit = flags.document.sizeUnit
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolveTimeoutWithEnv resolves the image fetch timeout.
// Priority: CLI flag > environment > config file. Zero means library default.
func resolveTimeoutWithEnv(flagValue string, envValue time.Duration, configValue string) (time.Duration, error) {
	parse := func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q: %v", s, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("invalid timeout %q: must be positive", s)
		}
		return d, nil
	}

	if flagValue != "" {
		return parse(flagValue)
	}
	if envValue > 0 {
		return envValue, nil
	}
	if configValue != "" {
		return parse(configValue)
	}
	return 0, nil
}

// buildExporterOptions assembles library options from the merged config.
func buildExporterOptions(flags *exportFlags, envCfg *envConfig, cfg *config.Config, env *Environment) ([]quotepdf.Option, error) {
	opts := []quotepdf.Option{quotepdf.WithClock(env.Now)}

	if cfg.Document.Currency != "" {
		opts = append(opts, quotepdf.WithCurrency(cfg.Document.Currency))
	}
	if cfg.Document.Locale != "" {
		opts = append(opts, quotepdf.WithLocale(cfg.Document.Locale))
	}
	if cfg.Document.BrandingURL != "" {
		opts = append(opts, quotepdf.WithBrandingURL(cfg.Document.BrandingURL))
	}

	timeout, err := resolveTimeoutWithEnv(flags.timeout, envCfg.Timeout, cfg.Document.ImageTimeout)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, quotepdf.WithImageTimeout(timeout))
	}

	if s := buildStrings(cfg); s != (quotepdf.Strings{}) {
		opts = append(opts, quotepdf.WithStrings(s))
	}

	if flags.document.creationDate != "" {
		created, ok := dateutil.ParseISO(flags.document.creationDate)
		if !ok {
			return nil, fmt.Errorf("invalid creation date %q: want YYYY-MM-DD", flags.document.creationDate)
		}
		opts = append(opts, quotepdf.WithCreationDate(created))
	}

	return opts, nil
}

// buildStrings maps config wording onto library overrides.
func buildStrings(cfg *config.Config) quotepdf.Strings {
	return quotepdf.Strings{
		Title:              cfg.Strings.Title,
		ClientFallback:     cfg.Strings.ClientFallback,
		FileClientFallback: cfg.Strings.FileClientFallback,
		FilenamePrefix:     cfg.Strings.FilenamePrefix,
		ItemFallback:       cfg.Strings.ItemFallback,
		SizeUnit:           cfg.Strings.SizeUnit,
		Tagline:            cfg.Strings.Tagline,
		ValidityNote:       cfg.Strings.ValidityNote,
		TotalLabel:         cfg.Strings.TotalLabel,
		ColumnItem:         cfg.Strings.ColumnItem,
		ColumnSize:         cfg.Strings.ColumnSize,
		ColumnQuantity:     cfg.Strings.ColumnQuantity,
		ColumnUnitPrice:    cfg.Strings.ColumnUnitPrice,
		ColumnTotal:        cfg.Strings.ColumnTotal,
	}
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > maxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// resolveWorkers determines batch concurrency.
// Priority: explicit flag > environment > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return envWorkers
	}

	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}

// discoverQuoteFiles finds all quote files to export.
func discoverQuoteFiles(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateQuoteExtension(inputPath); err != nil {
			return nil, err
		}
		return []string{inputPath}, nil
	}

	var files []string
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files, err
}

// validateQuoteExtension checks that the file has a .yaml or .yml extension.
func validateQuoteExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("%w: got %q", ErrInvalidQuoteExtension, ext)
	}
	return nil
}

// exportBatch renders quote files concurrently. The exporter is safe for
// concurrent use, so all workers share it.
func exportBatch(ctx context.Context, params *exportParams, files []string, workers int) []ExportResult {
	if len(files) == 0 {
		return nil
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]ExportResult, len(files))
	eg := &errgroup.Group{}
	eg.SetLimit(workers)
	for i, path := range files {
		eg.Go(func() error {
			results[i] = exportFile(ctx, params, path)
			return nil
		})
	}
	_ = eg.Wait() // per-file failures are carried in results

	return results
}

// exportFile renders one quote file and writes the PDF into the output
// directory.
func exportFile(ctx context.Context, params *exportParams, path string) ExportResult {
	start := time.Now()
	result := ExportResult{InputPath: path}
	fail := func(err error) ExportResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if ctx.Err() != nil {
		return fail(ctx.Err())
	}

	qf, err := loadQuoteFile(path)
	if err != nil {
		return fail(err)
	}

	input, err := buildInput(qf, params.catalog)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", path, err))
	}
	overrideClient(&input, params.client)

	doc, err := params.exporter.Export(ctx, input)
	if err != nil {
		return fail(fmt.Errorf("%s: %w", path, err))
	}

	outPath, err := doc.Save(params.outputDir)
	if err != nil {
		return fail(err)
	}

	result.OutputPath = outPath
	result.Duration = time.Since(start)
	return result
}

// loadQuoteFile reads and parses one quote request.
func loadQuoteFile(path string) (*quoteFile, error) {
	var qf quoteFile
	if err := yamlutil.LoadFileStrict(path, &qf); err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return nil, fmt.Errorf("%w: %v", ErrReadQuote, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrQuoteParse, path, err)
	}
	return &qf, nil
}

// buildInput assembles the renderer input from a parsed quote file, pulling
// item details from the catalog when a line gives just an id.
func buildInput(qf *quoteFile, cat *catalog.Catalog) (quotepdf.Input, error) {
	b := budget.New()
	for idx, q := range qf.Items {
		qty := q.Quantity
		if qty < 1 {
			qty = 1
		}

		item := catalog.Item{
			ID:        q.ID,
			Name:      q.Name,
			Size:      q.Size,
			UnitPrice: decimal.NewFromFloat(q.UnitPrice),
			ImageURL:  q.ImageURL,
		}
		if cat != nil && q.ID != 0 && q.Name == "" {
			cached, err := cat.Get(q.ID)
			if err != nil {
				return quotepdf.Input{}, fmt.Errorf("item %d: %w", q.ID, err)
			}
			item = cached
		}
		if item.ID == 0 {
			// Inline items without an id get a synthetic negative one so
			// their thumbnails can still be cached per line.
			item.ID = -int64(idx + 1)
		}

		if err := b.Add(item, qty); err != nil {
			return quotepdf.Input{}, err
		}
	}

	lines := b.Lines()
	items := make([]*quotepdf.LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, &quotepdf.LineItem{
			ID:        l.Item.ID,
			Name:      l.Item.Name,
			Size:      l.Item.Size,
			UnitPrice: l.Item.UnitPrice,
			ImageURL:  l.Item.ImageURL,
			Quantity:  l.Quantity,
			Total:     l.Total,
		})
	}

	return quotepdf.Input{
		Client: quotepdf.ClientInfo{
			Name:  qf.Client.Name,
			Phone: qf.Client.Phone,
			Date:  qf.Client.Date,
		},
		Items: items,
	}, nil
}

// overrideClient applies batch-wide client flags over the quote file values.
func overrideClient(input *quotepdf.Input, client quotepdf.ClientInfo) {
	if client.Name != "" {
		input.Client.Name = client.Name
	}
	if client.Phone != "" {
		input.Client.Phone = client.Phone
	}
	if client.Date != "" {
		input.Client.Date = client.Date
	}
}

// printResults outputs export results and returns the failure count.
func printResults(results []ExportResult, quiet, verbose bool, env *Environment) int {
	succeeded, failed := 0, 0

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		succeeded++

		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
