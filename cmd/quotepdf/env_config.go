package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-quotepdf/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string        // QUOTEPDF_CONFIG: config file name or path
	CatalogPath string        // QUOTEPDF_CATALOG: catalog JSON path
	InputDir    string        // QUOTEPDF_INPUT_DIR: default quote file directory
	OutputDir   string        // QUOTEPDF_OUTPUT_DIR: default output directory
	Currency    string        // QUOTEPDF_CURRENCY: ISO 4217 code
	Locale      string        // QUOTEPDF_LOCALE: BCP 47 tag
	BrandingURL string        // QUOTEPDF_BRANDING_URL: header logo URL
	Timeout     time.Duration // QUOTEPDF_TIMEOUT: image fetch timeout
	Workers     int           // QUOTEPDF_WORKERS: parallel exports
}

// knownEnvVars lists valid QUOTEPDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"QUOTEPDF_CONFIG":       true,
	"QUOTEPDF_CATALOG":      true,
	"QUOTEPDF_INPUT_DIR":    true,
	"QUOTEPDF_OUTPUT_DIR":   true,
	"QUOTEPDF_CURRENCY":     true,
	"QUOTEPDF_LOCALE":       true,
	"QUOTEPDF_BRANDING_URL": true,
	"QUOTEPDF_TIMEOUT":      true,
	"QUOTEPDF_WORKERS":      true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized QUOTEPDF_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("QUOTEPDF_CONFIG"),
		CatalogPath: os.Getenv("QUOTEPDF_CATALOG"),
		InputDir:    os.Getenv("QUOTEPDF_INPUT_DIR"),
		OutputDir:   os.Getenv("QUOTEPDF_OUTPUT_DIR"),
		Currency:    os.Getenv("QUOTEPDF_CURRENCY"),
		Locale:      os.Getenv("QUOTEPDF_LOCALE"),
		BrandingURL: os.Getenv("QUOTEPDF_BRANDING_URL"),
	}

	if timeout := os.Getenv("QUOTEPDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("QUOTEPDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized QUOTEPDF_* variables.
// Helps catch typos like QUOTEPDF_CURENCY instead of QUOTEPDF_CURRENCY.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "QUOTEPDF_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig fills config gaps from environment variables.
// Env values apply only where the config file left a field empty, so explicit
// config wins over the environment. CLI flags are applied later via
// mergeExportFlags and override both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.CatalogPath != "" && cfg.Catalog.Path == "" {
		cfg.Catalog.Path = env.CatalogPath
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Currency != "" && cfg.Document.Currency == "" {
		cfg.Document.Currency = env.Currency
	}
	if env.Locale != "" && cfg.Document.Locale == "" {
		cfg.Document.Locale = env.Locale
	}
	if env.BrandingURL != "" && cfg.Document.BrandingURL == "" {
		cfg.Document.BrandingURL = env.BrandingURL
	}
	// Timeout and workers are resolved separately so the CLI flag can
	// override them without going through the config struct.
}
