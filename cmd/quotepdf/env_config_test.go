package main

// Notes:
// - loadEnvConfig: all nine QUOTEPDF_* variables, plus graceful handling of
//   invalid timeout and worker values (ignored, not errors).
// - warnUnknownEnvVars: typo detection and that known vars don't warn.
// - applyEnvConfig: env never overrides a value the config file already set.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-quotepdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("paths and identifiers", func(t *testing.T) {
		t.Setenv("QUOTEPDF_CONFIG", "/path/to/config.yaml")
		t.Setenv("QUOTEPDF_CATALOG", "/path/to/catalog.json")
		t.Setenv("QUOTEPDF_INPUT_DIR", "/quotes")
		t.Setenv("QUOTEPDF_OUTPUT_DIR", "/out")

		cfg := loadEnvConfig()

		if cfg.ConfigPath != "/path/to/config.yaml" {
			t.Errorf("ConfigPath = %q, want /path/to/config.yaml", cfg.ConfigPath)
		}
		if cfg.CatalogPath != "/path/to/catalog.json" {
			t.Errorf("CatalogPath = %q, want /path/to/catalog.json", cfg.CatalogPath)
		}
		if cfg.InputDir != "/quotes" {
			t.Errorf("InputDir = %q, want /quotes", cfg.InputDir)
		}
		if cfg.OutputDir != "/out" {
			t.Errorf("OutputDir = %q, want /out", cfg.OutputDir)
		}
	})

	t.Run("document settings", func(t *testing.T) {
		t.Setenv("QUOTEPDF_CURRENCY", "BRL")
		t.Setenv("QUOTEPDF_LOCALE", "pt-BR")
		t.Setenv("QUOTEPDF_BRANDING_URL", "https://example.com/logo.png")
		t.Setenv("QUOTEPDF_TIMEOUT", "30s")
		t.Setenv("QUOTEPDF_WORKERS", "4")

		cfg := loadEnvConfig()

		if cfg.Currency != "BRL" {
			t.Errorf("Currency = %q, want BRL", cfg.Currency)
		}
		if cfg.Locale != "pt-BR" {
			t.Errorf("Locale = %q, want pt-BR", cfg.Locale)
		}
		if cfg.BrandingURL != "https://example.com/logo.png" {
			t.Errorf("BrandingURL = %q, want the logo URL", cfg.BrandingURL)
		}
		if cfg.Timeout != 30*time.Second {
			t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
		}
		if cfg.Workers != 4 {
			t.Errorf("Workers = %d, want 4", cfg.Workers)
		}
	})

	t.Run("invalid timeout is ignored", func(t *testing.T) {
		t.Setenv("QUOTEPDF_TIMEOUT", "not-a-duration")

		if cfg := loadEnvConfig(); cfg.Timeout != 0 {
			t.Errorf("Timeout = %v, want 0 for invalid input", cfg.Timeout)
		}
	})

	t.Run("negative timeout is ignored", func(t *testing.T) {
		t.Setenv("QUOTEPDF_TIMEOUT", "-5s")

		if cfg := loadEnvConfig(); cfg.Timeout != 0 {
			t.Errorf("Timeout = %v, want 0 for negative input", cfg.Timeout)
		}
	})

	t.Run("invalid workers is ignored", func(t *testing.T) {
		t.Setenv("QUOTEPDF_WORKERS", "many")

		if cfg := loadEnvConfig(); cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0 for invalid input", cfg.Workers)
		}
	})

	t.Run("negative workers is ignored", func(t *testing.T) {
		t.Setenv("QUOTEPDF_WORKERS", "-2")

		if cfg := loadEnvConfig(); cfg.Workers != 0 {
			t.Errorf("Workers = %d, want 0 for negative input", cfg.Workers)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Run("unknown variable triggers a warning", func(t *testing.T) {
		t.Setenv("QUOTEPDF_CURENCY", "USD")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if !strings.Contains(buf.String(), "QUOTEPDF_CURENCY") {
			t.Errorf("warning output = %q, want mention of QUOTEPDF_CURENCY", buf.String())
		}
	})

	t.Run("known variables do not warn", func(t *testing.T) {
		t.Setenv("QUOTEPDF_CURRENCY", "USD")
		t.Setenv("QUOTEPDF_LOCALE", "en-US")

		var buf bytes.Buffer
		warnUnknownEnvVars(&buf)

		if strings.Contains(buf.String(), "QUOTEPDF_CURRENCY") || strings.Contains(buf.String(), "QUOTEPDF_LOCALE") {
			t.Errorf("unexpected warning for known variables: %q", buf.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Precedence against the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Run("env fills empty config values", func(t *testing.T) {
		env := &envConfig{
			CatalogPath: "/env/catalog.json",
			InputDir:    "/env/in",
			OutputDir:   "/env/out",
			Currency:    "EUR",
			Locale:      "de-DE",
			BrandingURL: "https://example.com/logo.png",
		}
		cfg := config.DefaultConfig()

		applyEnvConfig(env, cfg)

		if cfg.Catalog.Path != "/env/catalog.json" {
			t.Errorf("Catalog.Path = %q, want /env/catalog.json", cfg.Catalog.Path)
		}
		if cfg.Input.DefaultDir != "/env/in" {
			t.Errorf("Input.DefaultDir = %q, want /env/in", cfg.Input.DefaultDir)
		}
		if cfg.Output.DefaultDir != "/env/out" {
			t.Errorf("Output.DefaultDir = %q, want /env/out", cfg.Output.DefaultDir)
		}
		if cfg.Document.Currency != "EUR" {
			t.Errorf("Document.Currency = %q, want EUR", cfg.Document.Currency)
		}
		if cfg.Document.Locale != "de-DE" {
			t.Errorf("Document.Locale = %q, want de-DE", cfg.Document.Locale)
		}
		if cfg.Document.BrandingURL != "https://example.com/logo.png" {
			t.Errorf("Document.BrandingURL = %q, want the logo URL", cfg.Document.BrandingURL)
		}
	})

	t.Run("env does not override config file values", func(t *testing.T) {
		env := &envConfig{
			Currency: "EUR",
			Locale:   "de-DE",
		}
		cfg := config.DefaultConfig()
		cfg.Document.Currency = "BRL"
		cfg.Document.Locale = "pt-BR"

		applyEnvConfig(env, cfg)

		if cfg.Document.Currency != "BRL" {
			t.Errorf("Document.Currency = %q, want the config file value BRL", cfg.Document.Currency)
		}
		if cfg.Document.Locale != "pt-BR" {
			t.Errorf("Document.Locale = %q, want the config file value pt-BR", cfg.Document.Locale)
		}
	})
}
