// Package config loads and validates quotepdf configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-quotepdf/internal/fileutil"
	"github.com/alnah/go-quotepdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for multi-tenant safety.
const (
	MaxTitleLength    = 100  // Document heading
	MaxNameLength     = 100  // Client or fallback name
	MaxURLLength      = 2048 // Browser limit
	MaxUnitLength     = 10   // "cm", "in", "mm"
	MaxTextLength     = 200  // Tagline, validity note
	MaxPrefixLength   = 30   // Filename prefix
	MaxCurrencyLength = 8    // ISO 4217 plus slack
	MaxLocaleLength   = 35   // BCP 47 recommended upper bound
	MaxLabelLength    = 50   // Table column headings
	MaxDurationLength = 20   // "5s", "1m30s"
)

// Config holds all configuration for quote document generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Document DocumentConfig `yaml:"document"`
	Strings  StringsConfig  `yaml:"strings"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default quote file directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// CatalogConfig defines product catalog options.
type CatalogConfig struct {
	Path string `yaml:"path"` // JSON catalog file (empty = quote files must inline items)
}

// DocumentConfig defines rendering options.
type DocumentConfig struct {
	Currency     string `yaml:"currency"`     // ISO 4217 code (default: USD)
	Locale       string `yaml:"locale"`       // BCP 47 tag (default: en-US)
	BrandingURL  string `yaml:"brandingUrl"`  // Header logo URL (empty = no logo)
	ImageTimeout string `yaml:"imageTimeout"` // Go duration, e.g. "5s" (default: 5s)
}

// StringsConfig overrides the fixed document strings. Empty fields keep the
// library defaults.
type StringsConfig struct {
	Title              string `yaml:"title"`
	ClientFallback     string `yaml:"clientFallback"`
	FileClientFallback string `yaml:"fileClientFallback"`
	FilenamePrefix     string `yaml:"filenamePrefix"`
	ItemFallback       string `yaml:"itemFallback"`
	SizeUnit           string `yaml:"sizeUnit"`
	Tagline            string `yaml:"tagline"`
	ValidityNote       string `yaml:"validityNote"`
	TotalLabel         string `yaml:"totalLabel"`
	ColumnItem         string `yaml:"columnItem"`
	ColumnSize         string `yaml:"columnSize"`
	ColumnQuantity     string `yaml:"columnQuantity"`
	ColumnUnitPrice    string `yaml:"columnUnitPrice"`
	ColumnTotal        string `yaml:"columnTotal"`
}

// Validate checks field lengths and formats to prevent abuse in multi-tenant
// scenarios. Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document.currency", c.Document.Currency, MaxCurrencyLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.locale", c.Document.Locale, MaxLocaleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.brandingUrl", c.Document.BrandingURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.imageTimeout", c.Document.ImageTimeout, MaxDurationLength); err != nil {
		return err
	}
	if c.Document.ImageTimeout != "" {
		d, err := time.ParseDuration(c.Document.ImageTimeout)
		if err != nil {
			return fmt.Errorf("document.imageTimeout: invalid duration %q", c.Document.ImageTimeout)
		}
		if d <= 0 {
			return fmt.Errorf("document.imageTimeout: must be positive, got %q", c.Document.ImageTimeout)
		}
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"strings.title", c.Strings.Title, MaxTitleLength},
		{"strings.clientFallback", c.Strings.ClientFallback, MaxNameLength},
		{"strings.fileClientFallback", c.Strings.FileClientFallback, MaxNameLength},
		{"strings.filenamePrefix", c.Strings.FilenamePrefix, MaxPrefixLength},
		{"strings.itemFallback", c.Strings.ItemFallback, MaxNameLength},
		{"strings.sizeUnit", c.Strings.SizeUnit, MaxUnitLength},
		{"strings.tagline", c.Strings.Tagline, MaxTextLength},
		{"strings.validityNote", c.Strings.ValidityNote, MaxTextLength},
		{"strings.totalLabel", c.Strings.TotalLabel, MaxLabelLength},
		{"strings.columnItem", c.Strings.ColumnItem, MaxLabelLength},
		{"strings.columnSize", c.Strings.ColumnSize, MaxLabelLength},
		{"strings.columnQuantity", c.Strings.ColumnQuantity, MaxLabelLength},
		{"strings.columnUnitPrice", c.Strings.ColumnUnitPrice, MaxLabelLength},
		{"strings.columnTotal", c.Strings.ColumnTotal, MaxLabelLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration. Empty fields mean the
// library defaults apply.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-quotepdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-quotepdf", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
