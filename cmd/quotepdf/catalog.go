package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-quotepdf/internal/catalog"
	"github.com/alnah/go-quotepdf/internal/config"
)

// runCatalog lists catalog items, optionally filtered by name.
func runCatalog(flags *catalogFlags, env *Environment) error {
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

	path := flags.path
	if path == "" {
		path = cfg.Catalog.Path
	}
	if path == "" {
		return ErrNoCatalog
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	items := cat.Filter(flags.filter)
	if len(items) == 0 {
		fmt.Fprintln(env.Stdout, "No items found.")
		return nil
	}

	printItems(env.Stdout, items)
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "\n%d item(s)\n", len(items))
	}
	return nil
}

// printItems renders a fixed-width item table.
func printItems(w io.Writer, items []catalog.Item) {
	fmt.Fprintf(w, "%6s  %-30s  %-10s  %12s  %s\n", "ID", "NAME", "SIZE", "UNIT PRICE", "IMAGE")
	for _, it := range items {
		img := ""
		if it.ImageURL != "" {
			img = "yes"
		}
		fmt.Fprintf(w, "%6d  %-30s  %-10s  %12s  %s\n",
			it.ID, it.Name, it.Size, it.UnitPrice.StringFixed(2), img)
	}
}
