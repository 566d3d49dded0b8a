package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: quotepdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export      Render quote files to PDF documents")
	fmt.Fprintln(w, "  catalog     List catalog items")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'quotepdf help <command>' for details on a specific command.")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: quotepdf export <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render quote files to PDF documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Quote YAML file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --catalog <path>      Catalog JSON file")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel exports (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Image fetch timeout (e.g., 5s, 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Client:")
	fmt.Fprintln(w, "      --client-name <s>     Client name (overrides quote file)")
	fmt.Fprintln(w, "      --client-phone <s>    Client phone (overrides quote file)")
	fmt.Fprintln(w, "      --client-date <s>     Issue date YYYY-MM-DD (overrides quote file)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --currency <code>     Currency code: USD, BRL, EUR, GBP")
	fmt.Fprintln(w, "      --locale <tag>        Locale tag: en-US, en-GB, pt-BR, es-ES, fr-FR, de-DE")
	fmt.Fprintln(w, "      --branding-url <url>  Header logo URL")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --size-unit <s>       Unit label for item sizes")
	fmt.Fprintln(w, "      --creation-date <s>   Pin PDF creation date for reproducible output (YYYY-MM-DD)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printCatalogUsage prints usage for the catalog command.
func printCatalogUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: quotepdf catalog [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List catalog items.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --catalog <path>      Catalog JSON file")
	fmt.Fprintln(w, "  -f, --filter <s>          Filter items by name substring")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "export":
		printExportUsage(env.Stdout)
	case "catalog":
		printCatalogUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: quotepdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: quotepdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
