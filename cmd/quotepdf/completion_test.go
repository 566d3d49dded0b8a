package main

// Notes:
// - GenerateCompletion: we test that shell scripts are generated with expected
//   content markers. We do not test that the scripts actually work in the
//   target shell (that would require integration tests with actual shells).
// - getCommands: we test the command definitions are complete and correct.
// These are acceptable gaps: we test observable behavior, not runtime shell behavior.

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash generates valid script",
			shell: ShellBash,
			wantContains: []string{
				"_quotepdf_completions",
				"complete -F",
				"compgen",
				"export",
				"--output",
				"--currency",
			},
		},
		{
			name:  "zsh generates valid script",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef quotepdf",
				"_quotepdf",
				"_arguments",
				"_describe",
				"export",
				"--output",
			},
		},
		{
			name:  "fish generates valid script",
			shell: ShellFish,
			wantContains: []string{
				"complete -c quotepdf",
				"__fish_quotepdf_needs_command",
				"__fish_quotepdf_using_command",
				"export",
				"-l output", // fish uses -l for long flags
			},
		},
		{
			name:  "powershell generates valid script",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName quotepdf",
				"CompletionResult",
				"export",
				"--output",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := GenerateCompletion(&buf, tt.shell)

			if err != nil {
				t.Fatalf("GenerateCompletion(%q) returned error: %v", tt.shell, err)
			}

			output := buf.String()
			if output == "" {
				t.Fatalf("GenerateCompletion(%q) produced empty output", tt.shell)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing expected content %q", want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error handling for unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		shell Shell
	}{
		{name: "empty shell", shell: ""},
		{name: "unknown shell", shell: "unknown"},
		{name: "sh is not supported", shell: "sh"},
		{name: "ksh is not supported", shell: "ksh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := GenerateCompletion(&buf, tt.shell)

			if err == nil {
				t.Fatalf("GenerateCompletion(%q) expected error, got nil", tt.shell)
			}

			if !errors.Is(err, ErrUnsupportedShell) {
				t.Errorf("error should wrap ErrUnsupportedShell, got: %v", err)
			}

			if !strings.Contains(err.Error(), string(tt.shell)) {
				t.Errorf("error message should contain shell name %q, got: %v", tt.shell, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion_NoArgs - Usage message when no shell specified
// ---------------------------------------------------------------------------

func TestRunCompletion_NoArgs(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
	}

	err := runCompletion([]string{}, env)

	if err != nil {
		t.Fatalf("runCompletion with no args returned error: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "Usage: quotepdf completion") {
		t.Error("expected usage message when no args provided")
	}
	if !strings.Contains(output, "bash") {
		t.Error("usage should mention bash shell")
	}
	if !strings.Contains(output, "zsh") {
		t.Error("usage should mention zsh shell")
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion_ValidShell - Successful completion for supported shells
// ---------------------------------------------------------------------------

func TestRunCompletion_ValidShell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shell        string
		wantContains string
	}{
		{"bash", "_quotepdf_completions"},
		{"zsh", "#compdef quotepdf"},
		{"fish", "complete -c quotepdf"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			env := &Environment{
				Now:    time.Now,
				Stdout: &stdout,
				Stderr: &stderr,
			}

			err := runCompletion([]string{tt.shell}, env)

			if err != nil {
				t.Fatalf("runCompletion(%q) returned error: %v", tt.shell, err)
			}

			if !strings.Contains(stdout.String(), tt.wantContains) {
				t.Errorf("output missing expected %q", tt.wantContains)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion_InvalidShell - Error handling for invalid shell
// ---------------------------------------------------------------------------

func TestRunCompletion_InvalidShell(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    time.Now,
		Stdout: &stdout,
		Stderr: &stderr,
	}

	err := runCompletion([]string{"invalid"}, env)

	if err == nil {
		t.Fatal("runCompletion with invalid shell should return error")
	}

	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error should wrap ErrUnsupportedShell, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands_ReturnsExpectedCommands - Command definitions
// ---------------------------------------------------------------------------

func TestGetCommands_ReturnsExpectedCommands(t *testing.T) {
	t.Parallel()

	commands := getCommands()

	expectedCommands := []string{"export", "catalog", "version", "help", "completion"}
	if len(commands) != len(expectedCommands) {
		t.Fatalf("expected %d commands, got %d", len(expectedCommands), len(commands))
	}

	commandNames := make(map[string]bool)
	for _, cmd := range commands {
		commandNames[cmd.Name] = true
	}

	for _, expected := range expectedCommands {
		if !commandNames[expected] {
			t.Errorf("missing expected command %q", expected)
		}
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands_ExportHasFlags - Export command flag definitions
// ---------------------------------------------------------------------------

func TestGetCommands_ExportHasFlags(t *testing.T) {
	t.Parallel()

	commands := getCommands()

	var exportCmd *commandDef
	for i := range commands {
		if commands[i].Name == "export" {
			exportCmd = &commands[i]
			break
		}
	}

	if exportCmd == nil {
		t.Fatal("export command not found")
	}

	if len(exportCmd.Flags) == 0 {
		t.Error("export command should have flags")
	}

	if !exportCmd.TakesFiles {
		t.Error("export command should accept files")
	}

	if exportCmd.FilePattern == "" {
		t.Error("export command should have file pattern")
	}

	// Check for expected flags
	flagNames := make(map[string]flagDef)
	for _, f := range exportCmd.Flags {
		flagNames[f.Long] = f
	}

	expectedFlags := []struct {
		name      string
		wantShort string
		wantType  flagType
	}{
		{"output", "o", flagDir},
		{"config", "c", flagFile},
		{"catalog", "", flagFile},
		{"currency", "", flagEnum},
		{"locale", "", flagEnum},
		{"quiet", "q", flagBool},
		{"verbose", "v", flagBool},
		{"workers", "w", flagInt},
		{"timeout", "t", flagString},
	}

	for _, expected := range expectedFlags {
		f, ok := flagNames[expected.name]
		if !ok {
			t.Errorf("missing expected flag --%s", expected.name)
			continue
		}
		if f.Short != expected.wantShort {
			t.Errorf("flag --%s: short = %q, want %q", expected.name, f.Short, expected.wantShort)
		}
		if f.Type != expected.wantType {
			t.Errorf("flag --%s: type = %v, want %v", expected.name, f.Type, expected.wantType)
		}
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands_EnumFlagsHaveValues - Enum flag value definitions
// ---------------------------------------------------------------------------

func TestGetCommands_EnumFlagsHaveValues(t *testing.T) {
	t.Parallel()

	commands := getCommands()

	var exportCmd *commandDef
	for i := range commands {
		if commands[i].Name == "export" {
			exportCmd = &commands[i]
			break
		}
	}

	if exportCmd == nil {
		t.Fatal("export command not found")
	}

	// Enum values come from the library registries, so we assert membership
	// rather than order.
	enumFlags := map[string][]string{
		"currency": {"USD", "BRL", "EUR", "GBP"},
		"locale":   {"en-US", "en-GB", "pt-BR", "es-ES", "fr-FR", "de-DE"},
	}

	for _, f := range exportCmd.Flags {
		expectedValues, isEnum := enumFlags[f.Long]
		if !isEnum {
			continue
		}
		if f.Type != flagEnum {
			t.Errorf("flag --%s should be flagEnum, got %v", f.Long, f.Type)
		}
		got := make(map[string]bool, len(f.Values))
		for _, v := range f.Values {
			got[v] = true
		}
		for _, v := range expectedValues {
			if !got[v] {
				t.Errorf("flag --%s: missing value %q", f.Long, v)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands_FileFlagsHaveGlobs - File flag glob pattern definitions
// ---------------------------------------------------------------------------

func TestGetCommands_FileFlagsHaveGlobs(t *testing.T) {
	t.Parallel()

	commands := getCommands()

	var exportCmd *commandDef
	for i := range commands {
		if commands[i].Name == "export" {
			exportCmd = &commands[i]
			break
		}
	}

	if exportCmd == nil {
		t.Fatal("export command not found")
	}

	fileFlags := map[string]string{
		"config":  "*.yaml,*.yml",
		"catalog": "*.json",
	}

	for _, f := range exportCmd.Flags {
		if expectedGlob, isFile := fileFlags[f.Long]; isFile {
			if f.Type != flagFile {
				t.Errorf("flag --%s should be flagFile, got %v", f.Long, f.Type)
			}
			if f.FileGlob != expectedGlob {
				t.Errorf("flag --%s: glob = %q, want %q", f.Long, f.FileGlob, expectedGlob)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands_DirFlagsAreMarked - Directory flag type definitions
// ---------------------------------------------------------------------------

func TestGetCommands_DirFlagsAreMarked(t *testing.T) {
	t.Parallel()

	commands := getCommands()

	var exportCmd *commandDef
	for i := range commands {
		if commands[i].Name == "export" {
			exportCmd = &commands[i]
			break
		}
	}

	if exportCmd == nil {
		t.Fatal("export command not found")
	}

	for _, f := range exportCmd.Flags {
		if f.Long == "output" && f.Type != flagDir {
			t.Errorf("flag --output should be flagDir, got %v", f.Type)
		}
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_AllShellsContainAllCommands - Script completeness
// ---------------------------------------------------------------------------

func TestGenerateCompletion_AllShellsContainAllCommands(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell} {
		t.Run(string(shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, shell); err != nil {
				t.Fatalf("GenerateCompletion failed: %v", err)
			}

			output := buf.String()
			for _, cmd := range getCommands() {
				if !strings.Contains(output, cmd.Name) {
					t.Errorf("%s completion missing command %q", shell, cmd.Name)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_ZshEnumCompletion - Zsh enum value completion
// ---------------------------------------------------------------------------

func TestGenerateCompletion_ZshEnumCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, ShellZsh)
	if err != nil {
		t.Fatalf("GenerateCompletion failed: %v", err)
	}

	output := buf.String()

	// Check enum values are present in completion
	enumValues := []string{"USD", "BRL", "EUR", "GBP", "en-US", "pt-BR"}
	for _, v := range enumValues {
		if !strings.Contains(output, v) {
			t.Errorf("zsh completion missing enum value %q", v)
		}
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_BashEnumCompletion - Bash enum value completion
// ---------------------------------------------------------------------------

func TestGenerateCompletion_BashEnumCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, ShellBash)
	if err != nil {
		t.Fatalf("GenerateCompletion failed: %v", err)
	}

	output := buf.String()

	// Check enum values are present in completion
	enumValues := []string{"USD", "BRL", "EUR", "GBP", "en-US", "pt-BR"}
	for _, v := range enumValues {
		if !strings.Contains(output, v) {
			t.Errorf("bash completion missing enum value %q", v)
		}
	}
}

// ---------------------------------------------------------------------------
// TestShellConstants - Shell type constants
// ---------------------------------------------------------------------------

func TestShellConstants(t *testing.T) {
	t.Parallel()

	// Verify shell constants have expected values
	tests := []struct {
		shell Shell
		want  string
	}{
		{ShellBash, "bash"},
		{ShellZsh, "zsh"},
		{ShellFish, "fish"},
		{ShellPowerShell, "powershell"},
	}

	for _, tt := range tests {
		if string(tt.shell) != tt.want {
			t.Errorf("Shell constant %v = %q, want %q", tt.shell, string(tt.shell), tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestPrintCompletionUsage - Completion usage help output
// ---------------------------------------------------------------------------

func TestPrintCompletionUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printCompletionUsage(&buf)

	output := buf.String()

	expectedContent := []string{
		"Usage: quotepdf completion",
		"bash",
		"zsh",
		"fish",
		"powershell",
		"Installation",
	}

	for _, expected := range expectedContent {
		if !strings.Contains(output, expected) {
			t.Errorf("completion usage missing %q", expected)
		}
	}
}
