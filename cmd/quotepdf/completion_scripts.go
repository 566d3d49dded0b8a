package main

import (
	"fmt"
	"io"
	"strings"
)

// commandNames returns the space-separated command list for script templates.
func commandNames() string {
	cmds := getCommands()
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// flagWords returns every flag spelling (long and short) for a command.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// zshGlob converts a comma-separated glob list into a zsh _files pattern:
// "*.yaml,*.yml" becomes "*.(yaml|yml)".
func zshGlob(glob string) string {
	parts := strings.Split(glob, ",")
	if len(parts) == 1 {
		return glob
	}
	exts := make([]string, len(parts))
	for i, p := range parts {
		exts[i] = strings.TrimPrefix(p, "*.")
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// generateBash writes the bash completion script.
func generateBash(w io.Writer) error {
	var b strings.Builder

	b.WriteString("# bash completion for quotepdf\n\n")
	b.WriteString("_quotepdf_completions() {\n")
	b.WriteString("    local cur prev commands\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	fmt.Fprintf(&b, "    commands=%q\n\n", commandNames())

	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"${commands}\" -- \"${cur}\") )\n")
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, cmd := range getCommands() {
		switch cmd.Name {
		case "help":
			b.WriteString("    help)\n")
			b.WriteString("        COMPREPLY=( $(compgen -W \"${commands}\" -- \"${cur}\") )\n")
			b.WriteString("        return 0\n")
			b.WriteString("        ;;\n")
			continue
		case "completion":
			b.WriteString("    completion)\n")
			b.WriteString("        COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"${cur}\") )\n")
			b.WriteString("        return 0\n")
			b.WriteString("        ;;\n")
			continue
		}
		if len(cmd.Flags) == 0 {
			continue
		}

		fmt.Fprintf(&b, "    %s)\n", cmd.Name)
		b.WriteString("        case \"${prev}\" in\n")
		for _, f := range cmd.Flags {
			arm := "--" + f.Long
			if f.Short != "" {
				arm += "|-" + f.Short
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, "        %s)\n", arm)
				fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", strings.Join(f.Values, " "))
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			case flagFile:
				fmt.Fprintf(&b, "        %s)\n", arm)
				b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			case flagDir:
				fmt.Fprintf(&b, "        %s)\n", arm)
				b.WriteString("            COMPREPLY=( $(compgen -d -- \"${cur}\") )\n")
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			}
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"${cur}\" == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"${cur}\") )\n", flagWords(cmd.Flags))
		b.WriteString("            return 0\n")
		b.WriteString("        fi\n")
		if cmd.TakesFiles {
			b.WriteString("        COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
		}
		b.WriteString("        return 0\n")
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _quotepdf_completions quotepdf\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshFlagSpec renders one _arguments spec for a flag.
func zshFlagSpec(f flagDef) string {
	var action string
	switch f.Type {
	case flagBool:
		action = ""
	case flagEnum:
		action = ":value:(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = `:file:_files -g "` + zshGlob(f.FileGlob) + `"`
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":value:"
	}

	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Desc, action)
	}
	return fmt.Sprintf("'--%s[%s]%s'", f.Long, f.Desc, action)
}

// generateZsh writes the zsh completion script.
func generateZsh(w io.Writer) error {
	var b strings.Builder

	b.WriteString("#compdef quotepdf\n\n")
	b.WriteString("_quotepdf() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, cmd := range getCommands() {
		fmt.Fprintf(&b, "        '%s:%s'\n", cmd.Name, cmd.Desc)
	}
	b.WriteString("    )\n\n")

	b.WriteString("    _arguments -C \\\n")
	b.WriteString("        '1: :->command' \\\n")
	b.WriteString("        '*:: :->args'\n\n")

	b.WriteString("    case $state in\n")
	b.WriteString("    command)\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        ;;\n")
	b.WriteString("    args)\n")
	b.WriteString("        case $words[1] in\n")
	for _, cmd := range getCommands() {
		switch cmd.Name {
		case "help":
			b.WriteString("        help)\n")
			b.WriteString("            _describe 'command' commands\n")
			b.WriteString("            ;;\n")
			continue
		case "completion":
			b.WriteString("        completion)\n")
			b.WriteString("            _values 'shell' bash zsh fish powershell\n")
			b.WriteString("            ;;\n")
			continue
		}
		if len(cmd.Flags) == 0 {
			continue
		}

		specs := make([]string, 0, len(cmd.Flags)+1)
		for _, f := range cmd.Flags {
			specs = append(specs, zshFlagSpec(f))
		}
		if cmd.TakesFiles {
			specs = append(specs, fmt.Sprintf("'*:quote file:_files -g \"%s\"'", zshGlob(cmd.FilePattern)))
		}

		fmt.Fprintf(&b, "        %s)\n", cmd.Name)
		b.WriteString("            _arguments \\\n")
		for i, s := range specs {
			if i < len(specs)-1 {
				fmt.Fprintf(&b, "                %s \\\n", s)
			} else {
				fmt.Fprintf(&b, "                %s\n", s)
			}
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("        esac\n")
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_quotepdf \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// generateFish writes the fish completion script.
func generateFish(w io.Writer) error {
	var b strings.Builder

	b.WriteString("# fish completion for quotepdf\n\n")
	b.WriteString("function __fish_quotepdf_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_quotepdf_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]\n")
	b.WriteString("end\n\n")

	for _, cmd := range getCommands() {
		fmt.Fprintf(&b, "complete -c quotepdf -n __fish_quotepdf_needs_command -f -a %s -d '%s'\n", cmd.Name, cmd.Desc)
	}
	b.WriteString("\n")

	for _, cmd := range getCommands() {
		gate := fmt.Sprintf("'__fish_quotepdf_using_command %s'", cmd.Name)
		switch cmd.Name {
		case "help":
			fmt.Fprintf(&b, "complete -c quotepdf -n %s -f -a '%s'\n", gate, commandNames())
			continue
		case "completion":
			fmt.Fprintf(&b, "complete -c quotepdf -n %s -f -a 'bash zsh fish powershell'\n", gate)
			continue
		}
		for _, f := range cmd.Flags {
			line := fmt.Sprintf("complete -c quotepdf -n %s -l %s", gate, f.Long)
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += fmt.Sprintf(" -d '%s'", f.Desc)
			switch f.Type {
			case flagBool:
				line += " -f"
			case flagEnum:
				line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				line += " -r"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -x"
			}
			b.WriteString(line + "\n")
		}
		if len(cmd.Flags) > 0 {
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// generatePowerShell writes the PowerShell completion script.
func generatePowerShell(w io.Writer) error {
	var b strings.Builder

	b.WriteString("# PowerShell completion for quotepdf\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName quotepdf -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, cmd := range getCommands() {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", cmd.Name, cmd.Desc)
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $elements = $commandAst.CommandElements\n")
	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $elements[1].Extent.Text -eq $wordToComplete)) {\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    switch ($elements[1].Extent.Text) {\n")
	for _, cmd := range getCommands() {
		switch cmd.Name {
		case "help":
			b.WriteString("        'help' {\n")
			b.WriteString("            $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
			b.WriteString("                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
			b.WriteString("            }\n")
			b.WriteString("        }\n")
			continue
		case "completion":
			b.WriteString("        'completion' {\n")
			b.WriteString("            @('bash', 'zsh', 'fish', 'powershell') | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
			b.WriteString("                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
			b.WriteString("            }\n")
			b.WriteString("        }\n")
			continue
		}
		if len(cmd.Flags) == 0 {
			continue
		}

		var words []string
		for _, f := range cmd.Flags {
			words = append(words, "'--"+f.Long+"'")
			if f.Short != "" {
				words = append(words, "'-"+f.Short+"'")
			}
		}
		fmt.Fprintf(&b, "        '%s' {\n", cmd.Name)
		fmt.Fprintf(&b, "            @(%s) | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n", strings.Join(words, ", "))
		b.WriteString("                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
		b.WriteString("            }\n")
		b.WriteString("        }\n")
	}
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
