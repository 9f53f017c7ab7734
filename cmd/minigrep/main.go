// Command minigrep is a line-oriented regular-expression search tool built
// on package minigrep. It has two modes: read text from stdin line by
// line (the driver described in spec §4.3), or search a file
// given with -f/--file and print every matching line with its 1-based line
// number and the matched spans highlighted in bold red.
//
// This command is outside minigrep's core scope (spec.md marks the CLI as
// "a thin, optional driver") and is not imported by any other package in
// this module.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/coregx/minigrep"
)

var (
	filePath   string
	legacyMode bool
)

func main() {
	// Emit the highlight escapes even when stdout is not a terminal.
	color.NoColor = false
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep PATTERN",
		Short: "Search text for a regular expression",
		Long: "minigrep compiles PATTERN with the minigrep engine (backtracking, " +
			"no NFA/DFA construction) and searches either a file (-f/--file) or " +
			"successive lines read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: runRoot,
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "search this file instead of reading from stdin")
	cmd.Flags().BoolVarP(&legacyMode, "E", "E", false, "exit 0/1 on a single stdin line instead of printing matches")
	_ = cmd.Flags().MarkHidden("E")
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	re, err := minigrep.Compile(pattern)
	if err != nil {
		slog.Error("invalid pattern", "pattern", pattern, "error", err)
		return err
	}

	if filePath != "" {
		return runFile(re, filePath)
	}
	if legacyMode {
		return runLegacyStdin(re)
	}
	return runStdin(re, cmd.OutOrStdout())
}

// runFile implements -f/--file mode (spec §4.3): read the file line by
// line, strip each line's trailing newline/whitespace before matching, and
// print every line containing at least one match with its 1-based line
// number and its matches highlighted.
func runFile(re *minigrep.Regex, path string) error {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("cannot open file", "path", path, "error", err)
		return err
	}
	defer f.Close()

	highlight := color.New(color.FgRed, color.Bold)

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		spans := re.FindAll(line)
		if len(spans) == 0 {
			continue
		}
		fmt.Printf("%d:%s\n", lineNum, highlightLine(line, spans, highlight))
	}
	if err := scanner.Err(); err != nil {
		slog.Error("error reading file", "path", path, "error", err)
		return err
	}
	return nil
}

// runStdin implements interactive line mode: read lines from stdin until
// EOF, printing each matching line (colorized) to out, or "> No matches"
// for a line with none (spec §4.3).
func runStdin(re *minigrep.Regex, out io.Writer) error {
	highlight := color.New(color.FgRed, color.Bold)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r\n")
		spans := re.FindAll(line)
		if len(spans) == 0 {
			fmt.Fprintln(out, "> No matches")
			continue
		}
		fmt.Fprintln(out, highlightLine(line, spans, highlight))
	}
	return scanner.Err()
}

// runLegacyStdin reads exactly one line from stdin and exits 0 if the
// pattern matches anywhere in it, 1 otherwise — the original single-shot
// interface this driver grew out of.
func runLegacyStdin(re *minigrep.Regex) error {
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		os.Exit(1)
	}
	if re.MatchAny(scanner.Text()) {
		os.Exit(0)
	}
	os.Exit(1)
	return nil
}

// highlightLine wraps every matched span of line in the given color,
// reproducing the \x1b[31;1m...\x1b[0m escape sequence spec §4.3 requires
// byte-for-byte (fatih/color's FgRed+Bold SGR codes match it exactly).
func highlightLine(line string, spans []minigrep.Span, c *color.Color) string {
	var b strings.Builder
	prev := 0
	for _, s := range spans {
		b.WriteString(line[prev:s.Start])
		b.WriteString(c.Sprint(line[s.Start:s.End]))
		prev = s.End
	}
	b.WriteString(line[prev:])
	return b.String()
}
