// Copyright 2026 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// textcmp compares two text or XML files and prints their differences.
//
// By default the comparison is line by line and the output a unified diff. With --ignore-order
// rows are compared as multisets, and XML inputs record by record. The exit status is 0 when the
// inputs are identical, 1 when they differ, and 2 on usage or IO errors.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"znkr.io/textcmp"
	"znkr.io/textcmp/unidiff"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		ignoreOrder       bool
		ignoreCase        bool
		collapseWS        bool
		keepTrailingSpace bool
		selector          string
		colorMode         string
		quiet             bool
	)
	pflag.BoolVarP(&ignoreOrder, "ignore-order", "u", false, "Compare rows as multisets instead of sequences; XML inputs are compared record by record.")
	pflag.BoolVarP(&ignoreCase, "ignore-case", "i", false, "Ignore case differences in order-insensitive comparison.")
	pflag.BoolVarP(&collapseWS, "collapse-whitespace", "w", false, "Collapse interior whitespace runs in order-insensitive comparison.")
	pflag.BoolVar(&keepTrailingSpace, "keep-trailing-space", false, "Keep trailing whitespace significant (trimmed by default).")
	pflag.StringVar(&selector, "selector", "Incident", "Element tag that identifies a record in XML inputs.")
	pflag.StringVar(&colorMode, "color", "auto", "Colorize the output: auto, always, or never.")
	pflag.BoolVarP(&quiet, "quiet", "q", false, "Suppress output, report via exit status only.")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: textcmp [flags] FILE1 FILE2")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Compare two text or XML files. Use '-' to read one side from stdin.")
		fmt.Fprintln(os.Stderr, "Exit status is 0 for identical inputs, 1 for differences, 2 for errors.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Flags:")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
	default:
		fmt.Fprintf(os.Stderr, "error: invalid --color mode %q, expected auto, always, or never\n", colorMode)
		return 2
	}

	args := pflag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "error: expected two inputs, got %d\n", len(args))
		pflag.Usage()
		return 2
	}
	if args[0] == "-" && args[1] == "-" {
		fmt.Fprintln(os.Stderr, "error: at most one input can come from stdin")
		return 2
	}

	x, labelX, err := readInput(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	y, labelY, err := readInput(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	opts := []textcmp.Option{
		textcmp.RecordSelector(selector),
		unidiff.Labels(labelX, labelY),
	}
	if ignoreOrder {
		opts = append(opts, textcmp.IgnoreOrder())
	}
	if ignoreCase {
		opts = append(opts, textcmp.IgnoreCase())
	}
	if collapseWS {
		opts = append(opts, textcmp.CollapseWhitespace())
	}
	if keepTrailingSpace {
		opts = append(opts, textcmp.KeepTrailingSpace())
	}

	r := textcmp.Compare(x, y, opts...)
	for _, note := range r.Notes {
		fmt.Fprintf(os.Stderr, "note: %s\n", note)
	}
	if !quiet && !r.Identical() {
		p := newPalette()
		switch r.Kind {
		case textcmp.KindUnified:
			renderUnified(os.Stdout, r.Unified.Text, p)
		case textcmp.KindMultiset:
			renderMultiset(os.Stdout, r.Multiset, labelX, labelY, p)
		default:
			panic("never reached")
		}
	}
	if r.Identical() {
		return 0
	}
	return 1
}

func readInput(path string) (content, label string, err error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %v", err)
		}
		return string(b), "stdin", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return string(b), path, nil
}

type palette struct {
	header, hunk, del, ins, mis func(a ...any) string
}

func newPalette() palette {
	return palette{
		header: color.New(color.Bold).SprintFunc(),
		hunk:   color.New(color.FgCyan).SprintFunc(),
		del:    color.New(color.FgRed).SprintFunc(),
		ins:    color.New(color.FgGreen).SprintFunc(),
		mis:    color.New(color.FgYellow).SprintFunc(),
	}
}

func renderUnified(w io.Writer, text string, p palette) {
	for i, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case i < 2: // --- and +++ labels
			fmt.Fprintln(w, p.header(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, p.hunk(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, p.del(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, p.ins(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}

func renderMultiset(w io.Writer, m *textcmp.MultisetReport, labelX, labelY string, p palette) {
	fmt.Fprintln(w, p.header(fmt.Sprintf("--- %s: %d total, %d unique", labelX, m.TotalX, m.UniqueX)))
	fmt.Fprintln(w, p.header(fmt.Sprintf("+++ %s: %d total, %d unique", labelY, m.TotalY, m.UniqueY)))
	for _, c := range m.OnlyX {
		fmt.Fprintln(w, p.del("-"+c.Value+count(c.N)))
	}
	for _, c := range m.OnlyY {
		fmt.Fprintln(w, p.ins("+"+c.Value+count(c.N)))
	}
	for _, mm := range m.Mismatched {
		fmt.Fprintln(w, p.mis(fmt.Sprintf("!%s (%d vs %d)", mm.Value, mm.X, mm.Y)))
	}
}

func count(n int) string {
	if n == 1 {
		return ""
	}
	return fmt.Sprintf(" (x%d)", n)
}
