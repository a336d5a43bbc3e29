// Copyright 2026 The Diffview Authors
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

// diffview is a command line front end for the diffview library: it diffs two files with optional
// character-level highlighting and lists Git conflict regions in a file.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gitviewer/diffview"
	"github.com/gitviewer/diffview/conflict"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "diffview",
		Short:         "Line and character level diffs and conflict inspection",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(newDiffCmd())
	root.AddCommand(newConflictsCmd())
	return root
}

func newDiffCmd() *cobra.Command {
	var (
		contextFlag          int
		ignoreWhitespaceFlag bool
		colorFlag            string
	)

	cmd := &cobra.Command{
		Use:   "diff <old file> <new file>",
		Short: "Compare two files line by line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldText, err := readFile(args[0])
			if err != nil {
				return err
			}
			newText, err := readFile(args[1])
			if err != nil {
				return err
			}

			if err := setColorMode(colorFlag); err != nil {
				return err
			}

			opts := []diffview.Option{diffview.Context(contextFlag)}
			if ignoreWhitespaceFlag {
				opts = append(opts, diffview.IgnoreWhitespace())
			}

			model := diffview.Diff(diffview.NewDocument(oldText), diffview.NewDocument(newText), opts...)
			if len(model.Hunks) == 0 {
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "--- a/%s\n", args[0])
			fmt.Fprintf(out, "+++ b/%s\n", args[1])
			writeModel(out, model)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&contextFlag, "context", "C", 3, "number of context lines per hunk side")
	f.BoolVarP(&ignoreWhitespaceFlag, "ignore-whitespace", "w", false, "ignore whitespace when matching lines")
	f.StringVar(&colorFlag, "color", "auto", "colorize output: auto, always or never")

	return cmd
}

func newConflictsCmd() *cobra.Command {
	var showFlag bool

	cmd := &cobra.Command{
		Use:   "conflicts <file>",
		Short: "List Git conflict regions in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, region := range conflict.Parse(text) {
				fmt.Fprintf(out, "conflict %d: %s vs %s (line %d, bytes %d-%d)\n",
					i+1, region.OursBranch, region.TheirsBranch,
					lineNumber(text, region.Range.Start), region.Range.Start, region.Range.End)
				if !showFlag {
					continue
				}
				fmt.Fprintf(out, "  ours:\n%s", indent(region.Ours.Slice(text)))
				if region.Base != nil {
					fmt.Fprintf(out, "  base:\n%s", indent(region.Base.Slice(text)))
				}
				fmt.Fprintf(out, "  theirs:\n%s", indent(region.Theirs.Slice(text)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showFlag, "show", false, "print the ours/base/theirs content of each conflict")

	return cmd
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

func setColorMode(mode string) error {
	switch mode {
	case "auto":
		// fatih/color detects terminals itself.
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color mode %q, want auto, always or never", mode)
	}
	return nil
}

var (
	headerColor = color.New(color.FgCyan)
	delColor    = color.New(color.FgRed)
	delEmph     = color.New(color.FgRed, color.Bold)
	addColor    = color.New(color.FgGreen)
	addEmph     = color.New(color.FgGreen, color.Bold)
)

// writeModel prints a model in unified layout, coloring removed and added lines and emphasizing
// the changed segments of modified rows.
func writeModel(w io.Writer, m diffview.Model) {
	for _, h := range m.Hunks {
		headerColor.Fprintf(w, "@@ -%d,%d +%d,%d @@\n", h.OldStart+1, h.OldLen, h.NewStart+1, h.NewLen)
		for i := 0; i < len(h.Rows); {
			row := h.Rows[i]
			if row.Kind() == diffview.RowUnchanged {
				if row.Old != nil {
					fmt.Fprintf(w, " %s\n", row.Old.Text)
				}
				i++
				continue
			}

			j := i
			for j < len(h.Rows) && h.Rows[j].Kind() != diffview.RowUnchanged {
				j++
			}
			for k := i; k < j; k++ {
				if line := h.Rows[k].Old; line != nil {
					writeSide(w, "-", line, delColor, delEmph)
				}
			}
			for k := i; k < j; k++ {
				if line := h.Rows[k].New; line != nil {
					writeSide(w, "+", line, addColor, addEmph)
				}
			}
			i = j
		}
	}
}

func writeSide(w io.Writer, prefix string, line *diffview.SideLine, base, emph *color.Color) {
	base.Fprint(w, prefix)
	for _, seg := range line.Segments {
		if seg.Kind == diffview.SegmentUnchanged {
			base.Fprint(w, seg.Text)
		} else {
			emph.Fprint(w, seg.Text)
		}
	}
	fmt.Fprintln(w)
}

func lineNumber(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}
	return 1 + strings.Count(text[:offset], "\n")
}

func indent(s string) string {
	if s == "" {
		return ""
	}
	trimmed := strings.TrimSuffix(s, "\n")
	return "    " + strings.ReplaceAll(trimmed, "\n", "\n    ") + "\n"
}
