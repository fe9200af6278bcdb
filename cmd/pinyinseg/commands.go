package main

import (
	"bufio"
	"bytes"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/scalecode-solutions/pinyinseg"
	"github.com/scalecode-solutions/pinyinseg/internal/log"
)

func newWordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words [text...]",
		Short: "Split pinyin into words and tones",
		Long: `Split pinyin into words and tones. Each word is printed with its tone and
the byte range it consumed. With --subscript the words are printed on one
line with subscript tones instead.`,
		Example: "  pinyinseg words ni3hao3\n  echo 'zhong1guo2' | pinyinseg words --subscript",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := input(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			type row struct {
				word       string
				tone       pinyinseg.Tone
				start, end int
			}
			var (
				rows  []row
				width int
			)
			state := pinyinseg.NewState(b)
			for !state.Done() {
				start := state.Offset()
				word, tone := pinyinseg.NextWord(state)
				if word == nil {
					break
				}
				rows = append(rows, row{string(word), tone, start, state.Offset()})
				width = max(width, runewidth.StringWidth(string(word)))
			}
			log.Debug(log.CatCLI, "segmented input", "bytes", len(b), "words", len(rows))

			if a.cfg.Subscript {
				var line []byte
				for i, r := range rows {
					if i > 0 {
						line = append(line, ' ')
					}
					line = renderWord(line, []byte(r.word), r.tone, true)
				}
				_, err := fmt.Fprintln(out, string(line))
				return err
			}
			for _, r := range rows {
				if _, err := fmt.Fprintf(out, "%s  %s  %d-%d\n", runewidth.FillRight(r.word, width), r.tone, r.start, r.end); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Show the plain letter, tone and ordinal of each character",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := input(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range string(b) {
				if unicode.IsSpace(r) {
					continue
				}
				plain := "-"
				ch, tone := pinyinseg.NormalizedChar(r)
				if ch != 0 {
					plain = string(ch)
				}
				ordinal := pinyinseg.Ordinal(r, a.cfg.IgnoreUmlaut)
				if _, err := fmt.Fprintf(out, "%s  %s  %s  %d\n", runewidth.FillRight(string(r), 2), plain, tone, ordinal); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newRankCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rank word...",
		Short: "Look up the homonym frequency rank of words",
		Long: `Look up the homonym frequency rank of words. Lower ranks are more common.
Words missing from the table are printed with a rank of "-".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.cfg.OpenTable()
			if err != nil {
				return err
			}
			if table == nil {
				return fmt.Errorf("no frequency table configured (source %q)", a.cfg.Source)
			}

			width := 0
			for _, word := range args {
				width = max(width, runewidth.StringWidth(word))
			}
			out := cmd.OutOrStdout()
			for _, word := range args {
				rank := "-"
				if r := pinyinseg.HomonymFrequency(word, table); r != pinyinseg.NotFound {
					rank = fmt.Sprint(r)
				}
				if _, err := fmt.Fprintf(out, "%s  %s\n", runewidth.FillRight(word, width), rank); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newSortCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [line...]",
		Short: "Sort lines of pinyin alphabetically",
		Long: `Sort lines of pinyin alphabetically. Letters are compared first, then tones.
With --ignore-umlaut, ü sorts together with u.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := args
			if len(lines) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						lines = append(lines, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
			}

			slices.SortStableFunc(lines, func(x, y string) int {
				return pinyinseg.Compare(x, y, a.cfg.IgnoreUmlaut)
			})

			var buf bytes.Buffer
			for _, line := range lines {
				buf.WriteString(line)
				buf.WriteByte('\n')
			}
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		},
	}
}

func newSubscriptCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "subscript digits...",
		Short: "Print digits as subscripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			for _, arg := range args {
				for _, r := range arg {
					s := pinyinseg.Subscript(r)
					if s == pinyinseg.InvalidDigit {
						return fmt.Errorf("%q is not a digit", r)
					}
					b.WriteRune(s)
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
