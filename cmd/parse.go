/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/batch"
	"github.com/jimiaki7/gegraptai/pkg/ref"
	"github.com/spf13/cobra"
)

// getParseCmd returns the parse command.
func getParseCmd() *cobra.Command {
	var (
		trace  bool
		format string
	)

	parseCmd := &cobra.Command{
		Use:   "parse [citation...]",
		Short: "Resolve biblical citations into references",
		Long: `Resolve free-form biblical citations into references and verse IDs.

Arguments are joined into one citation. Without arguments every line of
standard input is a separate citation, lines are resolved concurrently.

Clauses are separated by ';' or ','. Bare numbers continue the previous
clause: after a chapter they name chapters, after a verse they name
verses of the same chapter.

Examples:
  gegraptai parse "Gen 1:1-3; 5; Ex 3:14"
  gegraptai parse -o pretty "Mt 5-7"
  gegraptai parse --trace "Ps 23; 24:1"
  cat citations.txt | gegraptai parse -o csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runParse(cmd, args, trace, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	parseCmd.Flags().BoolVarP(&trace, "trace", "t", false,
		"print how every clause was resolved")
	formatFlag(parseCmd, &format)

	return parseCmd
}

func runParse(
	cmd *cobra.Command,
	args []string,
	trace bool,
	format string,
) error {
	applyFormat(cmd, format)
	out := cmd.OutOrStdout()

	var lines []string
	if len(args) > 0 {
		lines = []string{strings.Join(args, " ")}
	} else {
		var err error
		if lines, err = readLines(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	parser := ref.Default()
	if trace {
		res := make([]traceLine, len(lines))
		for i, l := range lines {
			res[i] = newTraceLine(l, parser.Trace(l))
		}
		return writeTrace(out, cfg.Output.Format, res)
	}

	resolver := batch.New(parser, cfg.JobsNumber)
	results, err := resolver.Resolve(context.Background(), lines)
	if err != nil {
		return err
	}

	var refs int
	for _, r := range results {
		refs += len(r.References)
	}
	slog.Info("Citations resolved",
		"lines", humanize.Comma(int64(len(lines))),
		"references", humanize.Comma(int64(refs)),
		"jobs", resolver.JobsNumber(),
	)

	return writeParsed(out, cfg.Output.Format, newParsedLines(results))
}

// readLines returns the non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var res []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			res = append(res, line)
		}
	}
	return res, scanner.Err()
}
