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
	"context"
	"strings"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/internal/iocorpus"
	"github.com/jimiaki7/gegraptai/pkg/corpus"
	"github.com/spf13/cobra"
)

// getShowCmd returns the show command.
func getShowCmd() *cobra.Command {
	var (
		words  bool
		format string
	)

	showCmd := &cobra.Command{
		Use:   "show <citation...>",
		Short: "Print verses of biblical citations from the corpus store",
		Long: `Print the verses covered by a citation.

Arguments are joined into one citation, which may hold several clauses.
Every verse is printed with its ID and language tag (hebrew, aramaic or
greek). Use --words to print every word with its ID, lemma and
morphology.

Examples:
  gegraptai show "John 3:16"
  gegraptai show Gen 1:1-3
  gegraptai show --words "Dan 2:4"
  gegraptai show -o pretty "Ps 23; 24:1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runShow(cmd, args, words, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	showCmd.Flags().BoolVarP(&words, "words", "w", false,
		"print words with lemma and morphology")
	formatFlag(showCmd, &format)

	return showCmd
}

func runShow(
	cmd *cobra.Command,
	args []string,
	words bool,
	format string,
) error {
	applyFormat(cmd, format)
	ctx := context.Background()

	op, err := connect(ctx, true)
	if err != nil {
		return err
	}
	// the store owns the connection from here on
	store := iocorpus.New(op, nil)
	defer store.Close()

	passages, err := corpus.Lookup(ctx, store, nil, strings.Join(args, " "))
	if err != nil {
		return err
	}

	return writePassages(cmd.OutOrStdout(), cfg.Output.Format, passages, words)
}
