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
	"fmt"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/internal/iocorpus"
	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/corpus"
	"github.com/spf13/cobra"
)

// getBooksCmd returns the books command.
func getBooksCmd() *cobra.Command {
	var format string

	booksCmd := &cobra.Command{
		Use:   "books [book]",
		Short: "List books of the canon or chapters of a book",
		Long: `Without arguments list the 66 books of the canon with their IDs,
abbreviations, testament and language.

With a book name (any known alias) list the chapters of the book that
are present in the corpus store.

Examples:
  gegraptai books
  gegraptai books -o csv
  gegraptai books Genesis
  gegraptai books "1 Kgs"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runBooks(cmd, args, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	formatFlag(booksCmd, &format)
	return booksCmd
}

func runBooks(cmd *cobra.Command, args []string, format string) error {
	applyFormat(cmd, format)
	reg := bible.Default()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return writeBooks(out, cfg.Output.Format, reg.Books())
	}

	token := strings.Join(args, " ")
	id, ok := reg.ResolveBookToken(token)
	if !ok {
		return corpus.UnknownBookError(token)
	}
	book, _ := reg.Book(id)

	ctx := context.Background()
	op, err := connect(ctx, true)
	if err != nil {
		return err
	}
	// the store owns the connection from here on
	store := iocorpus.New(op, reg)
	defer store.Close()

	chapters, err := store.Chapters(ctx, id)
	if err != nil {
		return err
	}

	if isJSON(cfg.Output.Format) {
		return writeJSON(out, cfg.Output.Format, struct {
			Book     bible.Book `json:"book"`
			Chapters []int      `json:"chapters"`
		}{book, chapters})
	}

	fmt.Fprintf(out, "%s (%s): %d chapters in the corpus\n",
		book.Name, book.ID, len(chapters))
	nums := make([]string, len(chapters))
	for i, c := range chapters {
		nums[i] = strconv.Itoa(c)
	}
	if len(nums) > 0 {
		fmt.Fprintln(out, strings.Join(nums, " "))
	}
	return nil
}
