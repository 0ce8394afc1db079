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
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gnames/gnfmt"
	"github.com/jimiaki7/gegraptai/pkg/batch"
	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/corpus"
	"github.com/jimiaki7/gegraptai/pkg/ref"
)

// parsedRef is a resolved reference together with its rendered form and
// the ID of its first verse.
type parsedRef struct {
	ref.Reference
	Citation string `json:"citation"`
	VerseID  string `json:"verseId"`
}

type parsedLine struct {
	Line       int         `json:"line"`
	Input      string      `json:"input"`
	References []parsedRef `json:"references"`
}

type traceStep struct {
	Clause     string         `json:"clause"`
	Outcome    string         `json:"outcome"`
	Contextual bool           `json:"contextual"`
	State      string         `json:"state"`
	Reference  *ref.Reference `json:"reference"`
}

type traceLine struct {
	Input string      `json:"input"`
	Steps []traceStep `json:"steps"`
}

func newParsedLines(results []batch.Result) []parsedLine {
	res := make([]parsedLine, len(results))
	for i, r := range results {
		refs := make([]parsedRef, len(r.References))
		for j, v := range r.References {
			refs[j] = parsedRef{
				Reference: v,
				Citation:  v.String(),
				VerseID:   v.StartVerseID(),
			}
		}
		res[i] = parsedLine{Line: r.Line, Input: r.Input, References: refs}
	}
	return res
}

func newTraceLine(input string, steps []ref.Step) traceLine {
	res := traceLine{Input: input, Steps: make([]traceStep, len(steps))}
	for i, s := range steps {
		res.Steps[i] = traceStep{
			Clause:     s.Clause,
			Outcome:    s.Outcome.String(),
			Contextual: s.Contextual,
			State:      s.State.String(),
			Reference:  s.Reference,
		}
	}
	return res
}

// writeJSON writes compact or pretty JSON depending on the format.
func writeJSON(w io.Writer, format string, v any) error {
	enc := gnfmt.GNjson{Pretty: format == "pretty"}
	data, err := enc.Encode(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func csvSep(format string) rune {
	if format == "tsv" {
		return '\t'
	}
	return ','
}

func isJSON(format string) bool {
	return format == "compact" || format == "pretty"
}

func isCSV(format string) bool {
	return format == "csv" || format == "tsv"
}

func writeParsed(w io.Writer, format string, lines []parsedLine) error {
	switch {
	case isJSON(format):
		return writeJSON(w, format, lines)
	case isCSV(format):
		sep := csvSep(format)
		fmt.Fprintln(w, gnfmt.ToCSV(
			[]string{"Line", "Input", "Citation", "VerseID"}, sep))
		for _, l := range lines {
			line := strconv.Itoa(l.Line)
			if len(l.References) == 0 {
				fmt.Fprintln(w, gnfmt.ToCSV([]string{line, l.Input, "", ""}, sep))
				continue
			}
			for _, r := range l.References {
				fmt.Fprintln(w, gnfmt.ToCSV(
					[]string{line, l.Input, r.Citation, r.VerseID}, sep))
			}
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LINE\tINPUT\tREFERENCE\tVERSE ID")
		for _, l := range lines {
			if len(l.References) == 0 {
				fmt.Fprintf(tw, "%d\t%s\t-\t-\n", l.Line, l.Input)
				continue
			}
			for _, r := range l.References {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
					l.Line, l.Input, r.Citation, r.VerseID)
			}
		}
		return tw.Flush()
	}
}

func writeTrace(w io.Writer, format string, lines []traceLine) error {
	if isJSON(format) {
		return writeJSON(w, format, lines)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, l := range lines {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "Input: %s\n", l.Input)
		fmt.Fprintln(tw, "CLAUSE\tOUTCOME\tCONTEXT\tSTATE\tREFERENCE")
		for _, s := range l.Steps {
			citation := "-"
			if s.Reference != nil {
				citation = s.Reference.String()
			}
			fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n",
				s.Clause, s.Outcome, s.Contextual, s.State, citation)
		}
	}
	return tw.Flush()
}

func writePassages(
	w io.Writer,
	format string,
	passages []corpus.Passage,
	words bool,
) error {
	switch {
	case isJSON(format):
		return writeJSON(w, format, passages)
	case isCSV(format) && !words:
		sep := csvSep(format)
		fmt.Fprintln(w, gnfmt.ToCSV(
			[]string{"Citation", "VerseID", "Language", "Text"}, sep))
		for _, p := range passages {
			citation := p.Reference.String()
			for _, v := range p.Verses {
				fmt.Fprintln(w, gnfmt.ToCSV([]string{
					citation, v.ID, string(v.Language), verseText(v),
				}, sep))
			}
		}
		return nil
	case isCSV(format):
		sep := csvSep(format)
		fmt.Fprintln(w, gnfmt.ToCSV([]string{
			"Citation", "VerseID", "Language", "WordID", "Position",
			"Text", "Lemma", "Morph",
		}, sep))
		for _, p := range passages {
			citation := p.Reference.String()
			for _, v := range p.Verses {
				for _, wd := range v.Words {
					fmt.Fprintln(w, gnfmt.ToCSV([]string{
						citation, v.ID, string(v.Language), wd.ID,
						strconv.Itoa(wd.Position), wd.Text, wd.Lemma, wd.Morph,
					}, sep))
				}
			}
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for i, p := range passages {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "%s\n", p.Reference.String())
			if len(p.Verses) == 0 {
				fmt.Fprintln(tw, "  (no verses in the corpus)")
				continue
			}
			for _, v := range p.Verses {
				if !words {
					fmt.Fprintf(tw, "%s [%s] %s\n",
						v.ID, v.Language, verseText(v))
					continue
				}
				fmt.Fprintf(tw, "%s [%s]\n", v.ID, v.Language)
				for _, wd := range v.Words {
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n",
						wd.ID, wd.Text, wd.Lemma, wd.Morph)
				}
			}
		}
		return tw.Flush()
	}
}

func verseText(v corpus.Verse) string {
	texts := make([]string, len(v.Words))
	for i, wd := range v.Words {
		texts[i] = wd.Text
	}
	return strings.Join(texts, " ")
}

func writeBooks(w io.Writer, format string, books []bible.Book) error {
	switch {
	case isJSON(format):
		return writeJSON(w, format, books)
	case isCSV(format):
		sep := csvSep(format)
		fmt.Fprintln(w, gnfmt.ToCSV(
			[]string{"ID", "Abbrev", "Name", "Testament", "Language"}, sep))
		for _, b := range books {
			fmt.Fprintln(w, gnfmt.ToCSV([]string{
				b.ID, b.Abbrev, b.Name, string(b.Testament), string(b.Language),
			}, sep))
		}
		return nil
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tABBREV\tNAME\tTESTAMENT\tLANGUAGE")
		for _, b := range books {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				b.ID, b.Abbrev, b.Name, b.Testament, b.Language)
		}
		return tw.Flush()
	}
}
