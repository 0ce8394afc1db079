// Package ref turns free-form biblical citations into structured
// references. It is pure computation: no I/O, no shared mutable state,
// and every function is safe for concurrent use.
//
// A single clause such as "Gen 1:1-5" is handled by ParseSingle. A
// compound input such as "Gen 1:1, 5; Ps 23, 24:1" is handled by
// ParseCompound, which carries the last book and chapter from clause to
// clause so that terse continuations ("5", "24:1") can be resolved.
// Clauses that cannot be resolved are dropped, parsing never fails as a
// whole.
package ref

import (
	"strconv"
	"strings"

	"github.com/jimiaki7/gegraptai/pkg/bible"
)

// Reference is a fully-qualified range over book, chapter and verse.
type Reference struct {
	// BookID is the canonical three-character book ID.
	BookID string `json:"bookId"`

	// Chapter is the starting chapter.
	Chapter int `json:"chapter"`

	// StartVerse is the first verse, 1 when the input did not name one.
	StartVerse int `json:"startVerse"`

	// EndChapter is set only for ranges that cross chapter boundaries.
	EndChapter *int `json:"endChapter,omitempty"`

	// EndVerse is the closing verse. Nil means through the end of the
	// (last) chapter.
	EndVerse *int `json:"endVerse"`
}

// IsWholeChapter is true when the reference runs to the end of its last
// chapter.
func (r Reference) IsWholeChapter() bool {
	return r.EndVerse == nil
}

// LastChapter returns EndChapter if it is set, Chapter otherwise.
func (r Reference) LastChapter() int {
	if r.EndChapter != nil {
		return *r.EndChapter
	}
	return r.Chapter
}

// Equal compares two references by value.
func (r Reference) Equal(o Reference) bool {
	return r.BookID == o.BookID &&
		r.Chapter == o.Chapter &&
		r.StartVerse == o.StartVerse &&
		eqPtr(r.EndChapter, o.EndChapter) &&
		eqPtr(r.EndVerse, o.EndVerse)
}

func eqPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// String renders the reference in the canonical text form accepted by
// ParseSingle, using the book abbreviation: "Gen 1", "Gen 1-2",
// "Gen 1:1", "Gen 1:1-5", "Gen 1:1-2:2".
//
// Abbreviations come from bible.Default(). A book missing from the
// default catalog is rendered by its ID, so references of a Parser with
// a custom registry read back only when that registry accepts the ID as
// an alias. Use Parser.String to render with the parser's registry.
func (r Reference) String() string {
	return r.format(bible.Default())
}

// String renders r like Reference.String, taking abbreviations from the
// parser's registry.
func (p *Parser) String(r Reference) string {
	return r.format(p.reg)
}

func (r Reference) format(reg *bible.Registry) string {
	var sb strings.Builder
	book := r.BookID
	if b, ok := reg.Book(r.BookID); ok {
		book = b.Abbrev
	}
	sb.WriteString(book)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(r.Chapter))

	if r.EndVerse == nil {
		if r.EndChapter != nil {
			sb.WriteString("-")
			sb.WriteString(strconv.Itoa(*r.EndChapter))
		}
		return sb.String()
	}

	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(r.StartVerse))
	switch {
	case r.EndChapter != nil:
		sb.WriteString("-")
		sb.WriteString(strconv.Itoa(*r.EndChapter))
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(*r.EndVerse))
	case *r.EndVerse != r.StartVerse:
		sb.WriteString("-")
		sb.WriteString(strconv.Itoa(*r.EndVerse))
	}
	return sb.String()
}

// Contains reports whether a verse falls inside the reference.
func (r Reference) Contains(chapter, verse int) bool {
	if chapter < r.Chapter || chapter > r.LastChapter() {
		return false
	}
	if chapter == r.Chapter && verse < r.StartVerse {
		return false
	}
	if r.EndVerse != nil && chapter == r.LastChapter() && verse > *r.EndVerse {
		return false
	}
	return true
}

// normalize checks the ordering rules of a reference and drops an end
// chapter that equals the start chapter.
func (r *Reference) normalize() bool {
	if r.Chapter < 1 || r.StartVerse < 1 {
		return false
	}
	if r.EndChapter != nil {
		switch {
		case *r.EndChapter < r.Chapter:
			return false
		case *r.EndChapter == r.Chapter:
			r.EndChapter = nil
		}
	}
	if r.EndVerse != nil {
		if *r.EndVerse < 1 {
			return false
		}
		if r.EndChapter == nil && *r.EndVerse < r.StartVerse {
			return false
		}
	}
	return true
}

func intPtr(i int) *int {
	return &i
}
