package ref

import (
	"strings"
	"sync"

	"github.com/jimiaki7/gegraptai/pkg/bible"
)

// Outcome tags how a single clause was understood.
type Outcome int

const (
	// Malformed clauses cannot be resolved, with or without context.
	Malformed Outcome = iota
	// NeedsContext clauses are bare numeric locators ("5", "24:1") that
	// need a previously resolved book.
	NeedsContext
	// Resolved clauses matched the full grammar with a known book.
	Resolved
)

func (o Outcome) String() string {
	switch o {
	case Resolved:
		return "resolved"
	case NeedsContext:
		return "needs-context"
	default:
		return "malformed"
	}
}

// Parser resolves citations against a book registry.
type Parser struct {
	reg *bible.Registry
}

// New creates a Parser that resolves book names with the given registry.
func New(reg *bible.Registry) *Parser {
	return &Parser{reg: reg}
}

var defaultParser = sync.OnceValue(func() *Parser {
	return New(bible.Default())
})

// Default returns the Parser backed by the default registry.
func Default() *Parser {
	return defaultParser()
}

// classified keeps what Classify learned about a clause.
type classified struct {
	outcome Outcome
	ref     Reference
	loc     *locator
}

// ParseSingle parses one clause with the default parser.
func ParseSingle(clause string) (Reference, bool) {
	return Default().ParseSingle(clause)
}

// Classify tags one clause with the default parser.
func Classify(clause string) Outcome {
	return Default().Classify(clause)
}

// ParseSingle parses one citation clause in isolation. The second value
// is false when the clause does not name a known book or does not follow
// the grammar.
func (p *Parser) ParseSingle(clause string) (Reference, bool) {
	c := p.classify(clause)
	if c.outcome != Resolved {
		return Reference{}, false
	}
	return c.ref, true
}

// Classify explains why a clause did or did not resolve on its own.
func (p *Parser) Classify(clause string) Outcome {
	return p.classify(clause).outcome
}

func (p *Parser) classify(clause string) classified {
	clause = strings.TrimSpace(clause)
	var res classified
	if clause == "" {
		return res
	}

	for _, i := range locatorStarts(clause) {
		loc, ok := parseLocator(clause[i:])
		if !ok {
			continue
		}

		bookText := strings.TrimSpace(clause[:i])
		if bookText == "" {
			res.outcome = NeedsContext
			res.loc = loc
			return res
		}

		id, ok := p.reg.ResolveBookToken(bookText)
		if !ok {
			continue
		}

		ref, ok := build(id, loc)
		if !ok {
			return res
		}
		res.outcome = Resolved
		res.ref = ref
		res.loc = loc
		return res
	}
	return res
}

// maxLocatorInts is the largest number of integers in a locator
// ("1:2-3:4").
const maxLocatorInts = 4

// locatorStarts returns the byte offsets where a run of digits begins.
// These are the only places where the book text can end, shortest book
// text first. A locator holds at most maxLocatorInts numbers, so only the
// last starts are returned.
func locatorStarts(s string) []int {
	var res []int
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) && (i == 0 || !isDigit(s[i-1])) {
			res = append(res, i)
		}
	}
	if len(res) > maxLocatorInts {
		res = res[len(res)-maxLocatorInts:]
	}
	return res
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// build turns a parsed locator into a Reference. A range end without a
// chapter prefix after a verse is a verse of the start chapter. After a
// bare chapter it is an end chapter.
func build(bookID string, loc *locator) (Reference, bool) {
	res := Reference{
		BookID:     bookID,
		Chapter:    loc.Chapter,
		StartVerse: 1,
	}

	switch {
	case loc.Verse == nil && loc.End == nil:
		// whole chapter
	case loc.Verse == nil && loc.End.Second == nil:
		res.EndChapter = intPtr(loc.End.First)
	case loc.Verse == nil:
		res.EndChapter = intPtr(loc.End.First)
		res.EndVerse = intPtr(*loc.End.Second)
	case loc.End == nil:
		res.StartVerse = *loc.Verse
		res.EndVerse = intPtr(*loc.Verse)
	case loc.End.Second == nil:
		res.StartVerse = *loc.Verse
		res.EndVerse = intPtr(loc.End.First)
	default:
		res.StartVerse = *loc.Verse
		res.EndChapter = intPtr(loc.End.First)
		res.EndVerse = intPtr(*loc.End.Second)
	}

	if !res.normalize() {
		return Reference{}, false
	}
	return res, true
}
