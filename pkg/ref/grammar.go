package ref

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// locatorGrammar is the numeric part of a citation that follows the book
// text, for example "1:1-2:3". Whitespace is significant: a run of spaces
// between two numbers is a range separator.
//
// Numbers are captured as strings and converted in base 10, so "08" is
// verse 8.
//
//nolint:govet // participle grammar tags are not standard struct tags
type locatorGrammar struct {
	Chapter string           `@Int`
	Verse   *string          `( Sep @Int )?`
	End     *rangeEndGrammar `( Range @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type rangeEndGrammar struct {
	First  string  `@Int`
	Second *string `( Sep @Int )?`
}

// Sep has to come before Range so that " : " is read as a chapter/verse
// separator and not as a range made of spaces. Unicode spaces such as
// U+00A0 count as whitespace.
var locatorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Sep", Pattern: `[\s\p{Zs}]*[:.][\s\p{Zs}]*`},
	{Name: "Range", Pattern: `[\s\p{Zs}\-–—]+`},
})

var locatorParser = participle.MustBuild[locatorGrammar](
	participle.Lexer(locatorLexer),
)

// locator is a parsed locatorGrammar with numbers converted.
type locator struct {
	Chapter int
	Verse   *int
	End     *rangeEnd
}

type rangeEnd struct {
	First  int
	Second *int
}

// parseLocator parses the whole string as a locator. Surrounding
// whitespace is ignored.
func parseLocator(s string) (*locator, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	g, err := locatorParser.ParseString("", s)
	if err != nil {
		return nil, false
	}

	var res locator
	var ok bool
	if res.Chapter, ok = atoi(g.Chapter); !ok {
		return nil, false
	}
	if res.Verse, ok = atoiPtr(g.Verse); !ok {
		return nil, false
	}
	if g.End != nil {
		res.End = &rangeEnd{}
		if res.End.First, ok = atoi(g.End.First); !ok {
			return nil, false
		}
		if res.End.Second, ok = atoiPtr(g.End.Second); !ok {
			return nil, false
		}
	}
	return &res, true
}

func atoi(s string) (int, bool) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}

func atoiPtr(s *string) (*int, bool) {
	if s == nil {
		return nil, true
	}
	i, ok := atoi(*s)
	if !ok {
		return nil, false
	}
	return &i, true
}

// isChapterVerse is true for "N:N" with an optional tail.
func (l *locator) isChapterVerse() bool {
	return l.Verse != nil
}

// isBareNumbers is true for "N" and "N-M".
func (l *locator) isBareNumbers() bool {
	return l.Verse == nil && (l.End == nil || l.End.Second == nil)
}
