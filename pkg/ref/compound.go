package ref

import "strings"

// State is the context carried from one clause of a compound input to
// the next.
type State int

const (
	// NoContext means no clause has been resolved yet.
	NoContext State = iota
	// ChapterContext means the last reference was a whole chapter (or a
	// whole-chapter range). Bare numbers continue with new chapters.
	ChapterContext
	// VerseContext means the last reference named verses. Bare numbers
	// continue with verses of the last chapter.
	VerseContext
)

func (s State) String() string {
	switch s {
	case ChapterContext:
		return "chapter-context"
	case VerseContext:
		return "verse-context"
	default:
		return "no-context"
	}
}

// Step records how one clause of a compound input was handled.
type Step struct {
	// Clause is the trimmed clause text.
	Clause string `json:"clause"`

	// Outcome is Resolved for clauses that produced a reference, either
	// on their own or through context.
	Outcome Outcome `json:"-"`

	// Contextual is true when the reference came from context.
	Contextual bool `json:"contextual"`

	// Reference is nil for dropped clauses.
	Reference *Reference `json:"reference"`

	// State is the context after the clause.
	State State `json:"-"`
}

// ParseCompound resolves a compound input with the default parser.
func ParseCompound(input string) []Reference {
	return Default().ParseCompound(input)
}

// Trace resolves a compound input with the default parser and returns
// every step.
func Trace(input string) []Step {
	return Default().Trace(input)
}

// ParseCompound splits the input on commas and semicolons and resolves
// each clause in order. Clauses without a book name are resolved from
// the previous clause. Clauses that cannot be resolved are dropped. The
// result is never nil.
func (p *Parser) ParseCompound(input string) []Reference {
	res := make([]Reference, 0, 2)
	for _, st := range p.Trace(input) {
		if st.Reference != nil {
			res = append(res, *st.Reference)
		}
	}
	return res
}

// Trace is ParseCompound that also reports dropped clauses and the
// context after each clause.
func (p *Parser) Trace(input string) []Step {
	clauses := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ';'
	})

	ctx := resolver{p: p}
	res := make([]Step, 0, len(clauses))
	for _, c := range clauses {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		res = append(res, ctx.step(c))
	}
	return res
}

// resolver is the state machine behind ParseCompound. It lives for the
// duration of one input.
type resolver struct {
	p       *Parser
	state   State
	book    string
	chapter int
}

func (r *resolver) step(clause string) Step {
	c := r.p.classify(clause)
	res := Step{Clause: clause, Outcome: c.outcome}

	switch c.outcome {
	case Resolved:
		r.accept(c.ref)
		res.Reference = &c.ref
	case NeedsContext:
		if r.state == NoContext {
			break
		}
		ref, ok := r.continuation(c.loc)
		if !ok {
			res.Outcome = Malformed
			break
		}
		res.Outcome = Resolved
		res.Contextual = true
		res.Reference = &ref
	}

	res.State = r.state
	return res
}

// accept makes a fully resolved reference the new context.
func (r *resolver) accept(ref Reference) {
	r.book = ref.BookID
	r.chapter = ref.LastChapter()
	if ref.EndVerse == nil && ref.EndChapter == nil {
		r.state = ChapterContext
	} else {
		r.state = VerseContext
	}
}

// continuation interprets a bare locator against the current context.
// It does not change the context when it fails.
func (r *resolver) continuation(loc *locator) (Reference, bool) {
	switch {
	case loc.isChapterVerse():
		ref, ok := build(r.book, loc)
		if !ok {
			return Reference{}, false
		}
		r.chapter = ref.LastChapter()
		r.state = VerseContext
		return ref, true

	case !loc.isBareNumbers():
		return Reference{}, false

	case r.state == ChapterContext:
		ref, ok := build(r.book, loc)
		if !ok {
			return Reference{}, false
		}
		r.chapter = ref.LastChapter()
		return ref, true

	default:
		end := loc.Chapter
		if loc.End != nil {
			end = loc.End.First
		}
		ref := Reference{
			BookID:     r.book,
			Chapter:    r.chapter,
			StartVerse: loc.Chapter,
			EndVerse:   intPtr(end),
		}
		if !ref.normalize() {
			return Reference{}, false
		}
		return ref, true
	}
}
