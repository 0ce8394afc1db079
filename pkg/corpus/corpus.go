// Package corpus describes verses and words of the scripture corpus and
// the store that serves them. Implementations live in internal/iocorpus.
package corpus

import (
	"context"

	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/ref"
)

// Word is a token of a verse.
type Word struct {
	// ID is the word ID, "{verseID}.{position}".
	ID string `json:"id"`

	// Text is the surface form.
	Text string `json:"text"`

	// Lemma is the dictionary form, may be empty.
	Lemma string `json:"lemma,omitempty"`

	// Morph is the morphology code, may be empty.
	Morph string `json:"morph,omitempty"`

	// Position is zero-based within the verse.
	Position int `json:"position"`
}

// Verse is a verse with its words in surface order.
type Verse struct {
	ID       string         `json:"id"`
	BookID   string         `json:"bookId"`
	Chapter  int            `json:"chapter"`
	Number   int            `json:"number"`
	Language bible.Language `json:"language"`
	Words    []Word         `json:"words"`
}

// Passage is the set of verses covered by one reference.
type Passage struct {
	Reference ref.Reference `json:"reference"`
	Verses    []Verse       `json:"verses"`
}

// Store provides verses from the corpus.
type Store interface {
	// Verses returns verses covered by the reference in canonical order.
	// Chapters or verses absent from the store produce an empty slice.
	Verses(ctx context.Context, r ref.Reference) ([]Verse, error)

	// Books returns IDs of books present in the store in catalog order.
	Books(ctx context.Context) ([]string, error)

	// Chapters returns chapter numbers of a book present in the store.
	Chapters(ctx context.Context, bookID string) ([]int, error)

	// Close releases resources held by the store.
	Close() error
}
