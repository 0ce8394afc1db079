package ioimport

import (
	"github.com/jimiaki7/gegraptai/pkg/sources"
)

// document is the decoded content of one source file. It is what the
// sources cache keeps, so its fields are exported for gob.
type document struct {
	Format sources.Format
	Verses []verse
}

type verse struct {
	BookID  string
	Chapter int
	Number  int
	Words   []word
}

type word struct {
	Text  string
	Lemma string
	Morph string
}

func (d *document) wordCount() int {
	var res int
	for i := range d.Verses {
		res += len(d.Verses[i].Words)
	}
	return res
}

// appendWord adds a word to the verse at (book, chapter, number), opening
// a new verse when the location differs from the last one.
func (d *document) appendWord(bookID string, chapter, number int, w word) {
	n := len(d.Verses)
	if n > 0 {
		last := &d.Verses[n-1]
		if last.BookID == bookID && last.Chapter == chapter &&
			last.Number == number {
			last.Words = append(last.Words, w)
			return
		}
	}
	d.Verses = append(d.Verses, verse{
		BookID:  bookID,
		Chapter: chapter,
		Number:  number,
		Words:   []word{w},
	})
}
