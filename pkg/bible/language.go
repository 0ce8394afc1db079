package bible

// chapterRange is an inclusive range of chapters.
type chapterRange struct {
	from, to int
}

// aramaicPortions lists the chapters written in Aramaic rather than in
// the default language of the book.
var aramaicPortions = map[string][]chapterRange{
	"DAN": {{2, 7}},
	"EZR": {{4, 7}},
}

// IsAramaic reports whether a chapter of a book belongs to the Aramaic
// portions.
func IsAramaic(bookID string, chapter int) bool {
	for _, r := range aramaicPortions[bookID] {
		if chapter >= r.from && chapter <= r.to {
			return true
		}
	}
	return false
}

// LanguageFor returns the language of one chapter of a book using the
// default registry. Unknown books return an empty Language.
func LanguageFor(bookID string, chapter int) Language {
	return Default().LanguageFor(bookID, chapter)
}

// LanguageFor returns the language of one chapter of a book, applying the
// Aramaic portions on top of the book default.
func (r *Registry) LanguageFor(bookID string, chapter int) Language {
	b, ok := r.Book(bookID)
	if !ok {
		return ""
	}
	if IsAramaic(bookID, chapter) {
		return Aramaic
	}
	return b.Language
}
