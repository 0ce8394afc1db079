package ref

import (
	"strconv"
	"strings"
)

// VerseID returns the stable identity of a verse, "{book}.{chapter}.{verse}".
func VerseID(bookID string, chapter, verse int) string {
	return bookID + "." + strconv.Itoa(chapter) + "." + strconv.Itoa(verse)
}

// WordID returns the identity of the word at the zero-based position
// within a verse, "{verseID}.{position}".
func WordID(verseID string, position int) string {
	return verseID + "." + strconv.Itoa(position)
}

// ParseVerseID splits a verse ID into its parts.
func ParseVerseID(id string) (bookID string, chapter, verse int, ok bool) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return "", 0, 0, false
	}
	return splitIDParts(parts)
}

// ParseWordID splits a word ID into the verse ID and the word position.
func ParseWordID(id string) (verseID string, position int, ok bool) {
	i := strings.LastIndexByte(id, '.')
	if i < 0 {
		return "", 0, false
	}
	verseID = id[:i]
	if _, _, _, ok = ParseVerseID(verseID); !ok {
		return "", 0, false
	}
	position, err := strconv.Atoi(id[i+1:])
	if err != nil || position < 0 {
		return "", 0, false
	}
	return verseID, position, true
}

func splitIDParts(parts []string) (string, int, int, bool) {
	if parts[0] == "" {
		return "", 0, 0, false
	}
	ch, err := strconv.Atoi(parts[1])
	if err != nil || ch < 1 {
		return "", 0, 0, false
	}
	v, err := strconv.Atoi(parts[2])
	if err != nil || v < 1 {
		return "", 0, 0, false
	}
	return parts[0], ch, v, true
}

// StartVerseID returns the ID of the first verse of the reference.
func (r Reference) StartVerseID() string {
	return VerseID(r.BookID, r.Chapter, r.StartVerse)
}
