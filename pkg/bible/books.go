// Package bible holds the canonical catalog of the 66 books, the table of
// book aliases, and the rules that tag chapters with their source
// language. This is a pure package, nothing in it performs I/O.
package bible

// Language is the source language of a book or a chapter.
type Language string

const (
	Hebrew  Language = "hebrew"
	Aramaic Language = "aramaic"
	Greek   Language = "greek"
)

// Testament separates Old and New Testament books.
type Testament string

const (
	OT Testament = "OT"
	NT Testament = "NT"
)

// Book is an immutable catalog entry.
type Book struct {
	// ID is a three-character canonical code, for example "GEN" or "1JN".
	ID string `json:"id"`

	// Name is the canonical display name.
	Name string `json:"name"`

	// Abbrev is the canonical short form used when rendering references.
	Abbrev string `json:"abbrev"`

	// Language is the default language of the book. Some books switch
	// language by chapter, see LanguageFor.
	Language Language `json:"language"`

	Testament Testament `json:"testament"`
}

func ot(id, name, abbrev string) Book {
	return Book{ID: id, Name: name, Abbrev: abbrev, Language: Hebrew, Testament: OT}
}

func nt(id, name, abbrev string) Book {
	return Book{ID: id, Name: name, Abbrev: abbrev, Language: Greek, Testament: NT}
}

// catalog is the canonical book order. NT book numbers in MorphGNT
// files index into the NT part of this slice.
var catalog = []Book{
	ot("GEN", "Genesis", "Gen"),
	ot("EXO", "Exodus", "Exod"),
	ot("LEV", "Leviticus", "Lev"),
	ot("NUM", "Numbers", "Num"),
	ot("DEU", "Deuteronomy", "Deut"),
	ot("JOS", "Joshua", "Josh"),
	ot("JDG", "Judges", "Judg"),
	ot("RUT", "Ruth", "Ruth"),
	ot("1SA", "1 Samuel", "1Sam"),
	ot("2SA", "2 Samuel", "2Sam"),
	ot("1KI", "1 Kings", "1Kgs"),
	ot("2KI", "2 Kings", "2Kgs"),
	ot("1CH", "1 Chronicles", "1Chr"),
	ot("2CH", "2 Chronicles", "2Chr"),
	ot("EZR", "Ezra", "Ezra"),
	ot("NEH", "Nehemiah", "Neh"),
	ot("EST", "Esther", "Esth"),
	ot("JOB", "Job", "Job"),
	ot("PSA", "Psalms", "Ps"),
	ot("PRO", "Proverbs", "Prov"),
	ot("ECC", "Ecclesiastes", "Eccl"),
	ot("SNG", "Song of Songs", "Song"),
	ot("ISA", "Isaiah", "Isa"),
	ot("JER", "Jeremiah", "Jer"),
	ot("LAM", "Lamentations", "Lam"),
	ot("EZK", "Ezekiel", "Ezek"),
	ot("DAN", "Daniel", "Dan"),
	ot("HOS", "Hosea", "Hos"),
	ot("JOL", "Joel", "Joel"),
	ot("AMO", "Amos", "Amos"),
	ot("OBA", "Obadiah", "Obad"),
	ot("JON", "Jonah", "Jonah"),
	ot("MIC", "Micah", "Mic"),
	ot("NAM", "Nahum", "Nah"),
	ot("HAB", "Habakkuk", "Hab"),
	ot("ZEP", "Zephaniah", "Zeph"),
	ot("HAG", "Haggai", "Hag"),
	ot("ZEC", "Zechariah", "Zech"),
	ot("MAL", "Malachi", "Mal"),

	nt("MAT", "Matthew", "Matt"),
	nt("MRK", "Mark", "Mark"),
	nt("LUK", "Luke", "Luke"),
	nt("JHN", "John", "John"),
	nt("ACT", "Acts", "Acts"),
	nt("ROM", "Romans", "Rom"),
	nt("1CO", "1 Corinthians", "1Cor"),
	nt("2CO", "2 Corinthians", "2Cor"),
	nt("GAL", "Galatians", "Gal"),
	nt("EPH", "Ephesians", "Eph"),
	nt("PHP", "Philippians", "Phil"),
	nt("COL", "Colossians", "Col"),
	nt("1TH", "1 Thessalonians", "1Thess"),
	nt("2TH", "2 Thessalonians", "2Thess"),
	nt("1TI", "1 Timothy", "1Tim"),
	nt("2TI", "2 Timothy", "2Tim"),
	nt("TIT", "Titus", "Titus"),
	nt("PHM", "Philemon", "Phlm"),
	nt("HEB", "Hebrews", "Heb"),
	nt("JAS", "James", "Jas"),
	nt("1PE", "1 Peter", "1Pet"),
	nt("2PE", "2 Peter", "2Pet"),
	nt("1JN", "1 John", "1John"),
	nt("2JN", "2 John", "2John"),
	nt("3JN", "3 John", "3John"),
	nt("JUD", "Jude", "Jude"),
	nt("REV", "Revelation", "Rev"),
}

// Catalog returns a copy of the canonical list of books in canonical
// order.
func Catalog() []Book {
	res := make([]Book, len(catalog))
	copy(res, catalog)
	return res
}

// NTBook returns the ID of the n-th New Testament book (1-based), the
// numbering used by MorphGNT. It returns false for numbers outside 1..27.
func NTBook(n int) (string, bool) {
	const ntStart = 39
	if n < 1 || ntStart+n > len(catalog) {
		return "", false
	}
	return catalog[ntStart+n-1].ID, true
}
