package bible

// variants lists curated spellings of book names in addition to the
// name, abbreviation and ID that every book gets automatically.
var variants = map[string][]string{
	"GEN": {"gn", "ge", "genesis"},
	"EXO": {"ex", "exod", "exodus"},
	"LEV": {"lv", "le"},
	"NUM": {"nm", "nu", "numb"},
	"DEU": {"dt", "deu", "deut"},
	"JOS": {"josh", "jsh"},
	"JDG": {"judg", "jgs", "jdgs"},
	"RUT": {"rth", "ru"},
	"1SA": {"1sa", "1sm", "1sam", "1 sam", "1 samuel", "1samuel", "i sam", "i samuel"},
	"2SA": {"2sa", "2sm", "2sam", "2 sam", "2 samuel", "2samuel", "ii sam", "ii samuel"},
	"1KI": {"1ki", "1kgs", "1 kgs", "1 kings", "1kings", "i kgs", "i kings"},
	"2KI": {"2ki", "2kgs", "2 kgs", "2 kings", "2kings", "ii kgs", "ii kings"},
	"1CH": {"1ch", "1chr", "1 chr", "1 chron", "1 chronicles", "1chronicles", "i chr", "i chronicles"},
	"2CH": {"2ch", "2chr", "2 chr", "2 chron", "2 chronicles", "2chronicles", "ii chr", "ii chronicles"},
	"EZR": {"ezr", "ezra"},
	"NEH": {"neh", "nehemiah", "ne"},
	"EST": {"est", "esth", "esther", "es"},
	"JOB": {"jb", "job"},
	"PSA": {"ps", "psa", "psalm", "pss", "psm", "pslm"},
	"PRO": {"pro", "prv", "pr"},
	"ECC": {"ecc", "eccles", "qoh", "qoheleth"},
	"SNG": {"song", "cant", "sos", "sgs", "song of solomon", "canticles"},
	"ISA": {"is"},
	"JER": {"je", "jr"},
	"LAM": {"la"},
	"EZK": {"ezk", "eze"},
	"DAN": {"dn", "da"},
	"HOS": {"ho"},
	"JOL": {"jl", "joe"},
	"AMO": {"ams", "am"},
	"OBA": {"ob", "obd"},
	"JON": {"jnh", "jona"},
	"MIC": {"mc"},
	"NAM": {"na"},
	"HAB": {"hb"},
	"ZEP": {"zp", "zph"},
	"HAG": {"hg"},
	"ZEC": {"zc", "zch"},
	"MAL": {"ml"},

	"MAT": {"mt", "matt", "matthew"},
	"MRK": {"mk", "mrk", "mar", "mr"},
	"LUK": {"lk", "luk", "lu"},
	"JHN": {"jn", "jhn", "joh"},
	"ACT": {"ac", "act"},
	"ROM": {"rm", "romans", "ro"},
	"1CO": {"1co", "1cor", "1 cor", "1corinthians", "i cor", "i corinthians"},
	"2CO": {"2co", "2cor", "2 cor", "2corinthians", "ii cor", "ii corinthians"},
	"GAL": {"ga"},
	"EPH": {"ephes"},
	"PHP": {"phil", "php", "pp"},
	"COL": {"co"},
	"1TH": {"1th", "1thess", "1 thess", "1 th", "i thess", "i thessalonians"},
	"2TH": {"2th", "2thess", "2 thess", "2 th", "ii thess", "ii thessalonians"},
	"1TI": {"1ti", "1tim", "1 tim", "i tim", "i timothy"},
	"2TI": {"2ti", "2tim", "2 tim", "ii tim", "ii timothy"},
	"TIT": {"ti"},
	"PHM": {"phlm", "philem", "phm"},
	"JAS": {"jm", "ja"},
	"1PE": {"1pe", "1pet", "1 pet", "1 pt", "i pet", "i peter"},
	"2PE": {"2pe", "2pet", "2 pet", "2 pt", "ii pet", "ii peter"},
	"1JN": {"1jn", "1john", "1 jn", "1 jhn", "i jn", "i john"},
	"2JN": {"2jn", "2john", "2 jn", "2 jhn", "ii jn", "ii john"},
	"3JN": {"3jn", "3john", "3 jn", "3 jhn", "iii jn", "iii john"},
	"JUD": {"jd", "jude"},
	"REV": {"re", "rv", "apoc", "apocalypse"},
}

// Variants returns a copy of the curated alias lists keyed by book ID.
func Variants() map[string][]string {
	res := make(map[string][]string, len(variants))
	for k, v := range variants {
		res[k] = append([]string(nil), v...)
	}
	return res
}
