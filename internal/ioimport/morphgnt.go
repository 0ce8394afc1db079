package ioimport

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/sources"
)

// morphGNTPunct are the characters removed from the surface text.
const morphGNTPunct = `⸀⸂⸃·,.;:!?'"()`

// decodeMorphGNT reads MorphGNT lines of the form
//
//	BBCCVV POS PARSE text word norm lemma
//
// where BB is the 1-based New Testament book number.
func decodeMorphGNT(path string, r io.Reader) (*document, error) {
	res := &document{Format: sources.MorphGNT}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 7 {
			return nil, FormatError(path, lineNum, "expected 7 columns")
		}

		bookID, chapter, number, ok := parseMorphGNTRef(fields[0])
		if !ok {
			return nil, FormatError(path, lineNum,
				"bad reference "+strconv.Quote(fields[0]))
		}

		text := strings.TrimSpace(stripChars(gnlib.FixUtf8(fields[3]), morphGNTPunct))
		if text == "" {
			continue
		}

		res.appendWord(bookID, chapter, number, word{
			Text:  text,
			Lemma: gnlib.FixUtf8(fields[6]),
			Morph: fields[1] + " " + fields[2],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, ReadError(path, err)
	}
	return res, nil
}

func parseMorphGNTRef(s string) (string, int, int, bool) {
	if len(s) != 6 {
		return "", 0, 0, false
	}
	nums := make([]int, 3)
	for i := range nums {
		n, err := strconv.Atoi(s[i*2 : i*2+2])
		if err != nil || n < 1 {
			return "", 0, 0, false
		}
		nums[i] = n
	}

	bookID, ok := bible.NTBook(nums[0])
	if !ok {
		return "", 0, 0, false
	}
	return bookID, nums[1], nums[2], true
}

func stripChars(s, chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(chars, r) {
			return -1
		}
		return r
	}, s)
}
