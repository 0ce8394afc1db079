package ioimport

import (
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/gnames/gnlib"
	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/sources"
)

// OSIS documents carry a default namespace, so elements are matched by
// their local names.
const (
	osisVerseXPath = "//*[local-name()='verse']"
	osisWordXPath  = ".//*[local-name()='w']"
)

// decodeOSHB reads an OSIS XML file of the Open Scriptures Hebrew Bible.
// Verses are <verse osisID="Gen.1.1"> elements holding <w> words.
func decodeOSHB(
	path string,
	r io.Reader,
	reg *bible.Registry,
) (*document, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, ReadError(path, err)
	}

	res := &document{Format: sources.OSHB}
	for _, v := range xmlquery.Find(doc, osisVerseXPath) {
		osisID := v.SelectAttr("osisID")
		if osisID == "" {
			// milestone form <verse eID="..."/>
			continue
		}

		bookID, chapter, number, err := parseOSISID(path, osisID, reg)
		if err != nil {
			return nil, err
		}

		for _, w := range xmlquery.Find(v, osisWordXPath) {
			text := strings.TrimSpace(gnlib.FixUtf8(w.InnerText()))
			if text == "" {
				continue
			}
			res.appendWord(bookID, chapter, number, word{
				Text:  text,
				Lemma: strings.TrimSpace(w.SelectAttr("lemma")),
				Morph: strings.ReplaceAll(w.SelectAttr("morph"), "oshm:", ""),
			})
		}
	}
	return res, nil
}

func parseOSISID(
	path, osisID string,
	reg *bible.Registry,
) (string, int, int, error) {
	parts := strings.Split(osisID, ".")
	if len(parts) != 3 {
		return "", 0, 0, FormatError(path, 0,
			"bad osisID "+strconv.Quote(osisID))
	}

	bookID, ok := reg.ResolveBookToken(parts[0])
	if !ok {
		return "", 0, 0, UnknownBookError(path, parts[0])
	}

	chapter, err := strconv.Atoi(parts[1])
	if err != nil || chapter < 1 {
		return "", 0, 0, FormatError(path, 0,
			"bad chapter in osisID "+strconv.Quote(osisID))
	}
	number, err := strconv.Atoi(parts[2])
	if err != nil || number < 1 {
		return "", 0, 0, FormatError(path, 0,
			"bad verse in osisID "+strconv.Quote(osisID))
	}
	return bookID, chapter, number, nil
}
