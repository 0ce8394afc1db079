// Package iocorpus implements corpus.Store on top of the SQL store
// opened by iodb.
package iocorpus

import (
	"context"
	"database/sql"
	"log/slog"
	"slices"
	"sync"

	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/corpus"
	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/jimiaki7/gegraptai/pkg/ref"
)

type chapterKey struct {
	bookID  string
	chapter int
}

// store implements corpus.Store. Decoded chapters and chapter lists are
// cached, guarded by mu. Callers get copies of cached slices.
type store struct {
	op  db.Operator
	reg *bible.Registry

	mu       sync.RWMutex
	verses   map[chapterKey][]corpus.Verse
	chapters map[string][]int
}

// New creates a corpus store that reads through op. A nil registry means
// bible.Default().
func New(op db.Operator, reg *bible.Registry) corpus.Store {
	if reg == nil {
		reg = bible.Default()
	}
	return &store{
		op:       op,
		reg:      reg,
		verses:   make(map[chapterKey][]corpus.Verse),
		chapters: make(map[string][]int),
	}
}

// Verses returns verses covered by r in canonical order.
func (s *store) Verses(
	ctx context.Context,
	r ref.Reference,
) ([]corpus.Verse, error) {
	chapters, err := s.Chapters(ctx, r.BookID)
	if err != nil {
		return nil, err
	}

	var res []corpus.Verse
	for _, ch := range chapters {
		if ch < r.Chapter || ch > r.LastChapter() {
			continue
		}
		verses, err := s.chapter(ctx, r.BookID, ch)
		if err != nil {
			return nil, err
		}
		for _, v := range verses {
			if r.Contains(v.Chapter, v.Number) {
				v.Words = slices.Clone(v.Words)
				res = append(res, v)
			}
		}
	}
	return res, nil
}

// Books returns IDs of books present in the store in catalog order.
func (s *store) Books(ctx context.Context) ([]string, error) {
	sqlDB := s.op.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	q := `SELECT DISTINCT book_id, book_order FROM verses ORDER BY book_order`
	rows, err := sqlDB.QueryContext(ctx, q)
	if err != nil {
		return nil, QueryError("books", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		var order int
		if err := rows.Scan(&id, &order); err != nil {
			return nil, QueryError("books", err)
		}
		res = append(res, id)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("books", err)
	}
	return res, nil
}

// Chapters returns chapter numbers of a book present in the store.
func (s *store) Chapters(ctx context.Context, bookID string) ([]int, error) {
	s.mu.RLock()
	res, ok := s.chapters[bookID]
	s.mu.RUnlock()
	if ok {
		return slices.Clone(res), nil
	}

	sqlDB := s.op.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	q := s.op.Dialect().Rebind(
		`SELECT DISTINCT chapter FROM verses WHERE book_id = ? ORDER BY chapter`,
	)
	rows, err := sqlDB.QueryContext(ctx, q, bookID)
	if err != nil {
		return nil, QueryError("chapters", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ch int
		if err := rows.Scan(&ch); err != nil {
			return nil, QueryError("chapters", err)
		}
		res = append(res, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("chapters", err)
	}

	if len(res) > 0 {
		s.mu.Lock()
		s.chapters[bookID] = slices.Clone(res)
		s.mu.Unlock()
	}
	return res, nil
}

// Close closes the underlying store.
func (s *store) Close() error {
	return s.op.Close()
}

// chapter loads all verses of a chapter with their words.
func (s *store) chapter(
	ctx context.Context,
	bookID string,
	chapter int,
) ([]corpus.Verse, error) {
	key := chapterKey{bookID: bookID, chapter: chapter}
	s.mu.RLock()
	res, ok := s.verses[key]
	s.mu.RUnlock()
	if ok {
		return res, nil
	}

	sqlDB := s.op.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	q := s.op.Dialect().Rebind(`
SELECT v.id, v.number, w.id, w.position, w.text, w.lemma, w.morph
  FROM verses v
    LEFT JOIN words w ON w.verse_id = v.id
  WHERE v.book_id = ? AND v.chapter = ?
  ORDER BY v.number, w.position`)

	rows, err := sqlDB.QueryContext(ctx, q, bookID, chapter)
	if err != nil {
		return nil, QueryError("verses", err)
	}
	defer rows.Close()

	lang := s.reg.LanguageFor(bookID, chapter)
	for rows.Next() {
		var verseID string
		var number int
		var wordID, text, lemma, morph sql.NullString
		var position sql.NullInt64
		err = rows.Scan(&verseID, &number, &wordID, &position,
			&text, &lemma, &morph)
		if err != nil {
			return nil, QueryError("verses", err)
		}

		if len(res) == 0 || res[len(res)-1].ID != verseID {
			res = append(res, corpus.Verse{
				ID:       verseID,
				BookID:   bookID,
				Chapter:  chapter,
				Number:   number,
				Language: lang,
			})
		}
		if !wordID.Valid {
			continue
		}
		v := &res[len(res)-1]
		v.Words = append(v.Words, corpus.Word{
			ID:       wordID.String,
			Text:     text.String,
			Lemma:    lemma.String,
			Morph:    morph.String,
			Position: int(position.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, QueryError("verses", err)
	}

	if len(res) > 0 {
		s.mu.Lock()
		s.verses[key] = res
		s.mu.Unlock()
		slog.Debug("Loaded chapter", "book", bookID, "chapter", chapter,
			"verses", len(res))
	}
	return res, nil
}
