package ioimport

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/gnuuid"
	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/jimiaki7/gegraptai/pkg/ref"
)

// Upper bounds of bound parameters per statement.
const (
	sqliteMaxParams   = 32766
	postgresMaxParams = 65535
)

const wordColumns = 7

const upsertVerseSQL = `INSERT INTO verses
	(id, book_id, book_order, chapter, number, language, source_id)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		book_id = excluded.book_id,
		book_order = excluded.book_order,
		chapter = excluded.chapter,
		number = excluded.number,
		language = excluded.language,
		source_id = excluded.source_id`

const upsertRunSQL = `INSERT INTO import_runs
	(id, source_id, file, fingerprint, verse_count, word_count, imported_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (source_id, file) DO UPDATE SET
		id = excluded.id,
		fingerprint = excluded.fingerprint,
		verse_count = excluded.verse_count,
		word_count = excluded.word_count,
		imported_at = excluded.imported_at`

// wordsBatchSize is the number of word rows per INSERT statement.
func wordsBatchSize(d db.Dialect, configured int) int {
	maxParams := sqliteMaxParams
	if d == db.Postgres {
		maxParams = postgresMaxParams
	}
	return max(1, min(configured, maxParams/wordColumns))
}

// lastFingerprint returns the fingerprint recorded by the previous import
// of the file, or an empty string.
func (im *importer) lastFingerprint(
	ctx context.Context,
	sourceID int,
	path string,
) string {
	q := im.op.Dialect().Rebind(
		"SELECT fingerprint FROM import_runs WHERE source_id = ? AND file = ?",
	)
	var res string
	err := im.op.DB().QueryRowContext(ctx, q, sourceID, path).Scan(&res)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("Cannot read previous import run",
				"source_id", sourceID, "file", path, "error", err)
		}
		return ""
	}
	return res
}

// write stores the verses and words of one file and records the run,
// all in one transaction.
func (im *importer) write(
	ctx context.Context,
	sourceID int,
	runID string,
	batchSize int,
	f *sourceFile,
) error {
	dialect := im.op.Dialect()
	tx, err := im.op.DB().BeginTx(ctx, nil)
	if err != nil {
		return InsertError(f.path, err)
	}
	defer func() { _ = tx.Rollback() }()

	verseStmt, err := tx.PrepareContext(ctx, dialect.Rebind(upsertVerseSQL))
	if err != nil {
		return InsertError(f.path, err)
	}
	defer verseStmt.Close()

	clearStmt, err := tx.PrepareContext(ctx,
		dialect.Rebind("DELETE FROM words WHERE verse_id = ?"))
	if err != nil {
		return InsertError(f.path, err)
	}
	defer clearStmt.Close()

	words := f.doc.wordCount()
	bar := pb.Full.Start(words)
	bar.Set("prefix", filepath.Base(f.path)+": ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var rows []any
	var inBatch int
	for _, v := range f.doc.Verses {
		verseID := ref.VerseID(v.BookID, v.Chapter, v.Number)
		_, err = verseStmt.ExecContext(ctx,
			verseID,
			v.BookID,
			im.reg.Index(v.BookID),
			v.Chapter,
			v.Number,
			string(im.reg.LanguageFor(v.BookID, v.Chapter)),
			sourceID,
		)
		if err != nil {
			return InsertError(f.path, err)
		}

		if _, err = clearStmt.ExecContext(ctx, verseID); err != nil {
			return InsertError(f.path, err)
		}

		for pos, w := range v.Words {
			wordID := ref.WordID(verseID, pos)
			rows = append(rows,
				wordID,
				gnuuid.New(wordID).String(),
				verseID,
				pos,
				w.Text,
				nullable(w.Lemma),
				nullable(w.Morph),
			)
			inBatch++
			if inBatch == batchSize {
				if err = insertWords(ctx, tx, dialect, rows, inBatch); err != nil {
					return InsertError(f.path, err)
				}
				bar.Add(inBatch)
				rows = rows[:0]
				inBatch = 0
			}
		}
	}

	if inBatch > 0 {
		if err = insertWords(ctx, tx, dialect, rows, inBatch); err != nil {
			return InsertError(f.path, err)
		}
		bar.Add(inBatch)
	}

	_, err = tx.ExecContext(ctx, dialect.Rebind(upsertRunSQL),
		runID,
		sourceID,
		f.path,
		f.fingerprint,
		len(f.doc.Verses),
		words,
		time.Now().UTC(),
	)
	if err != nil {
		return InsertError(f.path, err)
	}

	if err = tx.Commit(); err != nil {
		return InsertError(f.path, err)
	}
	return nil
}

func insertWords(
	ctx context.Context,
	tx *sql.Tx,
	dialect db.Dialect,
	rows []any,
	count int,
) error {
	placeholder := "(" + strings.TrimSuffix(
		strings.Repeat("?, ", wordColumns), ", ") + ")"
	values := strings.TrimSuffix(strings.Repeat(placeholder+", ", count), ", ")

	q := `INSERT INTO words
		(id, uuid, verse_id, position, text, lemma, morph)
		VALUES ` + values + `
		ON CONFLICT (id) DO UPDATE SET
			uuid = excluded.uuid,
			verse_id = excluded.verse_id,
			position = excluded.position,
			text = excluded.text,
			lemma = excluded.lemma,
			morph = excluded.morph`

	_, err := tx.ExecContext(ctx, dialect.Rebind(q), rows...)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
