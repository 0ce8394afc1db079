// Package schema provides the corpus store models. The same models drive
// GORM AutoMigrate on PostgreSQL and the plain DDL used for SQLite.
package schema

import (
	"time"
)

// DDLGenerator defines how Go models generate DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Verse is one verse of a book, keyed by its verse ID.
type Verse struct {
	// ID is the verse ID, for example "GEN.1.1".
	ID string `db:"id" ddl:"VARCHAR(32) PRIMARY KEY" gorm:"primaryKey;size:32"`

	// BookID is the canonical book ID.
	BookID string `db:"book_id" ddl:"VARCHAR(3) NOT NULL" gorm:"size:3;not null;index:idx_verses_book_chapter,priority:1"`

	// BookOrder is the position of the book in the catalog. Used for
	// ordering of book listings.
	BookOrder int `db:"book_order" ddl:"INTEGER NOT NULL" gorm:"not null"`

	// Chapter number, starting at 1.
	Chapter int `db:"chapter" ddl:"INTEGER NOT NULL" gorm:"not null;index:idx_verses_book_chapter,priority:2"`

	// Number is the verse number within the chapter.
	Number int `db:"number" ddl:"INTEGER NOT NULL" gorm:"not null"`

	// Language is hebrew, aramaic or greek.
	Language string `db:"language" ddl:"VARCHAR(10) NOT NULL" gorm:"size:10;not null"`

	// SourceID is the sources.yaml entry the verse came from.
	SourceID int `db:"source_id" ddl:"INTEGER NOT NULL" gorm:"not null"`
}

// Word is a single token of a verse in surface order.
type Word struct {
	// ID is the word ID, for example "GEN.1.1.0".
	ID string `db:"id" ddl:"VARCHAR(40) PRIMARY KEY" gorm:"primaryKey;size:40"`

	// UUID is a UUID v5 of ID.
	UUID string `db:"uuid" ddl:"VARCHAR(36) NOT NULL" gorm:"size:36;not null"`

	// VerseID refers to verses.id.
	VerseID string `db:"verse_id" ddl:"VARCHAR(32) NOT NULL" gorm:"size:32;not null;index:idx_words_verse"`

	// Position is zero-based within the verse.
	Position int `db:"position" ddl:"INTEGER NOT NULL" gorm:"not null"`

	// Text is the surface form without punctuation.
	Text string `db:"text" ddl:"TEXT NOT NULL" gorm:"not null"`

	// Lemma is the dictionary form or Strong's-like lemma code.
	Lemma string `db:"lemma" ddl:"TEXT" gorm:""`

	// Morph is the morphology code.
	Morph string `db:"morph" ddl:"TEXT" gorm:""`
}

// ImportRun records an imported file and its fingerprint.
type ImportRun struct {
	// ID is a random UUID of the import run.
	ID string `db:"id" ddl:"VARCHAR(36) NOT NULL" gorm:"size:36;not null;index:idx_import_runs_id"`

	// SourceID is the sources.yaml entry.
	SourceID int `db:"source_id" ddl:"INTEGER NOT NULL" gorm:"primaryKey;autoIncrement:false"`

	// File is the absolute path of the imported file.
	File string `db:"file" ddl:"TEXT NOT NULL" gorm:"primaryKey"`

	// Fingerprint is the BLAKE3 hex digest of the file content.
	Fingerprint string `db:"fingerprint" ddl:"VARCHAR(64) NOT NULL" gorm:"size:64;not null"`

	// VerseCount is the number of verses written from the file.
	VerseCount int `db:"verse_count" ddl:"INTEGER NOT NULL DEFAULT 0" gorm:"not null;default:0"`

	// WordCount is the number of words written from the file.
	WordCount int `db:"word_count" ddl:"INTEGER NOT NULL DEFAULT 0" gorm:"not null;default:0"`

	// ImportedAt is when the file was written to the store.
	ImportedAt time.Time `db:"imported_at" ddl:"TIMESTAMP NOT NULL" gorm:"not null"`
}
