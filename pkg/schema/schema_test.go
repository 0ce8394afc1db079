package schema_test

import (
	"strings"
	"testing"

	"github.com/jimiaki7/gegraptai/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerseTableDDL(t *testing.T) {
	ddl := schema.Verse{}.TableDDL()

	assert.True(t, strings.HasPrefix(ddl, "CREATE TABLE IF NOT EXISTS verses ("))
	assert.Contains(t, ddl, "id VARCHAR(32) PRIMARY KEY")
	assert.Contains(t, ddl, "book_id VARCHAR(3) NOT NULL")
	assert.Contains(t, ddl, "chapter INTEGER NOT NULL")
	assert.Contains(t, ddl, "language VARCHAR(10) NOT NULL")
	assert.True(t, strings.HasSuffix(ddl, ");"))
}

func TestWordTableDDL(t *testing.T) {
	ddl := schema.Word{}.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS words")
	assert.Contains(t, ddl, "id VARCHAR(40) PRIMARY KEY")
	assert.Contains(t, ddl, "uuid VARCHAR(36) NOT NULL")
	assert.Contains(t, ddl, "verse_id VARCHAR(32) NOT NULL")
	assert.Contains(t, ddl, "position INTEGER NOT NULL")

	idx := schema.Word{}.IndexDDL()
	require.Len(t, idx, 1)
	assert.Contains(t, idx[0], "words(verse_id)")
}

func TestImportRunTableDDL(t *testing.T) {
	ddl := schema.ImportRun{}.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS import_runs")
	assert.Contains(t, ddl, "fingerprint VARCHAR(64) NOT NULL")
	assert.Contains(t, ddl, "imported_at TIMESTAMP NOT NULL")
	// composite key goes after the columns
	assert.Contains(t, ddl, "imported_at TIMESTAMP NOT NULL,\n    PRIMARY KEY (source_id, file)\n);")
}

func TestColumns(t *testing.T) {
	tests := []struct {
		msg   string
		model any
		cols  []string
	}{
		{
			msg:   "verse",
			model: schema.Verse{},
			cols: []string{
				"id", "book_id", "book_order", "chapter", "number",
				"language", "source_id",
			},
		},
		{
			msg:   "word pointer",
			model: &schema.Word{},
			cols: []string{
				"id", "uuid", "verse_id", "position", "text", "lemma", "morph",
			},
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.cols, schema.Columns(v.model), v.msg)
	}
}

func TestTableNames(t *testing.T) {
	assert.Equal(t,
		[]string{"verses", "words", "import_runs"},
		schema.TableNames(),
	)
	assert.Len(t, schema.AllModels(), len(schema.Generators()))
}

func TestAllModelsImplementDDLGenerator(t *testing.T) {
	for _, model := range schema.Generators() {
		ddl := model.TableDDL()
		assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+model.TableName())

		for _, idx := range model.IndexDDL() {
			assert.Contains(t, idx, "ON "+model.TableName()+"(")
		}
	}
}

func TestColumnDefs(t *testing.T) {
	defs := schema.ColumnDefs(schema.ImportRun{})
	require.NotEmpty(t, defs)
	assert.Equal(t, schema.ColumnDef{Name: "id", DDL: "VARCHAR(36) NOT NULL"}, defs[0])
	assert.Equal(t, "imported_at", defs[len(defs)-1].Name)
}
