package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
// Extra table constraints are appended after the columns.
func generateDDL(model any, tableName string, constraints ...string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}
	for _, c := range constraints {
		columns = append(columns, "    "+c)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// ColumnDef is a column name with its DDL type and constraints.
type ColumnDef struct {
	Name string
	DDL  string
}

// ColumnDefs returns the columns of a model in field order.
func ColumnDefs(model any) []ColumnDef {
	t := reflect.TypeOf(model)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	var res []ColumnDef
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if name := field.Tag.Get("db"); name != "" {
			res = append(res, ColumnDef{Name: name, DDL: field.Tag.Get("ddl")})
		}
	}
	return res
}

// Columns returns the db column names of a model in field order.
func Columns(model any) []string {
	defs := ColumnDefs(model)
	res := make([]string, len(defs))
	for i, d := range defs {
		res[i] = d.Name
	}
	return res
}

func (v Verse) TableDDL() string {
	return generateDDL(v, v.TableName())
}

func (v Verse) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_verses_book_chapter ON verses(book_id, chapter);",
	}
}

func (v Verse) TableName() string {
	return "verses"
}

func (w Word) TableDDL() string {
	return generateDDL(w, w.TableName())
}

func (w Word) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_words_verse ON words(verse_id);",
	}
}

func (w Word) TableName() string {
	return "words"
}

func (ir ImportRun) TableDDL() string {
	return generateDDL(ir, ir.TableName(), "PRIMARY KEY (source_id, file)")
}

func (ir ImportRun) IndexDDL() []string {
	return []string{
		"CREATE INDEX IF NOT EXISTS idx_import_runs_id ON import_runs(id);",
	}
}

func (ir ImportRun) TableName() string {
	return "import_runs"
}
