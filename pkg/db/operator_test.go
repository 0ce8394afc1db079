package db_test

import (
	"testing"

	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	q := "SELECT id FROM verses WHERE book_id = ? AND chapter BETWEEN ? AND ?"
	tests := []struct {
		msg     string
		dialect db.Dialect
		res     string
	}{
		{"sqlite keeps question marks", db.SQLite, q},
		{
			"postgres numbers placeholders",
			db.Postgres,
			"SELECT id FROM verses WHERE book_id = $1 AND chapter BETWEEN $2 AND $3",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, v.dialect.Rebind(q), v.msg)
	}
	assert.Equal(t, "SELECT 1", db.Postgres.Rebind("SELECT 1"))
}
