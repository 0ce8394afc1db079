package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBooksCatalog(t *testing.T) {
	tests := []struct {
		msg      string
		args     []string
		contains []string
		lines    int
	}{
		{"text", nil, []string{"ID", "GEN", "Genesis", "REV", "greek"}, 67},
		{"csv", []string{"-o", "csv"}, []string{"ID,Abbrev,Name", "1SA,1Sam,1 Samuel,OT,hebrew"}, 67},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			cfg = config.New()
			out, err := execute(t, getBooksCmd(), "", tt.args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), tt.lines)
		})
	}

	t.Run("json", func(t *testing.T) {
		cfg = config.New()
		out, err := execute(t, getBooksCmd(), "", "-o", "compact")
		require.NoError(t, err)
		var books []map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &books))
		assert.Len(t, books, 66)
	})
}

func TestRunBooksChapters(t *testing.T) {
	seedStore(t)

	out, err := execute(t, getBooksCmd(), "", "John")
	require.NoError(t, err)
	assert.Contains(t, out, "John (JHN): 1 chapters in the corpus")
	assert.Contains(t, out, "3")

	out, err = execute(t, getBooksCmd(), "", "Gen")
	require.NoError(t, err)
	assert.Contains(t, out, "Genesis (GEN): 0 chapters")

	_, err = execute(t, getBooksCmd(), "", "Xyz")
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.UnknownBookError, gnErr.Code)
}
