package ioimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jimiaki7/gegraptai/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := fingerprint([]byte("In the beginning"))
	b := fingerprint([]byte("In the beginning"))
	c := fingerprint([]byte("In the beginning."))

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDocCache(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sources")
	cache := newDocCache(dir)
	fp := fingerprint([]byte("x"))

	assert.Nil(t, cache.get(fp), "missing entry")

	doc := &document{Format: sources.OSHB}
	doc.appendWord("GEN", 1, 1, word{Text: "בָּרָ֣א", Lemma: "1254 a", Morph: "HVqp3ms"})
	require.NoError(t, cache.put(fp, doc))

	got := cache.get(fp)
	require.NotNil(t, got)
	assert.Equal(t, doc, got)

	require.NoError(t, os.WriteFile(cache.path(fp), []byte("garbage"), 0644))
	assert.Nil(t, cache.get(fp), "undecodable entry")
}
