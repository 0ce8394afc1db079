package iocorpus_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jimiaki7/gegraptai/internal/iocorpus"
	"github.com/jimiaki7/gegraptai/internal/iotesting"
	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/corpus"
	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/jimiaki7/gegraptai/pkg/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, op db.Operator) {
	t.Helper()
	ctx := context.Background()
	reg := bible.Default()

	verses := []struct {
		book    string
		chapter int
		number  int
		words   []string
	}{
		{"GEN", 1, 1, []string{"בְּרֵאשִׁית", "בָּרָא", "אֱלֹהִים"}},
		{"GEN", 1, 2, []string{"וְהָאָרֶץ"}},
		{"GEN", 2, 1, []string{"וַיְכֻלּוּ"}},
		{"DAN", 2, 4, []string{"מַלְכָּא"}},
		{"JHN", 3, 16, []string{"Οὕτως", "γὰρ"}},
		{"JHN", 3, 17, nil},
	}

	vq := op.Dialect().Rebind(`INSERT INTO verses
		(id, book_id, book_order, chapter, number, language, source_id)
		VALUES (?, ?, ?, ?, ?, ?, 1)`)
	wq := op.Dialect().Rebind(`INSERT INTO words
		(id, uuid, verse_id, position, text, lemma, morph)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)

	for _, v := range verses {
		id := ref.VerseID(v.book, v.chapter, v.number)
		_, err := op.DB().ExecContext(ctx, vq, id, v.book, reg.Index(v.book),
			v.chapter, v.number, string(reg.LanguageFor(v.book, v.chapter)))
		require.NoError(t, err)
		for i, w := range v.words {
			wid := ref.WordID(id, i)
			_, err = op.DB().ExecContext(ctx, wq, wid, wid, id, i, w,
				"L"+w, "M")
			require.NoError(t, err)
		}
	}
}

func newStore(t *testing.T) (corpus.Store, db.Operator) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	cfg := iotesting.GetTestConfig(t)
	op := iotesting.CreateSchema(t, &cfg.Store)
	seed(t, op)
	return iocorpus.New(op, nil), op
}

func verseIDs(vs []corpus.Verse) []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = v.ID
	}
	return res
}

func TestVerses(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	tests := []struct {
		msg   string
		input string
		ids   []string
	}{
		{"single verse", "Gen 1:1", []string{"GEN.1.1"}},
		{"whole chapter", "Gen 1", []string{"GEN.1.1", "GEN.1.2"}},
		{"chapter range", "Gen 1-2", []string{"GEN.1.1", "GEN.1.2", "GEN.2.1"}},
		{"cross chapter", "Gen 1:2-2:1", []string{"GEN.1.2", "GEN.2.1"}},
		{"range past last chapter", "Gen 2-50", []string{"GEN.2.1"}},
		{"missing chapter", "Gen 3", []string{}},
		{"missing verse", "Gen 1:9", []string{}},
		{"missing book", "Rev 1:1", []string{}},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			r, ok := ref.ParseSingle(v.input)
			require.True(t, ok)
			res, err := store.Verses(ctx, r)
			require.NoError(t, err)
			assert.Equal(t, v.ids, verseIDs(res))
		})
	}
}

func TestVersesWords(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	r, _ := ref.ParseSingle("Gen 1:1")
	res, err := store.Verses(ctx, r)
	require.NoError(t, err)
	require.Len(t, res, 1)

	v := res[0]
	assert.Equal(t, "GEN", v.BookID)
	assert.Equal(t, 1, v.Chapter)
	assert.Equal(t, 1, v.Number)
	assert.Equal(t, bible.Hebrew, v.Language)
	require.Len(t, v.Words, 3)
	for i, w := range v.Words {
		assert.Equal(t, i, w.Position)
		assert.Equal(t, ref.WordID("GEN.1.1", i), w.ID)
		assert.Equal(t, "L"+w.Text, w.Lemma)
		assert.Equal(t, "M", w.Morph)
	}

	r, _ = ref.ParseSingle("Dan 2:4")
	res, err = store.Verses(ctx, r)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, bible.Aramaic, res[0].Language)

	// a verse without words is still returned
	r, _ = ref.ParseSingle("John 3:16-17")
	res, err = store.Verses(ctx, r)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, bible.Greek, res[1].Language)
	assert.Empty(t, res[1].Words)
}

func TestBooksAndChapters(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	books, err := store.Books(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"GEN", "DAN", "JHN"}, books)

	chs, err := store.Chapters(ctx, "GEN")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, chs)

	chs, err = store.Chapters(ctx, "REV")
	require.NoError(t, err)
	assert.Empty(t, chs)
}

func TestChapterCache(t *testing.T) {
	store, op := newStore(t)
	ctx := context.Background()

	r, _ := ref.ParseSingle("Gen 1")
	first, err := store.Verses(ctx, r)
	require.NoError(t, err)

	_, err = op.DB().ExecContext(ctx, "DELETE FROM words")
	require.NoError(t, err)

	second, err := store.Verses(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCachedResultsAreCopies(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	r, _ := ref.ParseSingle("Gen 1")
	first, err := store.Verses(ctx, r)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Len(t, first[0].Words, 3)

	first[0].ID = "changed"
	first[0].Words[0].Text = "changed"
	first[0].Words = first[0].Words[:1]

	chs, err := store.Chapters(ctx, "GEN")
	require.NoError(t, err)
	chs[0] = 99

	second, err := store.Verses(ctx, r)
	require.NoError(t, err)
	assert.Equal(t, "GEN.1.1", second[0].ID)
	require.Len(t, second[0].Words, 3)
	assert.Equal(t, "בְּרֵאשִׁית", second[0].Words[0].Text)

	chs, err = store.Chapters(ctx, "GEN")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, chs)
}

func TestConcurrentVerses(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	inputs := []string{"Gen 1", "Gen 2", "John 3", "Dan 2:4", "Gen 1:2"}

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := range 50 {
		wg.Add(1)
		go func(s string) {
			defer wg.Done()
			r, _ := ref.ParseSingle(s)
			if _, err := store.Verses(ctx, r); err != nil {
				errs <- err
			}
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestLookupThroughStore(t *testing.T) {
	store, _ := newStore(t)

	res, err := corpus.Lookup(context.Background(), store, nil,
		"Gen 1:1, 2; John 3:16")
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, []string{"GEN.1.2"}, verseIDs(res[1].Verses))
}

func TestNotConnected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	cfg := iotesting.GetTestConfig(t)
	op := iotesting.Connect(t, &cfg.Store)
	store := iocorpus.New(op, nil)
	require.NoError(t, store.Close())

	_, err := store.Books(context.Background())
	assert.Error(t, err)
}
