package ioimport_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/jimiaki7/gegraptai/internal/iocorpus"
	"github.com/jimiaki7/gegraptai/internal/ioimport"
	"github.com/jimiaki7/gegraptai/internal/iotesting"
	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/jimiaki7/gegraptai/pkg/errcode"
	"github.com/jimiaki7/gegraptai/pkg/ref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const johnSample = `040316 C- -------- Οὕτως Οὕτως οὕτως οὕτως
040316 C- -------- γὰρ γάρ γάρ γάρ
040316 V- 3AAI-S-- ἠγάπησεν ἠγάπησεν ἠγάπησε(ν) ἀγαπάω
040317 C- -------- οὐ οὐ οὐ οὐ
`

const danielSample = `<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
<chapter osisID="Dan.2">
<verse osisID="Dan.2.4">
<w lemma="1696" morph="oshm:HVpw3mp">וַיְדַבְּר֧וּ</w>
<w lemma="c/4430" morph="oshm:AC/Ncmsd">מַלְכָּא</w>
</verse>
</chapter>
<chapter osisID="Dan.8">
<verse osisID="Dan.8.1">
<w lemma="b/8141" morph="oshm:HR/Ncfsc">בִּ/שְׁנַ֣ת</w>
</verse>
</chapter>
</osis>
`

type fixture struct {
	cfg *config.Config
	op  db.Operator
	dir string
}

func setup(t *testing.T, sourcesYAML string) fixture {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	cfg := iotesting.GetTestConfig(t)
	op := iotesting.CreateSchema(t, &cfg.Store)
	dir := filepath.Join(cfg.HomeDir, "texts")

	iotesting.WriteFile(t, config.ConfigDir(cfg.HomeDir), "sources.yaml",
		fmt.Sprintf(sourcesYAML, dir, dir))
	return fixture{cfg: cfg, op: op, dir: dir}
}

const twoSources = `sources:
  - id: 1
    format: oshb
    path: %s/oshb/*.xml
    title: Westminster Leningrad Codex
  - id: 2
    format: morphgnt
    path: %s/gnt/*-morphgnt.txt
    title: SBL Greek New Testament
`

func countRows(t *testing.T, op db.Operator, table string) int {
	t.Helper()
	var res int
	err := op.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&res)
	require.NoError(t, err)
	return res
}

func TestImport(t *testing.T) {
	fx := setup(t, twoSources)
	iotesting.WriteFile(t, filepath.Join(fx.dir, "oshb"), "Dan.xml", danielSample)
	iotesting.WriteFile(t, filepath.Join(fx.dir, "gnt"), "64-Jn-morphgnt.txt",
		johnSample)

	ctx := context.Background()
	im := ioimport.New(fx.op, nil)
	require.NoError(t, im.Import(ctx, fx.cfg))

	assert.Equal(t, 4, countRows(t, fx.op, "verses"))
	assert.Equal(t, 7, countRows(t, fx.op, "words"))
	assert.Equal(t, 2, countRows(t, fx.op, "import_runs"))

	store := iocorpus.New(fx.op, nil)
	books, err := store.Books(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"DAN", "JHN"}, books)

	tests := []struct {
		input string
		ids   []string
		lang  bible.Language
	}{
		{"Dan 2:4", []string{"DAN.2.4"}, bible.Aramaic},
		{"Dan 8:1", []string{"DAN.8.1"}, bible.Hebrew},
		{"John 3:16-17", []string{"JHN.3.16", "JHN.3.17"}, bible.Greek},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := ref.ParseSingle(tt.input)
			require.True(t, ok)
			vs, err := store.Verses(ctx, r)
			require.NoError(t, err)
			require.Len(t, vs, len(tt.ids))
			for i, v := range vs {
				assert.Equal(t, tt.ids[i], v.ID)
				assert.Equal(t, tt.lang, v.Language)
			}
		})
	}

	r, _ := ref.ParseSingle("John 3:16")
	vs, err := store.Verses(ctx, r)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	require.Len(t, vs[0].Words, 3)
	assert.Equal(t, "JHN.3.16.2", vs[0].Words[2].ID)
	assert.Equal(t, "ἠγάπησεν", vs[0].Words[2].Text)
	assert.Equal(t, "ἀγαπάω", vs[0].Words[2].Lemma)
	assert.Equal(t, "V- 3AAI-S--", vs[0].Words[2].Morph)
}

func TestImportWordUUID(t *testing.T) {
	fx := setup(t, twoSources)
	iotesting.WriteFile(t, filepath.Join(fx.dir, "gnt"), "64-Jn-morphgnt.txt",
		johnSample)

	fx.cfg.Update([]config.Option{config.OptImportSourceIDs([]int{2})})
	require.NoError(t, ioimport.New(fx.op, nil).Import(context.Background(), fx.cfg))

	var id, uuid string
	err := fx.op.DB().QueryRow(
		"SELECT id, uuid FROM words WHERE id = 'JHN.3.16.0'",
	).Scan(&id, &uuid)
	require.NoError(t, err)
	assert.Len(t, uuid, 36)
	assert.NotEqual(t, id, uuid)
}

func TestImportUnchangedSkipped(t *testing.T) {
	fx := setup(t, twoSources)
	path := iotesting.WriteFile(t, filepath.Join(fx.dir, "gnt"),
		"64-Jn-morphgnt.txt", johnSample)
	fx.cfg.Update([]config.Option{config.OptImportSourceIDs([]int{2})})

	ctx := context.Background()
	im := ioimport.New(fx.op, nil)
	require.NoError(t, im.Import(ctx, fx.cfg))

	runID := func() string {
		var res string
		err := fx.op.DB().QueryRow(
			"SELECT id FROM import_runs WHERE file = ?", path,
		).Scan(&res)
		require.NoError(t, err)
		return res
	}
	first := runID()

	require.NoError(t, im.Import(ctx, fx.cfg))
	assert.Equal(t, first, runID(), "unchanged file is skipped")

	fx.cfg.Update([]config.Option{config.OptImportForce(true)})
	require.NoError(t, im.Import(ctx, fx.cfg))
	assert.NotEqual(t, first, runID(), "force re-imports")
	assert.Equal(t, 4, countRows(t, fx.op, "words"))
}

func TestImportReplacesWords(t *testing.T) {
	fx := setup(t, twoSources)
	fx.cfg.Update([]config.Option{config.OptImportSourceIDs([]int{2})})
	gnt := filepath.Join(fx.dir, "gnt")
	iotesting.WriteFile(t, gnt, "64-Jn-morphgnt.txt", johnSample)

	ctx := context.Background()
	im := ioimport.New(fx.op, nil)
	require.NoError(t, im.Import(ctx, fx.cfg))
	assert.Equal(t, 4, countRows(t, fx.op, "words"))

	iotesting.WriteFile(t, gnt, "64-Jn-morphgnt.txt",
		"040316 C- -------- Οὕτως Οὕτως οὕτως οὕτως\n")
	require.NoError(t, im.Import(ctx, fx.cfg))

	// JHN.3.17 came from the previous version of the file and stays
	assert.Equal(t, 2, countRows(t, fx.op, "words"))
	assert.Equal(t, 2, countRows(t, fx.op, "verses"))
}

func TestImportSmallBatches(t *testing.T) {
	fx := setup(t, twoSources)
	fx.cfg.Update([]config.Option{
		config.OptImportSourceIDs([]int{2}),
		config.OptStoreBatchSize(2),
	})
	iotesting.WriteFile(t, filepath.Join(fx.dir, "gnt"), "64-Jn-morphgnt.txt",
		johnSample)

	require.NoError(t, ioimport.New(fx.op, nil).Import(context.Background(), fx.cfg))
	assert.Equal(t, 4, countRows(t, fx.op, "words"))
}

func TestImportFailures(t *testing.T) {
	t.Run("all sources failed", func(t *testing.T) {
		fx := setup(t, twoSources)
		iotesting.WriteFile(t, filepath.Join(fx.dir, "gnt"),
			"64-Jn-morphgnt.txt", "not a morphgnt line\n")

		err := ioimport.New(fx.op, nil).Import(context.Background(), fx.cfg)
		require.Error(t, err)
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.ImportAllSourcesFailedError, gnErr.Code)
	})

	t.Run("one source failed", func(t *testing.T) {
		fx := setup(t, twoSources)
		iotesting.WriteFile(t, filepath.Join(fx.dir, "gnt"),
			"64-Jn-morphgnt.txt", johnSample)
		iotesting.WriteFile(t, filepath.Join(fx.dir, "oshb"), "Bad.xml",
			`<osis><verse osisID="Xyz.1.1"><w>א</w></verse></osis>`)

		err := ioimport.New(fx.op, nil).Import(context.Background(), fx.cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, countRows(t, fx.op, "verses"))
	})

	t.Run("unknown source id", func(t *testing.T) {
		fx := setup(t, twoSources)
		fx.cfg.Update([]config.Option{config.OptImportSourceIDs([]int{9})})

		err := ioimport.New(fx.op, nil).Import(context.Background(), fx.cfg)
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.ImportNoSourcesError, gnErr.Code)
	})

	t.Run("cancelled", func(t *testing.T) {
		fx := setup(t, twoSources)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := ioimport.New(fx.op, nil).Import(ctx, fx.cfg)
		var gnErr *gn.Error
		require.ErrorAs(t, err, &gnErr)
		assert.Equal(t, errcode.ImportCancelledError, gnErr.Code)
	})
}
