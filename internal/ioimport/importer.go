// Package ioimport implements the Importer interface. It reads MorphGNT
// and OSHB source files listed in sources.yaml and writes their verses
// and words to the corpus store.
package ioimport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/jimiaki7/gegraptai/internal/iosources"
	"github.com/jimiaki7/gegraptai/pkg/bible"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/jimiaki7/gegraptai/pkg/db"
	"github.com/jimiaki7/gegraptai/pkg/lifecycle"
	"github.com/jimiaki7/gegraptai/pkg/sources"
	"github.com/ulikunitz/xz"
	"golang.org/x/sync/errgroup"
)

type importer struct {
	op  db.Operator
	reg *bible.Registry
}

// sourceFile is one file of a source after decoding.
type sourceFile struct {
	path        string
	fingerprint string
	// skipped is true when the file did not change since the last import.
	skipped bool
	doc     *document
}

// summary counts the outcome of a source import.
type summary struct {
	files   int
	skipped int
	verses  int
	words   int
}

// New creates an Importer writing through the operator. A nil registry
// means the default book registry.
func New(op db.Operator, reg *bible.Registry) lifecycle.Importer {
	if reg == nil {
		reg = bible.Default()
	}
	return &importer{op: op, reg: reg}
}

// Import loads sources.yaml, selects the sources given by
// cfg.Import.SourceIDs and imports them one by one. A failed source does
// not stop the others, an error is returned only when all of them fail.
func (im *importer) Import(ctx context.Context, cfg *config.Config) error {
	if im.op.DB() == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting corpus import")

	sourcesConfig, err := iosources.New(cfg).Load()
	if err != nil {
		return err
	}

	selected := sources.Select(sourcesConfig.Sources, cfg.Import.SourceIDs)
	if len(selected) == 0 {
		return NoSourcesError(cfg.Import.SourceIDs)
	}

	return im.processSources(ctx, cfg, selected, startTime)
}

func (im *importer) processSources(
	ctx context.Context,
	cfg *config.Config,
	selected []sources.SourceConfig,
	startTime time.Time,
) error {
	successCount := 0
	errorCount := 0

	for i, src := range selected {
		sourceStartTime := time.Now()

		fmt.Println()
		fmt.Println(strings.Repeat("─", 60))
		gn.Info(fmt.Sprintf("Source [%d]: %s", src.ID, src.Label()))
		fmt.Println(strings.Repeat("─", 60))

		slog.Info("Processing source",
			"index", i+1,
			"total", len(selected),
			"source_id", src.ID,
			"format", src.Format,
		)

		select {
		case <-ctx.Done():
			return CancelledError(ctx.Err())
		default:
		}

		sum, err := im.processSource(ctx, cfg, src)
		if err != nil {
			errorCount++
			slog.Error("Failed to import source",
				"source_id", src.ID,
				"error", err,
			)
			gn.PrintErrorMessage(err)
			continue
		}

		successCount++
		sourceDuration := time.Since(sourceStartTime)
		slog.Info("Source imported",
			"source_id", src.ID,
			"files", sum.files,
			"skipped", sum.skipped,
			"verses", sum.verses,
			"words", sum.words,
			"duration", gnfmt.TimeString(sourceDuration.Seconds()),
		)
		gn.Info(fmt.Sprintf(
			"Imported %s verses, %s words from %d files (%d unchanged) in %s",
			humanize.Comma(int64(sum.verses)),
			humanize.Comma(int64(sum.words)),
			sum.files,
			sum.skipped,
			gnfmt.TimeString(sourceDuration.Seconds()),
		))
	}

	totalDuration := time.Since(startTime)
	slog.Info("Import complete",
		"success", successCount,
		"errors", errorCount,
		"total", len(selected),
		"duration", gnfmt.TimeString(totalDuration.Seconds()),
	)
	gn.Info(`Import complete
Sources succeeded: %d, failed %d, total %d.
		Elapsed time: <em>%s</em>
`,
		successCount,
		errorCount,
		len(selected),
		gnfmt.TimeString(totalDuration.Seconds()),
	)

	if errorCount > 0 && successCount == 0 {
		return AllSourcesFailedError(errorCount)
	}

	if errorCount > 0 {
		slog.Warn("Some sources failed to import",
			"failed", errorCount,
			"succeeded", successCount)
	}
	return nil
}

// processSource decodes all files of a source concurrently and then
// writes them one transaction per file.
func (im *importer) processSource(
	ctx context.Context,
	cfg *config.Config,
	src sources.SourceConfig,
) (summary, error) {
	var res summary

	paths, err := iosources.Files(src)
	if err != nil {
		return res, err
	}
	if len(paths) == 0 {
		return res, iosources.SourcesNoFilesError(src.ID, src.Path)
	}

	files, err := im.decodeFiles(ctx, cfg, src, paths)
	if err != nil {
		return res, err
	}

	runID := uuid.NewString()
	batchSize := wordsBatchSize(im.op.Dialect(), cfg.Store.BatchSize)
	for _, f := range files {
		res.files++
		if f.skipped {
			res.skipped++
			slog.Info("File unchanged, skipping", "file", f.path)
			continue
		}

		if err = im.write(ctx, src.ID, runID, batchSize, f); err != nil {
			return res, err
		}
		res.verses += len(f.doc.Verses)
		res.words += f.doc.wordCount()
		slog.Debug("File imported", "file", f.path, "run_id", runID,
			"verses", len(f.doc.Verses))
	}
	return res, nil
}

func (im *importer) decodeFiles(
	ctx context.Context,
	cfg *config.Config,
	src sources.SourceConfig,
	paths []string,
) ([]*sourceFile, error) {
	res := make([]*sourceFile, len(paths))
	cache := newDocCache(config.SourcesCacheDir(cfg.HomeDir))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.JobsNumber))
	for i, path := range paths {
		g.Go(func() error {
			f, err := im.decodeFile(ctx, cfg, src, cache, path)
			if err != nil {
				return err
			}
			res[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *importer) decodeFile(
	ctx context.Context,
	cfg *config.Config,
	src sources.SourceConfig,
	cache *docCache,
	path string,
) (*sourceFile, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	res := &sourceFile{path: path, fingerprint: fingerprint(data)}
	if !cfg.Import.Force &&
		im.lastFingerprint(ctx, src.ID, path) == res.fingerprint {
		res.skipped = true
		return res, nil
	}

	if doc := cache.get(res.fingerprint); doc != nil && doc.Format == src.Format {
		res.doc = doc
		return res, nil
	}

	res.doc, err = im.decode(src.Format, path, data)
	if err != nil {
		return nil, err
	}

	if err = cache.put(res.fingerprint, res.doc); err != nil {
		slog.Warn("Cannot cache decoded source", "file", path, "error", err)
	}
	return res, nil
}

// decode picks the reader for the source format. Files with the .xz
// suffix are decompressed first.
func (im *importer) decode(
	format sources.Format,
	path string,
	data []byte,
) (*document, error) {
	var r io.Reader = bytes.NewReader(data)
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, ReadError(path, err)
		}
		r = xr
	}

	switch format {
	case sources.MorphGNT:
		return decodeMorphGNT(path, r)
	case sources.OSHB:
		return decodeOSHB(path, r, im.reg)
	default:
		return nil, FormatError(path, 0, "unknown format "+string(format))
	}
}
