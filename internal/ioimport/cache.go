package ioimport

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
	"github.com/zeebo/blake3"
)

// fingerprint returns the BLAKE3 hex digest of a file content.
func fingerprint(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// docCache keeps decoded documents as gob files named by the fingerprint
// of their source file.
type docCache struct {
	dir string
}

func newDocCache(dir string) *docCache {
	return &docCache{dir: dir}
}

func (c *docCache) path(fp string) string {
	return filepath.Join(c.dir, fp+".gob")
}

// get returns the cached document or nil when there is none. A cache
// entry that cannot be decoded is treated as missing.
func (c *docCache) get(fp string) *document {
	data, err := os.ReadFile(c.path(fp))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Cannot read cached source", "fingerprint", fp,
				"error", err)
		}
		return nil
	}

	var res document
	enc := gnfmt.GNgob{}
	if err = enc.Decode(data, &res); err != nil {
		slog.Warn("Cannot decode cached source", "fingerprint", fp,
			"error", err)
		return nil
	}
	return &res
}

func (c *docCache) put(fp string, doc *document) error {
	if err := gnsys.MakeDir(c.dir); err != nil {
		return CacheError(c.dir, err)
	}

	enc := gnfmt.GNgob{}
	data, err := enc.Encode(doc)
	if err != nil {
		return CacheError(c.dir, err)
	}

	if err = os.WriteFile(c.path(fp), data, 0644); err != nil {
		return CacheError(c.dir, err)
	}
	return nil
}
