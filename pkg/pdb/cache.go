package pdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/seekerror/logw"
)

// metaSuffix names the sidecar file Save writes next to every cache
// entry, recording the uncompressed length and content hash so a later
// process can call LoadCached without already knowing what it expects to
// find.
const metaSuffix = ".meta"

// Cache persists a built pattern database to disk, keyed by a short name
// identifying the pattern/metric/size, and guards against corruption or
// version skew with a content hash rather than trusting the file
// (spec section 4.3.4, section 7 "cache corruption: rebuild silently").
type Cache struct {
	dir      string
	compress bool
}

// Option configures a Cache.
type Option func(*Cache)

// WithCacheDir overrides the cache directory (default: the OS user
// cache directory, under "slide-pdb").
func WithCacheDir(dir string) Option {
	return func(c *Cache) { c.dir = dir }
}

// WithCompression enables zstd compression of cached PDB files.
func WithCompression() Option {
	return func(c *Cache) { c.compress = true }
}

// NewCache builds a Cache with the given options applied over the
// defaults.
func NewCache(opts ...Option) *Cache {
	dir, _ := os.UserCacheDir()
	c := &Cache{dir: filepath.Join(dir, "slide-pdb")}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Hash returns the cache-integrity hash of a PDB byte array.
func Hash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Load reads and verifies the cached PDB under key. Any failure --
// missing file, decompression error, length mismatch, hash mismatch --
// is reported as ok=false; the caller should rebuild. All but a missing
// file are also logged.
func (c *Cache) Load(ctx context.Context, key string, wantLen int, wantHash uint64) (data []byte, ok bool) {
	path := filepath.Join(c.dir, key)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	data, err = c.decompress(raw)
	if err != nil {
		logw.Infof(ctx, "pdb cache %v: decompress failed, rebuilding: %v", key, err)
		return nil, false
	}
	if len(data) != wantLen {
		logw.Infof(ctx, "pdb cache %v: length mismatch (got %d, want %d), rebuilding", key, len(data), wantLen)
		return nil, false
	}
	if Hash(data) != wantHash {
		logw.Infof(ctx, "pdb cache %v: hash mismatch, rebuilding", key)
		return nil, false
	}
	return data, true
}

// LoadCached reads the length and hash Save recorded alongside key, then
// verifies the cached PDB against them. It reports ok=false whenever the
// sidecar is missing, unparseable, or Load itself rejects the file -- in
// every case the caller should rebuild and Save again.
func (c *Cache) LoadCached(ctx context.Context, key string) (data []byte, ok bool) {
	raw, err := os.ReadFile(filepath.Join(c.dir, key+metaSuffix))
	if err != nil {
		return nil, false
	}

	var wantLen int
	var wantHash uint64
	if _, err := fmt.Sscanf(string(raw), "%d %x", &wantLen, &wantHash); err != nil {
		logw.Infof(ctx, "pdb cache %v: corrupt sidecar, rebuilding: %v", key, err)
		return nil, false
	}

	return c.Load(ctx, key, wantLen, wantHash)
}

// Save writes data under key, compressing it first if configured, plus a
// sidecar recording its length and hash for a later LoadCached. Both
// writes are atomic: each goes to a temp file and is renamed over the
// final path.
func (c *Cache) Save(ctx context.Context, key string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("pdb: cache dir: %w", err)
	}

	out, err := c.compressBytes(data)
	if err != nil {
		return err
	}

	path := filepath.Join(c.dir, key)
	if err := writeAtomic(path, out); err != nil {
		return fmt.Errorf("pdb: write cache: %w", err)
	}

	meta := fmt.Sprintf("%d %x", len(data), Hash(data))
	if err := writeAtomic(path+metaSuffix, []byte(meta)); err != nil {
		return fmt.Errorf("pdb: write cache sidecar: %w", err)
	}

	logw.Infof(ctx, "pdb cache %v: wrote %d bytes (%d on disk)", key, len(data), len(out))
	return nil
}

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (c *Cache) compressBytes(data []byte) ([]byte, error) {
	if !c.compress {
		return data, nil
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("pdb: zstd writer: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func (c *Cache) decompress(raw []byte) ([]byte, error) {
	if !c.compress {
		return raw, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(raw, nil)
}
