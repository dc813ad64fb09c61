package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"csskit/internal/diag"
	"csskit/internal/source"
	"csskit/internal/version"
)

// Bump when CheckPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 cache key.
type Digest [32]byte

// CacheKey hashes the tool fingerprint, salt (parse options) and content.
func CacheKey(content []byte, salt string) Digest {
	h := sha256.New()
	_, _ = h.Write([]byte(version.Fingerprint()))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(salt))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(content)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// DiskCache stores check results under $XDG_CACHE_HOME/<app>. It is safe for
// concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiagnostic is a diagnostic without its file id.
type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

// CheckPayload is what CheckPaths remembers per input.
type CheckPayload struct {
	Schema      uint16
	OK          bool
	Nodes       int
	Diagnostics []CachedDiagnostic
}

// OpenDiskCache creates the cache directory if needed.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cache dir: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache uses dir as is.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	name := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "check", name[:2], name+".mp")
}

// Put writes payload atomically.
func (c *DiskCache) Put(key Digest, payload *CheckPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get reads the payload for key. A missing entry or one written by another
// schema version is a miss.
func (c *DiskCache) Get(key Digest, out *CheckPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

func toCached(items []diag.Diagnostic) []CachedDiagnostic {
	out := make([]CachedDiagnostic, len(items))
	for i, d := range items {
		out[i] = CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
	}
	return out
}

func fromCached(bag *diag.Bag, file source.FileID, items []CachedDiagnostic) {
	for _, d := range items {
		bag.Add(diag.New(diag.Severity(d.Severity), diag.Code(d.Code),
			source.Span{File: file, Start: d.Start, End: d.End}, d.Message))
	}
}
