package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/odatatools/edm"
	"github.com/erraggy/odatatools/uri"
)

// requestInput represents the two ways a request shape can be provided to a
// tool. Exactly one of File or Content must be set.
type requestInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML request shape file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline YAML request shape content"`
}

// resolve loads the request from whichever input was provided.
func (r requestInput) resolve() (uri.Request, error) {
	switch {
	case r.File != "" && r.Content != "":
		return uri.Request{}, fmt.Errorf("exactly one of file or content must be provided for the request")
	case r.File != "":
		return uri.LoadRequestFile(r.File)
	case r.Content != "":
		if int64(len(r.Content)) > cfg.MaxInlineSize {
			return uri.Request{}, fmt.Errorf("inline request content size %d bytes exceeds maximum %d bytes; use file input instead, or set ODATATOOLS_MAX_INLINE_SIZE to increase",
				len(r.Content), cfg.MaxInlineSize)
		}
		return uri.LoadRequest([]byte(r.Content))
	default:
		return uri.Request{}, fmt.Errorf("exactly one of file or content must be provided for the request")
	}
}

// metadataInput represents the ways a metadata model can be provided to a
// tool. At most one of File or Content may be set; when neither is set, the
// server-level default (ODATATOOLS_METADATA_FILE) applies.
type metadataInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML metadata document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline YAML metadata document content"`
}

// cacheEntry holds a cached compiled model with LRU ordering and TTL expiry.
type cacheEntry struct {
	model     *edm.Model
	insertAt  time.Time
	expiresAt time.Time
}

// modelCacheStore provides a session-scoped cache for compiled metadata
// models loaded from files. Entries are keyed by (absolutePath, modTime) so a
// changed file is re-read automatically. A background sweeper removes expired
// entries.
type modelCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var modelCache = &modelCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached model or nil. Expired entries are lazily removed.
func (c *modelCacheStore) get(key string) *edm.Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.model
	}
	return nil
}

// put stores a model, evicting the oldest entry if at capacity.
func (c *modelCacheStore) put(key string, model *edm.Model, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{model: model, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *modelCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes
// expired entries. Safe to call multiple times; only the first call spawns a
// sweeper. It stops when ctx is cancelled.
func (c *modelCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *modelCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *modelCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeModelCacheKey creates a cache key for a metadata file path.
func makeModelCacheKey(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	info, err := os.Stat(absPath)
	if err != nil {
		return "" // Can't stat, don't cache.
	}
	return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
}

// loadModelFile loads and compiles a metadata file, using the cache when
// enabled.
func loadModelFile(path string) (*edm.Model, error) {
	var key string
	if cfg.CacheEnabled {
		key = makeModelCacheKey(path)
		if key != "" {
			if cached := modelCache.get(key); cached != nil {
				return cached, nil
			}
		}
	}

	model, err := edm.LoadModelFile(path)
	if err != nil {
		return nil, err
	}

	if key != "" {
		modelCache.put(key, model, cfg.CacheFileTTL)
	}
	return model, nil
}

// resolve loads the metadata model, falling back to the configured default
// metadata file. Returns nil when no metadata source is available: validation
// without a schema is legal for paths that do not invoke operations.
func (m metadataInput) resolve() (*edm.Model, error) {
	switch {
	case m.File != "" && m.Content != "":
		return nil, fmt.Errorf("at most one of file or content may be provided for metadata")
	case m.File != "":
		return loadModelFile(m.File)
	case m.Content != "":
		if int64(len(m.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline metadata content size %d bytes exceeds maximum %d bytes; use file input instead, or set ODATATOOLS_MAX_INLINE_SIZE to increase",
				len(m.Content), cfg.MaxInlineSize)
		}
		return edm.LoadModel([]byte(m.Content))
	case cfg.MetadataFile != "":
		return loadModelFile(cfg.MetadataFile)
	default:
		return nil, nil
	}
}
