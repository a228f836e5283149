package indexsystem

import (
	"path/filepath"
	"sync"

	"github.com/dreampiggy/indexstore-db/src/index-lib/model"
)

// CanonicalPathCache interns normalized path values. One instance is shared by
// the visibility checker, the path sub-index, and the datastore so that all of
// them key their tables identically.
type CanonicalPathCache struct {
	pathsMu sync.RWMutex
	paths   map[string]model.CanonicalFilePath
}

// NewCanonicalPathCache creates an empty cache.
func NewCanonicalPathCache() *CanonicalPathCache {
	return &CanonicalPathCache{
		paths: make(map[string]model.CanonicalFilePath),
	}
}

// GetCanonicalPath returns the canonical form of raw, caching the result.
func (c *CanonicalPathCache) GetCanonicalPath(raw string) model.CanonicalFilePath {
	c.pathsMu.RLock()
	cached, ok := c.paths[raw]
	c.pathsMu.RUnlock()
	if ok {
		return cached
	}

	canon := canonicalize(raw)
	c.pathsMu.Lock()
	c.paths[raw] = canon
	c.pathsMu.Unlock()
	return canon
}

func canonicalize(raw string) model.CanonicalFilePath {
	if raw == "" {
		return model.CanonicalFilePath{}
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		abs = filepath.Clean(raw)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return model.NewCanonicalFilePath(abs)
}
