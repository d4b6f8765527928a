// Package analysis holds the in-memory result slot shared across
// screens.
package analysis

import (
	"sync"

	"github.com/farmlook/farmlook/internal/model"
)

// Cache is a single mutable slot for the most recent analysis result.
// A new analysis overwrites the previous one unconditionally; there is
// no history. The zero value is ready to use.
type Cache struct {
	mu      sync.Mutex
	current *model.AnalysisResult
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Set stores result as the current slot value, latest wins.
func (c *Cache) Set(result model.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &result
}

// Clear empties the slot.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

// Current returns the slot value. The second return reports whether a
// result is present; screens reached without one must render an error
// state rather than re-fetch.
func (c *Cache) Current() (model.AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return model.AnalysisResult{}, false
	}
	return *c.current, true
}
