package buttonstate

import "sync"

// MemoryProgramCache is an in-memory ProgramCache safe for concurrent use, so
// one cache can back every button on a page.
type MemoryProgramCache struct {
	mu       sync.RWMutex
	programs map[string]any
}

// NewMemoryProgramCache constructs an empty cache.
func NewMemoryProgramCache() *MemoryProgramCache {
	return &MemoryProgramCache{programs: map[string]any{}}
}

func (c *MemoryProgramCache) Get(key string) (any, bool) {
	c.mu.RLock()
	program, ok := c.programs[key]
	c.mu.RUnlock()
	return program, ok
}

func (c *MemoryProgramCache) Set(key string, value any) {
	c.mu.Lock()
	if c.programs == nil {
		c.programs = map[string]any{}
	}
	c.programs[key] = value
	c.mu.Unlock()
}

// Len returns the number of cached programs.
func (c *MemoryProgramCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.programs)
}
