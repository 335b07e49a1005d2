package lookup

import (
	"sync"

	"github.com/oxhq/mrdocs/internal/info"
	"github.com/oxhq/mrdocs/internal/symbolid"
)

// cache is the two-level (context id, name string) lookup cache from
// spec.md 4.D: each slot stores either a resolved Info or a negative
// result (nil Info, non-nil error), so a repeat failed lookup costs one map
// probe instead of a re-parse and re-walk.
type cache struct {
	mu    sync.RWMutex
	outer map[symbolid.ID]map[string]entry
}

type entry struct {
	info *info.Info
	err  error
}

func newCache() *cache {
	return &cache{outer: make(map[symbolid.ID]map[string]entry)}
}

func (c *cache) get(context symbolid.ID, name string) (hit bool, result *info.Info, err error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	inner, ok := c.outer[context]
	if !ok {
		return false, nil, nil
	}
	e, ok := inner[name]
	if !ok {
		return false, nil, nil
	}
	return true, e.info, e.err
}

func (c *cache) put(context symbolid.ID, name string, result *info.Info, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	inner, ok := c.outer[context]
	if !ok {
		inner = make(map[string]entry)
		c.outer[context] = inner
	}
	inner[name] = entry{info: result, err: err}
}
