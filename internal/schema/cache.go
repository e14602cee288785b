package schema

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/sync/singleflight"
)

// compileCache holds compiled ruleset schemas for the life of the process.
// Concurrent requests for the same key share one compile. Failed compiles
// are not cached.
type compileCache struct {
	entries sync.Map
	group   singleflight.Group
}

var compiled = &compileCache{}

func (c *compileCache) get(key string, compile func() (*jsonschema.Schema, error)) (*jsonschema.Schema, error) {
	if v, ok := c.entries.Load(key); ok {
		return v.(*jsonschema.Schema), nil
	}
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.entries.Load(key); ok {
			return v, nil
		}
		s, err := compile()
		if err != nil {
			return nil, err
		}
		c.entries.Store(key, s)
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*jsonschema.Schema), nil
}
