package cli

import (
	"github.com/julianstephens/punchlog/internal/cache"
	"github.com/julianstephens/punchlog/internal/config"
)

// Context carries the shared command dependencies resolved in main.
type Context struct {
	ConfigPath string
	CachePath  string
	Config     config.Config
	Cache      cache.Store
	Debug      bool
}

// openCache initializes the cache backend, shared by the commands that
// touch cached state.
func (c *Context) openCache() error {
	return c.Cache.Init()
}
