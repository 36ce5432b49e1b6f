package registry

import (
	"sync"

	"github.com/reglet-dev/reglet-nav-sdk/menu/values"
)

// Context tracks the navigation coordinates of one logical request: which
// owner, top-level code, and side code should render as active. It is
// request-scoped by design; never share one Context between requests and
// never store it alongside the registry.
type Context struct {
	mu       sync.Mutex
	owner    string
	mainCode string
	side     values.ActiveSideRef
}

// NewContext creates an empty context with nothing active.
func NewContext() *Context {
	return &Context{side: values.NoActiveSide()}
}

// Set marks a top-level entry active with no active side entry.
func (c *Context) Set(owner, mainCode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owner = owner
	c.mainCode = mainCode
	c.side = values.NoActiveSide()
}

// SetWithSide marks a top-level entry and one of its side entries active.
func (c *Context) SetWithSide(owner, mainCode, sideCode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owner = owner
	c.mainCode = mainCode
	c.side = values.ExplicitSide(sideCode)
}

// SetMatchFirst marks a top-level entry active and arms the one-shot
// "first side entry checked wins" marker.
func (c *Context) SetMatchFirst(owner, mainCode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owner = owner
	c.mainCode = mainCode
	c.side = values.MatchFirstSide()
}

// Owner returns the active owner.
func (c *Context) Owner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owner
}

// MainCode returns the active top-level code.
func (c *Context) MainCode() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mainCode
}

// Side returns the active side entry reference.
func (c *Context) Side() values.ActiveSideRef {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.side
}

// consumeMatchFirst reports whether the one-shot marker was armed and
// disarms it. The first side-active check consumes the marker so exactly one
// side entry appears active per context set.
func (c *Context) consumeMatchFirst() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.side.IsMatchFirst() {
		return false
	}
	c.side = values.NoActiveSide()
	return true
}
