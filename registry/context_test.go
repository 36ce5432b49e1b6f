package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Context_Set(t *testing.T) {
	c := NewContext()
	c.Set("Acme.Blog", "blog")

	assert.Equal(t, "Acme.Blog", c.Owner())
	assert.Equal(t, "blog", c.MainCode())
	assert.True(t, c.Side().IsNone())
}

func Test_Context_SetWithSide(t *testing.T) {
	c := NewContext()
	c.SetWithSide("Acme.Blog", "blog", "posts")

	code, ok := c.Side().Code()
	assert.True(t, ok)
	assert.Equal(t, "posts", code)
}

func Test_Context_SetReplacesSideRef(t *testing.T) {
	c := NewContext()
	c.SetMatchFirst("Acme.Blog", "blog")
	assert.True(t, c.Side().IsMatchFirst())

	c.Set("Acme.Blog", "blog")
	assert.True(t, c.Side().IsNone())
}

func Test_Context_ConsumeMatchFirst(t *testing.T) {
	c := NewContext()
	c.SetMatchFirst("Acme.Blog", "blog")

	assert.True(t, c.consumeMatchFirst())
	assert.False(t, c.consumeMatchFirst())
	assert.True(t, c.Side().IsNone())
}
