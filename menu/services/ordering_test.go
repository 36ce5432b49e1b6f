package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/reglet-nav-sdk/menu/entities"
)

func sideItem(code string, order int) *entities.SideMenuItem {
	item := entities.NewSideMenuItem("Acme.Blog", code)
	item.Order = order
	return item
}

func Test_AssignDefaultSideOrders(t *testing.T) {
	items := []*entities.SideMenuItem{
		sideItem("a", 5),
		sideItem("b", entities.OrderAppend),
		sideItem("c", entities.OrderAppend),
		sideItem("d", 1),
	}

	AssignDefaultSideOrders(items)

	assert.Equal(t, 5, items[0].Order)
	assert.Equal(t, 100, items[1].Order)
	assert.Equal(t, 200, items[2].Order)
	assert.Equal(t, 1, items[3].Order)
}

func Test_SortSideItems_AfterDefaultAssignment(t *testing.T) {
	items := []*entities.SideMenuItem{
		sideItem("a", 5),
		sideItem("b", entities.OrderAppend),
		sideItem("c", entities.OrderAppend),
		sideItem("d", 1),
	}

	AssignDefaultSideOrders(items)
	SortSideItems(items)

	orders := make([]int, len(items))
	for i, item := range items {
		orders[i] = item.Order
	}
	assert.Equal(t, []int{1, 5, 100, 200}, orders)

	// Synthesized orders respect encounter order.
	assert.Equal(t, "b", items[2].Code)
	assert.Equal(t, "c", items[3].Code)
}

func Test_SortMainItems_StableTiesAndAppend(t *testing.T) {
	a := entities.NewMainMenuItem("Acme.Blog", "a")
	a.Order = 100
	b := entities.NewMainMenuItem("Acme.Blog", "b")
	b.Order = 100
	c := entities.NewMainMenuItem("Acme.Blog", "c") // append sentinel
	d := entities.NewMainMenuItem("Acme.Blog", "d")
	d.Order = 50

	items := []*entities.MainMenuItem{a, b, c, d}
	SortMainItems(items)

	codes := make([]string, len(items))
	for i, item := range items {
		codes[i] = item.Code
	}
	// Ties keep insertion order, append sentinel sorts last.
	assert.Equal(t, []string{"d", "a", "b", "c"}, codes)
}

func Test_CounterResolver_Main(t *testing.T) {
	r := NewCounterResolver()

	t.Run("BadgeOverridesCounter", func(t *testing.T) {
		item := entities.NewMainMenuItem("Acme.Blog", "blog")
		item.Badge = "new"
		item.Counter = entities.LiteralCounter(9)

		text, ok := r.ResolveMain(item).Text()
		require.True(t, ok)
		assert.Equal(t, "new", text)
	})

	t.Run("HiddenStaysHidden", func(t *testing.T) {
		item := entities.NewMainMenuItem("Acme.Blog", "blog")
		item.Counter = entities.HiddenCounter()

		assert.True(t, r.ResolveMain(item).IsHidden())
	})

	t.Run("ComputedNumeric", func(t *testing.T) {
		item := entities.NewMainMenuItem("Acme.Blog", "blog")
		item.Counter = entities.ComputedCounter(func(any) any { return 12 })

		n, ok := r.ResolveMain(item).Number()
		require.True(t, ok)
		assert.Equal(t, 12, n)
	})

	t.Run("ComputedNonNumericIsNone", func(t *testing.T) {
		item := entities.NewMainMenuItem("Acme.Blog", "blog")
		item.Counter = entities.ComputedCounter(func(any) any { return "soon" })

		assert.True(t, r.ResolveMain(item).IsNone())
	})

	t.Run("LiteralZeroIsNone", func(t *testing.T) {
		item := entities.NewMainMenuItem("Acme.Blog", "blog")
		item.Counter = entities.LiteralCounter(0)

		assert.True(t, r.ResolveMain(item).IsNone())
	})

	t.Run("SumsSideCounters", func(t *testing.T) {
		item := entities.NewMainMenuItem("Acme.Blog", "blog")
		posts := sideItem("posts", 100)
		posts.Counter = entities.LiteralCounter(3)
		drafts := sideItem("drafts", 200)
		drafts.Counter = entities.LiteralCounter(7)
		item.PutSideItem(posts)
		item.PutSideItem(drafts)

		n, ok := r.ResolveMain(item).Number()
		require.True(t, ok)
		assert.Equal(t, 10, n)
	})

	t.Run("SumSkipsBadgedChildren", func(t *testing.T) {
		item := entities.NewMainMenuItem("Acme.Blog", "blog")
		posts := sideItem("posts", 100)
		posts.Counter = entities.LiteralCounter(3)
		drafts := sideItem("drafts", 200)
		drafts.Counter = entities.LiteralCounter(7)
		drafts.Badge = "!"
		item.PutSideItem(posts)
		item.PutSideItem(drafts)

		n, ok := r.ResolveMain(item).Number()
		require.True(t, ok)
		assert.Equal(t, 3, n)
	})
}

func Test_CounterResolver_Side(t *testing.T) {
	r := NewCounterResolver()

	t.Run("ComputedNilIsNone", func(t *testing.T) {
		item := sideItem("posts", 100)
		item.Counter = entities.ComputedCounter(func(any) any { return nil })

		resolved, err := r.ResolveSide(item)
		require.NoError(t, err)
		assert.True(t, resolved.IsNone())
	})

	t.Run("NumericString", func(t *testing.T) {
		item := sideItem("posts", 100)
		item.Counter = entities.ComputedCounter(func(any) any { return "42" })

		resolved, err := r.ResolveSide(item)
		require.NoError(t, err)
		n, ok := resolved.Number()
		require.True(t, ok)
		assert.Equal(t, 42, n)
	})

	t.Run("NonNumericFaults", func(t *testing.T) {
		item := sideItem("posts", 100)
		item.Counter = entities.ComputedCounter(func(any) any { return []string{"nope"} })

		_, err := r.ResolveSide(item)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrBadCounter)

		var counterErr *entities.CounterError
		require.ErrorAs(t, err, &counterErr)
		assert.Equal(t, "posts", counterErr.Code)
	})

	t.Run("BadgeWins", func(t *testing.T) {
		item := sideItem("posts", 100)
		item.Badge = "beta"
		item.Counter = entities.ComputedCounter(func(any) any { return []string{"nope"} })

		resolved, err := r.ResolveSide(item)
		require.NoError(t, err)
		text, ok := resolved.Text()
		require.True(t, ok)
		assert.Equal(t, "beta", text)
	})
}
