package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/reglet-nav-sdk/menu/dto"
	"github.com/reglet-dev/reglet-nav-sdk/menu/entities"
)

func newPopulatedRegistry(t *testing.T) *Registry {
	t.Helper()
	r := newTestRegistry()
	r.RegisterCallback(func(r *Registry) {
		r.AddMainMenuItem("Acme.Blog", dto.MenuItemDefinition{
			Code: "blog", Label: "Blog", Icon: "icon-book", URL: "/admin/blog",
			SideMenu: []dto.SideMenuItemDefinition{
				{Code: "posts", Label: "Posts", Counter: intp(3)},
				{Code: "drafts", Label: "Drafts", Counter: intp(7)},
			},
		})
		r.AddMainMenuItem("Acme.Shop", dto.MenuItemDefinition{
			Code: "shop", Label: "Shop", Icon: "icon-cart", URL: "/admin/shop",
		})
	})
	return r
}

func Test_ListMainMenuItems_ResolvesCounters(t *testing.T) {
	r := newPopulatedRegistry(t)

	entries, err := r.ListMainMenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Blog has no counter of its own: side counters 3 and 7 sum to 10.
	n, ok := entries[0].Counter.Number()
	require.True(t, ok)
	assert.Equal(t, 10, n)

	// Shop has neither counter nor children.
	assert.True(t, entries[1].Counter.IsNone())
}

func Test_ListSideMenuItems_ExactLookup(t *testing.T) {
	r := newPopulatedRegistry(t)

	entries, err := r.ListSideMenuItems(context.Background(), nil, "Acme.Blog", "blog")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "posts", entries[0].Item.Code)

	n, ok := entries[0].Counter.Number()
	require.True(t, ok)
	assert.Equal(t, 3, n)
}

func Test_ListSideMenuItems_MissingParentFaults(t *testing.T) {
	r := newPopulatedRegistry(t)

	_, err := r.ListSideMenuItems(context.Background(), nil, "Acme.Blog", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrItemNotFound)
}

func Test_ListSideMenuItems_FromContext(t *testing.T) {
	r := newPopulatedRegistry(t)

	navCtx := NewContext()
	navCtx.Set("acme.blog", "BLOG")

	entries, err := r.ListSideMenuItems(context.Background(), navCtx, "", "")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func Test_ListSideMenuItems_NoContextMatchIsEmpty(t *testing.T) {
	r := newPopulatedRegistry(t)

	navCtx := NewContext()
	navCtx.Set("Acme.Missing", "gone")

	entries, err := r.ListSideMenuItems(context.Background(), navCtx, "", "")
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = r.ListSideMenuItems(context.Background(), nil, "", "")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func Test_ListSideMenuItems_StrictCounterFault(t *testing.T) {
	r := newTestRegistry()
	r.RegisterCallback(func(r *Registry) {
		r.AddMainMenuItem("Acme.Blog", blogDefinition())
		r.AddSideMenuItem("Acme.Blog", "blog", dto.SideMenuItemDefinition{
			Code: "posts", Label: "Posts",
		})
	})
	bad := entities.ComputedCounter(func(any) any { return []int{1, 2} })
	var patched bool
	r.RegisterCallback(func(r *Registry) {
		patched = r.AddSideMenuItemPatch("Acme.Blog", "blog", "posts",
			entities.SidePatch{Counter: &bad})
	})

	_, err := r.ListSideMenuItems(context.Background(), nil, "Acme.Blog", "blog")
	require.Error(t, err)
	assert.True(t, patched)
	assert.ErrorIs(t, err, entities.ErrBadCounter)

	var counterErr *entities.CounterError
	require.ErrorAs(t, err, &counterErr)
	assert.Equal(t, "posts", counterErr.Code)
}

func Test_QueryFromPostLoadHook(t *testing.T) {
	r := newPopulatedRegistry(t)

	var hookItem *entities.MainMenuItem
	var hookSide []SideMenuEntry
	r.RegisterPostLoadHook(func(ctx context.Context, r *Registry) {
		item, err := r.GetMainMenuItem(ctx, "Acme.Blog", "blog")
		require.NoError(t, err)
		hookItem = item

		side, err := r.ListSideMenuItems(ctx, nil, "Acme.Blog", "blog")
		require.NoError(t, err)
		hookSide = side
	})

	_, err := r.ListMainMenuItems(context.Background())
	require.NoError(t, err)

	require.NotNil(t, hookItem)
	assert.Equal(t, "blog", hookItem.Code)
	assert.Len(t, hookSide, 2)
}

func Test_ComputedCounterRegisteredThroughPatches(t *testing.T) {
	r := newTestRegistry()
	r.RegisterCallback(func(r *Registry) {
		r.AddMainMenuItem("Acme.Inbox", dto.MenuItemDefinition{
			Code: "inbox", Label: "Inbox", Icon: "icon-mail", URL: "/admin/inbox",
		})
	})

	pending := 4
	unread := entities.ComputedCounter(func(any) any { return pending })
	r.RegisterCallback(func(r *Registry) {
		r.AddMainMenuItemPatch("Acme.Inbox", "inbox", entities.ItemPatch{Counter: &unread})
	})

	entries, err := r.ListMainMenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	n, ok := entries[0].Counter.Number()
	require.True(t, ok)
	assert.Equal(t, 4, n)

	// Computed counters are evaluated fresh per query.
	pending = 9
	entries, err = r.ListMainMenuItems(context.Background())
	require.NoError(t, err)
	n, ok = entries[0].Counter.Number()
	require.True(t, ok)
	assert.Equal(t, 9, n)
}

func Test_HiddenCounterRegisteredThroughPatches(t *testing.T) {
	r := newPopulatedRegistry(t)

	hidden := entities.HiddenCounter()
	r.RegisterCallback(func(r *Registry) {
		r.AddMainMenuItemPatch("Acme.Blog", "blog", entities.ItemPatch{Counter: &hidden})
	})

	entries, err := r.ListMainMenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Counter.IsHidden())
}

func Test_GetActiveMainMenuItem(t *testing.T) {
	r := newPopulatedRegistry(t)

	t.Run("Match", func(t *testing.T) {
		navCtx := NewContext()
		navCtx.Set("ACME.SHOP", "shop")

		item, err := r.GetActiveMainMenuItem(context.Background(), navCtx)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "shop", item.Code)
	})

	t.Run("NoMatchIsNil", func(t *testing.T) {
		navCtx := NewContext()
		navCtx.Set("Acme.Missing", "gone")

		item, err := r.GetActiveMainMenuItem(context.Background(), navCtx)
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("NilContextIsNil", func(t *testing.T) {
		item, err := r.GetActiveMainMenuItem(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func Test_IsMainMenuItemActive_AliasResolvedContext(t *testing.T) {
	r := newPopulatedRegistry(t)
	r.RegisterOwnerAlias("Acme.Blog", "Legacy.Blog")

	item, err := r.GetMainMenuItem(context.Background(), "Acme.Blog", "blog")
	require.NoError(t, err)

	navCtx := NewContext()
	navCtx.Set("Legacy.Blog", "blog")
	assert.True(t, r.IsMainMenuItemActive(navCtx, item))

	navCtx.Set("Other.Owner", "blog")
	assert.False(t, r.IsMainMenuItemActive(navCtx, item))
}

func Test_IsSideMenuItemActive(t *testing.T) {
	r := newPopulatedRegistry(t)
	item, err := r.GetMainMenuItem(context.Background(), "Acme.Blog", "blog")
	require.NoError(t, err)
	posts, ok := item.SideItem("posts")
	require.True(t, ok)
	drafts, ok := item.SideItem("drafts")
	require.True(t, ok)

	t.Run("ExplicitCode", func(t *testing.T) {
		navCtx := NewContext()
		navCtx.SetWithSide("Acme.Blog", "blog", "posts")

		assert.True(t, r.IsSideMenuItemActive(navCtx, posts))
		assert.False(t, r.IsSideMenuItemActive(navCtx, drafts))
		// Explicit codes are not consumed.
		assert.True(t, r.IsSideMenuItemActive(navCtx, posts))
	})

	t.Run("MatchFirstConsumedByFirstCheck", func(t *testing.T) {
		navCtx := NewContext()
		navCtx.SetMatchFirst("Acme.Blog", "blog")

		assert.True(t, r.IsSideMenuItemActive(navCtx, posts))
		// The marker is gone; a second check matches nothing.
		assert.False(t, r.IsSideMenuItemActive(navCtx, posts))
		assert.False(t, r.IsSideMenuItemActive(navCtx, drafts))
	})

	t.Run("NoActiveSide", func(t *testing.T) {
		navCtx := NewContext()
		navCtx.Set("Acme.Blog", "blog")

		assert.False(t, r.IsSideMenuItemActive(navCtx, posts))
		assert.False(t, r.IsSideMenuItemActive(nil, posts))
	})
}
