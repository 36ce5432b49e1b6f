package registry

import (
	"context"
	"strings"

	"github.com/reglet-dev/reglet-nav-sdk/menu/entities"
)

// MainMenuEntry pairs a top-level item with the display counter resolved
// for this query.
type MainMenuEntry struct {
	Item    *entities.MainMenuItem
	Counter entities.ResolvedCounter
}

// SideMenuEntry pairs a side menu item with its resolved display counter.
type SideMenuEntry struct {
	Item    *entities.SideMenuItem
	Counter entities.ResolvedCounter
}

// ListMainMenuItems returns the sorted, permission-filtered top-level
// entries with their counters resolved. The first call triggers the
// population pass; later calls reuse the populated table.
func (r *Registry) ListMainMenuItems(ctx context.Context) ([]MainMenuEntry, error) {
	if err := r.ensurePopulated(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]MainMenuEntry, 0, len(r.itemOrder))
	for _, key := range r.itemOrder {
		item := r.items[key]
		entries = append(entries, MainMenuEntry{
			Item:    item,
			Counter: r.counters.ResolveMain(item),
		})
	}
	return entries, nil
}

// ListQuickActionItems returns the sorted, permission-filtered quick
// actions.
func (r *Registry) ListQuickActionItems(ctx context.Context) ([]*entities.QuickActionItem, error) {
	if err := r.ensurePopulated(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]*entities.QuickActionItem, 0, len(r.quickOrder))
	for _, key := range r.quickOrder {
		items = append(items, r.quickActions[key])
	}
	return items, nil
}

// ListSideMenuItems returns the side menu of one top-level entry with
// counters resolved. When owner and code are given the entry is looked up
// by exact key and a miss is a fault; otherwise the first entry matching
// the context's active coordinates supplies its side menu, and no match
// yields an empty list.
//
// Side counter resolution is strict: a non-numeric, non-nil counter value
// is returned as a CounterError.
func (r *Registry) ListSideMenuItems(ctx context.Context, navCtx *Context, owner, code string) ([]SideMenuEntry, error) {
	if err := r.ensurePopulated(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var parent *entities.MainMenuItem
	if owner != "" && code != "" {
		item, ok := r.items[r.makeKey(owner, code)]
		if !ok {
			return nil, &entities.ItemNotFoundError{Owner: owner, Code: code}
		}
		parent = item
	} else {
		for _, key := range r.itemOrder {
			if r.isMainActiveLocked(navCtx, r.items[key]) {
				parent = r.items[key]
				break
			}
		}
		if parent == nil {
			return []SideMenuEntry{}, nil
		}
	}

	side := parent.SideItems()
	entries := make([]SideMenuEntry, 0, len(side))
	for _, item := range side {
		resolved, err := r.counters.ResolveSide(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, SideMenuEntry{Item: item, Counter: resolved})
	}
	return entries, nil
}

// GetMainMenuItem looks up a top-level entry by exact key.
// A miss is a fault.
func (r *Registry) GetMainMenuItem(ctx context.Context, owner, code string) (*entities.MainMenuItem, error) {
	if err := r.ensurePopulated(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[r.makeKey(owner, code)]
	if !ok {
		return nil, &entities.ItemNotFoundError{Owner: owner, Code: code}
	}
	return item, nil
}

// GetQuickActionItem looks up a quick action by exact key.
// A miss is a fault.
func (r *Registry) GetQuickActionItem(ctx context.Context, owner, code string) (*entities.QuickActionItem, error) {
	if err := r.ensurePopulated(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.quickActions[r.makeKey(owner, code)]
	if !ok {
		return nil, &entities.ItemNotFoundError{Owner: owner, Code: code}
	}
	return item, nil
}

// GetActiveMainMenuItem returns the first top-level entry matching the
// context's active coordinates, or nil when nothing matches.
func (r *Registry) GetActiveMainMenuItem(ctx context.Context, navCtx *Context) (*entities.MainMenuItem, error) {
	if err := r.ensurePopulated(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, key := range r.itemOrder {
		if r.isMainActiveLocked(navCtx, r.items[key]) {
			return r.items[key], nil
		}
	}
	return nil, nil
}

// IsMainMenuItemActive reports whether the item matches the context's
// active owner and top-level code. The context owner is alias-resolved;
// the stored item owner is compared literally, uppercased.
func (r *Registry) IsMainMenuItemActive(navCtx *Context, item *entities.MainMenuItem) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isMainActiveLocked(navCtx, item)
}

func (r *Registry) isMainActiveLocked(navCtx *Context, item *entities.MainMenuItem) bool {
	if navCtx == nil {
		return false
	}
	return r.resolveOwner(navCtx.Owner()) == strings.ToUpper(item.Owner) &&
		strings.EqualFold(navCtx.MainCode(), item.Code)
}

// IsSideMenuItemActive reports whether the side item matches the context's
// active side coordinates. When the context carries the armed "match first"
// marker, the first call consumes it and reports active regardless of the
// item, so exactly one side entry appears active per context set.
func (r *Registry) IsSideMenuItemActive(navCtx *Context, item *entities.SideMenuItem) bool {
	if navCtx == nil {
		return false
	}
	if navCtx.consumeMatchFirst() {
		return true
	}

	sideCode, ok := navCtx.Side().Code()
	if !ok {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveOwner(navCtx.Owner()) == strings.ToUpper(item.Owner) &&
		strings.EqualFold(sideCode, item.Code)
}
