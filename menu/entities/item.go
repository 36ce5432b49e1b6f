// Package entities holds the aggregate types of the navigation bounded
// context: top-level menu entries, their side menu children, and flat quick
// actions.
package entities

import "strings"

// OrderAppend is the sort-key sentinel for entries registered without an
// explicit order. Top-level entries with this order sort after all
// explicitly ordered siblings; side menu entries receive synthesized orders
// (100, 200, ...) during the population sort pass.
const OrderAppend = -1

// SideOrderStep is the spacing between synthesized side menu orders.
const SideOrderStep = 100

// MainMenuItem is a top-level navigation entry contributed by an owner.
// Identity is the (Owner, Code) pair, case-insensitive.
//
// Permissions carry OR semantics: an actor needs any one of them.
// Badge, when set, overrides the counter at display time.
type MainMenuItem struct {
	Owner       string
	Code        string
	Label       string
	Icon        string
	IconSVG     string
	URL         string
	Badge       string
	Permissions []string
	Counter     Counter
	Order       int

	side      map[string]*SideMenuItem
	sideOrder []string
}

// NewMainMenuItem creates an empty top-level entry for an owner/code pair.
func NewMainMenuItem(owner, code string) *MainMenuItem {
	return &MainMenuItem{
		Owner: owner,
		Code:  code,
		Order: OrderAppend,
		side:  make(map[string]*SideMenuItem),
	}
}

// SideItems returns the side menu children in their current order
// (encounter order until the population sort pass runs).
func (m *MainMenuItem) SideItems() []*SideMenuItem {
	items := make([]*SideMenuItem, 0, len(m.sideOrder))
	for _, code := range m.sideOrder {
		items = append(items, m.side[code])
	}
	return items
}

// SideItem looks up a side menu child by code, case-insensitively.
func (m *MainMenuItem) SideItem(code string) (*SideMenuItem, bool) {
	item, ok := m.side[strings.ToUpper(code)]
	return item, ok
}

// PutSideItem inserts or replaces a side menu child. A replaced child keeps
// its original encounter position.
func (m *MainMenuItem) PutSideItem(item *SideMenuItem) {
	if m.side == nil {
		m.side = make(map[string]*SideMenuItem)
	}
	key := strings.ToUpper(item.Code)
	if _, exists := m.side[key]; !exists {
		m.sideOrder = append(m.sideOrder, key)
	}
	m.side[key] = item
}

// RemoveSideItem deletes a side menu child by code.
// Returns false when no child with that code exists.
func (m *MainMenuItem) RemoveSideItem(code string) bool {
	key := strings.ToUpper(code)
	if _, ok := m.side[key]; !ok {
		return false
	}
	delete(m.side, key)
	for i, c := range m.sideOrder {
		if c == key {
			m.sideOrder = append(m.sideOrder[:i], m.sideOrder[i+1:]...)
			break
		}
	}
	return true
}

// SetSideItems replaces the side menu with the given items in the given
// order. Used by the population sort pass.
func (m *MainMenuItem) SetSideItems(items []*SideMenuItem) {
	m.side = make(map[string]*SideMenuItem, len(items))
	m.sideOrder = m.sideOrder[:0]
	for _, item := range items {
		m.PutSideItem(item)
	}
}

// SideMenuItem is a second-level entry scoped under exactly one top-level
// entry. Same shape as MainMenuItem minus children.
type SideMenuItem struct {
	Owner       string
	Code        string
	Label       string
	Icon        string
	IconSVG     string
	URL         string
	Badge       string
	Permissions []string
	Counter     Counter
	Order       int
}

// NewSideMenuItem creates an empty side menu entry for an owner/code pair.
// The order starts at the auto-sequence sentinel.
func NewSideMenuItem(owner, code string) *SideMenuItem {
	return &SideMenuItem{
		Owner: owner,
		Code:  code,
		Order: OrderAppend,
	}
}

// QuickActionItem is a flat shortcut entry distinct from the main/side menu
// hierarchy. No children, no counter.
type QuickActionItem struct {
	Owner       string
	Code        string
	Label       string
	Icon        string
	IconSVG     string
	URL         string
	Permissions []string
	Order       int
}

// NewQuickActionItem creates an empty quick action for an owner/code pair.
func NewQuickActionItem(owner, code string) *QuickActionItem {
	return &QuickActionItem{
		Owner: owner,
		Code:  code,
		Order: OrderAppend,
	}
}
