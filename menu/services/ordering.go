// Package services holds the domain services applied during the registry's
// population and query passes.
package services

import (
	"math"
	"sort"

	"github.com/reglet-dev/reglet-nav-sdk/menu/entities"
)

// AssignDefaultSideOrders gives every unassigned side menu entry a
// synthesized order (100, 200, ...) in encounter order. Explicitly ordered
// siblings are left untouched.
func AssignDefaultSideOrders(items []*entities.SideMenuItem) {
	next := entities.SideOrderStep
	for _, item := range items {
		if item.Order == entities.OrderAppend {
			item.Order = next
			next += entities.SideOrderStep
		}
	}
}

// SortMainItems stable-sorts top-level entries by order ascending. Entries
// with the append sentinel sort after all explicitly ordered entries; ties
// preserve relative insertion order.
func SortMainItems(items []*entities.MainMenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return effectiveOrder(items[i].Order) < effectiveOrder(items[j].Order)
	})
}

// SortSideItems stable-sorts side menu entries by order ascending.
// Call AssignDefaultSideOrders first so no entry carries the sentinel.
func SortSideItems(items []*entities.SideMenuItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return effectiveOrder(items[i].Order) < effectiveOrder(items[j].Order)
	})
}

// SortQuickActions stable-sorts quick actions by order ascending, append
// sentinel last.
func SortQuickActions(items []*entities.QuickActionItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return effectiveOrder(items[i].Order) < effectiveOrder(items[j].Order)
	})
}

func effectiveOrder(order int) int {
	if order == entities.OrderAppend {
		return math.MaxInt
	}
	return order
}
