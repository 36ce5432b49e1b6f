package services

import (
	"strconv"

	"github.com/reglet-dev/reglet-nav-sdk/menu/entities"
)

// CounterResolver computes display counters at query time.
//
// Top-level resolution is lenient: anything that does not resolve to a
// nonzero number collapses to "none". Side menu resolution is strict: a
// plugin-supplied counter that yields a non-numeric, non-nil value is a
// fault, since it indicates a programming error in the contributing plugin.
type CounterResolver struct{}

// NewCounterResolver creates a CounterResolver.
func NewCounterResolver() *CounterResolver {
	return &CounterResolver{}
}

// ResolveMain resolves the display counter for a top-level entry.
//
// Precedence: badge text, the explicit hidden marker, a computed value, a
// nonzero literal, then the sum of un-badged side menu counters. Zero and
// non-numeric results collapse to none.
func (r *CounterResolver) ResolveMain(item *entities.MainMenuItem) entities.ResolvedCounter {
	if item.Badge != "" {
		return entities.TextCounter(item.Badge)
	}
	if item.Counter.IsHidden() {
		return entities.HiddenResolvedCounter()
	}
	if fn, ok := item.Counter.Func(); ok {
		if n, ok := asNumber(fn(item)); ok && n != 0 {
			return entities.NumberCounter(n)
		}
		return entities.NoResolvedCounter()
	}
	if n, ok := item.Counter.Literal(); ok && n != 0 {
		return entities.NumberCounter(n)
	}

	// No usable counter of its own: sum the side menu, skipping badged
	// children.
	sum := 0
	for _, side := range item.SideItems() {
		if side.Badge != "" {
			continue
		}
		resolved, err := r.resolveSide(side, false)
		if err != nil {
			continue
		}
		if n, ok := resolved.Number(); ok {
			sum += n
		}
	}
	if sum != 0 {
		return entities.NumberCounter(sum)
	}
	return entities.NoResolvedCounter()
}

// ResolveSide resolves the display counter for a side menu entry.
// A non-numeric, non-nil computed result returns a CounterError.
func (r *CounterResolver) ResolveSide(item *entities.SideMenuItem) (entities.ResolvedCounter, error) {
	return r.resolveSide(item, true)
}

func (r *CounterResolver) resolveSide(item *entities.SideMenuItem, strict bool) (entities.ResolvedCounter, error) {
	if item.Badge != "" {
		return entities.TextCounter(item.Badge), nil
	}
	if item.Counter.IsHidden() {
		return entities.HiddenResolvedCounter(), nil
	}
	if fn, ok := item.Counter.Func(); ok {
		value := fn(item)
		if value == nil {
			return entities.NoResolvedCounter(), nil
		}
		n, ok := asNumber(value)
		if !ok {
			if strict {
				return entities.NoResolvedCounter(), &entities.CounterError{
					Owner: item.Owner,
					Code:  item.Code,
					Value: value,
				}
			}
			return entities.NoResolvedCounter(), nil
		}
		if n == 0 {
			return entities.NoResolvedCounter(), nil
		}
		return entities.NumberCounter(n), nil
	}
	if n, ok := item.Counter.Literal(); ok && n != 0 {
		return entities.NumberCounter(n), nil
	}
	return entities.NoResolvedCounter(), nil
}

// asNumber coerces ints, floats, and digit strings to an int.
func asNumber(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float32:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}
