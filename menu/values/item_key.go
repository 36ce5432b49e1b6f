// Package values holds the identity value objects of the navigation domain.
package values

import "strings"

// ItemKey is the composite registry key for a menu entry: the uppercased
// owner joined to the uppercased item code. Keys computed from the same
// (owner, code) pair in any casing are identical.
type ItemKey string

// MakeItemKey computes the composite key for an owner/code pair.
// Alias resolution happens before this call; MakeItemKey only normalizes
// casing.
func MakeItemKey(owner, code string) ItemKey {
	return ItemKey(strings.ToUpper(owner) + "." + strings.ToUpper(code))
}

// String returns the key in its canonical uppercase form.
func (k ItemKey) String() string {
	return string(k)
}
