package values

import (
	"fmt"
	"strings"
)

// Owner represents a validated contributor identifier, typically a
// dot-namespaced pair like "Acme.Blog".
// Owners compare case-insensitively.
type Owner struct {
	value string
}

// NewOwner creates an Owner with strict validation.
// A valid owner must:
// - Be non-empty after trimming
// - contain only alphanumeric characters, dots, underscores, and hyphens
// - Be at most 128 characters long
func NewOwner(owner string) (Owner, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return Owner{}, fmt.Errorf("owner cannot be empty")
	}

	if len(owner) > 128 {
		return Owner{}, fmt.Errorf("owner too long (max 128 chars)")
	}

	if strings.ContainsAny(owner, `/\`) {
		return Owner{}, fmt.Errorf("owner cannot contain path separators")
	}

	for _, ch := range owner {
		if !isValidOwnerChar(ch) {
			return Owner{}, fmt.Errorf("invalid owner %q: must contain only alphanumeric characters, dots, underscores, and hyphens", owner)
		}
	}

	return Owner{value: owner}, nil
}

func isValidOwnerChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '.' ||
		r == '_' ||
		r == '-'
}

// MustNewOwner creates an Owner or panics
func MustNewOwner(owner string) Owner {
	o, err := NewOwner(owner)
	if err != nil {
		panic(err)
	}
	return o
}

// String returns the owner as originally supplied (trimmed).
func (o Owner) String() string {
	return o.value
}

// Normalized returns the uppercased form used for identity comparison.
func (o Owner) Normalized() string {
	return strings.ToUpper(o.value)
}

// IsEmpty returns true if this is the zero value
func (o Owner) IsEmpty() bool {
	return o.value == ""
}

// Equals checks case-insensitive owner equality.
func (o Owner) Equals(other Owner) bool {
	return o.Normalized() == other.Normalized()
}
