package values

// ActiveSideRef identifies which side menu entry should render as active for
// the current request. It replaces the historical overloading of a single
// field as both a boolean flag and a code string.
type ActiveSideRef struct {
	kind activeSideKind
	code string
}

type activeSideKind int

const (
	activeSideNone activeSideKind = iota
	activeSideMatchFirst
	activeSideExplicit
)

// NoActiveSide reports that no side entry is active.
func NoActiveSide() ActiveSideRef {
	return ActiveSideRef{kind: activeSideNone}
}

// MatchFirstSide marks the first side entry checked as active. The marker is
// consumed by that first check.
func MatchFirstSide() ActiveSideRef {
	return ActiveSideRef{kind: activeSideMatchFirst}
}

// ExplicitSide marks the side entry with the given code as active.
func ExplicitSide(code string) ActiveSideRef {
	return ActiveSideRef{kind: activeSideExplicit, code: code}
}

// IsNone returns true when no side entry is active.
func (r ActiveSideRef) IsNone() bool {
	return r.kind == activeSideNone
}

// IsMatchFirst returns true for the one-shot "first entry wins" marker.
func (r ActiveSideRef) IsMatchFirst() bool {
	return r.kind == activeSideMatchFirst
}

// Code returns the explicit side code and whether one is set.
func (r ActiveSideRef) Code() (string, bool) {
	return r.code, r.kind == activeSideExplicit
}
