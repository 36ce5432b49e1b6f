package entities

// CounterFunc computes a counter value at query time. It receives the item
// being resolved (*MainMenuItem or *SideMenuItem) and may return any value;
// numeric results (ints, floats, digit strings) become the displayed count.
type CounterFunc func(item any) any

type counterKind int

const (
	counterNone counterKind = iota
	counterHidden
	counterLiteral
	counterComputed
)

// Counter is the tagged counter variant attached to a menu entry:
// absent, explicitly hidden, a literal number, or a deferred computation.
// Counters are resolved at query time, never at registration time.
type Counter struct {
	fn   CounterFunc
	kind counterKind
	n    int
}

// NoCounter returns the absent counter. Items with an absent counter may
// still display a count summed from their side menu.
func NoCounter() Counter {
	return Counter{kind: counterNone}
}

// HiddenCounter returns the "never show a counter" marker.
func HiddenCounter() Counter {
	return Counter{kind: counterHidden}
}

// LiteralCounter returns a fixed numeric counter.
func LiteralCounter(n int) Counter {
	return Counter{kind: counterLiteral, n: n}
}

// ComputedCounter returns a counter evaluated fresh on every query.
func ComputedCounter(fn CounterFunc) Counter {
	return Counter{kind: counterComputed, fn: fn}
}

// IsNone returns true for the absent counter.
func (c Counter) IsNone() bool {
	return c.kind == counterNone
}

// IsHidden returns true for the "never show" marker.
func (c Counter) IsHidden() bool {
	return c.kind == counterHidden
}

// Literal returns the fixed value and whether the counter is literal.
func (c Counter) Literal() (int, bool) {
	return c.n, c.kind == counterLiteral
}

// Func returns the compute function and whether the counter is computed.
func (c Counter) Func() (CounterFunc, bool) {
	return c.fn, c.kind == counterComputed
}

type resolvedKind int

const (
	resolvedNone resolvedKind = iota
	resolvedHidden
	resolvedNumber
	resolvedText
)

// ResolvedCounter is the display value a Counter (or badge override)
// resolves to for one query.
type ResolvedCounter struct {
	text string
	kind resolvedKind
	n    int
}

// NoResolvedCounter reports "display nothing".
func NoResolvedCounter() ResolvedCounter {
	return ResolvedCounter{kind: resolvedNone}
}

// HiddenResolvedCounter reports the preserved "never show" marker.
func HiddenResolvedCounter() ResolvedCounter {
	return ResolvedCounter{kind: resolvedHidden}
}

// NumberCounter reports a numeric display value.
func NumberCounter(n int) ResolvedCounter {
	return ResolvedCounter{kind: resolvedNumber, n: n}
}

// TextCounter reports a badge-style text display value.
func TextCounter(text string) ResolvedCounter {
	return ResolvedCounter{kind: resolvedText, text: text}
}

// IsNone returns true when nothing should be displayed.
func (r ResolvedCounter) IsNone() bool {
	return r.kind == resolvedNone
}

// IsHidden returns true for the preserved "never show" marker.
func (r ResolvedCounter) IsHidden() bool {
	return r.kind == resolvedHidden
}

// Number returns the numeric display value and whether there is one.
func (r ResolvedCounter) Number() (int, bool) {
	return r.n, r.kind == resolvedNumber
}

// Text returns the badge text and whether there is one.
func (r ResolvedCounter) Text() (string, bool) {
	return r.text, r.kind == resolvedText
}
