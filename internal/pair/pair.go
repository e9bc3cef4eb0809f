// Package pair provides an immutable holder for two integers and basic
// arithmetic over them.
package pair

import "fmt"

// Pair holds two integers coerced at construction time.
type Pair struct {
	a int
	b int
}

// New coerces a and b to integers and returns the resulting Pair.
// See Coerce for the accepted input forms.
func New(a, b any) (Pair, error) {
	x, err := coerceArg("a", a)
	if err != nil {
		return Pair{}, err
	}
	y, err := coerceArg("b", b)
	if err != nil {
		return Pair{}, err
	}
	return Pair{a: x, b: y}, nil
}

// MustNew is like New but panics if either value cannot be coerced.
func MustNew(a, b any) Pair {
	p, err := New(a, b)
	if err != nil {
		panic(err)
	}
	return p
}

// Of returns a Pair from values that are already integers.
func Of(a, b int) Pair {
	return Pair{a: a, b: b}
}

// Sum returns a plus b.
func (p Pair) Sum() int {
	return p.a + p.b
}

// Difference returns a minus b.
func (p Pair) Difference() int {
	return p.a - p.b
}

// Product returns a times b.
func (p Pair) Product() int {
	return p.a * p.b
}

// A returns the first value.
func (p Pair) A() int {
	return p.a
}

// B returns the second value.
func (p Pair) B() int {
	return p.b
}

// WithA returns a copy of p with the first value replaced by v.
// The receiver is left unchanged.
func (p Pair) WithA(v any) (Pair, error) {
	x, err := coerceArg("a", v)
	if err != nil {
		return p, err
	}
	p.a = x
	return p, nil
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.a, p.b)
}
