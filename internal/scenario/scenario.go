// Package scenario runs named arithmetic checks against pair.Pair.
//
// A scenario names two raw inputs, an operation and the expected result.
// Inputs go through the same coercion as pair.New, so a scenario file can
// mix numbers and numeric strings.
package scenario

import (
	"errors"
	"fmt"

	"github.com/pengelbrecht/pair/internal/pair"
)

// Op names a Pair operation.
type Op string

const (
	OpSum        Op = "sum"
	OpDifference Op = "difference"
	OpProduct    Op = "product"
	OpA          Op = "a"
)

// Ops lists every supported operation.
var Ops = []Op{OpSum, OpDifference, OpProduct, OpA}

// ErrUnknownOp is returned for an operation not in Ops.
var ErrUnknownOp = errors.New("unknown op")

// Valid reports whether o is a supported operation.
func (o Op) Valid() bool {
	switch o {
	case OpSum, OpDifference, OpProduct, OpA:
		return true
	default:
		return false
	}
}

// Apply evaluates op on p.
func Apply(p pair.Pair, op Op) (int, error) {
	switch op {
	case OpSum:
		return p.Sum(), nil
	case OpDifference:
		return p.Difference(), nil
	case OpProduct:
		return p.Product(), nil
	case OpA:
		return p.A(), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOp, string(op))
	}
}

// Scenario is a single expectation about a Pair built from A and B.
type Scenario struct {
	Name string `json:"name"`
	A    any    `json:"a"`
	B    any    `json:"b"`
	Op   Op     `json:"op"`
	Want int    `json:"want"`
}

// Result is the outcome of running one Scenario.
type Result struct {
	Scenario Scenario `json:"scenario"`
	Got      int      `json:"got"`
	Passed   bool     `json:"passed"`
	Error    string   `json:"error,omitempty"`

	Err error `json:"-"`
}

// Run builds the pair for s, applies its op and compares against Want.
// Coercion and op errors produce a failed result rather than an error.
func Run(s Scenario) Result {
	res := Result{Scenario: s}

	p, err := pair.New(s.A, s.B)
	if err != nil {
		return res.fail(err)
	}
	got, err := Apply(p, s.Op)
	if err != nil {
		return res.fail(err)
	}

	res.Got = got
	res.Passed = got == s.Want
	return res
}

func (r Result) fail(err error) Result {
	r.Err = err
	r.Error = err.Error()
	return r
}

// Seed returns the built-in scenarios. Each operation is checked by its
// own scenario so that one failure never hides another.
func Seed() []Scenario {
	return []Scenario{
		{Name: "sum of 1 and 2", A: 1, B: 2, Op: OpSum, Want: 3},
		{Name: "difference of 1 and 2", A: 1, B: 2, Op: OpDifference, Want: -1},
		{Name: "product of 1 and 2", A: 1, B: 2, Op: OpProduct, Want: 2},
		{Name: "sum of numeric strings", A: "5", B: "3", Op: OpSum, Want: 8},
		{Name: "sum of zeros", A: 0, B: 0, Op: OpSum, Want: 0},
		{Name: "difference of zeros", A: 0, B: 0, Op: OpDifference, Want: 0},
		{Name: "product of zeros", A: 0, B: 0, Op: OpProduct, Want: 0},
		{Name: "product keeps sign", A: -2, B: 3, Op: OpProduct, Want: -6},
		{Name: "a is returned unchanged", A: 1, B: 2, Op: OpA, Want: 1},
	}
}

// Validate checks that a set of scenarios is well formed.
func Validate(scenarios []Scenario) error {
	seen := make(map[string]struct{}, len(scenarios))
	for i, s := range scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("scenario %q: duplicate name", s.Name)
		}
		seen[s.Name] = struct{}{}
		if !s.Op.Valid() {
			return fmt.Errorf("scenario %q: %w: %q", s.Name, ErrUnknownOp, string(s.Op))
		}
	}
	return nil
}
