package pair

import (
	"errors"
	"testing"
)

func TestSum(t *testing.T) {
	cases := []struct {
		name     string
		a, b     any
		expected int
	}{
		{"positive numbers", 1, 2, 3},
		{"numeric strings", "5", "3", 8},
		{"zeros", 0, 0, 0},
		{"negative and positive", -2, 3, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := MustNew(tc.a, tc.b)
			if got := p.Sum(); got != tc.expected {
				t.Errorf("New(%v, %v).Sum() = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestDifference(t *testing.T) {
	cases := []struct {
		name     string
		a, b     any
		expected int
	}{
		{"negative result", 1, 2, -1},
		{"numeric strings", "5", "3", 2},
		{"zeros", 0, 0, 0},
		{"subtract negative", 4, -6, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := MustNew(tc.a, tc.b)
			if got := p.Difference(); got != tc.expected {
				t.Errorf("New(%v, %v).Difference() = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestProduct(t *testing.T) {
	cases := []struct {
		name     string
		a, b     any
		expected int
	}{
		{"positive numbers", 1, 2, 2},
		{"numeric strings", "5", "3", 15},
		{"zeros", 0, 0, 0},
		{"negative and positive", -2, 3, -6},
		{"two negatives", -4, -5, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := MustNew(tc.a, tc.b)
			if got := p.Product(); got != tc.expected {
				t.Errorf("New(%v, %v).Product() = %d, want %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestArithmeticMatchesOperators(t *testing.T) {
	values := []int{-1000, -7, -1, 0, 1, 2, 13, 999}
	for _, a := range values {
		for _, b := range values {
			p := Of(a, b)
			if p.Sum() != a+b {
				t.Errorf("Of(%d, %d).Sum() = %d, want %d", a, b, p.Sum(), a+b)
			}
			if p.Difference() != a-b {
				t.Errorf("Of(%d, %d).Difference() = %d, want %d", a, b, p.Difference(), a-b)
			}
			if p.Product() != a*b {
				t.Errorf("Of(%d, %d).Product() = %d, want %d", a, b, p.Product(), a*b)
			}
		}
	}
}

func TestAccessorsReturnCoercedValues(t *testing.T) {
	cases := []struct {
		name  string
		a, b  any
		wantA int
		wantB int
	}{
		{"ints", 1, 2, 1, 2},
		{"strings", " 42 ", "-3", 42, -3},
		{"floats truncate", 2.9, -2.9, 2, -2},
		{"bools", true, false, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := New(tc.a, tc.b)
			if err != nil {
				t.Fatalf("New(%v, %v) error = %v", tc.a, tc.b, err)
			}
			if p.A() != tc.wantA {
				t.Errorf("A() = %d, want %d", p.A(), tc.wantA)
			}
			if p.B() != tc.wantB {
				t.Errorf("B() = %d, want %d", p.B(), tc.wantB)
			}
		})
	}
}

func TestNewRejectsNonNumeric(t *testing.T) {
	cases := []struct {
		name    string
		a, b    any
		wantArg string
	}{
		{"word in a", "five", 3, "a"},
		{"word in b", 5, "three", "b"},
		{"both bad reports a", "x", "y", "a"},
		{"fractional string", "5.0", 1, "a"},
		{"nil", 1, nil, "b"},
		{"slice", []int{1}, 2, "a"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.a, tc.b)
			if err == nil {
				t.Fatalf("New(%v, %v) expected error", tc.a, tc.b)
			}
			if !errors.Is(err, ErrNotInteger) {
				t.Errorf("error %v does not match ErrNotInteger", err)
			}
			var ce *CoercionError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not *CoercionError", err)
			}
			if ce.Arg != tc.wantArg {
				t.Errorf("Arg = %q, want %q", ce.Arg, tc.wantArg)
			}
		})
	}
}

func TestWithA(t *testing.T) {
	p := Of(1, 2)

	q, err := p.WithA("10")
	if err != nil {
		t.Fatalf("WithA error = %v", err)
	}
	if q.A() != 10 || q.B() != 2 {
		t.Errorf("WithA(\"10\") = %v, want (10, 2)", q)
	}
	if p.A() != 1 {
		t.Errorf("receiver changed: A() = %d, want 1", p.A())
	}

	r, err := p.WithA("ten")
	if err == nil {
		t.Fatal("WithA(\"ten\") expected error")
	}
	if r != p {
		t.Errorf("WithA failure returned %v, want unchanged %v", r, p)
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic on bad input")
		}
	}()
	MustNew("one", 2)
}

func TestString(t *testing.T) {
	if got := Of(-2, 3).String(); got != "(-2, 3)" {
		t.Errorf("String() = %q, want %q", got, "(-2, 3)")
	}
}
