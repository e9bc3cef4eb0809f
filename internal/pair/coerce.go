package pair

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotInteger is returned when a value cannot be read as an integer.
	ErrNotInteger = errors.New("not an integer")

	// ErrOutOfRange is returned when a numeric value does not fit in an int.
	// Errors wrapping it also match ErrNotInteger.
	ErrOutOfRange = fmt.Errorf("%w: out of range", ErrNotInteger)
)

// CoercionError reports a constructor argument that could not be coerced.
type CoercionError struct {
	Arg   string
	Value any
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("coerce %s=%#v: %v", e.Arg, e.Value, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

func coerceArg(name string, v any) (int, error) {
	n, err := Coerce(v)
	if err != nil {
		return 0, &CoercionError{Arg: name, Value: v, Err: err}
	}
	return n, nil
}

// Coerce converts v to an int.
//
// Integers of any width are accepted as long as they fit. Floats are
// truncated toward zero; NaN and infinities are rejected. Booleans map to
// 1 and 0. A json.Number is read as an integer literal when it is one and
// as a float otherwise. Strings may carry surrounding whitespace, a sign
// and single underscores between digits ("1_000"), but no fraction or
// exponent.
func Coerce(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, ErrOutOfRange
		}
		return int(n), nil
	case uint:
		return fromUnsigned(uint64(n))
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return fromUnsigned(uint64(n))
	case uint64:
		return fromUnsigned(n)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseString(n)
	case json.Number:
		return fromNumber(n)
	case nil:
		return 0, fmt.Errorf("%w: nil", ErrNotInteger)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotInteger, v)
	}
}

func fromUnsigned(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, ErrOutOfRange
	}
	return int(n), nil
}

func fromFloat(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, f)
	}
	t := math.Trunc(f)
	// float64(math.MaxInt) rounds up to 2^63, which is itself out of range.
	if t >= float64(math.MaxInt) || t < float64(math.MinInt) {
		return 0, ErrOutOfRange
	}
	return int(t), nil
}

// fromNumber treats integer literals exactly and any other JSON number
// as a float.
func fromNumber(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return Coerce(i)
	}
	f, err := n.Float64()
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, n.String())
	}
	return fromFloat(f)
}

func parseString(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrNotInteger)
	}
	digits, err := stripUnderscores(s)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(digits, 10, 0)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOutOfRange
		}
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	return int(n), nil
}

// stripUnderscores removes digit separators, rejecting leading, trailing
// or doubled underscores.
func stripUnderscores(s string) (string, error) {
	if !strings.Contains(s, "_") {
		return s, nil
	}
	var b strings.Builder
	prevDigit := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			next := i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9'
			if !prevDigit || !next {
				return "", fmt.Errorf("%w: %q", ErrNotInteger, s)
			}
			prevDigit = false
			continue
		}
		prevDigit = c >= '0' && c <= '9'
		b.WriteByte(c)
	}
	return b.String(), nil
}
