package deck

import "fmt"

// UDAValue is a user-defined argument: a deck value whose concrete form is
// either a plain number or a symbolic summary key (e.g. "WUOPRL") whose
// number is only known once the deck is resolved against a running
// simulation. Exactly one payload is valid at any time, fixed at
// construction.
type UDAValue struct {
	numeric bool
	number  float64
	key     string
}

// NumericUDA wraps a concrete number.
func NumericUDA(v float64) UDAValue {
	return UDAValue{numeric: true, number: v}
}

// StringUDA wraps a symbolic summary key.
func StringUDA(key string) UDAValue {
	return UDAValue{key: key}
}

// IsNumeric reports whether the value carries a number rather than a
// symbolic key.
func (u UDAValue) IsNumeric() bool { return u.numeric }

// Number returns the numeric payload, or ErrKindMismatch for a symbolic
// value.
func (u UDAValue) Number() (float64, error) {
	if !u.numeric {
		return 0, fmt.Errorf("get number of symbolic UDA %q: %w", u.key, ErrKindMismatch)
	}
	return u.number, nil
}

// Str returns the symbolic key, or ErrKindMismatch for a numeric value.
func (u UDAValue) Str() (string, error) {
	if u.numeric {
		return "", fmt.Errorf("get key of numeric UDA: %w", ErrKindMismatch)
	}
	return u.key, nil
}

// Resolved returns the payload for the active kind: the float64 for numeric
// values, the key string for symbolic ones. It cannot fail; exactly one
// payload is valid by construction. The result is always a plain scalar,
// never a UDAValue.
func (u UDAValue) Resolved() any {
	if u.numeric {
		return u.number
	}
	return u.key
}

func (u UDAValue) String() string {
	return fmt.Sprintf("UDAValue(value = %v)", u.Resolved())
}
