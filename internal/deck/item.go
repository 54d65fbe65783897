package deck

import "fmt"

// DeckItem is one field of a keyword record: an ordered sequence of values
// of a single declared kind, plus a per-position status recording whether
// each value came from the source deck or a schema default. Items are
// read-only after construction.
type DeckItem struct {
	name   string
	kind   ValueKind
	values []DeckValue
	status []ValueStatus
}

// NewItem builds an item from parallel value and status sequences. The two
// sequences must have equal length and every value must match kind.
func NewItem(name string, kind ValueKind, values []DeckValue, status []ValueStatus) (DeckItem, error) {
	if kind != KindInt && kind != KindString && kind != KindDouble && kind != KindUDA {
		return DeckItem{}, fmt.Errorf("item %q: kind %d: %w", name, kind, ErrUnknownItemKind)
	}
	if len(values) != len(status) {
		return DeckItem{}, fmt.Errorf("item %q: %d values vs %d statuses: %w",
			name, len(values), len(status), ErrKindMismatch)
	}
	for i, v := range values {
		if v.kind != kind {
			return DeckItem{}, fmt.Errorf("item %q: value %d is %s, item is %s: %w",
				name, i, v.kind, kind, ErrKindMismatch)
		}
	}
	return DeckItem{name: name, kind: kind, values: values, status: status}, nil
}

// SuppliedItem builds an item whose every position was explicitly supplied
// by the deck author. The kind is taken from the first value; at least one
// value is required.
func SuppliedItem(name string, values ...DeckValue) (DeckItem, error) {
	if len(values) == 0 {
		return DeckItem{}, fmt.Errorf("item %q: no values: %w", name, ErrIndexRange)
	}
	status := make([]ValueStatus, len(values))
	for i := range status {
		status[i] = StatusDeckValue
	}
	return NewItem(name, values[0].kind, values, status)
}

// DefaultedItem builds a single-position item filled from a schema default.
func DefaultedItem(name string, value DeckValue) (DeckItem, error) {
	return NewItem(name, value.kind, []DeckValue{value}, []ValueStatus{StatusValidDefault})
}

// EmptyDefaultItem builds a single-position item of the given kind whose
// position is defaulted and holds no usable value.
func EmptyDefaultItem(name string, kind ValueKind) (DeckItem, error) {
	return NewItem(name, kind, []DeckValue{zeroValue(kind)}, []ValueStatus{StatusEmptyDefault})
}

// Name returns the schema name of the item, if any.
func (it DeckItem) Name() string { return it.name }

// Kind returns the item's declared value kind.
func (it DeckItem) Kind() ValueKind { return it.kind }

// Len returns the number of value positions.
func (it DeckItem) Len() int { return len(it.values) }

// IsInt reports whether the item holds integers.
func (it DeckItem) IsInt() bool { return it.kind == KindInt }

// IsString reports whether the item holds strings.
func (it DeckItem) IsString() bool { return it.kind == KindString }

// IsDouble reports whether the item holds raw floating point values.
func (it DeckItem) IsDouble() bool { return it.kind == KindDouble }

// IsUDA reports whether the item holds user-defined arguments.
func (it DeckItem) IsUDA() bool { return it.kind == KindUDA }

func (it DeckItem) at(i int) (DeckValue, error) {
	if i < 0 || i >= len(it.values) {
		return DeckValue{}, fmt.Errorf("item %q: index %d of %d: %w", it.name, i, len(it.values), ErrIndexRange)
	}
	return it.values[i], nil
}

// GetInt returns the integer at position i.
func (it DeckItem) GetInt(i int) (int, error) {
	if it.kind != KindInt {
		return 0, fmt.Errorf("item %q is %s, not int: %w", it.name, it.kind, ErrKindMismatch)
	}
	v, err := it.at(i)
	if err != nil {
		return 0, err
	}
	return v.i, nil
}

// GetStr returns the string at position i.
func (it DeckItem) GetStr(i int) (string, error) {
	if it.kind != KindString {
		return "", fmt.Errorf("item %q is %s, not string: %w", it.name, it.kind, ErrKindMismatch)
	}
	v, err := it.at(i)
	if err != nil {
		return "", err
	}
	return v.s, nil
}

// GetRaw returns the floating point value at position i in its raw,
// unit-unconverted form as it appeared in the source deck.
func (it DeckItem) GetRaw(i int) (float64, error) {
	if it.kind != KindDouble {
		return 0, fmt.Errorf("item %q is %s, not double: %w", it.name, it.kind, ErrKindMismatch)
	}
	v, err := it.at(i)
	if err != nil {
		return 0, err
	}
	return v.d, nil
}

// GetUDA returns the user-defined argument at position i.
func (it DeckItem) GetUDA(i int) (UDAValue, error) {
	if it.kind != KindUDA {
		return UDAValue{}, fmt.Errorf("item %q is %s, not uda: %w", it.name, it.kind, ErrKindMismatch)
	}
	v, err := it.at(i)
	if err != nil {
		return UDAValue{}, err
	}
	return v.uda, nil
}

// HasValue reports whether position i holds a usable value. A position
// filled from a valid schema default counts as set; an empty default does
// not, so HasValue and Defaulted are independent reads.
func (it DeckItem) HasValue(i int) (bool, error) {
	if i < 0 || i >= len(it.status) {
		return false, fmt.Errorf("item %q: index %d of %d: %w", it.name, i, len(it.status), ErrIndexRange)
	}
	return it.status[i].hasValue(), nil
}

// Defaulted reports whether position i was filled from a schema default
// rather than explicitly supplied in the source deck.
func (it DeckItem) Defaulted(i int) (bool, error) {
	if i < 0 || i >= len(it.status) {
		return false, fmt.Errorf("item %q: index %d of %d: %w", it.name, i, len(it.status), ErrIndexRange)
	}
	return it.status[i].defaulted(), nil
}

// Value returns the first position's value as a plain scalar: int, string,
// or float64 (raw for double items; resolved payload for UDA items, never a
// UDAValue). It is hard-wired to position 0 — callers needing other
// positions use the indexed accessors. An empty item yields ErrIndexRange;
// an unrecognized kind yields ErrUnknownItemKind.
func (it DeckItem) Value() (any, error) {
	switch it.kind {
	case KindInt:
		return it.GetInt(0)
	case KindString:
		return it.GetStr(0)
	case KindDouble:
		return it.GetRaw(0)
	case KindUDA:
		u, err := it.GetUDA(0)
		if err != nil {
			return nil, err
		}
		return u.Resolved(), nil
	default:
		return nil, fmt.Errorf("item %q: kind %d: %w", it.name, it.kind, ErrUnknownItemKind)
	}
}

// IsDefaulted is the position-0 convenience form of Defaulted.
func (it DeckItem) IsDefaulted() (bool, error) { return it.Defaulted(0) }

// IsSet is the position-0 convenience form of HasValue.
func (it DeckItem) IsSet() (bool, error) { return it.HasValue(0) }
