// Package deck implements the in-memory model of a simulation input deck:
// an ordered list of keywords, each holding records of kind-homogeneous
// typed items. The model carries no parsing; decks are built
// programmatically or decoded from a serialized Document, and are
// read-only once built.
package deck

import "errors"

// ValueKind identifies the single kind of value a DeckItem holds. The kind
// is fixed at construction and never changes.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindString
	KindDouble
	KindUDA
)

// String returns the lowercase kind name used in serialized documents.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindDouble:
		return "double"
	case KindUDA:
		return "uda"
	default:
		return "unknown"
	}
}

// ParseKind maps a serialized kind name back to its ValueKind.
func ParseKind(s string) (ValueKind, error) {
	switch s {
	case "int":
		return KindInt, nil
	case "string":
		return KindString, nil
	case "double":
		return KindDouble, nil
	case "uda":
		return KindUDA, nil
	default:
		return 0, ErrUnknownItemKind
	}
}

// ValueStatus records how a single value position was populated.
type ValueStatus uint8

const (
	// StatusDeckValue marks a position explicitly supplied by the deck author.
	StatusDeckValue ValueStatus = 1 << iota
	// StatusValidDefault marks a position filled from a schema default that
	// carries a usable value.
	StatusValidDefault
	// StatusEmptyDefault marks a defaulted position with no usable value.
	StatusEmptyDefault
)

// hasValue reports whether the position holds a usable value. A valid schema
// default counts; an empty default does not.
func (s ValueStatus) hasValue() bool { return s&(StatusDeckValue|StatusValidDefault) != 0 }

// defaulted reports whether the position was filled from a schema default
// rather than supplied in the source deck.
func (s ValueStatus) defaulted() bool { return s&(StatusValidDefault|StatusEmptyDefault) != 0 }

var (
	// ErrUnknownItemKind is returned when an item's declared kind is none of
	// the four defined kinds. The kind is fixed at construction, so hitting
	// this means the model was extended with a kind this layer does not know
	// about; it is an invariant violation, not a recoverable condition.
	ErrUnknownItemKind = errors.New("deck: unknown item kind")

	// ErrKindMismatch is returned by typed accessors invoked on an item or
	// value of a different kind.
	ErrKindMismatch = errors.New("deck: item kind mismatch")

	// ErrIndexRange is returned by positional accessors for positions the
	// item does not have, including position 0 of an empty item.
	ErrIndexRange = errors.New("deck: value index out of range")

	// ErrNotFound is returned by name lookups on records and decks.
	ErrNotFound = errors.New("deck: not found")
)
