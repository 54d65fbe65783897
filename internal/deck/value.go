package deck

// DeckValue is the construction-time variant used to populate items before
// they are frozen into their kind-homogeneous form. Only the payload
// matching Kind is meaningful; the other fields stay at their zero values.
type DeckValue struct {
	kind ValueKind
	i    int
	d    float64
	s    string
	uda  UDAValue
}

// IntValue wraps an integer deck value.
func IntValue(v int) DeckValue { return DeckValue{kind: KindInt, i: v} }

// StringValue wraps a string deck value.
func StringValue(s string) DeckValue { return DeckValue{kind: KindString, s: s} }

// DoubleValue wraps a raw (unit-unconverted) floating point deck value.
func DoubleValue(v float64) DeckValue { return DeckValue{kind: KindDouble, d: v} }

// UDAValueOf wraps a user-defined argument.
func UDAValueOf(u UDAValue) DeckValue { return DeckValue{kind: KindUDA, uda: u} }

// Kind returns the kind of the wrapped payload.
func (v DeckValue) Kind() ValueKind { return v.kind }

// zeroValue is the placeholder stored at empty-default positions so that the
// value and status sequences stay the same length.
func zeroValue(kind ValueKind) DeckValue {
	return DeckValue{kind: kind}
}
