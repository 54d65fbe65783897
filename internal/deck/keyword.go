package deck

import "fmt"

// DeckKeyword is a named section of a deck holding zero or more records.
type DeckKeyword struct {
	name    string
	records []DeckRecord
}

// NewKeyword builds a keyword from its records. The name must be non-empty.
func NewKeyword(name string, records ...DeckRecord) (DeckKeyword, error) {
	if name == "" {
		return DeckKeyword{}, fmt.Errorf("keyword with empty name: %w", ErrNotFound)
	}
	return DeckKeyword{name: name, records: records}, nil
}

// Name returns the keyword name.
func (k DeckKeyword) Name() string { return k.name }

// Size returns the number of records.
func (k DeckKeyword) Size() int { return len(k.records) }

// Record returns the record at position i.
func (k DeckKeyword) Record(i int) (DeckRecord, error) {
	if i < 0 || i >= len(k.records) {
		return DeckRecord{}, fmt.Errorf("keyword %s: record %d of %d: %w", k.name, i, len(k.records), ErrIndexRange)
	}
	return k.records[i], nil
}

// Records returns the keyword's records in order. The returned slice is
// shared and must not be mutated.
func (k DeckKeyword) Records() []DeckRecord { return k.records }

func (k DeckKeyword) String() string { return k.name }

// IntData flattens all integer values of a data keyword into one slice,
// record by record, item by item. Any non-int item is a kind mismatch.
func (k DeckKeyword) IntData() ([]int, error) {
	var out []int
	for _, rec := range k.records {
		for _, it := range rec.items {
			if it.kind != KindInt {
				return nil, fmt.Errorf("keyword %s: item %q is %s, not int: %w", k.name, it.name, it.kind, ErrKindMismatch)
			}
			for _, v := range it.values {
				out = append(out, v.i)
			}
		}
	}
	return out, nil
}

// RawDoubleData flattens all floating point values of a data keyword into
// one slice in their raw, unit-unconverted form.
func (k DeckKeyword) RawDoubleData() ([]float64, error) {
	var out []float64
	for _, rec := range k.records {
		for _, it := range rec.items {
			if it.kind != KindDouble {
				return nil, fmt.Errorf("keyword %s: item %q is %s, not double: %w", k.name, it.name, it.kind, ErrKindMismatch)
			}
			for _, v := range it.values {
				out = append(out, v.d)
			}
		}
	}
	return out, nil
}

// StringData flattens all string values of a data keyword into one slice.
func (k DeckKeyword) StringData() ([]string, error) {
	var out []string
	for _, rec := range k.records {
		for _, it := range rec.items {
			if it.kind != KindString {
				return nil, fmt.Errorf("keyword %s: item %q is %s, not string: %w", k.name, it.name, it.kind, ErrKindMismatch)
			}
			for _, v := range it.values {
				out = append(out, v.s)
			}
		}
	}
	return out, nil
}
