package deck

import "fmt"

// DeckRecord is one ordered group of items within a keyword occurrence.
type DeckRecord struct {
	items []DeckItem
}

// NewRecord groups items into a record, preserving order.
func NewRecord(items ...DeckItem) DeckRecord {
	return DeckRecord{items: items}
}

// Size returns the number of items in the record.
func (r DeckRecord) Size() int { return len(r.items) }

// Item returns the item at position i.
func (r DeckRecord) Item(i int) (DeckItem, error) {
	if i < 0 || i >= len(r.items) {
		return DeckItem{}, fmt.Errorf("record: item %d of %d: %w", i, len(r.items), ErrIndexRange)
	}
	return r.items[i], nil
}

// ItemByName returns the first item with the given schema name.
func (r DeckRecord) ItemByName(name string) (DeckItem, error) {
	for _, it := range r.items {
		if it.name == name {
			return it, nil
		}
	}
	return DeckItem{}, fmt.Errorf("record: item %q: %w", name, ErrNotFound)
}

// Items returns the record's items in order. The returned slice is shared;
// records are read-only after construction so callers must not mutate it.
func (r DeckRecord) Items() []DeckItem { return r.items }
