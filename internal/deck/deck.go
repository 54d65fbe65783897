package deck

import "fmt"

// Deck is the ordered list of keywords making up one simulation input
// document. Keywords may occur more than once; by-name lookup follows the
// source convention of returning the last occurrence, since later
// occurrences override earlier ones. A deck is populated with Add during
// loading and treated as read-only afterwards; concurrent readers need no
// coordination once population is done.
type Deck struct {
	keywords []DeckKeyword
	index    map[string][]int
}

// New returns an empty deck.
func New() *Deck {
	return &Deck{index: make(map[string][]int)}
}

// Add appends a keyword occurrence to the deck.
func (d *Deck) Add(kw DeckKeyword) {
	d.index[kw.name] = append(d.index[kw.name], len(d.keywords))
	d.keywords = append(d.keywords, kw)
}

// Size returns the number of keyword occurrences.
func (d *Deck) Size() int { return len(d.keywords) }

// HasKeyword reports whether the deck contains at least one occurrence of
// the named keyword.
func (d *Deck) HasKeyword(name string) bool {
	return len(d.index[name]) > 0
}

// Count returns the number of occurrences of the named keyword.
func (d *Deck) Count(name string) int { return len(d.index[name]) }

// Keyword returns the last occurrence of the named keyword.
func (d *Deck) Keyword(name string) (DeckKeyword, error) {
	occ := d.index[name]
	if len(occ) == 0 {
		return DeckKeyword{}, fmt.Errorf("deck: keyword %s: %w", name, ErrNotFound)
	}
	return d.keywords[occ[len(occ)-1]], nil
}

// Keywords returns every occurrence of the named keyword in deck order.
func (d *Deck) Keywords(name string) []DeckKeyword {
	occ := d.index[name]
	if len(occ) == 0 {
		return nil
	}
	out := make([]DeckKeyword, len(occ))
	for i, idx := range occ {
		out[i] = d.keywords[idx]
	}
	return out
}

// At returns the keyword occurrence at deck position i.
func (d *Deck) At(i int) (DeckKeyword, error) {
	if i < 0 || i >= len(d.keywords) {
		return DeckKeyword{}, fmt.Errorf("deck: keyword %d of %d: %w", i, len(d.keywords), ErrIndexRange)
	}
	return d.keywords[i], nil
}

// All returns every keyword occurrence in deck order. The returned slice is
// shared and must not be mutated.
func (d *Deck) All() []DeckKeyword { return d.keywords }
