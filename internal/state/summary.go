// Package state holds the runtime summary vectors that symbolic
// user-defined arguments resolve against. Unlike the deck model, a
// SummaryState is mutated as a simulation advances, so it is safe for
// concurrent use.
package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/deckio/deckctl/internal/deck"
)

// ErrNoSuchKey is returned when a summary key has never been updated.
var ErrNoSuchKey = errors.New("state: no such summary key")

// totals are the variable suffixes that accumulate across updates instead
// of being overwritten; cumulative totals keep growing while rates are
// replaced wholesale each report step.
var totals = []string{
	"OPT", "GPT", "WPT", "GIT", "WIT", "OIT",
	"VPT", "VIT", "LPT", "NPT", "NIT",
	"CPT", "CIT", "SPT", "SIT", "EPT", "EIT",
}

// isTotal reports whether the key names a cumulative quantity. The first
// character is the category (well, group, field, ...) and is skipped;
// scoped keys like "WOPT:P1" are classified by their variable part.
func isTotal(key string) bool {
	i := strings.IndexByte(key, ':')
	if i == 0 {
		return false
	}
	if i > 0 {
		return isTotal(key[:i])
	}
	if len(key) < 2 {
		return false
	}
	for _, t := range totals {
		if strings.HasPrefix(key[1:], t) {
			return true
		}
	}
	return false
}

// SummaryState is the key to value table of current summary vectors, with
// well- and group-scoped views alongside the flat key space.
type SummaryState struct {
	mu      sync.RWMutex
	values  map[string]float64
	wells   map[string]map[string]float64
	groups  map[string]map[string]float64
	elapsed float64
}

// New returns an empty summary state.
func New() *SummaryState {
	return &SummaryState{
		values: make(map[string]float64),
		wells:  make(map[string]map[string]float64),
		groups: make(map[string]map[string]float64),
	}
}

// Update sets the value of key, accumulating for cumulative totals.
func (s *SummaryState) Update(key string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, value)
}

func (s *SummaryState) set(key string, value float64) {
	if isTotal(key) {
		s.values[key] += value
	} else {
		s.values[key] = value
	}
}

// UpdateWellVar sets a well-scoped variable, also visible in the flat key
// space as "VAR:WELL".
func (s *SummaryState) UpdateWellVar(well, varName string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(varName+":"+well, value)
	m := s.wells[varName]
	if m == nil {
		m = make(map[string]float64)
		s.wells[varName] = m
	}
	if isTotal(varName) {
		m[well] += value
	} else {
		m[well] = value
	}
}

// UpdateGroupVar sets a group-scoped variable, also visible in the flat key
// space as "VAR:GROUP".
func (s *SummaryState) UpdateGroupVar(group, varName string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(varName+":"+group, value)
	m := s.groups[varName]
	if m == nil {
		m = make(map[string]float64)
		s.groups[varName] = m
	}
	if isTotal(varName) {
		m[group] += value
	} else {
		m[group] = value
	}
}

// UpdateElapsed accumulates simulated time.
func (s *SummaryState) UpdateElapsed(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.elapsed += delta
}

// Elapsed returns the accumulated simulated time.
func (s *SummaryState) Elapsed() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsed
}

// Has reports whether key has ever been updated.
func (s *SummaryState) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[key]
	return ok
}

// Get returns the current value of key, or ErrNoSuchKey.
func (s *SummaryState) Get(key string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNoSuchKey, key)
	}
	return v, nil
}

// GetOr returns the current value of key, or fallback if it was never set.
func (s *SummaryState) GetOr(key string, fallback float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return fallback
	}
	return v
}

// HasWellVar reports whether the well-scoped variable has been set.
func (s *SummaryState) HasWellVar(well, varName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.wells[varName][well]
	return ok
}

// GetWellVar returns a well-scoped variable, or ErrNoSuchKey.
func (s *SummaryState) GetWellVar(well, varName string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.wells[varName][well]
	if !ok {
		return 0, fmt.Errorf("%w: %s:%s", ErrNoSuchKey, varName, well)
	}
	return v, nil
}

// HasGroupVar reports whether the group-scoped variable has been set.
func (s *SummaryState) HasGroupVar(group, varName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.groups[varName][group]
	return ok
}

// GetGroupVar returns a group-scoped variable, or ErrNoSuchKey.
func (s *SummaryState) GetGroupVar(group, varName string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.groups[varName][group]
	if !ok {
		return 0, fmt.Errorf("%w: %s:%s", ErrNoSuchKey, varName, group)
	}
	return v, nil
}

// Wells returns the wells seen so far, in no particular order.
func (s *SummaryState) Wells() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, m := range s.wells {
		for w := range m {
			if !seen[w] {
				seen[w] = true
				out = append(out, w)
			}
		}
	}
	return out
}

// ResolveUDA resolves a user-defined argument to a concrete number: a
// numeric UDA yields its payload directly, a symbolic one is looked up in
// the flat key space.
func (s *SummaryState) ResolveUDA(u deck.UDAValue) (float64, error) {
	if u.IsNumeric() {
		return u.Number()
	}
	key, err := u.Str()
	if err != nil {
		return 0, err
	}
	return s.Get(key)
}
