// Package store provides the deck catalog interface and its SQLite
// implementation. The catalog persists serialized decks under a name and
// versions them: a new Put under an existing name supersedes the previous
// version.
package store

import (
	"context"
	"time"

	"github.com/deckio/deckctl/internal/deck"
)

// PutParams holds parameters for storing a deck.
type PutParams struct {
	Name string
	Deck *deck.Deck
}

// GetParams holds parameters for retrieving a deck.
type GetParams struct {
	Name    string
	Version int // 0 means latest
}

// ListParams holds parameters for listing catalog entries.
type ListParams struct {
	Limit int
}

// RmParams holds parameters for removing a deck.
type RmParams struct {
	Name        string
	AllVersions bool
}

// DeckInfo is one catalog row.
type DeckInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Version      int       `json:"version"`
	KeywordCount int       `json:"keywords"`
	CreatedAt    time.Time `json:"created_at"`
}

// KeywordInfo summarizes one keyword occurrence of a stored deck.
type KeywordInfo struct {
	Seq         int    `json:"seq"`
	Name        string `json:"name"`
	RecordCount int    `json:"records"`
}

// Stats summarizes the catalog.
type Stats struct {
	Decks    int    `json:"decks"`
	Versions int    `json:"versions"`
	Keywords int    `json:"keywords"`
	DBPath   string `json:"db_path"`
	DBBytes  int64  `json:"db_bytes"`
}

// Store defines the deck catalog interface.
type Store interface {
	// Put stores a deck under a name, superseding any previous version.
	Put(ctx context.Context, p PutParams) (*DeckInfo, error)

	// Get retrieves a stored deck and its catalog row.
	Get(ctx context.Context, p GetParams) (*deck.Deck, *DeckInfo, error)

	// List lists the latest version of every stored deck.
	List(ctx context.Context, p ListParams) ([]DeckInfo, error)

	// Keywords lists the keyword occurrences of a stored deck without
	// decoding its payload.
	Keywords(ctx context.Context, p GetParams) ([]KeywordInfo, error)

	// Rm removes the latest version of a deck, or every version.
	Rm(ctx context.Context, p RmParams) error

	// Stats reports catalog totals.
	Stats(ctx context.Context) (*Stats, error)

	// Close closes the store.
	Close() error
}
