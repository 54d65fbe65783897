package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite"

	"github.com/deckio/deckctl/internal/deck"
)

// ErrDeckNotFound is returned for names or versions the catalog does not
// hold.
var ErrDeckNotFound = errors.New("store: deck not found")

// SQLiteStore implements Store using SQLite. Deck payloads are stored as
// msgpack-encoded documents; keyword occurrences get one row each so
// listings never decode a payload.
type SQLiteStore struct {
	db      *sql.DB
	path    string
	entropy *rand.Rand
	log     zerolog.Logger
}

// NewSQLiteStore opens or creates a SQLite catalog at the given path.
func NewSQLiteStore(dbPath string, log zerolog.Logger) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		path:    dbPath,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		log:     log.With().Str("component", "deck_store").Logger(),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS decks (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		version       INTEGER NOT NULL DEFAULT 1,
		keyword_count INTEGER NOT NULL,
		created_at    TEXT NOT NULL,
		payload       BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_decks_name ON decks(name, version DESC);
	CREATE INDEX IF NOT EXISTS idx_decks_created ON decks(created_at DESC);

	CREATE TABLE IF NOT EXISTS deck_keywords (
		deck_id      TEXT NOT NULL REFERENCES decks(id),
		seq          INTEGER NOT NULL,
		name         TEXT NOT NULL,
		record_count INTEGER NOT NULL,
		PRIMARY KEY (deck_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_deck_keywords_name ON deck_keywords(name);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Put(ctx context.Context, p PutParams) (*DeckInfo, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("put deck: empty name")
	}
	if p.Deck == nil {
		return nil, fmt.Errorf("put deck %q: nil deck", p.Name)
	}

	doc, err := deck.ToDocument(p.Name, p.Deck)
	if err != nil {
		return nil, fmt.Errorf("encode deck %q: %w", p.Name, err)
	}
	payload, err := msgpack.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode deck %q: %w", p.Name, err)
	}

	now := time.Now().UTC()
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	version := 1
	var prevVersion int
	err = tx.QueryRowContext(ctx,
		`SELECT version FROM decks WHERE name = ? ORDER BY version DESC LIMIT 1`,
		p.Name).Scan(&prevVersion)
	if err == nil {
		version = prevVersion + 1
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO decks (id, name, version, keyword_count, created_at, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, p.Name, version, p.Deck.Size(), now.Format(time.RFC3339), payload)
	if err != nil {
		return nil, fmt.Errorf("insert deck: %w", err)
	}

	for seq, kw := range p.Deck.All() {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO deck_keywords (deck_id, seq, name, record_count) VALUES (?, ?, ?, ?)`,
			id, seq, kw.Name(), kw.Size())
		if err != nil {
			return nil, fmt.Errorf("insert keyword row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.log.Debug().Str("name", p.Name).Int("version", version).
		Int("keywords", p.Deck.Size()).Msg("deck stored")

	return &DeckInfo{
		ID:           id,
		Name:         p.Name,
		Version:      version,
		KeywordCount: p.Deck.Size(),
		CreatedAt:    now,
	}, nil
}

func (s *SQLiteStore) row(ctx context.Context, p GetParams) (*DeckInfo, []byte, error) {
	var (
		info      DeckInfo
		createdAt string
		payload   []byte
	)
	var err error
	if p.Version > 0 {
		err = s.db.QueryRowContext(ctx,
			`SELECT id, name, version, keyword_count, created_at, payload
			 FROM decks WHERE name = ? AND version = ?`,
			p.Name, p.Version).
			Scan(&info.ID, &info.Name, &info.Version, &info.KeywordCount, &createdAt, &payload)
	} else {
		err = s.db.QueryRowContext(ctx,
			`SELECT id, name, version, keyword_count, created_at, payload
			 FROM decks WHERE name = ? ORDER BY version DESC LIMIT 1`,
			p.Name).
			Scan(&info.ID, &info.Name, &info.Version, &info.KeywordCount, &createdAt, &payload)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("%w: %s", ErrDeckNotFound, p.Name)
	}
	if err != nil {
		return nil, nil, err
	}
	info.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &info, payload, nil
}

func (s *SQLiteStore) Get(ctx context.Context, p GetParams) (*deck.Deck, *DeckInfo, error) {
	info, payload, err := s.row(ctx, p)
	if err != nil {
		return nil, nil, err
	}

	var doc deck.Document
	if err := msgpack.Unmarshal(payload, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode deck %q: %w", p.Name, err)
	}
	d, err := deck.FromDocument(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("decode deck %q: %w", p.Name, err)
	}

	s.log.Debug().Str("name", p.Name).Int("version", info.Version).Msg("deck loaded")
	return d, info, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]DeckInfo, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.name, d.version, d.keyword_count, d.created_at
		FROM decks d
		INNER JOIN (
			SELECT name, MAX(version) AS max_ver FROM decks GROUP BY name
		) latest ON d.name = latest.name AND d.version = latest.max_ver
		ORDER BY d.created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []DeckInfo
	for rows.Next() {
		var info DeckInfo
		var createdAt string
		if err := rows.Scan(&info.ID, &info.Name, &info.Version, &info.KeywordCount, &createdAt); err != nil {
			return nil, err
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

func (s *SQLiteStore) Keywords(ctx context.Context, p GetParams) ([]KeywordInfo, error) {
	info, _, err := s.row(ctx, p)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, name, record_count FROM deck_keywords WHERE deck_id = ? ORDER BY seq`,
		info.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var kws []KeywordInfo
	for rows.Next() {
		var kw KeywordInfo
		if err := rows.Scan(&kw.Seq, &kw.Name, &kw.RecordCount); err != nil {
			return nil, err
		}
		kws = append(kws, kw)
	}
	return kws, rows.Err()
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) error {
	if p.AllVersions {
		_, err := s.db.ExecContext(ctx,
			`DELETE FROM deck_keywords WHERE deck_id IN (SELECT id FROM decks WHERE name = ?)`,
			p.Name)
		if err != nil {
			return err
		}
		res, err := s.db.ExecContext(ctx, `DELETE FROM decks WHERE name = ?`, p.Name)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: %s", ErrDeckNotFound, p.Name)
		}
		s.log.Debug().Str("name", p.Name).Msg("deck removed, all versions")
		return nil
	}

	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM decks WHERE name = ? ORDER BY version DESC LIMIT 1`,
		p.Name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrDeckNotFound, p.Name)
	}
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM deck_keywords WHERE deck_id = ?`, id); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id); err != nil {
		return err
	}
	s.log.Debug().Str("name", p.Name).Msg("deck removed, latest version")
	return nil
}

func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	st := &Stats{DBPath: s.path}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT name), COUNT(*) FROM decks`).Scan(&st.Decks, &st.Versions); err != nil {
		return nil, err
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM deck_keywords`).Scan(&st.Keywords); err != nil {
		return nil, err
	}
	if fi, err := os.Stat(s.path); err == nil {
		st.DBBytes = fi.Size()
	}
	return st, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
