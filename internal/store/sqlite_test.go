package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deckio/deckctl/internal/deck"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "decks.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testDeck(t *testing.T) *deck.Deck {
	t.Helper()
	well, err := deck.SuppliedItem("WELL", deck.StringValue("PROD"))
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	orat, err := deck.SuppliedItem("ORAT", deck.UDAValueOf(deck.StringUDA("WUOPRL")))
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	bhp, err := deck.DefaultedItem("BHP", deck.DoubleValue(1.01325))
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	kw, err := deck.NewKeyword("WCONPROD", deck.NewRecord(well, orat, bhp))
	if err != nil {
		t.Fatalf("keyword: %v", err)
	}
	dims, err := deck.SuppliedItem("data", deck.IntValue(10), deck.IntValue(10), deck.IntValue(3))
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	dimens, err := deck.NewKeyword("DIMENS", deck.NewRecord(dims))
	if err != nil {
		t.Fatalf("keyword: %v", err)
	}

	d := deck.New()
	d.Add(dimens)
	d.Add(kw)
	return d
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	info, err := s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Version != 1 {
		t.Errorf("expected version 1, got %d", info.Version)
	}
	if info.ID == "" {
		t.Error("expected non-empty ID")
	}
	if info.KeywordCount != 2 {
		t.Errorf("expected 2 keywords, got %d", info.KeywordCount)
	}

	d, got, err := s.Get(ctx, GetParams{Name: "CASE1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != info.ID {
		t.Errorf("expected ID %s, got %s", info.ID, got.ID)
	}
	if !d.HasKeyword("WCONPROD") {
		t.Fatal("round-tripped deck lost WCONPROD")
	}

	// The item-level contract survives the msgpack round trip.
	kw, _ := d.Keyword("WCONPROD")
	rec, _ := kw.Record(0)
	orat, err := rec.ItemByName("ORAT")
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	v, err := orat.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "WUOPRL" {
		t.Errorf("expected WUOPRL, got %v", v)
	}
	bhp, _ := rec.ItemByName("BHP")
	def, _ := bhp.IsDefaulted()
	if !def {
		t.Error("defaulted flag lost in storage round trip")
	}
}

func TestVersioning(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)}); err != nil {
		t.Fatalf("put v1: %v", err)
	}
	info, err := s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})
	if err != nil {
		t.Fatalf("put v2: %v", err)
	}
	if info.Version != 2 {
		t.Errorf("expected version 2, got %d", info.Version)
	}

	_, latest, err := s.Get(ctx, GetParams{Name: "CASE1"})
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if latest.Version != 2 {
		t.Errorf("expected latest version 2, got %d", latest.Version)
	}

	_, v1, err := s.Get(ctx, GetParams{Name: "CASE1", Version: 1})
	if err != nil {
		t.Fatalf("get v1: %v", err)
	}
	if v1.Version != 1 {
		t.Errorf("expected version 1, got %d", v1.Version)
	}
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, _, err := s.Get(context.Background(), GetParams{Name: "NOPE"})
	if !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("expected ErrDeckNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})
	s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})
	s.Put(ctx, PutParams{Name: "CASE2", Deck: testDeck(t)})

	infos, err := s.List(ctx, ListParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 entries (latest per name), got %d", len(infos))
	}
	for _, info := range infos {
		if info.Name == "CASE1" && info.Version != 2 {
			t.Errorf("expected CASE1 at version 2, got %d", info.Version)
		}
	}
}

func TestKeywords(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})

	kws, err := s.Keywords(ctx, GetParams{Name: "CASE1"})
	if err != nil {
		t.Fatalf("keywords: %v", err)
	}
	if len(kws) != 2 {
		t.Fatalf("expected 2 keyword rows, got %d", len(kws))
	}
	if kws[0].Name != "DIMENS" || kws[0].Seq != 0 {
		t.Errorf("unexpected first row %+v", kws[0])
	}
	if kws[1].Name != "WCONPROD" || kws[1].RecordCount != 1 {
		t.Errorf("unexpected second row %+v", kws[1])
	}
}

func TestRm(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})
	s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})

	// Latest only: version 1 survives.
	if err := s.Rm(ctx, RmParams{Name: "CASE1"}); err != nil {
		t.Fatalf("rm: %v", err)
	}
	_, info, err := s.Get(ctx, GetParams{Name: "CASE1"})
	if err != nil {
		t.Fatalf("get after rm: %v", err)
	}
	if info.Version != 1 {
		t.Errorf("expected version 1 after rm, got %d", info.Version)
	}

	if err := s.Rm(ctx, RmParams{Name: "CASE1", AllVersions: true}); err != nil {
		t.Fatalf("rm all: %v", err)
	}
	if _, _, err := s.Get(ctx, GetParams{Name: "CASE1"}); !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("expected ErrDeckNotFound, got %v", err)
	}
	if err := s.Rm(ctx, RmParams{Name: "CASE1"}); !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("expected ErrDeckNotFound from rm, got %v", err)
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})
	s.Put(ctx, PutParams{Name: "CASE1", Deck: testDeck(t)})
	s.Put(ctx, PutParams{Name: "CASE2", Deck: testDeck(t)})

	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Decks != 2 {
		t.Errorf("expected 2 decks, got %d", st.Decks)
	}
	if st.Versions != 3 {
		t.Errorf("expected 3 versions, got %d", st.Versions)
	}
	if st.Keywords != 6 {
		t.Errorf("expected 6 keyword rows, got %d", st.Keywords)
	}
	if st.DBPath == "" {
		t.Error("expected db path")
	}
}
