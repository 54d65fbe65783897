package deck

import (
	"encoding/json"
	"errors"
	"testing"
)

func testDeck(t *testing.T) *Deck {
	t.Helper()
	d := New()
	d.Add(wconprodKeyword(t, "P1", NumericUDA(1500.5)))
	d.Add(wconprodKeyword(t, "P2", StringUDA("WUOPRL")))

	empty := mustItem(t)(EmptyDefaultItem("GRAT", KindDouble))
	kw, err := NewKeyword("WCONHIST", NewRecord(empty))
	if err != nil {
		t.Fatalf("build keyword: %v", err)
	}
	d.Add(kw)
	return d
}

func TestDocumentRoundTrip(t *testing.T) {
	d := testDeck(t)

	doc, err := ToDocument("CASE1", d)
	if err != nil {
		t.Fatalf("to document: %v", err)
	}
	if doc.Name != "CASE1" {
		t.Errorf("expected name CASE1, got %q", doc.Name)
	}
	if len(doc.Keywords) != 3 {
		t.Fatalf("expected 3 keywords, got %d", len(doc.Keywords))
	}

	back, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("from document: %v", err)
	}
	if back.Size() != 3 {
		t.Fatalf("expected 3 keywords after round trip, got %d", back.Size())
	}

	kw, err := back.Keyword("WCONPROD")
	if err != nil {
		t.Fatalf("keyword: %v", err)
	}
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
		t.Errorf("expected WUOPRL (last occurrence), got %v", v)
	}

	status, _ := rec.ItemByName("STATUS")
	def, _ := status.IsDefaulted()
	if !def {
		t.Error("defaulted flag lost in round trip")
	}

	hist, _ := back.Keyword("WCONHIST")
	hrec, _ := hist.Record(0)
	grat, _ := hrec.Item(0)
	set, _ := grat.IsSet()
	def, _ = grat.IsDefaulted()
	if set || !def {
		t.Errorf("empty default lost in round trip: set=%v defaulted=%v", set, def)
	}
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc, err := ToDocument("CASE1", testDeck(t))
	if err != nil {
		t.Fatalf("to document: %v", err)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Document
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	d, err := FromDocument(decoded)
	if err != nil {
		t.Fatalf("from document: %v", err)
	}
	if d.Count("WCONPROD") != 2 {
		t.Errorf("expected 2 WCONPROD occurrences, got %d", d.Count("WCONPROD"))
	}
}

func TestFromDocument_Invalid(t *testing.T) {
	_, err := FromDocument(Document{Keywords: []KeywordDoc{{
		Name: "BAD",
		Records: []RecordDoc{{Items: []ItemDoc{{
			Kind:   "float", // not a kind name
			Status: []string{"value"},
		}}}},
	}}})
	if !errors.Is(err, ErrUnknownItemKind) {
		t.Fatalf("expected ErrUnknownItemKind, got %v", err)
	}

	_, err = FromDocument(Document{Keywords: []KeywordDoc{{
		Name: "BAD",
		Records: []RecordDoc{{Items: []ItemDoc{{
			Kind:   "int",
			Ints:   []int{1},
			Status: []string{"sideways"},
		}}}},
	}}})
	if !errors.Is(err, ErrUnknownItemKind) {
		t.Fatalf("expected ErrUnknownItemKind for bad status, got %v", err)
	}

	_, err = FromDocument(Document{Keywords: []KeywordDoc{{
		Name: "BAD",
		Records: []RecordDoc{{Items: []ItemDoc{{
			Kind:   "int",
			Ints:   []int{1, 2},
			Status: []string{"value"},
		}}}},
	}}})
	if !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch for length mismatch, got %v", err)
	}
}
