package deck

import (
	"errors"
	"testing"
)

// wconprodKeyword builds a WCONPROD-like occurrence: one record with a
// well name, a defaulted status and a UDA rate target.
func wconprodKeyword(t *testing.T, well string, rate UDAValue) DeckKeyword {
	t.Helper()
	name := mustItem(t)(SuppliedItem("WELL", StringValue(well)))
	status := mustItem(t)(DefaultedItem("STATUS", StringValue("OPEN")))
	orat := mustItem(t)(SuppliedItem("ORAT", UDAValueOf(rate)))
	kw, err := NewKeyword("WCONPROD", NewRecord(name, status, orat))
	if err != nil {
		t.Fatalf("build keyword: %v", err)
	}
	return kw
}

func TestDeck_Lookup(t *testing.T) {
	d := New()
	d.Add(wconprodKeyword(t, "P1", NumericUDA(1000)))
	d.Add(wconprodKeyword(t, "P2", StringUDA("WUOPRL")))

	if d.Size() != 2 {
		t.Fatalf("expected 2 keywords, got %d", d.Size())
	}
	if !d.HasKeyword("WCONPROD") {
		t.Fatal("expected WCONPROD present")
	}
	if d.HasKeyword("WCONINJE") {
		t.Fatal("unexpected WCONINJE")
	}
	if n := d.Count("WCONPROD"); n != 2 {
		t.Errorf("expected count 2, got %d", n)
	}

	// By-name lookup returns the last occurrence.
	kw, err := d.Keyword("WCONPROD")
	if err != nil {
		t.Fatalf("keyword: %v", err)
	}
	rec, _ := kw.Record(0)
	well, _ := rec.Item(0)
	v, _ := well.Value()
	if v != "P2" {
		t.Errorf("expected last occurrence (P2), got %v", v)
	}

	all := d.Keywords("WCONPROD")
	if len(all) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(all))
	}

	if _, err := d.Keyword("SCHEDULE"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := d.At(5); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
}

func TestRecord_Lookup(t *testing.T) {
	kw := wconprodKeyword(t, "P1", NumericUDA(1000))
	rec, err := kw.Record(0)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rec.Size() != 3 {
		t.Fatalf("expected 3 items, got %d", rec.Size())
	}

	it, err := rec.ItemByName("ORAT")
	if err != nil {
		t.Fatalf("item by name: %v", err)
	}
	if !it.IsUDA() {
		t.Error("ORAT should be a UDA item")
	}
	if _, err := rec.ItemByName("NOPE"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := rec.Item(3); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
	if _, err := kw.Record(1); !errors.Is(err, ErrIndexRange) {
		t.Errorf("expected ErrIndexRange, got %v", err)
	}
}

func TestKeyword_DataArrays(t *testing.T) {
	dims := mustItem(t)(SuppliedItem("data", IntValue(10), IntValue(10), IntValue(3)))
	kw, err := NewKeyword("DIMENS", NewRecord(dims))
	if err != nil {
		t.Fatalf("build keyword: %v", err)
	}

	ints, err := kw.IntData()
	if err != nil {
		t.Fatalf("int data: %v", err)
	}
	if len(ints) != 3 || ints[0] != 10 || ints[2] != 3 {
		t.Errorf("unexpected int data %v", ints)
	}
	if _, err := kw.RawDoubleData(); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}
	if _, err := kw.StringData(); !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected ErrKindMismatch, got %v", err)
	}

	poro := mustItem(t)(SuppliedItem("data", DoubleValue(0.25), DoubleValue(0.3)))
	pk, _ := NewKeyword("PORO", NewRecord(poro))
	doubles, err := pk.RawDoubleData()
	if err != nil {
		t.Fatalf("raw double data: %v", err)
	}
	if len(doubles) != 2 || doubles[1] != 0.3 {
		t.Errorf("unexpected double data %v", doubles)
	}
}

func TestNewKeyword_EmptyName(t *testing.T) {
	if _, err := NewKeyword(""); err == nil {
		t.Fatal("expected error for empty keyword name")
	}
}
