package deck

import (
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	d := New()
	d.Add(wconprodKeyword(t, "P1", NumericUDA(1500.5)))

	var b strings.Builder
	if err := d.Write(&b); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "WCONPROD\n  'P1' 1* 1500.5 /\n/\n"
	if b.String() != want {
		t.Errorf("expected %q, got %q", want, b.String())
	}
}

func TestWrite_DefaultRuns(t *testing.T) {
	a := mustItem(t)(SuppliedItem("A", IntValue(1)))
	b1 := mustItem(t)(DefaultedItem("B", DoubleValue(0)))
	c := mustItem(t)(EmptyDefaultItem("C", KindDouble))
	e := mustItem(t)(SuppliedItem("E", StringValue("X")))
	kw, err := NewKeyword("KW", NewRecord(a, b1, c, e))
	if err != nil {
		t.Fatalf("build keyword: %v", err)
	}

	var b strings.Builder
	if err := kw.Write(&b); err != nil {
		t.Fatalf("write: %v", err)
	}
	// Adjacent defaulted positions collapse across item boundaries.
	want := "KW\n  1 2* 'X' /\n/\n"
	if b.String() != want {
		t.Errorf("expected %q, got %q", want, b.String())
	}
}

func TestWrite_SymbolicUDA(t *testing.T) {
	orat := mustItem(t)(SuppliedItem("ORAT", UDAValueOf(StringUDA("WUOPRL"))))
	kw, err := NewKeyword("WCONPROD", NewRecord(orat))
	if err != nil {
		t.Fatalf("build keyword: %v", err)
	}
	var b strings.Builder
	if err := kw.Write(&b); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(b.String(), "'WUOPRL'") {
		t.Errorf("expected quoted summary key, got %q", b.String())
	}
}
