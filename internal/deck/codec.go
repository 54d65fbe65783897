package deck

import "fmt"

// Document is the serialized form of a deck: plain exported structs shared
// by the JSON import/export surface and the catalog's msgpack payloads.
// The model's invariants are re-validated when a document is decoded.
type Document struct {
	Name     string       `json:"name,omitempty" msgpack:"name"`
	Keywords []KeywordDoc `json:"keywords" msgpack:"keywords"`
}

// KeywordDoc is the serialized form of one keyword occurrence.
type KeywordDoc struct {
	Name    string      `json:"name" msgpack:"name"`
	Records []RecordDoc `json:"records" msgpack:"records"`
}

// RecordDoc is the serialized form of one record.
type RecordDoc struct {
	Items []ItemDoc `json:"items" msgpack:"items"`
}

// ItemDoc is the serialized form of one item. Exactly one of the typed
// value slices is populated, matching Kind; Status has one entry per value
// position.
type ItemDoc struct {
	Name    string    `json:"name,omitempty" msgpack:"name"`
	Kind    string    `json:"kind" msgpack:"kind"`
	Ints    []int     `json:"ints,omitempty" msgpack:"ints"`
	Doubles []float64 `json:"doubles,omitempty" msgpack:"doubles"`
	Strings []string  `json:"strings,omitempty" msgpack:"strings"`
	UDAs    []UDADoc  `json:"udas,omitempty" msgpack:"udas"`
	Status  []string  `json:"status" msgpack:"status"`
}

// UDADoc is the serialized form of a user-defined argument: a number, or a
// symbolic summary key.
type UDADoc struct {
	Number *float64 `json:"number,omitempty" msgpack:"number"`
	Key    string   `json:"key,omitempty" msgpack:"key"`
}

const (
	statusValueName   = "value"
	statusDefaultName = "default"
	statusEmptyName   = "empty"
)

func statusName(s ValueStatus) (string, error) {
	switch s {
	case StatusDeckValue:
		return statusValueName, nil
	case StatusValidDefault:
		return statusDefaultName, nil
	case StatusEmptyDefault:
		return statusEmptyName, nil
	default:
		return "", fmt.Errorf("value status %d: %w", s, ErrUnknownItemKind)
	}
}

func parseStatus(s string) (ValueStatus, error) {
	switch s {
	case statusValueName:
		return StatusDeckValue, nil
	case statusDefaultName:
		return StatusValidDefault, nil
	case statusEmptyName:
		return StatusEmptyDefault, nil
	default:
		return 0, fmt.Errorf("value status %q: %w", s, ErrUnknownItemKind)
	}
}

// ToDocument converts a deck into its serialized document form.
func ToDocument(name string, d *Deck) (Document, error) {
	doc := Document{Name: name, Keywords: make([]KeywordDoc, 0, d.Size())}
	for _, kw := range d.All() {
		kwDoc := KeywordDoc{Name: kw.Name(), Records: make([]RecordDoc, 0, kw.Size())}
		for _, rec := range kw.Records() {
			recDoc := RecordDoc{Items: make([]ItemDoc, 0, rec.Size())}
			for _, it := range rec.Items() {
				itDoc, err := itemToDoc(it)
				if err != nil {
					return Document{}, fmt.Errorf("keyword %s: %w", kw.Name(), err)
				}
				recDoc.Items = append(recDoc.Items, itDoc)
			}
			kwDoc.Records = append(kwDoc.Records, recDoc)
		}
		doc.Keywords = append(doc.Keywords, kwDoc)
	}
	return doc, nil
}

func itemToDoc(it DeckItem) (ItemDoc, error) {
	doc := ItemDoc{Name: it.Name(), Kind: it.Kind().String()}
	doc.Status = make([]string, 0, it.Len())
	for _, s := range it.status {
		name, err := statusName(s)
		if err != nil {
			return ItemDoc{}, fmt.Errorf("item %q: %w", it.Name(), err)
		}
		doc.Status = append(doc.Status, name)
	}
	for _, v := range it.values {
		switch it.kind {
		case KindInt:
			doc.Ints = append(doc.Ints, v.i)
		case KindString:
			doc.Strings = append(doc.Strings, v.s)
		case KindDouble:
			doc.Doubles = append(doc.Doubles, v.d)
		case KindUDA:
			var u UDADoc
			if v.uda.IsNumeric() {
				n := v.uda.number
				u.Number = &n
			} else {
				u.Key = v.uda.key
			}
			doc.UDAs = append(doc.UDAs, u)
		default:
			return ItemDoc{}, fmt.Errorf("item %q: kind %d: %w", it.Name(), it.kind, ErrUnknownItemKind)
		}
	}
	return doc, nil
}

// FromDocument rebuilds a deck from its serialized form, re-validating the
// model's construction invariants.
func FromDocument(doc Document) (*Deck, error) {
	d := New()
	for _, kwDoc := range doc.Keywords {
		records := make([]DeckRecord, 0, len(kwDoc.Records))
		for ri, recDoc := range kwDoc.Records {
			items := make([]DeckItem, 0, len(recDoc.Items))
			for _, itDoc := range recDoc.Items {
				it, err := itemFromDoc(itDoc)
				if err != nil {
					return nil, fmt.Errorf("keyword %s record %d: %w", kwDoc.Name, ri, err)
				}
				items = append(items, it)
			}
			records = append(records, NewRecord(items...))
		}
		kw, err := NewKeyword(kwDoc.Name, records...)
		if err != nil {
			return nil, err
		}
		d.Add(kw)
	}
	return d, nil
}

func itemFromDoc(doc ItemDoc) (DeckItem, error) {
	kind, err := ParseKind(doc.Kind)
	if err != nil {
		return DeckItem{}, fmt.Errorf("item %q: kind %q: %w", doc.Name, doc.Kind, err)
	}
	var values []DeckValue
	switch kind {
	case KindInt:
		for _, v := range doc.Ints {
			values = append(values, IntValue(v))
		}
	case KindString:
		for _, v := range doc.Strings {
			values = append(values, StringValue(v))
		}
	case KindDouble:
		for _, v := range doc.Doubles {
			values = append(values, DoubleValue(v))
		}
	case KindUDA:
		for _, u := range doc.UDAs {
			if u.Number != nil {
				values = append(values, UDAValueOf(NumericUDA(*u.Number)))
			} else {
				values = append(values, UDAValueOf(StringUDA(u.Key)))
			}
		}
	}
	status := make([]ValueStatus, 0, len(doc.Status))
	for _, s := range doc.Status {
		st, err := parseStatus(s)
		if err != nil {
			return DeckItem{}, fmt.Errorf("item %q: %w", doc.Name, err)
		}
		status = append(status, st)
	}
	return NewItem(doc.Name, kind, values, status)
}
