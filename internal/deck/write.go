package deck

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Write renders the deck in keyword/record text form: a name line per
// keyword, each record indented and terminated by a slash, and a lone slash
// closing the keyword. Defaulted positions collapse into n* tokens. This is
// an output surface only; the model never reads deck text back.
func (d *Deck) Write(w io.Writer) error {
	for _, kw := range d.keywords {
		if err := kw.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// Write renders a single keyword occurrence.
func (k DeckKeyword) Write(w io.Writer) error {
	var b strings.Builder
	b.WriteString(k.name)
	b.WriteByte('\n')
	for _, rec := range k.records {
		line, err := rec.render()
		if err != nil {
			return fmt.Errorf("write keyword %s: %w", k.name, err)
		}
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString(" /\n")
	}
	b.WriteString("/\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// render flattens the record's values into one line of tokens, collapsing
// runs of defaulted positions into n*.
func (r DeckRecord) render() (string, error) {
	var tokens []string
	defaults := 0
	flush := func() {
		if defaults == 0 {
			return
		}
		tokens = append(tokens, strconv.Itoa(defaults)+"*")
		defaults = 0
	}
	for _, it := range r.items {
		for i := range it.values {
			if it.status[i].defaulted() {
				defaults++
				continue
			}
			tok, err := renderValue(it, i)
			if err != nil {
				return "", err
			}
			flush()
			tokens = append(tokens, tok)
		}
	}
	flush()
	return strings.Join(tokens, " "), nil
}

func renderValue(it DeckItem, i int) (string, error) {
	v := it.values[i]
	switch it.kind {
	case KindInt:
		return strconv.Itoa(v.i), nil
	case KindDouble:
		return strconv.FormatFloat(v.d, 'g', -1, 64), nil
	case KindString:
		return "'" + v.s + "'", nil
	case KindUDA:
		if v.uda.IsNumeric() {
			return strconv.FormatFloat(v.uda.number, 'g', -1, 64), nil
		}
		return "'" + v.uda.key + "'", nil
	default:
		return "", fmt.Errorf("item %q: kind %d: %w", it.name, it.kind, ErrUnknownItemKind)
	}
}
