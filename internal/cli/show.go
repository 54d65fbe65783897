package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deckio/deckctl/internal/deck"
	"github.com/deckio/deckctl/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one item of a stored deck",
		Long: "Show the value, defaulted flag and set flag of a single record item.\n" +
			"Without --index the first position is reported, which is what nearly\n" +
			"every keyword query needs; --index selects other positions of\n" +
			"multi-value items.",
		Run: runShow,
	}

	cmd.Flags().StringP("name", "n", "", "Deck name (required)")
	cmd.Flags().Int("version", 0, "Specific version (default: latest)")
	cmd.Flags().StringP("keyword", "k", "", "Keyword name (required)")
	cmd.Flags().Int("occurrence", -1, "Keyword occurrence (default: last)")
	cmd.Flags().IntP("record", "r", 0, "Record index")
	cmd.Flags().StringP("item", "i", "0", "Item index or schema name")
	cmd.Flags().Int("index", 0, "Value position within the item")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("keyword")

	RootCmd.AddCommand(cmd)
}

// itemView is the JSON shape of an item query.
type itemView struct {
	Keyword   string `json:"keyword"`
	Record    int    `json:"record"`
	Item      string `json:"item,omitempty"`
	Kind      string `json:"kind"`
	Length    int    `json:"length"`
	Index     int    `json:"index"`
	Value     any    `json:"value"`
	Defaulted bool   `json:"defaulted"`
	Set       bool   `json:"set"`
}

func runShow(cmd *cobra.Command, args []string) {
	index, _ := cmd.Flags().GetInt("index")

	it, where, err := lookupItem(cmd)
	if err != nil {
		exitErr("show", err)
	}

	view := itemView{
		Keyword: where.keyword,
		Record:  where.record,
		Item:    it.Name(),
		Kind:    it.Kind().String(),
		Length:  it.Len(),
		Index:   index,
	}
	if index == 0 {
		// The position-0 contract: Value, IsDefaulted, IsSet.
		view.Value, err = it.Value()
		if err == nil {
			view.Defaulted, err = it.IsDefaulted()
		}
		if err == nil {
			view.Set, err = it.IsSet()
		}
	} else {
		view.Value, err = valueAt(it, index)
		if err == nil {
			view.Defaulted, err = it.Defaulted(index)
		}
		if err == nil {
			view.Set, err = it.HasValue(index)
		}
	}
	if err != nil {
		exitErr("show", err)
	}

	b, _ := json.MarshalIndent(view, "", "  ")
	fmt.Println(string(b))
}

// valueAt dispatches the indexed typed accessors the way Value does for
// position 0, yielding a plain scalar.
func valueAt(it deck.DeckItem, i int) (any, error) {
	switch it.Kind() {
	case deck.KindInt:
		return it.GetInt(i)
	case deck.KindString:
		return it.GetStr(i)
	case deck.KindDouble:
		return it.GetRaw(i)
	case deck.KindUDA:
		u, err := it.GetUDA(i)
		if err != nil {
			return nil, err
		}
		return u.Resolved(), nil
	default:
		return nil, deck.ErrUnknownItemKind
	}
}

type itemCoord struct {
	keyword string
	record  int
}

// lookupItem resolves the deck/keyword/record/item flags shared by the show
// and resolve commands into a single item.
func lookupItem(cmd *cobra.Command) (deck.DeckItem, itemCoord, error) {
	name, _ := cmd.Flags().GetString("name")
	version, _ := cmd.Flags().GetInt("version")
	keyword, _ := cmd.Flags().GetString("keyword")
	occurrence, _ := cmd.Flags().GetInt("occurrence")
	record, _ := cmd.Flags().GetInt("record")
	itemRef, _ := cmd.Flags().GetString("item")

	coord := itemCoord{keyword: keyword, record: record}

	s, err := openStore()
	if err != nil {
		return deck.DeckItem{}, coord, fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	d, _, err := s.Get(cmd.Context(), store.GetParams{Name: name, Version: version})
	if err != nil {
		return deck.DeckItem{}, coord, err
	}

	var kw deck.DeckKeyword
	if occurrence < 0 {
		kw, err = d.Keyword(keyword)
	} else {
		occs := d.Keywords(keyword)
		if occurrence >= len(occs) {
			err = fmt.Errorf("keyword %s: occurrence %d of %d: %w",
				keyword, occurrence, len(occs), deck.ErrIndexRange)
		} else {
			kw = occs[occurrence]
		}
	}
	if err != nil {
		return deck.DeckItem{}, coord, err
	}

	rec, err := kw.Record(record)
	if err != nil {
		return deck.DeckItem{}, coord, err
	}

	if idx, convErr := strconv.Atoi(itemRef); convErr == nil {
		it, err := rec.Item(idx)
		return it, coord, err
	}
	it, err := rec.ItemByName(itemRef)
	return it, coord, err
}
