package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckio/deckctl/internal/state"
)

func init() {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a user-defined argument to a number",
		Long: "Resolve a UDA item against summary values supplied as --set KEY=VALUE\n" +
			"pairs. Numeric UDAs resolve to their own payload; symbolic ones are\n" +
			"looked up among the supplied keys.",
		Run: runResolve,
	}

	cmd.Flags().StringP("name", "n", "", "Deck name (required)")
	cmd.Flags().Int("version", 0, "Specific version (default: latest)")
	cmd.Flags().StringP("keyword", "k", "", "Keyword name (required)")
	cmd.Flags().Int("occurrence", -1, "Keyword occurrence (default: last)")
	cmd.Flags().IntP("record", "r", 0, "Record index")
	cmd.Flags().StringP("item", "i", "0", "Item index or schema name")
	cmd.Flags().Int("index", 0, "Value position within the item")
	cmd.Flags().StringArray("set", nil, "Summary value as KEY=VALUE (repeatable)")

	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("keyword")

	RootCmd.AddCommand(cmd)
}

type resolveView struct {
	Item     string  `json:"item,omitempty"`
	Numeric  bool    `json:"numeric"`
	Key      string  `json:"key,omitempty"`
	Resolved float64 `json:"resolved"`
}

func runResolve(cmd *cobra.Command, args []string) {
	index, _ := cmd.Flags().GetInt("index")
	pairs, _ := cmd.Flags().GetStringArray("set")

	st := state.New()
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok {
			exitErr("resolve", fmt.Errorf("malformed --set %q, expected KEY=VALUE", pair))
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			exitErr("resolve", fmt.Errorf("malformed --set %q: %w", pair, err))
		}
		st.Update(key, v)
	}

	it, _, err := lookupItem(cmd)
	if err != nil {
		exitErr("resolve", err)
	}

	u, err := it.GetUDA(index)
	if err != nil {
		exitErr("resolve", err)
	}

	view := resolveView{Item: it.Name(), Numeric: u.IsNumeric()}
	if !u.IsNumeric() {
		view.Key, _ = u.Str()
	}
	view.Resolved, err = st.ResolveUDA(u)
	if err != nil {
		exitErr("resolve", err)
	}

	b, _ := json.MarshalIndent(view, "", "  ")
	fmt.Println(string(b))
}
