package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckio/deckctl/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cataloged decks",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 0, "Maximum entries (default 50)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	infos, err := s.List(cmd.Context(), store.ListParams{Limit: limit})
	if err != nil {
		exitErr("list", err)
	}

	b, _ := json.MarshalIndent(infos, "", "  ")
	fmt.Println(string(b))
}
