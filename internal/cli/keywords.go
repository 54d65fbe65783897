package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckio/deckctl/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "List the keyword occurrences of a stored deck",
		Run:   runKeywords,
	}

	cmd.Flags().StringP("name", "n", "", "Deck name (required)")
	cmd.Flags().Int("version", 0, "Specific version (default: latest)")

	cmd.MarkFlagRequired("name")

	RootCmd.AddCommand(cmd)
}

func runKeywords(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	version, _ := cmd.Flags().GetInt("version")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	kws, err := s.Keywords(cmd.Context(), store.GetParams{Name: name, Version: version})
	if err != nil {
		exitErr("keywords", err)
	}

	b, _ := json.MarshalIndent(kws, "", "  ")
	fmt.Println(string(b))
}
