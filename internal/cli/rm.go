package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deckio/deckctl/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a stored deck",
		Run:   runRm,
	}

	cmd.Flags().StringP("name", "n", "", "Deck name (required)")
	cmd.Flags().Bool("all", false, "Remove every version, not just the latest")

	cmd.MarkFlagRequired("name")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	all, _ := cmd.Flags().GetBool("all")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Rm(cmd.Context(), store.RmParams{Name: name, AllVersions: all}); err != nil {
		exitErr("rm", err)
	}

	if all {
		fmt.Printf("removed %s (all versions)\n", name)
	} else {
		fmt.Printf("removed %s (latest version)\n", name)
	}
}
