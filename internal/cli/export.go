package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deckio/deckctl/internal/deck"
	"github.com/deckio/deckctl/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a stored deck",
		Long:  "Export a stored deck as a JSON document, or render it as keyword/record text with --format deck.",
		Run:   runExport,
	}

	cmd.Flags().StringP("name", "n", "", "Deck name (required)")
	cmd.Flags().Int("version", 0, "Specific version (default: latest)")
	cmd.Flags().StringP("format", "f", "json", "Output format: json or deck")

	cmd.MarkFlagRequired("name")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	version, _ := cmd.Flags().GetInt("version")
	format, _ := cmd.Flags().GetString("format")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	d, _, err := s.Get(cmd.Context(), store.GetParams{Name: name, Version: version})
	if err != nil {
		exitErr("export", err)
	}

	switch format {
	case "deck":
		if err := d.Write(os.Stdout); err != nil {
			exitErr("render deck", err)
		}
	case "json":
		doc, err := deck.ToDocument(name, d)
		if err != nil {
			exitErr("encode deck", err)
		}
		b, _ := json.MarshalIndent(doc, "", "  ")
		fmt.Println(string(b))
	default:
		exitErr("export", fmt.Errorf("unknown format %q", format))
	}
}
