package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deckio/deckctl/internal/deck"
	"github.com/deckio/deckctl/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a serialized deck document into the catalog",
		Long: "Import a JSON deck document. The document carries the in-memory model\n" +
			"(keywords, records, typed items with per-position status); deckctl does\n" +
			"not read raw deck text.",
		Args: cobra.ExactArgs(1),
		Run:  runImport,
	}

	cmd.Flags().StringP("name", "n", "", "Catalog name (default: document name, then file base name)")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")

	b, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read document", err)
	}
	var doc deck.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		exitErr("parse document", err)
	}
	d, err := deck.FromDocument(doc)
	if err != nil {
		exitErr("validate document", err)
	}

	if name == "" {
		name = doc.Name
	}
	if name == "" {
		base := filepath.Base(args[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	info, err := s.Put(cmd.Context(), store.PutParams{Name: name, Deck: d})
	if err != nil {
		exitErr("import", err)
	}

	out, _ := json.MarshalIndent(info, "", "  ")
	fmt.Println(string(out))
}
