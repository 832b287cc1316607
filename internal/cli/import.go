package cli

import (
	"fmt"

	"sharapu/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.yaml|file.json>",
		Short: "Replace the store's content with the items of a seed file",
		Long: `Replace the store's content with the items of a seed file.

The file holds {items: [...]}. YAML is assumed unless the extension is .json.
Items without an id get a generated item-xxxxxxxx id. The previous store file
is kept as <store>.bak.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := store.LoadSeedFile(args[0])
			if err != nil {
				return writeErr(cmd, fmt.Errorf("import: %w", err))
			}

			s := app.store()
			if err := s.Ensure(); err != nil {
				return writeErr(cmd, err)
			}
			backup, err := s.Backup()
			if err != nil {
				return writeErr(cmd, fmt.Errorf("backup: %w", err))
			}
			if err := s.SaveItems(cmd.Context(), items); err != nil {
				return writeErr(cmd, err)
			}
			app.log.Info("content imported",
				zap.String("file", args[0]),
				zap.Int("items", len(items)),
				zap.String("backup", backup),
			)

			hints := []string{"sharapu items list", "sharapu categories"}
			if backup != "" {
				hints = append(hints, "previous content saved to "+backup)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"path":   s.Path(),
					"items":  len(items),
					"backup": backup,
				},
				"_hints": hints,
			})
		},
	}
	return cmd
}
