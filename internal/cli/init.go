package cli

import (
	"fmt"

	"sharapu/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInitCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the content store and seed it with the default interviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.store()
			if err := s.Ensure(); err != nil {
				return writeErr(cmd, err)
			}

			if s.Exists() && !force {
				existing, err := s.LoadItems(cmd.Context())
				if err != nil {
					return writeErr(cmd, err)
				}
				if len(existing) > 0 {
					return writeOut(cmd, app, map[string]any{
						"data": map[string]any{
							"dir":    s.Dir,
							"path":   s.Path(),
							"items":  len(existing),
							"seeded": false,
						},
						"_hints": []string{
							"store already has content; pass --force to replace it with the defaults",
						},
					})
				}
			}

			items, err := store.DefaultContent()
			if err != nil {
				return writeErr(cmd, fmt.Errorf("default content: %w", err))
			}
			backup, err := s.Backup()
			if err != nil {
				return writeErr(cmd, fmt.Errorf("backup: %w", err))
			}
			if err := s.SaveItems(cmd.Context(), items); err != nil {
				return writeErr(cmd, err)
			}
			app.log.Info("store seeded", zap.String("path", s.Path()), zap.Int("items", len(items)), zap.String("backup", backup))

			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"dir":    s.Dir,
					"path":   s.Path(),
					"items":  len(items),
					"seeded": true,
					"backup": backup,
				},
				"_hints": []string{
					"sharapu items list",
					"run `sharapu` to browse interactively",
				},
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace existing content with the defaults")
	return cmd
}
