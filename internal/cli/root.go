package cli

import (
	"errors"
	"fmt"
	"strings"

	"sharapu/internal/config"
	"sharapu/internal/format"
	"sharapu/internal/logging"
	"sharapu/internal/nav"
	"sharapu/internal/store"
	"sharapu/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Dir        string
	Format     string
	PrettyJSON bool
	LogLevel   string
	ConfigPath string

	cfg *config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "sharapu",
		Short:        "SharApu interviews: browse, filter and search work-from-home stories",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  sharapu

  # Seed the store with the default interviews
  sharapu init

  # Scriptable filtering
  sharapu items list --category "Beginner's Guide" --tag 're*' --query desk

  # Direct item lookup (shortcut for: sharapu items show <item-id>)
  sharapu item-kx2m7qaa
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Sync()
		}
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Content store dir (default: ~/.sharapu/content)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "json", "Output format (json|edn|table)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Config file (default: ~/.sharapu/config.yaml)")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newItemsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newTagsCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// setup resolves config (defaults < file < env < flags) and builds the logger.
func (app *App) setup(cmd *cobra.Command) error {
	bindings := []config.FlagBinding{
		{Key: config.KeyDir, Flag: cmd.Flags().Lookup("dir")},
		{Key: config.KeyFormat, Flag: cmd.Flags().Lookup("format")},
		{Key: config.KeyPretty, Flag: cmd.Flags().Lookup("pretty")},
		{Key: config.KeyLogLevel, Flag: cmd.Flags().Lookup("log-level")},
	}
	if f := cmd.Flags().Lookup("match"); f != nil {
		bindings = append(bindings, config.FlagBinding{Key: config.KeyTagMatch, Flag: f})
	}

	opts := []config.Option{config.WithFlags(bindings...)}
	if strings.TrimSpace(app.ConfigPath) != "" {
		opts = append(opts, config.WithConfigPath(app.ConfigPath))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg
	app.Dir = cfg.Dir
	app.Format = cfg.Format
	app.PrettyJSON = cfg.Pretty
	app.LogLevel = cfg.LogLevel

	// The TUI owns the terminal, so only CLI commands get a console core.
	interactive := cmd == cmd.Root()
	log, err := logging.New(logging.Options{
		Level:         cfg.LogLevel,
		File:          cfg.LogFile,
		Console:       !interactive,
		ConsoleWriter: cmd.ErrOrStderr(),
	})
	if err != nil {
		return writeErr(cmd, fmt.Errorf("init logging: %w", err))
	}
	app.log = log.With(zap.String("command", cmd.CommandPath()))
	return nil
}

func (app *App) store() store.Store {
	return store.Store{Dir: app.Dir}
}

func runTUI(cmd *cobra.Command, app *App) error {
	s := app.store()
	content := store.NewCachedProvider(store.NewProvider(s, app.log), app.cfg.CacheTTL)
	return tui.Run(cmd.Context(), tui.Options{
		Store:      s,
		Content:    content,
		Router:     nav.NewRouter(nav.PathInterview),
		Categories: app.cfg.Categories,
		TagPolicy:  app.cfg.TagPolicy,
		Logger:     app.log,
	})
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return reportedError{err: err}
}

// reportedError marks an error writeErr already printed.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already written to stderr by a command.
// Errors cobra raises itself (unknown flags, bad args) are not.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}
