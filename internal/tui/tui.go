package tui

import (
	"context"

	"sharapu/internal/filter"
	"sharapu/internal/nav"
	"sharapu/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options configures the interactive shell.
type Options struct {
	Store      store.Store
	Content    store.ContentProvider // defaults to an uncached provider over Store
	Router     *nav.Router
	Categories []string
	TagPolicy  filter.TagPolicy
	Logger     *zap.Logger
}

func Run(ctx context.Context, opts Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	applyThemePreference()
	applyColorProfilePreference()

	if opts.Router == nil {
		opts.Router = nav.NewRouter(nav.PathInterview)
	}
	if opts.Logger != nil {
		log := opts.Logger.Named("nav")
		opts.Router.OnChange(func(loc nav.Location) {
			log.Info("navigate", zap.String("path", loc.Path), zap.Any("state", loc.State))
		})
	}

	m := newAppModel(ctx, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	return err
}
