package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type view int

const (
	viewListing view = iota
	viewPlaceholder
)

// reloadInterval is how often the store file is polled for outside writes.
const reloadInterval = 2 * time.Second

type reloadTickMsg struct{}

func tickReload() tea.Cmd {
	return tea.Tick(reloadInterval, func(time.Time) tea.Msg { return reloadTickMsg{} })
}

// invalidator is implemented by caching content providers.
type invalidator interface {
	Invalidate()
}
