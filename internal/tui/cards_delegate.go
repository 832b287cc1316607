package tui

import (
	"fmt"
	"io"
	"strings"

	"sharapu/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// contentItem is a results row.
type contentItem struct {
	item model.ContentItem
}

func (i contentItem) FilterValue() string { return i.item.Title }
func (i contentItem) Title() string       { return i.item.Title }
func (i contentItem) Description() string { return i.item.Summary }

type cardDelegate struct {
	normalCard   lipgloss.Style
	selectedCard lipgloss.Style
	titleStyle   lipgloss.Style
	metaStyle    lipgloss.Style
}

func newCardDelegate() cardDelegate {
	base := lipgloss.NewStyle().
		Padding(0, 1, 0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorCardBorder).
		Foreground(colorSurfaceFg)

	return cardDelegate{
		normalCard:   base,
		selectedCard: base.BorderForeground(colorAccent),
		titleStyle:   styleTitle(),
		metaStyle:    lipgloss.NewStyle().Foreground(colorCardMetaFg),
	}
}

func (d cardDelegate) Height() int  { return 5 } // 3 inner lines + border top/bottom
func (d cardDelegate) Spacing() int { return 1 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	totalW := m.Width()
	if totalW < 12 {
		fmt.Fprint(w, "")
		return
	}
	it, ok := item.(contentItem)
	if !ok {
		return
	}

	card := d.normalCard
	if index == m.Index() {
		card = d.selectedCard
	}
	innerW := totalW - card.GetHorizontalFrameSize()
	if innerW < 1 {
		innerW = 1
	}
	card = card.Width(innerW)

	title := strings.TrimSpace(it.item.Title)
	if title == "" {
		title = "(untitled)"
	}
	summary := strings.TrimSpace(it.item.Summary)
	if summary == "" {
		summary = "(no summary)"
	}

	lines := []string{
		d.titleStyle.Render(truncateToWidth(title, innerW)),
		d.metaStyle.Render(truncateToWidth(summary, innerW)),
		d.metaStyle.Render(truncateToWidth(cardMeta(it.item), innerW)),
	}
	fmt.Fprint(w, card.Render(strings.Join(lines, "\n")))
}

// cardMeta is the "category • #tags • author • date" line.
func cardMeta(it model.ContentItem) string {
	var parts []string
	if c := strings.TrimSpace(it.Category); c != "" {
		parts = append(parts, c)
	}
	if tags := it.Tags.Sorted(); len(tags) > 0 {
		parts = append(parts, "#"+strings.Join(tags, " #"))
	}
	if a := strings.TrimSpace(it.Author); a != "" {
		parts = append(parts, a)
	}
	if it.PublishedAt != nil {
		parts = append(parts, it.PublishedAt.Format("2006-01-02"))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " • ")
}

func truncateToWidth(s string, w int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func newResultsList() list.Model {
	l := list.New([]list.Item{}, newCardDelegate(), 0, 0)
	l.Title = "Results"
	// Header, chips and footer are rendered by the app; keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	// The filter package decides what is visible.
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	// q and esc are handled by the app.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	l.KeyMap.CursorUp.SetKeys(append(cursorUpKeys, "ctrl+p")...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	l.KeyMap.CursorDown.SetKeys(append(cursorDownKeys, "ctrl+n")...)
	return l
}

func selectListItemByID(l *list.Model, id string) bool {
	for i, it := range l.Items() {
		if ci, ok := it.(contentItem); ok && ci.item.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}
