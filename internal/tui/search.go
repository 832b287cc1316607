package tui

import (
	"strings"

	"sharapu/internal/filter"
	"sharapu/internal/selection"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type searchFocus int

const (
	focusQuery searchFocus = iota
	focusCategories
	focusTags
)

// searchOverlay edits the selection. It holds only cursor positions; the
// selection itself lives in the manager.
type searchOverlay struct {
	open      bool
	focus     searchFocus
	input     textinput.Model
	catCursor int
	tagCursor int
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search titles, summaries and bodies"
	ti.Prompt = "/ "
	ti.CharLimit = 0 // no limit; pasted queries are kept whole
	return ti
}

func (m *appModel) openSearch() {
	m.search.open = true
	m.search.focus = focusQuery
	m.search.input.SetValue(m.sel.State().Query)
	m.search.input.CursorEnd()
	m.search.input.Focus()
}

func (m *appModel) closeSearch() {
	m.search.open = false
	m.search.input.Blur()
}

func (m *appModel) cycleSearchFocus(delta int) {
	m.search.focus = searchFocus((int(m.search.focus) + delta + 3) % 3)
	if m.search.focus == focusQuery {
		m.search.input.Focus()
	} else {
		m.search.input.Blur()
	}
}

func (m appModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.closeSearch()
		return m, nil
	case "tab":
		m.cycleSearchFocus(1)
		return m, nil
	case "shift+tab":
		m.cycleSearchFocus(-1)
		return m, nil
	case "ctrl+c":
		return m.quit()
	}

	switch m.search.focus {
	case focusQuery:
		if msg.String() == "enter" {
			m.closeSearch()
			return m, nil
		}
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		// Forwarded verbatim: no trimming or normalization.
		m.applySelection(m.sel.SetQuery(m.search.input.Value()))
		return m, cmd

	case focusCategories:
		cats := m.chipLabels()
		switch msg.String() {
		case "left", "up", "h", "k":
			m.search.catCursor = stepCursor(m.search.catCursor, -1, len(cats))
		case "right", "down", "l", "j":
			m.search.catCursor = stepCursor(m.search.catCursor, 1, len(cats))
		case " ", "enter":
			if m.search.catCursor < len(cats) {
				m.applySelection(m.sel.SelectCategory(cats[m.search.catCursor]))
			}
		}
		return m, nil

	case focusTags:
		tags := m.knownTags
		switch msg.String() {
		case "left", "up", "h", "k":
			m.search.tagCursor = stepCursor(m.search.tagCursor, -1, len(tags))
		case "right", "down", "l", "j":
			m.search.tagCursor = stepCursor(m.search.tagCursor, 1, len(tags))
		case " ", "enter":
			if m.search.tagCursor < len(tags) {
				next := m.sel.State().Tags.Toggle(tags[m.search.tagCursor])
				m.applySelection(m.sel.SelectTags(next))
			}
		case "a":
			m.toggleTagPolicy()
		}
		return m, nil
	}
	return m, nil
}

// toggleTagPolicy flips between matching any and all selected tags.
func (m *appModel) toggleTagPolicy() {
	if m.policy == filter.MatchAll {
		m.policy = filter.MatchAny
	} else {
		m.policy = filter.MatchAll
	}
	m.log.Debug("tag policy", zap.Stringer("match", m.policy))
	m.refreshResults()
}

func stepCursor(cur, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return (cur + delta + n) % n
}

func (m appModel) renderSearchOverlay() string {
	st := m.sel.State()
	bodyW := modalBodyWidth(m.width)

	var b strings.Builder
	b.WriteString(m.search.input.View())
	b.WriteString("\n\n")

	b.WriteString(sectionLabel("Category", m.search.focus == focusCategories))
	b.WriteString("\n")
	b.WriteString(renderPicker(m.chipLabels(), st.Category.Is, m.search.catCursor, m.search.focus == focusCategories, bodyW))
	b.WriteString("\n\n")

	b.WriteString(sectionLabel("Tags ("+m.policy.String()+")", m.search.focus == focusTags))
	b.WriteString("\n")
	if len(m.knownTags) == 0 {
		b.WriteString(styleMuted().Render("(no tags)"))
	} else {
		b.WriteString(renderPicker(m.knownTags, st.Tags.Has, m.search.tagCursor, m.search.focus == focusTags, bodyW))
	}
	b.WriteString("\n\n")
	b.WriteString(styleMuted().Render("tab: focus  space: toggle  a: tags any/all  enter/esc: close"))

	return renderModalBox(m.width, "Search", b.String())
}

func sectionLabel(s string, focused bool) string {
	if focused {
		return styleTitle().Render("› " + s)
	}
	return styleMuted().Render("  " + s)
}

// renderPicker lays out options as chips, wrapping at width.
func renderPicker(options []string, on func(string) bool, cursor int, focused bool, width int) string {
	chips := make([]string, 0, len(options))
	for i, opt := range options {
		label := opt
		if on(opt) {
			label = "✓ " + label
		}
		chip := styleChip(on(opt)).Render(label)
		if focused && i == cursor {
			chip = styleSelectedRow().Padding(0, 1).Render("[" + label + "]")
		}
		chips = append(chips, chip)
	}
	return wrapChips(chips, width)
}

// searchSummary describes the active selection in one line, for the status row.
func searchSummary(st selection.State) string {
	var parts []string
	if name, ok := st.Category.Name(); ok {
		parts = append(parts, "category: "+name)
	}
	if st.Tags.Len() > 0 {
		parts = append(parts, "tags: #"+strings.Join(st.Tags.Sorted(), " #"))
	}
	if st.Query != "" {
		parts = append(parts, "query: \""+st.Query+"\"")
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, "  ")
}
