package tui

import (
	"strings"

	"sharapu/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

// wideLayoutWidth is the width at which the menu is shown as a sidebar and the
// overlay drawer closes itself.
const wideLayoutWidth = 120

const sidebarWidth = 24

// scrollLock suspends scrolling of the results list while any hold is live.
type scrollLock struct {
	holders int
}

func (l *scrollLock) Locked() bool { return l != nil && l.holders > 0 }

// Acquire takes a hold. The hold must be released on every path that ends it.
func (l *scrollLock) Acquire() *scrollHold {
	l.holders++
	return &scrollHold{lock: l}
}

type scrollHold struct {
	lock     *scrollLock
	released bool
}

// Release gives the hold back. Calling it again (or on nil) does nothing.
func (h *scrollHold) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true
	h.lock.holders--
}

// drawer is the hirer navigation menu. Narrow terminals show it as an overlay
// that holds the scroll lock; wide terminals show it inline as a sidebar.
type drawer struct {
	open   bool
	inline bool
	cursor int
	hold   *scrollHold
}

func (m *appModel) openDrawer() {
	if m.drawer.open {
		return
	}
	m.drawer.open = true
	m.drawer.cursor = activeRouteIndex(m.router)
	m.drawer.inline = m.isWide()
	if !m.drawer.inline {
		m.drawer.hold = m.scroll.Acquire()
	}
}

func (m *appModel) closeDrawer() {
	m.drawer.hold.Release()
	m.drawer = drawer{}
}

func (m *appModel) chooseDrawerEntry() {
	routes := nav.HirerRoutes()
	if m.drawer.cursor < 0 || m.drawer.cursor >= len(routes) {
		m.closeDrawer()
		return
	}
	r := routes[m.drawer.cursor]
	m.closeDrawer()
	m.navigate(r.Path, r.State)
}

func (m *appModel) moveDrawerCursor(delta int) {
	n := len(nav.HirerRoutes())
	m.drawer.cursor = (m.drawer.cursor + delta + n) % n
}

func activeRouteIndex(r *nav.Router) int {
	for i, route := range nav.HirerRoutes() {
		if r.IsActive(route.Path) {
			return i
		}
	}
	return 0
}

// renderMenu renders the hirer menu. The cursor is only drawn while focused.
func renderMenu(r *nav.Router, cursor int, focused bool, width int) string {
	var b strings.Builder
	b.WriteString(styleTitle().Render("Menu"))
	b.WriteString("\n\n")
	for i, route := range nav.HirerRoutes() {
		marker := "  "
		if r.IsActive(route.Path) {
			marker = "• "
		}
		line := truncateToWidth(marker+route.Label, width-2)
		if focused && i == cursor {
			line = styleSelectedRow().Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if focused {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("enter: go  esc: close"))
	} else {
		b.WriteString("\n")
		b.WriteString(styleMuted().Render("m: menu"))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func renderDrawerOverlay(r *nav.Router, cursor int, width int) string {
	return renderModalBox(width, "", renderMenu(r, cursor, true, modalBodyWidth(width)))
}

func modalBodyWidth(width int) int {
	w := width - 10
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorModalBorder).
		Padding(0, 1).
		Width(bodyW + 2)
	if strings.TrimSpace(title) != "" {
		content = styleTitle().Render(title) + "\n\n" + content
	}
	return box.Render(content)
}
