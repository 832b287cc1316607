package tui

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"sharapu/internal/docs"
	"sharapu/internal/filter"
	"sharapu/internal/model"
	"sharapu/internal/nav"
	"sharapu/internal/selection"
	"sharapu/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	headerHeight = 6 // tagline, title, blog line, chips, status, blank
	footerHeight = 2
)

type appModel struct {
	ctx     context.Context
	store   store.Store
	content store.ContentProvider
	router  *nav.Router
	sel     *selection.Manager
	log     *zap.Logger

	policy     filter.TagPolicy
	categories []string

	width  int
	height int

	items           []model.ContentItem
	visible         []model.ContentItem
	facetCategories []string
	knownTags       []string
	lastModTime     time.Time

	results    list.Model
	showDetail bool
	showHelp   bool

	search searchOverlay
	drawer drawer
	scroll *scrollLock
}

func newAppModel(ctx context.Context, opts Options) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	router := opts.Router
	if router == nil {
		router = nav.NewRouter(nav.PathInterview)
	}
	content := opts.Content
	if content == nil {
		content = store.NewProvider(opts.Store, log)
	}

	m := appModel{
		ctx:        ctx,
		store:      opts.Store,
		content:    content,
		router:     router,
		sel:        selection.NewManager(),
		log:        log.Named("tui"),
		policy:     opts.TagPolicy,
		categories: append([]string(nil), opts.Categories...),
		results:    newResultsList(),
		scroll:     &scrollLock{},
	}
	m.search.input = newSearchInput()
	m.reload(true)
	return m
}

func (m appModel) Init() tea.Cmd { return tickReload() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Crossing the wide breakpoint closes the menu either way: the overlay
		// becomes a sidebar, or the sidebar focus has nowhere to render.
		if m.drawer.open && m.drawer.inline != m.isWide() {
			m.closeDrawer()
		}
		if m.isWide() {
			m.showDetail = false
		}
		m.resizeLists()
		return m, nil

	case reloadTickMsg:
		// A moved mtime means an outside write; otherwise read through the
		// provider's cache, which only goes to the store once its TTL lapses.
		m.reload(m.store.ModTime().After(m.lastModTime))
		return m, tickReload()

	case tea.MouseMsg:
		if m.scroll.Locked() || m.currentView() != viewListing || m.showDetail {
			return m, nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case m.search.open:
			return m.updateSearch(msg)
		case m.showHelp:
			return m.updateHelp(msg)
		case m.drawer.open:
			return m.updateDrawer(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "m":
		m.openDrawer()
		return m, nil
	case "?":
		m.showHelp = true
		return m, nil
	case "b":
		m.navigate(nav.PathBlog, nil)
		return m, nil
	case "r":
		m.reload(true)
		return m, nil
	}

	if m.currentView() == viewPlaceholder {
		switch msg.String() {
		case "esc", "backspace":
			m.navigate(nav.PathInterview, nil)
		}
		return m, nil
	}

	switch k := msg.String(); k {
	case "/":
		m.openSearch()
		return m, textinput.Blink
	case "0":
		m.applySelection(m.sel.Reset())
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(k)
		labels := m.chipLabels()
		if n <= len(labels) {
			m.applySelection(m.sel.SelectCategory(labels[n-1]))
		}
		return m, nil
	case "enter":
		if !m.isWide() && m.results.SelectedItem() != nil {
			m.showDetail = true
		}
		return m, nil
	case "esc", "backspace":
		m.showDetail = false
		return m, nil
	}

	if m.showDetail || m.scroll.Locked() {
		return m, nil
	}
	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m appModel) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "esc", "ctrl+g", "m":
		m.closeDrawer()
	case "up", "k", "ctrl+p":
		m.moveDrawerCursor(-1)
	case "down", "j", "ctrl+n":
		m.moveDrawerCursor(1)
	case "enter":
		m.chooseDrawerEntry()
	}
	return m, nil
}

func (m appModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc", "?", "q", "enter":
		m.showHelp = false
	}
	return m, nil
}

// quit ends every scoped hold before the program exits.
func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.closeDrawer()
	m.closeSearch()
	return m, tea.Quit
}

func (m *appModel) navigate(path string, state map[string]any) {
	m.router.NavigateTo(path, state)
	m.showDetail = false
}

func (m appModel) currentView() view {
	if m.router.Current().Path == nav.PathInterview {
		return viewListing
	}
	return viewPlaceholder
}

func (m appModel) isWide() bool { return m.width >= wideLayoutWidth }

// chipLabels are the configured categories, or the ones found in content when
// none are configured.
func (m appModel) chipLabels() []string {
	if len(m.categories) > 0 {
		return m.categories
	}
	return m.facetCategories
}

// applySelection re-runs the filter after the manager changed state.
func (m *appModel) applySelection(_ selection.State) {
	m.refreshResults()
}

func (m *appModel) refreshResults() {
	curID := ""
	if it, ok := m.results.SelectedItem().(contentItem); ok {
		curID = it.item.ID
	}
	m.visible = filter.Apply(m.items, m.sel.State(), filter.WithTagPolicy(m.policy))
	items := make([]list.Item, 0, len(m.visible))
	for _, it := range m.visible {
		items = append(items, contentItem{item: it})
	}
	m.results.SetItems(items)
	if curID == "" || !selectListItemByID(&m.results, curID) {
		m.results.Select(0)
	}
}

// reload re-reads all items through the content provider. force drops the
// provider's cached copy first; otherwise an unchanged list is left alone.
func (m *appModel) reload(force bool) {
	if force {
		if inv, ok := m.content.(invalidator); ok {
			inv.Invalidate()
		}
		m.lastModTime = m.store.ModTime()
	}
	items := m.content.AllItems(m.ctx)
	if !force && reflect.DeepEqual(items, m.items) {
		return
	}
	m.items = items
	m.facetCategories, m.knownTags = filter.Facets(m.items)
	m.pruneUnknownTags()
	if m.search.tagCursor >= len(m.knownTags) {
		m.search.tagCursor = 0
	}
	m.refreshResults()
	m.log.Debug("items reloaded", zap.Int("items", len(m.items)), zap.Int("visible", len(m.visible)))
}

// pruneUnknownTags keeps the selected tags a subset of the tags present in content.
func (m *appModel) pruneUnknownTags() {
	st := m.sel.State()
	if st.Tags.Len() == 0 {
		return
	}
	known := model.NewTagSet(m.knownTags...)
	var keep []string
	for _, t := range st.Tags.Sorted() {
		if known.Has(t) {
			keep = append(keep, t)
		}
	}
	if len(keep) != st.Tags.Len() {
		m.sel.SelectTags(model.NewTagSet(keep...))
	}
}

func (m *appModel) resizeLists() {
	m.results.SetSize(m.listWidth(), m.bodyHeight())
}

func (m appModel) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 5 {
		h = 5
	}
	return h
}

func (m appModel) listWidth() int {
	if !m.isWide() {
		w := m.width
		if w < 20 {
			w = 20
		}
		return w
	}
	return (m.width - sidebarWidth) / 2
}

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}

	var screen string
	switch {
	case m.search.open:
		screen = m.renderSearchOverlay()
	case m.showHelp:
		screen = m.renderHelp()
	case m.drawer.open && !m.drawer.inline:
		screen = renderDrawerOverlay(m.router, m.drawer.cursor, m.width)
	}
	if screen != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen)
	}

	var body string
	switch m.currentView() {
	case viewPlaceholder:
		body = renderPlaceholder(m.router.Current(), m.width)
	default:
		body = m.viewListing()
	}
	if m.isWide() {
		menu := renderMenu(m.router, m.drawer.cursor, m.drawer.open, sidebarWidth)
		body = lipgloss.JoinHorizontal(lipgloss.Top, menu, body)
	}

	return strings.Join([]string{m.renderHeader(), body, m.renderFooter()}, "\n")
}

func (m appModel) renderHeader() string {
	center := func(s string) string { return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s) }
	lines := []string{
		center(styleMuted().Render("Your guide to working from home success")),
		center(styleTitle().Render("• SharApu Interviews •")),
		center(styleMuted().Render("More stories on the SharApu blog (b)")),
		m.renderChips(),
		styleMuted().Render(truncateToWidth(m.statusLine(), m.width)),
		"",
	}
	return strings.Join(lines, "\n")
}

func (m appModel) renderChips() string {
	labels := m.chipLabels()
	st := m.sel.State()
	counts := filter.Counts(m.items, labels, st, filter.WithTagPolicy(m.policy))
	chips := make([]string, 0, len(labels))
	for i, label := range labels {
		text := fmt.Sprintf("%s (%d)", label, counts[label])
		if i < 9 {
			text = fmt.Sprintf("%d %s", i+1, text)
		}
		chips = append(chips, styleChip(st.Category.Is(label)).Render(text))
	}
	return wrapChips(chips, m.width)
}

func (m appModel) statusLine() string {
	return fmt.Sprintf("%d of %d items • %s • tags match %s",
		len(m.visible), len(m.items), searchSummary(m.sel.State()), m.policy)
}

func (m appModel) viewListing() string {
	h := m.bodyHeight()
	if len(m.items) == 0 {
		return lipgloss.NewStyle().Height(h).Render(styleMuted().Render("No content yet. Run `sharapu import <file>` or `sharapu init`."))
	}
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().Height(h).Render(styleMuted().Render("No items match the current filters. Press 0 to clear them."))
	}

	if !m.isWide() {
		if m.showDetail {
			if it, ok := m.results.SelectedItem().(contentItem); ok {
				return renderDetail(it.item, m.width, h)
			}
		}
		return m.results.View()
	}

	left := m.results.View()
	rightW := m.width - sidebarWidth - m.listWidth() - 2
	detail := lipgloss.NewStyle().Width(rightW).Height(h).Render("No item selected.")
	if it, ok := m.results.SelectedItem().(contentItem); ok {
		detail = renderDetail(it.item, rightW, h)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", detail)
}

func (m appModel) renderFooter() string {
	var keys string
	switch {
	case m.currentView() == viewPlaceholder:
		keys = "esc: back to interviews  m: menu  ?: help  q: quit"
	case m.showDetail:
		keys = "esc: back  m: menu  ?: help  q: quit"
	default:
		keys = "1-9: category  0: clear  /: search  enter: open  m: menu  b: blog  r: reload  ?: help  q: quit"
	}
	return "\n" + styleMuted().Render(truncateToWidth(keys, m.width))
}

func (m appModel) renderHelp() string {
	md, ok := docs.Get("keys")
	if !ok {
		md = "No help available."
	}
	body := renderMarkdown(md, modalBodyWidth(m.width))
	return renderModalBox(m.width, "Help", body+"\n\n"+styleMuted().Render("esc: close"))
}

func renderDetail(it model.ContentItem, width, height int) string {
	var b strings.Builder
	b.WriteString("# " + it.Title + "\n\n")
	b.WriteString("_" + cardMeta(it) + "_\n\n")
	if s := strings.TrimSpace(it.Summary); s != "" {
		b.WriteString("> " + s + "\n\n")
	}
	b.WriteString(it.Body)

	out := renderMarkdown(b.String(), width)
	lines := strings.Split(out, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func renderPlaceholder(loc nav.Location, width int) string {
	lines := []string{
		styleTitle().Render(nav.Title(loc.Path)),
		"",
		styleMuted().Render("This page is not available in the terminal."),
	}
	if len(loc.State) > 0 {
		keys := make([]string, 0, len(loc.State))
		for k := range loc.State {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, styleMuted().Render(fmt.Sprintf("%s: %v", k, loc.State[k])))
		}
	}
	return lipgloss.NewStyle().Width(width).Padding(1, 2).Render(strings.Join(lines, "\n"))
}

// wrapChips joins pre-rendered chips with spaces, wrapping at width.
func wrapChips(chips []string, width int) string {
	var lines []string
	line := ""
	for _, chip := range chips {
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(chip) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += chip
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
