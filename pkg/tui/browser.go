package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MovieMaker93/landscape2/pkg/engine"
	"github.com/MovieMaker93/landscape2/pkg/layout"
	"github.com/MovieMaker93/landscape2/pkg/models"
)

// resizeDebounce is the trailing-edge delay before a resize triggers a
// layout recomputation. Intermediate widths may be dropped; the final
// width always lands.
const resizeDebounce = 150 * time.Millisecond

type resizeTickMsg struct {
	seq int
}

// facetOption is one toggleable entry in the filter panel.
type facetOption struct {
	Facet string
	Value string
}

// BrowserModel is the main grid view over the landscape.
type BrowserModel struct {
	eng    *engine.Engine
	policy layout.Policy

	searchBar *SearchBar
	canvas    viewport.Model

	width  int
	height int

	// Trailing-edge resize coalescing.
	resizeSeq    int
	pendingWidth int

	filterActive bool
	filterCursor int
	facetOptions []facetOption

	selection int
}

// CellPolicy is the card-size policy in terminal cells. Same shape as
// the abstract default policy, scaled to character dimensions. Pinned
// buckets come from the settings file.
func CellPolicy(settings *models.Settings) layout.Policy {
	return layout.Policy{
		Gutter:        2,
		BucketSpacing: 1,
		HeaderHeight:  2,
		CardWidths:    models.CardDimension{Compact: 18, Default: 24, Comfortable: 30, Large: 38},
		CardHeights:   models.CardDimension{Compact: 3, Default: 4, Comfortable: 5, Large: 6},
		Pinned:        settings.Layout.PinnedBuckets,
	}
}

// NewBrowserModel creates the browser over an initialized engine. The
// policy must be the one the engine computes layouts with.
func NewBrowserModel(eng *engine.Engine, policy layout.Policy) *BrowserModel {
	m := &BrowserModel{
		eng:       eng,
		policy:    policy,
		searchBar: NewSearchBar(),
	}
	m.searchBar.SetValue(eng.State().Filters.Query)
	m.facetOptions = buildFacetOptions(eng)
	return m
}

func buildFacetOptions(eng *engine.Engine) []facetOption {
	var options []facetOption
	cat := eng.Catalog()
	for _, facet := range cat.FacetNames() {
		for _, value := range cat.FacetValues(facet) {
			options = append(options, facetOption{Facet: facet, Value: value})
		}
	}
	return options
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// refreshCatalog rebuilds catalog-derived UI state after a reload.
func (m *BrowserModel) refreshCatalog() {
	m.facetOptions = buildFacetOptions(m.eng)
	if len(m.facetOptions) == 0 {
		// The reloaded dataset may carry no facets at all; an open filter
		// panel would have nothing to toggle.
		m.filterActive = false
		m.filterCursor = 0
	} else if m.filterCursor >= len(m.facetOptions) {
		m.filterCursor = 0
	}
	m.clampSelection()
}

// SetSize records the terminal size and schedules a debounced layout
// recomputation for the new width.
func (m *BrowserModel) SetSize(width, height int) tea.Cmd {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
	m.canvas.Width = width - 2
	m.canvas.Height = m.contentHeight()
	m.pendingWidth = width - 2
	m.resizeSeq++
	seq := m.resizeSeq
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeTickMsg{seq: seq}
	})
}

func (m *BrowserModel) contentHeight() int {
	// Search bar (3), help line (1), status line (1) plus spacing.
	h := m.height - 7
	if h < 5 {
		h = 5
	}
	return h
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resizeTickMsg:
		// Only the latest pending resize recomputes; earlier ones are
		// stale and dropped.
		if msg.seq == m.resizeSeq {
			width := m.pendingWidth
			m.eng.Patch(models.StatePatch{ViewportWidth: &width})
			m.clampSelection()
		}
		return m, nil

	case tea.KeyMsg:
		if m.searchBar.Active() {
			return m.updateSearch(msg)
		}
		if m.filterActive {
			return m.updateFilter(msg)
		}
		return m.updateGrid(msg)
	}

	return m, nil
}

func (m *BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searchBar.SetActive(false)
		return m, nil
	case tea.KeyEnter:
		m.searchBar.SetActive(false)
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchBar.Value()
	m.searchBar, cmd = m.searchBar.Update(msg)
	if after := m.searchBar.Value(); after != before {
		m.eng.Patch(models.StatePatch{Query: &after})
		m.selection = 0
	}
	return m, cmd
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		m.filterActive = false
	case "up", "k":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
	case "down", "j":
		if m.filterCursor < len(m.facetOptions)-1 {
			m.filterCursor++
		}
	case "enter", " ":
		if m.filterCursor < len(m.facetOptions) {
			m.toggleFacet(m.facetOptions[m.filterCursor])
		}
	case "x":
		m.clearFacets()
	}
	return m, nil
}

func (m *BrowserModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.searchBar.SetActive(true)
		return m, nil
	case "f":
		if len(m.facetOptions) > 0 {
			m.filterActive = true
		}
		return m, nil
	case "esc":
		if m.searchBar.Value() != "" {
			m.searchBar.Reset()
			empty := ""
			m.eng.Patch(models.StatePatch{Query: &empty})
			m.selection = 0
		}
		return m, nil
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		m.moveSelectionRow(-1)
	case "down", "j":
		m.moveSelectionRow(1)
	case "+", "=":
		m.stepZoom(1)
	case "-":
		m.stepZoom(-1)
	case "g":
		m.toggleGrouping()
	case "c":
		return m, m.copyShareLink()
	case "enter":
		if id, ok := m.selectedItemID(); ok {
			m.eng.Patch(models.StatePatch{SelectedItem: &id})
			return m, func() tea.Msg { return SwitchViewMsg{view: detailView, itemID: id} }
		}
	}
	return m, nil
}

func (m *BrowserModel) toggleFacet(opt facetOption) {
	state := m.eng.State()
	current := append([]string(nil), state.Filters.Facets[opt.Facet]...)

	found := -1
	for i, v := range current {
		if v == opt.Value {
			found = i
			break
		}
	}
	if found >= 0 {
		current = append(current[:found], current[found+1:]...)
	} else {
		current = append(current, opt.Value)
	}

	m.eng.Patch(models.StatePatch{Facets: map[string][]string{opt.Facet: current}})
	m.clampSelection()
}

func (m *BrowserModel) clearFacets() {
	state := m.eng.State()
	cleared := make(map[string][]string, len(state.Filters.Facets))
	for facet := range state.Filters.Facets {
		cleared[facet] = nil
	}
	m.eng.Patch(models.StatePatch{Facets: cleared})
	m.clampSelection()
}

func (m *BrowserModel) facetEnabled(opt facetOption) bool {
	for _, v := range m.eng.State().Filters.Facets[opt.Facet] {
		if v == opt.Value {
			return true
		}
	}
	return false
}

func (m *BrowserModel) stepZoom(delta int) {
	levels := models.ZoomLevels
	current := m.eng.State().Zoom
	for i, level := range levels {
		if level == current {
			next := i + delta
			if next < 0 || next >= len(levels) {
				return
			}
			zoom := levels[next]
			m.eng.Patch(models.StatePatch{Zoom: &zoom})
			return
		}
	}
}

func (m *BrowserModel) toggleGrouping() {
	mode := models.GroupByCategory
	if m.eng.State().Grouping == models.GroupByCategory {
		mode = models.GroupByGroup
	}
	m.eng.Patch(models.StatePatch{Grouping: &mode})
	m.selection = 0
}

func (m *BrowserModel) copyShareLink() tea.Cmd {
	link := m.eng.ShareLink()
	if err := clipboard.WriteAll(link); err != nil {
		return func() tea.Msg { return StatusMsg(fmt.Sprintf("Copy failed: %v", err)) }
	}
	if link == "" {
		link = "(default view)"
	}
	return func() tea.Msg { return StatusMsg("Copied share link: " + link) }
}

// placements flattens the current layout's placements in render order.
func (m *BrowserModel) placements() []layout.Placement {
	var out []layout.Placement
	for _, bucket := range m.eng.Snapshot().Layout.Buckets {
		out = append(out, bucket.Placements...)
	}
	return out
}

func (m *BrowserModel) selectedItemID() (string, bool) {
	placements := m.placements()
	if m.selection < 0 || m.selection >= len(placements) {
		return "", false
	}
	return placements[m.selection].ItemID, true
}

func (m *BrowserModel) moveSelection(delta int) {
	total := len(m.placements())
	if total == 0 {
		return
	}
	next := m.selection + delta
	if next < 0 {
		next = 0
	}
	if next >= total {
		next = total - 1
	}
	m.selection = next
}

// moveSelectionRow moves the cursor one grid row within its bucket.
func (m *BrowserModel) moveSelectionRow(direction int) {
	offset := 0
	for _, bucket := range m.eng.Snapshot().Layout.Buckets {
		count := len(bucket.Placements)
		if m.selection < offset+count {
			step := bucket.Columns * direction
			m.moveSelection(step)
			return
		}
		offset += count
	}
	m.moveSelection(direction)
}

func (m *BrowserModel) clampSelection() {
	total := len(m.placements())
	if total == 0 {
		m.selection = 0
		return
	}
	if m.selection >= total {
		m.selection = total - 1
	}
	if m.selection < 0 {
		m.selection = 0
	}
}
