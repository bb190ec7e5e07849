package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MovieMaker93/landscape2/pkg/catalog"
	"github.com/MovieMaker93/landscape2/pkg/engine"
	"github.com/MovieMaker93/landscape2/pkg/layout"
)

type sessionState int

const (
	browserView sessionState = iota
	detailView
)

// App is the top-level bubbletea model routing between views.
type App struct {
	eng       *engine.Engine
	state     sessionState
	browser   *BrowserModel
	detail    *DetailModel
	width     int
	height    int
	statusMsg string
}

// NewApp creates the application over an initialized engine. When the
// engine's state carries a selected item (from a restored URL), the app
// opens directly on its detail view.
func NewApp(eng *engine.Engine, policy layout.Policy) *App {
	a := &App{
		eng:     eng,
		state:   browserView,
		browser: NewBrowserModel(eng, policy),
		detail:  NewDetailModel(eng),
	}
	if id := eng.State().SelectedItem; id != "" && a.detail.SetItem(id) {
		a.state = detailView
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.detail.SetSize(msg.Width, msg.Height)
		// The browser schedules its own debounced layout recomputation.
		return a, a.browser.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if msg.String() == "q" && a.state == browserView &&
			!a.browser.searchBar.Active() && !a.browser.filterActive {
			return a, tea.Quit
		}
		a.statusMsg = ""

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case CatalogReloadMsg:
		// Copy-on-write: the engine swaps to the new snapshot; anything
		// still rendering the old one finishes against it.
		a.eng.ReplaceCatalog(msg.Catalog)
		a.browser.refreshCatalog()
		a.statusMsg = "Dataset reloaded"
		return a, nil

	case ReloadErrorMsg:
		a.statusMsg = "Reload failed: " + msg.Err.Error()
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case browserView:
			a.state = browserView
			return a, a.browser.Init()
		case detailView:
			if a.detail.SetItem(msg.itemID) {
				a.state = detailView
				a.detail.SetSize(a.width, a.height)
				return a, a.detail.Init()
			}
			a.statusMsg = "Unknown item: " + msg.itemID
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case browserView:
		var m tea.Model
		m, cmd = a.browser.Update(msg)
		if bm, ok := m.(*BrowserModel); ok {
			a.browser = bm
		}
	case detailView:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		if dm, ok := m.(*DetailModel); ok {
			a.detail = dm
		}
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case browserView:
		content = a.browser.View()
	case detailView:
		content = a.detail.View()
	}

	if a.statusMsg != "" {
		statusBar := StatusBarStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views
type StatusMsg string

type SwitchViewMsg struct {
	view   sessionState
	itemID string
}

// CatalogReloadMsg delivers a freshly loaded catalog snapshot, typically
// from the dataset watcher.
type CatalogReloadMsg struct {
	Catalog *catalog.Catalog
}

// ReloadErrorMsg reports a failed dataset reload; the previous snapshot
// stays in use.
type ReloadErrorMsg struct {
	Err error
}
