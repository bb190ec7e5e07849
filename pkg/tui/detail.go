package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/MovieMaker93/landscape2/pkg/engine"
	"github.com/MovieMaker93/landscape2/pkg/models"
)

// DetailModel shows a single selected item.
type DetailModel struct {
	eng      *engine.Engine
	item     models.Item
	viewport viewport.Model
	width    int
	height   int
}

// NewDetailModel creates the detail view.
func NewDetailModel(eng *engine.Engine) *DetailModel {
	return &DetailModel{eng: eng}
}

// SetItem loads the item shown by the view. An unknown id leaves the
// previous item in place; selection of stale ids comes from hand-edited
// URLs and degrades to a no-op.
func (m *DetailModel) SetItem(id string) bool {
	item, ok := m.eng.Catalog().Item(id)
	if !ok {
		return false
	}
	m.item = item
	m.refreshContent()
	return true
}

// SetSize updates the view dimensions.
func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 6
	m.viewport.Height = height - 8
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.refreshContent()
}

func (m *DetailModel) refreshContent() {
	if m.item.ID == "" || m.viewport.Width <= 0 {
		return
	}

	var b strings.Builder
	b.WriteString(DimStyle.Render("Category: ") + m.item.Category)
	if m.item.Subcategory != "" {
		b.WriteString(DimStyle.Render("  Subcategory: ") + m.item.Subcategory)
	}
	b.WriteString("\n")
	if m.item.Group != "" {
		b.WriteString(DimStyle.Render("Group: ") + m.item.Group + "\n")
	}
	if len(m.item.Tags) > 0 {
		b.WriteString(DimStyle.Render("Tags: ") + strings.Join(m.item.Tags, ", ") + "\n")
	}

	if len(m.item.Facets) > 0 {
		b.WriteString("\n")
		facets := make([]string, 0, len(m.item.Facets))
		for name := range m.item.Facets {
			facets = append(facets, name)
		}
		sort.Strings(facets)
		for _, name := range facets {
			b.WriteString(fmt.Sprintf("%s: %s\n", DimStyle.Render(name), m.item.Facets[name]))
		}
	}

	if len(m.item.Metrics) > 0 {
		b.WriteString("\n")
		metrics := make([]string, 0, len(m.item.Metrics))
		for name := range m.item.Metrics {
			metrics = append(metrics, name)
		}
		sort.Strings(metrics)
		for _, name := range metrics {
			b.WriteString(fmt.Sprintf("%s: %d\n", DimStyle.Render(name), m.item.Metrics[name]))
		}
	}

	if m.item.Description != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(m.item.Description, m.viewport.Width))
		b.WriteString("\n")
	}

	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			cleared := ""
			m.eng.Patch(models.StatePatch{SelectedItem: &cleared})
			return m, func() tea.Msg { return SwitchViewMsg{view: browserView} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *DetailModel) View() string {
	title := BucketHeaderStyle.Render(m.item.Name) +
		DimStyle.Render("  ("+m.item.ID+")")

	body := title + "\n\n" + m.viewport.View() + "\n\n" +
		HelpStyle.Render("↑/↓ scroll · esc back")

	frame := ActiveBorderStyle.Width(m.width - 4).Render(body)
	return lipgloss.NewStyle().Padding(0, 1).Render(frame)
}
