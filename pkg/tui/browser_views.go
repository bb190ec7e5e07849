package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MovieMaker93/landscape2/pkg/layout"
	"github.com/MovieMaker93/landscape2/pkg/models"
)

func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(m.searchBar.View())
	b.WriteString("\n")

	if m.filterActive {
		b.WriteString(m.renderFilterPanel())
	} else {
		b.WriteString(m.renderCanvas())
	}

	b.WriteString("\n")
	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(" / search · f filters · g grouping · +/- zoom · c copy link · enter details · q quit"))
	return b.String()
}

func (m *BrowserModel) renderSummary() string {
	snapshot := m.eng.Snapshot()
	state := snapshot.State
	parts := []string{
		fmt.Sprintf("%d/%d items", len(snapshot.Visible), m.eng.Catalog().Len()),
		fmt.Sprintf("zoom: %s", state.Zoom),
		fmt.Sprintf("group by: %s", state.Grouping),
	}
	if state.Filters.Query != "" {
		parts = append(parts, fmt.Sprintf("query: %q", state.Filters.Query))
	}
	if n := countRestrictions(state.Filters); n > 0 {
		parts = append(parts, fmt.Sprintf("%d filter(s)", n))
	}
	return DimStyle.Render(" " + strings.Join(parts, " · "))
}

func countRestrictions(criteria models.FilterCriteria) int {
	n := 0
	for _, values := range criteria.Facets {
		n += len(values)
	}
	return n
}

func (m *BrowserModel) renderCanvas() string {
	snapshot := m.eng.Snapshot()
	if len(snapshot.Layout.Buckets) == 0 {
		empty := DimStyle.Render("Nothing matches the current filters. Press esc to clear the search, f to adjust filters.")
		return lipgloss.NewStyle().Padding(1, 2).Render(empty)
	}

	var sections []string
	index := 0
	for _, bucket := range snapshot.Layout.Buckets {
		sections = append(sections, m.renderBucket(bucket, &index))
	}
	content := strings.Join(sections, "\n")

	m.canvas.Height = m.contentHeight()
	m.canvas.SetContent(content)
	m.scrollToSelection()
	return m.canvas.View()
}

func (m *BrowserModel) renderBucket(bucket layout.Bucket, index *int) string {
	header := BucketHeaderStyle.Render(bucket.Title) +
		DimStyle.Render(fmt.Sprintf("  (%d)", len(bucket.Placements)))

	var rows []string
	rows = append(rows, header)

	gutter := strings.Repeat(" ", m.policy.Gutter)
	for start := 0; start < len(bucket.Placements); start += bucket.Columns {
		end := start + bucket.Columns
		if end > len(bucket.Placements) {
			end = len(bucket.Placements)
		}
		var cards []string
		for _, placement := range bucket.Placements[start:end] {
			cards = append(cards, m.renderCard(placement, *index == m.selection))
			*index++
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, interleave(cards, gutter)...))
	}
	return strings.Join(rows, "\n") + "\n"
}

func interleave(parts []string, sep string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

func (m *BrowserModel) renderCard(placement layout.Placement, selected bool) string {
	item, ok := m.eng.Catalog().Item(placement.ItemID)
	if !ok {
		return ""
	}

	innerWidth := placement.Box.Width - 4 // borders and padding
	if innerWidth < 4 {
		innerWidth = 4
	}

	lines := []string{truncate(item.Name, innerWidth)}
	if placement.Box.Height >= 4 {
		lines = append(lines, DimStyle.Render(truncate(item.Category, innerWidth)))
	}
	if placement.Box.Height >= 5 && len(item.Tags) > 0 {
		lines = append(lines, DimStyle.Render(truncate(strings.Join(item.Tags, ","), innerWidth)))
	}
	if placement.Box.Height >= 6 && item.Description != "" {
		lines = append(lines, DimStyle.Render(truncate(item.Description, innerWidth)))
	}

	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.
		Width(placement.Box.Width - 2).
		Height(placement.Box.Height - 2).
		Render(strings.Join(lines, "\n"))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return s[:maxLen]
	}
	return s[:maxLen-1] + "…"
}

// scrollToSelection keeps the selected card inside the visible canvas.
func (m *BrowserModel) scrollToSelection() {
	placements := m.placements()
	if m.selection < 0 || m.selection >= len(placements) {
		return
	}
	box := placements[m.selection].Box
	top := m.canvas.YOffset
	bottom := top + m.canvas.Height
	if box.Y < top {
		m.canvas.SetYOffset(box.Y)
	} else if box.Y+box.Height > bottom {
		m.canvas.SetYOffset(box.Y + box.Height - m.canvas.Height)
	}
}

func (m *BrowserModel) renderFilterPanel() string {
	height := m.contentHeight()
	var lines []string
	lines = append(lines, BucketHeaderStyle.Render("Filters")+
		DimStyle.Render("  enter toggle · x clear all · esc close"))

	// Window the options around the cursor.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.filterCursor >= visible {
		start = m.filterCursor - visible + 1
	}
	end := start + visible
	if end > len(m.facetOptions) {
		end = len(m.facetOptions)
	}

	lastFacet := ""
	for i := start; i < end; i++ {
		opt := m.facetOptions[i]
		marker := "[ ]"
		label := opt.Facet + ": " + opt.Value
		if opt.Facet == lastFacet {
			label = strings.Repeat(" ", len(opt.Facet)+2) + opt.Value
		}
		lastFacet = opt.Facet

		line := marker + " " + label
		if m.facetEnabled(opt) {
			line = FilterOnStyle.Render("[x]") + " " + label
		}
		if i == m.filterCursor {
			line = "> " + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	panel := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Padding(0, 1).Render(panel)
}
