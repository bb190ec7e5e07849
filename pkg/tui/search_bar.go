package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar is a reusable search component with consistent styling
type SearchBar struct {
	input    textinput.Model
	isActive bool
	width    int
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search the landscape..."
	ti.CharLimit = 100
	ti.Width = 50 // Default width, will be adjusted

	return &SearchBar{
		input: ti,
	}
}

// SetActive sets whether the search bar is the active pane
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// Active reports whether the search bar has focus
func (s *SearchBar) Active() bool {
	return s.isActive
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// Adjust input width accounting for icon, padding, and borders
	s.input.Width = width - 12
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the search text
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar with consistent styling
func (s *SearchBar) View() string {
	borderStyle := InactiveBorderStyle
	if s.isActive {
		borderStyle = ActiveBorderStyle
	}

	searchStyle := borderStyle.
		Width(s.width - 4). // Account for outer padding
		Padding(0, 1)

	var searchIcon string
	if s.isActive {
		searchIcon = lipgloss.NewStyle().
			Background(lipgloss.Color("170")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		searchIcon = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Bold(true).
			Render(" ⌕ ")
	}

	searchContent := lipgloss.JoinHorizontal(lipgloss.Center, searchIcon, " ", s.input.View())

	outerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	return outerPadding.Render(searchStyle.Render(searchContent))
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}
