package tui

import "github.com/charmbracelet/lipgloss"

var (
	// ActiveBorderStyle is used for the focused pane
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("170"))

	// InactiveBorderStyle is used for unfocused panes
	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240"))

	// BucketHeaderStyle renders category/subcategory/group headings
	BucketHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	// CardStyle renders one item card
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// SelectedCardStyle highlights the card under the cursor
	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("170")).
				Foreground(lipgloss.Color("170")).
				Padding(0, 1)

	// StatusBarStyle renders the bottom status line
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

	// HelpStyle renders the key hints line
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// FilterOnStyle marks an enabled facet restriction
	FilterOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")).
			Bold(true)

	// DimStyle renders secondary text inside cards
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)
