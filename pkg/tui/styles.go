package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPurple   = lipgloss.Color("#7D56F4")
	ColorGreen    = lipgloss.Color("#25A065")
	ColorRed      = lipgloss.Color("#E05252")
	ColorYellow   = lipgloss.Color("#E5C07B")
	ColorGray     = lipgloss.Color("#626262")
	ColorGrayDim  = lipgloss.Color("#404040")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorOffWhite = lipgloss.Color("#D0D0D0")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPurple)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	AcceptedStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ProposedStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	NotAcceptedStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)

	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorGray).
				Width(18)

	DetailValueStyle = lipgloss.NewStyle().
				Foreground(ColorOffWhite)

	PanelBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorGrayDim).
				Padding(0, 1)
)

// Status icons
const (
	IconAccepted    = "✓"
	IconProposed    = "○"
	IconNotAccepted = "✗"
	IconFlagship    = "★"
)
