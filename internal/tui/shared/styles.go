package shared

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorTMDBBlue  = lipgloss.Color("#01b4e4")
	ColorTMDBGreen = lipgloss.Color("#90cea1")
	ColorNavy      = lipgloss.Color("#0d253f")
	ColorBlack     = lipgloss.Color("#1a1a1a")
	ColorWhite     = lipgloss.Color("#ffffff")
	ColorLightGrey = lipgloss.Color("#b2b2b2")
	ColorDarkGrey  = lipgloss.Color("#3a3a3a")
	ColorRed       = lipgloss.Color("#e52d27")

	// Styles
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Background(ColorNavy).
			Bold(true).
			Padding(1, 2)

	StyleFooter = lipgloss.NewStyle().
			Foreground(ColorLightGrey).
			Padding(0, 1)

	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDarkGrey).
			Padding(0, 1)

	StyleCardActive = StyleCard.
			BorderForeground(ColorTMDBBlue)

	StyleSkeleton = lipgloss.NewStyle().
			Foreground(ColorDarkGrey)

	StyleModal = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorTMDBGreen).
			Padding(1, 2)

	StyleButton = lipgloss.NewStyle().
			Foreground(ColorBlack).
			Background(ColorLightGrey).
			Padding(0, 2).
			Bold(true)

	StyleMetadataKey = lipgloss.NewStyle().
				Foreground(ColorLightGrey).
				Bold(true)

	StyleMetadataValue = lipgloss.NewStyle().
				Foreground(ColorWhite)

	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorTMDBBlue).
			Bold(true)

	StyleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	StyleError = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)
)
