package tui

import (
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/floractl/internal/catalog"
)

// Color palette matching existing fatih/color usage
var (
	// ColorGreen for matches and success indicators
	ColorGreen = lipgloss.AdaptiveColor{Light: "#00AF00", Dark: "#00D700"}

	// ColorCyan for latin names and metadata
	ColorCyan = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#00D7D7"}

	// ColorWhite for primary text
	ColorWhite = lipgloss.AdaptiveColor{Light: "#262626", Dark: "#FFFFFF"}

	// ColorGray for secondary text and help
	ColorGray = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"}

	// ColorYellow for warnings and highlights
	ColorYellow = lipgloss.AdaptiveColor{Light: "#D7AF00", Dark: "#FFD700"}

	// ColorRed for critical species
	ColorRed = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}

	// ColorOrange for dangerous species
	ColorOrange = lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FF8700"}

	// ColorBlue for moderate species
	ColorBlue = lipgloss.AdaptiveColor{Light: "#005FD7", Dark: "#5F87FF"}
)

// Reusable styles
var (
	// StyleNormal is the base style for regular text
	StyleNormal = lipgloss.NewStyle().Foreground(ColorWhite)

	// StyleHighlight is for selected items
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true)

	// StyleMatch is for score and match indicators
	StyleMatch = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleLatin is for latin names
	StyleLatin = lipgloss.NewStyle().Foreground(ColorCyan).Italic(true)

	// StyleHelp is for help text and hints
	StyleHelp = lipgloss.NewStyle().Foreground(ColorGray)

	// StyleHeader is for section headers
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	// StyleBorder is for borders and separators
	StyleBorder = lipgloss.NewStyle().
			Foreground(ColorGray).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorGray)
)

var dangerColors = map[catalog.DangerLevel]lipgloss.AdaptiveColor{
	catalog.DangerCritical:  ColorRed,
	catalog.DangerDangerous: ColorOrange,
	catalog.DangerWatch:     ColorYellow,
	catalog.DangerModerate:  ColorBlue,
	catalog.DangerLow:       ColorGray,
}

// DangerStyle returns the badge style for a danger level.
func DangerStyle(d catalog.DangerLevel) lipgloss.Style {
	c, ok := dangerColors[d]
	if !ok {
		c = ColorGray
	}
	return lipgloss.NewStyle().Foreground(c).Bold(d == catalog.DangerCritical)
}

// truncateText truncates s to maxWidth terminal cells with an ellipsis.
func truncateText(s string, maxWidth int) string {
	if maxWidth <= 1 {
		return "…"
	}
	return xansi.Truncate(s, maxWidth, "…")
}
