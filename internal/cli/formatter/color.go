package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/culiacan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle colors a mission phase by how close it is to resolution.
func PhaseStyle(p domain.MissionPhase) lipgloss.Style {
	switch p {
	case domain.PhaseInitialRaid:
		return StyleRed
	case domain.PhaseUrbanConflict:
		return StyleYellow
	case domain.PhasePoliticalNegotiation:
		return StyleBlue
	case domain.PhaseResolution:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PhaseIndicator returns a colored phase marker such as "● URBAN CONFLICT".
func PhaseIndicator(p domain.MissionPhase) string {
	return PhaseStyle(p).Render("● " + strings.ToUpper(p.Label()))
}

// DifficultyBadge renders a difficulty level in purple.
func DifficultyBadge(d domain.DifficultyLevel) string {
	if d == "" {
		return StyleDim.Render("--")
	}
	s := string(d)
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
