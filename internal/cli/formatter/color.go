package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox palette. Unit statuses map onto the first three colors.
var (
	ColorFree   = lipgloss.Color("#8ec07c")
	ColorBooked = lipgloss.Color("#fabd2f")
	ColorSold   = lipgloss.Color("#fb4934")
	ColorLink   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorAccent = lipgloss.Color("#fe8019")
)

var (
	StyleFree   = lipgloss.NewStyle().Foreground(ColorFree)
	StyleBooked = lipgloss.NewStyle().Foreground(ColorBooked)
	StyleSold   = lipgloss.NewStyle().Foreground(ColorSold)
	StyleLink   = lipgloss.NewStyle().Foreground(ColorLink)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	// StyleWarn and StyleError color status lines and problems.
	StyleWarn  = StyleBooked
	StyleError = StyleSold
)

// UseColor switches rendering between the profile the environment asks for
// and plain text.
func UseColor(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// StatusColor returns the palette color of a unit status: free units are
// green, booked yellow, sold red.
func StatusColor(status domain.UnitStatus) lipgloss.Color {
	switch status {
	case domain.UnitFree:
		return ColorFree
	case domain.UnitBooked:
		return ColorBooked
	case domain.UnitSold:
		return ColorSold
	default:
		return ColorDim
	}
}

// StatusPill returns a colored status indicator such as "● free".
func StatusPill(status domain.UnitStatus) string {
	style := lipgloss.NewStyle().Foreground(StatusColor(status))
	switch status {
	case domain.UnitFree:
		return style.Render("● free")
	case domain.UnitBooked:
		return style.Render("◐ booked")
	case domain.UnitSold:
		return style.Render("○ sold")
	default:
		return style.Render("? " + string(status))
	}
}

// ActionPill colors a history action.
func ActionPill(action domain.HistoryAction) string {
	switch action {
	case domain.ActionCreate:
		return StyleFree.Render("+ create")
	case domain.ActionUpdate:
		return StyleLink.Render("~ update")
	case domain.ActionDelete:
		return StyleSold.Render("- delete")
	default:
		return StyleDim.Render(string(action))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
