package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexmoren/studyplan/internal/domain"
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

// Predefined lipgloss styles.
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

// StressIndicator returns a colored stress label such as "● HIGH".
func StressIndicator(level string) string {
	switch strings.ToLower(level) {
	case "high":
		return StyleRed.Render("● HIGH")
	case "moderate":
		return StyleYellow.Render("● MODERATE")
	case "low":
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// SessionTypePill returns a colored label for a session type.
func SessionTypePill(t domain.SessionType) string {
	switch t {
	case domain.SessionNewMaterial:
		return StyleBlue.Render("new material")
	case domain.SessionReview:
		return StylePurple.Render("review")
	case domain.SessionPractice:
		return StyleGreen.Render("practice")
	default:
		return StyleDim.Render(string(t))
	}
}

// SessionStatusPill returns a colored status indicator for a session.
func SessionStatusPill(status domain.SessionStatus) string {
	switch status {
	case domain.SessionScheduled:
		return StyleBlue.Render("○ Scheduled")
	case domain.SessionCompleted:
		return StyleGreen.Render("✔ Done")
	case domain.SessionSkipped:
		return StyleDim.Render("⊘ Skipped")
	case domain.SessionMissed:
		return StyleRed.Render("✖ Missed")
	default:
		return StyleDim.Render(string(status))
	}
}

// TaskTypeBadge returns a capitalized, purple-styled task type label.
func TaskTypeBadge(t domain.TaskType) string {
	s := string(t)
	if s == "" {
		return StyleDim.Render("--")
	}
	label := strings.ToUpper(s[:1]) + s[1:]
	return StylePurple.Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
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
