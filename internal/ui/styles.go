package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/afc96/passcheck/internal/strength"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Tier styles, VeryWeak through VeryStrong
	VeryWeak   lipgloss.Style
	Weak       lipgloss.Style
	Moderate   lipgloss.Style
	Strong     lipgloss.Style
	VeryStrong lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Label     lipgloss.Style
	Detail    lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconWeak   string
	IconStrong string
	IconInfo   string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		// Tier styles
		s.VeryWeak = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))     // Red
		s.Weak = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))       // Orange
		s.Moderate = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))    // Yellow
		s.Strong = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))      // Green
		s.VeryStrong = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // Cyan bold

		// Structural styles
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))              // Gray
		s.Detail = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))             // Light gray
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray

		// Unicode icons
		s.IconWeak = "✗"   // ✗
		s.IconStrong = "✓" // ✓
		s.IconInfo = "ℹ"   // ℹ
	} else {
		// No-op styles for non-TTY (plain text output)
		s.VeryWeak = lipgloss.NewStyle()
		s.Weak = lipgloss.NewStyle()
		s.Moderate = lipgloss.NewStyle()
		s.Strong = lipgloss.NewStyle()
		s.VeryStrong = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Label = lipgloss.NewStyle()
		s.Detail = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		// ASCII fallback icons
		s.IconWeak = "WEAK:"
		s.IconStrong = "OK:"
		s.IconInfo = "INFO:"
	}

	return s
}

// Tier returns the style for a strength tier
func (s *Styles) Tier(t strength.Tier) lipgloss.Style {
	switch t {
	case strength.VeryWeak:
		return s.VeryWeak
	case strength.Weak:
		return s.Weak
	case strength.Moderate:
		return s.Moderate
	case strength.Strong:
		return s.Strong
	case strength.VeryStrong:
		return s.VeryStrong
	default:
		return s.Detail
	}
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
