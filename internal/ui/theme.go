package ui

import "github.com/charmbracelet/lipgloss"

// ember's color palette — flame oranges over charcoal, with cool accents.
var (
	// Primary colors
	Flame    = lipgloss.Color("#FF6B35")
	Ember    = lipgloss.Color("#F7931E")
	Ash      = lipgloss.Color("#8B8680")
	Charcoal = lipgloss.Color("#2D2D2D")
	Moss     = lipgloss.Color("#50C878")
	Cinder   = lipgloss.Color("#E0115F")
	Glacier  = lipgloss.Color("#4A90D9")
	Dim      = lipgloss.Color("#666666")
	Bright   = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Flame)

	Subtitle = lipgloss.NewStyle().
			Foreground(Ember)

	Success = lipgloss.NewStyle().
		Foreground(Moss)

	Error = lipgloss.NewStyle().
		Foreground(Cinder)

	Warning = lipgloss.NewStyle().
		Foreground(Ember)

	Info = lipgloss.NewStyle().
		Foreground(Glacier)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Flame).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Ember).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)

	Badge = lipgloss.NewStyle().
		Foreground(Bright).
		Background(Cinder).
		Padding(0, 1).
		Bold(true)
)

// Icon constants — consistent emoji language.
const (
	IconFire    = "🔥"
	IconSpark   = "✨"
	IconCalm    = "💤"
	IconTarget  = "🎯"
	IconTrophy  = "🏆"
	IconWarn    = "⚠️ "
	IconError   = "✗ "
	IconOk      = "✓ "
	IconArrow   = "→"
	IconDot     = "·"
)
