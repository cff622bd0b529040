package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ayoisaiah/misbaha/internal/models"
)

const (
	padding  = 2
	maxWidth = 60
)

const defaultAccent = "#F59E0B"

type palette struct {
	text   lipgloss.Color
	muted  lipgloss.Color
	border lipgloss.Color
	danger lipgloss.Color
	good   lipgloss.Color
}

var (
	lightPalette = palette{
		text:   lipgloss.Color("#0F172A"),
		muted:  lipgloss.Color("#64748B"),
		border: lipgloss.Color("#CBD5E1"),
		danger: lipgloss.Color("#DC2626"),
		good:   lipgloss.Color("#059669"),
	}

	darkPalette = palette{
		text:   lipgloss.Color("#F1F5F9"),
		muted:  lipgloss.Color("#94A3B8"),
		border: lipgloss.Color("#334155"),
		danger: lipgloss.Color("#F87171"),
		good:   lipgloss.Color("#34D399"),
	}
)

// Styles holds the lipgloss styles for one theme.
type Styles struct {
	Base        lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Hint        lipgloss.Style
	Accent      lipgloss.Style
	Count       lipgloss.Style
	Done        lipgloss.Style
	Modal       lipgloss.Style
	Danger      lipgloss.Style
	AccentColor lipgloss.Color
}

// NewStyles returns the styles for theme using accent as the highlight
// colour.
func NewStyles(theme models.Theme, accent string) Styles {
	if accent == "" {
		accent = defaultAccent
	}

	p := lightPalette
	if theme.IsDark() {
		p = darkPalette
	}

	a := lipgloss.Color(accent)

	return Styles{
		AccentColor: a,
		Base:        lipgloss.NewStyle().Padding(1, padding),
		Title: lipgloss.NewStyle().
			Foreground(a).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		Item: lipgloss.NewStyle().
			Foreground(p.text).
			PaddingLeft(2),
		Selected: lipgloss.NewStyle().
			Foreground(a).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(a).
			PaddingLeft(1),
		Hint: lipgloss.NewStyle().
			Foreground(p.muted),
		Accent: lipgloss.NewStyle().
			Foreground(a).
			Bold(true),
		Count: lipgloss.NewStyle().
			Foreground(p.text).
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border),
		Done: lipgloss.NewStyle().
			Foreground(p.good).
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.good),
		Modal: lipgloss.NewStyle().
			Foreground(p.text).
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(a),
		Danger: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),
	}
}

// DetectDark reports whether the terminal has a dark background. Output that
// is not a terminal is treated as light.
func DetectDark() bool {
	if !isatty.IsTerminal(os.Stdout.Fd()) &&
		!isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}

	return lipgloss.HasDarkBackground()
}
