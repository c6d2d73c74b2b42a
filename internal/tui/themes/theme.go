// Package themes holds the lipgloss styles shared by the income TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary    string
	Success    string
	Error      string
	Info       string
	Foreground string
	Subtle     string
	Border     string
	Muted      string
	OnPrimary  string
}

// New builds a theme from a palette.
func New(p Palette) Theme {
	fg := lipgloss.Color(p.Foreground)

	return Theme{
		Primary:    lipgloss.Color(p.Primary),
		Success:    lipgloss.Color(p.Success),
		Error:      lipgloss.Color(p.Error),
		Info:       lipgloss.Color(p.Info),
		Foreground: fg,
		Border:     lipgloss.Color(p.Border),
		Muted:      lipgloss.Color(p.Muted),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Subtle)).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Primary)).
			Foreground(lipgloss.Color(p.OnPrimary)).
			Bold(true),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Border)).
			Padding(1, 2),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Italic(true),
	}
}

// Default is the default theme.
var Default = New(Palette{
	Primary:    "#7c3aed",
	Success:    "#10b981",
	Error:      "#ef4444",
	Info:       "#3b82f6",
	Foreground: "#fafafa",
	Subtle:     "#a3a3a3",
	Border:     "#404040",
	Muted:      "#737373",
	OnPrimary:  "#fafafa",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = New(Palette{
	Primary:    "#cba6f7",
	Success:    "#a6e3a1",
	Error:      "#f38ba8",
	Info:       "#89dceb",
	Foreground: "#cdd6f4",
	Subtle:     "#a6adc8",
	Border:     "#45475a",
	Muted:      "#6c7086",
	OnPrimary:  "#1e1e2e",
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
