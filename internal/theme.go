package internal

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Border      lipgloss.Color
	Title       lipgloss.Color
	Clock       lipgloss.Color
	ClockBorder lipgloss.Color
	Muted       lipgloss.Color
	Start       lipgloss.Color
	Stop        lipgloss.Color
	Reset       lipgloss.Color
	Disabled    lipgloss.Color
	Duration    lipgloss.Color
	Error       lipgloss.Color
}

var (
	lightPalette = palette{
		Border:      lipgloss.Color("#e7e5e4"),
		Title:       lipgloss.Color("#292524"),
		Clock:       lipgloss.Color("#78350f"),
		ClockBorder: lipgloss.Color("#d97706"),
		Muted:       lipgloss.Color("#78716c"),
		Start:       lipgloss.Color("#10b981"),
		Stop:        lipgloss.Color("#f43f5e"),
		Reset:       lipgloss.Color("#57534e"),
		Disabled:    lipgloss.Color("#a8a29e"),
		Duration:    lipgloss.Color("#b45309"),
		Error:       lipgloss.Color("#e11d48"),
	}

	darkPalette = palette{
		Border:      lipgloss.Color("#334155"),
		Title:       lipgloss.Color("#fbbf24"),
		Clock:       lipgloss.Color("#fbbf24"),
		ClockBorder: lipgloss.Color("#f59e0b"),
		Muted:       lipgloss.Color("#94a3b8"),
		Start:       lipgloss.Color("#059669"),
		Stop:        lipgloss.Color("#e11d48"),
		Reset:       lipgloss.Color("#fcd34d"),
		Disabled:    lipgloss.Color("#64748b"),
		Duration:    lipgloss.Color("#fbbf24"),
		Error:       lipgloss.Color("#fb7185"),
	}
)

type styles struct {
	frame       lipgloss.Style
	title       lipgloss.Style
	themeButton lipgloss.Style
	clock       lipgloss.Style
	status      lipgloss.Style
	running     lipgloss.Style
	start       lipgloss.Style
	stop        lipgloss.Style
	reset       lipgloss.Style
	disabled    lipgloss.Style
	logHeader   lipgloss.Style
	logDuration lipgloss.Style
	logTime     lipgloss.Style
	err         lipgloss.Style
}

func newStyles(p palette) styles {
	button := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Foreground(p.Title).
			Bold(true),
		themeButton: lipgloss.NewStyle().
			Foreground(p.Muted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		clock: lipgloss.NewStyle().
			Foreground(p.Clock).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.ClockBorder).
			Padding(1, 4).
			Align(lipgloss.Center),
		status:      lipgloss.NewStyle().Foreground(p.Muted),
		running:     lipgloss.NewStyle().Foreground(p.Start).Bold(true),
		start:       button.Foreground(p.Start),
		stop:        button.Foreground(p.Stop),
		reset:       button.Foreground(p.Reset),
		disabled:    button.Foreground(p.Disabled).Bold(false).Faint(true),
		logHeader:   lipgloss.NewStyle().Foreground(p.Muted).Bold(true),
		logDuration: lipgloss.NewStyle().Foreground(p.Duration).Bold(true),
		logTime:     lipgloss.NewStyle().Foreground(p.Muted),
		err:         lipgloss.NewStyle().Foreground(p.Error),
	}
}

var (
	lightStyles = newStyles(lightPalette)
	darkStyles  = newStyles(darkPalette)
)
