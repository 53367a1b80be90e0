package internal

import (
	"fmt"
	"strings"

	"focus_timer/internal/sessionlog"
	"focus_timer/internal/timer"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) mainView() string {
	st := m.styles()

	var sb strings.Builder
	sb.WriteString(m.headerView(st))
	sb.WriteString("\n\n")
	sb.WriteString(m.clockView(st))
	sb.WriteString("\n\n")
	sb.WriteString(m.controlsView(st))

	if m.Sessions.Len() > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(st.logHeader.Render("RECENT SESSIONS"))
		sb.WriteString("\n")
		sb.WriteString(m.history.View())
	}

	if m.Err != nil {
		sb.WriteString("\n\n")
		sb.WriteString(st.err.Render("Error: " + m.Err.Error()))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))

	return st.frame.Render(sb.String())
}

func (m *Model) headerView(st styles) string {
	icon := "☾"
	if m.Dark {
		icon = "☀"
	}
	title := st.title.Render("Focus Timer")
	button := st.themeButton.Render(icon + " Theme")

	gap := max(m.width-lipgloss.Width(title)-lipgloss.Width(button), 1)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Repeat(" ", gap), button)
}

func (m *Model) clockView(st styles) string {
	status := st.status.Render("Stopped")
	if m.Timer.Running() {
		status = st.running.Render("● Running")
	}

	clock := st.clock.Render(timer.Format(m.Timer.Elapsed()))
	block := lipgloss.JoinVertical(lipgloss.Center, clock, status)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

func (m *Model) controlsView(st styles) string {
	running := m.Timer.Running()

	start := st.start.Render("▶ Start")
	if running {
		start = st.disabled.Render("▶ Start")
	}
	stop := st.stop.Render("■ Stop")
	if !running {
		stop = st.disabled.Render("■ Stop")
	}
	reset := st.reset.Render("↺ Reset")

	row := lipgloss.JoinHorizontal(lipgloss.Top, start, stop, reset)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row)
}

// refreshHistory re-renders the session rows into the history viewport.
func (m *Model) refreshHistory() {
	st := m.styles()
	records := m.Sessions.Records()

	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, m.formatLogEntry(st, r))
	}
	m.history.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) formatLogEntry(st styles, r sessionlog.Record) string {
	dur := st.logDuration.Render(r.Duration)
	ts := st.logTime.Render(r.Timestamp)
	gap := max(m.width-lipgloss.Width(dur)-lipgloss.Width(ts)-2, 1)
	return fmt.Sprintf("  %s%s%s", dur, strings.Repeat(" ", gap), ts)
}
