package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmoretti/cogito/internal/core/models"
	"github.com/lmoretti/cogito/internal/core/stats"
	"github.com/lmoretti/cogito/internal/core/tracker"
)

func (m Model) View() string {
	var body string
	switch m.mode {
	case todayView:
		body = m.viewToday()
	case timerView:
		body = m.viewTimer()
	case historyView:
		body = m.viewHistory()
	case insightsView:
		body = m.viewInsights()
	case helpView:
		body = m.viewHelp()
	}

	footer := m.help.View(keys)
	if m.err != nil {
		footer = m.theme.errText.Render("Error: "+m.err.Error()) + "\n" + footer
	} else if m.status != "" {
		footer = m.theme.status.Render(m.status) + "\n" + footer
	}
	return body + "\n\n" + footer
}

func (m Model) todayEntry() models.DayEntry {
	dateKey := models.DateKey(time.Now())
	for _, entry := range m.log {
		if entry.Date == dateKey {
			return entry
		}
	}
	return models.DayEntry{Date: dateKey}
}

func (m Model) viewToday() string {
	entry := m.todayEntry()
	goal := m.profile.GoalMinutes()
	pct := stats.ProgressPercent(entry, goal)

	var b strings.Builder
	b.WriteString(m.theme.title.Render("Today "+entry.Date) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %d/3\n", m.theme.starRow(entry.Stars, tracker.MaxStars), entry.Stars))
	b.WriteString(m.theme.accent.Render(progressBar(pct, 30)) + fmt.Sprintf(" %d%%\n", pct))
	b.WriteString(m.theme.muted.Render(fmt.Sprintf("%.2fh of %.1fh goal", float64(entry.Time)/60, float64(goal)/60)) + "\n\n")

	b.WriteString(m.theme.accent.Render("Your sessions so far") + "\n")
	if len(entry.Sessions) == 0 {
		b.WriteString(m.theme.muted.Render("No sessions yet") + "\n")
	}
	for _, rec := range entry.Sessions {
		line := fmt.Sprintf("%d min", rec.Minutes)
		if rec.Exam != "" {
			line += " (" + rec.Exam + ")"
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func (m Model) viewTimer() string {
	state := "paused"
	if m.stopwatch.Running() {
		state = "running"
	}
	return m.theme.title.Render("Session") + "\n\n" +
		m.theme.accent.Render(formatElapsed(m.stopwatch.Elapsed())) + "\n" +
		m.theme.muted.Render(state) + "\n\n" +
		m.theme.muted.Render("space start/pause · f finish · esc discard")
}

func (m Model) viewHistory() string {
	if len(m.log) == 0 {
		return m.theme.title.Render("History") + "\n\n" + m.theme.muted.Render("No days logged yet.")
	}

	start, end := m.paginator.GetSliceBounds(len(m.log))
	page := m.log[start:end]

	cards := make([]string, 0, len(page))
	for i, entry := range page {
		style := m.theme.card
		if i == m.cursor {
			style = m.theme.selected
		}
		card := fmt.Sprintf("%s\n%.1fh  %s", entry.Date, float64(entry.Time)/60, m.theme.starRow(entry.Stars, tracker.MaxStars))
		cards = append(cards, style.Render(card))
	}

	rows := make([]string, 0, (len(cards)+3)/4)
	for i := 0; i < len(cards); i += 4 {
		j := i + 4
		if j > len(cards) {
			j = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:j]...))
	}

	return m.theme.title.Render("History") + "\n\n" +
		strings.Join(rows, "\n") + "\n\n" +
		m.theme.muted.Render(m.paginator.View())
}

func (m Model) viewInsights() string {
	if len(m.log) == 0 {
		return m.theme.title.Render("Insights") + "\n\n" + m.theme.muted.Render("No data yet. Log a session first.")
	}
	o := stats.Summarize(m.log)
	return m.theme.title.Render("Insights") + "\n\n" +
		fmt.Sprintf("Longest day:    %s (%.2fh)\n", o.LongestDate, o.LongestHours) +
		fmt.Sprintf("Total tracked:  %.2f days\n", o.DaysSpent) +
		fmt.Sprintf("Daily average:  %.1f min\n", o.AverageMinutes) +
		fmt.Sprintf("Above average:  %.1f%% of days\n", o.AboveAveragePct) +
		"\n" +
		fmt.Sprintf("Stars earned:   %d\n", m.profile.AllStars) +
		fmt.Sprintf("Goals reached:  %d\n", m.profile.GoalReached)
}

func (m Model) viewHelp() string {
	return m.theme.title.Render("Help") + "\n\n" + m.help.FullHelpView(keys.FullHelp())
}

func progressBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
