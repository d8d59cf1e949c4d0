package tui

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoretti/cogito/internal/core/config"
	"github.com/lmoretti/cogito/internal/core/models"
	"github.com/lmoretti/cogito/internal/core/store"
)

type viewMode int

const (
	todayView viewMode = iota
	timerView
	historyView
	insightsView
	helpView
)

const historyPerPage = 8

type keyMap struct {
	Timer    key.Binding
	History  key.Binding
	Insights key.Binding
	Toggle   key.Binding
	Finish   key.Binding
	Copy     key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Timer, k.History, k.Insights, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Timer, k.Toggle, k.Finish},
		{k.History, k.Insights, k.Copy},
		{k.Back, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Timer:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timer")),
	History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
	Insights: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insights")),
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
	Finish:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "finish session")),
	Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy day as JSON")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type Model struct {
	store *store.Store
	theme theme
	mode  viewMode

	profile models.Profile
	log     []models.DayEntry

	stopwatch stopwatch.Model
	paginator paginator.Model
	cursor    int // selected entry within the history page
	help      help.Model

	status string
	err    error
	width  int
	height int
}

func New(s *store.Store, cfg *config.Config) Model {
	p := paginator.New()
	p.PerPage = historyPerPage

	return Model{
		store:     s,
		theme:     newTheme(cfg.Theme),
		mode:      todayView,
		stopwatch: stopwatch.NewWithInterval(time.Second),
		paginator: p,
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return loadData(m.store)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dataLoadedMsg:
		m.profile = msg.profile
		m.log = msg.log
		m.paginator.SetTotalPages(len(m.log))
		return m, nil

	case sessionRecordedMsg:
		m.profile = msg.profile
		m.log = msg.log
		m.paginator.SetTotalPages(len(m.log))
		m.mode = todayView
		if msg.outcome.GoalCrossed {
			m.status = fmt.Sprintf("Logged %d min. Daily goal reached!", msg.outcome.SessionMinutes)
		} else {
			m.status = fmt.Sprintf("Logged %d min (%d/3 stars)", msg.outcome.SessionMinutes, msg.outcome.NewStars)
		}
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case errMsg:
		// Core failures never kill the program; they become a status line.
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.err = nil

	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case todayView:
		switch {
		case key.Matches(msg, keys.Timer):
			m.mode = timerView
			return m, m.stopwatch.Reset()
		case key.Matches(msg, keys.History):
			m.mode = historyView
			m.cursor = 0
			return m, nil
		case key.Matches(msg, keys.Insights):
			m.mode = insightsView
			return m, nil
		case key.Matches(msg, keys.Help):
			m.mode = helpView
			return m, nil
		}

	case timerView:
		switch {
		case key.Matches(msg, keys.Toggle):
			return m, m.stopwatch.Toggle()
		case key.Matches(msg, keys.Finish):
			seconds := int(m.stopwatch.Elapsed().Seconds())
			if seconds == 0 {
				m.status = "Nothing to record yet"
				return m, nil
			}
			m.mode = todayView
			result := models.ResultFromSeconds(seconds, "")
			return m, tea.Batch(m.stopwatch.Stop(), m.stopwatch.Reset(), recordSession(m.store, result))
		case key.Matches(msg, keys.Back):
			m.mode = todayView
			return m, tea.Batch(m.stopwatch.Stop(), m.stopwatch.Reset())
		}

	case historyView:
		switch {
		case key.Matches(msg, keys.Back):
			m.mode = todayView
			return m, nil
		case key.Matches(msg, keys.Copy):
			return m, m.copySelected()
		case msg.String() == "up", msg.String() == "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case msg.String() == "down", msg.String() == "j":
			start, end := m.paginator.GetSliceBounds(len(m.log))
			if m.cursor < end-start-1 {
				m.cursor++
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.paginator, cmd = m.paginator.Update(msg)
		m.cursor = 0
		return m, cmd

	case insightsView, helpView:
		if key.Matches(msg, keys.Back) {
			m.mode = todayView
		}
		return m, nil
	}

	return m, nil
}

func (m Model) copySelected() tea.Cmd {
	start, end := m.paginator.GetSliceBounds(len(m.log))
	page := m.log[start:end]
	if m.cursor >= len(page) {
		return nil
	}
	entry := page[m.cursor]
	return func() tea.Msg {
		body, err := json.Marshal(entry)
		if err != nil {
			return errMsg{err}
		}
		if err := clipboard.WriteAll(string(body)); err != nil {
			return errMsg{fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return statusMsg(fmt.Sprintf("Copied %s to clipboard", entry.Date))
	}
}
