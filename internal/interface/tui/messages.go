package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmoretti/cogito/internal/core/models"
	"github.com/lmoretti/cogito/internal/core/store"
	"github.com/lmoretti/cogito/internal/core/tracker"
)

type dataLoadedMsg struct {
	profile models.Profile
	log     []models.DayEntry
}

type sessionRecordedMsg struct {
	profile models.Profile
	log     []models.DayEntry
	outcome tracker.Outcome
}

type statusMsg string

type errMsg struct {
	err error
}

// loadData re-reads both documents and lazily creates today's entry, so the
// store stays the single source of truth between views.
func loadData(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		profile, err := s.LoadProfile()
		if err != nil {
			return errMsg{err}
		}
		log, err := s.LoadLog()
		if err != nil {
			return errMsg{err}
		}
		log, _ = tracker.EnsureToday(log, models.DateKey(time.Now()))
		if err := s.SaveLog(log); err != nil {
			return errMsg{err}
		}
		return dataLoadedMsg{profile: profile, log: log}
	}
}

// recordSession runs the accounting engine against a fresh snapshot and
// persists both documents (best-effort, not transactional).
func recordSession(s *store.Store, result models.SessionResult) tea.Cmd {
	return func() tea.Msg {
		profile, err := s.LoadProfile()
		if err != nil {
			return errMsg{err}
		}
		log, err := s.LoadLog()
		if err != nil {
			return errMsg{err}
		}
		profile, log, outcome, err := tracker.Record(result, profile, log, models.DateKey(time.Now()))
		if err != nil {
			return errMsg{err}
		}
		if err := s.SaveProfile(profile); err != nil {
			return errMsg{err}
		}
		if err := s.SaveLog(log); err != nil {
			return errMsg{err}
		}
		return sessionRecordedMsg{profile: profile, log: log, outcome: outcome}
	}
}
