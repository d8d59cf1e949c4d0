// Package tracker implements the session accounting rules: it turns a raw
// timer result into an updated daily log and profile aggregate. All
// functions thread state explicitly and perform no I/O.
package tracker

import (
	"errors"

	"github.com/lmoretti/cogito/internal/core/models"
)

// Star thresholds in minutes of tracked time per day.
const (
	OneStarMinutes       = 150
	TwoStarMinutes       = 200
	ThreeStarMinutes     = 300
	MaxStars             = 3
	untaggedSessionsKept = 3
)

// ErrEmptySession is returned for a zero-length result; nothing is recorded.
var ErrEmptySession = errors.New("session has no elapsed time")

// Outcome describes what a single Record call changed.
type Outcome struct {
	SessionMinutes int
	DateKey        string
	PreviousStars  int
	NewStars       int
	GoalCrossed    bool // day's tier reached 3 for the first time
}

// StarTier maps a day's cumulative minutes to its 0-3 star tier.
func StarTier(minutes int) int {
	switch {
	case minutes >= ThreeStarMinutes:
		return 3
	case minutes >= TwoStarMinutes:
		return 2
	case minutes >= OneStarMinutes:
		return 1
	default:
		return 0
	}
}

// Record applies one session result to the given profile and log, keyed to
// dateKey (normally today). It returns updated copies; the inputs are not
// modified. The caller persists both documents.
func Record(res models.SessionResult, profile models.Profile, log []models.DayEntry, dateKey string) (models.Profile, []models.DayEntry, Outcome, error) {
	minutes := res.TotalMinutes()
	if minutes <= 0 {
		return profile, log, Outcome{}, ErrEmptySession
	}

	updated := make([]models.DayEntry, len(log))
	copy(updated, log)

	idx := -1
	for i, entry := range updated {
		if entry.Date == dateKey {
			idx = i
			break
		}
	}
	if idx == -1 {
		updated = append(updated, models.DayEntry{Date: dateKey, Sessions: []models.SessionRecord{}})
		idx = len(updated) - 1
	}
	entry := updated[idx]

	profile.GrandTotal += minutes
	entry.Time += minutes

	previous := entry.Stars
	entry.Stars = StarTier(entry.Time)

	out := Outcome{
		SessionMinutes: minutes,
		DateKey:        dateKey,
		PreviousStars:  previous,
		NewStars:       entry.Stars,
	}

	if entry.Stars == MaxStars && previous < MaxStars {
		profile.GoalReached++
		out.GoalCrossed = true
	}
	if earned := entry.Stars - previous; earned > 0 {
		profile.AllStars += earned
	}

	record := models.SessionRecord{Minutes: minutes, Exam: res.Exam}
	entry.Sessions = append([]models.SessionRecord{record}, entry.Sessions...)
	// Untagged history keeps only the 3 most recent sessions. Exam-tagged
	// records are kept in full so per-exam statistics stay complete.
	if res.Exam == "" && len(entry.Sessions) > untaggedSessionsKept {
		entry.Sessions = entry.Sessions[:untaggedSessionsKept]
	}

	updated[idx] = entry
	profile.Average = float64(profile.GrandTotal) / float64(len(updated))

	return profile, updated, out, nil
}

// EnsureToday lazily creates an empty entry for dateKey so the today view
// always has something to render. Returns the (possibly extended) log and
// the entry's index.
func EnsureToday(log []models.DayEntry, dateKey string) ([]models.DayEntry, int) {
	for i, entry := range log {
		if entry.Date == dateKey {
			return log, i
		}
	}
	updated := make([]models.DayEntry, len(log), len(log)+1)
	copy(updated, log)
	updated = append(updated, models.DayEntry{Date: dateKey, Sessions: []models.SessionRecord{}})
	return updated, len(updated) - 1
}
