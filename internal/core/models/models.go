package models

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// Store document keys
const (
	ProfileKey = "onboarding"
	LogKey     = "logger"
)

// DateKeyLayout is the canonical short date form used throughout the log.
const DateKeyLayout = "02/01"

var dateKeyPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// Profile is the lifetime aggregate document stored under the onboarding key.
type Profile struct {
	Name           string  `json:"name"`
	Focus          string  `json:"focus"`
	DailyGoalHours float64 `json:"dailyGoalHours"`
	GrandTotal     int     `json:"grandTotal"` // lifetime minutes
	AllStars       int     `json:"allStars"`
	GoalReached    int     `json:"goalReached"`
	Average        float64 `json:"average"` // minutes per logged day
	ProfilePicture string  `json:"profilePicture,omitempty"`
	Onboarded      bool    `json:"onboarded"`
}

// GoalMinutes returns the daily goal in minutes. Days without a configured
// goal fall back to the 3-star threshold so progress still renders.
func (p Profile) GoalMinutes() int {
	if p.DailyGoalHours <= 0 {
		return 300
	}
	return int(p.DailyGoalHours * 60)
}

// DayEntry aggregates one calendar day of tracking.
type DayEntry struct {
	Date     string          `json:"date"` // DD/MM
	Time     int             `json:"time"` // minutes
	Stars    int             `json:"stars"`
	Sessions []SessionRecord `json:"sessions"` // most recent first
}

// SessionRecord is one timed interval inside a day. On the wire an untagged
// record is a bare minute count; an exam-tagged record is an object.
type SessionRecord struct {
	Minutes int
	Exam    string
}

func (r SessionRecord) MarshalJSON() ([]byte, error) {
	if r.Exam == "" {
		return json.Marshal(r.Minutes)
	}
	return json.Marshal(struct {
		Time int    `json:"time"`
		Exam string `json:"exam"`
	}{r.Minutes, r.Exam})
}

func (r *SessionRecord) UnmarshalJSON(data []byte) error {
	var minutes int
	if err := json.Unmarshal(data, &minutes); err == nil {
		r.Minutes = minutes
		r.Exam = ""
		return nil
	}
	var tagged struct {
		Time int    `json:"time"`
		Exam string `json:"exam"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("session record must be a number or a {time, exam} object: %w", err)
	}
	r.Minutes = tagged.Time
	r.Exam = tagged.Exam
	return nil
}

// SessionResult is a raw timer outcome. Two shapes are accepted for
// compatibility with older exports: flat {hours, minutes} and structured
// {time: {hours, minutes}, exam}.
type SessionResult struct {
	Hours   int
	Minutes int
	Exam    string
}

func (r *SessionResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Hours   int    `json:"hours"`
		Minutes int    `json:"minutes"`
		Exam    string `json:"exam"`
		Time    *struct {
			Hours   int `json:"hours"`
			Minutes int `json:"minutes"`
		} `json:"time"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Time != nil {
		r.Hours = raw.Time.Hours
		r.Minutes = raw.Time.Minutes
	} else {
		r.Hours = raw.Hours
		r.Minutes = raw.Minutes
	}
	r.Exam = raw.Exam
	return nil
}

// TotalMinutes resolves the result to a single minute count.
func (r SessionResult) TotalMinutes() int {
	return r.Hours*60 + r.Minutes
}

// ResultFromSeconds converts an elapsed stopwatch reading into a session
// result: whole hours, remainder rounded up to the next minute.
func ResultFromSeconds(seconds int, exam string) SessionResult {
	hours := seconds / 3600
	minutes := (seconds%3600 + 59) / 60
	return SessionResult{Hours: hours, Minutes: minutes, Exam: exam}
}

// DateKey formats a time as the canonical DD/MM key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ValidDateKey reports whether s matches the DD/MM pattern. Calendar
// validity of the day and month values is deliberately not checked.
func ValidDateKey(s string) bool {
	return dateKeyPattern.MatchString(s)
}

// CompareDateKeys orders two DD/MM keys month-major, day-minor. Years are
// not part of the key, so cross-year ordering is undefined by construction.
func CompareDateKeys(a, b string) int {
	am, ad := splitDateKey(a)
	bm, bd := splitDateKey(b)
	if am != bm {
		return am - bm
	}
	return ad - bd
}

func splitDateKey(key string) (month, day int) {
	if len(key) != 5 {
		return 0, 0
	}
	day = int(key[0]-'0')*10 + int(key[1]-'0')
	month = int(key[3]-'0')*10 + int(key[4]-'0')
	return month, day
}
