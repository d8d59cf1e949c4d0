// Package stats derives read-only projections over the daily log.
package stats

import (
	"sort"

	"github.com/lmoretti/cogito/internal/core/models"
)

// Overview summarizes the whole log for the insights screen.
type Overview struct {
	Days            int
	TotalMinutes    int
	DaysSpent       float64 // total time expressed in 24h days
	LongestDate     string
	LongestHours    float64
	AverageMinutes  float64
	AboveAveragePct float64 // days strictly above the mean
}

// Summarize computes the overview. An empty log yields the zero value.
func Summarize(log []models.DayEntry) Overview {
	if len(log) == 0 {
		return Overview{}
	}

	o := Overview{Days: len(log)}
	longest := log[0]
	for _, entry := range log {
		o.TotalMinutes += entry.Time
		if entry.Time > longest.Time {
			longest = entry
		}
	}
	o.LongestDate = longest.Date
	o.LongestHours = float64(longest.Time) / 60
	o.DaysSpent = float64(o.TotalMinutes) / 60 / 24
	o.AverageMinutes = float64(o.TotalMinutes) / float64(len(log))

	above := 0
	for _, entry := range log {
		if float64(entry.Time) > o.AverageMinutes {
			above++
		}
	}
	o.AboveAveragePct = float64(above) / float64(len(log)) * 100
	return o
}

// ExamPoint is one day's tracked hours for a single exam.
type ExamPoint struct {
	Date  string
	Hours float64
}

// ExamSummary aggregates every exam-tagged session under one label.
type ExamSummary struct {
	Name         string
	TotalMinutes int
	Series       []ExamPoint // ascending by date key
}

// ExamTotals groups exam-tagged session records by label. Untagged records
// are ignored. Summaries come back sorted by label, each series sorted by
// date key.
func ExamTotals(log []models.DayEntry) []ExamSummary {
	perExam := map[string]map[string]int{} // exam -> date -> minutes
	for _, entry := range log {
		for _, rec := range entry.Sessions {
			if rec.Exam == "" {
				continue
			}
			if perExam[rec.Exam] == nil {
				perExam[rec.Exam] = map[string]int{}
			}
			perExam[rec.Exam][entry.Date] += rec.Minutes
		}
	}

	summaries := make([]ExamSummary, 0, len(perExam))
	for name, byDate := range perExam {
		s := ExamSummary{Name: name}
		for date, minutes := range byDate {
			s.TotalMinutes += minutes
			s.Series = append(s.Series, ExamPoint{Date: date, Hours: float64(minutes) / 60})
		}
		sort.Slice(s.Series, func(i, j int) bool {
			return models.CompareDateKeys(s.Series[i].Date, s.Series[j].Date) < 0
		})
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries
}

// Page is one fixed-size window over the log.
type Page struct {
	Entries []models.DayEntry
	Number  int // zero-based
	Total   int
}

// Paginate slices the log into perPage-sized windows and returns the
// requested one, clamped to the valid range.
func Paginate(log []models.DayEntry, page, perPage int) Page {
	if perPage <= 0 {
		perPage = 8
	}
	total := (len(log) + perPage - 1) / perPage
	if total == 0 {
		return Page{Number: 0, Total: 0}
	}
	if page < 0 {
		page = 0
	}
	if page >= total {
		page = total - 1
	}
	start := page * perPage
	end := start + perPage
	if end > len(log) {
		end = len(log)
	}
	return Page{Entries: log[start:end], Number: page, Total: total}
}

// ProgressPercent reports a day's progress toward the goal, capped at 100.
func ProgressPercent(entry models.DayEntry, goalMinutes int) int {
	if goalMinutes <= 0 {
		return 0
	}
	pct := entry.Time * 100 / goalMinutes
	if pct > 100 {
		pct = 100
	}
	return pct
}
