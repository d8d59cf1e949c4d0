// Package importer validates externally supplied day entries and merges
// them into the existing log. The engine itself performs no store I/O.
package importer

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lmoretti/cogito/internal/core/models"
)

// ParseError marks invalid JSON text, as opposed to a structurally valid
// document that fails validation.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError identifies the first offending element and field.
// Item is 1-based to match what the user sees in the file.
type ValidationError struct {
	Item   int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Item == 0 {
		return e.Reason
	}
	return fmt.Sprintf("item %d: %s", e.Item, e.Reason)
}

// Parse decodes and validates an import payload. It fails fast: the first
// violation aborts with a descriptive error and no partial result.
func Parse(data []byte) ([]models.DayEntry, error) {
	var top json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, &ParseError{Err: err}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(top, &raw); err != nil {
		return nil, &ValidationError{Reason: "file must contain an array of objects"}
	}

	entries := make([]models.DayEntry, 0, len(raw))
	for i, item := range raw {
		entry, err := validateItem(i+1, item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func validateItem(item int, data json.RawMessage) (models.DayEntry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return models.DayEntry{}, &ValidationError{Item: item, Reason: "must be an object"}
	}

	for _, field := range []string{"date", "time", "stars", "sessions"} {
		if _, ok := fields[field]; !ok {
			return models.DayEntry{}, &ValidationError{Item: item, Field: field, Reason: fmt.Sprintf("missing %q field", field)}
		}
	}

	var entry models.DayEntry
	if err := json.Unmarshal(fields["date"], &entry.Date); err != nil {
		return models.DayEntry{}, &ValidationError{Item: item, Field: "date", Reason: `"date" must be a string`}
	}
	if err := json.Unmarshal(fields["time"], &entry.Time); err != nil {
		return models.DayEntry{}, &ValidationError{Item: item, Field: "time", Reason: `"time" must be a number`}
	}
	if err := json.Unmarshal(fields["stars"], &entry.Stars); err != nil {
		return models.DayEntry{}, &ValidationError{Item: item, Field: "stars", Reason: `"stars" must be a number`}
	}
	var sessions []models.SessionRecord
	if err := json.Unmarshal(fields["sessions"], &sessions); err != nil || string(fields["sessions"]) == "null" {
		return models.DayEntry{}, &ValidationError{Item: item, Field: "sessions", Reason: `"sessions" must be an array`}
	}
	entry.Sessions = sessions

	if !models.ValidDateKey(entry.Date) {
		return models.DayEntry{}, &ValidationError{Item: item, Field: "date", Reason: `"date" must be in format "DD/MM" (e.g. "23/05")`}
	}
	return entry, nil
}

// Merge folds candidates into the existing log, upserting by date key: a
// candidate sharing a date replaces the existing entry, so re-importing an
// export is idempotent. The result is sorted month-major, day-minor.
func Merge(existing, candidates []models.DayEntry) []models.DayEntry {
	merged := make([]models.DayEntry, len(existing))
	copy(merged, existing)

	for _, candidate := range candidates {
		replaced := false
		for i, entry := range merged {
			if entry.Date == candidate.Date {
				merged[i] = candidate
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, candidate)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return models.CompareDateKeys(merged[i].Date, merged[j].Date) < 0
	})
	return merged
}

// Recompute rebuilds every derived profile field from the full log,
// overwriting the incremental bookkeeping. Identity fields are kept.
func Recompute(profile models.Profile, log []models.DayEntry) models.Profile {
	profile.GrandTotal = 0
	profile.AllStars = 0
	profile.GoalReached = 0
	profile.Average = 0
	for _, entry := range log {
		profile.GrandTotal += entry.Time
		profile.AllStars += entry.Stars
		if entry.Stars >= 3 {
			profile.GoalReached++
		}
	}
	if len(log) > 0 {
		profile.Average = float64(profile.GrandTotal) / float64(len(log))
	}
	return profile
}
