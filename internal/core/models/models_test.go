package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSessionRecordJSON(t *testing.T) {
	// untagged records are bare minute counts on the wire
	data, err := json.Marshal(SessionRecord{Minutes: 45})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "45" {
		t.Errorf("untagged record = %s, want 45", data)
	}

	// exam-tagged records are objects
	data, err = json.Marshal(SessionRecord{Minutes: 30, Exam: "Analysis"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"time":30,"exam":"Analysis"}` {
		t.Errorf("tagged record = %s", data)
	}

	var recs []SessionRecord
	if err := json.Unmarshal([]byte(`[45, {"time": 30, "exam": "Analysis"}]`), &recs); err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Minutes != 45 || recs[0].Exam != "" {
		t.Errorf("bare record = %+v", recs[0])
	}
	if recs[1].Minutes != 30 || recs[1].Exam != "Analysis" {
		t.Errorf("tagged record = %+v", recs[1])
	}
}

func TestSessionResultShapes(t *testing.T) {
	// flat shape
	var flat SessionResult
	if err := json.Unmarshal([]byte(`{"hours": 1, "minutes": 15}`), &flat); err != nil {
		t.Fatal(err)
	}
	if flat.TotalMinutes() != 75 {
		t.Errorf("flat result = %d minutes, want 75", flat.TotalMinutes())
	}

	// structured shape with exam tag
	var structured SessionResult
	if err := json.Unmarshal([]byte(`{"time": {"hours": 2, "minutes": 5}, "exam": "Physics"}`), &structured); err != nil {
		t.Fatal(err)
	}
	if structured.TotalMinutes() != 125 || structured.Exam != "Physics" {
		t.Errorf("structured result = %+v", structured)
	}
}

func TestResultFromSeconds(t *testing.T) {
	cases := []struct {
		seconds int
		hours   int
		minutes int
	}{
		{0, 0, 0},
		{1, 0, 1},     // partial minutes round up
		{60, 0, 1},
		{61, 0, 2},
		{3600, 1, 0},
		{3661, 1, 2},
	}
	for _, tc := range cases {
		got := ResultFromSeconds(tc.seconds, "")
		if got.Hours != tc.hours || got.Minutes != tc.minutes {
			t.Errorf("ResultFromSeconds(%d) = %dh%dm, want %dh%dm",
				tc.seconds, got.Hours, got.Minutes, tc.hours, tc.minutes)
		}
	}
}

func TestDateKey(t *testing.T) {
	key := DateKey(time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC))
	if key != "07/03" {
		t.Errorf("DateKey = %s, want 07/03", key)
	}
}

func TestValidDateKey(t *testing.T) {
	valid := []string{"01/01", "23/05", "99/99"} // calendar validity is not checked
	for _, key := range valid {
		if !ValidDateKey(key) {
			t.Errorf("ValidDateKey(%q) = false, want true", key)
		}
	}
	invalid := []string{"", "1/1", "2025-01-01", "01/1", "ab/cd", "01/012"}
	for _, key := range invalid {
		if ValidDateKey(key) {
			t.Errorf("ValidDateKey(%q) = true, want false", key)
		}
	}
}

func TestCompareDateKeys(t *testing.T) {
	// month-major, day-minor
	if CompareDateKeys("02/01", "15/03") >= 0 {
		t.Error("02/01 should sort before 15/03")
	}
	if CompareDateKeys("15/03", "02/01") <= 0 {
		t.Error("15/03 should sort after 02/01")
	}
	if CompareDateKeys("10/06", "10/06") != 0 {
		t.Error("equal keys should compare equal")
	}
	if CompareDateKeys("09/06", "10/06") >= 0 {
		t.Error("09/06 should sort before 10/06")
	}
}

func TestProfileGoalMinutes(t *testing.T) {
	if got := (Profile{DailyGoalHours: 2.5}).GoalMinutes(); got != 150 {
		t.Errorf("GoalMinutes = %d, want 150", got)
	}
	// unset goal falls back to the 3-star threshold
	if got := (Profile{}).GoalMinutes(); got != 300 {
		t.Errorf("default GoalMinutes = %d, want 300", got)
	}
}
