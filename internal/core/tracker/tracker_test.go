package tracker

import (
	"errors"
	"testing"

	"github.com/lmoretti/cogito/internal/core/models"
)

func TestStarTier(t *testing.T) {
	cases := []struct {
		minutes int
		want    int
	}{
		{0, 0},
		{149, 0},
		{150, 1},
		{199, 1},
		{200, 2},
		{299, 2},
		{300, 3},
		{1000, 3},
	}
	for _, tc := range cases {
		if got := StarTier(tc.minutes); got != tc.want {
			t.Errorf("StarTier(%d) = %d, want %d", tc.minutes, got, tc.want)
		}
	}
}

func TestRecord_AccumulatesMinutes(t *testing.T) {
	profile := models.Profile{GrandTotal: 40}
	log := []models.DayEntry{{Date: "10/06", Time: 20, Sessions: []models.SessionRecord{{Minutes: 20}}}}

	result := models.SessionResult{Hours: 1, Minutes: 30}
	profile, log, out, err := Record(result, profile, log, "10/06")
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if out.SessionMinutes != 90 {
		t.Errorf("SessionMinutes = %d, want 90", out.SessionMinutes)
	}
	if profile.GrandTotal != 130 {
		t.Errorf("GrandTotal = %d, want 130", profile.GrandTotal)
	}
	if log[0].Time != 110 {
		t.Errorf("entry time = %d, want 110", log[0].Time)
	}
	if profile.Average != 130 {
		t.Errorf("Average = %f, want 130", profile.Average)
	}
}

func TestRecord_CreatesEntryForNewDay(t *testing.T) {
	profile := models.Profile{}
	log := []models.DayEntry{{Date: "09/06", Time: 60}}

	_, log, _, err := Record(models.SessionResult{Minutes: 25}, profile, log, "10/06")
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	if len(log) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(log))
	}
	if log[1].Date != "10/06" || log[1].Time != 25 {
		t.Errorf("new entry = %+v, want date 10/06 time 25", log[1])
	}
}

func TestRecord_EmptySession(t *testing.T) {
	profile := models.Profile{GrandTotal: 10}
	log := []models.DayEntry{{Date: "10/06", Time: 10}}

	gotProfile, gotLog, _, err := Record(models.SessionResult{}, profile, log, "10/06")
	if !errors.Is(err, ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
	if gotProfile.GrandTotal != 10 || gotLog[0].Time != 10 {
		t.Error("empty session must not mutate state")
	}
}

func TestRecord_GoalCrossedOncePerDay(t *testing.T) {
	profile := models.Profile{}
	var log []models.DayEntry

	// 290 minutes: still below the 3-star threshold
	profile, log, out, err := Record(models.SessionResult{Hours: 4, Minutes: 50}, profile, log, "10/06")
	if err != nil {
		t.Fatal(err)
	}
	if out.GoalCrossed {
		t.Error("goal should not be crossed at 290 minutes")
	}
	if profile.GoalReached != 0 {
		t.Errorf("GoalReached = %d, want 0", profile.GoalReached)
	}

	// +20 minutes crosses the threshold
	profile, log, out, err = Record(models.SessionResult{Minutes: 20}, profile, log, "10/06")
	if err != nil {
		t.Fatal(err)
	}
	if !out.GoalCrossed {
		t.Error("goal should be crossed at 310 minutes")
	}
	if profile.GoalReached != 1 {
		t.Errorf("GoalReached = %d, want 1", profile.GoalReached)
	}

	// further sessions that day must not count again
	profile, _, out, err = Record(models.SessionResult{Minutes: 60}, profile, log, "10/06")
	if err != nil {
		t.Fatal(err)
	}
	if out.GoalCrossed {
		t.Error("goal crossing must fire at most once per day")
	}
	if profile.GoalReached != 1 {
		t.Errorf("GoalReached = %d, want 1", profile.GoalReached)
	}
}

func TestRecord_AllStarsDelta(t *testing.T) {
	profile := models.Profile{}
	var log []models.DayEntry
	var err error

	// 0 -> 2 stars in one session: +2
	profile, log, _, err = Record(models.SessionResult{Hours: 3, Minutes: 40}, profile, log, "10/06")
	if err != nil {
		t.Fatal(err)
	}
	if profile.AllStars != 2 {
		t.Errorf("AllStars = %d, want 2", profile.AllStars)
	}

	// staying inside the 2-star band adds nothing
	profile, log, _, err = Record(models.SessionResult{Minutes: 10}, profile, log, "10/06")
	if err != nil {
		t.Fatal(err)
	}
	if profile.AllStars != 2 {
		t.Errorf("AllStars = %d, want 2 after no tier change", profile.AllStars)
	}

	// reaching 3 stars adds exactly one more
	profile, _, _, err = Record(models.SessionResult{Hours: 2}, profile, log, "10/06")
	if err != nil {
		t.Fatal(err)
	}
	if profile.AllStars != 3 {
		t.Errorf("AllStars = %d, want 3", profile.AllStars)
	}
}

func TestRecord_SessionHistory(t *testing.T) {
	profile := models.Profile{}
	var log []models.DayEntry
	var err error

	for _, minutes := range []int{10, 20, 30, 40} {
		profile, log, _, err = Record(models.SessionResult{Minutes: minutes}, profile, log, "10/06")
		if err != nil {
			t.Fatal(err)
		}
	}

	sessions := log[0].Sessions
	if len(sessions) != 3 {
		t.Fatalf("untagged history should keep 3 sessions, got %d", len(sessions))
	}
	// most recent first
	if sessions[0].Minutes != 40 || sessions[2].Minutes != 20 {
		t.Errorf("unexpected session order: %+v", sessions)
	}

	// an exam-tagged session is prepended without truncation
	_, log, _, err = Record(models.SessionResult{Minutes: 15, Exam: "Algebra"}, profile, log, "10/06")
	if err != nil {
		t.Fatal(err)
	}
	sessions = log[0].Sessions
	if len(sessions) != 4 {
		t.Fatalf("exam-tagged record should not truncate, got %d sessions", len(sessions))
	}
	if sessions[0].Exam != "Algebra" {
		t.Errorf("expected exam tag on newest record, got %+v", sessions[0])
	}
}

func TestRecord_DoesNotMutateInput(t *testing.T) {
	log := []models.DayEntry{{Date: "10/06", Time: 100, Stars: 0}}

	_, _, _, err := Record(models.SessionResult{Hours: 5}, models.Profile{}, log, "10/06")
	if err != nil {
		t.Fatal(err)
	}
	if log[0].Time != 100 || log[0].Stars != 0 {
		t.Errorf("input log mutated: %+v", log[0])
	}
}

func TestEnsureToday(t *testing.T) {
	log, idx := EnsureToday(nil, "10/06")
	if len(log) != 1 || idx != 0 {
		t.Fatalf("EnsureToday on empty log = (%d entries, idx %d)", len(log), idx)
	}
	if log[0].Date != "10/06" || log[0].Time != 0 {
		t.Errorf("synthesized entry = %+v", log[0])
	}

	again, idx := EnsureToday(log, "10/06")
	if len(again) != 1 || idx != 0 {
		t.Errorf("EnsureToday must be idempotent, got %d entries", len(again))
	}
}
