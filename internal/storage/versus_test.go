package storage

import (
	"testing"

	"github.com/nghiafl1/game2048/internal/versus"
)

func TestSaveAndLoadVersusMatch(t *testing.T) {
	store := openTestStore(t)

	want := VersusMatch{
		MatchID:    "m-1",
		GridSize:   4,
		Difficulty: "hard",
		HumanScore: 1200,
		AIScore:    900,
		Winner:     "human",
		Duration:   120,
	}
	id, err := store.SaveVersusMatch(want)
	if err != nil {
		t.Fatalf("SaveVersusMatch() failed: %v", err)
	}

	got, err := store.VersusMatchByID("m-1")
	if err != nil {
		t.Fatalf("VersusMatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("VersusMatchByID() returned nil")
	}

	want.ID = id
	want.CreatedAt = got.CreatedAt
	if *got != want {
		t.Errorf("VersusMatchByID() = %+v, want %+v", *got, want)
	}
}

func TestVersusMatchByIDUnknown(t *testing.T) {
	store := openTestStore(t)

	got, err := store.VersusMatchByID("missing")
	if err != nil {
		t.Fatalf("VersusMatchByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("VersusMatchByID() = %+v, want nil", got)
	}
}

func TestSaveVersusMatchDuplicateID(t *testing.T) {
	store := openTestStore(t)

	m := VersusMatch{MatchID: "dup", GridSize: 4, Difficulty: "easy"}
	if _, err := store.SaveVersusMatch(m); err != nil {
		t.Fatalf("first SaveVersusMatch() failed: %v", err)
	}
	if _, err := store.SaveVersusMatch(m); err == nil {
		t.Error("second SaveVersusMatch() with the same match id should fail")
	}
}

func TestSaveMatchResultAndRecord(t *testing.T) {
	store := openTestStore(t)
	var saver versus.MatchResultSaver = store

	results := []versus.MatchResultData{
		{MatchID: "a", GridSize: 4, Difficulty: "easy", HumanScore: 300, AIScore: 200, Winner: "human", DurationSecs: 60},
		{MatchID: "b", GridSize: 4, Difficulty: "easy", HumanScore: 100, AIScore: 200, Winner: "ai", DurationSecs: 60},
		{MatchID: "c", GridSize: 4, Difficulty: "easy", HumanScore: 500, AIScore: 100, Winner: "human", DurationSecs: 60},
		{MatchID: "d", GridSize: 4, Difficulty: "easy", HumanScore: 100, AIScore: 100, DurationSecs: 60},
	}
	for _, r := range results {
		if err := saver.SaveMatchResult(r); err != nil {
			t.Fatalf("SaveMatchResult(%s) failed: %v", r.MatchID, err)
		}
	}

	rec, err := store.Record()
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	want := VersusRecord{Wins: 2, Losses: 1, Draws: 1}
	if rec != want {
		t.Errorf("Record() = %+v, want %+v", rec, want)
	}

	draw, err := store.VersusMatchByID("d")
	if err != nil || draw == nil {
		t.Fatalf("VersusMatchByID(d) = %v, %v", draw, err)
	}
	if draw.Winner != "" {
		t.Errorf("draw winner = %q, want empty", draw.Winner)
	}

	recent, err := store.RecentVersusMatches(2)
	if err != nil {
		t.Fatalf("RecentVersusMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d recent matches, want 2", len(recent))
	}
	if recent[0].MatchID != "d" || recent[1].MatchID != "c" {
		t.Errorf("recent order = %s, %s; want d, c", recent[0].MatchID, recent[1].MatchID)
	}
}

func TestRecordEmpty(t *testing.T) {
	store := openTestStore(t)

	rec, err := store.Record()
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if rec != (VersusRecord{}) {
		t.Errorf("Record() = %+v, want zero", rec)
	}
}
