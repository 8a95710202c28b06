package recorder

import (
	"path/filepath"
	"testing"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "lifesim_test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRecordDecision(t *testing.T) {
	r := openTestRecorder(t)

	rec := &DecisionRecord{
		SessionID:        "s-1",
		Step:             1,
		EventType:        "curveball",
		Narrative:        "Your car broke down.",
		OptionsPresented: []string{"Pay from savings", "Take a loan"},
		ChosenOption:     "Pay from savings",
		MoneyBefore:      2000,
		MoneyAfter:       800,
		FIScoreBefore:    5,
		FIScoreAfter:     5,
		Description:      "Cash -€1,200",
	}

	if err := r.RecordDecision(rec); err != nil {
		t.Fatalf("RecordDecision() error = %v", err)
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM decision_history WHERE session_id = ?`, "s-1").Scan(&count); err != nil {
		t.Fatalf("count query error = %v", err)
	}
	if count != 1 {
		t.Errorf("decision rows = %d, want 1", count)
	}
}

func TestRecordLeaderboardAndTopScores(t *testing.T) {
	r := openTestRecorder(t)

	entries := []LeaderboardEntry{
		{SessionID: "a", PlayerName: "Aino", FinalFIScore: 40, BalanceScore: 70},
		{SessionID: "b", PlayerName: "Ville", FinalFIScore: 85, BalanceScore: 60},
		{SessionID: "c", PlayerName: "Kai", FinalFIScore: 85, BalanceScore: 75},
	}
	for i := range entries {
		if err := r.RecordLeaderboard(&entries[i]); err != nil {
			t.Fatalf("RecordLeaderboard() error = %v", err)
		}
	}

	top, err := r.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopScores() returned %d entries, want 2", len(top))
	}
	// Ties break on balance score.
	if top[0].PlayerName != "Kai" || top[1].PlayerName != "Ville" {
		t.Errorf("TopScores() order = %s, %s; want Kai, Ville", top[0].PlayerName, top[1].PlayerName)
	}
}
