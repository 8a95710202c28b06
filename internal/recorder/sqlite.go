package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists play history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS decision_history (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			session_id        TEXT NOT NULL,
			step_number       INTEGER NOT NULL,
			event_type        TEXT,
			narrative         TEXT,
			options_presented TEXT,
			chosen_option     TEXT,
			money_before      REAL,
			fi_score_before   REAL,
			energy_before     INTEGER,
			motivation_before INTEGER,
			social_before     INTEGER,
			money_after       REAL,
			fi_score_after    REAL,
			energy_after      INTEGER,
			motivation_after  INTEGER,
			social_after      INTEGER,
			description       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_decision_session ON decision_history(session_id)`,

		`CREATE TABLE IF NOT EXISTS leaderboard (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			session_id       TEXT NOT NULL,
			player_name      TEXT,
			age              INTEGER,
			final_fi_score   REAL,
			final_money      REAL,
			final_energy     INTEGER,
			final_motivation INTEGER,
			final_social     INTEGER,
			final_knowledge  INTEGER,
			balance_score    REAL,
			steps_completed  INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_leaderboard_score ON leaderboard(final_fi_score)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordDecision(rec *DecisionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO decision_history
		(timestamp, session_id, step_number, event_type, narrative,
		 options_presented, chosen_option,
		 money_before, fi_score_before, energy_before, motivation_before, social_before,
		 money_after, fi_score_after, energy_after, motivation_after, social_after,
		 description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), rec.SessionID, rec.Step, rec.EventType, rec.Narrative,
		strings.Join(rec.OptionsPresented, "\n"), rec.ChosenOption,
		rec.MoneyBefore, rec.FIScoreBefore, rec.EnergyBefore, rec.MotivationBefore, rec.SocialBefore,
		rec.MoneyAfter, rec.FIScoreAfter, rec.EnergyAfter, rec.MotivationAfter, rec.SocialAfter,
		rec.Description,
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) RecordLeaderboard(entry *LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO leaderboard
		(timestamp, session_id, player_name, age,
		 final_fi_score, final_money, final_energy, final_motivation,
		 final_social, final_knowledge, balance_score, steps_completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), entry.SessionID, entry.PlayerName, entry.Age,
		entry.FinalFIScore, entry.FinalMoney, entry.FinalEnergy, entry.FinalMotivation,
		entry.FinalSocial, entry.FinalKnowledge, entry.BalanceScore, entry.StepsCompleted,
	)
	if err != nil {
		return fmt.Errorf("insert leaderboard: %w", err)
	}
	return nil
}

// TopScores returns the highest final FI scores for display after a run.
func (r *SQLiteRecorder) TopScores(limit int) ([]LeaderboardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT session_id, player_name, age,
		final_fi_score, final_money, final_energy, final_motivation,
		final_social, final_knowledge, balance_score, steps_completed
		FROM leaderboard ORDER BY final_fi_score DESC, balance_score DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.SessionID, &e.PlayerName, &e.Age,
			&e.FinalFIScore, &e.FinalMoney, &e.FinalEnergy, &e.FinalMotivation,
			&e.FinalSocial, &e.FinalKnowledge, &e.BalanceScore, &e.StepsCompleted); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
