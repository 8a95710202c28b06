package recorder

// DecisionRecord holds one applied decision for replay and analysis.
type DecisionRecord struct {
	SessionID string
	Step      int
	EventType string
	Narrative string

	OptionsPresented []string
	ChosenOption     string

	MoneyBefore      float64
	FIScoreBefore    float64
	EnergyBefore     int
	MotivationBefore int
	SocialBefore     int

	MoneyAfter      float64
	FIScoreAfter    float64
	EnergyAfter     int
	MotivationAfter int
	SocialAfter     int

	Description string
}

// LeaderboardEntry records a completed session's final scores.
type LeaderboardEntry struct {
	SessionID  string
	PlayerName string
	Age        int

	FinalFIScore    float64
	FinalMoney      float64
	FinalEnergy     int
	FinalMotivation int
	FinalSocial     int
	FinalKnowledge  int
	BalanceScore    float64

	StepsCompleted int
}

// Recorder persists play history for analysis.
type Recorder interface {
	RecordDecision(rec *DecisionRecord) error
	RecordLeaderboard(entry *LeaderboardEntry) error
	Close() error
}
