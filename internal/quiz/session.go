package quiz

import "time"

type Phase string

const (
	PhaseAwaitingAge Phase = "awaiting_age"
	PhaseInQuiz      Phase = "quiz"
	PhaseFinished    Phase = "finished"
)

// Session is the per-user conversation state. It lives in memory only and
// carries nothing beyond what the current run needs.
type Session struct {
	UserID       string
	PassportAge  int
	Current      int   // 0-based cursor into the bank
	Scores       []int // one value per answered question, in order
	Phase        Phase
	StartedAt    time.Time
	LastActivity time.Time
}

func NewSession(userID string, now time.Time) Session {
	return Session{
		UserID:       userID,
		Phase:        PhaseAwaitingAge,
		StartedAt:    now,
		LastActivity: now,
	}
}
