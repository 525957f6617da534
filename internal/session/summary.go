package session

import (
	"time"

	"github.com/abhisek/skillcheck/internal/adaptive"
)

// Summary is the end-of-session report.
type Summary struct {
	SessionID string
	TestName  string

	// Answered is the number of questions the candidate saw (including
	// timeouts). May be less than the configured count on abandonment.
	Answered int

	// Correct is the number answered correctly.
	Correct int

	// TimedOut is the number that expired without an answer.
	TimedOut int

	// Concepts lists the distinct concepts covered, in first-seen order.
	Concepts []string

	// InitialDifficulty and FinalDifficulty bracket the controller's
	// movement over the session.
	InitialDifficulty adaptive.Level
	FinalDifficulty   adaptive.Level

	// Records holds every question outcome in order, for review.
	Records []AnswerRecord

	// Duration is the wall-clock length of the session.
	Duration time.Duration
}

// Score returns the fraction of answered questions that were correct,
// in [0, 1]. Zero when nothing was answered.
func (s *Summary) Score() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

func (s *Session) summarize() *Summary {
	sum := &Summary{
		SessionID:         s.id,
		TestName:          s.config.TestName,
		Answered:          len(s.records),
		Concepts:          s.history.Distinct(),
		InitialDifficulty: s.config.InitialDifficulty,
		FinalDifficulty:   s.controller.Level(),
		Records:           s.records,
	}
	if !s.startedAt.IsZero() {
		sum.Duration = time.Since(s.startedAt)
	}
	for _, r := range s.records {
		if r.Correct {
			sum.Correct++
		}
		if r.TimedOut {
			sum.TimedOut++
		}
	}
	return sum
}
