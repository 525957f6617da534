package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/skillcheck/internal/adaptive"
	"github.com/abhisek/skillcheck/internal/quizgen"
)

// Config describes one quiz session as set up by the candidate.
type Config struct {
	// TestName is a free-form label for the session, e.g. "Go Screening".
	TestName string

	// Profile is the candidate profile passed to the generator.
	Profile quizgen.Profile

	// QuestionCount is the number of questions in the session.
	QuestionCount int

	// TotalDuration is the time budget for the whole session. It is
	// split evenly into per-question answer windows.
	TotalDuration time.Duration

	// InitialDifficulty is the starting level.
	InitialDifficulty adaptive.Level

	// Adaptive enables difficulty adjustment during the session.
	// When false the session stays at InitialDifficulty throughout.
	Adaptive bool

	// Styles is the set of question styles to draw from. Each question
	// picks one at random.
	Styles []quizgen.Style
}

// Validate checks the config before a session starts. Setup rejects bad
// configs up front rather than failing mid-quiz.
func (c *Config) Validate() error {
	if c.TestName == "" {
		return errors.New("test name is required")
	}
	if c.Profile.TechStack == "" {
		return errors.New("tech stack is required")
	}
	if c.QuestionCount < 1 {
		return fmt.Errorf("question count must be at least 1, got %d", c.QuestionCount)
	}
	if c.TotalDuration <= 0 {
		return errors.New("duration must be positive")
	}
	if len(c.Styles) == 0 {
		return errors.New("at least one question style is required")
	}
	if c.InitialDifficulty < adaptive.Beginner || c.InitialDifficulty > adaptive.HiringChallenge {
		return fmt.Errorf("unknown difficulty level %d", c.InitialDifficulty)
	}
	return nil
}

// QuestionBudget returns the answer window for a single question:
// the total duration split evenly across the question count. Generation
// time does not count against it; the clock starts when the question is
// displayed.
func (c Config) QuestionBudget() time.Duration {
	if c.QuestionCount < 1 {
		return c.TotalDuration
	}
	return c.TotalDuration / time.Duration(c.QuestionCount)
}
