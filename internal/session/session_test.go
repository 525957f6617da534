package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/skillcheck/internal/adaptive"
	"github.com/abhisek/skillcheck/internal/llm"
	"github.com/abhisek/skillcheck/internal/quizgen"
)

func testConfig() Config {
	return Config{
		TestName:          "Go Screening",
		Profile:           quizgen.Profile{Name: "Priya", TechStack: "Go"},
		QuestionCount:     3,
		TotalDuration:     9 * time.Minute,
		InitialDifficulty: adaptive.Beginner,
		Adaptive:          true,
		Styles:            []quizgen.Style{quizgen.StyleBrief},
	}
}

// questionJSON builds a canned response with a distinct concept so
// history assertions can tell questions apart.
func questionJSON(concept string) llm.MockResponse {
	content := fmt.Sprintf(`{
		"question_text": "Question about %s?",
		"choices": ["right", "wrong1", "wrong2", "wrong3"],
		"correct_answer": "right",
		"explanation": "Because.",
		"concept": "%s"
	}`, concept, concept)
	return llm.MockResponse{Content: json.RawMessage(content)}
}

func newTestSession(cfg Config, responses ...llm.MockResponse) (*Session, *llm.MockProvider) {
	mock := llm.NewMockProvider(responses...)
	gen := quizgen.New(mock, quizgen.DefaultConfig())
	svc := quizgen.NewService(gen, quizgen.DefaultConfig())
	return New(cfg, svc, nil), mock
}

func TestSessionFullRun(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(testConfig(),
		questionJSON("Slices"),
		questionJSON("Maps"),
		questionJSON("Channels"),
	)
	s.Start(ctx)

	answers := []string{"right", "wrong1", "right"}
	for i, a := range answers {
		if s.Done() {
			t.Fatalf("session done early at question %d", i+1)
		}
		q := s.NextQuestion(ctx)
		if q == nil {
			t.Fatalf("question %d is nil", i+1)
		}
		rec := s.Submit(ctx, a)
		wantCorrect := a == "right"
		if rec.Correct != wantCorrect {
			t.Errorf("question %d: correct = %t, want %t", i+1, rec.Correct, wantCorrect)
		}
	}

	if !s.Done() {
		t.Fatal("session should be done")
	}

	sum := s.Finish(ctx)
	if sum.Answered != 3 || sum.Correct != 2 {
		t.Errorf("summary = %d/%d, want 2/3", sum.Correct, sum.Answered)
	}
	if got := sum.Score(); got < 0.66 || got > 0.67 {
		t.Errorf("score = %f, want 2/3", got)
	}
	if len(sum.Concepts) != 3 {
		t.Errorf("distinct concepts = %v, want 3", sum.Concepts)
	}
}

func TestSessionAdaptiveProgression(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.QuestionCount = 4
	s, _ := newTestSession(cfg,
		questionJSON("A"), questionJSON("B"), questionJSON("C"), questionJSON("D"),
	)
	s.Start(ctx)

	// Two correct answers advance to Intermediate.
	s.NextQuestion(ctx)
	s.Submit(ctx, "right")
	s.NextQuestion(ctx)
	s.Submit(ctx, "right")
	if s.Difficulty() != adaptive.Intermediate {
		t.Fatalf("difficulty = %v, want Intermediate", s.Difficulty())
	}

	// A miss drops back to Beginner.
	s.NextQuestion(ctx)
	s.Submit(ctx, "wrong1")
	if s.Difficulty() != adaptive.Beginner {
		t.Fatalf("difficulty = %v, want Beginner", s.Difficulty())
	}
}

func TestSessionQuestionUsesCurrentDifficulty(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.QuestionCount = 3
	s, mock := newTestSession(cfg,
		questionJSON("A"), questionJSON("B"), questionJSON("C"),
	)
	s.Start(ctx)

	s.NextQuestion(ctx)
	s.Submit(ctx, "right")
	s.NextQuestion(ctx)
	s.Submit(ctx, "right")

	q := s.NextQuestion(ctx)
	if q.Difficulty != adaptive.Intermediate {
		t.Errorf("question difficulty = %v, want Intermediate", q.Difficulty)
	}
	if len(mock.Calls) != 3 {
		t.Fatalf("expected 3 provider calls, got %d", len(mock.Calls))
	}
}

func TestSessionTimeoutScoredIncorrect(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.InitialDifficulty = adaptive.Senior
	s, _ := newTestSession(cfg, questionJSON("A"))
	s.Start(ctx)

	s.NextQuestion(ctx)
	rec := s.Timeout(ctx)

	if rec.Correct {
		t.Error("timed-out question scored correct")
	}
	if !rec.TimedOut {
		t.Error("record not marked timed out")
	}
	if rec.UserAnswer != "" {
		t.Errorf("timed-out record has answer %q", rec.UserAnswer)
	}
	// Timeout counts as a miss for difficulty.
	if s.Difficulty() != adaptive.Intermediate {
		t.Errorf("difficulty = %v, want Intermediate after timeout", s.Difficulty())
	}
}

func TestSessionConceptDedupWindow(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.QuestionCount = 7
	var responses []llm.MockResponse
	for i := 0; i < 7; i++ {
		responses = append(responses, questionJSON(fmt.Sprintf("Concept%d", i)))
	}
	s, mock := newTestSession(cfg, responses...)
	s.Start(ctx)

	for i := 0; i < 7; i++ {
		s.NextQuestion(ctx)
		s.Submit(ctx, "right")
	}

	// The seventh request sees only the five most recent concepts.
	last := mock.Calls[6].Messages[0].Content
	for _, want := range []string{"Concept1", "Concept2", "Concept3", "Concept4", "Concept5"} {
		if !strings.Contains(last, want) {
			t.Errorf("seventh prompt missing recent concept %q", want)
		}
	}
	if strings.Contains(last, "Concept0") {
		t.Error("seventh prompt should have dropped the oldest concept")
	}
}

func TestSessionFallbackKeepsQuizAlive(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.QuestionCount = 1
	// Empty mock: every generation attempt fails.
	s, _ := newTestSession(cfg)
	s.Start(ctx)

	q := s.NextQuestion(ctx)
	if q == nil {
		t.Fatal("expected fallback question, got nil")
	}
	if q.Concept != "API Reliability" {
		t.Errorf("unexpected fallback concept: %q", q.Concept)
	}

	rec := s.Submit(ctx, q.CorrectAnswer)
	if !rec.Correct {
		t.Error("fallback answer should still be scorable")
	}
	if !rec.Fallback {
		t.Error("record not marked as fallback")
	}
}

func TestSessionAbandonedSummary(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(testConfig(), questionJSON("A"))
	s.Start(ctx)

	s.NextQuestion(ctx)
	s.Submit(ctx, "right")

	sum := s.Finish(ctx)
	if sum.Answered != 1 {
		t.Errorf("answered = %d, want 1", sum.Answered)
	}
	if s.Done() {
		t.Error("session with 1 of 3 answered should not be done")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"no test name", func(c *Config) { c.TestName = "" }, false},
		{"no tech stack", func(c *Config) { c.Profile.TechStack = "" }, false},
		{"zero questions", func(c *Config) { c.QuestionCount = 0 }, false},
		{"zero duration", func(c *Config) { c.TotalDuration = 0 }, false},
		{"no styles", func(c *Config) { c.Styles = nil }, false},
		{"bad difficulty", func(c *Config) { c.InitialDifficulty = adaptive.Level(9) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestQuestionBudget(t *testing.T) {
	cfg := testConfig()
	if got := cfg.QuestionBudget(); got != 3*time.Minute {
		t.Errorf("budget = %v, want 3m", got)
	}

	// The budget must also be reachable from the copy Session.Config()
	// hands out, the way the quiz screen reads it.
	sess := New(cfg, quizgen.NewService(nil, quizgen.DefaultConfig()), nil)
	if got := sess.Config().QuestionBudget(); got != 3*time.Minute {
		t.Errorf("budget via session = %v, want 3m", got)
	}
}
