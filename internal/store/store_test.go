package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLLMEventRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	data := LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "question_generation",
		InputTokens:  500,
		OutputTokens: 200,
		LatencyMs:    1200,
		Success:      true,
		RequestBody:  "[system]\nyou are a quiz generator",
		ResponseBody: `{"question":"What is a goroutine?"}`,
	}
	if err := repo.AppendLLMRequest(ctx, data); err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	got := events[0]
	if got.Provider != data.Provider || got.Model != data.Model || got.Purpose != data.Purpose {
		t.Errorf("identity mismatch: %+v", got)
	}
	if got.InputTokens != 500 || got.OutputTokens != 200 {
		t.Errorf("token mismatch: in=%d out=%d", got.InputTokens, got.OutputTokens)
	}
	if !got.Success {
		t.Error("expected success flag set")
	}

	fetched, err := repo.GetLLMEvent(ctx, got.ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if fetched.ResponseBody != data.ResponseBody {
		t.Errorf("response body mismatch: %q", fetched.ResponseBody)
	}
}

func TestGetLLMEventNotFound(t *testing.T) {
	repo := openTestStore(t).EventRepo()

	_, err := repo.GetLLMEvent(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQueryLLMEventsFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	for i := 0; i < 3; i++ {
		purpose := "question_generation"
		if i == 1 {
			purpose = "other"
		}
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: purpose,
		}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "question_generation"})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 filtered events, got %d", len(events))
	}
	if events[0].Sequence < events[1].Sequence {
		t.Error("expected newest-first ordering")
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "p"}); err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "started"}); err != nil {
		t.Fatalf("AppendSessionEvent: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "p"}); err != nil {
		t.Fatalf("AppendLLMRequest: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 llm events, got %d", len(events))
	}
	// Sequences 1 and 3; 2 went to the session event.
	if events[0].Sequence != 3 || events[1].Sequence != 1 {
		t.Errorf("expected sequences [3 1], got [%d %d]", events[0].Sequence, events[1].Sequence)
	}
}

func TestSessionStats(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "completed", TestName: "Go Basics",
		QuestionCount: 2, CorrectAnswers: 1,
	}); err != nil {
		t.Fatalf("AppendSessionEvent: %v", err)
	}

	answers := []AnswerEventData{
		{SessionID: "s1", QuestionText: "q1", Concept: "Goroutines", Difficulty: "Beginner", Correct: true, TimeMs: 4000},
		{SessionID: "s1", QuestionText: "q2", Concept: "Channels", Difficulty: "Beginner", TimedOut: true, TimeMs: 30000},
		{SessionID: "s1", QuestionText: "q3", Concept: "Goroutines", Difficulty: "Intermediate", Correct: true, TimeMs: 8000},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("AppendAnswerEvent %d: %v", i, err)
		}
	}

	stats, err := repo.SessionStats(ctx)
	if err != nil {
		t.Fatalf("SessionStats: %v", err)
	}
	if stats.SessionsCompleted != 1 {
		t.Errorf("sessions completed = %d, want 1", stats.SessionsCompleted)
	}
	if stats.QuestionsAnswered != 3 {
		t.Errorf("questions answered = %d, want 3", stats.QuestionsAnswered)
	}
	if stats.CorrectAnswers != 2 {
		t.Errorf("correct answers = %d, want 2", stats.CorrectAnswers)
	}
	if stats.TimedOut != 1 {
		t.Errorf("timed out = %d, want 1", stats.TimedOut)
	}
	if stats.DistinctConcepts != 2 {
		t.Errorf("distinct concepts = %d, want 2", stats.DistinctConcepts)
	}
	if len(stats.ByDifficulty) != 2 {
		t.Fatalf("expected 2 difficulty buckets, got %d", len(stats.ByDifficulty))
	}
}

func TestUsageAggregation(t *testing.T) {
	ctx := context.Background()
	repo := openTestStore(t).EventRepo()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "question_generation", InputTokens: 100, OutputTokens: 50},
		{Provider: "anthropic", Model: "m1", Purpose: "question_generation", InputTokens: 200, OutputTokens: 80},
		{Provider: "openai", Model: "m2", Purpose: "other", InputTokens: 10, OutputTokens: 5},
	}
	for i, ev := range events {
		if err := repo.AppendLLMRequest(ctx, ev); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	if byPurpose[0].Purpose != "question_generation" || byPurpose[0].Requests != 2 {
		t.Errorf("unexpected top purpose: %+v", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 300 || byPurpose[0].OutputTokens != 130 {
		t.Errorf("token sums wrong: %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[0].Model != "m1" || byModel[0].Requests != 2 {
		t.Errorf("unexpected top model: %+v", byModel[0])
	}
}
