package quizgen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/skillcheck/internal/adaptive"
	"github.com/abhisek/skillcheck/internal/llm"
)

func serviceInput() GenerateInput {
	return GenerateInput{
		Profile:    testProfile(),
		Difficulty: adaptive.Intermediate,
		Style:      StyleDebugging,
	}
}

func TestServiceNext_FirstAttemptSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	svc := NewService(New(mock, DefaultConfig()), DefaultConfig())

	q, fallback := svc.Next(context.Background(), serviceInput())
	if fallback {
		t.Fatal("unexpected fallback")
	}
	if q.Concept != "Nil Channels" {
		t.Errorf("unexpected concept: %q", q.Concept)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestServiceNext_RegeneratesOnValidationFailure(t *testing.T) {
	invalid := json.RawMessage(`{
		"question_text": "Pick one.",
		"choices": ["a", "a", "b", "c"],
		"correct_answer": "a",
		"explanation": "Because.",
		"concept": "Testing"
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: invalid},
		llm.MockResponse{Content: validQuestionJSON()},
	)
	svc := NewService(New(mock, DefaultConfig()), DefaultConfig())

	q, fallback := svc.Next(context.Background(), serviceInput())
	if fallback {
		t.Fatal("unexpected fallback")
	}
	if q.Concept != "Nil Channels" {
		t.Errorf("unexpected concept: %q", q.Concept)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 provider calls, got %d", mock.CallCount())
	}
}

func TestServiceNext_FallbackAfterExhaustedAttempts(t *testing.T) {
	invalid := llm.MockResponse{Content: json.RawMessage(`{
		"question_text": "",
		"choices": ["a", "b", "c", "d"],
		"correct_answer": "a",
		"explanation": "x",
		"concept": "x"
	}`)}
	mock := llm.NewMockProvider(invalid, invalid, invalid)
	svc := NewService(New(mock, DefaultConfig()), DefaultConfig())

	q, fallback := svc.Next(context.Background(), serviceInput())
	if !fallback {
		t.Fatal("expected fallback")
	}
	if q.Concept != "API Reliability" {
		t.Errorf("unexpected fallback concept: %q", q.Concept)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 provider calls, got %d", mock.CallCount())
	}
}

func TestServiceNext_ProviderErrorGoesStraightToFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(New(mock, DefaultConfig()), DefaultConfig())

	q, fallback := svc.Next(context.Background(), serviceInput())
	if !fallback {
		t.Fatal("expected fallback")
	}
	if q == nil {
		t.Fatal("fallback question is nil")
	}
	// Provider errors are not regenerated at the service level.
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.CallCount())
	}
}

func TestServiceNext_FallbackIsDeterministic(t *testing.T) {
	a := Fallback(adaptive.Senior, StyleBrief)
	b := Fallback(adaptive.Senior, StyleBrief)

	if a.Text != b.Text || a.CorrectAnswer != b.CorrectAnswer || a.Concept != b.Concept {
		t.Error("fallback question is not deterministic")
	}
	if a.Difficulty != adaptive.Senior || a.Style != StyleBrief {
		t.Errorf("fallback metadata wrong: %v %q", a.Difficulty, a.Style)
	}

	found := false
	for _, c := range a.Choices {
		if c == a.CorrectAnswer {
			found = true
		}
	}
	if !found {
		t.Error("fallback correct answer not among choices")
	}
	if len(a.Choices) != 4 {
		t.Errorf("fallback has %d choices, want 4", len(a.Choices))
	}
}

func TestServiceNext_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider()
	svc := NewService(New(mock, DefaultConfig()), DefaultConfig())

	q, fallback := svc.Next(ctx, serviceInput())
	if !fallback {
		t.Fatal("expected fallback for cancelled context")
	}
	if q == nil {
		t.Fatal("fallback question is nil")
	}
	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls, got %d", mock.CallCount())
	}
}
