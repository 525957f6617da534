package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/skillcheck/internal/adaptive"
	"github.com/abhisek/skillcheck/internal/llm"
)

func testProfile() Profile {
	return Profile{
		Name:       "Priya",
		Experience: "3 years backend",
		TechStack:  "Go and PostgreSQL",
	}
}

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "What happens when you send on a nil channel?",
		"choices": ["It panics", "It blocks forever", "It returns immediately", "It sends a zero value"],
		"correct_answer": "It blocks forever",
		"explanation": "Send and receive on a nil channel block forever; only close on a nil channel panics.",
		"concept": "Nil Channels"
	}`)
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validQuestionJSON(),
	})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), GenerateInput{
		Profile:    testProfile(),
		Difficulty: adaptive.Intermediate,
		Style:      StyleBrief,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "What happens when you send on a nil channel?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if len(q.Choices) != 4 {
		t.Errorf("expected 4 choices, got %d", len(q.Choices))
	}
	if q.CorrectAnswer != "It blocks forever" {
		t.Errorf("unexpected answer: %q", q.CorrectAnswer)
	}
	if q.Concept != "Nil Channels" {
		t.Errorf("unexpected concept: %q", q.Concept)
	}
	if q.Difficulty != adaptive.Intermediate {
		t.Errorf("difficulty not carried through: %v", q.Difficulty)
	}
	if q.Style != StyleBrief {
		t.Errorf("style not carried through: %q", q.Style)
	}
}

func TestGenerate_PromptIncludesContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Profile:        testProfile(),
		Difficulty:     adaptive.Senior,
		Style:          StyleScenario,
		RecentConcepts: []string{"Mutex Contention", "Context Cancellation"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Go and PostgreSQL",
		"Senior",
		"Innovative Scenario based",
		"Mutex Contention",
		"Context Cancellation",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestGenerate_ConceptListTruncated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	recent := []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"}
	_, err := gen.Generate(context.Background(), GenerateInput{
		Profile:        testProfile(),
		Difficulty:     adaptive.Beginner,
		Style:          StyleBrief,
		RecentConcepts: recent,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if strings.Contains(msg, "c1") || strings.Contains(msg, "c2") {
		t.Errorf("oldest concepts should be dropped from prompt:\n%s", msg)
	}
	for _, want := range []string{"c3", "c4", "c5", "c6", "c7"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing recent concept %q", want)
		}
	}
}

func TestGenerate_CorrectAnswerNotInChoices(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "Pick one.",
		"choices": ["a", "b", "c", "d"],
		"correct_answer": "e",
		"explanation": "Because.",
		"concept": "Testing"
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Profile:    testProfile(),
		Difficulty: adaptive.Beginner,
		Style:      StyleBrief,
	})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if !verr.Retryable {
		t.Error("mismatched correct answer should be retryable")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Profile:    testProfile(),
		Difficulty: adaptive.Beginner,
		Style:      StyleBrief,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("provider error should not be a ValidationError")
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text": `),
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), GenerateInput{
		Profile:    testProfile(),
		Difficulty: adaptive.Beginner,
		Style:      StyleBrief,
	})
	if err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}
