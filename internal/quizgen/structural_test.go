package quizgen

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		Text:          "What does SELECT FOR UPDATE do?",
		Choices:       []string{"Locks matched rows", "Creates an index", "Starts a vacuum", "Drops the table"},
		CorrectAnswer: "Locks matched rows",
		Explanation:   "It takes row-level locks on the rows the query matches.",
		Concept:       "Row Locking",
	}
}

func TestStructural_Valid(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantMsg string
	}{
		{
			name:    "empty text",
			mutate:  func(q *Question) { q.Text = "" },
			wantMsg: "question_text is empty",
		},
		{
			name:    "text too long",
			mutate:  func(q *Question) { q.Text = strings.Repeat("x", 1501) },
			wantMsg: "exceeds 1500",
		},
		{
			name:    "empty explanation",
			mutate:  func(q *Question) { q.Explanation = "" },
			wantMsg: "explanation is empty",
		},
		{
			name:    "empty concept",
			mutate:  func(q *Question) { q.Concept = "" },
			wantMsg: "concept is empty",
		},
		{
			name:    "three choices",
			mutate:  func(q *Question) { q.Choices = q.Choices[:3]; q.CorrectAnswer = q.Choices[0] },
			wantMsg: "expected 4 choices",
		},
		{
			name:    "empty choice",
			mutate:  func(q *Question) { q.Choices[2] = "" },
			wantMsg: "choice is empty",
		},
		{
			name:    "duplicate choices",
			mutate:  func(q *Question) { q.Choices[1] = q.Choices[0] },
			wantMsg: "duplicate choice",
		},
		{
			name:    "answer not in choices",
			mutate:  func(q *Question) { q.CorrectAnswer = "Something else" },
			wantMsg: "does not match any choice",
		},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)

			err := v.Validate(q, GenerateInput{})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", err.Message, tt.wantMsg)
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestBuildConcepts(t *testing.T) {
	if got := buildConcepts(nil, 5); got != "None" {
		t.Errorf("empty list: got %q, want None", got)
	}

	got := buildConcepts([]string{"a", "b"}, 5)
	if got != "1. a\n2. b" {
		t.Errorf("unexpected format: %q", got)
	}

	got = buildConcepts([]string{"a", "b", "c", "d"}, 2)
	if got != "1. c\n2. d" {
		t.Errorf("expected last 2 entries, got %q", got)
	}
}
