package quizgen

import "fmt"

// StructuralValidator checks that required fields are present, within
// length limits, and that the choice set is well-formed.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 1500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 1500 characters",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if q.Concept == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "concept is empty",
			Retryable: true,
		}
	}
	if len(q.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 choices, got %d", len(q.Choices)),
			Retryable: true,
		}
	}

	seen := make(map[string]bool, len(q.Choices))
	correctFound := false
	for _, c := range q.Choices {
		if c == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "choice is empty",
				Retryable: true,
			}
		}
		if seen[c] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate choice %q", c),
				Retryable: true,
			}
		}
		seen[c] = true
		if c == q.CorrectAnswer {
			correctFound = true
		}
	}

	// A correct answer that matches none of the choices is a model
	// hallucination; the question can never be answered correctly, so
	// regenerate rather than score against it.
	if !correctFound {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "correct_answer does not match any choice",
			Retryable: true,
		}
	}

	return nil
}
