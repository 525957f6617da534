package quizgen

import "github.com/abhisek/skillcheck/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single multiple-choice skill-assessment question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the candidate, in plain text. Code snippets in plain ASCII.",
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 distinct options, exactly one of which is correct",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option. Must match one of the choices verbatim.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A brief rationale for why the correct answer is right",
			},
			"concept": map[string]any{
				"type":        "string",
				"description": "A short topic label for this question, e.g. \"Goroutine Leaks\"",
			},
		},
		"required":             []any{"question_text", "choices", "correct_answer", "explanation", "concept"},
		"additionalProperties": false,
	},
}
