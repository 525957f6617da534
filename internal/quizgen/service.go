package quizgen

import (
	"context"
	"errors"
)

// Service wraps a Generator with regeneration on validation failure and
// a deterministic fallback. Next never returns an error: a session in
// progress always gets a question.
type Service struct {
	generator Generator
	config    Config
}

// NewService creates a Service around the given generator. A nil
// generator (no provider configured) always serves the fallback.
func NewService(generator Generator, cfg Config) *Service {
	return &Service{generator: generator, config: cfg}
}

// Next produces the next question for the session. It regenerates on
// retryable validation failures up to the configured attempt budget,
// then serves the fallback question. Fallback reports whether the
// built-in question was used.
func (s *Service) Next(ctx context.Context, input GenerateInput) (q *Question, fallback bool) {
	if s.generator == nil {
		return Fallback(input.Difficulty, input.Style), true
	}

	attempts := s.config.MaxGenerateAttempts
	if attempts <= 0 {
		attempts = 1
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if ctx.Err() != nil {
			break
		}

		q, err := s.generator.Generate(ctx, input)
		if err == nil {
			return q, false
		}

		// Provider-level failures have already been retried inside the
		// provider stack; only a retryable validation failure earns
		// another generation attempt here.
		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			break
		}
	}

	return Fallback(input.Difficulty, input.Style), true
}
