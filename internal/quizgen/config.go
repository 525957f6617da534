package quizgen

// Config controls the behavior of the LLMGenerator and Service.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxRecentConcepts is the maximum number of recent concepts to
	// include in the prompt for deduplication.
	MaxRecentConcepts int

	// MaxGenerateAttempts bounds how many times the Service regenerates
	// a question that failed validation before serving the fallback.
	MaxGenerateAttempts int
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:           1024,
		Temperature:         0.8,
		MaxRecentConcepts:   5,
		MaxGenerateAttempts: 3,
	}
}
