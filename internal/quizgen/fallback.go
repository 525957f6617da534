package quizgen

import "github.com/abhisek/skillcheck/internal/adaptive"

// Fallback returns the built-in question served when generation cannot
// produce a valid question within the attempt budget. It is fully
// deterministic so a session can always continue offline.
func Fallback(difficulty adaptive.Level, style Style) *Question {
	return &Question{
		Text: "A client calls a rate-limited HTTP API and receives a 429 " +
			"response. Which retry strategy best avoids making the overload worse?",
		Choices: []string{
			"Retry immediately in a tight loop until the call succeeds",
			"Wait a fixed one second between every retry, forever",
			"Retry with exponentially increasing waits plus random jitter, up to a bounded number of attempts",
			"Open a second connection and send the same request on both",
		},
		CorrectAnswer: "Retry with exponentially increasing waits plus random jitter, up to a bounded number of attempts",
		Explanation: "Exponential backoff spreads retries out as pressure persists, jitter " +
			"prevents synchronized retry storms across clients, and a bounded attempt " +
			"count ensures the client eventually gives up instead of hammering a " +
			"struggling service.",
		Concept:    "API Reliability",
		Difficulty: difficulty,
		Style:      style,
	}
}
