package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a senior technical interviewer creating skill-assessment questions.

Rules:
- Generate a single multiple-choice question for the given tech stack, difficulty level, and question style.
- Provide exactly 4 distinct options where exactly one is correct. Distractors should reflect plausible misconceptions, not random noise.
- The correct_answer must match one of the choices verbatim.
- The question text should be clear and self-contained. Code snippets in plain ASCII, no markdown fences.
- Calibrate to the difficulty level: "Beginner" tests fundamentals, "Intermediate" tests practical usage, "Senior" tests design trade-offs and edge cases, "Hiring Challenge" tests the kind of question a strong candidate might still miss.
- Follow the question style: "Descriptive and explained" gives full context in the prompt, "Briefly explained" is terse, "Innovative Scenario based" frames a realistic work situation, "Debugging based" presents broken code or behavior to diagnose.
- The explanation should state why the correct answer is right in two or three sentences.
- Label the question with a short concept name. Do not reuse any concept from the "recently covered" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tech stack: %s\n", input.Profile.TechStack)
	if input.Profile.Name != "" {
		fmt.Fprintf(&b, "Candidate: %s\n", input.Profile.Name)
	}
	if input.Profile.Experience != "" {
		fmt.Fprintf(&b, "Experience: %s\n", input.Profile.Experience)
	}
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "Style: %s\n", input.Style)

	b.WriteString("\nConcepts recently covered in this session:\n")
	b.WriteString(buildConcepts(input.RecentConcepts, cfg.MaxRecentConcepts))

	return b.String()
}
