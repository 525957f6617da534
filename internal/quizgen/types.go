package quizgen

import "github.com/abhisek/skillcheck/internal/adaptive"

// Question represents a generated multiple-choice quiz question ready
// for display.
type Question struct {
	// Text is the question prompt displayed to the candidate.
	Text string

	// Choices contains exactly 4 distinct options, one of which matches
	// CorrectAnswer.
	Choices []string

	// CorrectAnswer is the text of the correct option. Always one of
	// Choices.
	CorrectAnswer string

	// Explanation is a brief rationale shown after the candidate answers.
	// Always present.
	Explanation string

	// Concept is a short label for the topic this question probes,
	// e.g. "Goroutine Leaks" or "Index Selection". Used to avoid
	// repeating topics within a session.
	Concept string

	// Difficulty is the level this question was generated for.
	Difficulty adaptive.Level

	// Style is the presentation style this question was generated in.
	Style Style
}

// Style describes how a question is framed.
type Style string

const (
	StyleDescriptive Style = "Descriptive and explained"
	StyleBrief       Style = "Briefly explained"
	StyleScenario    Style = "Innovative Scenario based"
	StyleDebugging   Style = "Debugging based"
)

// DefaultStyles lists all styles in the order they are offered to the
// candidate during setup.
var DefaultStyles = []Style{StyleDescriptive, StyleBrief, StyleScenario, StyleDebugging}

// Profile describes the candidate the quiz is tailored for.
type Profile struct {
	// Name of the candidate. Used only for prompt personalization.
	Name string

	// Experience is a free-form summary, e.g. "3 years backend".
	Experience string

	// TechStack is the subject area under assessment,
	// e.g. "Go and PostgreSQL".
	TechStack string
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Profile is the candidate profile for prompt personalization.
	Profile Profile

	// Difficulty is the level to generate at.
	Difficulty adaptive.Level

	// Style is the presentation style for this question.
	Style Style

	// RecentConcepts contains the Concept labels of recent questions in
	// this session. The generator is told to avoid them. Only the most
	// recent entries (per Config.MaxRecentConcepts) reach the prompt.
	RecentConcepts []string
}
