package quiz

import (
	"time"

	"github.com/abhisek/skillcheck/internal/quizgen"
)

// questionReadyMsg is sent when the next question has been generated.
type questionReadyMsg struct {
	Question *quizgen.Question
}

// timerTickMsg is sent every second to update the answer countdown.
type timerTickMsg time.Time

// spinnerTickMsg animates the loading indicator while generating.
type spinnerTickMsg time.Time
