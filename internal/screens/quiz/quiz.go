package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillcheck/internal/router"
	"github.com/abhisek/skillcheck/internal/screen"
	"github.com/abhisek/skillcheck/internal/screens/summary"
	"github.com/abhisek/skillcheck/internal/session"
	"github.com/abhisek/skillcheck/internal/ui/components"
	"github.com/abhisek/skillcheck/internal/ui/layout"
)

// phase tracks what the quiz screen is currently showing.
type phase int

const (
	phaseGenerating phase = iota
	phaseAnswering
	phaseFeedback
	phaseQuitConfirm
)

// QuizScreen runs one assessment session question by question.
type QuizScreen struct {
	sess    *session.Session
	phase   phase
	choices components.ChoiceList

	// remaining is the answer window left for the current question.
	remaining  time.Duration
	lastRecord session.AnswerRecord
	spinFrame  int

	// resumePhase restores the screen state if quitting is cancelled.
	resumePhase phase
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates the quiz screen for a configured session.
func New(sess *session.Session) *QuizScreen {
	return &QuizScreen{sess: sess, phase: phaseGenerating}
}

func (q *QuizScreen) Init() tea.Cmd {
	q.sess.Start(context.Background())
	return tea.Batch(q.generateQuestion(), spinCmd())
}

func (q *QuizScreen) Title() string {
	return q.sess.Config().TestName
}

// HeaderStatus shows the difficulty and countdown in the header bar.
func (q *QuizScreen) HeaderStatus() string {
	status := q.sess.Difficulty().String()
	if q.phase == phaseAnswering {
		status += "  " + formatCountdown(q.remaining)
	}
	return status
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End assessment"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Quit"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return q.handleQuestionReady(msg)

	case timerTickMsg:
		return q.handleTimerTick()

	case spinnerTickMsg:
		if q.phase == phaseGenerating {
			q.spinFrame++
			return q, spinCmd()
		}
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.phase == phaseQuitConfirm {
		switch key {
		case "y", "Y":
			return q.finish()
		case "n", "N", "esc":
			q.phase = q.resumePhase
		}
		return q, nil
	}

	if key == "esc" {
		q.resumePhase = q.phase
		q.phase = phaseQuitConfirm
		return q, nil
	}

	switch q.phase {
	case phaseAnswering:
		var cmd tea.Cmd
		q.choices, cmd = q.choices.Update(msg)
		if q.choices.Submitted {
			q.lastRecord = q.sess.Submit(context.Background(), q.choices.Answer())
			q.phase = phaseFeedback
		}
		return q, cmd

	case phaseFeedback:
		if key == "enter" || key == " " {
			if q.sess.Done() {
				return q.finish()
			}
			q.phase = phaseGenerating
			return q, tea.Batch(q.generateQuestion(), spinCmd())
		}
	}

	return q, nil
}

func (q *QuizScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	correctIdx := 0
	for i, c := range msg.Question.Choices {
		if c == msg.Question.CorrectAnswer {
			correctIdx = i
			break
		}
	}

	q.choices = components.NewChoiceList(msg.Question.Text, msg.Question.Choices, correctIdx)
	q.remaining = q.sess.Config().QuestionBudget()
	q.phase = phaseAnswering
	return q, tickCmd()
}

func (q *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if q.phase != phaseAnswering {
		return q, nil
	}

	q.remaining -= time.Second
	if q.remaining <= 0 {
		q.remaining = 0
		q.lastRecord = q.sess.Timeout(context.Background())
		// Reveal the correct option with nothing chosen.
		q.choices.Submitted = true
		q.phase = phaseFeedback
		return q, nil
	}
	return q, tickCmd()
}

// generateQuestion asks the session for the next question off the UI
// thread. The session's fallback guarantees a question always arrives.
func (q *QuizScreen) generateQuestion() tea.Cmd {
	sess := q.sess
	return func() tea.Msg {
		return questionReadyMsg{Question: sess.NextQuestion(context.Background())}
	}
}

func (q *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	sum := q.sess.Finish(context.Background())
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func spinCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
