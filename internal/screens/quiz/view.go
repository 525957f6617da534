package quiz

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillcheck/internal/ui/components"
	"github.com/abhisek/skillcheck/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseGenerating:
		return q.renderGenerating(width, height)
	case phaseFeedback:
		return q.renderFeedback(width, height)
	case phaseQuitConfirm:
		return q.renderQuitConfirm(width, height)
	}
	return q.renderQuestion(width, height)
}

func (q *QuizScreen) renderGenerating(width, height int) string {
	frame := spinnerFrames[q.spinFrame%len(spinnerFrames)]
	msg := theme.Selected.Render(frame) + " " +
		theme.Body.Render(fmt.Sprintf("Preparing question %d of %d...",
			q.sess.QuestionNumber(), q.sess.Config().QuestionCount))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(msg)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	cfg := q.sess.Config()

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", q.sess.QuestionNumber(), cfg.QuestionCount),
		float64(q.sess.QuestionNumber()-1)/float64(cfg.QuestionCount),
		false,
		min(width-8, 60),
	)

	timer := formatCountdown(q.remaining)
	timerStyle := theme.Timer
	if q.remaining <= 10*time.Second {
		timerStyle = theme.TimerLow
	}

	body := progress.View() + "\n" +
		theme.Hint.Render(fmt.Sprintf("%s · %s", q.sess.Difficulty(), timerStyle.Render(timer))) + "\n\n" +
		q.choices.View()

	card := theme.Card.Width(min(width-4, 90)).Render(body)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (q *QuizScreen) renderFeedback(width, height int) string {
	rec := q.lastRecord

	var verdict string
	switch {
	case rec.TimedOut:
		verdict = theme.Incorrect.Render("⏱  Time's up")
	case rec.Correct:
		verdict = theme.Correct.Render("✓ Correct")
	default:
		verdict = theme.Incorrect.Render("✗ Incorrect")
	}

	body := q.choices.View() + "\n" + verdict + "\n"

	if rec.Question != nil {
		if !rec.Correct {
			body += theme.Body.Render("Answer: "+rec.Question.CorrectAnswer) + "\n"
		}
		body += "\n" + theme.Hint.Render(rec.Question.Explanation) + "\n"
		if rec.Fallback {
			body += "\n" + theme.Hint.Render("(offline question: generation was unavailable)") + "\n"
		}
	}

	card := theme.Card.Width(min(width-4, 90)).Render(body)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (q *QuizScreen) renderQuitConfirm(width, height int) string {
	msg := theme.Title.Render("End assessment early?") + "\n\n" +
		theme.Body.Render("Answered questions are kept and scored.")

	card := theme.Card.Render(msg)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
