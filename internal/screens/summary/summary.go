package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillcheck/internal/router"
	"github.com/abhisek/skillcheck/internal/screen"
	"github.com/abhisek/skillcheck/internal/session"
	"github.com/abhisek/skillcheck/internal/ui/layout"
	"github.com/abhisek/skillcheck/internal/ui/theme"
)

// SummaryScreen shows the end-of-assessment report.
type SummaryScreen struct {
	summary *session.Summary

	// scroll is the first visible record in the review list.
	scroll int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen for a finished session.
func New(sum *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(s.summary.Records)-1 {
			s.scroll++
		}
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder
	b.WriteString(theme.Title.Render(sum.TestName) + "\n\n")

	scoreStyle := theme.Correct
	if sum.Score() < 0.5 {
		scoreStyle = theme.Incorrect
	}
	b.WriteString(fmt.Sprintf("%s  %s\n",
		scoreStyle.Render(fmt.Sprintf("%d / %d correct (%.0f%%)", sum.Correct, sum.Answered, sum.Score()*100)),
		theme.Hint.Render(fmt.Sprintf("in %s", sum.Duration.Round(time.Second)))))

	if sum.TimedOut > 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%d timed out\n", sum.TimedOut)))
	}

	b.WriteString(fmt.Sprintf("\n%s %s → %s\n",
		theme.Body.Render("Difficulty:"),
		sum.InitialDifficulty, sum.FinalDifficulty))

	if len(sum.Concepts) > 0 {
		b.WriteString("\n" + theme.Body.Render("Concepts covered:") + "\n")
		b.WriteString(theme.Hint.Render("  "+strings.Join(sum.Concepts, " · ")) + "\n")
	}

	b.WriteString("\n" + theme.Body.Render("Review:") + "\n")
	visible := max(height-lipgloss.Height(b.String())-6, 3)
	for i := s.scroll; i < len(sum.Records) && i < s.scroll+visible; i++ {
		b.WriteString(renderRecord(i, sum.Records[i]) + "\n")
	}

	card := theme.Card.Width(min(width-4, 100)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func renderRecord(i int, rec session.AnswerRecord) string {
	mark := theme.Correct.Render("✓")
	switch {
	case rec.TimedOut:
		mark = theme.Incorrect.Render("⏱")
	case !rec.Correct:
		mark = theme.Incorrect.Render("✗")
	}

	text := ""
	concept := ""
	if rec.Question != nil {
		text = rec.Question.Text
		concept = rec.Question.Concept
	}
	if len(text) > 70 {
		text = text[:67] + "..."
	}

	return fmt.Sprintf("  %s %2d. %s %s", mark, i+1,
		theme.Body.Render(text),
		theme.Hint.Render("["+concept+"]"))
}
