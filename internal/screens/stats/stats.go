package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillcheck/internal/router"
	"github.com/abhisek/skillcheck/internal/screen"
	"github.com/abhisek/skillcheck/internal/store"
	"github.com/abhisek/skillcheck/internal/ui/layout"
	"github.com/abhisek/skillcheck/internal/ui/theme"
)

// StatsScreen shows aggregated performance across past assessments.
type StatsScreen struct {
	stats *store.SessionStats
	err   error
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New loads the aggregates up front; the screen is read-only after that.
func New(events store.EventRepo) *StatsScreen {
	s := &StatsScreen{}
	if events == nil {
		return s
	}
	s.stats, s.err = events.SessionStats(context.Background())
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Your Performance") + "\n\n")

	switch {
	case s.err != nil:
		b.WriteString(theme.Incorrect.Render("Could not load statistics: "+s.err.Error()) + "\n")
	case s.stats == nil || s.stats.QuestionsAnswered == 0:
		b.WriteString(theme.Hint.Render("No assessments recorded yet.") + "\n")
	default:
		b.WriteString(s.renderStats())
	}

	card := theme.Card.Width(min(width-4, 70)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (s *StatsScreen) renderStats() string {
	st := s.stats
	accuracy := float64(st.CorrectAnswers) / float64(st.QuestionsAnswered) * 100

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%-22s", label)) + theme.Body.Render(value) + "\n")
	}

	row("Assessments", fmt.Sprintf("%d", st.SessionsCompleted))
	row("Questions answered", fmt.Sprintf("%d", st.QuestionsAnswered))
	row("Accuracy", fmt.Sprintf("%.0f%% (%d correct)", accuracy, st.CorrectAnswers))
	row("Timed out", fmt.Sprintf("%d", st.TimedOut))
	row("Distinct concepts", fmt.Sprintf("%d", st.DistinctConcepts))

	if len(st.ByDifficulty) > 0 {
		b.WriteString("\n" + theme.Body.Render("By difficulty") + "\n")
		for _, d := range st.ByDifficulty {
			acc := 0.0
			if d.Answered > 0 {
				acc = float64(d.Correct) / float64(d.Answered) * 100
			}
			bar := renderAccuracyBar(acc, 20)
			b.WriteString(fmt.Sprintf("  %-18s %s %3.0f%%  (%d/%d)\n",
				d.Difficulty, bar, acc, d.Correct, d.Answered))
		}
	}

	return b.String()
}

func renderAccuracyBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return theme.ProgressFilled.Render(strings.Repeat("█", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}
