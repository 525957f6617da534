package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillcheck/internal/ui/theme"
)

// ChoiceList renders a quiz question's four options and lets the
// candidate pick one. After submission it reveals the correct option.
type ChoiceList struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewChoiceList creates a choice list for one question.
func NewChoiceList(question string, options []string, correctIndex int) ChoiceList {
	return ChoiceList{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection. Enter locks in the
// current option; further input is ignored until the next question.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Submitted {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "a", "b", "c", "d":
		idx := int(kmsg.String()[0] - 'a')
		if idx < len(c.Options) {
			c.Selected = idx
		}
	case "enter":
		c.Submitted = true
		c.ChosenIndex = c.Selected
	}

	return c, nil
}

// View renders the question and its options.
func (c ChoiceList) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(c.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range c.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == c.Selected && !c.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case c.Submitted && i == c.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case c.Submitted && i == c.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// Answer returns the text of the chosen option, or "" before submission.
func (c ChoiceList) Answer() string {
	if !c.Submitted || c.ChosenIndex < 0 || c.ChosenIndex >= len(c.Options) {
		return ""
	}
	return c.Options[c.ChosenIndex]
}

// IsCorrect returns true if the candidate chose the correct answer.
func (c ChoiceList) IsCorrect() bool {
	return c.Submitted && c.ChosenIndex == c.CorrectIndex
}
