package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillcheck/internal/ui/theme"
)

// Selector cycles through a fixed set of options with left/right keys.
// Used in the setup form for difficulty, duration, and similar fields.
type Selector struct {
	Options  []string
	Index    int
	focused  bool
}

// NewSelector creates a selector over the given options.
func NewSelector(options []string, index int) Selector {
	if index < 0 || index >= len(options) {
		index = 0
	}
	return Selector{Options: options, Index: index}
}

// Update handles left/right cycling while focused.
func (s Selector) Update(msg tea.Msg) (Selector, tea.Cmd) {
	if !s.focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Index--
		if s.Index < 0 {
			s.Index = len(s.Options) - 1
		}
	case "right", "l":
		s.Index++
		if s.Index >= len(s.Options) {
			s.Index = 0
		}
	}

	return s, nil
}

// View renders the current option with cycle arrows when focused.
func (s Selector) View() string {
	value := s.Value()
	if s.focused {
		return theme.Selected.Render("◂ " + value + " ▸")
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + value)
}

// Value returns the currently selected option.
func (s Selector) Value() string {
	if len(s.Options) == 0 {
		return ""
	}
	return s.Options[s.Index]
}

// Focus marks the selector as the active form field.
func (s *Selector) Focus() { s.focused = true }

// Blur removes focus.
func (s *Selector) Blur() { s.focused = false }
