package setup

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillcheck/internal/adaptive"
	"github.com/abhisek/skillcheck/internal/quizgen"
	"github.com/abhisek/skillcheck/internal/router"
	"github.com/abhisek/skillcheck/internal/screen"
	"github.com/abhisek/skillcheck/internal/screens/quiz"
	"github.com/abhisek/skillcheck/internal/session"
	"github.com/abhisek/skillcheck/internal/store"
	"github.com/abhisek/skillcheck/internal/ui/components"
	"github.com/abhisek/skillcheck/internal/ui/layout"
	"github.com/abhisek/skillcheck/internal/ui/theme"
)

// Form field indices, in navigation order.
const (
	fieldName = iota
	fieldExperience
	fieldTechStack
	fieldTestName
	fieldQuestions
	fieldDuration
	fieldDifficulty
	fieldAdaptive
	fieldStyles
	fieldBegin
	fieldCount
)

// SetupScreen collects the assessment configuration before a quiz.
type SetupScreen struct {
	service *quizgen.Service
	events  store.EventRepo

	focus      int
	name       components.TextInput
	experience components.TextInput
	techStack  components.TextInput
	testName   components.TextInput
	questions  components.Selector
	duration   components.Selector
	difficulty components.Selector
	adaptive   components.Selector

	styleCursor  int
	styleEnabled []bool

	errMsg string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

var questionCounts = []string{"3", "5", "10", "15", "20"}
var durations = []string{"5 min", "10 min", "15 min", "30 min", "45 min"}

// New creates the setup screen with sensible defaults.
func New(service *quizgen.Service, events store.EventRepo) *SetupScreen {
	levels := make([]string, len(adaptive.Levels))
	for i, l := range adaptive.Levels {
		levels[i] = l.String()
	}

	s := &SetupScreen{
		service:      service,
		events:       events,
		name:         components.NewTextInput("Your name", false, 40),
		experience:   components.NewTextInput("e.g. 3 years backend", false, 60),
		techStack:    components.NewTextInput("e.g. Go and PostgreSQL", false, 60),
		testName:     components.NewTextInput("e.g. Go Screening", false, 60),
		questions:    components.NewSelector(questionCounts, 1),
		duration:     components.NewSelector(durations, 2),
		difficulty:   components.NewSelector(levels, 0),
		adaptive:     components.NewSelector([]string{"On", "Off"}, 0),
		styleEnabled: make([]bool, len(quizgen.DefaultStyles)),
	}
	for i := range s.styleEnabled {
		s.styleEnabled[i] = true
	}
	s.setFocus(fieldName)
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *SetupScreen) Title() string {
	return "Setup"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
	}
	switch s.focus {
	case fieldStyles:
		hints = append(hints,
			layout.KeyHint{Key: "←→", Description: "Move"},
			layout.KeyHint{Key: "Space", Description: "Toggle"},
		)
	case fieldQuestions, fieldDuration, fieldDifficulty, fieldAdaptive:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	case fieldBegin:
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Begin"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "down":
			s.setFocus((s.focus + 1) % fieldCount)
			return s, nil
		case "shift+tab", "up":
			s.setFocus((s.focus - 1 + fieldCount) % fieldCount)
			return s, nil
		case "enter":
			if s.focus == fieldBegin {
				return s.begin()
			}
			s.setFocus((s.focus + 1) % fieldCount)
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldExperience:
		s.experience, cmd = s.experience.Update(msg)
	case fieldTechStack:
		s.techStack, cmd = s.techStack.Update(msg)
	case fieldTestName:
		s.testName, cmd = s.testName.Update(msg)
	case fieldQuestions:
		s.questions, cmd = s.questions.Update(msg)
	case fieldDuration:
		s.duration, cmd = s.duration.Update(msg)
	case fieldDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case fieldAdaptive:
		s.adaptive, cmd = s.adaptive.Update(msg)
	case fieldStyles:
		if isKey {
			s.updateStyles(kmsg)
		}
	}
	return s, cmd
}

func (s *SetupScreen) updateStyles(kmsg tea.KeyMsg) {
	switch kmsg.String() {
	case "left", "h":
		if s.styleCursor > 0 {
			s.styleCursor--
		}
	case "right", "l":
		if s.styleCursor < len(quizgen.DefaultStyles)-1 {
			s.styleCursor++
		}
	case " ", "space":
		s.styleEnabled[s.styleCursor] = !s.styleEnabled[s.styleCursor]
	}
}

func (s *SetupScreen) setFocus(field int) {
	s.focus = field
	s.name.Blur()
	s.experience.Blur()
	s.techStack.Blur()
	s.testName.Blur()
	s.questions.Blur()
	s.duration.Blur()
	s.difficulty.Blur()
	s.adaptive.Blur()

	switch field {
	case fieldName:
		s.name.Focus()
	case fieldExperience:
		s.experience.Focus()
	case fieldTechStack:
		s.techStack.Focus()
	case fieldTestName:
		s.testName.Focus()
	case fieldQuestions:
		s.questions.Focus()
	case fieldDuration:
		s.duration.Focus()
	case fieldDifficulty:
		s.difficulty.Focus()
	case fieldAdaptive:
		s.adaptive.Focus()
	}
}

// buildConfig assembles a session config from the form state.
func (s *SetupScreen) buildConfig() session.Config {
	var styles []quizgen.Style
	for i, enabled := range s.styleEnabled {
		if enabled {
			styles = append(styles, quizgen.DefaultStyles[i])
		}
	}

	count := 5
	fmt.Sscanf(s.questions.Value(), "%d", &count)
	minutes := 15
	fmt.Sscanf(s.duration.Value(), "%d", &minutes)

	level, _ := adaptive.ParseLevel(s.difficulty.Value())

	return session.Config{
		TestName: strings.TrimSpace(s.testName.Value()),
		Profile: quizgen.Profile{
			Name:       strings.TrimSpace(s.name.Value()),
			Experience: strings.TrimSpace(s.experience.Value()),
			TechStack:  strings.TrimSpace(s.techStack.Value()),
		},
		QuestionCount:     count,
		TotalDuration:     time.Duration(minutes) * time.Minute,
		InitialDifficulty: level,
		Adaptive:          s.adaptive.Value() == "On",
		Styles:            styles,
	}
}

func (s *SetupScreen) begin() (screen.Screen, tea.Cmd) {
	cfg := s.buildConfig()
	if err := cfg.Validate(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""

	sess := session.New(cfg, s.service, s.events)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quiz.New(sess)}
	}
}

func (s *SetupScreen) View(width, height int) string {
	label := func(field int, text string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.focus == field {
			style = theme.Selected
		}
		return style.Render(fmt.Sprintf("%-18s", text))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Assessment Setup") + "\n\n")

	b.WriteString(label(fieldName, "Name") + s.name.View() + "\n")
	b.WriteString(label(fieldExperience, "Experience") + s.experience.View() + "\n")
	b.WriteString(label(fieldTechStack, "Tech stack") + s.techStack.View() + "\n")
	b.WriteString(label(fieldTestName, "Test name") + s.testName.View() + "\n\n")

	b.WriteString(label(fieldQuestions, "Questions") + s.questions.View() + "\n")
	b.WriteString(label(fieldDuration, "Duration") + s.duration.View() + "\n")
	b.WriteString(label(fieldDifficulty, "Start level") + s.difficulty.View() + "\n")
	b.WriteString(label(fieldAdaptive, "Adaptive") + s.adaptive.View() + "\n\n")

	b.WriteString(label(fieldStyles, "Styles") + s.renderStyles() + "\n\n")

	begin := "[ Begin Assessment ]"
	if s.focus == fieldBegin {
		b.WriteString(theme.Selected.Render("▸ "+begin) + "\n")
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  "+begin) + "\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("✗ "+s.errMsg) + "\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (s *SetupScreen) renderStyles() string {
	var parts []string
	for i, style := range quizgen.DefaultStyles {
		mark := "[ ]"
		if s.styleEnabled[i] {
			mark = "[x]"
		}
		item := fmt.Sprintf("%s %s", mark, shortStyle(style))
		switch {
		case s.focus == fieldStyles && i == s.styleCursor:
			parts = append(parts, theme.Selected.Render(item))
		case s.styleEnabled[i]:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Text).Render(item))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(item))
		}
	}
	return strings.Join(parts, "  ")
}

func shortStyle(s quizgen.Style) string {
	switch s {
	case quizgen.StyleDescriptive:
		return "Descriptive"
	case quizgen.StyleBrief:
		return "Brief"
	case quizgen.StyleScenario:
		return "Scenario"
	case quizgen.StyleDebugging:
		return "Debugging"
	}
	return string(s)
}
