package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillcheck/internal/quizgen"
	"github.com/abhisek/skillcheck/internal/router"
	"github.com/abhisek/skillcheck/internal/screen"
	"github.com/abhisek/skillcheck/internal/screens/setup"
	statsscreen "github.com/abhisek/skillcheck/internal/screens/stats"
	"github.com/abhisek/skillcheck/internal/store"
	"github.com/abhisek/skillcheck/internal/ui/components"
	"github.com/abhisek/skillcheck/internal/ui/theme"
)

const banner = `
  ███ █   █ ███ █   █   ███ █ █ ███ ███ █ █
  █   █ █ █  █  █   █   █   █▄█ █▄  █   █▄▀
  ▄▄█ █▀▄ █  █  █▄▄ █▄▄ █▄▄ █ █ █▄▄ █▄▄ █ █`

// HomeScreen is the entry screen of the application.
type HomeScreen struct {
	menu    components.Menu
	service *quizgen.Service
	events  store.EventRepo
	stats   *store.SessionStats
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Past performance is loaded best-effort;
// a missing or empty database just hides the stats line.
func New(service *quizgen.Service, events store.EventRepo) *HomeScreen {
	var stats *store.SessionStats
	if events != nil {
		stats, _ = events.SessionStats(context.Background())
	}

	h := &HomeScreen{service: service, events: events, stats: stats}

	items := []components.MenuItem{
		{Label: "START ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(service, events)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var s string

	s += theme.Title.Width(width).Render(banner) + "\n\n"
	s += theme.Subtitle.Width(width).Render("Adaptive skill assessment, one question at a time") + "\n\n"

	if h.stats != nil && h.stats.QuestionsAnswered > 0 {
		accuracy := float64(h.stats.CorrectAnswers) / float64(h.stats.QuestionsAnswered) * 100
		line := fmt.Sprintf("%d assessments · %d questions · %.0f%% accuracy",
			h.stats.SessionsCompleted, h.stats.QuestionsAnswered, accuracy)
		s += theme.Hint.Width(width).Align(lipgloss.Center).Render(line) + "\n\n"
	}

	menu := h.menu.View()
	s += lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(menu)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(s)
}
