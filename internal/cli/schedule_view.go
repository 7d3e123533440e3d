package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexmoren/studyplan/internal/cli/formatter"
	"github.com/alexmoren/studyplan/internal/domain"
)

type scheduleKeyMap struct {
	Quit key.Binding
}

func defaultScheduleKeys() scheduleKeyMap {
	return scheduleKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scheduleModel is a read-only scrollable view over a rendered schedule.
type scheduleModel struct {
	vp      viewport.Model
	keys    scheduleKeyMap
	content string
	ready   bool
}

func newScheduleModel(sched *domain.Schedule, sessions []domain.StudySession, classNames map[string]string) scheduleModel {
	return scheduleModel{
		vp:      viewport.New(0, 0),
		keys:    defaultScheduleKeys(),
		content: formatter.FormatSchedule(sched, sessions, classNames),
	}
}

func (m scheduleModel) Init() tea.Cmd {
	return nil
}

func (m scheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 1 // reserve the footer line
		m.vp.SetContent(m.content)
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m scheduleModel) View() string {
	if !m.ready {
		return ""
	}
	return m.vp.View() + "\n" + formatter.Dim("↑/↓ scroll · q quit")
}

// runScheduleView opens the schedule in a full-screen scrollable pager.
func runScheduleView(sched *domain.Schedule, sessions []domain.StudySession, classNames map[string]string) error {
	p := tea.NewProgram(
		newScheduleModel(sched, sessions, classNames),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
