// Package tui is the terminal frontend. It renders controller snapshots and
// maps keys to controller commands.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/ui/format"
)

const maxProgressWidth = 60

// Controller is the subset of the TimeKeeper the terminal frontend drives.
type Controller interface {
	PlayPause()
	Stop() error
	AdjustFocus(direction model.Direction) error
	AdjustBreak(direction model.Direction) error
	Snapshot() timekeeper.Snapshot
}

type eventMsg timekeeper.Event

type eventsClosedMsg struct{}

// Model is the bubbletea model for the terminal frontend.
type Model struct {
	controller Controller
	events     <-chan timekeeper.Event
	snapshot   timekeeper.Snapshot
	keys       KeyMap
	help       help.Model
	progress   progress.Model
	status     string
}

// New creates a model. events should come from the controller's Subscribe.
func New(controller Controller, events <-chan timekeeper.Event) Model {
	m := Model{
		controller: controller,
		events:     events,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.progress.Width = maxProgressWidth / 2
	m.refresh(controller.Snapshot())
	return m
}

// Init starts listening for controller events
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// waitForEvent blocks until the controller publishes an event.
func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(maxProgressWidth, max(10, msg.Width-8))
		m.help.Width = msg.Width
		return m, nil

	case eventMsg:
		m.refresh(msg.Snapshot)
		return m, waitForEvent(m.events)

	case eventsClosedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.PlayPause):
		m.controller.PlayPause()
	case key.Matches(msg, m.keys.Stop):
		err = m.controller.Stop()
	case key.Matches(msg, m.keys.FocusUp):
		err = m.controller.AdjustFocus(model.Increase)
	case key.Matches(msg, m.keys.FocusDown):
		err = m.controller.AdjustFocus(model.Decrease)
	case key.Matches(msg, m.keys.BreakUp):
		err = m.controller.AdjustBreak(model.Increase)
	case key.Matches(msg, m.keys.BreakDown):
		err = m.controller.AdjustBreak(model.Decrease)
	default:
		return m, nil
	}

	m.status = statusFor(err)
	m.refresh(m.controller.Snapshot())
	return m, nil
}

func (m *Model) refresh(snapshot timekeeper.Snapshot) {
	m.snapshot = snapshot
	m.keys.setIdle(!snapshot.Active)
}

func statusFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, timekeeper.ErrSessionLocked):
		return "Stop the session to change durations"
	case errors.Is(err, timekeeper.ErrNoActiveSession):
		return "Nothing to stop"
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	view := format.Render(m.snapshot)

	durationStyle := DurationStyle
	if !view.CanAdjust {
		durationStyle = LockedStyle
	}

	sections := []string{
		HeaderStyle.Render("Pomodoro"),
		durationStyle.Render(view.FocusText),
		durationStyle.Render(view.BreakText),
	}

	if view.ShowSession {
		titleStyle := FocusTitleStyle
		if m.snapshot.Phase == session.PhaseOnBreak {
			titleStyle = BreakTitleStyle
		}
		lines := []string{
			titleStyle.Render(view.Title),
			view.Subtitle,
			m.progress.ViewAs(view.Progress / 100),
		}
		if view.PausedText != "" {
			lines = append(lines, PausedStyle.Render(view.PausedText))
		}
		sections = append(sections, SessionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	if m.status != "" {
		sections = append(sections, StatusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return AppStyle.Render(strings.Join(sections, "\n"))
}
