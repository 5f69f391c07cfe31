package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/ticker"
	"pomodoro/internal/core/timekeeper"
)

func newTestModel(t *testing.T) (Model, *timekeeper.TimeKeeper, *ticker.Manual) {
	t.Helper()
	manual := ticker.NewManual()
	keeper := timekeeper.New(manual, nil, timekeeper.Config{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	t.Cleanup(keeper.Close)
	return New(keeper, keeper.Subscribe(64)), keeper, manual
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestIdleView(t *testing.T) {
	m, _, _ := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "Focus Duration: 25:00")
	assert.Contains(t, view, "Break Duration: 05:00")
	assert.NotContains(t, view, "remaining")
	assert.False(t, m.keys.Stop.Enabled())
	assert.True(t, m.keys.FocusUp.Enabled())
}

func TestAdjustKeys(t *testing.T) {
	m, keeper, _ := newTestModel(t)
	m = press(t, m, runes("f"))
	m = press(t, m, runes("f"))
	m = press(t, m, runes("B"))

	durations := keeper.Durations()
	assert.Equal(t, 35, durations.FocusMinutes)
	assert.Equal(t, 4, durations.BreakMinutes)
	assert.Contains(t, m.View(), "Focus Duration: 35:00")
}

func TestPlayPauseStartsAndLocks(t *testing.T) {
	m, keeper, manual := newTestModel(t)
	m = press(t, m, space())

	require.True(t, keeper.Active())
	assert.True(t, m.keys.Stop.Enabled())
	assert.False(t, m.keys.FocusUp.Enabled())

	m = press(t, m, runes("f"))
	assert.Equal(t, 25, keeper.Durations().FocusMinutes)

	manual.Fire(90)
	m = press(t, m, eventMsg(timekeeper.Event{Type: timekeeper.EventTick, Snapshot: keeper.Snapshot()}))
	view := m.View()
	assert.Contains(t, view, "Focusing for 25:00 minutes")
	assert.Contains(t, view, "23:30 remaining")
	assert.NotContains(t, view, "PAUSED")

	m = press(t, m, space())
	assert.Contains(t, m.View(), "PAUSED")
}

func TestStopKey(t *testing.T) {
	m, keeper, _ := newTestModel(t)
	m = press(t, m, runes("s"))
	assert.Empty(t, m.status)

	m = press(t, m, space())
	m = press(t, m, runes("s"))
	assert.False(t, keeper.Active())
	assert.False(t, m.snapshot.Active)
	assert.True(t, m.keys.FocusUp.Enabled())
}

func TestBreakPhaseView(t *testing.T) {
	m, keeper, manual := newTestModel(t)
	m = press(t, m, space())
	manual.Fire(1501)
	m = press(t, m, eventMsg(timekeeper.Event{Type: timekeeper.EventPhaseChange, Snapshot: keeper.Snapshot()}))

	assert.Equal(t, session.PhaseOnBreak, m.snapshot.Phase)
	assert.Contains(t, m.View(), "On Break for 05:00 minutes")
}

func TestHelpToggleAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWaitForEvent(t *testing.T) {
	events := make(chan timekeeper.Event, 1)
	events <- timekeeper.Event{Type: timekeeper.EventTick}
	msg := waitForEvent(events)()
	assert.Equal(t, eventMsg(timekeeper.Event{Type: timekeeper.EventTick}), msg)

	close(events)
	assert.Equal(t, eventsClosedMsg{}, waitForEvent(events)())
}
