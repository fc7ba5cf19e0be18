package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slider/internal/view"
)

// Update handles Bubble Tea messages. Timer callbacks of the controller run
// here, so the controller only ever sees the event loop goroutine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.s.resize(msg.Width-chromeCols, msg.Height-chromeRows)
		return m, nil
	case timerMsg:
		m.s.sched.Fire(msg.id)
		return m, m.s.flush()
	case frameMsg:
		m.s.frameScheduled = false
		return m, m.s.flush()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.s.ctrl
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		ctrl.Unmount()
		m.s.log.With("index", ctrl.State().ActiveIndex).Info("slider session ended")
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		view.Dispatch(ctrl, view.Action{Kind: view.ActionNext})
	case key.Matches(msg, m.keys.Prev):
		view.Dispatch(ctrl, view.Action{Kind: view.ActionPrev})
	case key.Matches(msg, m.keys.Goto):
		index := int(msg.String()[0] - '1')
		view.Dispatch(ctrl, view.Action{Kind: view.ActionGoto, Index: index})
	case key.Matches(msg, m.keys.Autoplay):
		ctrl.SetAutoplay(!ctrl.Autoplaying())
		m.s.log.With("autoplay", ctrl.Autoplaying()).Debug("autoplay toggled")
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}
	return m, m.s.flush()
}
