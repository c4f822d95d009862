package main

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/attohq/attoval/cmd/attoview/logger"
	"github.com/attohq/attoval/value"
)

type clearStatusMsg struct{}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// Update handles all messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case tea.KeyMsg:
		if m.confirmingDelete {
			return m.handleConfirmDeleteKey(msg)
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.deleteCurrent()
		m.confirmingDelete = false
		m.statusMessage = "Deleted"
		return m, clearStatusAfter(2 * time.Second)
	case key.Matches(msg, m.keys.Esc):
		m.confirmingDelete = false
		return m, nil
	}
	return m, nil
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		logger.Info("attoview exited")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.rows) - 1
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.pageSize()
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.pageSize()
		if m.cursor > len(m.rows)-1 {
			m.cursor = len(m.rows) - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Enter):
		if r, ok := m.currentRow(); ok && r.isContainer {
			m.descend(r)
		}
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Esc):
		m.ascend()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyCurrent()

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.currentRow(); ok {
			m.confirmingDelete = true
		}
		return m, nil
	}
	return m, nil
}

func (m Model) copyCurrent() (tea.Model, tea.Cmd) {
	r, ok := m.currentRow()
	if !ok {
		return m, nil
	}
	text := value.EncodeJSON(r.cell)
	if err := clipboard.WriteAll(text); err != nil {
		logger.Warn("clipboard copy failed", "error", err)
		m.statusMessage = "Copy failed: " + err.Error()
	} else {
		m.statusMessage = "Copied to clipboard"
	}
	return m, clearStatusAfter(2 * time.Second)
}

func (m Model) pageSize() int {
	if m.height <= 6 {
		return 5
	}
	return m.height - 6
}
