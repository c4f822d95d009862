package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/attohq/attoval/value"
)

// mainViewModel wraps Model so it can serve as the overlay background; it
// never handles messages itself, the parent Model's Update does that.
type mainViewModel struct {
	m *Model
}

func (v *mainViewModel) Init() tea.Cmd                      { return nil }
func (v *mainViewModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *mainViewModel) View() string                       { return v.m.renderMain() }

// confirmModel is the foreground of the delete-confirmation overlay.
type confirmModel struct {
	label string
}

func (c *confirmModel) Init() tea.Cmd                      { return nil }
func (c *confirmModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return c, nil }
func (c *confirmModel) View() string {
	body := overlayTitleStyle.Render("Delete node?") + "\n\n" +
		fmt.Sprintf("Remove %s from the current container?\n\n", c.label) +
		helpStyle.Render("y confirm   esc cancel")
	return overlayStyle.Render(body)
}

// View renders the whole UI.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.confirmingDelete {
		r, _ := m.currentRow()
		bg := &mainViewModel{m: &m}
		fg := &confirmModel{label: r.label}
		ov := overlay.New(fg, bg, overlay.Center, overlay.Center, 0, 0)
		return ov.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	header := m.renderHeader()
	body := m.renderRows()
	status := m.renderStatus()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("attoview")
	src := fmt.Sprintf(" %s ", m.sourcePath)
	path := pathStyle.Render(m.breadcrumb())
	return lipgloss.JoinHorizontal(lipgloss.Top, title, src, path)
}

func (m Model) renderRows() string {
	var b strings.Builder
	visible := m.visibleRows()
	for i, idx := range visible {
		r := m.rows[idx]
		line := renderRowLine(r)
		if idx == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		if i < len(visible)-1 {
			b.WriteByte('\n')
		}
	}
	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("(empty)"))
	}
	return paneStyle.Render(b.String())
}

func renderRowLine(r row) string {
	label := keyStyle.Render(r.label)
	if r.isContainer {
		return fmt.Sprintf("%s  %s", label, kindStyle.Render(containerSummary(r.cell)))
	}
	return fmt.Sprintf("%s  %s", label, value.NewStringFromCell(r.cell).String())
}

func containerSummary(c value.Cell) string {
	switch c.Kind() {
	case value.KindList:
		return fmt.Sprintf("List(%d)", c.AsList().Length())
	case value.KindMap:
		return fmt.Sprintf("Map(%d)", c.AsMap().Length())
	case value.KindSet:
		return fmt.Sprintf("Set(%d)", c.AsSet().ToList().Length())
	default:
		return c.Kind().String()
	}
}

// visibleRows returns the row indices that fit in the current pane height,
// starting the window late enough to keep the cursor on screen.
func (m Model) visibleRows() []int {
	if len(m.rows) == 0 {
		return nil
	}
	maxRows := m.height - 6
	if maxRows < 3 {
		maxRows = 3
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(m.rows) {
		end = len(m.rows)
	}
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}

func (m Model) renderStatus() string {
	help := "↑/k ↓/j move   →/l/enter open   ←/h/esc back   y copy   d delete   q quit"
	if m.statusMessage != "" {
		return statusStyle.Render(m.statusMessage + "   " + help)
	}
	return statusStyle.Render(help)
}
