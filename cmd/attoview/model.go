package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/attohq/attoval/cmd/attoview/logger"
	"github.com/attohq/attoval/value"
)

// row is one line of the current container's listing.
type row struct {
	label       string
	cell        value.Cell
	mapKey      value.Cell // valid when the current container is a Map
	listIndex   int        // valid when the current container is a List
	isContainer bool
}

// frame remembers where we came from when descending into a child container,
// so Left/Esc can climb back out.
type frame struct {
	container value.Cell
	label     string
	cursor    int
}

// Model is the attoview application model: a drill-down browser over a
// single root value.Cell, with clipboard copy and node deletion.
type Model struct {
	sourcePath string
	root       value.Cell
	container  value.Cell // the List or Map currently displayed
	stack      []frame
	rows       []row
	cursor     int
	offset     int
	height     int
	width      int

	keys KeyMap

	confirmingDelete bool
	statusMessage    string
	err              error
}

// NewModel builds a Model rooted at the given value, loaded from sourcePath
// (used only for display in the header).
func NewModel(sourcePath string, root value.Cell) Model {
	m := Model{
		sourcePath: sourcePath,
		root:       root,
		container:  root,
		keys:       DefaultKeyMap(),
	}
	m.rebuildRows()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	logger.Info("attoview started", "source", m.sourcePath, "rootKind", m.root.Kind().String())
	return nil
}

// rebuildRows recomputes m.rows from m.container, clamping the cursor.
func (m *Model) rebuildRows() {
	m.rows = m.rows[:0]
	switch m.container.Kind() {
	case value.KindList:
		l := m.container.AsList()
		for i := 0; i < l.Length(); i++ {
			c := l.At(i)
			m.rows = append(m.rows, row{
				label:       fmt.Sprintf("[%d]", i),
				cell:        c,
				listIndex:   i,
				isContainer: isContainerKind(c.Kind()),
			})
		}
	case value.KindMap:
		mp := m.container.AsMap()
		keys := mp.Keys()
		for i := 0; i < keys.Length(); i++ {
			k := keys.At(i)
			v := mp.Get(k)
			m.rows = append(m.rows, row{
				label:       value.NewStringFromCell(k).String(),
				cell:        v,
				mapKey:      k,
				isContainer: isContainerKind(v.Kind()),
			})
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func isContainerKind(k value.Kind) bool {
	return k == value.KindList || k == value.KindMap || k == value.KindSet
}

// currentRow returns the row under the cursor and whether one exists.
func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// breadcrumb renders the path from root to the current container.
func (m Model) breadcrumb() string {
	path := "$"
	for _, f := range m.stack {
		path += "/" + f.label
	}
	return path
}

// descend pushes the current container and enters the child identified by r.
func (m *Model) descend(r row) {
	m.stack = append(m.stack, frame{container: m.container, label: r.label, cursor: m.cursor})
	m.container = r.cell
	m.cursor = 0
	m.offset = 0
	m.rebuildRows()
}

// ascend pops back to the parent container, restoring its cursor position.
func (m *Model) ascend() {
	if len(m.stack) == 0 {
		return
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.container = top.container
	m.cursor = top.cursor
	m.rebuildRows()
}

// deleteCurrent removes the row under the cursor from the current container.
func (m *Model) deleteCurrent() {
	r, ok := m.currentRow()
	if !ok {
		return
	}
	switch m.container.Kind() {
	case value.KindList:
		m.container.AsList().Remove(r.listIndex)
	case value.KindMap:
		m.container.AsMap().Remove(r.mapKey)
	}
	logger.Info("deleted node", "path", m.breadcrumb(), "label", r.label)
	m.rebuildRows()
}
