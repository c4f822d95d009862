package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attohq/attoval/value"
)

func newTestModel(t *testing.T, json string) Model {
	t.Helper()
	root := value.ParseJSON(value.NewStringFromBytes([]byte(json)))
	require.True(t, root.Kind() == value.KindMap || root.Kind() == value.KindList)
	m := NewModel("test.json", root)
	m.width, m.height = 80, 24
	return m
}

func TestModelRebuildRowsListsMapKeysInOrder(t *testing.T) {
	m := newTestModel(t, `{"name":"atto","tags":["a","b"]}`)
	require.Len(t, m.rows, 2)
	assert.Equal(t, "name", m.rows[0].label)
	assert.False(t, m.rows[0].isContainer)
	assert.Equal(t, "tags", m.rows[1].label)
	assert.True(t, m.rows[1].isContainer)
}

func TestModelDescendAndAscendRestoresCursor(t *testing.T) {
	m := newTestModel(t, `{"tags":["a","b","c"]}`)
	m.cursor = 0
	r, ok := m.currentRow()
	require.True(t, ok)
	m.descend(r)

	assert.Equal(t, value.KindList, m.container.Kind())
	require.Len(t, m.rows, 3)
	assert.Equal(t, "$/tags", m.breadcrumb())

	m.cursor = 2
	m.ascend()
	assert.Equal(t, value.KindMap, m.container.Kind())
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, "$", m.breadcrumb())
}

func TestModelDeleteCurrentRemovesFromList(t *testing.T) {
	m := newTestModel(t, `[1,2,3]`)
	m.cursor = 1
	m.deleteCurrent()
	require.Len(t, m.rows, 2)
	assert.Equal(t, int32(1), m.rows[0].cell.AsInt())
	assert.Equal(t, int32(3), m.rows[1].cell.AsInt())
}

func TestModelDeleteCurrentRemovesFromMap(t *testing.T) {
	m := newTestModel(t, `{"a":1,"b":2}`)
	m.cursor = 0
	m.deleteCurrent()
	require.Len(t, m.rows, 1)
	assert.Equal(t, "b", m.rows[0].label)
}

func TestModelUpdateNavigatesWithArrowKeys(t *testing.T) {
	m := newTestModel(t, `[1,2,3]`)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	nm := next.(Model)
	assert.Equal(t, 1, nm.cursor)

	next, _ = nm.Update(tea.KeyMsg{Type: tea.KeyUp})
	nm = next.(Model)
	assert.Equal(t, 0, nm.cursor)
}

func TestModelConfirmDeleteRequiresExplicitConfirm(t *testing.T) {
	m := newTestModel(t, `[1,2,3]`)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	nm := next.(Model)
	assert.True(t, nm.confirmingDelete)
	require.Len(t, nm.rows, 3)

	next, _ = nm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	nm = next.(Model)
	assert.False(t, nm.confirmingDelete)
	require.Len(t, nm.rows, 3)

	next, _ = nm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	nm = next.(Model)
	next, _ = nm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	nm = next.(Model)
	assert.False(t, nm.confirmingDelete)
	require.Len(t, nm.rows, 2)
}
