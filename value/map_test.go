package value

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapPutGetOverwritesInPlace(t *testing.T) {
	m := NewMap()
	m.PutString(str("a"), IntCell(1))
	m.PutString(str("b"), IntCell(2))
	m.PutString(str("a"), IntCell(99))

	require.Equal(t, 2, m.Length())
	assert.Equal(t, int32(99), m.GetInt(StringCell(str("a"))))
	assert.Equal(t, []string{"a", "b"}, listStrings(t, m.Keys()))
}

func TestMapHasKeyTypeAtMissing(t *testing.T) {
	m := NewMap()
	m.PutString(str("x"), BoolCell(true))
	assert.True(t, m.HasKey(StringCell(str("x"))))
	assert.Equal(t, KindBool, m.TypeAt(StringCell(str("x"))))
	assert.Equal(t, KindInvalid, m.TypeAt(StringCell(str("missing"))))
	assert.Equal(t, KindNull, m.Get(StringCell(str("missing"))).Kind())
}

func TestMapRemoveClear(t *testing.T) {
	m := NewMap()
	m.PutInt(1, StringCell(str("one")))
	m.PutInt(2, StringCell(str("two")))
	m.Remove(IntCell(1))
	require.Equal(t, 1, m.Length())
	assert.False(t, m.HasKey(IntCell(1)))
	m.Clear()
	assert.Equal(t, 0, m.Length())
}

func TestMapDuplicateIsDeep(t *testing.T) {
	inner := NewList()
	inner.AppendInt(1)
	m := NewMap()
	m.PutString(str("l"), ListCell(inner))

	dup := m.Duplicate()
	dup.GetList(StringCell(str("l"))).AppendInt(2)
	assert.Equal(t, 1, m.GetList(StringCell(str("l"))).Length())
	assert.Equal(t, 2, dup.GetList(StringCell(str("l"))).Length())
}

func TestMapMergeLastWriterWins(t *testing.T) {
	a := NewMap()
	a.PutString(str("x"), IntCell(1))
	b := NewMap()
	b.PutString(str("x"), IntCell(2))
	b.PutString(str("y"), IntCell(3))

	a.Merge(b)
	assert.Equal(t, int32(2), a.GetInt(StringCell(str("x"))))
	assert.Equal(t, int32(3), a.GetInt(StringCell(str("y"))))
}

func TestMapFindValueKey(t *testing.T) {
	m := NewMap()
	m.PutString(str("a"), IntCell(10))
	m.PutString(str("b"), IntCell(20))
	assert.Equal(t, "b", m.FindValueKey(IntCell(20)).AsString().String())
	assert.Equal(t, KindNull, m.FindValueKey(IntCell(99)).Kind())
}

func TestMapConcurrentWellFormedness(t *testing.T) {
	m := NewMap()
	var wg sync.WaitGroup
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				m.PutInt(int32(n*20+i), IntCell(int32(i)))
			}
		}(g)
	}
	wg.Wait()
	assert.Equal(t, 200, m.Length())
	assert.Equal(t, m.Keys().Length(), m.Values().Length())
}
