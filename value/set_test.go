package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPutDedupsPrimitives(t *testing.T) {
	s := NewSet()
	s.Put(IntCell(1))
	s.Put(IntCell(1))
	s.Put(BoolCell(true)) // numeric-coerced equal to Int(1), also deduped
	require.Equal(t, 1, s.Length())
}

func TestSetContainersAlwaysAppendAndNeverMatch(t *testing.T) {
	s := NewSet()
	l1 := NewList()
	l1.AppendInt(1)
	l2 := NewList()
	l2.AppendInt(1)
	s.Put(ListCell(l1))
	s.Put(ListCell(l2))
	require.Equal(t, 2, s.Length())
	assert.False(t, s.Contains(ListCell(l1)))
}

func TestSetRemoveAllMatches(t *testing.T) {
	s := NewSet()
	s.Put(IntCell(1))
	s.Put(IntCell(2))
	s.Remove(IntCell(1))
	assert.Equal(t, 1, s.Length())
	assert.False(t, s.Contains(IntCell(1)))
}

func TestSetEqualConservativeOnContainers(t *testing.T) {
	a := NewSet()
	a.Put(IntCell(1))
	a.Put(ListCell(NewList()))
	b := NewSet()
	b.Put(IntCell(1))
	b.Put(ListCell(NewList()))
	assert.True(t, a.Equal(b))
}

func TestSetUnionIntersectSubtract(t *testing.T) {
	a := NewSet()
	a.Put(IntCell(1))
	a.Put(IntCell(2))
	b := NewSet()
	b.Put(IntCell(2))
	b.Put(IntCell(3))

	union := NewSet()
	union.Union(a).Union(b)
	assert.Equal(t, 3, union.Length())

	inter := a.Duplicate()
	inter.Intersect(b)
	assert.Equal(t, 1, inter.Length())
	assert.True(t, inter.Contains(IntCell(2)))

	sub := a.Duplicate()
	sub.Subtract(b)
	assert.Equal(t, 1, sub.Length())
	assert.True(t, sub.Contains(IntCell(1)))
}

func TestSetSubtractSelfClears(t *testing.T) {
	a := NewSet()
	a.Put(IntCell(1))
	a.Put(IntCell(2))
	a.Subtract(a.Duplicate())
	assert.Equal(t, 0, a.Length())
}

func TestSetSubtractSelfPointerClearsEvenWithContainers(t *testing.T) {
	a := NewSet()
	a.Put(ListCell(NewList()))
	a.Put(IntCell(1))
	a.Subtract(a)
	assert.Equal(t, 0, a.Length())
}
