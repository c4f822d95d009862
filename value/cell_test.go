package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellZeroValuesOnMismatch(t *testing.T) {
	c := StringCell(NewStringFromBytes([]byte("hi")))
	assert.Equal(t, KindString, c.Kind())
	assert.False(t, c.AsBool())
	assert.Equal(t, int32(0), c.AsInt())
	assert.Equal(t, float32(0), c.AsFloat())
	assert.Nil(t, c.AsList())
	assert.Nil(t, c.AsMap())
	assert.Nil(t, c.AsSet())
}

func TestNilContainerConstructorsAreSafe(t *testing.T) {
	assert.Equal(t, 0, StringCell(nil).AsString().Length())
	assert.Equal(t, 0, ListCell(nil).AsList().Length())
	assert.Equal(t, 0, MapCell(nil).AsMap().Length())
	assert.Equal(t, 0, SetCell(nil).AsSet().Length())
}

func TestCellCloneDeepCopiesContainers(t *testing.T) {
	l := NewList()
	l.AppendInt(1)
	c := ListCell(l)
	cloned := c.cloneDeep()
	cloned.AsList().AppendInt(2)
	assert.Equal(t, 1, l.Length())
	assert.Equal(t, 2, cloned.AsList().Length())
}

func TestNullAndInvalid(t *testing.T) {
	assert.Equal(t, KindNull, Null().Kind())
	assert.Equal(t, KindInvalid, Invalid().Kind())
}
