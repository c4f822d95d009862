package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listStrings(t *testing.T, l *List) []string {
	t.Helper()
	out := make([]string, l.Length())
	for i := range out {
		out[i] = l.AtString(i).String()
	}
	return out
}

func TestStringSplit(t *testing.T) {
	l := str("a,b,c").Split(str(","))
	require.Equal(t, 3, l.Length())
	assert.Equal(t, []string{"a", "b", "c"}, listStrings(t, l))
}

func TestStringSplitNLimitsSplits(t *testing.T) {
	l := str("a,b,c,d").SplitN(str(","), 1)
	require.Equal(t, 2, l.Length())
	assert.Equal(t, []string{"a", "b,c,d"}, listStrings(t, l))
}

func TestStringSplitEmptyInput(t *testing.T) {
	l := str("").Split(str(","))
	require.Equal(t, 1, l.Length())
	assert.Equal(t, "", l.AtString(0).String())
}

func TestStringSplitEmptySeparator(t *testing.T) {
	l := str("abc").Split(str(""))
	require.Equal(t, 1, l.Length())
	assert.Equal(t, "abc", l.AtString(0).String())
}

func TestStringSplitWhitespace(t *testing.T) {
	l := str("  foo   bar\tbaz  ").SplitWhitespace()
	assert.Equal(t, []string{"foo", "bar", "baz"}, listStrings(t, l))
}

func TestStringLines(t *testing.T) {
	l := str("a\r\nb\nc\n").Lines()
	assert.Equal(t, []string{"a", "b", "c", ""}, listStrings(t, l))
}

func TestStringJoin(t *testing.T) {
	l := NewList()
	l.AppendString(str("a"))
	l.AppendInt(1)
	l.AppendString(str("b"))
	assert.Equal(t, "a-1-b", str("-").Join(l).String())
}
