package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *String { return NewStringFromBytes([]byte(s)) }

func TestStringAtUnicode(t *testing.T) {
	s := str("héllo")
	assert.Equal(t, "h", s.At(0).String())
	assert.Equal(t, "é", s.At(1).String())
	assert.Equal(t, "", s.At(99).String())
}

func TestStringSubstring(t *testing.T) {
	s := str("abcdef")
	assert.Equal(t, "bcd", s.Substring(1, 4).String())
	assert.Equal(t, "def", s.SubstringFrom(3).String())
	assert.Equal(t, "", s.Substring(4, 1).String())
}

func TestStringContainsStartsEndsCount(t *testing.T) {
	s := str("abcabcabc")
	assert.True(t, s.Contains(str("cab")))
	assert.True(t, s.StartsWith(str("abc")))
	assert.True(t, s.EndsWith(str("abc")))
	assert.Equal(t, 3, s.Count(str("abc")))
	assert.Equal(t, 0, s.Count(str("")))
}

func TestStringGetPositionOf(t *testing.T) {
	s := str("日本語abc")
	assert.Equal(t, 3, s.GetPositionOf(str("abc")))
	assert.Equal(t, -1, s.GetPositionOf(str("xyz")))
}

func TestStringIsNumber(t *testing.T) {
	require.True(t, str("-12.5").IsNumber())
	require.True(t, str("3").IsNumber())
	require.False(t, str("3.1.2").IsNumber())
	require.False(t, str("").IsNumber())
	require.False(t, str("abc").IsNumber())
}

func TestStringToBool(t *testing.T) {
	for _, v := range []string{"true", "T", "1", "yes", "On"} {
		assert.True(t, str(v).ToBool(), v)
	}
	for _, v := range []string{"false", "0", "no", "", "maybe"} {
		assert.False(t, str(v).ToBool(), v)
	}
}

func TestStringToIntegerAndFloat(t *testing.T) {
	assert.Equal(t, int32(42), str("42abc").ToInteger())
	assert.Equal(t, int32(0), str("abc").ToInteger())
	assert.Equal(t, float32(3.5), str("3.5trailing").ToFloat())
	assert.Equal(t, float32(0), str("nope").ToFloat())
}
