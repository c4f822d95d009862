package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSONPrimitives(t *testing.T) {
	assert.Equal(t, "null", EncodeJSON(Null()))
	assert.Equal(t, "true", EncodeJSON(BoolCell(true)))
	assert.Equal(t, "42", EncodeJSON(IntCell(42)))
	assert.Equal(t, "3.5", EncodeJSON(FloatCell(3.5)))
	assert.Equal(t, `"hi"`, EncodeJSON(StringCell(str("hi"))))
}

func TestEncodeJSONEscaping(t *testing.T) {
	s := StringCell(str("a\"b\\c\nd"))
	assert.Equal(t, `"a\"b\\c\nd"`, EncodeJSON(s))
	assert.Equal(t, `""`, EncodeJSON(StringCell(NewStringFromBytes([]byte{0x01}))))
}

func TestListToJSONAndFromJSON(t *testing.T) {
	l := NewList()
	l.AppendInt(1)
	l.AppendBool(true)
	l.AppendString(str("x"))
	text := l.ToJSON()
	assert.Equal(t, `[1,true,"x"]`, text)

	parsed := FromJSON(str(text))
	require.Equal(t, 3, parsed.Length())
	assert.Equal(t, int32(1), parsed.AtInt(0))
	assert.True(t, parsed.AtBool(1))
	assert.Equal(t, "x", parsed.AtString(2).String())
}

func TestMapToJSONAndFromJSON(t *testing.T) {
	m := NewMap()
	m.PutString(str("a"), IntCell(1))
	m.PutString(str("b"), StringCell(str("two")))
	text := m.ToJSON()
	assert.Equal(t, `{"a":1,"b":"two"}`, text)

	parsed := MapFromJSON(str(text))
	require.Equal(t, 2, parsed.Length())
	assert.Equal(t, int32(1), parsed.GetInt(StringCell(str("a"))))
	assert.Equal(t, "two", parsed.GetString(StringCell(str("b"))).String())
}

func TestJSONRoundTripEqualityLaw(t *testing.T) {
	l := NewList()
	l.AppendInt(1)
	l.AppendFloat(2.5)
	l.AppendString(str("s"))
	nested := NewMap()
	nested.PutString(str("k"), BoolCell(true))
	l.AppendMap(nested)

	roundTripped := FromJSON(str(l.ToJSON()))
	assert.True(t, l.Equal(roundTripped))
}

func TestFromJSONNonArrayYieldsEmptyList(t *testing.T) {
	l := FromJSON(str(`{"a":1}`))
	assert.Equal(t, 0, l.Length())
}

func TestMapFromJSONNonObjectYieldsEmptyMap(t *testing.T) {
	m := MapFromJSON(str(`[1,2]`))
	assert.Equal(t, 0, m.Length())
}

func TestParseJSONLeniency(t *testing.T) {
	// Trailing comma tolerated.
	l := FromJSON(str(`[1,2,]`))
	assert.Equal(t, 2, l.Length())

	// Unrecognized token silently becomes Int 0.
	l2 := FromJSON(str(`[xyz,1]`))
	require.Equal(t, 2, l2.Length())
	assert.Equal(t, int32(0), l2.AtInt(0))
	assert.Equal(t, int32(1), l2.AtInt(1))
}

func TestParseJSONNumberKinds(t *testing.T) {
	assert.Equal(t, KindInt, ParseJSON(str("42")).Kind())
	assert.Equal(t, KindFloat, ParseJSON(str("4.2")).Kind())
	assert.Equal(t, KindFloat, ParseJSON(str("4e2")).Kind())
}

func TestSetFromJSONDedups(t *testing.T) {
	s := SetFromJSON(str(`[1,1,2]`))
	assert.Equal(t, 2, s.Length())
}

func TestParseJSONUnicodeEscape(t *testing.T) {
	s := ParseJSON(str("\"\\u0041B\"")).AsString()
	assert.Equal(t, "AB", s.String())
}
