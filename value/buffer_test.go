package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferAppendInsertRemove(t *testing.T) {
	b := NewBufferFromBytes([]byte("hello"))
	b.AppendBytes([]byte(" world"))
	assert.Equal(t, "hello world", b.ToString().String())

	b.Insert(5, NewBufferFromBytes([]byte("!!!")))
	assert.Equal(t, "hello!!! world", b.ToString().String())

	b.Remove(5, 8)
	assert.Equal(t, "hello world", b.ToString().String())
}

func TestBufferReverseClearTrim(t *testing.T) {
	b := NewBufferFromBytes([]byte("abc"))
	b.Reverse()
	assert.Equal(t, "cba", b.ToString().String())

	b.Clear()
	assert.Equal(t, 0, b.Length())
	assert.Greater(t, b.Capacity(), 0)

	b2 := NewBufferFromBytes([]byte("xyz"))
	b2.Trim()
	assert.Equal(t, 3, b2.Capacity())
}

func TestBufferEqualAndHash(t *testing.T) {
	a := NewBufferFromBytes([]byte("same"))
	b := NewBufferFromBytes([]byte("same"))
	c := NewBufferFromBytes([]byte("diff"))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestBufferSliceAndDuplicate(t *testing.T) {
	b := NewBufferFromBytes([]byte("abcdef"))
	sliced := b.Slice(1, 4)
	assert.Equal(t, "bcd", sliced.ToString().String())

	dup := b.Duplicate()
	dup.AppendBytes([]byte("!"))
	assert.Equal(t, 6, b.Length())
	assert.Equal(t, 7, dup.Length())
}

func TestBufferBase64RoundTrip(t *testing.T) {
	b := NewBufferFromBytes([]byte("hello world"))
	encoded := b.ToBase64()
	assert.Equal(t, "aGVsbG8gd29ybGQ=", encoded.String())

	decoded := BufferFromBase64(encoded)
	assert.True(t, decoded.Equal(b))
}

func TestBufferBase64PartialGroups(t *testing.T) {
	for _, raw := range []string{"a", "ab", "abc", "abcd"} {
		b := NewBufferFromBytes([]byte(raw))
		decoded := BufferFromBase64(b.ToBase64())
		require.True(t, decoded.Equal(b), raw)
	}
}

func TestBufferBase64MalformedRemainderIsEmpty(t *testing.T) {
	// 5 valid symbols with no padding: 5 % 4 == 1, unrecoverable.
	decoded := BufferFromBase64(str("AAAAA"))
	assert.Equal(t, 0, decoded.Length())
}

func TestBufferBase64IgnoresNoise(t *testing.T) {
	b := NewBufferFromBytes([]byte("hi"))
	noisy := str("a G   k==")
	assert.True(t, BufferFromBase64(noisy).Equal(b))
	clean := b.ToBase64()
	decoded := BufferFromBase64(str(clean.String() + "\n"))
	assert.True(t, decoded.Equal(b))
}
