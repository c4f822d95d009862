package value

import (
	"sync"

	"github.com/attohq/attoval/internal/hashutil"
)

const bufferInitialCapacity = 512

// Buffer is a resizable byte sequence guarded by a reader/writer lock.
// Unlike String, Buffer's mutations are in-place and return the receiver
// for chaining, matching List/Map/Set's convention rather than String's
// functional one.
type Buffer struct {
	mu   sync.RWMutex
	data []byte
}

// NewBuffer returns an empty buffer with an initial capacity of 512 bytes.
func NewBuffer() *Buffer {
	return &Buffer{data: make([]byte, 0, bufferInitialCapacity)}
}

// NewBufferWithCapacity returns an empty buffer with at least capHint
// capacity (never below the floor of 512).
func NewBufferWithCapacity(capHint int) *Buffer {
	if capHint < bufferInitialCapacity {
		capHint = bufferInitialCapacity
	}
	return &Buffer{data: make([]byte, 0, capHint)}
}

// NewBufferFromBytes copies size bytes from a raw slice.
func NewBufferFromBytes(b []byte) *Buffer {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Buffer{data: cp}
}

// NewBufferFromString copies a String's UTF-8 bytes.
func NewBufferFromString(s *String) *Buffer {
	return NewBufferFromBytes(s.safeBytes())
}

func (b *Buffer) ensureCapacityLocked(want int) {
	if cap(b.data) >= want {
		return
	}
	newCap := cap(b.data)
	if newCap == 0 {
		newCap = bufferInitialCapacity
	}
	for newCap < want {
		newCap *= 2
	}
	grown := make([]byte, len(b.data), newCap)
	copy(grown, b.data)
	b.data = grown
}

// Length returns the number of bytes stored.
func (b *Buffer) Length() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.data)
}

// IsEmpty reports whether the buffer has zero bytes.
func (b *Buffer) IsEmpty() bool { return b.Length() == 0 }

// Capacity reports the buffer's current backing capacity.
func (b *Buffer) Capacity() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cap(b.data)
}

// Bytes returns a copy of the stored bytes.
func (b *Buffer) Bytes() []byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	cp := make([]byte, len(b.data))
	copy(cp, b.data)
	return cp
}

// Duplicate returns a deep copy.
func (b *Buffer) Duplicate() *Buffer {
	return NewBufferFromBytes(b.Bytes())
}

// Equal is byte-wise equality ("compare").
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	a, c := b.Bytes(), o.Bytes()
	if len(a) != len(c) {
		return false
	}
	for i := range a {
		if a[i] != c[i] {
			return false
		}
	}
	return true
}

// Hash is djb2 over the stored bytes (the same algorithm String uses).
func (b *Buffer) Hash() uint32 {
	return hashutil.DJB2(b.Bytes())
}

// Append copies other's bytes onto the end, growing capacity as needed.
func (b *Buffer) Append(other *Buffer) *Buffer {
	return b.AppendBytes(other.Bytes())
}

// AppendBytes appends raw bytes.
func (b *Buffer) AppendBytes(raw []byte) *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureCapacityLocked(len(b.data) + len(raw))
	b.data = append(b.data, raw...)
	return b
}

// AppendString appends a String's UTF-8 bytes.
func (b *Buffer) AppendString(s *String) *Buffer {
	return b.AppendBytes(s.safeBytes())
}

// Prepend inserts other's bytes at the front.
func (b *Buffer) Prepend(other *Buffer) *Buffer {
	return b.Insert(0, other)
}

// Insert inserts other's bytes at byte offset index (clamped into
// [0, length]).
func (b *Buffer) Insert(index int, other *Buffer) *Buffer {
	raw := other.Bytes()
	b.mu.Lock()
	defer b.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index > len(b.data) {
		index = len(b.data)
	}
	b.ensureCapacityLocked(len(b.data) + len(raw))
	b.data = append(b.data, make([]byte, len(raw))...)
	copy(b.data[index+len(raw):], b.data[index:])
	copy(b.data[index:], raw)
	return b
}

// Remove deletes the byte range [start, end), clamped the same way List
// clamps element ranges.
func (b *Buffer) Remove(start, end int) *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	length := len(b.data)
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start >= end || start >= length {
		return b
	}
	copy(b.data[start:], b.data[end:])
	b.data = b.data[:length-(end-start)]
	return b
}

// Reverse reverses the bytes in place (two-pointer swap).
func (b *Buffer) Reverse() *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, j := 0, len(b.data)-1; i < j; i, j = i+1, j-1 {
		b.data[i], b.data[j] = b.data[j], b.data[i]
	}
	return b
}

// Clear empties the buffer without releasing its backing capacity.
func (b *Buffer) Clear() *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = b.data[:0]
	return b
}

// Trim shrinks capacity to size; if size is 0 the backing array is
// released entirely.
func (b *Buffer) Trim() *Buffer {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.data) == 0 {
		b.data = nil
		return b
	}
	shrunk := make([]byte, len(b.data))
	copy(shrunk, b.data)
	b.data = shrunk
	return b
}

// Slice returns a new Buffer holding the byte range [start, end), clamped
// as Remove/List.Slice clamp their ranges.
func (b *Buffer) Slice(start, end int) *Buffer {
	raw := b.Bytes()
	length := len(raw)
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start >= end || start >= length {
		return NewBuffer()
	}
	return NewBufferFromBytes(raw[start:end])
}

// ToString interprets the stored bytes as UTF-8 and returns a String over
// the same bytes, with no validation: malformed sequences are preserved
// verbatim.
func (b *Buffer) ToString() *String {
	return NewStringFromBytes(b.Bytes())
}
