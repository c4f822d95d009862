// Package hashutil holds the single djb2 implementation shared by
// value.String and value.Buffer, so the two container types never drift
// apart on hash behavior.
package hashutil

// DJB2 is Daniel J. Bernstein's string hash: h = h*33 + b, seeded at 5381.
// An empty byte slice hashes to 0 rather than to the 5381 seed.
func DJB2(b []byte) uint32 {
	if len(b) == 0 {
		return 0
	}
	var h uint32 = 5381
	for _, c := range b {
		h = h*33 + uint32(c)
	}
	return h
}
