package utf8idx

import "testing"

func TestCountCharacters(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"日本語", 3},
		{"😀", 1},
	}
	for _, c := range cases {
		if got := CountCharacters([]byte(c.in)); got != c.want {
			t.Errorf("CountCharacters(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestCharToByteRoundTrip(t *testing.T) {
	s := []byte("a日b")
	// characters: 'a' (1 byte), '日' (3 bytes), 'b' (1 byte)
	if off := CharToByte(s, 0); off != 0 {
		t.Fatalf("char 0 at byte %d, want 0", off)
	}
	if off := CharToByte(s, 1); off != 1 {
		t.Fatalf("char 1 at byte %d, want 1", off)
	}
	if off := CharToByte(s, 2); off != 4 {
		t.Fatalf("char 2 at byte %d, want 4", off)
	}
	if off := CharToByte(s, 3); off != 5 {
		t.Fatalf("char 3 (end) at byte %d, want 5", off)
	}
	if off := CharToByte(s, 4); off != -1 {
		t.Fatalf("char 4 should be out of range, got %d", off)
	}
	for i := 0; i <= 3; i++ {
		off := CharToByte(s, i)
		if got := ByteToChar(s, off); got != i {
			t.Errorf("ByteToChar(CharToByte(%d)=%d) = %d, want %d", i, off, got, i)
		}
	}
}

func TestValidate(t *testing.T) {
	if !Validate([]byte("hello 日本語 😀")) {
		t.Fatal("expected valid UTF-8 to validate")
	}
	if Validate([]byte{0xC2}) {
		t.Fatal("truncated multi-byte sequence should not validate")
	}
	if Validate([]byte{0xC2, 0x20}) {
		t.Fatal("bad continuation byte should not validate")
	}
}

func TestDisplayWidth(t *testing.T) {
	if got := DisplayWidth([]byte("abc")); got != 3 {
		t.Fatalf("DisplayWidth(abc) = %d, want 3", got)
	}
	if got := DisplayWidth([]byte("日本語")); got != 6 {
		t.Fatalf("DisplayWidth(日本語) = %d, want 6", got)
	}
}
