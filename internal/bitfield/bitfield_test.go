package bitfield

import "testing"

func TestSliceEncodeDecode(t *testing.T) {
	cases := []struct {
		name       string
		start, end uint8
		value      uint64
	}{
		{"low byte", 0, 8, 0xAB},
		{"mid nibble", 4, 8, 0xF},
		{"single bit", 7, 8, 1},
		{"full word", 0, 64, 0x0123456789ABCDEF},
		{"high range", 48, 64, 0xBEEF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewSlice(c.start, c.end)
			w := s.Encode(c.value)
			got := s.Decode(w)
			want := c.value & s.unshiftedMask()
			if got != want {
				t.Fatalf("Decode(Encode(%#x)) = %#x, want %#x", c.value, got, want)
			}
		})
	}
}

func TestSliceEncodeTruncates(t *testing.T) {
	s := NewSlice(0, 4)
	w := s.Encode(0xFF)
	if got := s.Decode(w); got != 0xF {
		t.Fatalf("Decode: got %#x, want %#x", got, 0xF)
	}
}

func TestSliceMax(t *testing.T) {
	cases := []struct {
		start, end uint8
		want       uint64
	}{
		{0, 1, 1},
		{0, 8, 0xFF},
		{0, 64, ^uint64(0)},
		{4, 8, 0xF},
	}
	for _, c := range cases {
		s := NewSlice(c.start, c.end)
		if got := s.Max(); got != c.want {
			t.Fatalf("NewSlice(%d,%d).Max() = %#x, want %#x", c.start, c.end, got, c.want)
		}
	}
}

func TestSliceBits(t *testing.T) {
	s := NewSlice(3, 10)
	if got := s.Bits(); got != 7 {
		t.Fatalf("Bits() = %d, want 7", got)
	}
}

func TestSlicesDoNotOverlap(t *testing.T) {
	a := NewSlice(0, 4)
	b := NewSlice(4, 8)
	if a.Mask()&b.Mask() != 0 {
		t.Fatalf("adjacent slices overlap: a=%#x b=%#x", a.Mask(), b.Mask())
	}
	w := a.Encode(0xF) | b.Encode(0x3)
	if got := a.Decode(w); got != 0xF {
		t.Fatalf("a.Decode: got %#x, want 0xF", got)
	}
	if got := b.Decode(w); got != 0x3 {
		t.Fatalf("b.Decode: got %#x, want 0x3", got)
	}
}

func TestNewSlicePanicsOnInvertedRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewSlice(4, 4) did not panic")
		}
	}()
	NewSlice(4, 4)
}
