package bq

import (
	"math/bits"

	"github.com/kaynarov/squerrel-queue/internal/bitfield"
)

// layout derives, at construction time, the bit-slice placement for the
// slot metadata word and the producer-side (nil) slider word from the
// instantiation's (N, B, W). This is pure computation over small integers:
// no atomics, no third-party numerics library improves on math/bits for a
// handful of log2/mask operations, so this file is the one deliberate
// stdlib-only corner of the package (see DESIGN.md).
type layout struct {
	n, b, w uint64 // capacity in slots, capacity in payload bytes, atom width
	logN    uint8
	logB    uint8

	begin bitfield.Slice // slot metadata: payload ring start offset
	size  bitfield.Slice // slot metadata: payload length
	state bitfield.Slice // slot metadata: NIL(0) / VAL(1), one bit
	round bitfield.Slice // slot metadata: generation parity, one bit

	nilMetaIdx bitfield.Slice // producer slider: slot index subfield
	nilDataIdx bitfield.Slice // producer slider: payload byte index subfield

	val bitfield.Slice // consumer slider: whole word is the slot index

	maxSize uint64
}

// newLayout validates (N, B, W) and computes the field placement.
// N and B must be powers of two; W must be wide enough that begin, size,
// state and round all fit with room left for the wrap-parity bit on both
// the meta_idx and data_idx subfields.
func newLayout(n, b, w uint64) (*layout, error) {
	if n < 2 || !isPow2(n) {
		return nil, preconditionf("Build", "N (%d) must be a power of two >= 2", n)
	}
	if b < 1 || !isPow2(b) {
		return nil, preconditionf("Build", "B (%d) must be a power of two >= 1", b)
	}
	if w != 8 && w != 16 && w != 32 && w != 64 {
		return nil, preconditionf("Build", "W (%d) must be one of 8, 16, 32, 64", w)
	}

	logN := uint8(bits.TrailingZeros64(n))
	logB := uint8(bits.TrailingZeros64(b))
	beginBits := logB + 1

	// state + round occupy the top two bits of the meta-info word.
	if uint64(beginBits)+3 > w {
		return nil, preconditionf("Build",
			"W (%d) too narrow for B (%d): need at least %d bits for begin+size+state+round",
			w, b, beginBits+3)
	}
	sizeBits := w - uint64(beginBits) - 2

	// The producer slider packs meta_idx and data_idx into the same word;
	// meta_idx's subfield must be wide enough to carry slot indices plus
	// one wrap-parity bit above them.
	metaIdxBits := w - uint64(beginBits)
	if metaIdxBits < uint64(logN)+1 {
		return nil, preconditionf("Build",
			"W (%d) too narrow for N (%d) given B (%d): meta_idx subfield has only %d bits, need %d",
			w, n, b, metaIdxBits, logN+1)
	}

	l := &layout{
		n: n, b: b, w: w,
		logN: logN, logB: logB,

		begin: bitfield.NewSlice(0, uint8(beginBits)),
		size:  bitfield.NewSlice(uint8(beginBits), uint8(beginBits)+uint8(sizeBits)),
		state: bitfield.NewSlice(uint8(w)-2, uint8(w)-1),
		round: bitfield.NewSlice(uint8(w)-1, uint8(w)),

		nilMetaIdx: bitfield.NewSlice(0, uint8(metaIdxBits)),
		nilDataIdx: bitfield.NewSlice(uint8(metaIdxBits), uint8(w)),

		val: bitfield.NewSlice(0, uint8(w)),
	}

	bitwiseMax := l.size.Max()
	if b < bitwiseMax {
		l.maxSize = b
	} else {
		l.maxSize = bitwiseMax
	}
	if l.maxSize == 0 {
		return nil, preconditionf("Build", "computed MaxSize is 0 for given (N=%d, B=%d, W=%d)", n, b, w)
	}
	return l, nil
}

func isPow2(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}
