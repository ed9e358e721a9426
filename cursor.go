package bq

import "code.hybscloud.com/spin"

// nilSlider is the producer-side cursor position: a slot index and a
// payload byte index, packed into one word.
type nilSlider struct {
	metaIdx uint64
	dataIdx uint64
}

func (l *layout) packNilSlider(s nilSlider) uint64 {
	return l.nilMetaIdx.Encode(s.metaIdx) | l.nilDataIdx.Encode(s.dataIdx)
}

func (l *layout) unpackNilSlider(w uint64) nilSlider {
	return nilSlider{
		metaIdx: l.nilMetaIdx.Decode(w),
		dataIdx: l.nilDataIdx.Decode(w),
	}
}

// shift advances a producer slider past the slot whose metadata is m:
// one more slot, and the payload cursor moved past this slot's bytes.
// The +B term (not just +size) is what lets wrapped_less distinguish a
// still-live byte range from one that has wrapped all the way around.
func (s nilSlider) shift(m metaInfo, b uint64) nilSlider {
	return nilSlider{metaIdx: s.metaIdx + 1, dataIdx: m.begin + m.size + b}
}

// valSlider is the consumer-side cursor position: a single slot index.
type valSlider uint64

func (l *layout) packValSlider(s valSlider) uint64 {
	return l.val.Encode(uint64(s))
}

func (l *layout) unpackValSlider(w uint64) valSlider {
	return valSlider(l.val.Decode(w))
}

// wrappedLess reports whether a precedes b within a live window of size m
// (a power of two): it returns true iff (b-a) mod 2m lands in (0, m]. The
// tie case a == b is not less-than. m must be a power of two no smaller
// than the legal distance between any two live cursors on that axis, so
// 2m never overflows the subfield both a and b are drawn from.
func wrappedLess(a, b, m uint64) bool {
	diff := (b - a) & (2*m - 1)
	return diff != 0 && diff <= m
}

// slideNilEnd helps advance nil_end past slots that consumers have
// already released back to NIL with the expected round, so producers
// waiting on room don't stall behind a straggling helper. Called before
// every TryPush reservation attempt.
func (q *Queue) slideNilEnd() nilSlider {
	l := q.layout
	expectedWord := q.nilEnd.LoadAcquire()
	expected := l.unpackNilSlider(expectedWord)
	desired := expected

	for i := uint64(0); q.slideLimit == 0 || i < q.slideLimit; i++ {
		expectedRound := boolToWord(desired.metaIdx&l.n != 0)
		m := q.loadMeta(desired.metaIdx)
		if m.state != stateNIL || m.round != expectedRound {
			break
		}
		desired = desired.shift(m, l.b)
	}

	if desired == expected {
		return expected
	}
	desiredWord := l.packNilSlider(desired)
	if q.nilEnd.CompareAndSwapAcqRel(expectedWord, desiredWord) {
		return desired
	}
	return l.unpackNilSlider(q.nilEnd.LoadAcquire())
}

// slideValEnd helps advance val_end past slots that producers have
// already published with the expected round. Called before every TryPop/
// PopBulk reservation attempt.
func (q *Queue) slideValEnd() valSlider {
	l := q.layout
	expectedWord := q.valEnd.LoadAcquire()
	expected := l.unpackValSlider(expectedWord)
	desired := expected

	for i := uint64(0); q.slideLimit == 0 || i < q.slideLimit; i++ {
		expectedRound := boolToWord(uint64(desired)&l.n == 0)
		m := q.loadMeta(uint64(desired))
		if m.state != stateVAL || m.round != expectedRound {
			break
		}
		desired++
	}

	if desired == expected {
		return expected
	}
	desiredWord := l.packValSlider(desired)
	if q.valEnd.CompareAndSwapAcqRel(expectedWord, desiredWord) {
		return desired
	}
	return l.unpackValSlider(q.valEnd.LoadAcquire())
}

func boolToWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// newBackoff returns a fresh spin.Wait for a CAS-retry loop, matching the
// teacher's `sw := spin.Wait{}` convention in mpmc.go/mpmc_compact.go.
func newBackoff() spin.Wait {
	return spin.Wait{}
}
