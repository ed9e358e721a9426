package bq

// TryPush publishes one element. It returns ErrWouldBlock if the ring has
// no room (back-pressure, not a failure), and a *PreconditionError if size
// is zero or exceeds MaxSize().
func (q *Queue) TryPush(data []byte) error {
	l := q.layout
	size := uint64(len(data))
	if size == 0 {
		return preconditionf("TryPush", "size must be greater than 0")
	}
	if size > l.maxSize {
		return preconditionf("TryPush", "size %d exceeds MaxSize %d", size, l.maxSize)
	}

	sw := newBackoff()
	cur := l.unpackNilSlider(q.nilBegin.LoadAcquire())
	end := q.slideNilEnd()
	for {
		last := nilSlider{metaIdx: cur.metaIdx, dataIdx: cur.dataIdx + size - 1}
		if !(wrappedLess(last.metaIdx, end.metaIdx, l.n) && wrappedLess(last.dataIdx, end.dataIdx, l.b)) {
			return ErrWouldBlock
		}

		next := nilSlider{metaIdx: cur.metaIdx + 1, dataIdx: cur.dataIdx + size}
		if q.advanceNilBegin(cur, next) {
			break
		}
		end = q.slideNilEnd()
		cur = l.unpackNilSlider(q.nilBegin.LoadAcquire())
		sw.Once()
	}

	slotIdx := cur.metaIdx
	m := q.loadMeta(slotIdx)
	if m.state != stateNIL {
		invariantViolation("TryPush: slot %d not NIL after winning nil_begin CAS", slotIdx&(l.n-1))
	}

	offset := cur.dataIdx & (l.b - 1)
	q.writeData(offset, data)

	round := boolToWord(cur.metaIdx&l.n == 0)
	q.storeMeta(slotIdx, metaInfo{begin: cur.dataIdx, size: size, state: stateVAL, round: round})
	return nil
}

// advanceNilBegin transfers exclusive ownership of one slot + byte range
// to the caller. With multiple producers this is a CAS; with
// SingleProducer() declared there is only ever one writer, so a plain
// release store is correct and skips the retry loop entirely.
func (q *Queue) advanceNilBegin(cur, next nilSlider) bool {
	if q.singleProd {
		q.nilBegin.StoreRelease(q.layout.packNilSlider(next))
		return true
	}
	return q.nilBegin.CompareAndSwapAcqRel(q.layout.packNilSlider(cur), q.layout.packNilSlider(next))
}

// writeData copies src into the payload ring starting at offset,
// splitting across the wrap point if the write would run past B.
func (q *Queue) writeData(offset uint64, src []byte) {
	b := q.layout.b
	n := uint64(len(src))
	first := b - offset
	if first > n {
		first = n
	}
	copy(q.payload[offset:offset+first], src[:first])
	if first < n {
		copy(q.payload[0:n-first], src[first:])
	}
}
