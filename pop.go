package bq

// TryPop consumes one element into dst, returning its length. It returns
// (0, ErrWouldBlock) if nothing is published yet, and (0,
// *PreconditionError) if dst is too small for the claimed element. The
// capacity check happens immediately after the claim, and the slot is
// released with its payload dropped rather than left
// claimed-but-unreleased, so the queue's invariants stay intact even
// though the caller made a mistake.
func (q *Queue) TryPop(dst []byte) (int, error) {
	l := q.layout
	sw := newBackoff()
	cur := l.unpackValSlider(q.valBegin.LoadAcquire())
	end := q.slideValEnd()
	for {
		if !wrappedLess(uint64(cur), uint64(end), l.n) {
			return 0, ErrWouldBlock
		}
		next := cur + 1
		if q.advanceValBegin(cur, next) {
			break
		}
		end = q.slideValEnd()
		cur = l.unpackValSlider(q.valBegin.LoadAcquire())
		sw.Once()
	}

	return q.consume(uint64(cur), dst)
}

// Bulk is a batch of slots claimed in one CAS by PopBulk. It is owned
// exclusively by the consumer that obtained it and must not be shared
// across goroutines.
type Bulk struct {
	cur, end valSlider
}

// Empty reports whether the batch has been fully drained.
func (b Bulk) Empty() bool {
	return b.cur == b.end
}

// PopBulk claims every slot currently known to be published, in one CAS
// on val_begin, and returns a handle for draining them one at a time with
// ConsumeFromBulk. An empty handle means nothing was ready.
func (q *Queue) PopBulk() Bulk {
	l := q.layout
	sw := newBackoff()
	cur := l.unpackValSlider(q.valBegin.LoadAcquire())
	end := q.slideValEnd()
	for {
		if !wrappedLess(uint64(cur), uint64(end), l.n) {
			return Bulk{cur: cur, end: cur}
		}
		if q.advanceValBegin(cur, end) {
			// end may be masked to the word width while cur++ is not; rebase
			// it on cur so Empty sees exactly the claimed count.
			return Bulk{cur: cur, end: cur + valSlider((uint64(end)-uint64(cur))&(2*l.n-1))}
		}
		end = q.slideValEnd()
		cur = l.unpackValSlider(q.valBegin.LoadAcquire())
		sw.Once()
	}
}

// ConsumeFromBulk drains one element from a batch obtained via PopBulk.
// Returns (0, ErrWouldBlock) once the batch is empty.
func (q *Queue) ConsumeFromBulk(b *Bulk, dst []byte) (int, error) {
	if b.Empty() {
		return 0, ErrWouldBlock
	}
	slotIdx := uint64(b.cur)
	b.cur++
	return q.consume(slotIdx, dst)
}

// consume reads and releases slot slotIdx, which the caller has already
// claimed exclusively (via val_begin CAS or a bulk reservation).
func (q *Queue) consume(slotIdx uint64, dst []byte) (int, error) {
	l := q.layout
	m := q.loadMeta(slotIdx)
	if m.state != stateVAL {
		invariantViolation("consume: slot %d not VAL after claim", slotIdx&(l.n-1))
	}

	// A released slot keeps its begin and size: slideNilEnd reads them to
	// move nil_end's byte bound past the bytes this slot held.
	if m.size > uint64(len(dst)) {
		q.storeMeta(slotIdx, metaInfo{begin: m.begin, size: m.size, state: stateNIL, round: m.round})
		return 0, preconditionf("TryPop", "capacity %d insufficient for element of size %d", len(dst), m.size)
	}

	offset := m.begin & (l.b - 1)
	q.readData(offset, dst, m.size)
	q.storeMeta(slotIdx, metaInfo{begin: m.begin, size: m.size, state: stateNIL, round: m.round})
	return int(m.size), nil
}

// advanceValBegin transfers exclusive read ownership of one slot to the
// caller. With SingleConsumer() declared there is only ever one reader,
// so a plain release store replaces the CAS retry loop.
func (q *Queue) advanceValBegin(cur, next valSlider) bool {
	if q.singleCons {
		q.valBegin.StoreRelease(q.layout.packValSlider(next))
		return true
	}
	return q.valBegin.CompareAndSwapAcqRel(q.layout.packValSlider(cur), q.layout.packValSlider(next))
}

// readData copies size bytes out of the payload ring starting at offset
// into dst, splitting across the wrap point if needed.
func (q *Queue) readData(offset uint64, dst []byte, size uint64) {
	b := q.layout.b
	first := b - offset
	if first > size {
		first = size
	}
	copy(dst[:first], q.payload[offset:offset+first])
	if first < size {
		copy(dst[first:size], q.payload[0:size-first])
	}
}
