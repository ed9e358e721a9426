package bq

// metaInfo is the unpacked form of one slot's metadata word: where its
// payload starts, how long it is, whether it's published, and which
// generation (round) published it.
type metaInfo struct {
	begin uint64
	size  uint64
	state uint64
	round uint64
}

func (l *layout) packMeta(m metaInfo) uint64 {
	return l.begin.Encode(m.begin) |
		l.size.Encode(m.size) |
		l.state.Encode(m.state) |
		l.round.Encode(m.round)
}

func (l *layout) unpackMeta(w uint64) metaInfo {
	return metaInfo{
		begin: l.begin.Decode(w),
		size:  l.size.Decode(w),
		state: l.state.Decode(w),
		round: l.round.Decode(w),
	}
}

// loadMeta acquire-loads and unpacks slot i's metadata word.
func (q *Queue) loadMeta(i uint64) metaInfo {
	return q.layout.unpackMeta(q.meta[i&(q.layout.n-1)].LoadAcquire())
}

// storeMeta release-stores m into slot i's metadata word, publishing or
// retiring it depending on m.state.
func (q *Queue) storeMeta(i uint64, m metaInfo) {
	q.meta[i&(q.layout.n-1)].StoreRelease(q.layout.packMeta(m))
}
