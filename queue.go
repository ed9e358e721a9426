package bq

import (
	"code.hybscloud.com/atomix"
)

const (
	stateNIL = 0
	stateVAL = 1
)

// Queue is a bounded lock-free MPMC queue of variable-length byte blobs.
// The zero value is not usable; construct one with New(...).Build().
type Queue struct {
	layout *layout

	_        pad
	nilBegin atomix.Uint64 // producer reservation cursor
	_        pad
	nilEnd   atomix.Uint64 // advisory producer bound, advanced by slide-forward
	_        pad
	valBegin atomix.Uint64 // consumer claim cursor
	_        pad
	valEnd   atomix.Uint64 // advisory consumer bound, advanced by slide-forward
	_        pad

	meta    []atomix.Uint64 // N slot metadata words
	_       pad
	payload []byte // B payload bytes

	slideLimit uint64
	singleProd bool
	singleCons bool
}

func newQueue(l *layout, slideLimit uint64, singleProd, singleCons bool) *Queue {
	q := &Queue{
		layout:     l,
		meta:       make([]atomix.Uint64, l.n),
		payload:    make([]byte, l.b),
		slideLimit: slideLimit,
		singleProd: singleProd,
		singleCons: singleCons,
	}
	// Every slot starts NIL, round 0 — the zero word already encodes that.
	// nil_end starts at (N, B): producers may fill the whole ring before
	// any slide-forward is needed. val_begin/val_end/nil_begin start at 0.
	q.nilEnd.StoreRelease(l.packNilSlider(nilSlider{metaIdx: l.n, dataIdx: l.b}))
	return q
}

// MaxSize returns the largest payload size this instantiation accepts,
// min(B, 2^size_bits - 1).
func (q *Queue) MaxSize() int {
	return int(q.layout.maxSize)
}

// Cap returns N, the slot capacity.
func (q *Queue) Cap() int {
	return int(q.layout.n)
}
