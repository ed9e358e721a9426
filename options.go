package bq

// Builder configures and creates a Queue with a fluent API, mirroring the
// teacher library's builder: validate everything at Build() time and panic
// on a misconfiguration, since these are construction-time programmer
// errors rather than runtime back-pressure.
//
// Example:
//
//	q := bq.New(1024, 16384).Build()
//	q := bq.New(4, 8).Width(8).Build()                        // bit-field boundary case
//	q := bq.New(1024, 16384).SingleProducer().SingleConsumer().Build()
type Builder struct {
	n, b       uint64
	w          uint64
	slideLimit uint64
	singleProd bool
	singleCons bool
}

// New creates a queue builder for N slots and B payload bytes. Both must
// be powers of two (N >= 2, B >= 1); this is checked at Build() time so
// chained configuration methods can run first.
func New(n, b int) *Builder {
	return &Builder{n: uint64(n), b: uint64(b), w: 64}
}

// Width sets the atomic word width, W, in bits. Must be 8, 16, 32, or 64.
// Default is 64. Narrower widths shrink MaxSize and are mainly useful for
// exercising the bit-packing boundary with a small N and B.
func (bld *Builder) Width(w int) *Builder {
	bld.w = uint64(w)
	return bld
}

// SlideLimit bounds how many slots a single slide-forward call may help
// advance. Zero (the default) means unbounded.
func (bld *Builder) SlideLimit(limit int) *Builder {
	bld.slideLimit = uint64(limit)
	return bld
}

// SingleProducer declares that only one goroutine will ever call TryPush.
// This lets TryPush skip the nil_begin CAS retry loop in favor of a plain
// load/store, since there is no contention left to resolve.
func (bld *Builder) SingleProducer() *Builder {
	bld.singleProd = true
	return bld
}

// SingleConsumer declares that only one goroutine will ever call TryPop,
// PopBulk, or ConsumeFromBulk. Symmetric with SingleProducer on val_begin.
func (bld *Builder) SingleConsumer() *Builder {
	bld.singleCons = true
	return bld
}

// Build validates the configuration and constructs the Queue.
// Panics if N or B is not a legal power of two, or if W is too narrow to
// hold begin/size/state/round for the given N and B.
func (bld *Builder) Build() *Queue {
	l, err := newLayout(bld.n, bld.b, bld.w)
	if err != nil {
		panic(err.Error())
	}

	q := newQueue(l, bld.slideLimit, bld.singleProd, bld.singleCons)
	return q
}

// pad is cache-line padding to prevent false sharing between the four
// independently hot cursors and the two rings.
type pad [64]byte
