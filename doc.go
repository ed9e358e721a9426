// Package bq implements a bounded, lock-free, multi-producer/
// multi-consumer queue of variable-length byte payloads.
//
// # Algorithm
//
// The queue pairs a metadata ring (N atomic words, one per slot) with a
// payload ring (B bytes). Four atomic cursors — nil_begin, nil_end,
// val_begin, val_end — coordinate producers and consumers without a mutex
// or a condition variable. A producer reserves a slot plus a byte range by
// winning a CAS on nil_begin, writes the payload, then release-stores slot
// metadata to publish it. A consumer wins a CAS on val_begin to claim a
// published slot, reads its payload, then release-stores the slot back to
// empty. nil_end and val_end are advisory upper bounds that any thread may
// help advance (slide-forward) by inspecting slot state — so a slow
// producer or consumer never blocks others from publishing progress on
// cursors it doesn't own.
//
// A one-bit round (generation parity) on every slot, paired with an extra
// high bit on each cursor subfield, disambiguates "this slot, current
// generation" from "this slot, previous generation" after the ring wraps.
//
// # Quick Start
//
//	q := bq.New(1024, 16384).Build()
//
//	// Producer
//	if err := q.TryPush([]byte("hello")); err != nil {
//	    // bq.IsWouldBlock(err): no room, retry later
//	}
//
//	// Consumer
//	dst := make([]byte, q.MaxSize())
//	n, err := q.TryPop(dst)
//	if err == nil {
//	    fmt.Println(string(dst[:n]))
//	}
//
// # Bulk Consumption
//
// A consumer that wants to drain everything currently published without
// re-contending val_begin per element can claim a batch up front:
//
//	b := q.PopBulk()
//	for !b.Empty() {
//	    n, err := q.ConsumeFromBulk(&b, dst)
//	    if err != nil {
//	        break
//	    }
//	    process(dst[:n])
//	}
//
// A Bulk handle is owned by the consumer that obtained it; it must not be
// shared across goroutines.
//
// # Single-Producer / Single-Consumer Hints
//
// If only one goroutine will ever call TryPush, declare it with
// SingleProducer(); TryPush then skips the nil_begin CAS retry loop in
// favor of a plain load/store, since there is no contention to resolve.
// SingleConsumer() does the same for TryPop/PopBulk on val_begin. Both default to off (full MPMC).
//
//	q := bq.New(1024, 4096).SingleProducer().SingleConsumer().Build()
//
// # Error Handling
//
// TryPush/TryPop return ErrWouldBlock for back-pressure (full/empty) —
// retry with backoff, don't treat it as a failure. They return
// *PreconditionError for caller contract violations (zero or oversized
// push, undersized pop destination) — a bug at the call site, not
// something to retry blindly. A slot observed in a state inconsistent
// with the cursor that granted access to it panics: that can only happen
// if the algorithm itself is broken or run under a weaker-than-acquire/
// release memory model.
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.TryPush(payload)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !bq.IsWouldBlock(err) {
//	        return err // precondition violation, not back-pressure
//	    }
//	    backoff.Wait()
//	}
//
// # Dependencies
//
// This package uses code.hybscloud.com/atomix for explicit-ordering
// atomics on the cursor and slot-metadata words, code.hybscloud.com/spin
// for CAS-retry backoff in TryPush/TryPop/PopBulk, and
// code.hybscloud.com/iox for ErrWouldBlock/Backoff, matching the rest of
// this module family.
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but
// cannot observe the happens-before relationships this queue establishes
// purely through acquire/release orderings on independent atomic words.
// Concurrent tests that rely on those orderings for correctness (not just
// for liveness) are built with `//go:build !race`.
package bq
