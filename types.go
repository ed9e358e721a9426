package bq

// Pusher is the producer-side surface of a Queue.
type Pusher interface {
	// TryPush publishes one element. Returns ErrWouldBlock if full,
	// *PreconditionError if size is zero or exceeds MaxSize().
	TryPush(data []byte) error
	// MaxSize returns the largest payload size accepted.
	MaxSize() int
}

// Popper is the single-element consumer-side surface of a Queue.
type Popper interface {
	// TryPop consumes one element into dst. Returns ErrWouldBlock if
	// empty, *PreconditionError if dst is too small.
	TryPop(dst []byte) (int, error)
}

// BulkPopper is the batch consumer-side surface of a Queue.
type BulkPopper interface {
	// PopBulk claims every currently-published slot in one reservation.
	PopBulk() Bulk
	// ConsumeFromBulk drains one element from a batch obtained via
	// PopBulk. Returns ErrWouldBlock once the batch is empty.
	ConsumeFromBulk(b *Bulk, dst []byte) (int, error)
}

var (
	_ Pusher     = (*Queue)(nil)
	_ Popper     = (*Queue)(nil)
	_ BulkPopper = (*Queue)(nil)
)
