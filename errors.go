package bq

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For TryPush: the ring has no room for the element (back-pressure).
// For TryPop / ConsumeFromBulk: nothing is published yet (empty).
//
// ErrWouldBlock is a control flow signal, not a failure: it is returned on
// every full/empty hot-path check and callers are expected to retry rather
// than propagate it. This is an alias for [iox.ErrWouldBlock] for ecosystem
// consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal, not a failure.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}

// PreconditionError reports a caller contract violation: an out-of-range
// push size, or a pop destination too small for the element it claimed.
//
// PreconditionError is distinct from ErrWouldBlock on purpose — it is never
// benign back-pressure, and callers should not retry the same call without
// fixing the argument that triggered it.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("bq: %s: %s", e.Op, e.Msg)
}

func preconditionf(op, format string, args ...any) error {
	return &PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// IsPrecondition reports whether err is a *PreconditionError.
func IsPrecondition(err error) bool {
	_, ok := err.(*PreconditionError)
	return ok
}

// invariantViolation panics with a fatal logic error: a slot was observed
// in a state inconsistent with the cursor that granted access to it. This
// can only happen if the algorithm is misimplemented or the memory model
// is weaker than acquire/release on aligned words, so it is not
// recoverable.
func invariantViolation(format string, args ...any) {
	panic(fmt.Sprintf("bq: invariant violation: "+format, args...))
}
