package parcel

import (
	"errors"
	"fmt"
)

// ErrTransitionRejected is the root of the rejection taxonomy. Every guard
// failure unwraps to it, so callers can classify any rejected transition with
// errors.Is(err, ErrTransitionRejected) or narrow to a specific reason below.
var ErrTransitionRejected = errors.New("transition rejected")

// Rejection reasons. Each wraps ErrTransitionRejected so both the broad and
// the narrow classification work through errors.Is.
var (
	// ErrWrongStatus indicates the parcel is not in a source status the
	// attempted transition accepts.
	ErrWrongStatus = fmt.Errorf("%w: wrong status", ErrTransitionRejected)

	// ErrWrongActor indicates the acting party is not the one bound to
	// perform this transition.
	ErrWrongActor = fmt.Errorf("%w: wrong actor", ErrTransitionRejected)

	// ErrAlreadyBound indicates the rider binding the transition would set
	// is already held by another rider.
	ErrAlreadyBound = fmt.Errorf("%w: already bound", ErrTransitionRejected)

	// ErrNotBound indicates the transition requires a rider binding that has
	// not been made yet.
	ErrNotBound = fmt.Errorf("%w: not bound", ErrTransitionRejected)

	// ErrZoneMismatch indicates the rider's home zone does not match the
	// parcel's delivery zone and no admin override was given.
	ErrZoneMismatch = fmt.Errorf("%w: zone mismatch", ErrTransitionRejected)

	// ErrVerificationRequired indicates a high-value parcel cannot advance
	// past a handoff gate before its code has been verified.
	ErrVerificationRequired = fmt.Errorf("%w: verification required", ErrTransitionRejected)

	// ErrAlreadyVerified indicates the handoff code was already verified;
	// the verified flag is monotonic and never flips back.
	ErrAlreadyVerified = fmt.Errorf("%w: already verified", ErrTransitionRejected)

	// ErrCodeMismatch indicates the submitted handoff code does not match
	// the stored one. A mismatch never mutates the parcel.
	ErrCodeMismatch = fmt.Errorf("%w: code mismatch", ErrTransitionRejected)

	// ErrConflictLost indicates an optimistic binding race lost to a
	// concurrent actor. Callers should treat this as "try a different
	// parcel", not retry the same one.
	ErrConflictLost = fmt.Errorf("%w: conflict lost", ErrTransitionRejected)
)

// TransitionRejectedError reports a rejected transition together with the
// specific guard that failed and a human-readable detail.
type TransitionRejectedError struct {
	Reason error
	Detail string
}

// NewTransitionRejectedError creates a rejection for the given reason.
// The reason must be one of the sentinel reasons declared in this package.
func NewTransitionRejectedError(reason error, detail string) *TransitionRejectedError {
	return &TransitionRejectedError{Reason: reason, Detail: detail}
}

func (e *TransitionRejectedError) Error() string {
	if e.Detail == "" {
		return e.Reason.Error()
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func (e *TransitionRejectedError) Unwrap() error {
	return e.Reason
}
