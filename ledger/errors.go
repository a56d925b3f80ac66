package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned under PolicyReject when an input had to be clamped.
	ErrOutOfRange = errors.New("quantity out of range")
	// ErrEmptyReview is returned when a review carries no approved or rejected units.
	ErrEmptyReview = errors.New("review must approve or reject at least one unit")
	// ErrNegativeQuantity is returned for negative review or dispatch quantities.
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// ValidationError reports a batch distribution that cannot be accepted.
type ValidationError struct {
	Size      string
	Remaining int
	Reason    string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	if e.Remaining < 0 {
		return fmt.Sprintf("size %s exceeds total by %d", e.Size, -e.Remaining)
	}
	return fmt.Sprintf("size %s has %d remaining", e.Size, e.Remaining)
}

// OverReviewError reports a review that would push approved+rejected above picked.
type OverReviewError struct {
	Size      string
	Picked    int
	Reviewed  int
	Requested int
}

func (e *OverReviewError) Error() string {
	return fmt.Sprintf("size %s: %d picked, %d already reviewed, cannot review %d more",
		e.Size, e.Picked, e.Reviewed, e.Requested)
}
