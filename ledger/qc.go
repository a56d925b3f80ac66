package ledger

import "github.com/muhammadheryan/garment-erp/constant"

// ValidateReview checks that adding the given deltas keeps approved+rejected
// within picked.
func ValidateReview(s SizeState, approved, rejected int) error {
	if approved < 0 || rejected < 0 {
		return ErrNegativeQuantity
	}
	if approved == 0 && rejected == 0 {
		return ErrEmptyReview
	}
	if s.Reviewed()+approved+rejected > s.Picked {
		return &OverReviewError{
			Size:      s.Size,
			Picked:    s.Picked,
			Reviewed:  s.Reviewed(),
			Requested: approved + rejected,
		}
	}
	return nil
}

// AssignmentQC is the QC view of one batch assignment.
type AssignmentQC struct {
	AssignmentID uint64
	Sizes        []SizeState
}

// Totals sums the assignment's sizes into a single state.
func (a AssignmentQC) Totals() SizeState {
	var t SizeState
	for _, s := range a.Sizes {
		t.Allocated += s.Allocated
		t.Picked += s.Picked
		t.Approved += s.Approved
		t.Rejected += s.Rejected
	}
	return t
}

// Complete is the assignment-level qcComplete flag.
func (a AssignmentQC) Complete() bool {
	return a.Totals().QCComplete()
}

// HasReview reports whether any review exists for the assignment.
func (a AssignmentQC) HasReview() bool {
	return a.Totals().Reviewed() > 0
}

// OrderQCStatus classifies an order from its assignments: pending while
// nothing is reviewed, completed once every assignment is complete, partial
// in between.
func OrderQCStatus(assignments []AssignmentQC) constant.QCStatus {
	reviewed := false
	complete := len(assignments) > 0
	for _, a := range assignments {
		if a.HasReview() {
			reviewed = true
		}
		if !a.Complete() {
			complete = false
		}
	}
	switch {
	case !reviewed:
		return constant.QCStatusPending
	case complete:
		return constant.QCStatusCompleted
	}
	return constant.QCStatusPartial
}
