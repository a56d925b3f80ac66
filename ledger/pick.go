package ledger

// SizeState is the running state of one size within one batch assignment.
type SizeState struct {
	Size      string
	Allocated int
	Picked    int
	Approved  int
	Rejected  int
}

// EffectivePicked is picked minus rejected. Rejected units go back to the
// picking pool, so only these count as picked work.
func EffectivePicked(picked, rejected int) int {
	if e := picked - rejected; e > 0 {
		return e
	}
	return 0
}

func (s SizeState) EffectivePicked() int {
	return EffectivePicked(s.Picked, s.Rejected)
}

// Reviewed is the number of picked units that already carry a QC verdict.
func (s SizeState) Reviewed() int {
	return s.Approved + s.Rejected
}

// AwaitingReview is the number of picked units with no verdict yet.
func (s SizeState) AwaitingReview() int {
	if n := s.Picked - s.Reviewed(); n > 0 {
		return n
	}
	return 0
}

// Unapproved is the number of picked units that still lack an approval,
// including rejected units that went back to the pool. It is not the review
// allowance: ValidateReview accepts at most AwaitingReview more units, and
// rejected units only come back into review once they are picked again.
func (s SizeState) Unapproved() int {
	if n := s.Picked - s.Approved; n > 0 {
		return n
	}
	return 0
}

// PendingPick is how many allocated units still have to be picked, counting
// rejected units that must be picked again.
func (s SizeState) PendingPick() int {
	if n := s.Allocated - s.EffectivePicked(); n > 0 {
		return n
	}
	return 0
}

// QCComplete is true once every picked unit has been approved or rejected.
func (s SizeState) QCComplete() bool {
	return s.Picked > 0 && s.Reviewed() == s.Picked
}

// PickWindow is the legal range for the raw picked counter. Units with a QC
// verdict cannot be un-picked, and rejected units may be picked again on top
// of the allocation.
func (s SizeState) PickWindow() (lo, hi int) {
	return s.Reviewed(), s.Allocated + s.Rejected
}

// ClampPick applies delta to the picked counter and clamps the result into
// PickWindow.
func ClampPick(s SizeState, delta int) (int, bool) {
	lo, hi := s.PickWindow()
	return clamp(s.Picked+delta, lo, hi)
}

// ApplyPick is ClampPick under a policy.
func ApplyPick(s SizeState, delta int, policy Policy) (int, bool, error) {
	picked, clamped := ClampPick(s, delta)
	if err := policy.Apply(clamped); err != nil {
		return s.Picked, clamped, err
	}
	return picked, clamped, nil
}
