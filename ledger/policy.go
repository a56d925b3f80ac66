package ledger

import "strings"

// Policy decides what happens to a quantity outside its legal window.
type Policy string

const (
	// PolicyClamp pulls the value into range and flags the result as clamped.
	PolicyClamp Policy = "clamp"
	// PolicyReject refuses the input with ErrOutOfRange.
	PolicyReject Policy = "reject"
)

// ParsePolicy maps a config value to a Policy, defaulting to PolicyClamp.
func ParsePolicy(s string) Policy {
	if strings.EqualFold(strings.TrimSpace(s), string(PolicyReject)) {
		return PolicyReject
	}
	return PolicyClamp
}

// Apply returns ErrOutOfRange when the policy rejects clamped input.
func (p Policy) Apply(clamped bool) error {
	if clamped && p == PolicyReject {
		return ErrOutOfRange
	}
	return nil
}

func clamp(v, lo, hi int) (int, bool) {
	if hi < lo {
		hi = lo
	}
	switch {
	case v < lo:
		return lo, true
	case v > hi:
		return hi, true
	}
	return v, false
}
