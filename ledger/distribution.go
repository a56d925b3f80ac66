package ledger

import "fmt"

// Allocation is the quantity of one size assigned to one batch.
type Allocation struct {
	BatchID  uint64
	Size     string
	Quantity int
}

// ComputeRemaining returns, for every size in the ledger, the total minus what
// is already allocated across all batches. Allocations for sizes outside the
// ledger are ignored.
func ComputeRemaining(sizes SizeLedger, allocations []Allocation) map[string]int {
	remaining := make(map[string]int, len(sizes))
	for size, total := range sizes {
		remaining[size] = total
	}
	for _, a := range allocations {
		if _, ok := remaining[a.Size]; ok {
			remaining[a.Size] -= a.Quantity
		}
	}
	return remaining
}

// MaxForBatch is the largest quantity a batch may hold for a size while being
// edited: what is still undistributed plus what the batch already holds.
func MaxForBatch(remaining, current int) int {
	if limit := remaining + current; limit > 0 {
		return limit
	}
	return 0
}

// ValidateDistribution accepts an allocation plan only if it distributes every
// ordered unit exactly once.
func ValidateDistribution(sizes SizeLedger, allocations []Allocation) error {
	type key struct {
		batch uint64
		size  string
	}
	seen := make(map[key]struct{}, len(allocations))
	for _, a := range allocations {
		if _, ok := sizes[a.Size]; !ok {
			return &ValidationError{Size: a.Size, Reason: fmt.Sprintf("size %s is not part of the order", a.Size)}
		}
		if a.Quantity < 0 {
			return &ValidationError{Size: a.Size, Reason: fmt.Sprintf("size %s has a negative quantity for batch %d", a.Size, a.BatchID)}
		}
		k := key{batch: a.BatchID, size: a.Size}
		if _, dup := seen[k]; dup {
			return &ValidationError{Size: a.Size, Reason: fmt.Sprintf("size %s is allocated twice to batch %d", a.Size, a.BatchID)}
		}
		seen[k] = struct{}{}
	}

	remaining := ComputeRemaining(sizes, allocations)
	for _, size := range sortedKeys(remaining) {
		if remaining[size] != 0 {
			return &ValidationError{Size: size, Remaining: remaining[size]}
		}
	}
	return nil
}
