package ledger

// EventKind identifies a quantity movement.
type EventKind int

const (
	EventAllocated EventKind = iota + 1
	EventPicked
	EventReviewed
	EventDispatched
)

// Event is one quantity movement for a size. Quantity is used by allocated,
// picked and dispatched events. Approved and Rejected by reviewed events.
type Event struct {
	Kind     EventKind
	Size     string
	Quantity int
	Approved int
	Rejected int
}

// QuantityLedger is the reconciled position of one size of an order.
type QuantityLedger struct {
	Size       string `json:"size"`
	Total      int    `json:"total"`
	Allocated  int    `json:"allocated"`
	Picked     int    `json:"picked"`
	Approved   int    `json:"approved"`
	Rejected   int    `json:"rejected"`
	Dispatched int    `json:"dispatched"`
}

func (q QuantityLedger) Undistributed() int { return q.Total - q.Allocated }

func (q QuantityLedger) EffectivePicked() int { return EffectivePicked(q.Picked, q.Rejected) }

func (q QuantityLedger) AwaitingReview() int {
	return SizeState{Picked: q.Picked, Approved: q.Approved, Rejected: q.Rejected}.AwaitingReview()
}

func (q QuantityLedger) Shippable() int {
	if n := q.Approved - q.Dispatched; n > 0 {
		return n
	}
	return 0
}

// Reduce folds an event log into one QuantityLedger per size, sorted by size.
// Sizes that appear only in events are reported with a zero total.
func Reduce(sizes SizeLedger, events []Event) []QuantityLedger {
	bySize := make(map[string]*QuantityLedger, len(sizes))
	get := func(size string) *QuantityLedger {
		q, ok := bySize[size]
		if !ok {
			q = &QuantityLedger{Size: size}
			bySize[size] = q
		}
		return q
	}
	for size, total := range sizes {
		get(size).Total = total
	}

	for _, e := range events {
		q := get(e.Size)
		switch e.Kind {
		case EventAllocated:
			q.Allocated += e.Quantity
		case EventPicked:
			q.Picked += e.Quantity
		case EventReviewed:
			q.Approved += e.Approved
			q.Rejected += e.Rejected
		case EventDispatched:
			q.Dispatched += e.Quantity
		}
	}

	keys := make([]string, 0, len(bySize))
	for k := range bySize {
		keys = append(keys, k)
	}
	SortSizes(keys)

	out := make([]QuantityLedger, 0, len(keys))
	for _, k := range keys {
		out = append(out, *bySize[k])
	}
	return out
}
