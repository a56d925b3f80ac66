package ledger_test

import (
	"testing"

	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/ledger"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {
	sizes := ledger.SizeLedger{"M": 10, "S": 4}
	events := []ledger.Event{
		{Kind: ledger.EventAllocated, Size: "M", Quantity: 6},
		{Kind: ledger.EventAllocated, Size: "M", Quantity: 4},
		{Kind: ledger.EventAllocated, Size: "S", Quantity: 4},
		{Kind: ledger.EventPicked, Size: "M", Quantity: 9},
		{Kind: ledger.EventReviewed, Size: "M", Approved: 5, Rejected: 1},
		{Kind: ledger.EventReviewed, Size: "M", Approved: 2},
		{Kind: ledger.EventDispatched, Size: "M", Quantity: 4},
		{Kind: ledger.EventPicked, Size: "XL", Quantity: 1},
	}

	got := ledger.Reduce(sizes, events)

	require.Equal(t, []ledger.QuantityLedger{
		{Size: "S", Total: 4, Allocated: 4},
		{Size: "M", Total: 10, Allocated: 10, Picked: 9, Approved: 7, Rejected: 1, Dispatched: 4},
		{Size: "XL", Picked: 1},
	}, got)

	m := got[1]
	require.Equal(t, 0, m.Undistributed())
	require.Equal(t, 8, m.EffectivePicked())
	require.Equal(t, 1, m.AwaitingReview())
	require.Equal(t, 3, m.Shippable())
}

// Order of 10 M: distribute, pick, review, dispatch in full.
func TestSimpleFlow(t *testing.T) {
	sizes := ledger.SizeLedger{"M": 10}
	plan := []ledger.Allocation{{BatchID: 1, Size: "M", Quantity: 10}}
	require.NoError(t, ledger.ValidateDistribution(sizes, plan))

	state := ledger.SizeState{Size: "M", Allocated: 10}
	state.Picked, _ = ledger.ClampPick(state, 10)
	require.Equal(t, 10, state.Picked)

	require.NoError(t, ledger.ValidateReview(state, 8, 2))
	state.Approved, state.Rejected = 8, 2
	require.Equal(t, constant.QCStatusCompleted, ledger.OrderQCStatus([]ledger.AssignmentQC{{AssignmentID: 1, Sizes: []ledger.SizeState{state}}}))

	approved := map[string]int{"M": state.Approved}
	remaining := ledger.RemainingToDispatch(approved, nil)
	q, capped := ledger.CapDispatch(8, remaining["M"])
	require.Equal(t, 8, q)
	require.False(t, capped)

	dispatched := map[string]int{"M": q}
	require.Equal(t, constant.OrderStatusDispatched, ledger.DispatchStatus(ledger.Sum(approved), ledger.Sum(dispatched)))
	require.Equal(t, 0, ledger.RemainingToDispatch(approved, dispatched)["M"])

	got := ledger.Reduce(sizes, []ledger.Event{
		{Kind: ledger.EventAllocated, Size: "M", Quantity: 10},
		{Kind: ledger.EventPicked, Size: "M", Quantity: 10},
		{Kind: ledger.EventReviewed, Size: "M", Approved: 8, Rejected: 2},
		{Kind: ledger.EventDispatched, Size: "M", Quantity: 8},
	})
	require.Equal(t, 0, got[0].Shippable())
}
