package ledger

import "github.com/muhammadheryan/garment-erp/constant"

// RemainingToDispatch returns approved minus dispatched per size, keeping only
// sizes with something left to ship.
func RemainingToDispatch(approved, dispatched map[string]int) map[string]int {
	remaining := make(map[string]int, len(approved))
	for size, a := range approved {
		if r := a - dispatched[size]; r > 0 {
			remaining[size] = r
		}
	}
	return remaining
}

// CapDispatch limits a requested challan quantity to what remains.
func CapDispatch(requested, remaining int) (int, bool) {
	if remaining < 0 {
		remaining = 0
	}
	return clamp(requested, 0, remaining)
}

// DispatchStatus is the order status after a shipment.
func DispatchStatus(approvedTotal, dispatchedTotal int) constant.OrderStatus {
	if dispatchedTotal >= approvedTotal {
		return constant.OrderStatusDispatched
	}
	return constant.OrderStatusPartialDispatched
}

// Sum adds up a per-size map.
func Sum(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}
