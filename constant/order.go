package constant

type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "pending"
	OrderStatusInProduction      OrderStatus = "in_production"
	OrderStatusQualityCheck      OrderStatus = "quality_check"
	OrderStatusPartialDispatched OrderStatus = "partial_dispatched"
	OrderStatusDispatched        OrderStatus = "dispatched"
)

var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:           1,
	OrderStatusInProduction:      2,
	OrderStatusQualityCheck:      3,
	OrderStatusPartialDispatched: 4,
	OrderStatusDispatched:        5,
}

// Rank orders statuses by how far the order has progressed. Unknown statuses rank 0.
func (s OrderStatus) Rank() int {
	return orderStatusRank[s]
}

// AdvanceStatus returns next when it is further along than current, otherwise current.
func AdvanceStatus(current, next OrderStatus) OrderStatus {
	if next.Rank() > current.Rank() {
		return next
	}
	return current
}

// QCStatus is the order-level quality control state. It is derived on every read and never stored.
type QCStatus string

const (
	QCStatusPending   QCStatus = "pending"
	QCStatusPartial   QCStatus = "partial"
	QCStatusCompleted QCStatus = "completed"
)

type DispatchStatus string

const (
	DispatchStatusPending   DispatchStatus = "pending"
	DispatchStatusShipped   DispatchStatus = "shipped"
	DispatchStatusDelivered DispatchStatus = "delivered"
)

const BatchStatusActive = "active"
