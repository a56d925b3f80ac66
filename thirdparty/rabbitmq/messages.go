package rabbitmq

import "time"

const (
	// EventsExchange is a topic exchange carrying every reconciliation event.
	EventsExchange = "erp_events"

	RoutingDistributionSaved = "distribution.saved"
	RoutingQCReviewed        = "qc.reviewed"
	RoutingChallanGenerated  = "challan.generated"
	RoutingDispatchShipped   = "dispatch.shipped"
	RoutingCourierDelivered  = "courier.delivered"

	CourierDeliveryQueue = "courier_delivery_queue"
)

type DistributionSavedMessage struct {
	OrderID     uint64    `json:"order_id"`
	Version     int64     `json:"version"`
	Assignments int       `json:"assignments"`
	Allocated   int       `json:"allocated"`
	SavedBy     uint64    `json:"saved_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type QCReviewedMessage struct {
	OrderID      uint64    `json:"order_id"`
	AssignmentID uint64    `json:"assignment_id"`
	ReviewID     uint64    `json:"review_id"`
	Size         string    `json:"size"`
	Approved     int       `json:"approved"`
	Rejected     int       `json:"rejected"`
	ReviewedBy   uint64    `json:"reviewed_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// ChallanGeneratedMessage is consumed by the document renderer.
type ChallanGeneratedMessage struct {
	DispatchOrderID uint64         `json:"dispatch_order_id"`
	OrderID         uint64         `json:"order_id"`
	ChallanNumber   string         `json:"challan_number"`
	Items           map[string]int `json:"items"`
	CreatedBy       uint64         `json:"created_by"`
	OccurredAt      time.Time      `json:"occurred_at"`
}

type DispatchShippedMessage struct {
	DispatchOrderID uint64    `json:"dispatch_order_id"`
	OrderID         uint64    `json:"order_id"`
	CourierName     string    `json:"courier_name"`
	TrackingNumber  string    `json:"tracking_number"`
	OrderStatus     string    `json:"order_status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// CourierDeliveredMessage is published by the courier integration when a
// parcel has been handed over to the customer.
type CourierDeliveredMessage struct {
	DispatchOrderID uint64    `json:"dispatch_order_id"`
	TrackingNumber  string    `json:"tracking_number"`
	DeliveredAt     time.Time `json:"delivered_at"`
}
