package model

import (
	"database/sql"
	"time"

	"github.com/muhammadheryan/garment-erp/constant"
)

type DispatchOrderEntity struct {
	ID             uint64                  `db:"id" json:"id"`
	OrderID        uint64                  `db:"order_id" json:"order_id"`
	ChallanNumber  string                  `db:"challan_number" json:"challan_number"`
	Status         constant.DispatchStatus `db:"status" json:"status"`
	CourierName    sql.NullString          `db:"courier_name" json:"-"`
	TrackingNumber sql.NullString          `db:"tracking_number" json:"-"`
	Notes          string                  `db:"notes" json:"notes"`
	CreatedBy      uint64                  `db:"created_by" json:"created_by"`
	CreatedAt      time.Time               `db:"created_at" json:"created_at"`
	ShippedAt      sql.NullTime            `db:"shipped_at" json:"-"`
	DeliveredAt    sql.NullTime            `db:"delivered_at" json:"-"`
}

type DispatchItemEntity struct {
	ID              uint64 `db:"id" json:"-"`
	DispatchOrderID uint64 `db:"dispatch_order_id" json:"-"`
	OrderID         uint64 `db:"order_id" json:"-"`
	Size            string `db:"size_name" json:"size"`
	Quantity        int    `db:"quantity" json:"quantity"`
}

type ChallanItemRequest struct {
	Size     string `json:"size" validate:"required,size"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

type GenerateChallanRequest struct {
	OrderID        uint64               `json:"-"`
	IdempotencyKey string               `json:"-"`
	Items          []ChallanItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes          string               `json:"notes" validate:"max=1000"`
}

type ChallanResponse struct {
	DispatchOrderID uint64                  `json:"dispatch_order_id"`
	OrderID         uint64                  `json:"order_id"`
	ChallanNumber   string                  `json:"challan_number"`
	Status          constant.DispatchStatus `json:"status"`
	Items           []ChallanItem           `json:"items"`
	Replayed        bool                    `json:"replayed"`
}

type ChallanItem struct {
	Size      string `json:"size"`
	Requested int    `json:"requested"`
	Quantity  int    `json:"quantity"`
	Capped    bool   `json:"capped"`
}

type MarkDispatchedRequest struct {
	DispatchOrderID uint64 `json:"-"`
	CourierName     string `json:"courier_name" validate:"required,max=100"`
	TrackingNumber  string `json:"tracking_number" validate:"required,max=100"`
}

type MarkDispatchedResponse struct {
	DispatchOrderID uint64                  `json:"dispatch_order_id"`
	OrderID         uint64                  `json:"order_id"`
	Status          constant.DispatchStatus `json:"status"`
	OrderStatus     constant.OrderStatus    `json:"order_status"`
	ApprovedTotal   int                     `json:"approved_total"`
	DispatchedTotal int                     `json:"dispatched_total"`
}

type DispatchSummary struct {
	OrderID         uint64               `json:"order_id"`
	OrderNumber     string               `json:"order_number"`
	Status          constant.OrderStatus `json:"status"`
	ApprovedTotal   int                  `json:"approved_total"`
	DispatchedTotal int                  `json:"dispatched_total"`
	Remaining       map[string]int       `json:"remaining"`
	Sizes           []DispatchSize       `json:"sizes"`
	DispatchOrders  []DispatchOrderView  `json:"dispatch_orders"`
}

type DispatchSize struct {
	Size       string `json:"size"`
	Approved   int    `json:"approved"`
	Dispatched int    `json:"dispatched"`
	Remaining  int    `json:"remaining"`
}

type DispatchOrderView struct {
	ID             uint64                  `json:"id"`
	ChallanNumber  string                  `json:"challan_number"`
	Status         constant.DispatchStatus `json:"status"`
	CourierName    string                  `json:"courier_name,omitempty"`
	TrackingNumber string                  `json:"tracking_number,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	ShippedAt      *time.Time              `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time              `json:"delivered_at,omitempty"`
}

// View converts the row into its API shape.
func (d DispatchOrderEntity) View() DispatchOrderView {
	v := DispatchOrderView{
		ID:             d.ID,
		ChallanNumber:  d.ChallanNumber,
		Status:         d.Status,
		CourierName:    d.CourierName.String,
		TrackingNumber: d.TrackingNumber.String,
		CreatedAt:      d.CreatedAt,
	}
	if d.ShippedAt.Valid {
		t := d.ShippedAt.Time
		v.ShippedAt = &t
	}
	if d.DeliveredAt.Valid {
		t := d.DeliveredAt.Time
		v.DeliveredAt = &t
	}
	return v
}
