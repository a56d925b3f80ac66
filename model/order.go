package model

import "github.com/muhammadheryan/garment-erp/constant"

type OrderEntity struct {
	ID           uint64               `db:"id" json:"id"`
	OrderNumber  string               `db:"order_number" json:"order_number"`
	CustomerName string               `db:"customer_name" json:"customer_name"`
	Status       constant.OrderStatus `db:"status" json:"status"`
	Version      int64                `db:"version" json:"version"`
}

// SizeQuantity is a (size, quantity) pair, used for the size ledger and for per-size sums.
type SizeQuantity struct {
	Size     string `db:"size_name" json:"size"`
	Quantity int    `db:"quantity" json:"quantity"`
}

// QuantityBySize turns (size, quantity) rows into a map, adding duplicates.
func QuantityBySize(rows []SizeQuantity) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Size] += r.Quantity
	}
	return out
}

type OrderLedgerResponse struct {
	OrderID     uint64               `json:"order_id"`
	OrderNumber string               `json:"order_number"`
	Status      constant.OrderStatus `json:"status"`
	QCStatus    constant.QCStatus    `json:"qc_status"`
	Sizes       []OrderLedgerSize    `json:"sizes"`
}

type OrderLedgerSize struct {
	Size            string `json:"size"`
	Total           int    `json:"total"`
	Allocated       int    `json:"allocated"`
	Undistributed   int    `json:"undistributed"`
	Picked          int    `json:"picked"`
	EffectivePicked int    `json:"effective_picked"`
	Approved        int    `json:"approved"`
	Rejected        int    `json:"rejected"`
	AwaitingReview  int    `json:"awaiting_review"`
	Dispatched      int    `json:"dispatched"`
	Shippable       int    `json:"shippable"`
}
