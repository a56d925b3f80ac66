package model

import "github.com/muhammadheryan/garment-erp/constant"

type AllocationRequest struct {
	BatchID  uint64 `json:"batch_id" validate:"required"`
	Size     string `json:"size" validate:"required,size"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type SaveDistributionRequest struct {
	OrderID     uint64              `json:"-"`
	Version     int64               `json:"version" validate:"gte=0"`
	Allocations []AllocationRequest `json:"allocations" validate:"required,min=1,dive"`
}

type DistributionResponse struct {
	OrderID     uint64               `json:"order_id"`
	OrderNumber string               `json:"order_number"`
	Status      constant.OrderStatus `json:"status"`
	Version     int64                `json:"version"`
	Sizes       []DistributionSize   `json:"sizes"`
	Batches     []BatchDistribution  `json:"batches"`
}

type DistributionSize struct {
	Size      string `json:"size"`
	Total     int    `json:"total"`
	Allocated int    `json:"allocated"`
	Remaining int    `json:"remaining"`
}

type BatchDistribution struct {
	AssignmentID uint64                  `json:"assignment_id"`
	BatchID      uint64                  `json:"batch_id"`
	BatchName    string                  `json:"batch_name"`
	Sizes        []BatchSizeDistribution `json:"sizes"`
}

type BatchSizeDistribution struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Picked   int    `json:"picked"`
	// Max is the largest value this batch may be set to without double counting itself.
	Max int `json:"max"`
}
