package model

type RecordPickRequest struct {
	AssignmentID uint64 `json:"-"`
	Size         string `json:"size" validate:"required,size"`
	Delta        int    `json:"delta" validate:"ne=0"`
	Version      int64  `json:"version" validate:"gte=0"`
}

type RecordPickResponse struct {
	AssignmentID    uint64 `json:"assignment_id"`
	Size            string `json:"size"`
	Picked          int    `json:"picked"`
	EffectivePicked int    `json:"effective_picked"`
	Clamped         bool   `json:"clamped"`
	Version         int64  `json:"version"`
}

type AssignmentDetail struct {
	ID        uint64                 `json:"id"`
	OrderID   uint64                 `json:"order_id"`
	BatchID   uint64                 `json:"batch_id"`
	BatchName string                 `json:"batch_name"`
	Sizes     []AssignmentSizeDetail `json:"sizes"`
}

type AssignmentSizeDetail struct {
	Size            string `json:"size"`
	Allocated       int    `json:"allocated"`
	Picked          int    `json:"picked"`
	EffectivePicked int    `json:"effective_picked"`
	PendingPick     int    `json:"pending_pick"`
	Approved        int    `json:"approved"`
	Rejected        int    `json:"rejected"`
	Version         int64  `json:"version"`
}

type PickingOrder struct {
	OrderID      uint64              `json:"order_id"`
	OrderNumber  string              `json:"order_number"`
	CustomerName string              `json:"customer_name"`
	Assignments  []PickingAssignment `json:"assignments"`
}

type PickingAssignment struct {
	AssignmentID    uint64 `json:"assignment_id"`
	BatchID         uint64 `json:"batch_id"`
	Allocated       int    `json:"allocated"`
	Picked          int    `json:"picked"`
	EffectivePicked int    `json:"effective_picked"`
}

type BackfillResponse struct {
	Assignments int `json:"assignments"`
	Sizes       int `json:"sizes"`
}
