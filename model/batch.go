package model

import (
	"database/sql"
	"time"
)

type BatchEntity struct {
	ID        uint64 `db:"id" json:"id"`
	BatchName string `db:"batch_name" json:"batch_name"`
	BatchCode string `db:"batch_code" json:"batch_code"`
	Status    string `db:"status" json:"status"`
}

// AssignmentEntity is a row of order_batch_assignments joined with its batch.
type AssignmentEntity struct {
	ID         uint64         `db:"id" json:"id"`
	OrderID    uint64         `db:"order_id" json:"order_id"`
	BatchID    uint64         `db:"batch_id" json:"batch_id"`
	BatchName  string         `db:"batch_name" json:"batch_name"`
	AssignedBy uint64         `db:"assigned_by" json:"assigned_by"`
	Notes      sql.NullString `db:"notes" json:"-"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

// AssignmentSize is a row of order_batch_size_distributions joined with its assignment.
type AssignmentSize struct {
	ID             uint64 `db:"id"`
	AssignmentID   uint64 `db:"order_batch_assignment_id"`
	OrderID        uint64 `db:"order_id"`
	BatchID        uint64 `db:"batch_id"`
	Size           string `db:"size_name"`
	Quantity       int    `db:"quantity"`
	PickedQuantity int    `db:"picked_quantity"`
	Version        int64  `db:"version"`
}
