package batch

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/model"
	"github.com/muhammadheryan/garment-erp/utils/errors"
)

// BatchRepository covers the batch roster, order_batch_assignments and their
// per-size rows in order_batch_size_distributions.
type BatchRepository interface {
	ListActiveBatches(ctx context.Context) ([]model.BatchEntity, error)
	GetActiveBatchIDsTx(ctx context.Context, tx *sqlx.Tx, batchIDs []uint64) ([]uint64, error)

	GetAssignment(ctx context.Context, assignmentID uint64) (*model.AssignmentEntity, error)
	ListAssignmentsByOrder(ctx context.Context, orderID uint64) ([]model.AssignmentEntity, error)
	ListAssignmentsByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.AssignmentEntity, error)
	ListAssignmentsWithNotes(ctx context.Context) ([]model.AssignmentEntity, error)

	ListAssignmentSizes(ctx context.Context, assignmentID uint64) ([]model.AssignmentSize, error)
	ListAssignmentSizesForUpdateTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64) ([]model.AssignmentSize, error)
	ListAssignmentSizesByOrder(ctx context.Context, orderID uint64) ([]model.AssignmentSize, error)
	ListAssignmentSizesByOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.AssignmentSize, error)
	ListAllAssignmentSizes(ctx context.Context) ([]model.AssignmentSize, error)
	GetAssignmentSizeForUpdateTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64, size string) (*model.AssignmentSize, error)

	UpsertAssignmentTx(ctx context.Context, tx *sqlx.Tx, orderID, batchID, assignedBy uint64) (uint64, error)
	UpsertAssignmentSizeTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64, size string, quantity int) error
	DeleteAssignmentSizeTx(ctx context.Context, tx *sqlx.Tx, sizeID uint64) error
	DeleteAssignmentTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64) error
	UpdatePickedQuantityTx(ctx context.Context, tx *sqlx.Tx, sizeID uint64, picked int, version int64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewBatchRepository(conn *sqlx.DB) BatchRepository {
	return &SQL{conn: conn}
}

const (
	listActiveBatchesQuery = "SELECT id, batch_name, batch_code, status FROM batches WHERE status = ? ORDER BY batch_name"
	activeBatchIDsQuery    = "SELECT id FROM batches WHERE status = ? AND id IN (?)"

	assignmentBase = `SELECT a.id, a.order_id, a.batch_id, b.batch_name, a.assigned_by, a.notes, a.created_at
FROM order_batch_assignments a
JOIN batches b ON b.id = a.batch_id`

	sizeBase = `SELECT d.id, d.order_batch_assignment_id, a.order_id, a.batch_id, d.size_name, d.quantity, d.picked_quantity, d.version
FROM order_batch_size_distributions d
JOIN order_batch_assignments a ON a.id = d.order_batch_assignment_id`

	upsertAssignmentQuery = `INSERT INTO order_batch_assignments (order_id, batch_id, assigned_by, created_at)
VALUES (?, ?, ?, NOW())
ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id), assigned_by = VALUES(assigned_by)`

	// version is evaluated before quantity, so it compares against the old value.
	upsertAssignmentSizeQuery = `INSERT INTO order_batch_size_distributions (order_batch_assignment_id, size_name, quantity, picked_quantity, version)
VALUES (?, ?, ?, 0, 1)
ON DUPLICATE KEY UPDATE version = IF(quantity = VALUES(quantity), version, version + 1), quantity = VALUES(quantity)`

	deleteAssignmentSizeQuery  = "DELETE FROM order_batch_size_distributions WHERE id = ?"
	deleteAssignmentSizesQuery = "DELETE FROM order_batch_size_distributions WHERE order_batch_assignment_id = ?"
	deleteAssignmentQuery      = "DELETE FROM order_batch_assignments WHERE id = ?"
	updatePickedQuery          = "UPDATE order_batch_size_distributions SET picked_quantity = ?, version = version + 1 WHERE id = ? AND version = ?"
)

func (r *SQL) ListActiveBatches(ctx context.Context) ([]model.BatchEntity, error) {
	batches := make([]model.BatchEntity, 0)
	if err := r.conn.SelectContext(ctx, &batches, listActiveBatchesQuery, constant.BatchStatusActive); err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *SQL) GetActiveBatchIDsTx(ctx context.Context, tx *sqlx.Tx, batchIDs []uint64) ([]uint64, error) {
	ids := make([]uint64, 0, len(batchIDs))
	if len(batchIDs) == 0 {
		return ids, nil
	}
	q, args, err := sqlx.In(activeBatchIDsQuery, constant.BatchStatusActive, batchIDs)
	if err != nil {
		return nil, err
	}
	if err := tx.SelectContext(ctx, &ids, tx.Rebind(q), args...); err != nil {
		return nil, err
	}
	return ids, nil
}

// GetAssignment returns nil when the assignment does not exist.
func (r *SQL) GetAssignment(ctx context.Context, assignmentID uint64) (*model.AssignmentEntity, error) {
	var a model.AssignmentEntity
	if err := r.conn.QueryRowxContext(ctx, assignmentBase+" WHERE a.id = ?", assignmentID).StructScan(&a); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *SQL) ListAssignmentsByOrder(ctx context.Context, orderID uint64) ([]model.AssignmentEntity, error) {
	out := make([]model.AssignmentEntity, 0)
	if err := r.conn.SelectContext(ctx, &out, assignmentBase+" WHERE a.order_id = ? ORDER BY a.id", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) ListAssignmentsByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.AssignmentEntity, error) {
	out := make([]model.AssignmentEntity, 0)
	if err := tx.SelectContext(ctx, &out, assignmentBase+" WHERE a.order_id = ? ORDER BY a.id", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAssignmentsWithNotes returns assignments that still carry a legacy notes blob.
func (r *SQL) ListAssignmentsWithNotes(ctx context.Context) ([]model.AssignmentEntity, error) {
	out := make([]model.AssignmentEntity, 0)
	if err := r.conn.SelectContext(ctx, &out, assignmentBase+" WHERE a.notes IS NOT NULL AND a.notes <> '' ORDER BY a.id"); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) ListAssignmentSizes(ctx context.Context, assignmentID uint64) ([]model.AssignmentSize, error) {
	return r.selectSizes(ctx, r.conn, sizeBase+" WHERE d.order_batch_assignment_id = ? ORDER BY d.id", assignmentID)
}

func (r *SQL) ListAssignmentSizesForUpdateTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64) ([]model.AssignmentSize, error) {
	return r.selectSizes(ctx, tx, sizeBase+" WHERE d.order_batch_assignment_id = ? ORDER BY d.id FOR UPDATE", assignmentID)
}

func (r *SQL) ListAssignmentSizesByOrder(ctx context.Context, orderID uint64) ([]model.AssignmentSize, error) {
	return r.selectSizes(ctx, r.conn, sizeBase+" WHERE a.order_id = ? ORDER BY d.id", orderID)
}

func (r *SQL) ListAssignmentSizesByOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.AssignmentSize, error) {
	return r.selectSizes(ctx, tx, sizeBase+" WHERE a.order_id = ? ORDER BY d.id FOR UPDATE", orderID)
}

func (r *SQL) ListAllAssignmentSizes(ctx context.Context) ([]model.AssignmentSize, error) {
	return r.selectSizes(ctx, r.conn, sizeBase+" ORDER BY a.order_id, d.id")
}

// GetAssignmentSizeForUpdateTx locks one size row and returns nil when it does not exist.
func (r *SQL) GetAssignmentSizeForUpdateTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64, size string) (*model.AssignmentSize, error) {
	var s model.AssignmentSize
	q := sizeBase + " WHERE d.order_batch_assignment_id = ? AND d.size_name = ? FOR UPDATE"
	if err := tx.QueryRowxContext(ctx, q, assignmentID, size).StructScan(&s); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// UpsertAssignmentTx returns the id of the (order, batch) assignment, creating it when needed.
func (r *SQL) UpsertAssignmentTx(ctx context.Context, tx *sqlx.Tx, orderID, batchID, assignedBy uint64) (uint64, error) {
	res, err := tx.ExecContext(ctx, upsertAssignmentQuery, orderID, batchID, assignedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) UpsertAssignmentSizeTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64, size string, quantity int) error {
	_, err := tx.ExecContext(ctx, upsertAssignmentSizeQuery, assignmentID, size, quantity)
	return err
}

func (r *SQL) DeleteAssignmentSizeTx(ctx context.Context, tx *sqlx.Tx, sizeID uint64) error {
	_, err := tx.ExecContext(ctx, deleteAssignmentSizeQuery, sizeID)
	return err
}

// DeleteAssignmentTx removes an assignment together with its size rows.
func (r *SQL) DeleteAssignmentTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64) error {
	if _, err := tx.ExecContext(ctx, deleteAssignmentSizesQuery, assignmentID); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, deleteAssignmentQuery, assignmentID)
	return err
}

// UpdatePickedQuantityTx is a compare-and-swap on the row version.
func (r *SQL) UpdatePickedQuantityTx(ctx context.Context, tx *sqlx.Tx, sizeID uint64, picked int, version int64) error {
	res, err := tx.ExecContext(ctx, updatePickedQuery, picked, sizeID, version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.SetCustomError(constant.ErrConflict)
	}
	return nil
}

func (r *SQL) selectSizes(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]model.AssignmentSize, error) {
	out := make([]model.AssignmentSize, 0)
	if err := sqlx.SelectContext(ctx, q, &out, query, args...); err != nil {
		return nil, err
	}
	return out, nil
}
