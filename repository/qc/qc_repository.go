package qc

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/garment-erp/model"
)

// QCRepository stores append-only QC reviews. Approved and rejected totals
// are always derived by summing the log.
type QCRepository interface {
	InsertReviewTx(ctx context.Context, tx *sqlx.Tx, review *model.QCReviewEntity) (uint64, error)
	ListReviewsByAssignment(ctx context.Context, assignmentID uint64) ([]model.QCReviewEntity, error)

	SumReviewsByAssignment(ctx context.Context, assignmentID uint64) ([]model.ReviewTotal, error)
	SumReviewsByAssignmentTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64) ([]model.ReviewTotal, error)
	SumReviewsByOrder(ctx context.Context, orderID uint64) ([]model.ReviewTotal, error)
	SumReviewsByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.ReviewTotal, error)
	SumAllReviews(ctx context.Context) ([]model.ReviewTotal, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewQCRepository(conn *sqlx.DB) QCRepository {
	return &SQL{conn: conn}
}

const (
	insertReviewQuery = `INSERT INTO qc_reviews (order_batch_assignment_id, size_name, approved_quantity, rejected_quantity, remarks, reviewed_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, NOW())`

	listReviewsQuery = `SELECT id, order_batch_assignment_id, size_name, approved_quantity, rejected_quantity, remarks, reviewed_by, created_at
FROM qc_reviews WHERE order_batch_assignment_id = ? ORDER BY id`

	sumBase = `SELECT a.order_id, r.order_batch_assignment_id, r.size_name,
COALESCE(SUM(r.approved_quantity), 0) AS approved,
COALESCE(SUM(r.rejected_quantity), 0) AS rejected
FROM qc_reviews r
JOIN order_batch_assignments a ON a.id = r.order_batch_assignment_id`

	sumGroup = " GROUP BY a.order_id, r.order_batch_assignment_id, r.size_name ORDER BY r.order_batch_assignment_id, r.size_name"
)

func (r *SQL) InsertReviewTx(ctx context.Context, tx *sqlx.Tx, review *model.QCReviewEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertReviewQuery,
		review.AssignmentID,
		review.Size,
		review.ApprovedQuantity,
		review.RejectedQuantity,
		review.Remarks,
		review.ReviewedBy,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ListReviewsByAssignment(ctx context.Context, assignmentID uint64) ([]model.QCReviewEntity, error) {
	reviews := make([]model.QCReviewEntity, 0)
	if err := r.conn.SelectContext(ctx, &reviews, listReviewsQuery, assignmentID); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *SQL) SumReviewsByAssignment(ctx context.Context, assignmentID uint64) ([]model.ReviewTotal, error) {
	return sumReviews(ctx, r.conn, sumBase+" WHERE r.order_batch_assignment_id = ?"+sumGroup, assignmentID)
}

func (r *SQL) SumReviewsByAssignmentTx(ctx context.Context, tx *sqlx.Tx, assignmentID uint64) ([]model.ReviewTotal, error) {
	return sumReviews(ctx, tx, sumBase+" WHERE r.order_batch_assignment_id = ?"+sumGroup, assignmentID)
}

func (r *SQL) SumReviewsByOrder(ctx context.Context, orderID uint64) ([]model.ReviewTotal, error) {
	return sumReviews(ctx, r.conn, sumBase+" WHERE a.order_id = ?"+sumGroup, orderID)
}

func (r *SQL) SumReviewsByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.ReviewTotal, error) {
	return sumReviews(ctx, tx, sumBase+" WHERE a.order_id = ?"+sumGroup, orderID)
}

func (r *SQL) SumAllReviews(ctx context.Context) ([]model.ReviewTotal, error) {
	return sumReviews(ctx, r.conn, sumBase+sumGroup)
}

func sumReviews(ctx context.Context, q sqlx.QueryerContext, query string, args ...any) ([]model.ReviewTotal, error) {
	totals := make([]model.ReviewTotal, 0)
	if err := sqlx.SelectContext(ctx, q, &totals, query, args...); err != nil {
		return nil, err
	}
	return totals, nil
}
