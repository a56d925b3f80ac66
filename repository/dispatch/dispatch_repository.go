package dispatch

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/model"
	"github.com/muhammadheryan/garment-erp/utils/errors"
)

type DispatchRepository interface {
	InsertDispatchOrderTx(ctx context.Context, tx *sqlx.Tx, d *model.DispatchOrderEntity) (uint64, error)
	InsertDispatchItemsTx(ctx context.Context, tx *sqlx.Tx, dispatchOrderID uint64, items []model.DispatchItemEntity) error

	GetDispatchOrder(ctx context.Context, id uint64) (*model.DispatchOrderEntity, error)
	GetDispatchOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.DispatchOrderEntity, error)
	ListDispatchOrdersByOrder(ctx context.Context, orderID uint64) ([]model.DispatchOrderEntity, error)
	ListDispatchItems(ctx context.Context, dispatchOrderID uint64) ([]model.DispatchItemEntity, error)

	SumDispatchedByOrder(ctx context.Context, orderID uint64) ([]model.SizeQuantity, error)
	SumDispatchedByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.SizeQuantity, error)
	SumShippedByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.SizeQuantity, error)

	UpdateDispatchShippedTx(ctx context.Context, tx *sqlx.Tx, id uint64, courier, tracking string) error
	UpdateDispatchDelivered(ctx context.Context, id uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewDispatchRepository(conn *sqlx.DB) DispatchRepository {
	return &SQL{conn: conn}
}

const (
	insertDispatchOrderQuery = `INSERT INTO dispatch_orders (order_id, challan_number, status, notes, created_by, created_at)
VALUES (?, ?, ?, ?, ?, NOW())`

	insertDispatchItemQuery = "INSERT INTO dispatch_order_items (dispatch_order_id, order_id, size_name, quantity) VALUES (?, ?, ?, ?)"

	dispatchOrderBase = `SELECT id, order_id, challan_number, status, courier_name, tracking_number, notes, created_by, created_at, shipped_at, delivered_at
FROM dispatch_orders`

	listDispatchItemsQuery = "SELECT id, dispatch_order_id, order_id, size_name, quantity FROM dispatch_order_items WHERE dispatch_order_id = ? ORDER BY id"

	// Every dispatch order counts against the approved quantity as soon as
	// its challan exists, shipped or not.
	sumDispatchedQuery = `SELECT i.size_name, COALESCE(SUM(i.quantity), 0) AS quantity
FROM dispatch_order_items i
WHERE i.order_id = ?
GROUP BY i.size_name`

	sumShippedQuery = `SELECT i.size_name, COALESCE(SUM(i.quantity), 0) AS quantity
FROM dispatch_order_items i
JOIN dispatch_orders d ON d.id = i.dispatch_order_id
WHERE i.order_id = ? AND d.status IN (?, ?)
GROUP BY i.size_name`

	updateShippedQuery = `UPDATE dispatch_orders SET status = ?, courier_name = ?, tracking_number = ?, shipped_at = NOW()
WHERE id = ? AND status = ?`

	updateDeliveredQuery = "UPDATE dispatch_orders SET status = ?, delivered_at = NOW() WHERE id = ? AND status = ?"
)

func (r *SQL) InsertDispatchOrderTx(ctx context.Context, tx *sqlx.Tx, d *model.DispatchOrderEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertDispatchOrderQuery, d.OrderID, d.ChallanNumber, d.Status, d.Notes, d.CreatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertDispatchItemsTx(ctx context.Context, tx *sqlx.Tx, dispatchOrderID uint64, items []model.DispatchItemEntity) error {
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, insertDispatchItemQuery, dispatchOrderID, item.OrderID, item.Size, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetDispatchOrder returns nil when the dispatch order does not exist.
func (r *SQL) GetDispatchOrder(ctx context.Context, id uint64) (*model.DispatchOrderEntity, error) {
	return getDispatchOrder(ctx, r.conn, dispatchOrderBase+" WHERE id = ?", id)
}

func (r *SQL) GetDispatchOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.DispatchOrderEntity, error) {
	return getDispatchOrder(ctx, tx, dispatchOrderBase+" WHERE id = ? FOR UPDATE", id)
}

func (r *SQL) ListDispatchOrdersByOrder(ctx context.Context, orderID uint64) ([]model.DispatchOrderEntity, error) {
	out := make([]model.DispatchOrderEntity, 0)
	if err := r.conn.SelectContext(ctx, &out, dispatchOrderBase+" WHERE order_id = ? ORDER BY id", orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) ListDispatchItems(ctx context.Context, dispatchOrderID uint64) ([]model.DispatchItemEntity, error) {
	out := make([]model.DispatchItemEntity, 0)
	if err := r.conn.SelectContext(ctx, &out, listDispatchItemsQuery, dispatchOrderID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQL) SumDispatchedByOrder(ctx context.Context, orderID uint64) ([]model.SizeQuantity, error) {
	return sumDispatched(ctx, r.conn, orderID)
}

func (r *SQL) SumDispatchedByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.SizeQuantity, error) {
	return sumDispatched(ctx, tx, orderID)
}

// SumShippedByOrderTx only counts dispatch orders that have left the warehouse.
func (r *SQL) SumShippedByOrderTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.SizeQuantity, error) {
	out := make([]model.SizeQuantity, 0)
	err := tx.SelectContext(ctx, &out, sumShippedQuery, orderID, constant.DispatchStatusShipped, constant.DispatchStatusDelivered)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDispatchShippedTx moves a pending dispatch order to shipped.
func (r *SQL) UpdateDispatchShippedTx(ctx context.Context, tx *sqlx.Tx, id uint64, courier, tracking string) error {
	res, err := tx.ExecContext(ctx, updateShippedQuery, constant.DispatchStatusShipped, courier, tracking, id, constant.DispatchStatusPending)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

// UpdateDispatchDelivered moves a shipped dispatch order to delivered.
func (r *SQL) UpdateDispatchDelivered(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx, updateDeliveredQuery, constant.DispatchStatusDelivered, id, constant.DispatchStatusShipped)
	if err != nil {
		return err
	}
	return requireOneRow(res)
}

func getDispatchOrder(ctx context.Context, q sqlx.QueryerContext, query string, id uint64) (*model.DispatchOrderEntity, error) {
	var d model.DispatchOrderEntity
	if err := q.QueryRowxContext(ctx, query, id).StructScan(&d); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func sumDispatched(ctx context.Context, q sqlx.QueryerContext, orderID uint64) ([]model.SizeQuantity, error) {
	out := make([]model.SizeQuantity, 0)
	if err := sqlx.SelectContext(ctx, q, &out, sumDispatchedQuery, orderID); err != nil {
		return nil, err
	}
	return out, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.SetCustomError(constant.ErrInvalidDispatchStatus)
	}
	return nil
}
