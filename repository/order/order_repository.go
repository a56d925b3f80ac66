package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/model"
	"github.com/muhammadheryan/garment-erp/utils/errors"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error)
	ListOrdersWithAssignments(ctx context.Context) ([]model.OrderEntity, error)
	GetSizeLedger(ctx context.Context, orderID uint64) ([]model.SizeQuantity, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, version int64) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	getOrderQuery = "SELECT id, order_number, customer_name, status, version FROM orders WHERE id = ?"

	listOrdersWithAssignmentsQuery = `SELECT o.id, o.order_number, o.customer_name, o.status, o.version
FROM orders o
WHERE EXISTS (SELECT 1 FROM order_batch_assignments a WHERE a.order_id = o.id)
ORDER BY o.id`

	getSizeLedgerQuery = "SELECT size_name, total_quantity AS quantity FROM order_size_distributions WHERE order_id = ? ORDER BY id"

	updateOrderStatusQuery = "UPDATE orders SET status = ?, version = version + 1, updated_at = NOW() WHERE id = ? AND version = ?"
)

// GetOrder returns nil when the order does not exist.
func (r *SQL) GetOrder(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var order model.OrderEntity
	if err := r.conn.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&order); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderForUpdateTx locks the order row. Every write that reconciles an
// order's quantities takes this lock first.
func (r *SQL) GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	var order model.OrderEntity
	if err := tx.QueryRowxContext(ctx, getOrderQuery+" FOR UPDATE", orderID).StructScan(&order); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *SQL) ListOrdersWithAssignments(ctx context.Context) ([]model.OrderEntity, error) {
	orders := make([]model.OrderEntity, 0)
	if err := r.conn.SelectContext(ctx, &orders, listOrdersWithAssignmentsQuery); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *SQL) GetSizeLedger(ctx context.Context, orderID uint64) ([]model.SizeQuantity, error) {
	sizes := make([]model.SizeQuantity, 0)
	if err := r.conn.SelectContext(ctx, &sizes, getSizeLedgerQuery, orderID); err != nil {
		return nil, err
	}
	return sizes, nil
}

// UpdateOrderStatusTx writes status and bumps version, provided the row still
// carries the given version.
func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus, version int64) error {
	res, err := tx.ExecContext(ctx, updateOrderStatusQuery, status, orderID, version)
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
