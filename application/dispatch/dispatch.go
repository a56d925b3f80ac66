package dispatch

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/garment-erp/cmd/config"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/ledger"
	"github.com/muhammadheryan/garment-erp/model"
	dispatchrepo "github.com/muhammadheryan/garment-erp/repository/dispatch"
	orderrepo "github.com/muhammadheryan/garment-erp/repository/order"
	qcrepo "github.com/muhammadheryan/garment-erp/repository/qc"
	redisrepo "github.com/muhammadheryan/garment-erp/repository/redis"
	txrepo "github.com/muhammadheryan/garment-erp/repository/tx"
	"github.com/muhammadheryan/garment-erp/thirdparty/rabbitmq"
	"github.com/muhammadheryan/garment-erp/utils/errors"
	"github.com/muhammadheryan/garment-erp/utils/logger"
	"go.uber.org/zap"
)

const (
	idempotencyKeyPrefix = "challan:idempotency"
	idempotencyPending   = "processing"
)

type DispatchApp interface {
	GetDispatchSummary(ctx context.Context, orderID uint64) (*model.DispatchSummary, error)
	GenerateChallan(ctx context.Context, userID uint64, req *model.GenerateChallanRequest) (*model.ChallanResponse, error)
	MarkDispatched(ctx context.Context, req *model.MarkDispatchedRequest) (*model.MarkDispatchedResponse, error)
	MarkDelivered(ctx context.Context, dispatchOrderID uint64) error
}

type dispatchAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	orderRepo    orderrepo.OrderRepository
	qcRepo       qcrepo.QCRepository
	dispatchRepo dispatchrepo.DispatchRepository
	redisRepo    redisrepo.Repository
	publisher    *rabbitmq.Publisher
}

func NewDispatchApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, qcRepo qcrepo.QCRepository, dispatchRepo dispatchrepo.DispatchRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) DispatchApp {
	return &dispatchAppImpl{
		config:       config,
		txRepo:       txRepo,
		orderRepo:    orderRepo,
		qcRepo:       qcRepo,
		dispatchRepo: dispatchRepo,
		redisRepo:    redisRepo,
		publisher:    publisher,
	}
}

func (s *dispatchAppImpl) GetDispatchSummary(ctx context.Context, orderID uint64) (*model.DispatchSummary, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetDispatchSummary] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	totals, err := s.qcRepo.SumReviewsByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetDispatchSummary] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	dispatchedRows, err := s.dispatchRepo.SumDispatchedByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetDispatchSummary] sum dispatched", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	dispatchOrders, err := s.dispatchRepo.ListDispatchOrdersByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetDispatchSummary] list dispatch orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	approved := model.ApprovedBySize(totals)
	dispatched := model.QuantityBySize(dispatchedRows)

	names := make([]string, 0, len(approved))
	for size := range approved {
		names = append(names, size)
	}
	for size := range dispatched {
		if _, ok := approved[size]; !ok {
			names = append(names, size)
		}
	}
	ledger.SortSizes(names)

	remaining := ledger.RemainingToDispatch(approved, dispatched)
	sizes := make([]model.DispatchSize, 0, len(names))
	for _, size := range names {
		sizes = append(sizes, model.DispatchSize{
			Size:       size,
			Approved:   approved[size],
			Dispatched: dispatched[size],
			Remaining:  remaining[size],
		})
	}

	views := make([]model.DispatchOrderView, 0, len(dispatchOrders))
	for _, d := range dispatchOrders {
		views = append(views, d.View())
	}

	return &model.DispatchSummary{
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Status:          order.Status,
		ApprovedTotal:   ledger.Sum(approved),
		DispatchedTotal: ledger.Sum(dispatched),
		Remaining:       remaining,
		Sizes:           sizes,
		DispatchOrders:  views,
	}, nil
}

// GenerateChallan creates a pending dispatch order for approved units that
// have not been dispatched yet. The idempotency key is claimed in Redis first
// so a retried request returns the challan it already produced.
func (s *dispatchAppImpl) GenerateChallan(ctx context.Context, userID uint64, req *model.GenerateChallanRequest) (*model.ChallanResponse, error) {
	seen := make(map[string]bool, len(req.Items))
	for _, item := range req.Items {
		if seen[item.Size] {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest).
				WithMessage(fmt.Sprintf("size %s is listed twice", item.Size))
		}
		seen[item.Size] = true
	}

	idemKey := req.IdempotencyKey
	if idemKey == "" {
		idemKey = uuid.NewString()
	}
	key := fmt.Sprintf("%s:%d:%s", idempotencyKeyPrefix, req.OrderID, idemKey)
	ttl := s.config.Dispatch.IdempotencyTTL

	claimed, err := s.redisRepo.SetIfAbsent(ctx, key, idempotencyPending, ttl)
	if err != nil {
		logger.Error("[GenerateChallan] claim idempotency key", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !claimed {
		return s.replay(ctx, key)
	}

	resp, err := s.generate(ctx, userID, req)
	if err != nil {
		if delErr := s.redisRepo.Delete(ctx, key); delErr != nil {
			logger.Warn("[GenerateChallan] release idempotency key", zap.String("error", delErr.Error()))
		}
		return nil, err
	}

	if err := s.redisRepo.SetWithTTL(ctx, key, strconv.FormatUint(resp.DispatchOrderID, 10), ttl); err != nil {
		logger.Warn("[GenerateChallan] store idempotency result", zap.String("error", err.Error()))
	}

	items := make(map[string]int, len(resp.Items))
	for _, item := range resp.Items {
		if item.Quantity > 0 {
			items[item.Size] = item.Quantity
		}
	}
	msg := rabbitmq.ChallanGeneratedMessage{
		DispatchOrderID: resp.DispatchOrderID,
		OrderID:         resp.OrderID,
		ChallanNumber:   resp.ChallanNumber,
		Items:           items,
		CreatedBy:       userID,
		OccurredAt:      time.Now().UTC(),
	}
	if err := s.publisher.PublishChallanGenerated(msg); err != nil {
		logger.Error("[GenerateChallan] publish challan generated", zap.String("error", err.Error()))
	}

	return resp, nil
}

func (s *dispatchAppImpl) generate(ctx context.Context, userID uint64, req *model.GenerateChallanRequest) (*model.ChallanResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[GenerateChallan] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, req.OrderID)
	if err != nil {
		logger.Error("[GenerateChallan] lock order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	totals, err := s.qcRepo.SumReviewsByOrderTx(ctx, tx, order.ID)
	if err != nil {
		logger.Error("[GenerateChallan] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	dispatchedRows, err := s.dispatchRepo.SumDispatchedByOrderTx(ctx, tx, order.ID)
	if err != nil {
		logger.Error("[GenerateChallan] sum dispatched", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	remaining := ledger.RemainingToDispatch(model.ApprovedBySize(totals), model.QuantityBySize(dispatchedRows))

	items := make([]model.ChallanItem, 0, len(req.Items))
	rows := make([]model.DispatchItemEntity, 0, len(req.Items))
	for _, item := range req.Items {
		qty, capped := ledger.CapDispatch(item.Quantity, remaining[item.Size])
		if err := s.config.Quantity.Policy.Apply(capped); err != nil {
			return nil, errors.SetCustomError(constant.ErrQuantityOutOfRange).
				WithMessage(fmt.Sprintf("size %s has %d left to dispatch, requested %d", item.Size, remaining[item.Size], item.Quantity))
		}
		items = append(items, model.ChallanItem{Size: item.Size, Requested: item.Quantity, Quantity: qty, Capped: capped})
		if qty > 0 {
			rows = append(rows, model.DispatchItemEntity{OrderID: order.ID, Size: item.Size, Quantity: qty})
		}
	}
	if len(rows) == 0 {
		return nil, errors.SetCustomError(constant.ErrNothingToDispatch)
	}

	challan := &model.DispatchOrderEntity{
		OrderID:       order.ID,
		ChallanNumber: newChallanNumber(time.Now().UTC()),
		Status:        constant.DispatchStatusPending,
		Notes:         req.Notes,
		CreatedBy:     userID,
	}
	id, err := s.dispatchRepo.InsertDispatchOrderTx(ctx, tx, challan)
	if err != nil {
		logger.Error("[GenerateChallan] insert dispatch order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.dispatchRepo.InsertDispatchItemsTx(ctx, tx, id, rows); err != nil {
		logger.Error("[GenerateChallan] insert dispatch items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[GenerateChallan] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.ChallanResponse{
		DispatchOrderID: id,
		OrderID:         order.ID,
		ChallanNumber:   challan.ChallanNumber,
		Status:          challan.Status,
		Items:           items,
	}, nil
}

// replay answers a request whose idempotency key was already claimed.
func (s *dispatchAppImpl) replay(ctx context.Context, key string) (*model.ChallanResponse, error) {
	val, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		logger.Error("[GenerateChallan] read idempotency key", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		// still processing, or the key expired between the two calls
		return nil, errors.SetCustomError(constant.ErrDuplicateRequest)
	}

	d, err := s.dispatchRepo.GetDispatchOrder(ctx, id)
	if err != nil {
		logger.Error("[GenerateChallan] get dispatch order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if d == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	rows, err := s.dispatchRepo.ListDispatchItems(ctx, id)
	if err != nil {
		logger.Error("[GenerateChallan] list dispatch items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	items := make([]model.ChallanItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, model.ChallanItem{Size: r.Size, Requested: r.Quantity, Quantity: r.Quantity})
	}
	return &model.ChallanResponse{
		DispatchOrderID: d.ID,
		OrderID:         d.OrderID,
		ChallanNumber:   d.ChallanNumber,
		Status:          d.Status,
		Items:           items,
		Replayed:        true,
	}, nil
}

// MarkDispatched ships a pending challan and recomputes the order status from
// the shipped totals.
func (s *dispatchAppImpl) MarkDispatched(ctx context.Context, req *model.MarkDispatchedRequest) (*model.MarkDispatchedResponse, error) {
	d, err := s.dispatchRepo.GetDispatchOrder(ctx, req.DispatchOrderID)
	if err != nil {
		logger.Error("[MarkDispatched] get dispatch order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if d == nil {
		return nil, errors.SetCustomError(constant.ErrChallanRequired)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[MarkDispatched] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, d.OrderID)
	if err != nil {
		logger.Error("[MarkDispatched] lock order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	locked, err := s.dispatchRepo.GetDispatchOrderForUpdateTx(ctx, tx, d.ID)
	if err != nil {
		logger.Error("[MarkDispatched] lock dispatch order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if locked == nil {
		return nil, errors.SetCustomError(constant.ErrChallanRequired)
	}
	if locked.Status != constant.DispatchStatusPending {
		return nil, errors.SetCustomError(constant.ErrInvalidDispatchStatus).
			WithMessage(fmt.Sprintf("dispatch order %d is already %s", locked.ID, locked.Status))
	}

	if err := s.dispatchRepo.UpdateDispatchShippedTx(ctx, tx, locked.ID, req.CourierName, req.TrackingNumber); err != nil {
		if errors.IsType(err, constant.ErrInvalidDispatchStatus) {
			return nil, err
		}
		logger.Error("[MarkDispatched] update dispatch order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totals, err := s.qcRepo.SumReviewsByOrderTx(ctx, tx, order.ID)
	if err != nil {
		logger.Error("[MarkDispatched] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	shippedRows, err := s.dispatchRepo.SumShippedByOrderTx(ctx, tx, order.ID)
	if err != nil {
		logger.Error("[MarkDispatched] sum shipped", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	approvedTotal := ledger.Sum(model.ApprovedBySize(totals))
	shippedTotal := ledger.Sum(model.QuantityBySize(shippedRows))
	status := ledger.DispatchStatus(approvedTotal, shippedTotal)

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, order.ID, status, order.Version); err != nil {
		if errors.IsType(err, constant.ErrConflict) {
			return nil, err
		}
		logger.Error("[MarkDispatched] update order status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[MarkDispatched] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	msg := rabbitmq.DispatchShippedMessage{
		DispatchOrderID: locked.ID,
		OrderID:         order.ID,
		CourierName:     req.CourierName,
		TrackingNumber:  req.TrackingNumber,
		OrderStatus:     string(status),
		OccurredAt:      time.Now().UTC(),
	}
	if err := s.publisher.PublishDispatchShipped(msg); err != nil {
		logger.Error("[MarkDispatched] publish dispatch shipped", zap.String("error", err.Error()))
	}

	return &model.MarkDispatchedResponse{
		DispatchOrderID: locked.ID,
		OrderID:         order.ID,
		Status:          constant.DispatchStatusShipped,
		OrderStatus:     status,
		ApprovedTotal:   approvedTotal,
		DispatchedTotal: shippedTotal,
	}, nil
}

// MarkDelivered closes a shipped challan. Delivering an already delivered
// challan is a no-op so redelivered courier messages are harmless.
func (s *dispatchAppImpl) MarkDelivered(ctx context.Context, dispatchOrderID uint64) error {
	d, err := s.dispatchRepo.GetDispatchOrder(ctx, dispatchOrderID)
	if err != nil {
		logger.Error("[MarkDelivered] get dispatch order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if d == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if d.Status == constant.DispatchStatusDelivered {
		return nil
	}

	if err := s.dispatchRepo.UpdateDispatchDelivered(ctx, dispatchOrderID); err != nil {
		if errors.IsType(err, constant.ErrInvalidDispatchStatus) {
			return err
		}
		logger.Error("[MarkDelivered] update dispatch order", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// newChallanNumber formats CH-YYYYMMDD-XXXXXXXX from a random uuid.
func newChallanNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("CH-%s-%s", now.Format("20060102"), suffix)
}
