package order

import (
	"context"

	"github.com/muhammadheryan/garment-erp/cmd/config"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/ledger"
	"github.com/muhammadheryan/garment-erp/model"
	batchrepo "github.com/muhammadheryan/garment-erp/repository/batch"
	dispatchrepo "github.com/muhammadheryan/garment-erp/repository/dispatch"
	orderrepo "github.com/muhammadheryan/garment-erp/repository/order"
	qcrepo "github.com/muhammadheryan/garment-erp/repository/qc"
	"github.com/muhammadheryan/garment-erp/utils/errors"
	"github.com/muhammadheryan/garment-erp/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	GetOrderLedger(ctx context.Context, orderID uint64) (*model.OrderLedgerResponse, error)
}

type orderAppImpl struct {
	config       *config.Config
	orderRepo    orderrepo.OrderRepository
	batchRepo    batchrepo.BatchRepository
	qcRepo       qcrepo.QCRepository
	dispatchRepo dispatchrepo.DispatchRepository
}

func NewOrderApp(config *config.Config, orderRepo orderrepo.OrderRepository, batchRepo batchrepo.BatchRepository, qcRepo qcrepo.QCRepository, dispatchRepo dispatchrepo.DispatchRepository) OrderApp {
	return &orderAppImpl{config: config, orderRepo: orderRepo, batchRepo: batchRepo, qcRepo: qcRepo, dispatchRepo: dispatchRepo}
}

// GetOrderLedger reconciles every stage of an order per size. Each stage is
// turned into events and folded by ledger.Reduce.
func (s *orderAppImpl) GetOrderLedger(ctx context.Context, orderID uint64) (*model.OrderLedgerResponse, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderLedger] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	sizeRows, err := s.orderRepo.GetSizeLedger(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderLedger] get size ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows, err := s.batchRepo.ListAssignmentSizesByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderLedger] list assignment sizes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totals, err := s.qcRepo.SumReviewsByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderLedger] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	dispatched, err := s.dispatchRepo.SumDispatchedByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrderLedger] sum dispatched", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	events := make([]ledger.Event, 0, 2*len(rows)+len(totals)+len(dispatched))
	for _, r := range rows {
		events = append(events,
			ledger.Event{Kind: ledger.EventAllocated, Size: r.Size, Quantity: r.Quantity},
			ledger.Event{Kind: ledger.EventPicked, Size: r.Size, Quantity: r.PickedQuantity},
		)
	}
	for _, t := range totals {
		events = append(events, ledger.Event{Kind: ledger.EventReviewed, Size: t.Size, Approved: t.Approved, Rejected: t.Rejected})
	}
	for _, d := range dispatched {
		events = append(events, ledger.Event{Kind: ledger.EventDispatched, Size: d.Size, Quantity: d.Quantity})
	}

	reduced := ledger.Reduce(ledger.SizeLedger(model.QuantityBySize(sizeRows)), events)
	sizes := make([]model.OrderLedgerSize, 0, len(reduced))
	for _, q := range reduced {
		sizes = append(sizes, model.OrderLedgerSize{
			Size:            q.Size,
			Total:           q.Total,
			Allocated:       q.Allocated,
			Undistributed:   q.Undistributed(),
			Picked:          q.Picked,
			EffectivePicked: q.EffectivePicked(),
			Approved:        q.Approved,
			Rejected:        q.Rejected,
			AwaitingReview:  q.AwaitingReview(),
			Dispatched:      q.Dispatched,
			Shippable:       q.Shippable(),
		})
	}

	qcStatus := ledger.OrderQCStatus(model.GroupQC(rows, model.IndexReviews(totals))[orderID])

	return &model.OrderLedgerResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		QCStatus:    qcStatus,
		Sizes:       sizes,
	}, nil
}
