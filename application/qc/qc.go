package qc

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/muhammadheryan/garment-erp/cmd/config"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/ledger"
	"github.com/muhammadheryan/garment-erp/model"
	batchrepo "github.com/muhammadheryan/garment-erp/repository/batch"
	orderrepo "github.com/muhammadheryan/garment-erp/repository/order"
	qcrepo "github.com/muhammadheryan/garment-erp/repository/qc"
	txrepo "github.com/muhammadheryan/garment-erp/repository/tx"
	"github.com/muhammadheryan/garment-erp/thirdparty/rabbitmq"
	"github.com/muhammadheryan/garment-erp/utils/errors"
	"github.com/muhammadheryan/garment-erp/utils/logger"
	"go.uber.org/zap"
)

type QCApp interface {
	SubmitReview(ctx context.Context, userID uint64, req *model.SubmitReviewRequest) (*model.SubmitReviewResponse, error)
	GetAssignmentQC(ctx context.Context, assignmentID uint64) (*model.AssignmentQCResponse, error)
	ListOrdersByQCStatus(ctx context.Context, status constant.QCStatus) ([]model.QCOrder, error)
}

type qcAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
	batchRepo batchrepo.BatchRepository
	qcRepo    qcrepo.QCRepository
	publisher *rabbitmq.Publisher
}

func NewQCApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, batchRepo batchrepo.BatchRepository, qcRepo qcrepo.QCRepository, publisher *rabbitmq.Publisher) QCApp {
	return &qcAppImpl{config: config, txRepo: txRepo, orderRepo: orderRepo, batchRepo: batchRepo, qcRepo: qcRepo, publisher: publisher}
}

// SubmitReview appends one QC verdict for a size. Prior reviews are never
// modified; totals are the sum of the log.
func (s *qcAppImpl) SubmitReview(ctx context.Context, userID uint64, req *model.SubmitReviewRequest) (*model.SubmitReviewResponse, error) {
	if req.Approved == 0 && req.Rejected == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage(ledger.ErrEmptyReview.Error())
	}

	a, err := s.batchRepo.GetAssignment(ctx, req.AssignmentID)
	if err != nil {
		logger.Error("[SubmitReview] get assignment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if a == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SubmitReview] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// order row first, same as SaveDistribution, then the size row
	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, a.OrderID)
	if err != nil {
		logger.Error("[SubmitReview] lock order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	row, err := s.batchRepo.GetAssignmentSizeForUpdateTx(ctx, tx, req.AssignmentID, req.Size)
	if err != nil {
		logger.Error("[SubmitReview] lock size", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	totals, err := s.qcRepo.SumReviewsByAssignmentTx(ctx, tx, req.AssignmentID)
	if err != nil {
		logger.Error("[SubmitReview] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	state := row.State(model.IndexReviews(totals))

	if err := ledger.ValidateReview(state, req.Approved, req.Rejected); err != nil {
		var over *ledger.OverReviewError
		if stderrors.As(err, &over) {
			return nil, errors.SetCustomError(constant.ErrOverReview).WithMessage(over.Error())
		}
		return nil, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage(err.Error())
	}

	reviewID, err := s.qcRepo.InsertReviewTx(ctx, tx, &model.QCReviewEntity{
		AssignmentID:     req.AssignmentID,
		Size:             req.Size,
		ApprovedQuantity: req.Approved,
		RejectedQuantity: req.Rejected,
		Remarks:          req.Remarks,
		ReviewedBy:       userID,
	})
	if err != nil {
		logger.Error("[SubmitReview] insert review", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if status := reviewedStatus(order.Status, req.Approved); status != order.Status {
		if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, order.ID, status, order.Version); err != nil {
			if errors.IsType(err, constant.ErrConflict) {
				return nil, err
			}
			logger.Error("[SubmitReview] update order status", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SubmitReview] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	state.Approved += req.Approved
	state.Rejected += req.Rejected

	msg := rabbitmq.QCReviewedMessage{
		OrderID:      a.OrderID,
		AssignmentID: req.AssignmentID,
		ReviewID:     reviewID,
		Size:         req.Size,
		Approved:     req.Approved,
		Rejected:     req.Rejected,
		ReviewedBy:   userID,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.PublishQCReviewed(msg); err != nil {
		logger.Error("[SubmitReview] publish qc reviewed", zap.String("error", err.Error()))
	}

	return &model.SubmitReviewResponse{
		ReviewID:       reviewID,
		AssignmentID:   req.AssignmentID,
		Size:           req.Size,
		Picked:         state.Picked,
		Approved:       state.Approved,
		Rejected:       state.Rejected,
		AwaitingReview: state.AwaitingReview(),
		QCComplete:     state.QCComplete(),
	}, nil
}

func (s *qcAppImpl) GetAssignmentQC(ctx context.Context, assignmentID uint64) (*model.AssignmentQCResponse, error) {
	a, err := s.batchRepo.GetAssignment(ctx, assignmentID)
	if err != nil {
		logger.Error("[GetAssignmentQC] get assignment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if a == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	rows, err := s.batchRepo.ListAssignmentSizes(ctx, assignmentID)
	if err != nil {
		logger.Error("[GetAssignmentQC] list sizes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totals, err := s.qcRepo.SumReviewsByAssignment(ctx, assignmentID)
	if err != nil {
		logger.Error("[GetAssignmentQC] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	reviews, err := s.qcRepo.ListReviewsByAssignment(ctx, assignmentID)
	if err != nil {
		logger.Error("[GetAssignmentQC] list reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	idx := model.IndexReviews(totals)
	view := ledger.AssignmentQC{AssignmentID: assignmentID}
	sizes := make([]model.QCSize, 0, len(rows))
	for _, row := range rows {
		st := row.State(idx)
		view.Sizes = append(view.Sizes, st)
		sizes = append(sizes, model.QCSize{
			Size:           st.Size,
			Picked:         st.Picked,
			Approved:       st.Approved,
			Rejected:       st.Rejected,
			AwaitingReview: st.AwaitingReview(),
			Unapproved:     st.Unapproved(),
			QCComplete:     st.QCComplete(),
		})
	}
	sortQCSizes(sizes)

	return &model.AssignmentQCResponse{
		AssignmentID: a.ID,
		OrderID:      a.OrderID,
		BatchID:      a.BatchID,
		BatchName:    a.BatchName,
		QCComplete:   view.Complete(),
		Sizes:        sizes,
		Reviews:      reviews,
	}, nil
}

// ListOrdersByQCStatus derives every order's QC status from the raw rows on
// each call. An empty status returns all orders.
func (s *qcAppImpl) ListOrdersByQCStatus(ctx context.Context, status constant.QCStatus) ([]model.QCOrder, error) {
	switch status {
	case "", constant.QCStatusPending, constant.QCStatusPartial, constant.QCStatusCompleted:
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	orders, err := s.orderRepo.ListOrdersWithAssignments(ctx)
	if err != nil {
		logger.Error("[ListOrdersByQCStatus] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows, err := s.batchRepo.ListAllAssignmentSizes(ctx)
	if err != nil {
		logger.Error("[ListOrdersByQCStatus] list sizes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totals, err := s.qcRepo.SumAllReviews(ctx)
	if err != nil {
		logger.Error("[ListOrdersByQCStatus] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	grouped := model.GroupQC(rows, model.IndexReviews(totals))
	out := make([]model.QCOrder, 0, len(orders))
	for _, o := range orders {
		assignments := grouped[o.ID]
		qcStatus := ledger.OrderQCStatus(assignments)
		if status != "" && qcStatus != status {
			continue
		}
		item := model.QCOrder{
			OrderID:      o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			QCStatus:     qcStatus,
		}
		for _, a := range assignments {
			t := a.Totals()
			item.Picked += t.Picked
			item.Approved += t.Approved
			item.Rejected += t.Rejected
		}
		out = append(out, item)
	}
	return out, nil
}

func sortQCSizes(sizes []model.QCSize) {
	names := make([]string, 0, len(sizes))
	bySize := make(map[string]model.QCSize, len(sizes))
	for _, s := range sizes {
		names = append(names, s.Size)
		bySize[s.Size] = s
	}
	ledger.SortSizes(names)
	for i, n := range names {
		sizes[i] = bySize[n]
	}
}

// reviewedStatus is the order status after a review. Newly approved units on a
// fully dispatched order are not shipped yet, so it drops back to partial.
func reviewedStatus(current constant.OrderStatus, approved int) constant.OrderStatus {
	if current == constant.OrderStatusDispatched && approved > 0 {
		return constant.OrderStatusPartialDispatched
	}
	return constant.AdvanceStatus(current, constant.OrderStatusQualityCheck)
}
