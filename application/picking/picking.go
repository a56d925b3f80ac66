package picking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/muhammadheryan/garment-erp/cmd/config"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/ledger"
	"github.com/muhammadheryan/garment-erp/model"
	batchrepo "github.com/muhammadheryan/garment-erp/repository/batch"
	orderrepo "github.com/muhammadheryan/garment-erp/repository/order"
	qcrepo "github.com/muhammadheryan/garment-erp/repository/qc"
	txrepo "github.com/muhammadheryan/garment-erp/repository/tx"
	"github.com/muhammadheryan/garment-erp/utils/errors"
	"github.com/muhammadheryan/garment-erp/utils/logger"
	"go.uber.org/zap"
)

type PickingApp interface {
	GetAssignment(ctx context.Context, assignmentID uint64) (*model.AssignmentDetail, error)
	RecordPick(ctx context.Context, req *model.RecordPickRequest) (*model.RecordPickResponse, error)
	ListPickingOrders(ctx context.Context) ([]model.PickingOrder, error)
	BackfillPickedFromNotes(ctx context.Context) (*model.BackfillResponse, error)
}

type pickingAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
	batchRepo batchrepo.BatchRepository
	qcRepo    qcrepo.QCRepository
}

func NewPickingApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, batchRepo batchrepo.BatchRepository, qcRepo qcrepo.QCRepository) PickingApp {
	return &pickingAppImpl{config: config, txRepo: txRepo, orderRepo: orderRepo, batchRepo: batchRepo, qcRepo: qcRepo}
}

func (s *pickingAppImpl) GetAssignment(ctx context.Context, assignmentID uint64) (*model.AssignmentDetail, error) {
	a, err := s.batchRepo.GetAssignment(ctx, assignmentID)
	if err != nil {
		logger.Error("[GetAssignment] get assignment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if a == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	rows, err := s.batchRepo.ListAssignmentSizes(ctx, assignmentID)
	if err != nil {
		logger.Error("[GetAssignment] list sizes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totals, err := s.qcRepo.SumReviewsByAssignment(ctx, assignmentID)
	if err != nil {
		logger.Error("[GetAssignment] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	reviews := model.IndexReviews(totals)

	detail := &model.AssignmentDetail{
		ID:        a.ID,
		OrderID:   a.OrderID,
		BatchID:   a.BatchID,
		BatchName: a.BatchName,
		Sizes:     make([]model.AssignmentSizeDetail, 0, len(rows)),
	}
	for _, row := range sortRows(rows) {
		st := row.State(reviews)
		detail.Sizes = append(detail.Sizes, model.AssignmentSizeDetail{
			Size:            row.Size,
			Allocated:       st.Allocated,
			Picked:          st.Picked,
			EffectivePicked: st.EffectivePicked(),
			PendingPick:     st.PendingPick(),
			Approved:        st.Approved,
			Rejected:        st.Rejected,
			Version:         row.Version,
		})
	}
	return detail, nil
}

// RecordPick adds delta to the picked counter of one size. The new value is
// kept inside the size's pick window according to the configured policy and
// written with a compare-and-swap on the row version.
func (s *pickingAppImpl) RecordPick(ctx context.Context, req *model.RecordPickRequest) (*model.RecordPickResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RecordPick] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	row, err := s.batchRepo.GetAssignmentSizeForUpdateTx(ctx, tx, req.AssignmentID, req.Size)
	if err != nil {
		logger.Error("[RecordPick] lock size", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	// version 0 means the client did not read the row first
	if req.Version != 0 && req.Version != row.Version {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	totals, err := s.qcRepo.SumReviewsByAssignmentTx(ctx, tx, req.AssignmentID)
	if err != nil {
		logger.Error("[RecordPick] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	state := row.State(model.IndexReviews(totals))

	picked, clamped, err := ledger.ApplyPick(state, req.Delta, s.config.Quantity.Policy)
	if err != nil {
		lo, hi := state.PickWindow()
		return nil, errors.SetCustomError(constant.ErrQuantityOutOfRange).
			WithMessage(fmt.Sprintf("size %s picked must stay within %d..%d", req.Size, lo, hi))
	}
	if clamped {
		logger.Info("[RecordPick] delta clamped",
			zap.Uint64("assignment_id", req.AssignmentID),
			zap.String("size", req.Size),
			zap.Int("delta", req.Delta),
			zap.Int("picked", picked))
	}

	version := row.Version
	if picked != row.PickedQuantity {
		if err := s.batchRepo.UpdatePickedQuantityTx(ctx, tx, row.ID, picked, row.Version); err != nil {
			if errors.IsType(err, constant.ErrConflict) {
				return nil, err
			}
			logger.Error("[RecordPick] update picked", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		version++
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RecordPick] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.RecordPickResponse{
		AssignmentID:    req.AssignmentID,
		Size:            req.Size,
		Picked:          picked,
		EffectivePicked: ledger.EffectivePicked(picked, state.Rejected),
		Clamped:         clamped,
		Version:         version,
	}, nil
}

// ListPickingOrders returns the orders that still have units to pick.
func (s *pickingAppImpl) ListPickingOrders(ctx context.Context) ([]model.PickingOrder, error) {
	orders, err := s.orderRepo.ListOrdersWithAssignments(ctx)
	if err != nil {
		logger.Error("[ListPickingOrders] list orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows, err := s.batchRepo.ListAllAssignmentSizes(ctx)
	if err != nil {
		logger.Error("[ListPickingOrders] list sizes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totals, err := s.qcRepo.SumAllReviews(ctx)
	if err != nil {
		logger.Error("[ListPickingOrders] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	reviews := model.IndexReviews(totals)

	byOrder := make(map[uint64][]model.PickingAssignment)
	pending := make(map[uint64]bool)
	pos := make(map[uint64]int)
	for _, row := range rows {
		st := row.State(reviews)
		i, ok := pos[row.AssignmentID]
		if !ok {
			byOrder[row.OrderID] = append(byOrder[row.OrderID], model.PickingAssignment{AssignmentID: row.AssignmentID, BatchID: row.BatchID})
			i = len(byOrder[row.OrderID]) - 1
			pos[row.AssignmentID] = i
		}
		pa := &byOrder[row.OrderID][i]
		pa.Allocated += st.Allocated
		pa.Picked += st.Picked
		pa.EffectivePicked += st.EffectivePicked()
		if st.PendingPick() > 0 {
			pending[row.OrderID] = true
		}
	}

	out := make([]model.PickingOrder, 0)
	for _, o := range orders {
		if !pending[o.ID] {
			continue
		}
		out = append(out, model.PickingOrder{
			OrderID:      o.ID,
			OrderNumber:  o.OrderNumber,
			CustomerName: o.CustomerName,
			Assignments:  byOrder[o.ID],
		})
	}
	return out, nil
}

type legacyNotes struct {
	PickedQuantities map[string]int `json:"picked_quantities"`
}

// BackfillPickedFromNotes copies picked quantities that older releases kept
// in the assignment notes blob into picked_quantity. Assignments that already
// have a picked value are left alone, so running it twice is harmless.
func (s *pickingAppImpl) BackfillPickedFromNotes(ctx context.Context) (*model.BackfillResponse, error) {
	assignments, err := s.batchRepo.ListAssignmentsWithNotes(ctx)
	if err != nil {
		logger.Error("[BackfillPickedFromNotes] list assignments", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := &model.BackfillResponse{}
	for _, a := range assignments {
		var notes legacyNotes
		if err := json.Unmarshal([]byte(a.Notes.String), &notes); err != nil || len(notes.PickedQuantities) == 0 {
			continue
		}
		n, err := s.backfillAssignment(ctx, a.ID, notes.PickedQuantities)
		if err != nil {
			logger.Error("[BackfillPickedFromNotes] backfill assignment", zap.Uint64("assignment_id", a.ID), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if n > 0 {
			res.Assignments++
			res.Sizes += n
		}
	}
	logger.Info("[BackfillPickedFromNotes] done", zap.Int("assignments", res.Assignments), zap.Int("sizes", res.Sizes))
	return res, nil
}

func (s *pickingAppImpl) backfillAssignment(ctx context.Context, assignmentID uint64, picked map[string]int) (int, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	rows, err := s.batchRepo.ListAssignmentSizesForUpdateTx(ctx, tx, assignmentID)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if row.PickedQuantity != 0 {
			return 0, nil
		}
	}

	// reviews recorded against the notes picks must stay covered
	totals, err := s.qcRepo.SumReviewsByAssignmentTx(ctx, tx, assignmentID)
	if err != nil {
		return 0, err
	}
	reviews := model.IndexReviews(totals)

	updated := 0
	for _, row := range rows {
		state := row.State(reviews)
		v := picked[row.Size]
		if v <= 0 && state.Reviewed() == 0 {
			continue
		}
		value, _ := ledger.ClampPick(state, v)
		if value == 0 {
			continue
		}
		if err := s.batchRepo.UpdatePickedQuantityTx(ctx, tx, row.ID, value, row.Version); err != nil {
			return 0, err
		}
		updated++
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		return 0, err
	}
	committed = true
	return updated, nil
}

func sortRows(rows []model.AssignmentSize) []model.AssignmentSize {
	bySize := make(map[string]model.AssignmentSize, len(rows))
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		bySize[r.Size] = r
		names = append(names, r.Size)
	}
	ledger.SortSizes(names)
	out := make([]model.AssignmentSize, 0, len(rows))
	for _, n := range names {
		out = append(out, bySize[n])
	}
	return out
}
