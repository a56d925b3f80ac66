package distribution

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
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

type DistributionApp interface {
	GetDistribution(ctx context.Context, orderID uint64) (*model.DistributionResponse, error)
	ListAvailableBatches(ctx context.Context) ([]model.BatchEntity, error)
	SaveDistribution(ctx context.Context, userID uint64, req *model.SaveDistributionRequest) (*model.DistributionResponse, error)
}

type distributionAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
	batchRepo batchrepo.BatchRepository
	qcRepo    qcrepo.QCRepository
	publisher *rabbitmq.Publisher
}

func NewDistributionApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, batchRepo batchrepo.BatchRepository, qcRepo qcrepo.QCRepository, publisher *rabbitmq.Publisher) DistributionApp {
	return &distributionAppImpl{config: config, txRepo: txRepo, orderRepo: orderRepo, batchRepo: batchRepo, qcRepo: qcRepo, publisher: publisher}
}

func (s *distributionAppImpl) GetDistribution(ctx context.Context, orderID uint64) (*model.DistributionResponse, error) {
	order, err := s.orderRepo.GetOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetDistribution] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	sizes, err := s.sizeLedger(ctx, orderID)
	if err != nil {
		logger.Error("[GetDistribution] get size ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	assignments, err := s.batchRepo.ListAssignmentsByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetDistribution] list assignments", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	rows, err := s.batchRepo.ListAssignmentSizesByOrder(ctx, orderID)
	if err != nil {
		logger.Error("[GetDistribution] list assignment sizes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return buildDistribution(order, sizes, assignments, rows), nil
}

func (s *distributionAppImpl) ListAvailableBatches(ctx context.Context) ([]model.BatchEntity, error) {
	batches, err := s.batchRepo.ListActiveBatches(ctx)
	if err != nil {
		logger.Error("[ListAvailableBatches] list batches", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return batches, nil
}

// SaveDistribution replaces the order's batch allocation with req. The plan is
// validated against the size ledger before anything is written, then applied
// in one transaction under the order row lock.
func (s *distributionAppImpl) SaveDistribution(ctx context.Context, userID uint64, req *model.SaveDistributionRequest) (*model.DistributionResponse, error) {
	order, err := s.orderRepo.GetOrder(ctx, req.OrderID)
	if err != nil {
		logger.Error("[SaveDistribution] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	sizes, err := s.sizeLedger(ctx, req.OrderID)
	if err != nil {
		logger.Error("[SaveDistribution] get size ledger", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	plan := make([]ledger.Allocation, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		plan = append(plan, ledger.Allocation{BatchID: a.BatchID, Size: a.Size, Quantity: a.Quantity})
	}
	if err := ledger.ValidateDistribution(sizes, plan); err != nil {
		var verr *ledger.ValidationError
		if stderrors.As(err, &verr) {
			return nil, errors.SetCustomError(constant.ErrDistributionInvalid).WithMessage(verr.Error())
		}
		return nil, errors.SetCustomError(constant.ErrDistributionInvalid)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SaveDistribution] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	locked, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, req.OrderID)
	if err != nil {
		logger.Error("[SaveDistribution] lock order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if locked == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if locked.Version != req.Version {
		logger.Info("[SaveDistribution] stale version", zap.Uint64("order_id", req.OrderID), zap.Int64("have", locked.Version), zap.Int64("got", req.Version))
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	assignments, err := s.batchRepo.ListAssignmentsByOrderTx(ctx, tx, req.OrderID)
	if err != nil {
		logger.Error("[SaveDistribution] list assignments", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.checkBatchesActive(ctx, tx, plan, assignments); err != nil {
		return nil, err
	}

	rows, err := s.batchRepo.ListAssignmentSizesByOrderForUpdateTx(ctx, tx, req.OrderID)
	if err != nil {
		logger.Error("[SaveDistribution] lock assignment sizes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	totals, err := s.qcRepo.SumReviewsByOrderTx(ctx, tx, req.OrderID)
	if err != nil {
		logger.Error("[SaveDistribution] sum reviews", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	changes, err := diffPlan(plan, assignments, rows, model.IndexReviews(totals))
	if err != nil {
		return nil, err
	}

	// upsert planned batches first so the assignment ids exist for their sizes
	for _, batchID := range changes.batchOrder {
		assignmentID, err := s.batchRepo.UpsertAssignmentTx(ctx, tx, req.OrderID, batchID, userID)
		if err != nil {
			logger.Error("[SaveDistribution] upsert assignment", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		for _, up := range changes.upserts[batchID] {
			if err := s.batchRepo.UpsertAssignmentSizeTx(ctx, tx, assignmentID, up.Size, up.Quantity); err != nil {
				logger.Error("[SaveDistribution] upsert assignment size", zap.String("error", err.Error()))
				return nil, errors.SetCustomError(constant.ErrInternal)
			}
		}
	}

	for _, z := range changes.zeroed {
		if err := s.batchRepo.UpsertAssignmentSizeTx(ctx, tx, z.AssignmentID, z.Size, 0); err != nil {
			logger.Error("[SaveDistribution] zero assignment size", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	for _, sizeID := range changes.deletedSizes {
		if err := s.batchRepo.DeleteAssignmentSizeTx(ctx, tx, sizeID); err != nil {
			logger.Error("[SaveDistribution] delete assignment size", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	for _, assignmentID := range changes.deletedAssignments {
		if err := s.batchRepo.DeleteAssignmentTx(ctx, tx, assignmentID); err != nil {
			logger.Error("[SaveDistribution] delete assignment", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	// always bumps the version, even when the status stays where it is
	status := constant.AdvanceStatus(locked.Status, constant.OrderStatusInProduction)
	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, req.OrderID, status, locked.Version); err != nil {
		if errors.IsType(err, constant.ErrConflict) {
			return nil, err
		}
		logger.Error("[SaveDistribution] update order status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SaveDistribution] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	allocated := 0
	for _, a := range plan {
		allocated += a.Quantity
	}
	msg := rabbitmq.DistributionSavedMessage{
		OrderID:     req.OrderID,
		Version:     locked.Version + 1,
		Assignments: len(changes.batchOrder),
		Allocated:   allocated,
		SavedBy:     userID,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishDistributionSaved(msg); err != nil {
		logger.Error("[SaveDistribution] publish distribution saved", zap.String("error", err.Error()))
	}

	return s.GetDistribution(ctx, req.OrderID)
}

func (s *distributionAppImpl) sizeLedger(ctx context.Context, orderID uint64) (ledger.SizeLedger, error) {
	rows, err := s.orderRepo.GetSizeLedger(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ledger.SizeLedger(model.QuantityBySize(rows)), nil
}

// checkBatchesActive rejects plans that bring in a batch which is not active.
// Batches already assigned to the order may stay even if they were retired.
func (s *distributionAppImpl) checkBatchesActive(ctx context.Context, tx *sqlx.Tx, plan []ledger.Allocation, assignments []model.AssignmentEntity) error {
	assigned := make(map[uint64]bool, len(assignments))
	for _, a := range assignments {
		assigned[a.BatchID] = true
	}
	seen := make(map[uint64]bool)
	newBatches := make([]uint64, 0)
	for _, a := range plan {
		if assigned[a.BatchID] || seen[a.BatchID] || a.Quantity == 0 {
			continue
		}
		seen[a.BatchID] = true
		newBatches = append(newBatches, a.BatchID)
	}
	if len(newBatches) == 0 {
		return nil
	}

	active, err := s.batchRepo.GetActiveBatchIDsTx(ctx, tx, newBatches)
	if err != nil {
		logger.Error("[SaveDistribution] get active batches", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	ok := make(map[uint64]bool, len(active))
	for _, id := range active {
		ok[id] = true
	}
	for _, id := range newBatches {
		if !ok[id] {
			return errors.SetCustomError(constant.ErrDistributionInvalid).WithMessage(fmt.Sprintf("batch %d is not active", id))
		}
	}
	return nil
}

type sizeUpsert struct {
	Size     string
	Quantity int
}

type planChanges struct {
	batchOrder         []uint64
	upserts            map[uint64][]sizeUpsert
	zeroed             []model.AssignmentSize
	deletedSizes       []uint64
	deletedAssignments []uint64
}

// diffPlan works out the writes that turn the stored allocation into plan.
// A size row that has been picked is never deleted: it is kept at zero so its
// QC history stays attached. A plan may not cut a size below what is
// effectively picked.
func diffPlan(plan []ledger.Allocation, assignments []model.AssignmentEntity, rows []model.AssignmentSize, reviews map[model.ReviewKey]model.ReviewTotal) (*planChanges, error) {
	type key struct {
		batch uint64
		size  string
	}
	planned := make(map[key]int, len(plan))
	for _, a := range plan {
		planned[key{batch: a.BatchID, size: a.Size}] = a.Quantity
	}

	existing := make(map[key]model.AssignmentSize, len(rows))
	batchName := make(map[uint64]string, len(assignments))
	for _, a := range assignments {
		batchName[a.BatchID] = a.BatchName
	}
	for _, row := range rows {
		existing[key{batch: row.BatchID, size: row.Size}] = row
		q, inPlan := planned[key{batch: row.BatchID, size: row.Size}]
		if !inPlan {
			q = 0
		}
		if effective := row.State(reviews).EffectivePicked(); q < effective {
			name := batchName[row.BatchID]
			if name == "" {
				name = fmt.Sprintf("%d", row.BatchID)
			}
			return nil, errors.SetCustomError(constant.ErrAllocationBelowPicked).
				WithMessage(fmt.Sprintf("batch %s size %s has %d picked, cannot allocate %d", name, row.Size, effective, q))
		}
	}

	changes := &planChanges{upserts: make(map[uint64][]sizeUpsert)}
	for _, a := range plan {
		row, stored := existing[key{batch: a.BatchID, size: a.Size}]
		if a.Quantity == 0 && (!stored || row.PickedQuantity == 0) {
			continue
		}
		if _, ok := changes.upserts[a.BatchID]; !ok {
			changes.batchOrder = append(changes.batchOrder, a.BatchID)
		}
		changes.upserts[a.BatchID] = append(changes.upserts[a.BatchID], sizeUpsert{Size: a.Size, Quantity: a.Quantity})
	}

	kept := make(map[uint64]bool)
	for _, row := range rows {
		k := key{batch: row.BatchID, size: row.Size}
		if q := planned[k]; q > 0 {
			kept[row.AssignmentID] = true
			continue
		}
		if row.PickedQuantity > 0 {
			kept[row.AssignmentID] = true
			if _, inPlan := planned[k]; !inPlan {
				changes.zeroed = append(changes.zeroed, row)
			}
			continue
		}
		changes.deletedSizes = append(changes.deletedSizes, row.ID)
	}

	for _, a := range assignments {
		if !kept[a.ID] {
			if _, planning := changes.upserts[a.BatchID]; !planning {
				changes.deletedAssignments = append(changes.deletedAssignments, a.ID)
			}
		}
	}
	return changes, nil
}

func buildDistribution(order *model.OrderEntity, sizes ledger.SizeLedger, assignments []model.AssignmentEntity, rows []model.AssignmentSize) *model.DistributionResponse {
	allocations := make([]ledger.Allocation, 0, len(rows))
	byAssignment := make(map[uint64]map[string]model.AssignmentSize, len(assignments))
	for _, row := range rows {
		allocations = append(allocations, ledger.Allocation{BatchID: row.BatchID, Size: row.Size, Quantity: row.Quantity})
		if byAssignment[row.AssignmentID] == nil {
			byAssignment[row.AssignmentID] = make(map[string]model.AssignmentSize)
		}
		byAssignment[row.AssignmentID][row.Size] = row
	}
	remaining := ledger.ComputeRemaining(sizes, allocations)
	sizeNames := sizes.Sizes()

	res := &model.DistributionResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Version:     order.Version,
		Sizes:       make([]model.DistributionSize, 0, len(sizeNames)),
		Batches:     make([]model.BatchDistribution, 0, len(assignments)),
	}
	for _, size := range sizeNames {
		res.Sizes = append(res.Sizes, model.DistributionSize{
			Size:      size,
			Total:     sizes[size],
			Allocated: sizes[size] - remaining[size],
			Remaining: remaining[size],
		})
	}

	for _, a := range assignments {
		bd := model.BatchDistribution{
			AssignmentID: a.ID,
			BatchID:      a.BatchID,
			BatchName:    a.BatchName,
			Sizes:        make([]model.BatchSizeDistribution, 0, len(sizeNames)),
		}
		for _, size := range sizeNames {
			row := byAssignment[a.ID][size]
			bd.Sizes = append(bd.Sizes, model.BatchSizeDistribution{
				Size:     size,
				Quantity: row.Quantity,
				Picked:   row.PickedQuantity,
				Max:      ledger.MaxForBatch(remaining[size], row.Quantity),
			})
		}
		res.Batches = append(res.Batches, bd)
	}
	return res
}
