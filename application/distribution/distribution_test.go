package distribution_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	appdistribution "github.com/muhammadheryan/garment-erp/application/distribution"
	"github.com/muhammadheryan/garment-erp/cmd/config"
	"github.com/muhammadheryan/garment-erp/constant"
	batchmocks "github.com/muhammadheryan/garment-erp/mocks/repository/batch"
	ordermocks "github.com/muhammadheryan/garment-erp/mocks/repository/order"
	qcmocks "github.com/muhammadheryan/garment-erp/mocks/repository/qc"
	txmocks "github.com/muhammadheryan/garment-erp/mocks/repository/tx"
	"github.com/muhammadheryan/garment-erp/model"
	cerr "github.com/muhammadheryan/garment-erp/utils/errors"
	"github.com/stretchr/testify/mock"
)

// publisher is nil in these tests; publishing on a nil Publisher is a no-op.

func sizeLedger() []model.SizeQuantity {
	return []model.SizeQuantity{{Size: "S", Quantity: 10}, {Size: "M", Quantity: 5}}
}

func TestDistributionApp_GetDistribution(t *testing.T) {
	type fields struct {
		orderRepo *ordermocks.OrderRepository
		batchRepo *batchmocks.BatchRepository
	}
	tests := []struct {
		name     string
		fields   fields
		orderID  uint64
		mockCall func(f fields)
		want     *model.DistributionResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: remaining and per-batch max",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				batchRepo: batchmocks.NewBatchRepository(t),
			},
			orderID: 1,
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).
					Return(&model.OrderEntity{ID: 1, OrderNumber: "ORD-1", Status: constant.OrderStatusInProduction, Version: 2}, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Once()
				f.batchRepo.On("ListAssignmentsByOrder", mock.Anything, uint64(1)).
					Return([]model.AssignmentEntity{{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"}}, nil).Once()
				f.batchRepo.On("ListAssignmentSizesByOrder", mock.Anything, uint64(1)).
					Return([]model.AssignmentSize{
						{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "S", Quantity: 6, PickedQuantity: 2, Version: 3},
					}, nil).Once()
			},
			want: &model.DistributionResponse{
				OrderID:     1,
				OrderNumber: "ORD-1",
				Status:      constant.OrderStatusInProduction,
				Version:     2,
				Sizes: []model.DistributionSize{
					{Size: "S", Total: 10, Allocated: 6, Remaining: 4},
					{Size: "M", Total: 5, Allocated: 0, Remaining: 5},
				},
				Batches: []model.BatchDistribution{
					{
						AssignmentID: 100,
						BatchID:      7,
						BatchName:    "Line A",
						Sizes: []model.BatchSizeDistribution{
							{Size: "S", Quantity: 6, Picked: 2, Max: 10},
							{Size: "M", Quantity: 0, Picked: 0, Max: 5},
						},
					},
				},
			},
		},
		{
			name: "error: order not found",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				batchRepo: batchmocks.NewBatchRepository(t),
			},
			orderID: 9,
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, uint64(9)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: size ledger query fails",
			fields: fields{
				orderRepo: ordermocks.NewOrderRepository(t),
				batchRepo: batchmocks.NewBatchRepository(t),
			},
			orderID: 1,
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(&model.OrderEntity{ID: 1}, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appdistribution.NewDistributionApp(&config.Config{}, nil, tt.fields.orderRepo, tt.fields.batchRepo, nil, nil)

			got, err := app.GetDistribution(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetDistribution() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetDistribution() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDistributionApp_SaveDistribution(t *testing.T) {
	type fields struct {
		txRepo    *txmocks.TxRepository
		orderRepo *ordermocks.OrderRepository
		batchRepo *batchmocks.BatchRepository
		qcRepo    *qcmocks.QCRepository
	}
	newFields := func() fields {
		return fields{
			txRepo:    txmocks.NewTxRepository(t),
			orderRepo: ordermocks.NewOrderRepository(t),
			batchRepo: batchmocks.NewBatchRepository(t),
			qcRepo:    qcmocks.NewQCRepository(t),
		}
	}
	pendingOrder := &model.OrderEntity{ID: 1, OrderNumber: "ORD-1", Status: constant.OrderStatusPending, Version: 3}

	tests := []struct {
		name     string
		fields   fields
		req      *model.SaveDistributionRequest
		mockCall func(f fields)
		check    func(t *testing.T, got *model.DistributionResponse)
		wantErr  bool
		errCode  constant.ErrorType
		errMsg   string
	}{
		{
			name:   "success: replace plan, add a batch and drop an unpicked one",
			fields: newFields(),
			req: &model.SaveDistributionRequest{
				OrderID: 1,
				Version: 3,
				Allocations: []model.AllocationRequest{
					{BatchID: 7, Size: "S", Quantity: 6},
					{BatchID: 7, Size: "M", Quantity: 5},
					{BatchID: 8, Size: "S", Quantity: 4},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(pendingOrder, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Twice()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pendingOrder, nil).Once()
				f.batchRepo.On("ListAssignmentsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentEntity{
					{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"},
					{ID: 101, OrderID: 1, BatchID: 9, BatchName: "Line C"},
				}, nil).Once()
				f.batchRepo.On("GetActiveBatchIDsTx", mock.Anything, tx, []uint64{8}).Return([]uint64{8}, nil).Once()
				f.batchRepo.On("ListAssignmentSizesByOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentSize{
					{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "S", Quantity: 10, Version: 1},
					{ID: 1001, AssignmentID: 101, OrderID: 1, BatchID: 9, Size: "M", Quantity: 5, Version: 1},
				}, nil).Once()
				f.qcRepo.On("SumReviewsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.ReviewTotal{}, nil).Once()

				f.batchRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(1), uint64(7), uint64(42)).Return(uint64(100), nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(100), "S", 6).Return(nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(100), "M", 5).Return(nil).Once()
				f.batchRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(1), uint64(8), uint64(42)).Return(uint64(102), nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(102), "S", 4).Return(nil).Once()
				f.batchRepo.On("DeleteAssignmentSizeTx", mock.Anything, tx, uint64(1001)).Return(nil).Once()
				f.batchRepo.On("DeleteAssignmentTx", mock.Anything, tx, uint64(101)).Return(nil).Once()

				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusInProduction, int64(3)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				// reload
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).
					Return(&model.OrderEntity{ID: 1, OrderNumber: "ORD-1", Status: constant.OrderStatusInProduction, Version: 4}, nil).Once()
				f.batchRepo.On("ListAssignmentsByOrder", mock.Anything, uint64(1)).Return([]model.AssignmentEntity{
					{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"},
					{ID: 102, OrderID: 1, BatchID: 8, BatchName: "Line B"},
				}, nil).Once()
				f.batchRepo.On("ListAssignmentSizesByOrder", mock.Anything, uint64(1)).Return([]model.AssignmentSize{
					{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "S", Quantity: 6},
					{ID: 1002, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "M", Quantity: 5},
					{ID: 1003, AssignmentID: 102, OrderID: 1, BatchID: 8, Size: "S", Quantity: 4},
				}, nil).Once()
			},
			check: func(t *testing.T, got *model.DistributionResponse) {
				if got.Version != 4 || got.Status != constant.OrderStatusInProduction {
					t.Fatalf("version/status = %d/%s, want 4/in_production", got.Version, got.Status)
				}
				for _, s := range got.Sizes {
					if s.Remaining != 0 {
						t.Fatalf("size %s remaining = %d, want 0", s.Size, s.Remaining)
					}
				}
				if len(got.Batches) != 2 {
					t.Fatalf("batches = %d, want 2", len(got.Batches))
				}
			},
		},
		{
			name:   "success: fully rejected row left out of the plan is kept at zero",
			fields: newFields(),
			req: &model.SaveDistributionRequest{
				OrderID: 1,
				Version: 3,
				Allocations: []model.AllocationRequest{
					{BatchID: 7, Size: "S", Quantity: 10},
					{BatchID: 7, Size: "M", Quantity: 5},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(pendingOrder, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Twice()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pendingOrder, nil).Once()
				f.batchRepo.On("ListAssignmentsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentEntity{
					{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"},
					{ID: 101, OrderID: 1, BatchID: 9, BatchName: "Line C"},
				}, nil).Once()
				f.batchRepo.On("ListAssignmentSizesByOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentSize{
					{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "S", Quantity: 10, Version: 1},
					{ID: 1001, AssignmentID: 101, OrderID: 1, BatchID: 9, Size: "M", Quantity: 5, PickedQuantity: 3, Version: 2},
				}, nil).Once()
				// every picked unit was rejected, nothing effectively picked
				f.qcRepo.On("SumReviewsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.ReviewTotal{
					{OrderID: 1, AssignmentID: 101, Size: "M", Rejected: 3},
				}, nil).Once()

				f.batchRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(1), uint64(7), uint64(42)).Return(uint64(100), nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(100), "S", 10).Return(nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(100), "M", 5).Return(nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(101), "M", 0).Return(nil).Once()
				// no DeleteAssignmentSizeTx or DeleteAssignmentTx: the picked row keeps its QC history

				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusInProduction, int64(3)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).
					Return(&model.OrderEntity{ID: 1, OrderNumber: "ORD-1", Status: constant.OrderStatusInProduction, Version: 4}, nil).Once()
				f.batchRepo.On("ListAssignmentsByOrder", mock.Anything, uint64(1)).Return([]model.AssignmentEntity{
					{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"},
					{ID: 101, OrderID: 1, BatchID: 9, BatchName: "Line C"},
				}, nil).Once()
				f.batchRepo.On("ListAssignmentSizesByOrder", mock.Anything, uint64(1)).Return([]model.AssignmentSize{
					{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "S", Quantity: 10},
					{ID: 1002, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "M", Quantity: 5},
					{ID: 1001, AssignmentID: 101, OrderID: 1, BatchID: 9, Size: "M", Quantity: 0, PickedQuantity: 3},
				}, nil).Once()
			},
			check: func(t *testing.T, got *model.DistributionResponse) {
				if len(got.Batches) != 2 {
					t.Fatalf("batches = %d, want 2", len(got.Batches))
				}
				for _, s := range got.Sizes {
					if s.Remaining != 0 {
						t.Fatalf("size %s remaining = %d, want 0", s.Size, s.Remaining)
					}
				}
			},
		},
		{
			name:   "success: explicit zero for a picked row is written, not deleted",
			fields: newFields(),
			req: &model.SaveDistributionRequest{
				OrderID: 1,
				Version: 3,
				Allocations: []model.AllocationRequest{
					{BatchID: 7, Size: "S", Quantity: 10},
					{BatchID: 7, Size: "M", Quantity: 5},
					{BatchID: 9, Size: "M", Quantity: 0},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(pendingOrder, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Twice()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pendingOrder, nil).Once()
				f.batchRepo.On("ListAssignmentsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentEntity{
					{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"},
					{ID: 101, OrderID: 1, BatchID: 9, BatchName: "Line C"},
				}, nil).Once()
				f.batchRepo.On("ListAssignmentSizesByOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentSize{
					{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "S", Quantity: 10, Version: 1},
					{ID: 1001, AssignmentID: 101, OrderID: 1, BatchID: 9, Size: "M", Quantity: 5, PickedQuantity: 3, Version: 2},
				}, nil).Once()
				// every picked unit was rejected, nothing effectively picked
				f.qcRepo.On("SumReviewsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.ReviewTotal{
					{OrderID: 1, AssignmentID: 101, Size: "M", Rejected: 3},
				}, nil).Once()

				f.batchRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(1), uint64(7), uint64(42)).Return(uint64(100), nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(100), "S", 10).Return(nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(100), "M", 5).Return(nil).Once()
				f.batchRepo.On("UpsertAssignmentTx", mock.Anything, tx, uint64(1), uint64(9), uint64(42)).Return(uint64(101), nil).Once()
				f.batchRepo.On("UpsertAssignmentSizeTx", mock.Anything, tx, uint64(101), "M", 0).Return(nil).Once()
				// no DeleteAssignmentSizeTx or DeleteAssignmentTx: the picked row keeps its QC history

				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusInProduction, int64(3)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).
					Return(&model.OrderEntity{ID: 1, OrderNumber: "ORD-1", Status: constant.OrderStatusInProduction, Version: 4}, nil).Once()
				f.batchRepo.On("ListAssignmentsByOrder", mock.Anything, uint64(1)).Return([]model.AssignmentEntity{
					{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"},
					{ID: 101, OrderID: 1, BatchID: 9, BatchName: "Line C"},
				}, nil).Once()
				f.batchRepo.On("ListAssignmentSizesByOrder", mock.Anything, uint64(1)).Return([]model.AssignmentSize{
					{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "S", Quantity: 10},
					{ID: 1002, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "M", Quantity: 5},
					{ID: 1001, AssignmentID: 101, OrderID: 1, BatchID: 9, Size: "M", Quantity: 0, PickedQuantity: 3},
				}, nil).Once()
			},
			check: func(t *testing.T, got *model.DistributionResponse) {
				if len(got.Batches) != 2 {
					t.Fatalf("batches = %d, want 2", len(got.Batches))
				}
				for _, s := range got.Sizes {
					if s.Remaining != 0 {
						t.Fatalf("size %s remaining = %d, want 0", s.Size, s.Remaining)
					}
				}
			},
		},
		{
			name:   "error: incomplete plan is rejected before any write",
			fields: newFields(),
			req: &model.SaveDistributionRequest{
				OrderID: 1,
				Version: 3,
				Allocations: []model.AllocationRequest{
					{BatchID: 7, Size: "S", Quantity: 8},
					{BatchID: 7, Size: "M", Quantity: 5},
				},
			},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(pendingOrder, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDistributionInvalid,
			errMsg:  "size S has 2 remaining",
		},
		{
			name:   "error: stale version",
			fields: newFields(),
			req: &model.SaveDistributionRequest{
				OrderID: 1,
				Version: 2,
				Allocations: []model.AllocationRequest{
					{BatchID: 7, Size: "S", Quantity: 10},
					{BatchID: 7, Size: "M", Quantity: 5},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(pendingOrder, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pendingOrder, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name:   "error: plan cuts a batch below its picked units",
			fields: newFields(),
			req: &model.SaveDistributionRequest{
				OrderID: 1,
				Version: 3,
				Allocations: []model.AllocationRequest{
					{BatchID: 7, Size: "S", Quantity: 2},
					{BatchID: 8, Size: "S", Quantity: 8},
					{BatchID: 7, Size: "M", Quantity: 5},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(pendingOrder, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pendingOrder, nil).Once()
				f.batchRepo.On("ListAssignmentsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentEntity{
					{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"},
				}, nil).Once()
				f.batchRepo.On("GetActiveBatchIDsTx", mock.Anything, tx, []uint64{8}).Return([]uint64{8}, nil).Once()
				f.batchRepo.On("ListAssignmentSizesByOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentSize{
					{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "S", Quantity: 10, PickedQuantity: 6, Version: 4},
				}, nil).Once()
				// one of the six picked units was rejected, five still count
				f.qcRepo.On("SumReviewsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.ReviewTotal{
					{OrderID: 1, AssignmentID: 100, Size: "S", Approved: 3, Rejected: 1},
				}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrAllocationBelowPicked,
			errMsg:  "batch Line A size S has 5 picked, cannot allocate 2",
		},
		{
			name:   "error: new batch is not active",
			fields: newFields(),
			req: &model.SaveDistributionRequest{
				OrderID: 1,
				Version: 3,
				Allocations: []model.AllocationRequest{
					{BatchID: 5, Size: "S", Quantity: 10},
					{BatchID: 5, Size: "M", Quantity: 5},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(pendingOrder, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetOrderForUpdateTx", mock.Anything, tx, uint64(1)).Return(pendingOrder, nil).Once()
				f.batchRepo.On("ListAssignmentsByOrderTx", mock.Anything, tx, uint64(1)).Return([]model.AssignmentEntity{}, nil).Once()
				f.batchRepo.On("GetActiveBatchIDsTx", mock.Anything, tx, []uint64{5}).Return([]uint64{}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDistributionInvalid,
			errMsg:  "batch 5 is not active",
		},
		{
			name:   "error: begin tx fails",
			fields: newFields(),
			req: &model.SaveDistributionRequest{
				OrderID: 1,
				Version: 3,
				Allocations: []model.AllocationRequest{
					{BatchID: 7, Size: "S", Quantity: 10},
					{BatchID: 7, Size: "M", Quantity: 5},
				},
			},
			mockCall: func(f fields) {
				f.orderRepo.On("GetOrder", mock.Anything, uint64(1)).Return(pendingOrder, nil).Once()
				f.orderRepo.On("GetSizeLedger", mock.Anything, uint64(1)).Return(sizeLedger(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("pool exhausted")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appdistribution.NewDistributionApp(&config.Config{}, tt.fields.txRepo, tt.fields.orderRepo, tt.fields.batchRepo, tt.fields.qcRepo, nil)

			got, err := app.SaveDistribution(context.Background(), 42, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SaveDistribution() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errMsg != "" && ce.Error() != tt.errMsg {
					t.Fatalf("error message = %q, want %q", ce.Error(), tt.errMsg)
				}
				return
			}
			tt.check(t, got)
		})
	}
}
