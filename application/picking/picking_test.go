package picking_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/jmoiron/sqlx"
	apppicking "github.com/muhammadheryan/garment-erp/application/picking"
	"github.com/muhammadheryan/garment-erp/cmd/config"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/ledger"
	batchmocks "github.com/muhammadheryan/garment-erp/mocks/repository/batch"
	ordermocks "github.com/muhammadheryan/garment-erp/mocks/repository/order"
	qcmocks "github.com/muhammadheryan/garment-erp/mocks/repository/qc"
	txmocks "github.com/muhammadheryan/garment-erp/mocks/repository/tx"
	"github.com/muhammadheryan/garment-erp/model"
	cerr "github.com/muhammadheryan/garment-erp/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	config    *config.Config
	txRepo    *txmocks.TxRepository
	orderRepo *ordermocks.OrderRepository
	batchRepo *batchmocks.BatchRepository
	qcRepo    *qcmocks.QCRepository
}

func newFields(t *testing.T, policy ledger.Policy) fields {
	return fields{
		config:    &config.Config{Quantity: config.QuantityConfig{Policy: policy}},
		txRepo:    txmocks.NewTxRepository(t),
		orderRepo: ordermocks.NewOrderRepository(t),
		batchRepo: batchmocks.NewBatchRepository(t),
		qcRepo:    qcmocks.NewQCRepository(t),
	}
}

func (f fields) app() apppicking.PickingApp {
	return apppicking.NewPickingApp(f.config, f.txRepo, f.orderRepo, f.batchRepo, f.qcRepo)
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestPickingApp_RecordPick(t *testing.T) {
	sizeRow := func(picked int, version int64) *model.AssignmentSize {
		return &model.AssignmentSize{ID: 1000, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "M", Quantity: 10, PickedQuantity: picked, Version: version}
	}
	reviewed := func(approved, rejected int) []model.ReviewTotal {
		return []model.ReviewTotal{{OrderID: 1, AssignmentID: 100, Size: "M", Approved: approved, Rejected: rejected}}
	}

	tests := []struct {
		name     string
		fields   fields
		req      *model.RecordPickRequest
		mockCall func(f fields)
		want     *model.RecordPickResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: delta inside the window",
			fields: newFields(t, ledger.PolicyClamp),
			req:    &model.RecordPickRequest{AssignmentID: 100, Size: "M", Delta: 4, Version: 2},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.batchRepo.On("GetAssignmentSizeForUpdateTx", mock.Anything, tx, uint64(100), "M").Return(sizeRow(3, 2), nil).Once()
				f.qcRepo.On("SumReviewsByAssignmentTx", mock.Anything, tx, uint64(100)).Return([]model.ReviewTotal{}, nil).Once()
				f.batchRepo.On("UpdatePickedQuantityTx", mock.Anything, tx, uint64(1000), 7, int64(2)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.RecordPickResponse{AssignmentID: 100, Size: "M", Picked: 7, EffectivePicked: 7, Version: 3},
		},
		{
			name:   "success: overshoot is clamped to the allocation",
			fields: newFields(t, ledger.PolicyClamp),
			req:    &model.RecordPickRequest{AssignmentID: 100, Size: "M", Delta: 5, Version: 4},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.batchRepo.On("GetAssignmentSizeForUpdateTx", mock.Anything, tx, uint64(100), "M").Return(sizeRow(8, 4), nil).Once()
				f.qcRepo.On("SumReviewsByAssignmentTx", mock.Anything, tx, uint64(100)).Return([]model.ReviewTotal{}, nil).Once()
				f.batchRepo.On("UpdatePickedQuantityTx", mock.Anything, tx, uint64(1000), 10, int64(4)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.RecordPickResponse{AssignmentID: 100, Size: "M", Picked: 10, EffectivePicked: 10, Clamped: true, Version: 5},
		},
		{
			name:   "success: rejected units can be picked again",
			fields: newFields(t, ledger.PolicyClamp),
			req:    &model.RecordPickRequest{AssignmentID: 100, Size: "M", Delta: 3, Version: 6},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.batchRepo.On("GetAssignmentSizeForUpdateTx", mock.Anything, tx, uint64(100), "M").Return(sizeRow(10, 6), nil).Once()
				f.qcRepo.On("SumReviewsByAssignmentTx", mock.Anything, tx, uint64(100)).Return(reviewed(7, 3), nil).Once()
				f.batchRepo.On("UpdatePickedQuantityTx", mock.Anything, tx, uint64(1000), 13, int64(6)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.RecordPickResponse{AssignmentID: 100, Size: "M", Picked: 13, EffectivePicked: 10, Version: 7},
		},
		{
			name:   "success: reviewed units cannot be un-picked, nothing is written",
			fields: newFields(t, ledger.PolicyClamp),
			req:    &model.RecordPickRequest{AssignmentID: 100, Size: "M", Delta: -2, Version: 6},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.batchRepo.On("GetAssignmentSizeForUpdateTx", mock.Anything, tx, uint64(100), "M").Return(sizeRow(10, 6), nil).Once()
				f.qcRepo.On("SumReviewsByAssignmentTx", mock.Anything, tx, uint64(100)).Return(reviewed(7, 3), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.RecordPickResponse{AssignmentID: 100, Size: "M", Picked: 10, EffectivePicked: 7, Clamped: true, Version: 6},
		},
		{
			name:   "error: reject policy refuses an overshoot",
			fields: newFields(t, ledger.PolicyReject),
			req:    &model.RecordPickRequest{AssignmentID: 100, Size: "M", Delta: 5},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.batchRepo.On("GetAssignmentSizeForUpdateTx", mock.Anything, tx, uint64(100), "M").Return(sizeRow(8, 4), nil).Once()
				f.qcRepo.On("SumReviewsByAssignmentTx", mock.Anything, tx, uint64(100)).Return([]model.ReviewTotal{}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrQuantityOutOfRange,
		},
		{
			name:   "error: stale version",
			fields: newFields(t, ledger.PolicyClamp),
			req:    &model.RecordPickRequest{AssignmentID: 100, Size: "M", Delta: 1, Version: 3},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.batchRepo.On("GetAssignmentSizeForUpdateTx", mock.Anything, tx, uint64(100), "M").Return(sizeRow(8, 4), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name:   "error: size not allocated to the assignment",
			fields: newFields(t, ledger.PolicyClamp),
			req:    &model.RecordPickRequest{AssignmentID: 100, Size: "XL", Delta: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.batchRepo.On("GetAssignmentSizeForUpdateTx", mock.Anything, tx, uint64(100), "XL").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:   "error: version moved between lock and write",
			fields: newFields(t, ledger.PolicyClamp),
			req:    &model.RecordPickRequest{AssignmentID: 100, Size: "M", Delta: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.batchRepo.On("GetAssignmentSizeForUpdateTx", mock.Anything, tx, uint64(100), "M").Return(sizeRow(1, 2), nil).Once()
				f.qcRepo.On("SumReviewsByAssignmentTx", mock.Anything, tx, uint64(100)).Return([]model.ReviewTotal{}, nil).Once()
				f.batchRepo.On("UpdatePickedQuantityTx", mock.Anything, tx, uint64(1000), 2, int64(2)).
					Return(cerr.SetCustomError(constant.ErrConflict)).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}

			got, err := tt.fields.app().RecordPick(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RecordPick() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("RecordPick() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPickingApp_GetAssignment(t *testing.T) {
	f := newFields(t, ledger.PolicyClamp)
	f.batchRepo.On("GetAssignment", mock.Anything, uint64(100)).
		Return(&model.AssignmentEntity{ID: 100, OrderID: 1, BatchID: 7, BatchName: "Line A"}, nil).Once()
	f.batchRepo.On("ListAssignmentSizes", mock.Anything, uint64(100)).Return([]model.AssignmentSize{
		{ID: 1001, AssignmentID: 100, Size: "L", Quantity: 4, PickedQuantity: 4, Version: 2},
		{ID: 1000, AssignmentID: 100, Size: "M", Quantity: 10, PickedQuantity: 13, Version: 7},
	}, nil).Once()
	f.qcRepo.On("SumReviewsByAssignment", mock.Anything, uint64(100)).Return([]model.ReviewTotal{
		{AssignmentID: 100, Size: "M", Approved: 7, Rejected: 3},
	}, nil).Once()

	got, err := f.app().GetAssignment(context.Background(), 100)
	if err != nil {
		t.Fatalf("GetAssignment() error = %v", err)
	}
	want := &model.AssignmentDetail{
		ID:        100,
		OrderID:   1,
		BatchID:   7,
		BatchName: "Line A",
		Sizes: []model.AssignmentSizeDetail{
			{Size: "M", Allocated: 10, Picked: 13, EffectivePicked: 10, PendingPick: 0, Approved: 7, Rejected: 3, Version: 7},
			{Size: "L", Allocated: 4, Picked: 4, EffectivePicked: 4, PendingPick: 0, Version: 2},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("GetAssignment() = %+v, want %+v", got, want)
	}
}

func TestPickingApp_GetAssignment_NotFound(t *testing.T) {
	f := newFields(t, ledger.PolicyClamp)
	f.batchRepo.On("GetAssignment", mock.Anything, uint64(5)).Return(nil, nil).Once()

	_, err := f.app().GetAssignment(context.Background(), 5)
	assertErrCode(t, err, constant.ErrNotFound)
}

func TestPickingApp_ListPickingOrders(t *testing.T) {
	f := newFields(t, ledger.PolicyClamp)
	f.orderRepo.On("ListOrdersWithAssignments", mock.Anything).Return([]model.OrderEntity{
		{ID: 1, OrderNumber: "ORD-1", CustomerName: "Acme"},
		{ID: 2, OrderNumber: "ORD-2", CustomerName: "Globex"},
	}, nil).Once()
	f.batchRepo.On("ListAllAssignmentSizes", mock.Anything).Return([]model.AssignmentSize{
		{ID: 1, AssignmentID: 100, OrderID: 1, BatchID: 7, Size: "M", Quantity: 10, PickedQuantity: 10},
		{ID: 2, AssignmentID: 200, OrderID: 2, BatchID: 8, Size: "M", Quantity: 5, PickedQuantity: 5},
		{ID: 3, AssignmentID: 200, OrderID: 2, BatchID: 8, Size: "L", Quantity: 5, PickedQuantity: 2},
	}, nil).Once()
	// order 1 had two units rejected, so they must be picked again
	f.qcRepo.On("SumAllReviews", mock.Anything).Return([]model.ReviewTotal{
		{OrderID: 1, AssignmentID: 100, Size: "M", Approved: 8, Rejected: 2},
	}, nil).Once()

	got, err := f.app().ListPickingOrders(context.Background())
	if err != nil {
		t.Fatalf("ListPickingOrders() error = %v", err)
	}
	want := []model.PickingOrder{
		{
			OrderID: 1, OrderNumber: "ORD-1", CustomerName: "Acme",
			Assignments: []model.PickingAssignment{{AssignmentID: 100, BatchID: 7, Allocated: 10, Picked: 10, EffectivePicked: 8}},
		},
		{
			OrderID: 2, OrderNumber: "ORD-2", CustomerName: "Globex",
			Assignments: []model.PickingAssignment{{AssignmentID: 200, BatchID: 8, Allocated: 10, Picked: 7, EffectivePicked: 7}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListPickingOrders() = %+v, want %+v", got, want)
	}
}

func TestPickingApp_BackfillPickedFromNotes(t *testing.T) {
	f := newFields(t, ledger.PolicyClamp)
	notes := func(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }

	f.batchRepo.On("ListAssignmentsWithNotes", mock.Anything).Return([]model.AssignmentEntity{
		{ID: 100, Notes: notes(`{"picked_quantities":{"S":3,"M":20}}`)},
		{ID: 101, Notes: notes(`{"picked_quantities":{"S":1}}`)},
		{ID: 102, Notes: notes(`not json`)},
	}, nil).Once()

	tx1 := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx1, nil).Once()
	f.batchRepo.On("ListAssignmentSizesForUpdateTx", mock.Anything, tx1, uint64(100)).Return([]model.AssignmentSize{
		{ID: 1000, AssignmentID: 100, Size: "S", Quantity: 5, Version: 1},
		{ID: 1001, AssignmentID: 100, Size: "M", Quantity: 10, Version: 1},
		{ID: 1002, AssignmentID: 100, Size: "L", Quantity: 2, Version: 1},
	}, nil).Once()
	f.qcRepo.On("SumReviewsByAssignmentTx", mock.Anything, tx1, uint64(100)).Return([]model.ReviewTotal{}, nil).Once()
	f.batchRepo.On("UpdatePickedQuantityTx", mock.Anything, tx1, uint64(1000), 3, int64(1)).Return(nil).Once()
	f.batchRepo.On("UpdatePickedQuantityTx", mock.Anything, tx1, uint64(1001), 10, int64(1)).Return(nil).Once()
	f.txRepo.On("CommitTx", tx1).Return(nil).Once()

	// already migrated, left untouched
	tx2 := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx2, nil).Once()
	f.batchRepo.On("ListAssignmentSizesForUpdateTx", mock.Anything, tx2, uint64(101)).Return([]model.AssignmentSize{
		{ID: 1100, AssignmentID: 101, Size: "S", Quantity: 5, PickedQuantity: 1, Version: 2},
	}, nil).Once()
	f.txRepo.On("RollbackTx", tx2).Return(nil).Once()

	got, err := f.app().BackfillPickedFromNotes(context.Background())
	if err != nil {
		t.Fatalf("BackfillPickedFromNotes() error = %v", err)
	}
	want := &model.BackfillResponse{Assignments: 1, Sizes: 2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BackfillPickedFromNotes() = %+v, want %+v", got, want)
	}
}

func TestPickingApp_BackfillPickedFromNotes_KeepsReviewedUnits(t *testing.T) {
	notes := sql.NullString{String: `{"picked_quantities":{"M":13}}`, Valid: true}

	tests := []struct {
		name    string
		reviews []model.ReviewTotal
		want    int
	}{
		{
			name: "re-picked size with full review history",
			reviews: []model.ReviewTotal{
				{OrderID: 1, AssignmentID: 100, Size: "M", Approved: 10, Rejected: 3},
			},
			want: 13,
		},
		{
			name:    "no reviews clamps to allocation",
			reviews: []model.ReviewTotal{},
			want:    10,
		},
		{
			name: "partial rejects widen the window",
			reviews: []model.ReviewTotal{
				{OrderID: 1, AssignmentID: 100, Size: "M", Approved: 4, Rejected: 2},
			},
			want: 12,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t, ledger.PolicyClamp)
			f.batchRepo.On("ListAssignmentsWithNotes", mock.Anything).Return([]model.AssignmentEntity{
				{ID: 100, Notes: notes},
			}, nil).Once()

			tx := &sqlx.Tx{}
			f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
			f.batchRepo.On("ListAssignmentSizesForUpdateTx", mock.Anything, tx, uint64(100)).Return([]model.AssignmentSize{
				{ID: 1001, AssignmentID: 100, OrderID: 1, Size: "M", Quantity: 10, Version: 1},
			}, nil).Once()
			f.qcRepo.On("SumReviewsByAssignmentTx", mock.Anything, tx, uint64(100)).Return(tt.reviews, nil).Once()
			f.batchRepo.On("UpdatePickedQuantityTx", mock.Anything, tx, uint64(1001), tt.want, int64(1)).Return(nil).Once()
			f.txRepo.On("CommitTx", tx).Return(nil).Once()

			got, err := f.app().BackfillPickedFromNotes(context.Background())
			if err != nil {
				t.Fatalf("BackfillPickedFromNotes() error = %v", err)
			}
			if got.Sizes != 1 {
				t.Fatalf("BackfillPickedFromNotes() sizes = %d, want 1", got.Sizes)
			}
			for _, r := range tt.reviews {
				if r.Approved+r.Rejected > tt.want {
					t.Fatalf("picked %d below reviewed %d", tt.want, r.Approved+r.Rejected)
				}
			}
		})
	}
}
