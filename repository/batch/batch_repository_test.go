package batch

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/garment-erp/constant"
	"github.com/muhammadheryan/garment-erp/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sizeColumns = []string{"id", "order_batch_assignment_id", "order_id", "batch_id", "size_name", "quantity", "picked_quantity", "version"}

func newMockRepo(t *testing.T) (BatchRepository, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "mysql")
	t.Cleanup(func() { db.Close() })
	return NewBatchRepository(db), db, mock
}

func TestGetActiveBatchIDsTx(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM batches WHERE status = ? AND id IN (?, ?)")).
		WithArgs(constant.BatchStatusActive, uint64(1), uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	tx, err := db.Beginx()
	require.NoError(t, err)
	ids, err := repo.GetActiveBatchIDsTx(context.Background(), tx, []uint64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveBatchIDsTx_Empty(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	ids, err := repo.GetActiveBatchIDsTx(context.Background(), tx, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssignmentSizesByOrder(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(sizeBase + " WHERE a.order_id = ? ORDER BY d.id")).
		WithArgs(uint64(3)).
		WillReturnRows(sqlmock.NewRows(sizeColumns).
			AddRow(11, 4, 3, 9, "M", 15, 6, 2).
			AddRow(12, 4, 3, 9, "L", 5, 0, 1))

	sizes, err := repo.ListAssignmentSizesByOrder(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, sizes, 2)
	assert.Equal(t, uint64(4), sizes[0].AssignmentID)
	assert.Equal(t, 6, sizes[0].PickedQuantity)
	assert.Equal(t, int64(2), sizes[0].Version)
}

func TestGetAssignmentSizeForUpdateTx_NotFound(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE d.order_batch_assignment_id = ? AND d.size_name = ? FOR UPDATE")).
		WithArgs(uint64(4), "XL").
		WillReturnRows(sqlmock.NewRows(sizeColumns))

	tx, err := db.Beginx()
	require.NoError(t, err)
	size, err := repo.GetAssignmentSizeForUpdateTx(context.Background(), tx, 4, "XL")
	require.NoError(t, err)
	assert.Nil(t, size)
}

func TestUpsertAssignmentTx(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_batch_assignments")).
		WithArgs(uint64(3), uint64(9), uint64(42)).
		WillReturnResult(sqlmock.NewResult(17, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)
	id, err := repo.UpsertAssignmentTx(context.Background(), tx, 3, 9, 42)
	require.NoError(t, err)
	assert.Equal(t, uint64(17), id)
}

func TestDeleteAssignmentTx(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteAssignmentSizesQuery)).WithArgs(uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(deleteAssignmentQuery)).WithArgs(uint64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.DeleteAssignmentTx(context.Background(), tx, 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePickedQuantityTx(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  bool
	}{
		{name: "version matches", affected: 1},
		{name: "concurrent pick moved the version", affected: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, db, mock := newMockRepo(t)
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(updatePickedQuery)).
				WithArgs(8, uint64(11), int64(2)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			tx, err := db.Beginx()
			require.NoError(t, err)
			err = repo.UpdatePickedQuantityTx(context.Background(), tx, 11, 8, 2)
			if tt.wantErr {
				assert.True(t, errors.IsType(err, constant.ErrConflict))
				return
			}
			assert.NoError(t, err)
		})
	}
}
