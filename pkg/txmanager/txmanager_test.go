package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/pkg/dbmetrics"
)

const reserveQuery = "UPDATE tour_packages SET available_slots = available_slots - 1"

func newManager(t *testing.T, opts ...Option) (*TransactionManager, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewTransactionManager(wrapped, opts...), wrapped, mock
}

func reserve(db dbmetrics.DBExecutor) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, reserveQuery)
		return err
	}
}

func TestDoSerializableCommits(t *testing.T) {
	m, db, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tour_packages").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, m.DoSerializable(context.Background(), reserve(db)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializableRollsBackOnError(t *testing.T) {
	m, _, mock := newManager(t)
	errBusiness := errors.New("not enough slots")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return errBusiness
	})

	require.ErrorIs(t, err, errBusiness)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializableRetriesSerializationFailure(t *testing.T) {
	m, db, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tour_packages").WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tour_packages").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	calls := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return reserve(db)(ctx)
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializableRetriesFailedCommit(t *testing.T) {
	m, db, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tour_packages").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tour_packages").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, m.DoSerializable(context.Background(), reserve(db)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializableReturnsConflictAfterRetries(t *testing.T) {
	m, db, mock := newManager(t)

	for i := 0; i < 2; i++ {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE tour_packages").WillReturnError(&pq.Error{Code: "40P01"})
		mock.ExpectRollback()
	}

	err := m.DoSerializable(context.Background(), reserve(db))

	require.ErrorIs(t, err, ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializableWithoutRetries(t *testing.T) {
	m, db, mock := newManager(t, WithMaxRetries(0))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tour_packages").WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()

	require.ErrorIs(t, m.DoSerializable(context.Background(), reserve(db)), ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializableDoesNotRetryOtherErrors(t *testing.T) {
	m, db, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tour_packages").WillReturnError(&pq.Error{Code: "23514"})
	mock.ExpectRollback()

	err := m.DoSerializable(context.Background(), reserve(db))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNestedCallJoinsOuterTransaction(t *testing.T) {
	m, db, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE tour_packages").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, reserve(db))
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBeginFailure(t *testing.T) {
	m, db, mock := newManager(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := m.DoSerializable(context.Background(), reserve(db))

	require.ErrorIs(t, err, ErrTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, IsRetryable(errors.Join(errors.New("wrapped"), &pq.Error{Code: "40P01"})))
	assert.False(t, IsRetryable(&pq.Error{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("plain")))
}
