package user

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/pkg/dbmetrics"
)

var createdAt = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, role, created_at, updated_at FROM users WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(2), "Bob", "bob@example.com", "agent", createdAt, createdAt))

	user, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAgent, user.Role)
	assert.True(t, user.IsAgent())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("FROM users").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestListAgentsScopedToOneAgent(t *testing.T) {
	repo, mock := newRepository(t)
	agentID := int64(3)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE role = $1 AND id = $2 ORDER BY name ASC, id ASC")).
		WithArgs("agent", agentID).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(agentID, "Alice", "alice@example.com", "agent", createdAt, createdAt))

	agents, err := repo.ListAgents(context.Background(), &agentID)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "Alice", agents[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByRole(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users WHERE role = $1")).
		WithArgs("agent").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByRole(context.Background(), domain.RoleAgent)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
