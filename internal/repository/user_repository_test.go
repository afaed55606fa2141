package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-tracker/internal/domain"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

var userCols = []string{"id", "username", "password_hash", "resume", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users \(username, password_hash\)`).
		WithArgs("alice", "hash").
		WillReturnRows(pgxmock.NewRows([]string{"id", "resume", "created_at", "updated_at"}).
			AddRow("u-1", "", now, now))

	user := &domain.User{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "", user.Resume)
	assert.Equal(t, now, user.CreatedAt)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

	err := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "hash"})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
}

func TestUserRepository_Create_DBError(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "hash").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "hash"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.False(t, apperrors.HasCode(err, apperrors.CodeConflict))
}

func TestUserRepository_GetByUsername(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, username, password_hash, resume, created_at, updated_at\s+FROM users WHERE username=\$1`).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow("u-1", "alice", "hash", "my resume", now, now))

	user, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Equal(t, "my resume", user.Resume)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`FROM users WHERE username=\$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestUserRepository_GetByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`FROM users WHERE id=\$1`).
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow("u-1", "alice", "hash", "", now, now))

	user, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestUserRepository_GetResume(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT resume FROM users WHERE id=\$1`).
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows([]string{"resume"}).AddRow("  line one\n\tline two  "))

	resume, err := repo.GetResume(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "  line one\n\tline two  ", resume)
}

func TestUserRepository_GetResume_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery(`SELECT resume FROM users`).
		WithArgs("u-x").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetResume(context.Background(), "u-x")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestUserRepository_UpdateResume(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(`UPDATE users SET resume=\$1, updated_at=NOW\(\) WHERE id=\$2`).
		WithArgs("new resume", "u-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateResume(context.Background(), "u-1", "new resume"))
}

func TestUserRepository_UpdateResume_MissingUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec(`UPDATE users SET resume`).
		WithArgs("text", "u-x").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateResume(context.Background(), "u-x", "text")
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}
