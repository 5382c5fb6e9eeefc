package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "contacts-api/internal/domain/user"
)

var userColumns = []string{
	"id", "email", "password_hash", "avatar", "refresh_token", "created_at", "updated_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_FetchUserByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
			WithArgs("jane@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(uint64(1), "jane@example.com", "$2a$hash", "https://www.gravatar.com/avatar/x", nil, now, now))

		u, err := repo.FetchUserByEmail(context.Background(), "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(1), u.ID)
		assert.Nil(t, u.RefreshToken)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows maps to nil, nil", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByEmail)).
			WithArgs("missing@example.com").
			WillReturnError(pgx.ErrNoRows)

		u, err := repo.FetchUserByEmail(context.Background(), "missing@example.com")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestRepository_CreateUser(t *testing.T) {
	req := domain.User{
		Email:        "jane@example.com",
		PasswordHash: "$2a$hash",
		Avatar:       "https://www.gravatar.com/avatar/x",
	}

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(req.Email, req.PasswordHash, req.Avatar).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(uint64(3), req.Email, req.PasswordHash, req.Avatar, nil, now, now))

		u, err := repo.CreateUser(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(3), u.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrEmailAlreadyExists", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs(req.Email, req.PasswordHash, req.Avatar).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		u, err := repo.CreateUser(context.Background(), req)
		require.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Nil(t, u)
	})
}

func TestRepository_UpdateRefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectExec(regexp.QuoteMeta(UpdateRefreshTokenByID)).
			WithArgs("refresh-token", uint64(3)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.UpdateRefreshToken(context.Background(), 3, "refresh-token"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user yields ErrNoRows", func(t *testing.T) {
		mock := newMock(t)
		repo := NewRepository(mock)

		mock.ExpectExec(regexp.QuoteMeta(UpdateRefreshTokenByID)).
			WithArgs("refresh-token", uint64(404)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateRefreshToken(context.Background(), 404, "refresh-token")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
