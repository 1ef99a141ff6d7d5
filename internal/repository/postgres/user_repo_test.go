package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	user := &domain.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Salt:         "salt",
		Name:         "Alice",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO users \(id, email, password_hash, salt, name, created_at, updated_at\)`).
		WithArgs("user-1", "alice@example.com", "hash", "salt", "Alice", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserRepository(db)
	require.NoError(t, repo.Create(ctx, user))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT id, email, password_hash, salt, name, created_at, updated_at`).
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "salt", "name", "created_at", "updated_at"}).
				AddRow("user-1", "alice@example.com", "hash", "salt", "Alice", now, now))

		repo := NewUserRepository(db)
		got, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, "user-1", got.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found maps to ErrUserNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, email, password_hash, salt, name, created_at, updated_at`).
			WithArgs("nobody@example.com").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		require.Nil(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_AssignRole(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO user_roles \(user_id, role_id\)`).
		WithArgs("user-1", "role-organiser").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserRepository(db)
	require.NoError(t, repo.AssignRole(ctx, "user-1", "role-organiser"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepository_ListByUserID(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT r.id, r.code\s+FROM roles r`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "code"}).
			AddRow("role-organiser", "organiser"))

	repo := NewRoleRepository(db)
	roles, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, roles, 1)
	require.Equal(t, "organiser", roles[0].Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
