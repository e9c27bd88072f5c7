package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskflow/backend/internal/domain/shared"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormUserRepository_FindByID(t *testing.T) {
	t.Run("finds existing user", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(gormDB)

		userID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "email", "password_hash", "first_name", "last_name"}).
			AddRow(userID, now, now, 1, "ada@example.com", "$2a$12$hash", "Ada", "Lovelace")

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnRows(rows)

		user, err := repo.FindByID(context.Background(), userID)

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "Ada Lovelace", user.DisplayName())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing user to ErrNotFound", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(gormDB)

		userID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(userID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		user, err := repo.FindByID(context.Background(), userID)

		assert.Nil(t, user)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	t.Run("lowercases the lookup email", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(gormDB)

		userID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "email", "password_hash", "first_name", "last_name"}).
			AddRow(userID, now, now, 1, "ada@example.com", "$2a$12$hash", "Ada", "Lovelace")

		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("ada@example.com", 1).
			WillReturnRows(rows)

		user, err := repo.FindByEmail(context.Background(), "  Ada@Example.COM ")

		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects empty email without querying", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(gormDB)

		user, err := repo.FindByEmail(context.Background(), "")

		assert.Nil(t, user)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	t.Run("returns true when a row exists", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = \$1`).
			WithArgs("ada@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByEmail(context.Background(), "ada@example.com")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty email short-circuits to false", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(gormDB)

		exists, err := repo.ExistsByEmail(context.Background(), "")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormUserRepository_Delete(t *testing.T) {
	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormUserRepository(gormDB)

		userID := uuid.New()
		mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), userID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
