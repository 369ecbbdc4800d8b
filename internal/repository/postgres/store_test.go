package postgres_test

import (
	"context"
	"errors"
	"testing"

	"banking-backoffice/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestStore_RunInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM bills WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = store.RunInTx(ctx, func(ctx context.Context) error {
			return store.BillRepository.Delete(ctx, 7)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err = store.RunInTx(ctx, func(ctx context.Context) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ReusesExistingTransaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		store := postgres.NewStore(db)

		mock.ExpectBegin()
		mock.ExpectCommit()

		calls := 0
		err = store.RunInTx(ctx, func(ctx context.Context) error {
			// Nested unit of work must not open a second transaction.
			return store.RunInTx(ctx, func(ctx context.Context) error {
				calls++
				return nil
			})
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
