package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	t.Run("creates orders table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS orders")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, Migrate(context.Background(), db))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stores totals unscaled", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`total_price\s+NUMERIC NOT NULL(.|\n)*ALTER COLUMN total_price TYPE NUMERIC;`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.NoError(t, Migrate(context.Background(), db))
		assert.NoError(t, mock.ExpectationsWereMet())
		assert.NotContains(t, ordersSchema, "NUMERIC(")
	})

	t.Run("wraps exec failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

		err = Migrate(context.Background(), db)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create orders table")
	})
}
