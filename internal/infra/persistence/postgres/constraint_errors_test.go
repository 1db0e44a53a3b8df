package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	wrapped := func(code string) error {
		return fmt.Errorf("exec: %w", &pgconn.PgError{Code: code, Message: "violation"})
	}

	t.Run("unique from gorm", func(t *testing.T) {
		assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("unique from driver", func(t *testing.T) {
		assert.True(t, isUniqueConstraintViolation(wrapped(pgUniqueViolation)))
		assert.False(t, isUniqueConstraintViolation(wrapped(pgForeignKeyViolation)))
	})

	t.Run("foreign key", func(t *testing.T) {
		assert.True(t, isForeignKeyConstraintViolation(wrapped(pgForeignKeyViolation)))
		assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	})

	t.Run("not null", func(t *testing.T) {
		assert.True(t, isNotNullConstraintViolation(wrapped(pgNotNullViolation)))
		assert.True(t, isNotNullConstraintViolation(fmt.Errorf(`null value in column "name"`)))
		assert.False(t, isNotNullConstraintViolation(fmt.Errorf("connection reset")))
	})

	t.Run("check", func(t *testing.T) {
		assert.True(t, isCheckConstraintViolation(wrapped(pgCheckViolation)))
		assert.False(t, isCheckConstraintViolation(wrapped(pgUniqueViolation)))
	})
}
