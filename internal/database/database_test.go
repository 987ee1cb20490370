package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/ehfoto/backoffice/internal/database"
)

func TestConstraintViolations(t *testing.T) {
	fk := fmt.Errorf("deleting staff: %w", &pgconn.PgError{Code: "23503"})
	unique := fmt.Errorf("creating staff: %w", &pgconn.PgError{Code: "23505"})

	assert.True(t, database.IsForeignKeyViolation(fk))
	assert.False(t, database.IsUniqueViolation(fk))

	assert.True(t, database.IsUniqueViolation(unique))
	assert.False(t, database.IsForeignKeyViolation(unique))

	assert.False(t, database.IsForeignKeyViolation(errors.New("boom")))
	assert.False(t, database.IsUniqueViolation(nil))
}
