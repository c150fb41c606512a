package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("timeout")))
}

func TestIsInvalidText(t *testing.T) {
	assert.True(t, isInvalidText(fmt.Errorf("get product: %w", &pgconn.PgError{Code: "22P02"})))
	assert.False(t, isInvalidText(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isInvalidText(errors.New("invalid input syntax")))
}

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.sql())

	w.add("name ILIKE $%d", "%caf%")
	w.add("active = $%d", true)
	assert.Equal(t, " WHERE name ILIKE $1 AND active = $2", w.sql())
	assert.Equal(t, []any{"%caf%", true}, w.args)
}

func TestNullables(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	assert.Equal(t, "x", fromNull(nullIfEmpty("x")))
	assert.Equal(t, "", fromNull(nil))
}
