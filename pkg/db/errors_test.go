package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pg := errors.New(`ERROR: duplicate key value violates unique constraint "members_npa_key" (SQLSTATE 23505)`)
	lite := errors.New("UNIQUE constraint failed: members.npa")
	other := errors.New("ERROR: null value in column \"npa\" violates not-null constraint")

	assert.True(t, IsUniqueViolation(pg, ""))
	assert.True(t, IsUniqueViolation(pg, "npa"))
	assert.True(t, IsUniqueViolation(lite, "npa"))
	assert.False(t, IsUniqueViolation(pg, "email"))
	assert.False(t, IsUniqueViolation(other, "npa"))
	assert.False(t, IsUniqueViolation(nil, ""))
}
