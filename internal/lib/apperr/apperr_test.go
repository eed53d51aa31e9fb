package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation(t *testing.T) {
	err := Validation("query is required")

	assert.True(t, IsValidation(err))
	assert.False(t, IsStore(err))
	assert.Equal(t, "query is required", err.Error())
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", err)))
}

func TestStore(t *testing.T) {
	assert.NoError(t, Store("op", nil))

	err := Store("chatbot.today", sql.ErrConnDone)
	assert.True(t, IsStore(err))
	assert.False(t, IsValidation(err))
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.Equal(t, "chatbot.today: sql: connection is already closed", err.Error())

	again := Store("outer", err)
	var se *StoreError
	assert.True(t, errors.As(again, &se))
	assert.Equal(t, "chatbot.today", se.Op)
}
