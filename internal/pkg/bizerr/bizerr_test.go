package bizerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("Post not found")))
	assert.Equal(t, KindAlreadyExists, KindOf(fmt.Errorf("wrapped: %w", AlreadyExists("dup"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.True(t, Is(SelfReference("self"), KindSelfReference))
	assert.False(t, Is(nil, KindInternal))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("follow.Create", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error", err.Message)
	assert.Contains(t, err.Error(), "follow.Create")
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("gorm translated", func(t *testing.T) {
		assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	})

	t.Run("raw pg error", func(t *testing.T) {
		assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
		assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	})

	t.Run("other errors", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(nil))
		assert.False(t, IsUniqueViolation(gorm.ErrRecordNotFound))
	})
}
