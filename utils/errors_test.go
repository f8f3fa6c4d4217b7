package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))

	// Wrapped driver errors still match.
	wrapped := fmt.Errorf("create rating: %w", &pq.Error{Code: "23505"})
	assert.True(t, IsUniqueViolation(wrapped))

	// Other constraint failures and non-driver errors do not.
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}
