package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsKind(t *testing.T) {
	err := Wrap("CategoryUseCase.Update", ErrCategoryNotFound)

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, "CategoryUseCase.Update: category not found", err.Error())
}

func TestKindsAreDistinct(t *testing.T) {
	assert.ErrorIs(t, ErrCategoryReference, ErrInvalidArgument)
	assert.False(t, errors.Is(ErrCategoryReference, ErrNotFound))
	assert.ErrorIs(t, ErrCategoryInUse, ErrConflict)
	assert.ErrorIs(t, ErrProductNotFound, ErrNotFound)
}
