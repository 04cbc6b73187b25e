package validator

import (
	"testing"

	domainerrors "arthurflix/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"omitempty,email"`
	Status   string `validate:"oneof=watchlist finished"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleForm{Username: "moviefan", Status: "finished"}))

	err := v.Validate(&sampleForm{Username: "ab", Email: "nope", Status: "later"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "username must be at least 3 characters")
	assert.Contains(t, appErr.Details(), "email must be a valid email address")
	assert.Contains(t, appErr.Details(), "status must be one of watchlist finished")
}
