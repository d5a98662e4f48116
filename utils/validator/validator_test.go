package validatorx_test

import (
	"errors"
	"testing"

	validatorx "github.com/muhammadheryan/car-market/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email   string `json:"email" validate:"required,email"`
	Message string `form:"message" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, validatorx.ValidateStruct(&sample{Email: "a@b.fr", Message: "hi"}))

	err := validatorx.ValidateStruct(&sample{Email: "nope"})
	require.Error(t, err)
	assert.Equal(t, "email: email, message: required", validatorx.Describe(err))
}

func TestDescribeNonValidationError(t *testing.T) {
	assert.Empty(t, validatorx.Describe(errors.New("x")))
}
