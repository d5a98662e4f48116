package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/car-market/constant"
	cerr "github.com/muhammadheryan/car-market/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetCustomError(constant.ErrNoFilesProvided)
	assert.Equal(t, "no files uploaded", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.ErrorHTTPCode())
	assert.Equal(t, "0009", err.ErrorCode())
	assert.Empty(t, err.Detail())

	withDetail := cerr.SetCustomErrorWithDetail(constant.ErrInvalidToken, "token is expired")
	assert.Equal(t, "invalid token: token is expired", withDetail.Error())
	assert.Equal(t, "invalid token", withDetail.Message())
	assert.Equal(t, "token is expired", withDetail.Detail())

	assert.True(t, cerr.Is(withDetail, constant.ErrInvalidToken))
	assert.False(t, cerr.Is(withDetail, constant.ErrUnauthenticated))
	assert.False(t, cerr.Is(fmt.Errorf("plain"), constant.ErrInvalidToken))
}

func TestEveryErrorTypeIsMapped(t *testing.T) {
	for et := constant.Successful; et <= constant.ErrMessageNotFound; et++ {
		_, hasMsg := constant.ErrorTypeMessage[et]
		_, hasHTTP := constant.ErrorTypeHTTPCode[et]
		_, hasCode := constant.ErrorTypeCode[et]
		assert.Truef(t, hasMsg && hasHTTP && hasCode, "error type %d not fully mapped", et)
	}
}
