package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/car-market/constant"
	cerr "github.com/muhammadheryan/car-market/utils/errors"
	"github.com/muhammadheryan/car-market/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("[writeJSON] encode response", zap.Error(err))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// writeError never exposes the cause of unexpected errors; anything that is
// not a CustomError becomes a generic internal error.
func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(cerr.CustomError)
	if !ok {
		logger.Error("[writeError] unexpected error", zap.Error(err))
		ce = cerr.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Message(),
		Detail:  ce.Detail(),
	})
}
