package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthenticated
	ErrInvalidToken
	ErrUserNotFound
	ErrInvalidCredentials
	ErrDuplicateUser
	ErrNoFilesProvided
	ErrUploadFailed
	ErrPersistence
	ErrForbidden
	ErrListingNotFound
	ErrDuplicateListing
	ErrMessageNotFound
	ErrTooManyRequests
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "error internal",
	ErrNotFound:           "data not found",
	ErrInvalidRequest:     "invalid request",
	ErrUnauthenticated:    "user not authenticated",
	ErrInvalidToken:       "invalid token",
	ErrUserNotFound:       "no user found for the provided email",
	ErrInvalidCredentials: "invalid password for the provided email",
	ErrDuplicateUser:      "email already exists",
	ErrNoFilesProvided:    "no files uploaded",
	ErrUploadFailed:       "upload failed",
	ErrPersistence:        "error persistence",
	ErrForbidden:          "forbidden",
	ErrListingNotFound:    "sale not found",
	ErrDuplicateListing:   "registration or serial number already exists",
	ErrMessageNotFound:    "message not found",
	ErrTooManyRequests:    "too many requests",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrInvalidRequest:     http.StatusBadRequest,
	ErrUnauthenticated:    http.StatusBadRequest,
	ErrInvalidToken:       http.StatusBadRequest,
	ErrUserNotFound:       http.StatusNotFound,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrDuplicateUser:      http.StatusConflict,
	ErrNoFilesProvided:    http.StatusBadRequest,
	ErrUploadFailed:       http.StatusInternalServerError,
	ErrPersistence:        http.StatusInternalServerError,
	ErrForbidden:          http.StatusForbidden,
	ErrListingNotFound:    http.StatusNotFound,
	ErrDuplicateListing:   http.StatusConflict,
	ErrMessageNotFound:    http.StatusNotFound,
	ErrTooManyRequests:    http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrInvalidRequest:     "0003",
	ErrUnauthenticated:    "0004",
	ErrInvalidToken:       "0005",
	ErrUserNotFound:       "0006",
	ErrInvalidCredentials: "0007",
	ErrDuplicateUser:      "0008",
	ErrNoFilesProvided:    "0009",
	ErrUploadFailed:       "0010",
	ErrPersistence:        "0011",
	ErrForbidden:          "0012",
	ErrListingNotFound:    "0013",
	ErrDuplicateListing:   "0014",
	ErrMessageNotFound:    "0015",
	ErrTooManyRequests:    "0016",
}
