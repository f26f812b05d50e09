package errs

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer         = errors.New("Internal server error")
	ErrClient                 = errors.New("Bad request")
	ErrNotLoggedIn            = errors.New("Unauthorized access")
	ErrForbidden              = errors.New("Forbidden access")
	ErrNotFound               = errors.New("Resource not found")
	ErrAccountNotFound        = errors.New("Account not found")
	ErrInvalidCredentials     = errors.New("Password is incorrect")
	ErrUsernameTaken          = errors.New("Username has already been taken")
	ErrNotRegisteredInPayroll = errors.New("User has no record in the payroll employee table")
	ErrInvalidCategory        = errors.New("Post category is not recognized")
	ErrExpiredResetToken      = errors.New("Password reset token has expired")
	ErrInvalidResetToken      = errors.New("Password reset token is invalid")
	ErrEmailDelivery          = errors.New("Failed to deliver email")
)

// ValidationError carries the policy violation detail so the boundary can
// return it to the caller verbatim.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Detail: fmt.Sprintf(format, args...)}
}

var errorMap = map[error]int{
	ErrInternalServer:         ErrStatusInternalServer,
	ErrClient:                 ErrStatusClient,
	ErrNotLoggedIn:            ErrStatusUnauthorized,
	ErrForbidden:              ErrStatusNoPermission,
	ErrNotFound:               ErrStatusNotFound,
	ErrAccountNotFound:        ErrStatusNotFound,
	ErrInvalidCredentials:     ErrStatusUnauthorized,
	ErrUsernameTaken:          ErrStatusClient,
	ErrNotRegisteredInPayroll: ErrStatusClient,
	ErrInvalidCategory:        ErrStatusClient,
	ErrExpiredResetToken:      ErrStatusClient,
	ErrInvalidResetToken:      ErrStatusClient,
	ErrEmailDelivery:          ErrStatusInternalServer,
}

func GetErrorStatusCode(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ErrStatusClient
	}

	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
