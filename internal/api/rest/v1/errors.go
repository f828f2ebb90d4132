package v1

import (
	"errors"
	"net/http"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/payments"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput), errors.Is(err, payments.ErrInvalidSignature):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError aborts with the status of err. Internal details of 5xx errors are not exposed;
// the error is attached to the context for RecordErrors.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "internal server error"
	}

	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
