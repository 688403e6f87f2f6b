package handler

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/soda-apiserver/internal/domain"
)

// Response is the unified response envelope
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// SuccessResponse returns a successful response
func SuccessResponse(c *app.RequestContext, data interface{}) {
	c.JSON(consts.StatusOK, Response{
		Code:    "SUCCESS",
		Message: "operation successful",
		Data:    data,
	})
}

// ErrorResponse returns an error response based on the error kind. Each kind
// of the validation error taxonomy maps to its own status code so callers
// can apply their own backoff policy.
func ErrorResponse(c *app.RequestContext, err error) {
	// User-facing message without internal detail
	getUserMessage := func(err error) string {
		if domainErr, ok := err.(*domain.DomainError); ok {
			return domainErr.UserMessage()
		}
		return "an error occurred"
	}

	switch {
	case domain.IsInvalidInput(err):
		c.JSON(consts.StatusBadRequest, Response{
			Code:    "INVALID_INPUT",
			Message: getUserMessage(err),
		})
	case domain.IsScanTimeout(err):
		c.JSON(consts.StatusRequestTimeout, Response{
			Code:    "SCAN_TIMEOUT",
			Message: getUserMessage(err),
		})
	case domain.IsEngineError(err):
		c.JSON(consts.StatusBadGateway, Response{
			Code:    "ENGINE_ERROR",
			Message: getUserMessage(err),
		})
	case domain.IsNormalizationError(err):
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    "NORMALIZATION_ERROR",
			Message: getUserMessage(err),
		})
	default:
		// Internal errors expose no detail
		c.JSON(consts.StatusInternalServerError, Response{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

// BadRequestResponse returns a bad request response
func BadRequestResponse(c *app.RequestContext, message string) {
	c.JSON(consts.StatusBadRequest, Response{
		Code:    "BAD_REQUEST",
		Message: message,
	})
}
