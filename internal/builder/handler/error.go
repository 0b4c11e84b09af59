package handler

import (
	"errors"
	"net/http"

	"dashbuilder/internal/builder/dispatch"
	"dashbuilder/internal/builder/model"
	"dashbuilder/internal/builder/service"

	"github.com/labstack/echo/v4"
)

// Helper to map errors to HTTP status and body
func httpError(err error) (int, model.ErrorResponse) {
	var code string
	var msg string
	var status int

	var detail *model.ErrorDetail
	switch {
	case errors.As(err, &detail):
		status = http.StatusBadRequest
		code = detail.Code
		msg = detail.Message
	case errors.Is(err, dispatch.ErrUnknownEvent):
		status = http.StatusBadRequest
		code = "unknown_event"
		msg = err.Error()
	case errors.Is(err, service.ErrSessionNotFound):
		status = http.StatusNotFound
		code = "session_not_found"
		msg = "Session not found"
	case errors.Is(err, service.ErrUnknownValue):
		status = http.StatusNotFound
		code = "not_found"
		msg = err.Error()
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
		msg = "Document not found"
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
		msg = "Document already exists"
	case errors.Is(err, service.ErrBadRequest):
		status = http.StatusBadRequest
		code = "bad_request"
		msg = "Invalid input"
	default:
		status = http.StatusInternalServerError
		code = "internal_error"
		msg = err.Error()
	}

	return status, model.ErrorResponse{
		Error: model.ErrorDetail{Code: code, Message: msg},
	}
}

func validationError(err error) model.ErrorResponse {
	detail := model.FormatValidationError(err)
	var d *model.ErrorDetail
	if errors.As(err, &d) {
		detail = d
	}
	return model.ErrorResponse{Error: *detail}
}

func respondError(c echo.Context, err error) error {
	status, body := httpError(err)
	body.Error.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
	return c.JSON(status, body)
}

func badBody(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: model.ErrorDetail{
			Code:      "bad_request",
			Message:   msg,
			RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		},
	})
}
