package http

import (
	"errors"
	"fmt"
	"net/http"

	"dispatchdesk/internal/core/application/usecases/commands"
	"dispatchdesk/internal/core/domain/model/courier"
	"dispatchdesk/internal/core/domain/model/session"
	"dispatchdesk/internal/core/domain/services"
	"dispatchdesk/internal/core/ports"
	"dispatchdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error to a response status. Operator notices are
// 422, unknown sessions and rows 404.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, ports.ErrClipboardUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, session.ErrNoCourierSelected),
		errors.Is(err, commands.ErrEmptyScannerInput),
		errors.Is(err, commands.ErrClearNotConfirmed),
		errors.Is(err, services.ErrEmptyPartition),
		errors.Is(err, courier.ErrUnknownCourier),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes and malformed parameters, in the API error shape.
func (s *Server) errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	} else {
		s.logger.ErrorContext(ctx.Request().Context(), "Unhandled error", "path", ctx.Path(), "error", err)
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(code)
	} else {
		err = ctx.JSON(code, Error{Code: code, Message: message})
	}
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Writing error response failed", "error", err)
	}
}
