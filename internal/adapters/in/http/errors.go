package http

import (
	"errors"
	stdhttp "net/http"

	"foodbridge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates the application error taxonomy into HTTP
// status codes. Unknown errors are reported as 500 without leaking the
// underlying message.
func respondError(ctx echo.Context, err error) error {
	code := stdhttp.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValidation):
		code = stdhttp.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = stdhttp.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		code = stdhttp.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidState):
		code = stdhttp.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		code = stdhttp.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrUnavailable):
		code = stdhttp.StatusServiceUnavailable
		message = err.Error()
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
