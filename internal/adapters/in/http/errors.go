package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
	"github.com/chiefroqa/baruk-app/internal/pkg/errs"
)

// errorBody is the JSON error envelope returned by every failing endpoint.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes:
//
//	not found            -> 404
//	validation failures  -> 400
//	wrong actor or role  -> 403
//	code mismatch        -> 422
//	other rejected moves -> 409 (wrong status, lost race, double binding)
//
// Unknown errors become 500 with a generic message so internals do not leak.
func writeError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, errorBody{
			Code:    httpErr.Code,
			Message: fmt.Sprintf("%v", httpErr.Message),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, errorBody{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, parcel.ErrWrongActor):
		return c.JSON(http.StatusForbidden, errorBody{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, parcel.ErrCodeMismatch):
		return c.JSON(http.StatusUnprocessableEntity, errorBody{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, parcel.ErrTransitionRejected):
		return c.JSON(http.StatusConflict, errorBody{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusInternalServerError, errorBody{
		Code:    http.StatusInternalServerError,
		Message: "internal error",
	})
}
