package http

import (
	"errors"

	pkgErrors "sales-task-tracker/pkg/errors"
)

var (
	errTaskNotFound    = pkgErrors.NewHTTPError(pkgErrors.ErrNotFound.Code, "task not found")
	errNothingToUndo   = pkgErrors.NewHTTPError(pkgErrors.ErrNotFound.Code, "no deleted task to restore")
	errInvalidStatus   = errors.New("status must be one of Todo, In Progress, Done")
	errInvalidPriority = errors.New("priority must be one of Low, Medium, High")
)

// mapError translates use-case errors into HTTP errors. The store never
// fails on its own inputs, so anything reaching here is unexpected.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return pkgErrors.ErrInternalServerError
}
