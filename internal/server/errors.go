package server

import (
	"errors"
	"net/http"

	"cv-builder/internal/flow"
	"cv-builder/internal/render"
	"cv-builder/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation      *flow.ValidationError
		invalidAction   *flow.InvalidActionError
		unknownAction   *flow.UnknownActionError
		notFound        *flow.NotFoundError
		unknownTemplate *render.UnknownTemplateError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &invalidAction), errors.Is(err, flow.ErrNothingToUndo):
		return http.StatusConflict
	case errors.As(err, &unknownAction), errors.As(err, &unknownTemplate):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
