package handler // cast endpoints

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gnwankwo/casting-agency/internal/model"
	"github.com/gnwankwo/casting-agency/internal/repository"
)

// GetCasts handles GET /casts and returns every cast.
func (h *Handler) GetCasts(c echo.Context) error {
	casts, err := h.Casts.List(c.Request().Context())
	if err != nil {
		return internalError(c)
	}
	out := make([]map[string]any, 0, len(casts))
	for _, item := range casts {
		out = append(out, item.Format())
	}
	return respond(c, http.StatusOK, echo.Map{"casts": out})
}

// GetCastByID handles GET /casts/:id.  An unknown id yields a null cast,
// not an error.
func (h *Handler) GetCastByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	cast, err := h.Casts.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCastNotFound) {
			return respond(c, http.StatusOK, echo.Map{"cast": nil})
		}
		return internalError(c)
	}
	return respond(c, http.StatusOK, echo.Map{"cast": cast.Format()})
}

// CreateCast handles POST /casts.  The referenced movie must exist and
// must not own a cast already; the second rule is enforced by the store's
// unique constraint and translated here.
func (h *Handler) CreateCast(c echo.Context) error {
	var body struct {
		MovieID uint64 `json:"movie_id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Movie id is invalid, please enter a valid Movie id")
	}
	ctx := c.Request().Context()
	if _, err := h.Movies.GetByID(ctx, body.MovieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return badRequest(c, "Movie id is invalid, please enter a valid Movie id")
		}
		return internalError(c)
	}
	cast := &model.Cast{MovieID: body.MovieID}
	if err := h.Casts.Create(ctx, cast); err != nil {
		if errors.Is(err, repository.ErrDuplicateMovieCast) {
			return badRequest(c, fmt.Sprintf(
				"Duplicate key Violation, Movie id %d already assigned to a cast", body.MovieID))
		}
		return internalError(c)
	}
	publish(c, "cast", "created", cast.ID)
	return respond(c, http.StatusCreated, nil)
}

// UpdateCast handles PATCH /casts/:id and points the cast at a different
// movie, subject to the same existence and uniqueness rules as create.
func (h *Handler) UpdateCast(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var body struct {
		MovieID uint64 `json:"movie_id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Movie id is invalid, please enter a valid Movie id")
	}
	ctx := c.Request().Context()
	if _, err := h.Movies.GetByID(ctx, body.MovieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return badRequest(c, "Movie id is invalid, please enter a valid Movie id")
		}
		return internalError(c)
	}
	if err := h.Casts.UpdateMovieID(ctx, id, body.MovieID); err != nil {
		switch {
		case errors.Is(err, repository.ErrCastNotFound):
			return notFound(c)
		case errors.Is(err, repository.ErrDuplicateMovieCast):
			return badRequest(c, fmt.Sprintf(
				"Duplicate key Violation, Movie id %d already assigned to a cast", body.MovieID))
		}
		return internalError(c)
	}
	publish(c, "cast", "updated", id)
	return respond(c, http.StatusOK, nil)
}

// DeleteCast handles DELETE /casts/:id.  The cast's starring rows are
// removed in the same transaction.
func (h *Handler) DeleteCast(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.Casts.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrCastNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	publish(c, "cast", "deleted", id)
	return c.NoContent(http.StatusNoContent)
}
