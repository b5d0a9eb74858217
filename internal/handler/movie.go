package handler // movie endpoints

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gnwankwo/casting-agency/internal/model"
	"github.com/gnwankwo/casting-agency/internal/repository"
	"github.com/gnwankwo/casting-agency/internal/validate"
)

// GetMovies handles GET /movies and returns every movie.
func (h *Handler) GetMovies(c echo.Context) error {
	movies, err := h.Movies.List(c.Request().Context())
	if err != nil {
		return internalError(c)
	}
	out := make([]map[string]any, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Format())
	}
	return respond(c, http.StatusOK, echo.Map{"movies": out})
}

// GetMovieByID handles GET /movies/:id.  An unknown id yields a null
// movie, not an error.
func (h *Handler) GetMovieByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	movie, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return respond(c, http.StatusOK, echo.Map{"movie": nil})
		}
		return internalError(c)
	}
	return respond(c, http.StatusOK, echo.Map{"movie": movie.Format()})
}

// GetMovieCast handles GET /movies/:id/cast and returns the movie title
// together with the names of the actors assigned to its cast, in
// assignment order.
func (h *Handler) GetMovieCast(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	ctx := c.Request().Context()
	movie, err := h.Movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return badRequest(c, "Movie id does not exist")
		}
		return internalError(c)
	}
	cast, err := h.Casts.GetByMovieID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCastNotFound) {
			// The movie exists but has no casting slot yet.
			return notFound(c)
		}
		return internalError(c)
	}
	names, err := h.Stars.ActorNames(ctx, cast.ID)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, echo.Map{"movie": movie.Title, "casts": names})
}

// CreateMovie handles POST /movies.  The release date must be provided in
// YYYY/M/D form; title and description are passed through as given.
func (h *Handler) CreateMovie(c echo.Context) error {
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ReleaseDate any    `json:"release_date"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	date, err := validate.ReleaseDate(body.ReleaseDate)
	if err != nil {
		return badRequest(c, err.Error())
	}
	movie := &model.Movie{
		Title:       body.Title,
		Description: body.Description,
		ReleaseDate: &date,
	}
	if err := h.Movies.Create(c.Request().Context(), movie); err != nil {
		return internalError(c)
	}
	publish(c, "movie", "created", movie.ID)
	return respond(c, http.StatusCreated, nil)
}

// UpdateMovie handles PATCH /movies/:id.  Only the fields present in the
// body are changed; a provided release date is validated like on create.
func (h *Handler) UpdateMovie(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		ReleaseDate any     `json:"release_date"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	var date *string
	if body.ReleaseDate != nil {
		d, err := validate.ReleaseDate(body.ReleaseDate)
		if err != nil {
			return badRequest(c, err.Error())
		}
		date = &d
	}
	if err := h.Movies.Update(c.Request().Context(), id, body.Title, body.Description, date); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	publish(c, "movie", "updated", id)
	return respond(c, http.StatusOK, nil)
}

// DeleteMovie handles DELETE /movies/:id.  The movie's cast and that
// cast's starring rows are removed in the same transaction.
func (h *Handler) DeleteMovie(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	publish(c, "movie", "deleted", id)
	return c.NoContent(http.StatusNoContent)
}
