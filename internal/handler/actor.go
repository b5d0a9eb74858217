package handler // actor endpoints

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/gnwankwo/casting-agency/internal/model"
	"github.com/gnwankwo/casting-agency/internal/repository"
	"github.com/gnwankwo/casting-agency/internal/validate"
)

// GetActors handles GET /actors and returns every actor.
func (h *Handler) GetActors(c echo.Context) error {
	actors, err := h.Actors.List(c.Request().Context())
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, echo.Map{"actors": formatActors(actors)})
}

// GetActorByID handles GET /actors/:id.  An unknown id yields a null
// actor, not an error.
func (h *Handler) GetActorByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	actor, err := h.Actors.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return respond(c, http.StatusOK, echo.Map{"actor": nil})
		}
		return internalError(c)
	}
	return respond(c, http.StatusOK, echo.Map{"actor": actor.Format()})
}

// GetActorsByNationality handles GET /actors/nationality/:nationality with
// an exact match on the nationality string.
func (h *Handler) GetActorsByNationality(c echo.Context) error {
	nationality := c.Param("nationality")
	if unescaped, err := url.PathUnescape(nationality); err == nil {
		nationality = unescaped
	}
	actors, err := h.Actors.ListByNationality(c.Request().Context(), nationality)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, echo.Map{"actors": formatActors(actors)})
}

// GetActorMovies handles GET /actors/:id/movies and returns the titles of
// all movies the actor is assigned to, in assignment order.  Titles are
// not deduplicated.
func (h *Handler) GetActorMovies(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	ctx := c.Request().Context()
	if _, err := h.Actors.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return badRequest(c, "Actor id does not exist")
		}
		return internalError(c)
	}
	titles, err := h.Actors.MovieTitles(ctx, id)
	if err != nil {
		return internalError(c)
	}
	return respond(c, http.StatusOK, echo.Map{"movies": titles})
}

// CreateActor handles POST /actors.  Age must be a positive integer and
// gender exactly "male" or "female"; name and nationality are passed
// through as given.
func (h *Handler) CreateActor(c echo.Context) error {
	var body struct {
		Name        string `json:"name"`
		Age         any    `json:"age"`
		Gender      any    `json:"gender"`
		Nationality string `json:"nationality"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	age, err := validate.Age(body.Age)
	if err != nil {
		return badRequest(c, err.Error())
	}
	gender, err := validate.Gender(body.Gender)
	if err != nil {
		return badRequest(c, err.Error())
	}
	actor := &model.Actor{
		Name:        body.Name,
		Age:         age,
		Gender:      gender,
		Nationality: body.Nationality,
	}
	if err := h.Actors.Create(c.Request().Context(), actor); err != nil {
		return internalError(c)
	}
	publish(c, "actor", "created", actor.ID)
	return respond(c, http.StatusCreated, nil)
}

// UpdateActor handles PATCH /actors/:id.  Only the fields present in the
// body are changed; provided age and gender values are validated like on
// create.
func (h *Handler) UpdateActor(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var body struct {
		Name        *string `json:"name"`
		Age         any     `json:"age"`
		Gender      any     `json:"gender"`
		Nationality *string `json:"nationality"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	var age *int
	if body.Age != nil {
		a, err := validate.Age(body.Age)
		if err != nil {
			return badRequest(c, err.Error())
		}
		age = &a
	}
	var gender *string
	if body.Gender != nil {
		g, err := validate.Gender(body.Gender)
		if err != nil {
			return badRequest(c, err.Error())
		}
		gender = &g
	}
	if err := h.Actors.Update(c.Request().Context(), id, body.Name, age, gender, body.Nationality); err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	publish(c, "actor", "updated", id)
	return respond(c, http.StatusOK, nil)
}

// DeleteActor handles DELETE /actors/:id.  All of the actor's starring
// rows are removed in the same transaction.
func (h *Handler) DeleteActor(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.Actors.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	publish(c, "actor", "deleted", id)
	return c.NoContent(http.StatusNoContent)
}

func formatActors(actors []*model.Actor) []map[string]any {
	out := make([]map[string]any, 0, len(actors))
	for _, a := range actors {
		out = append(out, a.Format())
	}
	return out
}
