package handler // starring endpoints

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gnwankwo/casting-agency/internal/model"
	"github.com/gnwankwo/casting-agency/internal/repository"
)

// GetStars handles GET /stars and returns every starring assignment.
func (h *Handler) GetStars(c echo.Context) error {
	stars, err := h.Stars.List(c.Request().Context())
	if err != nil {
		return internalError(c)
	}
	out := make([]map[string]any, 0, len(stars))
	for _, s := range stars {
		out = append(out, s.Format())
	}
	return respond(c, http.StatusOK, echo.Map{"stars": out})
}

// GetStarByID handles GET /stars/:id.  An unknown id yields a null star,
// not an error.
func (h *Handler) GetStarByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	star, err := h.Stars.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStarringNotFound) {
			return respond(c, http.StatusOK, echo.Map{"star": nil})
		}
		return internalError(c)
	}
	return respond(c, http.StatusOK, echo.Map{"star": star.Format()})
}

// CreateStar handles POST /stars and assigns an actor to a cast.  Both
// referenced records must exist and the (cast, actor) pair must be new;
// the existence checks run before the duplicate-pair check.
func (h *Handler) CreateStar(c echo.Context) error {
	var body struct {
		CastID  uint64 `json:"cast_id"`
		ActorID uint64 `json:"actor_id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	ctx := c.Request().Context()
	if _, err := h.Casts.GetByID(ctx, body.CastID); err != nil {
		if errors.Is(err, repository.ErrCastNotFound) {
			return badRequest(c, "Cast id does not exist")
		}
		return internalError(c)
	}
	if _, err := h.Actors.GetByID(ctx, body.ActorID); err != nil {
		if errors.Is(err, repository.ErrActorNotFound) {
			return badRequest(c, "Actor id does not exist")
		}
		return internalError(c)
	}
	exists, err := h.Stars.PairExists(ctx, body.CastID, body.ActorID)
	if err != nil {
		return internalError(c)
	}
	if exists {
		return badRequest(c, "Actor is already assigned to Cast")
	}
	star := &model.Starring{CastID: body.CastID, ActorID: body.ActorID}
	if err := h.Stars.Create(ctx, star); err != nil {
		// The unique constraint backs up the pre-check at commit time.
		if errors.Is(err, repository.ErrDuplicateAssignment) {
			return badRequest(c, "Actor is already assigned to Cast")
		}
		return internalError(c)
	}
	publish(c, "star", "created", star.ID)
	return respond(c, http.StatusCreated, nil)
}

// UpdateStar handles PATCH /stars/:id.  Provided cast_id/actor_id fields
// are checked for existence, and the resulting pair must not collide with
// another assignment.
func (h *Handler) UpdateStar(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	var body struct {
		CastID  *uint64 `json:"cast_id"`
		ActorID *uint64 `json:"actor_id"`
	}
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	ctx := c.Request().Context()
	cur, err := h.Stars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStarringNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	if body.CastID != nil {
		if _, err := h.Casts.GetByID(ctx, *body.CastID); err != nil {
			if errors.Is(err, repository.ErrCastNotFound) {
				return badRequest(c, "Cast id does not exist")
			}
			return internalError(c)
		}
	}
	if body.ActorID != nil {
		if _, err := h.Actors.GetByID(ctx, *body.ActorID); err != nil {
			if errors.Is(err, repository.ErrActorNotFound) {
				return badRequest(c, "Actor id does not exist")
			}
			return internalError(c)
		}
	}
	nextCast, nextActor := cur.CastID, cur.ActorID
	if body.CastID != nil {
		nextCast = *body.CastID
	}
	if body.ActorID != nil {
		nextActor = *body.ActorID
	}
	if nextCast != cur.CastID || nextActor != cur.ActorID {
		exists, err := h.Stars.PairExists(ctx, nextCast, nextActor)
		if err != nil {
			return internalError(c)
		}
		if exists {
			return badRequest(c, "Actor is already assigned to Cast")
		}
	}
	if err := h.Stars.Update(ctx, id, body.CastID, body.ActorID); err != nil {
		switch {
		case errors.Is(err, repository.ErrStarringNotFound):
			return notFound(c)
		case errors.Is(err, repository.ErrDuplicateAssignment):
			return badRequest(c, "Actor is already assigned to Cast")
		}
		return internalError(c)
	}
	publish(c, "star", "updated", id)
	return respond(c, http.StatusOK, nil)
}

// DeleteStar handles DELETE /stars/:id.
func (h *Handler) DeleteStar(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.Stars.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrStarringNotFound) {
			return notFound(c)
		}
		return internalError(c)
	}
	publish(c, "star", "deleted", id)
	return c.NoContent(http.StatusNoContent)
}
