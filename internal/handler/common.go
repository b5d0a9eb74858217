package handler // handler contains the HTTP handlers for the casting API

import (
	"net/http" // status code constants
	"strconv"  // strconv parses string identifiers to numeric types

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/gnwankwo/casting-agency/internal/queue"
	"github.com/gnwankwo/casting-agency/internal/repository"
	queue_publisher "github.com/gnwankwo/casting-agency/internal/service"
)

// Handler bundles the entity repositories used by the API handlers.
type Handler struct {
	Movies *repository.MovieRepo    // Movies provides movie persistence
	Actors *repository.ActorRepo    // Actors provides actor persistence
	Casts  *repository.CastRepo     // Casts provides cast persistence
	Stars  *repository.StarringRepo // Stars provides starring persistence
}

// NewHandler constructs a Handler and panics if any dependency is nil.
func NewHandler(movies *repository.MovieRepo, actors *repository.ActorRepo, casts *repository.CastRepo, stars *repository.StarringRepo) *Handler {
	if movies == nil || actors == nil || casts == nil || stars == nil {
		panic("nil repository passed to NewHandler")
	}
	return &Handler{Movies: movies, Actors: actors, Casts: casts, Stars: stars}
}

// respond writes a success envelope with the given status and payload keys.
func respond(c echo.Context, status int, payload echo.Map) error {
	body := echo.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.JSON(status, body)
}

// fail writes a failure envelope with the given status and message.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"success": false, "message": message})
}

func badRequest(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, message)
}

func notFound(c echo.Context) error {
	return fail(c, http.StatusNotFound, "Resource not found")
}

func internalError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, "Internal Server Error")
}

// pathID parses the numeric :id path parameter.  A non-numeric id is
// treated as an unroutable resource, not a validation failure.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	return id, err == nil
}

// publish emits a best-effort entity-change event.  Failures are already
// logged by the publisher and never affect the response.
func publish(c echo.Context, entity, action string, id uint64) {
	_ = queue_publisher.PublishEntityChanged(c.Request().Context(), queue.EntityChangedEvent{
		Entity: entity,
		Action: action,
		ID:     id,
	})
}
