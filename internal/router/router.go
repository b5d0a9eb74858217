package router // package router defines how HTTP routes are registered for the API

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/gnwankwo/casting-agency/internal/handler"
	"github.com/gnwankwo/casting-agency/internal/middleware"
)

// routePermissions is the authoritative table mapping each domain route to
// the permission string the authorization gate requires for it.  Every
// domain route is registered through this table; a route missing from it
// is a programming error caught at startup.
var routePermissions = map[string]string{
	"GET /movies":          "get:movies",
	"GET /movies/:id":      "get:movies",
	"GET /movies/:id/cast": "get:movies",
	"POST /movies":         "post:movies",
	"PATCH /movies/:id":    "patch:movies",
	"DELETE /movies/:id":   "delete:movies",

	"GET /actors":                          "get:actors",
	"GET /actors/:id":                      "get:actors",
	"GET /actors/nationality/:nationality": "get:actors",
	"GET /actors/:id/movies":               "get:actors",
	"POST /actors":                         "post:actors",
	"PATCH /actors/:id":                    "patch:actors",
	"DELETE /actors/:id":                   "delete:actors",

	"GET /casts":        "get:casts",
	"GET /casts/:id":    "get:casts",
	"POST /casts":       "post:casts",
	"PATCH /casts/:id":  "patch:casts",
	"DELETE /casts/:id": "delete:casts",

	"GET /stars":        "get:stars",
	"GET /stars/:id":    "get:stars",
	"POST /stars":       "post:stars",
	"PATCH /stars/:id":  "patch:stars",
	"DELETE /stars/:id": "delete:stars",
}

// permissionFor looks up the required permission for a route and panics
// when the table has no entry, so a forgotten registration fails at boot
// rather than shipping an unguarded route.
func permissionFor(method, path string) string {
	perm, ok := routePermissions[method+" "+path]
	if !ok {
		panic(fmt.Sprintf("no permission declared for route %s %s", method, path))
	}
	return perm
}

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the account endpoints.  Token-issuing operations
// live under /v1/auth and need no credential; /v1/me requires a valid
// access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterAPI registers all domain routes.  Each route passes JWTAuth and
// then the RequirePermission check looked up from the permission table.
// Any extra middleware (rate limiting, response caching) runs after both
// gates: a middleware that short-circuits, like the cache serving a stored
// body, must never answer a request the gates would have rejected.
func RegisterAPI(e *echo.Echo, h *handler.Handler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	api := e.Group("", middleware.JWTAuth(jwtSecret))
	add := func(method, path string, fn echo.HandlerFunc) {
		chain := append([]echo.MiddlewareFunc{
			middleware.RequirePermission(permissionFor(method, path)),
		}, extra...)
		api.Add(method, path, fn, chain...)
	}

	add(http.MethodGet, "/movies", h.GetMovies)
	add(http.MethodGet, "/movies/:id", h.GetMovieByID)
	add(http.MethodGet, "/movies/:id/cast", h.GetMovieCast)
	add(http.MethodPost, "/movies", h.CreateMovie)
	add(http.MethodPatch, "/movies/:id", h.UpdateMovie)
	add(http.MethodDelete, "/movies/:id", h.DeleteMovie)

	add(http.MethodGet, "/actors", h.GetActors)
	add(http.MethodGet, "/actors/:id", h.GetActorByID)
	add(http.MethodGet, "/actors/nationality/:nationality", h.GetActorsByNationality)
	add(http.MethodGet, "/actors/:id/movies", h.GetActorMovies)
	add(http.MethodPost, "/actors", h.CreateActor)
	add(http.MethodPatch, "/actors/:id", h.UpdateActor)
	add(http.MethodDelete, "/actors/:id", h.DeleteActor)

	add(http.MethodGet, "/casts", h.GetCasts)
	add(http.MethodGet, "/casts/:id", h.GetCastByID)
	add(http.MethodPost, "/casts", h.CreateCast)
	add(http.MethodPatch, "/casts/:id", h.UpdateCast)
	add(http.MethodDelete, "/casts/:id", h.DeleteCast)

	add(http.MethodGet, "/stars", h.GetStars)
	add(http.MethodGet, "/stars/:id", h.GetStarByID)
	add(http.MethodPost, "/stars", h.CreateStar)
	add(http.MethodPatch, "/stars/:id", h.UpdateStar)
	add(http.MethodDelete, "/stars/:id", h.DeleteStar)
}
