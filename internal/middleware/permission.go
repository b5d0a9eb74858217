package middleware // middleware provides shared request processing for handlers

import (
	"net/http" // http package defines standard HTTP status codes

	"github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequirePermission returns a middleware function that enforces that the
// authenticated user holds the given permission string (e.g.
// "delete:movies").  It assumes JWTAuth has already stored the token's
// permission set in the context under "permissions".  Requests lacking
// the permission are aborted with a 403 response.
func RequirePermission(perm string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			perms, ok := c.Get("permissions").(map[string]bool)
			if !ok || !perms[perm] {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"message": "Permission Denied",
				})
			}
			return next(c)
		}
	}
}
