package middleware // contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// unauthenticated is the uniform 401 body: a missing, malformed, expired
// or otherwise invalid credential always produces the same response.
func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"message": "Authorization Failed",
	})
}

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject, role and permissions claims into the
// request context.  The provided secret must match the one used when
// issuing tokens.  Handlers and downstream middleware can read the values
// via c.Get("user_id"), c.Get("role") and c.Get("permissions").
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthenticated(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 only; a token signed any other way is
			// rejected.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return unauthenticated(c)
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return unauthenticated(c)
			}

			c.Set("user_id", claims["sub"])
			c.Set("role", claims["role"])
			c.Set("permissions", permissionSet(claims["permissions"]))
			return next(c)
		}
	}
}

// permissionSet converts the raw permissions claim (a JSON array) into a
// lookup set.  Anything that is not a string array yields an empty set.
func permissionSet(raw any) map[string]bool {
	set := map[string]bool{}
	items, ok := raw.([]any)
	if !ok {
		return set
	}
	for _, it := range items {
		if s, ok := it.(string); ok {
			set[s] = true
		}
	}
	return set
}
