package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateKeySubject(t *testing.T) {
	e := echo.New()
	newCtx := func() echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/movies")
		return c
	}

	// Without a stashed claim the bucket is keyed as guest.
	if key := rateKey("rl", newCtx()); !strings.Contains(key, ":guest:") {
		t.Errorf("key = %q, want guest subject", key)
	}

	// The subject claim set by JWTAuth arrives as a JSON number and keys
	// the caller's own bucket.
	c := newCtx()
	c.Set("user_id", float64(7))
	key := rateKey("rl", c)
	if !strings.Contains(key, ":7:") {
		t.Errorf("key = %q, want subject 7", key)
	}
	if !strings.HasSuffix(key, ":/movies") {
		t.Errorf("key = %q, want route suffix", key)
	}
}
