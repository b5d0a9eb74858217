package handler_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/gnwankwo/casting-agency/internal/config"
	"github.com/gnwankwo/casting-agency/internal/handler"
	"github.com/gnwankwo/casting-agency/internal/repository"
	"github.com/gnwankwo/casting-agency/internal/router"
	"github.com/gnwankwo/casting-agency/internal/utils"
)

// newAuthServer wires the account endpoints over a throwaway database.
func newAuthServer(t *testing.T) *echo.Echo {
	t.Helper()
	db := testDB(t)
	cfg := config.Config{
		JWTSecret:      testSecret,
		AccessTTLMin:   15,
		RefreshTTLDays: 30,
		BcryptCost:     bcrypt.MinCost,
	}
	a := handler.NewAuthHandler(cfg, repository.NewUserRepo(db), repository.NewTokenRepo(db))
	e := echo.New()
	router.RegisterAuth(e, a, testSecret)
	return e
}

func register(t *testing.T, e *echo.Echo, email, password, role string) map[string]any {
	t.Helper()
	rec := do(t, e, http.MethodPost, "/v1/auth/register", "", map[string]any{
		"email": email, "password": password, "role": role,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register: status = %d, body %s", rec.Code, rec.Body.String())
	}
	return decode(t, rec)
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	e := newAuthServer(t)
	body := register(t, e, "Casting@Agency.test", "open sesame", "PRODUCER")

	user := body["user"].(map[string]any)
	if user["email"] != "casting@agency.test" {
		t.Errorf("email = %v, want lowercased", user["email"])
	}
	if user["role"] != utils.RoleProducer {
		t.Errorf("role = %v", user["role"])
	}
	access := body["access"].(map[string]any)
	if access["token"] == "" || access["token"] == nil {
		t.Error("no access token issued")
	}
	refresh := body["refresh"].(map[string]any)
	if refresh["token"] == "" || refresh["token"] == nil {
		t.Error("no refresh token issued")
	}
}

func TestRegisterUnknownRoleFallsBackToAssistant(t *testing.T) {
	e := newAuthServer(t)
	body := register(t, e, "x@y.test", "pw", "OVERLORD")
	if role := body["user"].(map[string]any)["role"]; role != utils.RoleAssistant {
		t.Errorf("role = %v, want %s", role, utils.RoleAssistant)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newAuthServer(t)
	register(t, e, "x@y.test", "pw", "DIRECTOR")

	rec := do(t, e, http.MethodPost, "/v1/auth/register", "", map[string]any{
		"email": "X@Y.test", "password": "other", "role": "DIRECTOR",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestLoginAndMe(t *testing.T) {
	e := newAuthServer(t)
	register(t, e, "x@y.test", "open sesame", "DIRECTOR")

	rec := do(t, e, http.MethodPost, "/v1/auth/login", "", map[string]any{
		"email": "x@y.test", "password": "open sesame",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login: status = %d, body %s", rec.Code, rec.Body.String())
	}
	access := decode(t, rec)["access"].(map[string]any)["token"].(string)

	rec = do(t, e, http.MethodGet, "/v1/me", "Bearer "+access, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("me: status = %d, body %s", rec.Code, rec.Body.String())
	}
	user := decode(t, rec)["user"].(map[string]any)
	if user["email"] != "x@y.test" || user["role"] != utils.RoleDirector {
		t.Errorf("user = %v", user)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	e := newAuthServer(t)
	register(t, e, "x@y.test", "open sesame", "DIRECTOR")

	for _, body := range []map[string]any{
		{"email": "x@y.test", "password": "wrong"},
		{"email": "nobody@y.test", "password": "open sesame"},
	} {
		rec := do(t, e, http.MethodPost, "/v1/auth/login", "", body)
		wantFailure(t, rec, http.StatusUnauthorized, "Authorization Failed")
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	e := newAuthServer(t)
	body := register(t, e, "x@y.test", "pw", "PRODUCER")
	refresh := body["refresh"].(map[string]any)["token"].(string)

	rec := do(t, e, http.MethodPost, "/v1/auth/refresh", "", map[string]any{"refresh_token": refresh})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: status = %d, body %s", rec.Code, rec.Body.String())
	}
	next := decode(t, rec)["refresh"].(map[string]any)["token"].(string)
	if next == refresh {
		t.Error("refresh token not rotated")
	}

	// The presented token was revoked by the rotation.
	rec = do(t, e, http.MethodPost, "/v1/auth/refresh", "", map[string]any{"refresh_token": refresh})
	wantFailure(t, rec, http.StatusUnauthorized, "Authorization Failed")

	// The freshly minted one works.
	rec = do(t, e, http.MethodPost, "/v1/auth/refresh", "", map[string]any{"refresh_token": next})
	if rec.Code != http.StatusOK {
		t.Errorf("rotated token rejected: %s", rec.Body.String())
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	e := newAuthServer(t)
	body := register(t, e, "x@y.test", "pw", "PRODUCER")
	refresh := body["refresh"].(map[string]any)["token"].(string)

	rec := do(t, e, http.MethodPost, "/v1/auth/logout", "", map[string]any{"refresh_token": refresh})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("logout: status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/v1/auth/refresh", "", map[string]any{"refresh_token": refresh})
	wantFailure(t, rec, http.StatusUnauthorized, "Authorization Failed")

	// Logging out twice with the same token fails cleanly.
	rec = do(t, e, http.MethodPost, "/v1/auth/logout", "", map[string]any{"refresh_token": refresh})
	wantFailure(t, rec, http.StatusUnauthorized, "Authorization Failed")
}

func TestMeRequiresToken(t *testing.T) {
	e := newAuthServer(t)
	rec := do(t, e, http.MethodGet, "/v1/me", "", nil)
	wantFailure(t, rec, http.StatusUnauthorized, "Authorization Failed")
}
