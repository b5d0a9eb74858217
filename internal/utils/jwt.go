package utils // package utils provides helper functions for token creation and hashing

import (
	"crypto/rand"   // secure random number generation
	"crypto/sha256" // SHA-256 hashing for refresh tokens
	"encoding/hex"  // hex encoding and decoding functions
	"time"          // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Role names and the permission sets they resolve to.  The permission
// strings are the per-endpoint requirements checked by the authorization
// gate; tokens carry the resolved set so the gate stays a pure claim check.
const (
	RoleAssistant = "ASSISTANT"
	RoleDirector  = "DIRECTOR"
	RoleProducer  = "PRODUCER"
)

var rolePermissions = map[string][]string{
	// Assistants can only view.
	RoleAssistant: {
		"get:movies", "get:actors", "get:casts", "get:stars",
	},
	// Directors manage everything except creating and deleting movies.
	RoleDirector: {
		"get:movies", "get:actors", "get:casts", "get:stars",
		"post:actors", "patch:actors", "delete:actors",
		"post:casts", "patch:casts", "delete:casts",
		"post:stars", "patch:stars", "delete:stars",
		"patch:movies",
	},
	// Producers hold every permission.
	RoleProducer: {
		"get:movies", "get:actors", "get:casts", "get:stars",
		"post:movies", "patch:movies", "delete:movies",
		"post:actors", "patch:actors", "delete:actors",
		"post:casts", "patch:casts", "delete:casts",
		"post:stars", "patch:stars", "delete:stars",
	},
}

// PermissionsForRole returns the permission strings granted to a role.
// Unknown roles hold no permissions.
func PermissionsForRole(role string) []string {
	return rolePermissions[role]
}

// ValidRole reports whether role is one of the three known role names.
func ValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// AccessToken represents a signed JWT access token along with its expiry.
// Access tokens are short-lived and carried in the Authorization header
// when calling protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// RefreshToken represents a long-lived token used to obtain new access
// tokens.  Only a SHA-256 hash of the raw string is stored in the
// database.
type RefreshToken struct {
	Raw string    // raw token string returned to the client
	Exp time.Time // UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  The claims are
// the subject (sub), the role, the permission set resolved from the role,
// expiration (exp) and issued at (iat).
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":         userID,
		"role":        role,
		"permissions": PermissionsForRole(role),
		"exp":         exp.Unix(),
		"iat":         time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// NewRefreshToken returns a cryptographically secure random token (raw)
// and its expiration time.
func NewRefreshToken(ttlDays int) (RefreshToken, error) {
	raw, err := randomHex(48) // 48 bytes -> 96 hex chars
	if err != nil {
		return RefreshToken{}, err
	}
	return RefreshToken{
		Raw: raw,
		Exp: time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour),
	}, nil
}

// HashRefreshRaw returns the SHA-256 hash of the raw refresh token as a
// hex string.  Storing only the hash prevents attackers from using stolen
// database entries to refresh sessions.
func HashRefreshRaw(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
