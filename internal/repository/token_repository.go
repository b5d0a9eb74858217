package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// ErrTokenInvalid is returned when a refresh token is unknown, revoked or
// expired.  Callers should treat all three cases the same way.
var ErrTokenInvalid = errors.New("refresh token invalid")

// TokenRepo persists refresh tokens.  Only the SHA-256 hash of the raw
// token is stored; expiry and revocation timestamps are kept as unix
// seconds.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh saves a refresh token hash for a user.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, hash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, hash, exp.Unix())
	return err
}

// UserForRefresh returns the owning user id for a live (unexpired,
// unrevoked) refresh token hash.
func (r *TokenRepo) UserForRefresh(ctx context.Context, hash string) (uint64, error) {
	var userID uint64
	var expiresAt int64
	var revokedAt sql.NullInt64
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		hash).Scan(&userID, &expiresAt, &revokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrTokenInvalid
	}
	if err != nil {
		return 0, err
	}
	if revokedAt.Valid || time.Now().UTC().Unix() >= expiresAt {
		return 0, ErrTokenInvalid
	}
	return userID, nil
}

// Revoke marks a refresh token as revoked.  Revoking an unknown or already
// revoked token returns ErrTokenInvalid.
func (r *TokenRepo) Revoke(ctx context.Context, hash string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=? WHERE token_hash=? AND revoked_at IS NULL",
		time.Now().UTC().Unix(), hash)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrTokenInvalid
	}
	return nil
}
