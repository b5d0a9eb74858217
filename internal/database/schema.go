package database

import (
	"context"
	"database/sql"
)

// initQueries creates the application tables when they do not exist yet.
// Order matters: referenced tables first.  The unique key on
// casts.movie_id enforces the one-cast-per-movie rule and the composite
// key on starring enforces one assignment per (cast, actor) pair.
var initQueries = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(150) NOT NULL,
		description VARCHAR(500) NOT NULL,
		release_date VARCHAR(10) NULL
	)`,
	`CREATE TABLE IF NOT EXISTS actors (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		age INT NOT NULL,
		gender VARCHAR(10) NOT NULL,
		nationality VARCHAR(150) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS casts (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		movie_id BIGINT UNSIGNED NOT NULL,
		UNIQUE KEY uq_casts_movie (movie_id),
		CONSTRAINT fk_casts_movie FOREIGN KEY (movie_id) REFERENCES movies (id)
	)`,
	`CREATE TABLE IF NOT EXISTS starring (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		cast_id BIGINT UNSIGNED NOT NULL,
		actor_id BIGINT UNSIGNED NOT NULL,
		UNIQUE KEY uq_starring_pair (cast_id, actor_id),
		CONSTRAINT fk_starring_cast FOREIGN KEY (cast_id) REFERENCES casts (id),
		CONSTRAINT fk_starring_actor FOREIGN KEY (actor_id) REFERENCES actors (id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL,
		expires_at BIGINT NOT NULL,
		revoked_at BIGINT NULL,
		UNIQUE KEY uq_refresh_hash (token_hash),
		CONSTRAINT fk_refresh_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
}

// EnsureSchema executes the init queries in order.  Each statement is
// idempotent so running it on every startup is safe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, q := range initQueries {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
