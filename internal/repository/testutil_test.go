package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/gnwankwo/casting-agency/internal/model"
)

// testSchema mirrors the production DDL in sqlite's dialect.  The unique
// constraints are the same; they are what the duplicate-key tests
// exercise.
var testSchema = []string{
	`CREATE TABLE movies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		release_date TEXT
	)`,
	`CREATE TABLE actors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		gender TEXT NOT NULL,
		nationality TEXT NOT NULL
	)`,
	`CREATE TABLE casts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		movie_id INTEGER NOT NULL UNIQUE
	)`,
	`CREATE TABLE starring (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cast_id INTEGER NOT NULL,
		actor_id INTEGER NOT NULL,
		UNIQUE (cast_id, actor_id)
	)`,
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE refresh_tokens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		token_hash TEXT NOT NULL UNIQUE,
		expires_at INTEGER NOT NULL,
		revoked_at INTEGER
	)`,
}

// testDB opens a throwaway sqlite database and applies the test schema.
func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	db.SetMaxOpenConns(1)
	for _, q := range testSchema {
		if _, err := db.Exec(q); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}
	return db
}

// seedMovie inserts a movie and returns it with its assigned id.
func seedMovie(t *testing.T, db *sql.DB, title string) *model.Movie {
	t.Helper()
	date := "2020-01-04"
	m := &model.Movie{Title: title, Description: "desc for " + title, ReleaseDate: &date}
	if err := NewMovieRepo(db).Create(context.Background(), m); err != nil {
		t.Fatalf("seed movie: %v", err)
	}
	return m
}

// seedActor inserts an actor and returns it with its assigned id.
func seedActor(t *testing.T, db *sql.DB, name string) *model.Actor {
	t.Helper()
	a := &model.Actor{Name: name, Age: 37, Gender: "male", Nationality: "United Kingdom"}
	if err := NewActorRepo(db).Create(context.Background(), a); err != nil {
		t.Fatalf("seed actor: %v", err)
	}
	return a
}

// seedCast creates the cast slot for a movie.
func seedCast(t *testing.T, db *sql.DB, movieID uint64) *model.Cast {
	t.Helper()
	c := &model.Cast{MovieID: movieID}
	if err := NewCastRepo(db).Create(context.Background(), c); err != nil {
		t.Fatalf("seed cast: %v", err)
	}
	return c
}

// seedStar assigns an actor to a cast.
func seedStar(t *testing.T, db *sql.DB, castID, actorID uint64) *model.Starring {
	t.Helper()
	s := &model.Starring{CastID: castID, ActorID: actorID}
	if err := NewStarringRepo(db).Create(context.Background(), s); err != nil {
		t.Fatalf("seed star: %v", err)
	}
	return s
}
