// This file defines repository methods for actors, including the
// nationality filter and the join query resolving an actor's starring rows
// to movie titles.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gnwankwo/casting-agency/internal/model"
)

// ActorRepo encapsulates all database queries related to actors.
type ActorRepo struct {
	db *sql.DB
}

// NewActorRepo constructs an ActorRepo with the provided DB handle.
func NewActorRepo(db *sql.DB) *ActorRepo {
	return &ActorRepo{db: db}
}

// Create inserts a new actor and populates its ID on success.
func (r *ActorRepo) Create(ctx context.Context, a *model.Actor) error {
	const q = "INSERT INTO actors (name, age, gender, nationality) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, a.Name, a.Age, a.Gender, a.Nationality)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// GetByID fetches an actor by its ID.  It returns ErrActorNotFound if no
// row is found.
func (r *ActorRepo) GetByID(ctx context.Context, id uint64) (*model.Actor, error) {
	const q = "SELECT id, name, age, gender, nationality FROM actors WHERE id = ?"
	var a model.Actor
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&a.ID, &a.Name, &a.Age, &a.Gender, &a.Nationality); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrActorNotFound
		}
		return nil, err
	}
	return &a, nil
}

// List returns all actors ordered by id.
func (r *ActorRepo) List(ctx context.Context) ([]*model.Actor, error) {
	const q = "SELECT id, name, age, gender, nationality FROM actors ORDER BY id"
	return r.scanList(ctx, q)
}

// ListByNationality returns all actors with the given nationality, ordered
// by id.  The match is exact.
func (r *ActorRepo) ListByNationality(ctx context.Context, nationality string) ([]*model.Actor, error) {
	const q = "SELECT id, name, age, gender, nationality FROM actors WHERE nationality = ? ORDER BY id"
	return r.scanList(ctx, q, nationality)
}

func (r *ActorRepo) scanList(ctx context.Context, q string, args ...any) ([]*model.Actor, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Actor
	for rows.Next() {
		a := new(model.Actor)
		if err := rows.Scan(&a.ID, &a.Name, &a.Age, &a.Gender, &a.Nationality); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// MovieTitles resolves each starring row of the actor to its cast and that
// cast to its movie, returning the titles in starring insertion order.
// Titles are intentionally not deduplicated.
func (r *ActorRepo) MovieTitles(ctx context.Context, actorID uint64) ([]string, error) {
	const q = `SELECT m.title
	           FROM starring s
	           JOIN casts c ON c.id = s.cast_id
	           JOIN movies m ON m.id = c.movie_id
	           WHERE s.actor_id = ? ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return titles, nil
}

// Update applies the provided fields to an existing actor.  Nil pointers
// leave the stored value untouched.  ErrActorNotFound is returned when the
// id is unknown.
func (r *ActorRepo) Update(ctx context.Context, id uint64, name *string, age *int, gender, nationality *string) error {
	set := ""
	args := []any{}
	appendSet := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if name != nil {
		appendSet("name", *name)
	}
	if age != nil {
		appendSet("age", *age)
	}
	if gender != nil {
		appendSet("gender", *gender)
	}
	if nationality != nil {
		appendSet("nationality", *nationality)
	}
	if set == "" {
		_, err := r.GetByID(ctx, id)
		return err
	}
	res, err := r.db.ExecContext(ctx, "UPDATE actors SET "+set+" WHERE id = ?", append(args, id)...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an actor and all starring rows that reference it as a
// single transaction.  ErrActorNotFound is returned when the id is
// unknown.
func (r *ActorRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var exists uint64
	if err = tx.QueryRowContext(ctx, "SELECT id FROM actors WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrActorNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM starring WHERE actor_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM actors WHERE id = ?", id); err != nil {
		return err
	}
	return nil
}
