// This file defines repository methods for starring assignments.  The
// unique (cast_id, actor_id) pair is checked up front via PairExists and
// backed by the store's unique constraint, surfaced as
// ErrDuplicateAssignment.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gnwankwo/casting-agency/internal/model"
)

// StarringRepo encapsulates all database queries related to starring rows.
type StarringRepo struct {
	db *sql.DB
}

// NewStarringRepo constructs a StarringRepo with the provided DB handle.
func NewStarringRepo(db *sql.DB) *StarringRepo {
	return &StarringRepo{db: db}
}

// Create inserts a new starring row and populates its ID on success.
// ErrDuplicateAssignment is returned when the (cast, actor) pair already
// exists.
func (r *StarringRepo) Create(ctx context.Context, s *model.Starring) error {
	const q = "INSERT INTO starring (cast_id, actor_id) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, s.CastID, s.ActorID)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicateAssignment
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID fetches a starring row by its ID.  It returns
// ErrStarringNotFound if no row is found.
func (r *StarringRepo) GetByID(ctx context.Context, id uint64) (*model.Starring, error) {
	const q = "SELECT id, cast_id, actor_id FROM starring WHERE id = ?"
	var s model.Starring
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.CastID, &s.ActorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStarringNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns all starring rows ordered by id.
func (r *StarringRepo) List(ctx context.Context) ([]*model.Starring, error) {
	const q = "SELECT id, cast_id, actor_id FROM starring ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Starring
	for rows.Next() {
		s := new(model.Starring)
		if err := rows.Scan(&s.ID, &s.CastID, &s.ActorID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PairExists reports whether an actor is already assigned to a cast.
func (r *StarringRepo) PairExists(ctx context.Context, castID, actorID uint64) (bool, error) {
	const q = "SELECT id FROM starring WHERE cast_id = ? AND actor_id = ? LIMIT 1"
	var id uint64
	err := r.db.QueryRowContext(ctx, q, castID, actorID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ActorNames resolves each starring row of a cast to the assigned actor's
// name, in starring insertion order.
func (r *StarringRepo) ActorNames(ctx context.Context, castID uint64) ([]string, error) {
	const q = `SELECT a.name
	           FROM starring s
	           JOIN actors a ON a.id = s.actor_id
	           WHERE s.cast_id = ? ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q, castID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Update points an existing starring row at a different cast and/or actor.
// Nil pointers leave the stored value untouched.  ErrStarringNotFound is
// returned for unknown ids, ErrDuplicateAssignment when the resulting pair
// already exists.
func (r *StarringRepo) Update(ctx context.Context, id uint64, castID, actorID *uint64) error {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	next := *cur
	if castID != nil {
		next.CastID = *castID
	}
	if actorID != nil {
		next.ActorID = *actorID
	}
	const q = "UPDATE starring SET cast_id = ?, actor_id = ? WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, next.CastID, next.ActorID, id); err != nil {
		if isDuplicate(err) {
			return ErrDuplicateAssignment
		}
		return err
	}
	return nil
}

// Delete removes a starring row.  ErrStarringNotFound is returned when the
// id is unknown.
func (r *StarringRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM starring WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStarringNotFound
	}
	return nil
}
