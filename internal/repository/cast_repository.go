// This file defines repository methods for casts.  The unique constraint
// on casts.movie_id is surfaced as ErrDuplicateMovieCast so the API layer
// can reject the request instead of crashing.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gnwankwo/casting-agency/internal/model"
)

// CastRepo encapsulates all database queries related to casts.
type CastRepo struct {
	db *sql.DB
}

// NewCastRepo constructs a CastRepo with the provided DB handle.
func NewCastRepo(db *sql.DB) *CastRepo {
	return &CastRepo{db: db}
}

// Create inserts a new cast and populates its ID on success.  When the
// movie already owns a cast the store rejects the insert and
// ErrDuplicateMovieCast is returned.
func (r *CastRepo) Create(ctx context.Context, c *model.Cast) error {
	const q = "INSERT INTO casts (movie_id) VALUES (?)"
	res, err := r.db.ExecContext(ctx, q, c.MovieID)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicateMovieCast
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// GetByID fetches a cast by its ID.  It returns ErrCastNotFound if no row
// is found.
func (r *CastRepo) GetByID(ctx context.Context, id uint64) (*model.Cast, error) {
	const q = "SELECT id, movie_id FROM casts WHERE id = ?"
	var c model.Cast
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&c.ID, &c.MovieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCastNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetByMovieID fetches the cast owned by a movie.  It returns
// ErrCastNotFound when the movie has no cast yet.
func (r *CastRepo) GetByMovieID(ctx context.Context, movieID uint64) (*model.Cast, error) {
	const q = "SELECT id, movie_id FROM casts WHERE movie_id = ?"
	var c model.Cast
	if err := r.db.QueryRowContext(ctx, q, movieID).Scan(&c.ID, &c.MovieID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCastNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all casts ordered by id.
func (r *CastRepo) List(ctx context.Context) ([]*model.Cast, error) {
	const q = "SELECT id, movie_id FROM casts ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Cast
	for rows.Next() {
		c := new(model.Cast)
		if err := rows.Scan(&c.ID, &c.MovieID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateMovieID points an existing cast at a different movie.  It returns
// ErrCastNotFound when the cast id is unknown and ErrDuplicateMovieCast
// when the target movie already owns a cast.
func (r *CastRepo) UpdateMovieID(ctx context.Context, id, movieID uint64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	const q = "UPDATE casts SET movie_id = ? WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, movieID, id); err != nil {
		if isDuplicate(err) {
			return ErrDuplicateMovieCast
		}
		return err
	}
	return nil
}

// Delete removes a cast and all starring rows that reference it as a
// single transaction.  ErrCastNotFound is returned when the id is unknown.
func (r *CastRepo) Delete(ctx context.Context, id uint64) error {
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
	if err = tx.QueryRowContext(ctx, "SELECT id FROM casts WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrCastNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM starring WHERE cast_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM casts WHERE id = ?", id); err != nil {
		return err
	}
	return nil
}
