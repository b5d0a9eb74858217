// This file defines repository methods for movies: CRUD plus the
// transactional cascade delete that removes a movie's cast and that cast's
// starring rows together with the movie itself.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons

	"github.com/gnwankwo/casting-agency/internal/model"
)

// MovieRepo encapsulates all database queries related to movies.  It
// depends on a sql.DB connection which should be configured elsewhere.
type MovieRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Create inserts a new movie.  On success the movie's ID field is
// populated with the auto-generated value.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = "INSERT INTO movies (title, description, release_date) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, m.Title, m.Description, m.ReleaseDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	return nil
}

// GetByID fetches a movie by its ID.  It returns ErrMovieNotFound if no
// row is found.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
	const q = "SELECT id, title, description, release_date FROM movies WHERE id = ?"
	var m model.Movie
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns all movies ordered by id, i.e. insertion order.
func (r *MovieRepo) List(ctx context.Context) ([]*model.Movie, error) {
	const q = "SELECT id, title, description, release_date FROM movies ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Movie
	for rows.Next() {
		m := new(model.Movie)
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.ReleaseDate); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies the non-nil fields to an existing movie.  It returns
// ErrMovieNotFound when the id is unknown.  A nil releaseDate leaves the
// stored date untouched; clearing a date is not supported.
func (r *MovieRepo) Update(ctx context.Context, id uint64, title, description, releaseDate *string) error {
	set := ""
	args := []any{}
	appendSet := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	if title != nil {
		appendSet("title", *title)
	}
	if description != nil {
		appendSet("description", *description)
	}
	if releaseDate != nil {
		appendSet("release_date", *releaseDate)
	}
	if set == "" {
		// Nothing to change; still report unknown ids.
		_, err := r.GetByID(ctx, id)
		return err
	}
	res, err := r.db.ExecContext(ctx, "UPDATE movies SET "+set+" WHERE id = ?", append(args, id)...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 when the values did not change, so confirm
		// the row really is missing before reporting not found.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a movie together with its cast and that cast's starring
// rows as a single transaction.  ErrMovieNotFound is returned when the id
// is unknown; in that case nothing is deleted.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
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
	if err = tx.QueryRowContext(ctx, "SELECT id FROM movies WHERE id = ?", id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrMovieNotFound
		}
		return err
	}
	// Cascade: starring rows of this movie's cast, then the cast, then the movie.
	if _, err = tx.ExecContext(ctx,
		"DELETE FROM starring WHERE cast_id IN (SELECT id FROM casts WHERE movie_id = ?)", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM casts WHERE movie_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM movies WHERE id = ?", id); err != nil {
		return err
	}
	return nil
}
