// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a missing
// record maps to a different HTTP response than a uniqueness violation
// detected by the store at commit time.
package repository

import (
	"errors"
	"strings"
)

// ErrMovieNotFound is returned when a movie cannot be found in the DB.
var ErrMovieNotFound = errors.New("movie not found")

// ErrActorNotFound is returned when an actor cannot be found in the DB.
var ErrActorNotFound = errors.New("actor not found")

// ErrCastNotFound is returned when a cast cannot be found in the DB.
var ErrCastNotFound = errors.New("cast not found")

// ErrStarringNotFound is returned when a starring row cannot be found.
var ErrStarringNotFound = errors.New("starring not found")

// ErrDuplicateMovieCast is returned when inserting or updating a cast
// would violate the unique constraint on casts.movie_id.  Handlers
// translate this into a 400 naming the offending movie id.
var ErrDuplicateMovieCast = errors.New("movie already assigned to a cast")

// ErrDuplicateAssignment is returned when a (cast_id, actor_id) pair
// already exists in the starring table.
var ErrDuplicateAssignment = errors.New("actor already assigned to cast")

// isDuplicate reports whether err is a unique-constraint violation.
// MySQL reports error 1062 ("Duplicate entry"); sqlite, used by the test
// suite, reports "UNIQUE constraint failed".
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "1062") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
