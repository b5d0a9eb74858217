package model

// Cast is a movie's single casting slot, the join point through which
// actors are attached to a movie.  The `casts.movie_id` column carries a
// unique constraint so a movie owns at most one cast.  Deleting a cast
// removes its starring rows.
//
// Fields:
//  ID      – primary key identifier.
//  MovieID – movie this cast belongs to, unique across casts.
type Cast struct {
	ID      uint64 // casts.id
	MovieID uint64 // casts.movie_id
}

// Format converts the cast into a plain serializable map.
func (c *Cast) Format() map[string]any {
	return map[string]any{
		"id":       c.ID,
		"movie_id": c.MovieID,
	}
}
