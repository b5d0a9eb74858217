package model

import "time"

// releaseDateISO is how release dates are stored in the database, and
// releaseDateHuman is how they are rendered in API responses
// (e.g. "Wed Jan 04 2020").
const (
	releaseDateISO   = "2006-01-02"
	releaseDateHuman = "Mon Jan 02 2006"
)

// Movie represents a film that can own a single casting slot.  Deleting a
// movie removes its cast and that cast's starring rows.  This struct
// corresponds to a row in the `movies` table.
//
// Fields:
//  ID          – primary key identifier.
//  Title       – movie title.
//  Description – short synopsis.
//  ReleaseDate – optional release date stored as an ISO date string.
type Movie struct {
	ID          uint64  // movies.id
	Title       string  // movies.title
	Description string  // movies.description
	ReleaseDate *string // movies.release_date, "2006-01-02" or nil
}

// Format converts the movie into a plain serializable map.  The release
// date is rendered as a human-readable string, or null when unset.
func (m *Movie) Format() map[string]any {
	var date any
	if m.ReleaseDate != nil {
		if t, err := time.Parse(releaseDateISO, *m.ReleaseDate); err == nil {
			date = t.Format(releaseDateHuman)
		}
	}
	return map[string]any{
		"id":           m.ID,
		"title":        m.Title,
		"description":  m.Description,
		"release_date": date,
	}
}
