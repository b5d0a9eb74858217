package model

// Actor represents a performer that can be assigned to casts.  Deleting an
// actor removes all starring rows that reference it.  This struct
// corresponds to a row in the `actors` table.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – actor's full name.
//  Age         – age in years, strictly positive.
//  Gender      – "male" or "female".
//  Nationality – country the actor is a national of.
type Actor struct {
	ID          uint64 // actors.id
	Name        string // actors.name
	Age         int    // actors.age
	Gender      string // actors.gender
	Nationality string // actors.nationality
}

// Format converts the actor into a plain serializable map.
func (a *Actor) Format() map[string]any {
	return map[string]any{
		"id":          a.ID,
		"name":        a.Name,
		"age":         a.Age,
		"gender":      a.Gender,
		"nationality": a.Nationality,
	}
}
