package model

// Starring assigns one actor to one cast.  The (cast_id, actor_id) pair is
// unique: the same actor cannot be assigned twice to the same cast.
//
// Fields:
//  ID      – primary key identifier.
//  CastID  – cast the actor is assigned to.
//  ActorID – the assigned actor.
type Starring struct {
	ID      uint64 // starring.id
	CastID  uint64 // starring.cast_id
	ActorID uint64 // starring.actor_id
}

// Format converts the starring assignment into a plain serializable map.
func (s *Starring) Format() map[string]any {
	return map[string]any{
		"id":       s.ID,
		"cast_id":  s.CastID,
		"actor_id": s.ActorID,
	}
}
