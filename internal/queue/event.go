// Package queue defines message payloads exchanged over the message broker.
package queue

// EntityChangedEvent is published after a successful create, update or
// delete of any entity.  It carries enough information for downstream
// consumers to log or trigger re-indexing without querying the primary
// database.
type EntityChangedEvent struct {
	Entity     string `json:"entity"` // "movie" | "actor" | "cast" | "star"
	Action     string `json:"action"` // "created" | "updated" | "deleted"
	ID         uint64 `json:"id"`
	OccurredAt string `json:"occurred_at"`
}
