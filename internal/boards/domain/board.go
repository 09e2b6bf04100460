package domain

import "time"

// Board belongs to exactly one user. IsCompleted is derived from Todos by
// the service layer, and can be overridden until the next todo change.
type Board struct {
	ID          string
	UserID      string
	Name        string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Todos is only populated by reads that ask for it, oldest first.
	Todos []Todo
}

// DeriveCompletion is the completion rule: at least one todo and every todo
// complete. An empty board is never complete.
//
// Stored boards are recomputed in SQL (RecomputeBoardCompletion in the sqlite
// driver), which is authoritative. This is the same rule over an in-memory
// slice, used by tests to check what the store derived.
func DeriveCompletion(todos []Todo) bool {
	if len(todos) == 0 {
		return false
	}
	for _, t := range todos {
		if !t.IsCompleted {
			return false
		}
	}
	return true
}
