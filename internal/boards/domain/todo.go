package domain

import "time"

type Todo struct {
	ID          string
	BoardID     string
	Title       string
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
