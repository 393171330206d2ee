package model

import "time"

// Sample represents one post on the sample board.
// This is a pure domain model with no database-specific dependencies or tags.
type Sample struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
