package domain

import "time"

// Post is a piece of content owned by the user who created it.
type Post struct {
	ID        string
	AuthorID  string
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
