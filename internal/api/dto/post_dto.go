package dto

import "time"

// PostRequest payload for creating or editing a post.
type PostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostResponse serialized post.
type PostResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
