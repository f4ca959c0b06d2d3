package model

import "time"

// Content is a generic authored content entry managed through the content
// CRUD surface.
type Content struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Topic     string    `json:"topic"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertContentRequest is the payload for creating or updating content.
type UpsertContentRequest struct {
	Title string `json:"title" binding:"required,min=1,max=200"`
	Body  string `json:"body" binding:"required"`
	Topic string `json:"topic" binding:"max=100"`
}
