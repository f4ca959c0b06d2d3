package model

import "time"

// Assessment groups a set of questions under a title and time limit.
type Assessment struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"` // Minutes.
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UpsertAssessmentRequest is the payload for creating or updating an
// assessment.
type UpsertAssessmentRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description"`
	Duration    int        `json:"duration" binding:"min=0"`
	Questions   []Question `json:"questions"`
}
