package model

import "time"

// Author is a dashboard user who writes questions and templates.
type Author struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the identity shape handed to the dashboard after login.
type Profile struct {
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
}

// Profile returns the author's public identity.
func (a *Author) Profile() Profile {
	return Profile{
		Name:              a.Name,
		PreferredUsername: a.Username,
		Email:             a.Email,
	}
}

// LoginRequest is the credential payload for author login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
