package models

import "time"

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionStatus describes the caller's admin session.
type SessionStatus struct {
	LoggedIn  bool       `json:"loggedIn"`
	LoginTime *time.Time `json:"loginTime,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
