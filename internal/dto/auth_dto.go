package dto

import "dealerdesk/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
	UserType string `json:"userType" validate:"required,oneof=admin dealer"`
}

type RegisterRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=100"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=7,max=20"`
	Password    string `json:"password"    validate:"required,min=8"`
	UserType    string `json:"userType"    validate:"required,oneof=admin dealer"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// LoginResponse carries the normalized identity plus the role's landing
// route; the SPA navigates there after storing nothing locally but the cookie.
type LoginResponse struct {
	User     model.User `json:"user"`
	Redirect string     `json:"redirect"`
}

// RegisterResponse intentionally has no redirect — the caller decides where
// to navigate after registration.
type RegisterResponse struct {
	User model.User `json:"user"`
}

type SessionResponse struct {
	User      model.User `json:"user"`
	ExpiresAt string     `json:"expiresAt"`
}
