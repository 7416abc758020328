package dto

import "dealerdesk/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateRepresentativeRequest struct {
	Username    string `json:"username"    validate:"required,min=2,max=150"`
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=7,max=20"`
	Password    string `json:"password"    validate:"required,min=8"`
}

// UpdateRepresentativeRequest covers the mutable fields only; username and
// userType are immutable after creation.
type UpdateRepresentativeRequest struct {
	Email       string `json:"email"       validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=7,max=20"`
	IsActive    bool   `json:"isActive"`
}

type RepresentativeListQuery struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RepresentativeListResponse struct {
	Items []model.Representative `json:"items"`
	Total int                    `json:"total"`
	Page  int                    `json:"page"`
	Limit int                    `json:"limit"`
	// Headline counts for the listing screen cards.
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}
