package dto

import (
	"github.com/shopspring/decimal"

	"dealerdesk/internal/model"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// OnboardDealerRequest submits a new dealer. dealerCode and loanProposalNo
// are generated server-side, never accepted from the client.
type OnboardDealerRequest struct {
	Name                string          `json:"name"                validate:"required,min=2,max=150"`
	PAN                 string          `json:"pan"                 validate:"required,pan"`
	EntityType          string          `json:"entityType"          validate:"required"`
	Location            string          `json:"location"            validate:"required"`
	RelationshipManager string          `json:"relationshipManager" validate:"required"`
	ROI                 decimal.Decimal `json:"roi"                 validate:"min=0"`
	DelayROI            decimal.Decimal `json:"delayROI"            validate:"min=0"`
	SanctionAmount      decimal.Decimal `json:"sanctionAmount"      validate:"required,gt=0"`
	DateOfOnboarding    string          `json:"dateOfOnboarding"    validate:"omitempty,datetime=2006-01-02"`
	UserID              int64           `json:"userId"`
}

// UpdateDealerRequest is a sparse edit: nil fields are untouched, and the
// upstream payload carries exactly the set fields plus the identifier.
type UpdateDealerRequest struct {
	Name                *string          `json:"name"                validate:"omitempty,min=2,max=150"`
	PAN                 *string          `json:"pan"                 validate:"omitempty,pan"`
	EntityType          *string          `json:"entityType"          validate:"omitempty,min=1"`
	Location            *string          `json:"location"            validate:"omitempty,min=1"`
	RelationshipManager *string          `json:"relationshipManager" validate:"omitempty,min=1"`
	Status              *string          `json:"status"              validate:"omitempty,min=1"`
	SanctionAmount      *decimal.Decimal `json:"sanctionAmount"`
	OutstandingAmount   *decimal.Decimal `json:"outstandingAmount"`
	IsActive            *bool            `json:"isActive"`
}

// DealerListQuery narrows and orders the in-memory dealer collection.
type DealerListQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
	SortBy string `form:"sortBy" validate:"omitempty,oneof=name sanctionAmount dateOfOnboarding"`
	Desc   bool   `form:"desc"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DealerListResponse struct {
	Items []model.Dealer `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
