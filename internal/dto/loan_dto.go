package dto

import "dealerdesk/internal/model"

// LoanListQuery combines the loan filter specification with search and
// pagination. Pointer fields left nil impose no constraint. Amounts arrive as
// plain numbers; dates as YYYY-MM-DD.
type LoanListQuery struct {
	DealerID  *int64   `form:"dealerId"`
	IsActive  *bool    `form:"isActive"`
	MinAmount *float64 `form:"minAmount"`
	MaxAmount *float64 `form:"maxAmount"`
	FromDate  string   `form:"fromDate" validate:"omitempty,datetime=2006-01-02"`
	ToDate    string   `form:"toDate"   validate:"omitempty,datetime=2006-01-02"`
	Search    string   `form:"search"`
	SortBy    string   `form:"sortBy" validate:"omitempty,oneof=amount dateOfWithdraw loanNumber"`
	Desc      bool     `form:"desc"`
	Page      int      `form:"page,default=1"   validate:"min=1"`
	Limit     int      `form:"limit,default=10" validate:"min=1,max=100"`
}

type LoanListResponse struct {
	Items []model.Loan `json:"items"`
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}
