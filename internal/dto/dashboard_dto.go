package dto

import (
	"github.com/shopspring/decimal"

	"dealerdesk/internal/model"
)

// AdminDashboardResponse aggregates the dealer book and the loan book,
// fetched in parallel and joined before rendering.
type AdminDashboardResponse struct {
	TotalDealers       int             `json:"totalDealers"`
	ActiveDealers      int             `json:"activeDealers"`
	TotalLoans         int             `json:"totalLoans"`
	ActiveLoans        int             `json:"activeLoans"`
	TotalSanctioned    decimal.Decimal `json:"totalSanctioned"`
	TotalOutstanding   decimal.Decimal `json:"totalOutstanding"`
	TotalFinanced      decimal.Decimal `json:"totalFinanced"`
	AverageUtilization decimal.Decimal `json:"averageUtilization"`
}

// DealerDashboardResponse is the dealer's self-service view: their own record
// plus their loans.
type DealerDashboardResponse struct {
	Dealer        model.Dealer    `json:"dealer"`
	Loans         []model.Loan    `json:"loans"`
	ActiveLoans   int             `json:"activeLoans"`
	TotalBorrowed decimal.Decimal `json:"totalBorrowed"`
}
