package model

import "github.com/shopspring/decimal"

// Dealer is the onboarding and financial record tracked by the remote API.
// JSON field names follow the upstream contract exactly, including the
// historical "pfAcrued" spelling — renaming it would break the wire format.
type Dealer struct {
	ID                    int64           `json:"id"`
	DealerCode            string          `json:"dealerCode"`
	LoanProposalNo        string          `json:"loanProposalNo"`
	Name                  string          `json:"name"`
	DateOfOnboarding      string          `json:"dateOfOnboarding"`
	PAN                   string          `json:"pan"`
	EntityType            string          `json:"entityType"`
	Location              string          `json:"location"`
	RelationshipManager   string          `json:"relationshipManager"`
	Status                string          `json:"status"`
	ROI                   decimal.Decimal `json:"roi"`
	DelayROI              decimal.Decimal `json:"delayROI"`
	SanctionAmount        decimal.Decimal `json:"sanctionAmount"`
	AvailableLimit        decimal.Decimal `json:"availableLimit"`
	OutstandingAmount     decimal.Decimal `json:"outstandingAmount"`
	OverdueCount          int             `json:"overdueCount"`
	DocumentStatus        int             `json:"documentStatus"`
	StockAuditStatus      int             `json:"stockAuditStatus"`
	PrincipalOutstanding  decimal.Decimal `json:"principalOutstanding"`
	PFReceived            decimal.Decimal `json:"pfReceived"`
	InterestReceived      decimal.Decimal `json:"interestReceived"`
	DelayInterestReceived decimal.Decimal `json:"delayInterestReceived"`
	AmountReceived        decimal.Decimal `json:"amountReceived"`
	PFAccrued             decimal.Decimal `json:"pfAcrued"`
	InterestAccrued       decimal.Decimal `json:"interestAccrued"`
	DelayInterestAccrued  decimal.Decimal `json:"delayInterestAccrued"`
	IsActive              bool            `json:"isActive"`
	RegisteredDate        string          `json:"registeredDate"`
	WaiverAmount          decimal.Decimal `json:"waiverAmount"`
	UtilizationPercentage decimal.Decimal `json:"utilizationPercentage"`
	UserID                int64           `json:"userId"`
}
