package model

import "github.com/shopspring/decimal"

// VehicleInfo describes the financed vehicle attached to a loan.
type VehicleInfo struct {
	ID                 int64           `json:"id"`
	Make               string          `json:"make"`
	Model              string          `json:"model"`
	RegistrationNumber string          `json:"registrationNumber"`
	Year               int             `json:"year"`
	ChassisNumber      string          `json:"chassisNumber"`
	EngineNumber       string          `json:"engineNumber"`
	Value              decimal.Decimal `json:"value"`
}

// BuyerInfo identifies the end buyer of the financed vehicle.
type BuyerInfo struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	PhoneNumber          string `json:"phoneNumber"`
	Email                string `json:"email"`
	Address              string `json:"address"`
	IdentificationType   string `json:"identificationType"`
	IdentificationNumber string `json:"identificationNumber"`
	BuyerSource          string `json:"buyerSource"`
}

// Loan is a financing instrument issued against a dealer. Dates stay as the
// upstream string representation; loanfilter parses DateOfWithdraw on demand.
// The dealer association is by identifier only — no referential integrity is
// enforced on this side of the API boundary.
type Loan struct {
	ID             int64           `json:"id"`
	LoanNumber     string          `json:"loanNumber"`
	DateOfWithdraw string          `json:"dateOfWithdraw"`
	Amount         decimal.Decimal `json:"amount"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	DealerID       int64           `json:"dealerId"`
	DealerName     string          `json:"dealerName"`
	UTRNumber      string          `json:"utrNumber"`
	ProcessingFee  decimal.Decimal `json:"processingFee"`
	DueDate        string          `json:"dueDate"`
	IsActive       bool            `json:"isActive"`
	CreatedDate    string          `json:"createdDate"`
	Vehicle        VehicleInfo     `json:"vehicleInfo"`
	Buyer          BuyerInfo       `json:"buyerInfo"`
	Attachments    []string        `json:"attachments"`
}
