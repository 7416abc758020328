// Package loanfilter narrows an in-memory loan collection by a conjunction of
// optional criteria. The remote API offers no server-side filtering on the
// loans collection, so listings fetch everything and filter here.
package loanfilter

import (
	"time"

	"github.com/shopspring/decimal"

	"dealerdesk/internal/model"
)

// Filter holds optional criteria. A nil field imposes no constraint, so the
// zero Filter is the identity: every loan passes.
type Filter struct {
	DealerID  *int64
	IsActive  *bool
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	FromDate  *time.Time
	ToDate    *time.Time
}

// Apply returns the loans satisfying every set criterion, in input order.
// Single pass; the input slice is never mutated. Both date bounds are
// inclusive and compare against the loan's withdrawal date.
func Apply(loans []model.Loan, f Filter) []model.Loan {
	out := make([]model.Loan, 0, len(loans))
	for _, loan := range loans {
		if matches(loan, f) {
			out = append(out, loan)
		}
	}
	return out
}

func matches(loan model.Loan, f Filter) bool {
	if f.DealerID != nil && loan.DealerID != *f.DealerID {
		return false
	}
	if f.IsActive != nil && loan.IsActive != *f.IsActive {
		return false
	}
	if f.MinAmount != nil && loan.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && loan.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if f.FromDate != nil || f.ToDate != nil {
		withdrawn, ok := ParseDate(loan.DateOfWithdraw)
		// An unparseable withdrawal date never excludes the loan; date
		// criteria only apply where a comparable date exists.
		if ok {
			if f.FromDate != nil && withdrawn.Before(*f.FromDate) {
				return false
			}
			if f.ToDate != nil && withdrawn.After(*f.ToDate) {
				return false
			}
		}
	}
	return true
}

// dateLayouts covers the representations the upstream API has been observed
// emitting for loan dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an upstream date string, trying each known layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
