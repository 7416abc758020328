package loanfilter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerdesk/internal/model"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := dec(v)
	return &d
}

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed, ok := ParseDate(s)
	require.True(t, ok)
	return &parsed
}

func sampleLoans() []model.Loan {
	return []model.Loan{
		{ID: 1, LoanNumber: "LN-001", DealerID: 10, Amount: dec(50000), IsActive: true, DateOfWithdraw: "2024-01-15"},
		{ID: 2, LoanNumber: "LN-002", DealerID: 20, Amount: dec(120000), IsActive: false, DateOfWithdraw: "2024-03-01"},
		{ID: 3, LoanNumber: "LN-003", DealerID: 10, Amount: dec(75000), IsActive: true, DateOfWithdraw: "2024-02-10T00:00:00"},
		{ID: 4, LoanNumber: "LN-004", DealerID: 30, Amount: dec(200000), IsActive: true, DateOfWithdraw: "2024-04-20"},
	}
}

func TestApplyEmptyFilterIsIdentity(t *testing.T) {
	loans := sampleLoans()
	got := Apply(loans, Filter{})
	require.Len(t, got, len(loans))
	for i := range loans {
		assert.Equal(t, loans[i].ID, got[i].ID, "order must be preserved")
	}
}

func TestApplyAmountWindow(t *testing.T) {
	got := Apply(sampleLoans(), Filter{MinAmount: decPtr(50000), MaxAmount: decPtr(120000)})
	require.Len(t, got, 3)
	for _, loan := range got {
		assert.True(t, loan.Amount.GreaterThanOrEqual(dec(50000)))
		assert.True(t, loan.Amount.LessThanOrEqual(dec(120000)))
	}
}

func TestApplyInvertedAmountWindowIsEmpty(t *testing.T) {
	got := Apply(sampleLoans(), Filter{MinAmount: decPtr(120000), MaxAmount: decPtr(50000)})
	assert.Empty(t, got)
}

func TestApplyDealerID(t *testing.T) {
	loans := sampleLoans()
	got := Apply(loans, Filter{DealerID: int64Ptr(10)})

	require.Len(t, got, 2)
	included := make(map[int64]bool)
	for _, loan := range got {
		assert.Equal(t, int64(10), loan.DealerID)
		included[loan.ID] = true
	}
	// Converse: everything excluded belongs to another dealer.
	for _, loan := range loans {
		if !included[loan.ID] {
			assert.NotEqual(t, int64(10), loan.DealerID)
		}
	}
}

func TestApplyActiveFlag(t *testing.T) {
	got := Apply(sampleLoans(), Filter{IsActive: boolPtr(false)})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestApplyDateBoundsInclusive(t *testing.T) {
	got := Apply(sampleLoans(), Filter{
		FromDate: datePtr(t, "2024-01-15"),
		ToDate:   datePtr(t, "2024-03-01"),
	})
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID, "loan on the from bound is retained")
	assert.Equal(t, int64(2), got[1].ID, "loan on the to bound is retained")
	assert.Equal(t, int64(3), got[2].ID)
}

func TestApplyUnparseableDateIsRetained(t *testing.T) {
	loans := []model.Loan{{ID: 1, Amount: dec(1000), DateOfWithdraw: "not-a-date"}}
	got := Apply(loans, Filter{FromDate: datePtr(t, "2024-01-01")})
	assert.Len(t, got, 1)
}

func TestApplyConjunction(t *testing.T) {
	got := Apply(sampleLoans(), Filter{
		DealerID:  int64Ptr(10),
		IsActive:  boolPtr(true),
		MinAmount: decPtr(60000),
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{"2024-01-15", "2024-01-15T10:30:00", "2024-01-15T10:30:00Z"} {
		_, ok := ParseDate(s)
		assert.True(t, ok, s)
	}
	_, ok := ParseDate("15/01/2024")
	assert.False(t, ok)
}
