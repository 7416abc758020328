package service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/model"
)

func dealerBook() []model.Dealer {
	return []model.Dealer{
		{ID: 1, Name: "Sunrise Motors", DealerCode: "DLR000001", PAN: "ABCDE1234F", Location: "Pune", Status: "active", IsActive: true, SanctionAmount: decimal.NewFromInt(5000000)},
		{ID: 2, Name: "Moonlight Autos", DealerCode: "DLR000002", PAN: "FGHIJ5678K", Location: "Nashik", Status: "suspended", IsActive: false, SanctionAmount: decimal.NewFromInt(2000000)},
		{ID: 3, Name: "Sunbeam Vehicles", DealerCode: "DLR000003", PAN: "KLMNO9012P", Location: "Mumbai", Status: "active", IsActive: true, SanctionAmount: decimal.NewFromInt(3000000)},
	}
}

func TestOnboardGeneratesIdentifiers(t *testing.T) {
	dealers := &stubDealersAPI{}
	svc := NewDealerService(dealers, &stubLoansAPI{}, &stubAudit{}, t.TempDir())

	created, err := svc.Onboard(t.Context(), adminSession(), dto.OnboardDealerRequest{
		Name: "Sunrise Motors", PAN: "ABCDE1234F", EntityType: "proprietorship",
		Location: "Pune", RelationshipManager: "R. Iyer",
		SanctionAmount: decimal.NewFromInt(5000000),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.DealerCode, "DLR"))
	assert.Len(t, created.DealerCode, 9)
	assert.True(t, strings.HasPrefix(created.LoanProposalNo, "LPN"))
	assert.Len(t, created.LoanProposalNo, 15)
	assert.True(t, created.IsActive)
	// Available limit starts at the sanctioned amount.
	assert.True(t, created.AvailableLimit.Equal(created.SanctionAmount))
	assert.NotEmpty(t, created.DateOfOnboarding)
}

func TestListSearchAndStatus(t *testing.T) {
	svc := NewDealerService(&stubDealersAPI{dealers: dealerBook()}, &stubLoansAPI{}, &stubAudit{}, t.TempDir())

	resp, err := svc.List(t.Context(), adminSession(), dto.DealerListQuery{Search: "sun", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Sunrise Motors", resp.Items[0].Name)
	assert.Equal(t, "Sunbeam Vehicles", resp.Items[1].Name)

	resp, err = svc.List(t.Context(), adminSession(), dto.DealerListQuery{Search: "sun", Status: "suspended", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	resp, err = svc.List(t.Context(), adminSession(), dto.DealerListQuery{Status: "suspended", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Moonlight Autos", resp.Items[0].Name)
}

func TestListSortByName(t *testing.T) {
	svc := NewDealerService(&stubDealersAPI{dealers: dealerBook()}, &stubLoansAPI{}, &stubAudit{}, t.TempDir())

	resp, err := svc.List(t.Context(), adminSession(), dto.DealerListQuery{SortBy: "name", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Items, 3)
	assert.Equal(t, "Moonlight Autos", resp.Items[0].Name)
	assert.Equal(t, "Sunbeam Vehicles", resp.Items[1].Name)
	assert.Equal(t, "Sunrise Motors", resp.Items[2].Name)
}

func TestUpdateRejectsNonPositiveSanction(t *testing.T) {
	dealers := &stubDealersAPI{dealers: dealerBook()}
	svc := NewDealerService(dealers, &stubLoansAPI{}, &stubAudit{}, t.TempDir())

	zero := decimal.Zero
	_, err := svc.Update(t.Context(), adminSession(), 1, dto.UpdateDealerRequest{SanctionAmount: &zero})
	assert.ErrorIs(t, err, ErrInvalidSanctionAmount)
	// Nothing went upstream.
	assert.Nil(t, dealers.updated)

	negative := decimal.NewFromInt(-100)
	_, err = svc.Update(t.Context(), adminSession(), 1, dto.UpdateDealerRequest{SanctionAmount: &negative})
	assert.ErrorIs(t, err, ErrInvalidSanctionAmount)
}

func TestUpdateSendsOnlyChangedFields(t *testing.T) {
	dealers := &stubDealersAPI{dealers: dealerBook()}
	audit := &stubAudit{}
	svc := NewDealerService(dealers, &stubLoansAPI{}, audit, t.TempDir())

	amount := decimal.NewFromInt(50000)
	_, err := svc.Update(t.Context(), adminSession(), 1, dto.UpdateDealerRequest{SanctionAmount: &amount})
	require.NoError(t, err)

	require.NotNil(t, dealers.updated)
	assert.Len(t, dealers.updated, 2)
	assert.Equal(t, int64(1), dealers.updated["id"])
	assert.Equal(t, amount, dealers.updated["sanctionAmount"])

	require.Len(t, audit.events, 1)
	assert.Equal(t, model.AuditDealerUpdate, audit.events[0].Action)
	assert.Equal(t, "admin", audit.events[0].Actor)
}

func TestStatementWritesPDF(t *testing.T) {
	loans := &stubLoansAPI{loans: []model.Loan{
		{ID: 10, DealerID: 1, LoanNumber: "LN-0010", Amount: decimal.NewFromInt(750000), IsActive: true, DateOfWithdraw: "2026-02-10"},
	}}
	svc := NewDealerService(&stubDealersAPI{dealers: dealerBook()}, loans, &stubAudit{}, t.TempDir())

	path, err := svc.Statement(t.Context(), adminSession(), 1)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "statement_DLR000001.pdf"))
	assert.FileExists(t, path)
}
