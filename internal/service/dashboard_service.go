package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/model"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
)

// ErrNoDealerRecord means the signed-in dealer login has no dealer record
// upstream, so the self-service dashboard has nothing to show.
var ErrNoDealerRecord = errors.New("no dealer record for this account")

// DashboardService assembles the two landing views.
type DashboardService interface {
	Admin(ctx context.Context, sess *session.Session) (*dto.AdminDashboardResponse, error)
	Dealer(ctx context.Context, sess *session.Session) (*dto.DealerDashboardResponse, error)
}

type dashboardService struct {
	dealers upstream.DealersAPI
	loans   upstream.LoansAPI
}

func NewDashboardService(dealers upstream.DealersAPI, loans upstream.LoansAPI) DashboardService {
	return &dashboardService{dealers: dealers, loans: loans}
}

// Admin fetches the dealer book and the loan book in parallel and aggregates
// both into the headline figures.
func (s *dashboardService) Admin(ctx context.Context, sess *session.Session) (*dto.AdminDashboardResponse, error) {
	var (
		dealers []model.Dealer
		loans   []model.Loan
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dealers, err = s.dealers.List(gctx, sess.Token)
		return err
	})
	g.Go(func() error {
		var err error
		loans, err = s.loans.List(gctx, sess.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	resp := &dto.AdminDashboardResponse{TotalDealers: len(dealers), TotalLoans: len(loans)}
	utilization := decimal.Zero
	for _, d := range dealers {
		if d.IsActive {
			resp.ActiveDealers++
		}
		resp.TotalSanctioned = resp.TotalSanctioned.Add(d.SanctionAmount)
		resp.TotalOutstanding = resp.TotalOutstanding.Add(d.OutstandingAmount)
		utilization = utilization.Add(d.UtilizationPercentage)
	}
	for _, l := range loans {
		if l.IsActive {
			resp.ActiveLoans++
		}
		resp.TotalFinanced = resp.TotalFinanced.Add(l.Amount)
	}
	if len(dealers) > 0 {
		resp.AverageUtilization = utilization.DivRound(decimal.NewFromInt(int64(len(dealers))), 2)
	}
	return resp, nil
}

// Dealer resolves the signed-in dealer's own record by matching the session
// user id against the dealer book, then loads that dealer's loans.
func (s *dashboardService) Dealer(ctx context.Context, sess *session.Session) (*dto.DealerDashboardResponse, error) {
	dealers, err := s.dealers.List(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("dealer dashboard: %w", err)
	}

	userID, _ := strconv.ParseInt(sess.User.ID, 10, 64)
	var own *model.Dealer
	for i := range dealers {
		if userID != 0 && dealers[i].UserID == userID {
			own = &dealers[i]
			break
		}
		// Logins without a numeric id fall back to a name match.
		if userID == 0 && dealers[i].Name == sess.User.Name {
			own = &dealers[i]
			break
		}
	}
	if own == nil {
		return nil, ErrNoDealerRecord
	}

	loans, err := s.loans.ByDealer(ctx, sess.Token, own.ID)
	if err != nil {
		return nil, fmt.Errorf("dealer dashboard: %w", err)
	}

	resp := &dto.DealerDashboardResponse{Dealer: *own, Loans: loans}
	for _, l := range loans {
		if l.IsActive {
			resp.ActiveLoans++
		}
		resp.TotalBorrowed = resp.TotalBorrowed.Add(l.Amount)
	}
	return resp, nil
}
