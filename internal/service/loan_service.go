package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/listing"
	"dealerdesk/internal/loanfilter"
	"dealerdesk/internal/model"
	"dealerdesk/internal/repository"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
)

// LoanService reads and prunes the loan book. The remote API offers no
// server-side filtering, so List fetches everything and narrows in memory.
type LoanService interface {
	List(ctx context.Context, sess *session.Session, q dto.LoanListQuery) (*dto.LoanListResponse, error)
	Get(ctx context.Context, sess *session.Session, id int64) (*model.Loan, error)
	ByDealer(ctx context.Context, sess *session.Session, dealerID int64) ([]model.Loan, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

type loanService struct {
	loans upstream.LoansAPI
	audit repository.AuditRepository
}

func NewLoanService(loans upstream.LoansAPI, audit repository.AuditRepository) LoanService {
	return &loanService{loans: loans, audit: audit}
}

func (s *loanService) List(ctx context.Context, sess *session.Session, q dto.LoanListQuery) (*dto.LoanListResponse, error) {
	loans, err := s.loans.List(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	loans = loanfilter.Apply(loans, filterFromQuery(q))
	loans = listing.Search(loans, q.Search, func(l model.Loan) []string {
		return []string{l.LoanNumber, l.DealerName, l.UTRNumber, l.Vehicle.RegistrationNumber, l.Buyer.Name}
	})

	switch q.SortBy {
	case "amount":
		listing.SortStable(loans, q.Desc, func(a, b model.Loan) bool {
			return a.Amount.LessThan(b.Amount)
		})
	case "dateOfWithdraw":
		listing.SortStable(loans, q.Desc, func(a, b model.Loan) bool {
			return withdrawOrder(a).Before(withdrawOrder(b))
		})
	case "loanNumber":
		listing.SortStable(loans, q.Desc, func(a, b model.Loan) bool {
			return a.LoanNumber < b.LoanNumber
		})
	}

	page, total := listing.Paginate(loans, listing.Page{Page: q.Page, Limit: q.Limit})
	p := listing.Page{Page: q.Page, Limit: q.Limit}.Clamp()
	return &dto.LoanListResponse{Items: page, Total: total, Page: p.Page, Limit: p.Limit}, nil
}

// filterFromQuery maps the wire query onto the filter, converting float
// amounts to decimals and date strings to day-precision bounds.
func filterFromQuery(q dto.LoanListQuery) loanfilter.Filter {
	f := loanfilter.Filter{DealerID: q.DealerID, IsActive: q.IsActive}
	if q.MinAmount != nil {
		min := decimal.NewFromFloat(*q.MinAmount)
		f.MinAmount = &min
	}
	if q.MaxAmount != nil {
		max := decimal.NewFromFloat(*q.MaxAmount)
		f.MaxAmount = &max
	}
	if q.FromDate != "" {
		if t, ok := loanfilter.ParseDate(q.FromDate); ok {
			f.FromDate = &t
		}
	}
	if q.ToDate != "" {
		if t, ok := loanfilter.ParseDate(q.ToDate); ok {
			// Push the bound to end of day so a same-day withdrawal passes.
			end := t.Add(24*time.Hour - time.Nanosecond)
			f.ToDate = &end
		}
	}
	return f
}

// withdrawOrder gives unparseable withdrawal dates the zero time so they sort
// first ascending rather than interleaving.
func withdrawOrder(l model.Loan) time.Time {
	t, _ := loanfilter.ParseDate(l.DateOfWithdraw)
	return t
}

func (s *loanService) Get(ctx context.Context, sess *session.Session, id int64) (*model.Loan, error) {
	loan, err := s.loans.Get(ctx, sess.Token, id)
	if err != nil {
		return nil, fmt.Errorf("get loan %d: %w", id, err)
	}
	return loan, nil
}

func (s *loanService) ByDealer(ctx context.Context, sess *session.Session, dealerID int64) ([]model.Loan, error) {
	loans, err := s.loans.ByDealer(ctx, sess.Token, dealerID)
	if err != nil {
		return nil, fmt.Errorf("loans for dealer %d: %w", dealerID, err)
	}
	return loans, nil
}

func (s *loanService) Delete(ctx context.Context, sess *session.Session, id int64) error {
	if err := s.loans.Delete(ctx, sess.Token, id); err != nil {
		return fmt.Errorf("delete loan %d: %w", id, err)
	}
	recordAudit(ctx, s.audit, sess, model.AuditLoanDelete, "loan", strconv.FormatInt(id, 10), "")
	return nil
}
