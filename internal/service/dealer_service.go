package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/infra"
	"dealerdesk/internal/listing"
	"dealerdesk/internal/model"
	"dealerdesk/internal/repository"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
)

// ErrInvalidSanctionAmount rejects edits that would zero out or invert a
// dealer's credit limit.
var ErrInvalidSanctionAmount = errors.New("sanction amount must be greater than 0")

// DealerService owns dealer onboarding, listing, edits, and statement export.
type DealerService interface {
	Onboard(ctx context.Context, sess *session.Session, req dto.OnboardDealerRequest) (*model.Dealer, error)
	List(ctx context.Context, sess *session.Session, q dto.DealerListQuery) (*dto.DealerListResponse, error)
	Get(ctx context.Context, sess *session.Session, id int64) (*model.Dealer, error)
	Update(ctx context.Context, sess *session.Session, id int64, req dto.UpdateDealerRequest) (*model.Dealer, error)
	Statement(ctx context.Context, sess *session.Session, id int64) (string, error)
}

type dealerService struct {
	dealers upstream.DealersAPI
	loans   upstream.LoansAPI
	audit   repository.AuditRepository
	pdfPath string
}

func NewDealerService(dealers upstream.DealersAPI, loans upstream.LoansAPI, audit repository.AuditRepository, pdfPath string) DealerService {
	return &dealerService{dealers: dealers, loans: loans, audit: audit, pdfPath: pdfPath}
}

// Onboard registers a new dealer upstream. dealerCode and loanProposalNo are
// generated here; the client never supplies them.
func (s *dealerService) Onboard(ctx context.Context, sess *session.Session, req dto.OnboardDealerRequest) (*model.Dealer, error) {
	now := time.Now()
	onboarding := req.DateOfOnboarding
	if onboarding == "" {
		onboarding = now.Format("2006-01-02")
	}

	dealer := &model.Dealer{
		DealerCode:          GenerateDealerCode(),
		LoanProposalNo:      GenerateLoanProposalNo(now),
		Name:                req.Name,
		DateOfOnboarding:    onboarding,
		PAN:                 req.PAN,
		EntityType:          req.EntityType,
		Location:            req.Location,
		RelationshipManager: req.RelationshipManager,
		Status:              "active",
		ROI:                 req.ROI,
		DelayROI:            req.DelayROI,
		SanctionAmount:      req.SanctionAmount,
		AvailableLimit:      req.SanctionAmount,
		IsActive:            true,
		UserID:              req.UserID,
	}

	created, err := s.dealers.Register(ctx, sess.Token, dealer)
	if err != nil {
		return nil, fmt.Errorf("onboard dealer: %w", err)
	}

	recordAudit(ctx, s.audit, sess, model.AuditDealerOnboard, "dealer",
		strconv.FormatInt(created.ID, 10), "onboarded "+created.Name)
	return created, nil
}

// List fetches the full dealer book and narrows it in memory: search across
// name, code, PAN, and location, then an optional status match, then paging.
func (s *dealerService) List(ctx context.Context, sess *session.Session, q dto.DealerListQuery) (*dto.DealerListResponse, error) {
	dealers, err := s.dealers.List(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list dealers: %w", err)
	}

	dealers = listing.Search(dealers, q.Search, func(d model.Dealer) []string {
		return []string{d.Name, d.DealerCode, d.PAN, d.Location, d.RelationshipManager}
	})
	if q.Status != "" {
		kept := dealers[:0:0]
		for _, d := range dealers {
			if listing.MatchFold(q.Status, d.Status) {
				kept = append(kept, d)
			}
		}
		dealers = kept
	}

	switch q.SortBy {
	case "name":
		listing.SortStable(dealers, q.Desc, func(a, b model.Dealer) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		})
	case "sanctionAmount":
		listing.SortStable(dealers, q.Desc, func(a, b model.Dealer) bool {
			return a.SanctionAmount.LessThan(b.SanctionAmount)
		})
	case "dateOfOnboarding":
		// ISO dates order lexically.
		listing.SortStable(dealers, q.Desc, func(a, b model.Dealer) bool {
			return a.DateOfOnboarding < b.DateOfOnboarding
		})
	}

	page, total := listing.Paginate(dealers, listing.Page{Page: q.Page, Limit: q.Limit})
	p := listing.Page{Page: q.Page, Limit: q.Limit}.Clamp()
	return &dto.DealerListResponse{Items: page, Total: total, Page: p.Page, Limit: p.Limit}, nil
}

func (s *dealerService) Get(ctx context.Context, sess *session.Session, id int64) (*model.Dealer, error) {
	dealer, err := s.dealers.Get(ctx, sess.Token, id)
	if err != nil {
		return nil, fmt.Errorf("get dealer %d: %w", id, err)
	}
	return dealer, nil
}

// Update sends a sparse payload: exactly the fields the caller set, plus the
// identifier. Unset fields never reach the wire, so concurrent edits to
// other fields are not clobbered.
func (s *dealerService) Update(ctx context.Context, sess *session.Session, id int64, req dto.UpdateDealerRequest) (*model.Dealer, error) {
	if req.SanctionAmount != nil && !req.SanctionAmount.IsPositive() {
		return nil, ErrInvalidSanctionAmount
	}

	fields := upstream.Partial{"id": id}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.PAN != nil {
		fields["pan"] = *req.PAN
	}
	if req.EntityType != nil {
		fields["entityType"] = *req.EntityType
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.RelationshipManager != nil {
		fields["relationshipManager"] = *req.RelationshipManager
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.SanctionAmount != nil {
		fields["sanctionAmount"] = *req.SanctionAmount
	}
	if req.OutstandingAmount != nil {
		fields["outstandingAmount"] = *req.OutstandingAmount
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}

	updated, err := s.dealers.Update(ctx, sess.Token, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update dealer %d: %w", id, err)
	}

	recordAudit(ctx, s.audit, sess, model.AuditDealerUpdate, "dealer",
		strconv.FormatInt(id, 10), fmt.Sprintf("updated %d fields", len(fields)-1))
	return updated, nil
}

// Statement renders the dealer's statement PDF and returns its path.
func (s *dealerService) Statement(ctx context.Context, sess *session.Session, id int64) (string, error) {
	dealer, err := s.dealers.Get(ctx, sess.Token, id)
	if err != nil {
		return "", fmt.Errorf("statement: %w", err)
	}
	loans, err := s.loans.ByDealer(ctx, sess.Token, id)
	if err != nil {
		return "", fmt.Errorf("statement: %w", err)
	}
	path, err := infra.GenerateDealerStatement(dealer, loans, s.pdfPath)
	if err != nil {
		return "", fmt.Errorf("statement: %w", err)
	}
	return path, nil
}
