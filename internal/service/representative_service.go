package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"dealerdesk/internal/dto"
	"dealerdesk/internal/listing"
	"dealerdesk/internal/model"
	"dealerdesk/internal/repository"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
	"dealerdesk/internal/worker"
)

// RepresentativeService manages internal staff accounts through the upstream
// auth surface.
type RepresentativeService interface {
	List(ctx context.Context, sess *session.Session, q dto.RepresentativeListQuery) (*dto.RepresentativeListResponse, error)
	Get(ctx context.Context, sess *session.Session, id int64) (*model.Representative, error)
	Create(ctx context.Context, sess *session.Session, req dto.CreateRepresentativeRequest) (*model.Representative, error)
	Update(ctx context.Context, sess *session.Session, id int64, req dto.UpdateRepresentativeRequest) (*model.Representative, error)
	Delete(ctx context.Context, sess *session.Session, id int64) error
}

type representativeService struct {
	auth       upstream.AuthAPI
	audit      repository.AuditRepository
	jobs       *worker.Dispatcher
	consoleURL string
}

func NewRepresentativeService(auth upstream.AuthAPI, audit repository.AuditRepository, jobs *worker.Dispatcher, consoleURL string) RepresentativeService {
	return &representativeService{auth: auth, audit: audit, jobs: jobs, consoleURL: consoleURL}
}

// List fetches all representatives and narrows in memory. The headline
// counts cover the whole collection, not just the returned page.
func (s *representativeService) List(ctx context.Context, sess *session.Session, q dto.RepresentativeListQuery) (*dto.RepresentativeListResponse, error) {
	reps, err := s.auth.Representatives(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("list representatives: %w", err)
	}

	active := 0
	for _, r := range reps {
		if r.IsActive {
			active++
		}
	}
	inactive := len(reps) - active

	reps = listing.Search(reps, q.Search, func(r model.Representative) []string {
		return []string{r.Username, r.Email, r.PhoneNumber}
	})

	page, total := listing.Paginate(reps, listing.Page{Page: q.Page, Limit: q.Limit})
	p := listing.Page{Page: q.Page, Limit: q.Limit}.Clamp()
	return &dto.RepresentativeListResponse{
		Items: page, Total: total, Page: p.Page, Limit: p.Limit,
		Active: active, Inactive: inactive,
	}, nil
}

func (s *representativeService) Get(ctx context.Context, sess *session.Session, id int64) (*model.Representative, error) {
	rep, err := s.auth.Representative(ctx, sess.Token, id)
	if err != nil {
		return nil, fmt.Errorf("get representative %d: %w", id, err)
	}
	return rep, nil
}

// Create adds a staff account upstream and enqueues a welcome email. The
// email is best-effort: an enqueue failure is logged but the account stands.
func (s *representativeService) Create(ctx context.Context, sess *session.Session, req dto.CreateRepresentativeRequest) (*model.Representative, error) {
	rep, err := s.auth.AddRepresentative(ctx, sess.Token, upstream.AddRepresentativeRequest{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create representative: %w", err)
	}

	if s.jobs != nil {
		payload := worker.WelcomeEmailPayload{ToEmail: rep.Email, Username: rep.Username, ConsoleURL: s.consoleURL}
		if err := s.jobs.EnqueueEmail(ctx, payload); err != nil {
			log.Error().Err(err).Str("email", rep.Email).Msg("failed to enqueue welcome email")
		}
	}

	recordAudit(ctx, s.audit, sess, model.AuditRepresentativeCreate, "representative",
		strconv.FormatInt(rep.ID, 10), "created "+rep.Username)
	return rep, nil
}

func (s *representativeService) Update(ctx context.Context, sess *session.Session, id int64, req dto.UpdateRepresentativeRequest) (*model.Representative, error) {
	rep, err := s.auth.UpdateRepresentative(ctx, sess.Token, id, upstream.RepresentativeUpdate{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("update representative %d: %w", id, err)
	}

	recordAudit(ctx, s.audit, sess, model.AuditRepresentativeUpdate, "representative",
		strconv.FormatInt(id, 10), "")
	return rep, nil
}

func (s *representativeService) Delete(ctx context.Context, sess *session.Session, id int64) error {
	if err := s.auth.DeleteRepresentative(ctx, sess.Token, id); err != nil {
		return fmt.Errorf("delete representative %d: %w", id, err)
	}
	recordAudit(ctx, s.audit, sess, model.AuditRepresentativeDelete, "representative",
		strconv.FormatInt(id, 10), "")
	return nil
}
