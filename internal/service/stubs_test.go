package service

import (
	"context"
	"time"

	"dealerdesk/internal/model"
	"dealerdesk/internal/session"
	"dealerdesk/internal/upstream"
)

// In-memory doubles for the remote API surfaces. Each stub records the last
// payload it received so tests can assert on what actually went upstream.

type stubAuthAPI struct {
	loginResult *upstream.LoginResult
	loginErr    error
	registerErr error

	reps      []model.Representative
	created   *upstream.AddRepresentativeRequest
	updated   *upstream.RepresentativeUpdate
	deletedID int64
}

func (s *stubAuthAPI) Login(ctx context.Context, req upstream.LoginRequest) (*upstream.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthAPI) Register(ctx context.Context, req upstream.RegisterRequest) (*upstream.AuthUser, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &upstream.AuthUser{ID: 7, Username: req.Username, Email: req.Email, UserType: req.UserType, IsActive: true}, nil
}

func (s *stubAuthAPI) AddRepresentative(ctx context.Context, token string, req upstream.AddRepresentativeRequest) (*model.Representative, error) {
	s.created = &req
	return &model.Representative{ID: 51, Username: req.Username, Email: req.Email, PhoneNumber: req.PhoneNumber, IsActive: true}, nil
}

func (s *stubAuthAPI) Representatives(ctx context.Context, token string) ([]model.Representative, error) {
	return s.reps, nil
}

func (s *stubAuthAPI) Representative(ctx context.Context, token string, id int64) (*model.Representative, error) {
	for i := range s.reps {
		if s.reps[i].ID == id {
			return &s.reps[i], nil
		}
	}
	return nil, &upstream.StatusError{StatusCode: 404, Endpoint: "/api/Auth/representatives"}
}

func (s *stubAuthAPI) UpdateRepresentative(ctx context.Context, token string, id int64, req upstream.RepresentativeUpdate) (*model.Representative, error) {
	s.updated = &req
	return &model.Representative{ID: id, Email: req.Email, PhoneNumber: req.PhoneNumber, IsActive: req.IsActive, Username: "kept"}, nil
}

func (s *stubAuthAPI) DeleteRepresentative(ctx context.Context, token string, id int64) error {
	s.deletedID = id
	return nil
}

type stubDealersAPI struct {
	dealers    []model.Dealer
	registered *model.Dealer
	updatedID  int64
	updated    upstream.Partial
}

func (s *stubDealersAPI) Register(ctx context.Context, token string, d *model.Dealer) (*model.Dealer, error) {
	created := *d
	created.ID = 9
	s.registered = &created
	return &created, nil
}

func (s *stubDealersAPI) List(ctx context.Context, token string) ([]model.Dealer, error) {
	return s.dealers, nil
}

func (s *stubDealersAPI) Get(ctx context.Context, token string, id int64) (*model.Dealer, error) {
	for i := range s.dealers {
		if s.dealers[i].ID == id {
			return &s.dealers[i], nil
		}
	}
	return nil, &upstream.StatusError{StatusCode: 404, Endpoint: "/api/Dealers"}
}

func (s *stubDealersAPI) Update(ctx context.Context, token string, id int64, fields upstream.Partial) (*model.Dealer, error) {
	s.updatedID = id
	s.updated = fields
	return &model.Dealer{ID: id, Name: "updated"}, nil
}

type stubLoansAPI struct {
	loans     []model.Loan
	deletedID int64
}

func (s *stubLoansAPI) List(ctx context.Context, token string) ([]model.Loan, error) {
	return s.loans, nil
}

func (s *stubLoansAPI) ByDealer(ctx context.Context, token string, dealerID int64) ([]model.Loan, error) {
	out := []model.Loan{}
	for _, l := range s.loans {
		if l.DealerID == dealerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLoansAPI) Get(ctx context.Context, token string, id int64) (*model.Loan, error) {
	for i := range s.loans {
		if s.loans[i].ID == id {
			return &s.loans[i], nil
		}
	}
	return nil, &upstream.StatusError{StatusCode: 404, Endpoint: "/api/Loans"}
}

func (s *stubLoansAPI) Create(ctx context.Context, token string, loan *model.Loan) (*model.Loan, error) {
	return loan, nil
}

func (s *stubLoansAPI) Update(ctx context.Context, token string, id int64, fields upstream.Partial) (*model.Loan, error) {
	return &model.Loan{ID: id, DealerID: 1}, nil
}

func (s *stubLoansAPI) Delete(ctx context.Context, token string, id int64) error {
	s.deletedID = id
	return nil
}

type stubAudit struct {
	events []model.AuditEvent
}

func (s *stubAudit) Record(ctx context.Context, ev *model.AuditEvent) error {
	s.events = append(s.events, *ev)
	return nil
}

func (s *stubAudit) ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	return s.events, nil
}

func adminSession() *session.Session {
	return session.New(model.User{ID: "1", Name: "admin", Role: model.RoleAdmin}, "tok", time.Hour)
}
