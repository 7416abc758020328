package upstream

import (
	"context"
	"fmt"
	"net/http"

	"dealerdesk/internal/model"
)

// LoansAPI is the remote loan book. The console reads and deletes; create and
// update exist on the wire but no console screen drives them yet.
type LoansAPI interface {
	List(ctx context.Context, token string) ([]model.Loan, error)
	ByDealer(ctx context.Context, token string, dealerID int64) ([]model.Loan, error)
	Get(ctx context.Context, token string, id int64) (*model.Loan, error)
	Create(ctx context.Context, token string, loan *model.Loan) (*model.Loan, error)
	Update(ctx context.Context, token string, id int64, fields Partial) (*model.Loan, error)
	Delete(ctx context.Context, token string, id int64) error
}

// LoansClient implements LoansAPI against the remote /api/Loans surface.
type LoansClient struct{ c *Client }

func NewLoansClient(baseURL string, breaker *Breaker) *LoansClient {
	return &LoansClient{c: NewClient("loans", baseURL, breaker)}
}

func (l *LoansClient) List(ctx context.Context, token string) ([]model.Loan, error) {
	var loans []model.Loan
	err := l.c.do(ctx, call{method: http.MethodGet, path: "/api/Loans", token: token, out: &loans})
	if err != nil {
		return nil, err
	}
	for i := range loans {
		if err := validLoan(&loans[i], "/api/Loans"); err != nil {
			return nil, err
		}
	}
	return loans, nil
}

func (l *LoansClient) ByDealer(ctx context.Context, token string, dealerID int64) ([]model.Loan, error) {
	path := fmt.Sprintf("/api/Loans/dealer/%d", dealerID)
	var loans []model.Loan
	if err := l.c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &loans}); err != nil {
		return nil, err
	}
	for i := range loans {
		if err := validLoan(&loans[i], path); err != nil {
			return nil, err
		}
	}
	return loans, nil
}

func (l *LoansClient) Get(ctx context.Context, token string, id int64) (*model.Loan, error) {
	path := fmt.Sprintf("/api/Loans/%d", id)
	var loan model.Loan
	if err := l.c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &loan}); err != nil {
		return nil, err
	}
	if err := validLoan(&loan, path); err != nil {
		return nil, err
	}
	return &loan, nil
}

func (l *LoansClient) Create(ctx context.Context, token string, loan *model.Loan) (*model.Loan, error) {
	created := *loan
	err := l.c.do(ctx, call{method: http.MethodPost, path: "/api/Loans", token: token, body: loan, out: &created})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (l *LoansClient) Update(ctx context.Context, token string, id int64, fields Partial) (*model.Loan, error) {
	path := fmt.Sprintf("/api/Loans/%d", id)
	var loan model.Loan
	if err := l.c.do(ctx, call{method: http.MethodPut, path: path, token: token, body: fields, out: &loan}); err != nil {
		return nil, err
	}
	if loan.ID == 0 {
		return l.Get(ctx, token, id)
	}
	return &loan, nil
}

func (l *LoansClient) Delete(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/Loans/%d", id)
	return l.c.do(ctx, call{method: http.MethodDelete, path: path, token: token})
}

func validLoan(loan *model.Loan, endpoint string) error {
	if loan.ID == 0 || loan.DealerID == 0 {
		return &MalformedResponseError{Endpoint: endpoint, Reason: "loan missing id or dealerId"}
	}
	return nil
}
