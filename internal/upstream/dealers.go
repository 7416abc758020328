package upstream

import (
	"context"
	"fmt"
	"net/http"

	"dealerdesk/internal/model"
)

// Partial is a sparse update payload: exactly the changed fields plus the
// record identifier, nothing else. The backend applies it as a field-wise merge.
type Partial map[string]any

// DealersAPI is the remote dealer onboarding/financial service.
type DealersAPI interface {
	Register(ctx context.Context, token string, d *model.Dealer) (*model.Dealer, error)
	List(ctx context.Context, token string) ([]model.Dealer, error)
	Get(ctx context.Context, token string, id int64) (*model.Dealer, error)
	Update(ctx context.Context, token string, id int64, fields Partial) (*model.Dealer, error)
}

// DealersClient implements DealersAPI against the remote /api/Dealers surface.
type DealersClient struct{ c *Client }

func NewDealersClient(baseURL string, breaker *Breaker) *DealersClient {
	return &DealersClient{c: NewClient("dealers", baseURL, breaker)}
}

func (d *DealersClient) Register(ctx context.Context, token string, dealer *model.Dealer) (*model.Dealer, error) {
	created := *dealer
	// Registration is the one dealer endpoint that negotiates JSON.
	err := d.c.do(ctx, call{method: http.MethodPost, path: "/api/Dealers/register", accept: acceptJSON, token: token, body: dealer, out: &created})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (d *DealersClient) List(ctx context.Context, token string) ([]model.Dealer, error) {
	var dealers []model.Dealer
	err := d.c.do(ctx, call{method: http.MethodGet, path: "/api/Dealers", token: token, out: &dealers})
	if err != nil {
		return nil, err
	}
	for i := range dealers {
		if err := validDealer(&dealers[i], "/api/Dealers"); err != nil {
			return nil, err
		}
	}
	return dealers, nil
}

func (d *DealersClient) Get(ctx context.Context, token string, id int64) (*model.Dealer, error) {
	path := fmt.Sprintf("/api/Dealers/%d", id)
	var dealer model.Dealer
	if err := d.c.do(ctx, call{method: http.MethodGet, path: path, token: token, out: &dealer}); err != nil {
		return nil, err
	}
	if err := validDealer(&dealer, path); err != nil {
		return nil, err
	}
	return &dealer, nil
}

func (d *DealersClient) Update(ctx context.Context, token string, id int64, fields Partial) (*model.Dealer, error) {
	path := fmt.Sprintf("/api/Dealers/%d", id)
	var dealer model.Dealer
	if err := d.c.do(ctx, call{method: http.MethodPut, path: path, token: token, body: fields, out: &dealer}); err != nil {
		return nil, err
	}
	if dealer.ID == 0 {
		// Empty-body revision: re-read the record so callers always get the
		// post-update state.
		return d.Get(ctx, token, id)
	}
	return &dealer, nil
}

func validDealer(dealer *model.Dealer, endpoint string) error {
	if dealer.ID == 0 || dealer.Name == "" {
		return &MalformedResponseError{Endpoint: endpoint, Reason: "dealer missing id or name"}
	}
	return nil
}
