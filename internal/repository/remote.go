package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-retail-crm/internal/commit"
	"go-retail-crm/internal/model"

	"github.com/rs/zerolog"
)

// RemoteStore talks to the remote persistence service: read-all and
// upsert-by-id for products and customers, append and list-newest-first for
// orders. Data calls carry no explicit timeout and rely on the transport's
// defaults; only the liveness probe is bounded.
type RemoteStore struct {
	baseURL      string
	client       *http.Client
	probeTimeout time.Duration
	log          zerolog.Logger
}

func NewRemoteStore(baseURL string, probeTimeout time.Duration, log zerolog.Logger) *RemoteStore {
	return &RemoteStore{
		baseURL:      baseURL,
		client:       &http.Client{},
		probeTimeout: probeTimeout,
		log:          log.With().Str("component", "remote_store").Logger(),
	}
}

func (s *RemoteStore) Products(ctx context.Context) ([]model.Product, error) {
	return getJSON[[]model.Product](ctx, s, "/products")
}

func (s *RemoteStore) SaveProduct(ctx context.Context, p model.Product) (model.Product, error) {
	return postJSON[model.Product](ctx, s, "/products", p)
}

func (s *RemoteStore) DeleteProduct(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, s.baseURL+"/products/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer drain(resp)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("remote DELETE /products/%s: HTTP %d", id, resp.StatusCode)
	}
	return nil
}

func (s *RemoteStore) Customers(ctx context.Context) ([]model.Customer, error) {
	return getJSON[[]model.Customer](ctx, s, "/customers")
}

func (s *RemoteStore) SaveCustomer(ctx context.Context, c model.Customer) (model.Customer, error) {
	return postJSON[model.Customer](ctx, s, "/customers", c)
}

// Orders relies on the service listing newest first.
func (s *RemoteStore) Orders(ctx context.Context) ([]model.Order, error) {
	return getJSON[[]model.Order](ctx, s, "/orders")
}

// CommitOrder runs the shared commit transaction with the remote service as
// storage: read the current products and customers, apply the transaction,
// append the order, then upsert what changed.
//
// An error before the order append fails the whole commit, which lets the
// caller fall back to the local path safely (nothing was written). Once the
// append has gone through, upsert failures are logged and swallowed: the
// commit ran to completion with degraded side effects, matching the accepted
// no-atomicity envelope, and re-running it locally would apply the effects
// twice.
func (s *RemoteStore) CommitOrder(ctx context.Context, o model.Order) (model.Order, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return model.Order{}, err
	}
	customers, err := s.Customers(ctx)
	if err != nil {
		return model.Order{}, err
	}

	res := commit.Apply(model.Snapshot{Products: products, Customers: customers}, o)

	if _, err := postJSON[model.Order](ctx, s, "/orders", res.Order); err != nil {
		return model.Order{}, err
	}

	for _, p := range res.ChangedProducts {
		if _, err := s.SaveProduct(ctx, p); err != nil {
			s.log.Warn().Err(err).Str("product_id", p.ID).Msg("stock deduction not persisted remotely")
		}
	}
	if res.ChangedCustomer != nil {
		if _, err := s.SaveCustomer(ctx, *res.ChangedCustomer); err != nil {
			s.log.Warn().Err(err).Str("customer_id", res.ChangedCustomer.ID).Msg("loyalty credit not persisted remotely")
		}
	}
	return res.Order, nil
}

// Ping is the short-timeout liveness probe: advisory only, never a gate on
// whether individual operations attempt the remote path.
func (s *RemoteStore) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.baseURL+"/products", nil)
	if err != nil {
		return false
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	drain(resp)
	return resp.StatusCode < 500
}

func getJSON[T any](ctx context.Context, s *RemoteStore, path string) (T, error) {
	var out T
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return out, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return out, err
	}
	defer drain(resp)
	if resp.StatusCode >= 300 {
		return out, fmt.Errorf("remote GET %s: HTTP %d", path, resp.StatusCode)
	}
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

func postJSON[T any](ctx context.Context, s *RemoteStore, path string, body interface{}) (T, error) {
	var out T
	raw, err := json.Marshal(body)
	if err != nil {
		return out, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return out, err
	}
	defer drain(resp)
	if resp.StatusCode >= 300 {
		return out, fmt.Errorf("remote POST %s: HTTP %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err != io.EOF {
		return out, err
	}
	return out, nil
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
