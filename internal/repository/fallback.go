package repository

import (
	"context"
	"sync/atomic"

	"go-retail-crm/internal/model"
	"go-retail-crm/pkg/metrics"

	"github.com/rs/zerolog"
)

// FallbackStore is the transport selector. Every operation first attempts the
// remote persistence service; on any failure it runs the equivalent local
// operation and returns its result. Degradations are logged and counted, never
// surfaced to the caller as errors.
type FallbackStore struct {
	remote  *RemoteStore
	local   *LocalStore
	log     zerolog.Logger
	offline atomic.Bool
}

func NewFallbackStore(remote *RemoteStore, local *LocalStore, log zerolog.Logger) *FallbackStore {
	return &FallbackStore{
		remote: remote,
		local:  local,
		log:    log.With().Str("component", "fallback_store").Logger(),
	}
}

func (s *FallbackStore) Products(ctx context.Context) ([]model.Product, error) {
	return perform(ctx, s, "get_products", s.remote.Products, s.local.Products)
}

func (s *FallbackStore) SaveProduct(ctx context.Context, p model.Product) (model.Product, error) {
	return perform(ctx, s, "save_product",
		func(ctx context.Context) (model.Product, error) { return s.remote.SaveProduct(ctx, p) },
		func(ctx context.Context) (model.Product, error) { return s.local.SaveProduct(ctx, p) },
	)
}

func (s *FallbackStore) DeleteProduct(ctx context.Context, id string) error {
	_, err := perform(ctx, s, "delete_product",
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.remote.DeleteProduct(ctx, id) },
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.local.DeleteProduct(ctx, id) },
	)
	return err
}

func (s *FallbackStore) Customers(ctx context.Context) ([]model.Customer, error) {
	return perform(ctx, s, "get_customers", s.remote.Customers, s.local.Customers)
}

func (s *FallbackStore) SaveCustomer(ctx context.Context, c model.Customer) (model.Customer, error) {
	return perform(ctx, s, "save_customer",
		func(ctx context.Context) (model.Customer, error) { return s.remote.SaveCustomer(ctx, c) },
		func(ctx context.Context) (model.Customer, error) { return s.local.SaveCustomer(ctx, c) },
	)
}

func (s *FallbackStore) Orders(ctx context.Context) ([]model.Order, error) {
	return perform(ctx, s, "get_orders", s.remote.Orders, s.local.Orders)
}

func (s *FallbackStore) CommitOrder(ctx context.Context, o model.Order) (model.Order, error) {
	out, err := s.remote.CommitOrder(ctx, o)
	if err == nil {
		metrics.OrdersCommitted.WithLabelValues("remote").Inc()
		return out, nil
	}
	// The remote commit only errors before its first write, so applying the
	// transaction locally cannot double its effects.
	s.degraded("commit_order", err)
	out, err = s.local.CommitOrder(ctx, o)
	if err == nil {
		metrics.OrdersCommitted.WithLabelValues("local").Inc()
	}
	return out, err
}

// Probe runs the short-timeout liveness check and records the result. The
// outcome only drives the offline indicator; operations keep attempting the
// remote path regardless.
func (s *FallbackStore) Probe(ctx context.Context) bool {
	alive := s.remote.Ping(ctx)
	s.offline.Store(!alive)
	if alive {
		metrics.RemoteOffline.Set(0)
	} else {
		metrics.RemoteOffline.Set(1)
	}
	return alive
}

// Offline reports the last probe result.
func (s *FallbackStore) Offline() bool {
	return s.offline.Load()
}

func (s *FallbackStore) degraded(op string, err error) {
	metrics.LocalFallbackTotal.WithLabelValues(op).Inc()
	s.log.Warn().Err(err).Str("operation", op).Msg("remote unreachable, using local fallback")
}

func perform[T any](
	ctx context.Context,
	s *FallbackStore,
	op string,
	remote func(context.Context) (T, error),
	local func(context.Context) (T, error),
) (T, error) {
	out, err := remote(ctx)
	if err == nil {
		return out, nil
	}
	s.degraded(op, err)
	return local(ctx)
}
