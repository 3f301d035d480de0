package service

import (
	"context"

	"go-retail-crm/internal/commit"
	"go-retail-crm/internal/model"
)

// stubStore implements repository.Store in memory. Unset hooks fall through
// to a snapshot-backed default so most tests only override what they assert.
type stubStore struct {
	snap model.Snapshot

	products    func(ctx context.Context) ([]model.Product, error)
	commitOrder func(ctx context.Context, o model.Order) (model.Order, error)

	committed []model.Order
}

func (s *stubStore) Products(ctx context.Context) ([]model.Product, error) {
	if s.products != nil {
		return s.products(ctx)
	}
	return s.snap.Products, nil
}

func (s *stubStore) SaveProduct(ctx context.Context, p model.Product) (model.Product, error) {
	for i := range s.snap.Products {
		if s.snap.Products[i].ID == p.ID {
			s.snap.Products[i] = p
			return p, nil
		}
	}
	s.snap.Products = append(s.snap.Products, p)
	return p, nil
}

func (s *stubStore) DeleteProduct(ctx context.Context, id string) error {
	kept := s.snap.Products[:0]
	for _, p := range s.snap.Products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.snap.Products = kept
	return nil
}

func (s *stubStore) Customers(ctx context.Context) ([]model.Customer, error) {
	return s.snap.Customers, nil
}

func (s *stubStore) SaveCustomer(ctx context.Context, c model.Customer) (model.Customer, error) {
	for i := range s.snap.Customers {
		if s.snap.Customers[i].ID == c.ID {
			s.snap.Customers[i] = c
			return c, nil
		}
	}
	s.snap.Customers = append(s.snap.Customers, c)
	return c, nil
}

func (s *stubStore) Orders(ctx context.Context) ([]model.Order, error) {
	return s.snap.Orders, nil
}

func (s *stubStore) CommitOrder(ctx context.Context, o model.Order) (model.Order, error) {
	if s.commitOrder != nil {
		return s.commitOrder(ctx, o)
	}
	res := commit.Apply(s.snap, o)
	s.snap.Products = res.Products
	s.snap.Customers = res.Customers
	s.snap.Orders = res.Orders
	s.committed = append(s.committed, res.Order)
	return res.Order, nil
}
