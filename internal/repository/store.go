package repository

import (
	"context"

	"go-retail-crm/internal/model"
)

// Store is the collection persistence contract shared by the remote service
// client and the local snapshot store. Orders are always returned newest
// first. CommitOrder runs the shared commit transaction against whatever
// backs the implementation.
type Store interface {
	Products(ctx context.Context) ([]model.Product, error)
	SaveProduct(ctx context.Context, p model.Product) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	Customers(ctx context.Context) ([]model.Customer, error)
	SaveCustomer(ctx context.Context, c model.Customer) (model.Customer, error)

	Orders(ctx context.Context) ([]model.Order, error)
	CommitOrder(ctx context.Context, o model.Order) (model.Order, error)
}
