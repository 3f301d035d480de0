package service

import (
	"context"
	"fmt"
	"time"

	"go-retail-crm/internal/model"
	"go-retail-crm/internal/repository"
	"go-retail-crm/pkg/validator"

	"github.com/google/uuid"
)

type CustomerService interface {
	GetCustomers(ctx context.Context) ([]model.Customer, error)
	SaveCustomer(ctx context.Context, req *model.Customer) (*model.Customer, error)
}

type customerService struct {
	store repository.Store
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) GetCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.store.Customers(ctx)
}

// SaveCustomer upserts by id. Customers are never deleted; spend and loyalty
// totals only move through the order commit, except via an explicit save like
// this one (external correction).
func (s *customerService) SaveCustomer(ctx context.Context, req *model.Customer) (*model.Customer, error) {
	if req.ID == "" {
		req.ID = "C-" + uuid.New().String()[:8]
	}
	if req.JoinDate == "" {
		req.JoinDate = time.Now().UTC().Format("2006-01-02")
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	saved, err := s.store.SaveCustomer(ctx, *req)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
