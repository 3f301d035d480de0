package service

import (
	"context"
	"errors"
	"fmt"

	"go-retail-crm/internal/model"
	"go-retail-crm/internal/repository"
	"go-retail-crm/internal/ws"
	"go-retail-crm/pkg/validator"

	"github.com/google/uuid"
)

type CatalogService interface {
	GetProducts(ctx context.Context) ([]model.Product, error)
	SaveProduct(ctx context.Context, req *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type catalogService struct {
	store repository.Store
	wsHub *ws.Hub
}

func NewCatalogService(store repository.Store, hub *ws.Hub) CatalogService {
	return &catalogService{store: store, wsHub: hub}
}

func (s *catalogService) GetProducts(ctx context.Context) ([]model.Product, error) {
	return s.store.Products(ctx)
}

// SaveProduct upserts by id: an existing id is replaced in place, a new one is
// appended. Saving identical data twice leaves the collection unchanged.
func (s *catalogService) SaveProduct(ctx context.Context, req *model.Product) (*model.Product, error) {
	if req.ID == "" {
		req.ID = "P-" + uuid.New().String()[:8]
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	saved, err := s.store.SaveProduct(ctx, *req)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:   ws.EventStockUpdate,
		Action: "product_saved",
		Payload: map[string]interface{}{
			"id":       saved.ID,
			"name":     saved.Name,
			"quantity": saved.Quantity,
			"price":    saved.Price,
		},
		Message: fmt.Sprintf("Product '%s' saved", saved.Name),
	})
	return &saved, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("product id is required")
	}
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.wsHub.Publish(ws.Event{
		Type:    ws.EventStockUpdate,
		Action:  "product_deleted",
		Payload: map[string]interface{}{"id": id},
		Message: fmt.Sprintf("Product '%s' deleted", id),
	})
	return nil
}
