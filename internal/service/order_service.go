package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-retail-crm/internal/model"
	"go-retail-crm/internal/repository"
	"go-retail-crm/internal/ws"
	"go-retail-crm/pkg/validator"

	"github.com/google/uuid"
)

type OrderService interface {
	GetOrders(ctx context.Context) ([]model.Order, error)
	CreateOrder(ctx context.Context, req *model.Order) (*model.Order, error)
}

type orderService struct {
	store repository.Store
	wsHub *ws.Hub
}

func NewOrderService(store repository.Store, hub *ws.Hub) OrderService {
	return &orderService{store: store, wsHub: hub}
}

// GetOrders lists orders newest first.
func (s *orderService) GetOrders(ctx context.Context) ([]model.Order, error) {
	return s.store.Orders(ctx)
}

// CreateOrder validates the request, fills defaults and runs the commit
// transaction. TotalAmount is taken as the caller computed it and is not
// recomputed here; items may oversell (stock clamps at zero) and may reference
// unknown products or customers (silent no-ops). Orders are immutable once
// committed.
func (s *orderService) CreateOrder(ctx context.Context, req *model.Order) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.ID == "" {
		req.ID = "ORD-" + strings.ToUpper(uuid.New().String()[:8])
	}
	if req.Status == "" {
		req.Status = model.OrderPending
	}
	if req.OrderDate.IsZero() {
		req.OrderDate = time.Now().UTC()
	}
	if req.CustomerID != "" && req.CustomerName == "" {
		// Denormalized snapshot; an unknown customer id just leaves it empty.
		if customers, err := s.store.Customers(ctx); err == nil {
			for _, c := range customers {
				if c.ID == req.CustomerID {
					req.CustomerName = c.Name
					break
				}
			}
		}
	}

	committed, err := s.store.CommitOrder(ctx, *req)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:   ws.EventOrderCreated,
		Action: "order_committed",
		Payload: map[string]interface{}{
			"id":          committed.ID,
			"customer":    committed.CustomerName,
			"totalAmount": committed.TotalAmount,
			"items":       len(committed.Items),
		},
		Message: fmt.Sprintf("Order %s committed", committed.ID),
	})
	return &committed, nil
}
