package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go-retail-crm/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderService struct {
	orders []model.Order
	create func(ctx context.Context, req *model.Order) (*model.Order, error)
}

func (s *stubOrderService) GetOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders, nil
}

func (s *stubOrderService) CreateOrder(ctx context.Context, req *model.Order) (*model.Order, error) {
	if s.create != nil {
		return s.create(ctx, req)
	}
	return req, nil
}

func newOrderApp(svc *stubOrderService) *fiber.App {
	app := fiber.New()
	h := NewOrderHandler(svc)
	app.Get("/orders", h.GetOrders)
	app.Post("/orders", h.CreateOrder)
	return app
}

func TestCreateOrderHandlerRejectsInvalidJSON(t *testing.T) {
	app := newOrderApp(&stubOrderService{})

	req := httptest.NewRequest("POST", "/orders", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateOrderHandlerReturns201(t *testing.T) {
	svc := &stubOrderService{}
	app := newOrderApp(svc)

	body := `{
		"customerId": "C001",
		"items": [{"productId": "P001", "name": "Organic Avocados", "quantity": 4, "price": "1.5"}],
		"totalAmount": "6",
		"paymentMethod": "Card"
	}`
	req := httptest.NewRequest("POST", "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Order committed")
}

func TestGetOrdersHandlerListsNewestFirst(t *testing.T) {
	svc := &stubOrderService{orders: []model.Order{
		{ID: "ORD-2", TotalAmount: decimal.NewFromFloat(4.00)},
		{ID: "ORD-1", TotalAmount: decimal.NewFromFloat(6.00)},
	}}
	app := newOrderApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var orders []model.Order
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-2", orders[0].ID)
}
