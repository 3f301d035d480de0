package handler

import (
	"go-retail-crm/internal/model"
	"go-retail-crm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// GetOrders lists orders newest first.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetOrders(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

// CreateOrder commits a new order: the order is persisted, item stock is
// deducted and the customer's loyalty totals are credited.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	committed, err := h.service.CreateOrder(c.Context(), &order)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order committed", "data": committed})
}
