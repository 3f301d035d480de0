package handler

import (
	"go-retail-crm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InsightHandler struct {
	service service.InsightService
}

func NewInsightHandler(s service.InsightService) *InsightHandler {
	return &InsightHandler{service: s}
}

// Insights never fail: the service degrades to a fixed message when the
// text-generation backend is unreachable.

func (h *InsightHandler) GetInventoryInsights(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"insights": h.service.InventoryInsights(c.Context())})
}

func (h *InsightHandler) GetSalesSummary(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"summary": h.service.SalesSummary(c.Context())})
}
