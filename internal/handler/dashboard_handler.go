package handler

import (
	"strconv"

	"go-retail-crm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboardStats returns overview statistics
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetStats(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetSalesByDay returns sales chart data
// Query params: days (default 7)
func (h *DashboardHandler) GetSalesByDay(c *fiber.Ctx) error {
	daysStr := c.Query("days", "7")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days <= 0 {
		days = 7
	}

	data, err := h.service.GetSalesByDay(c.Context(), days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales data"})
	}

	return c.JSON(fiber.Map{
		"period": days,
		"data":   data,
	})
}

// GetTopProducts returns products ranked by units sold
// Query params: limit (default 5)
func (h *DashboardHandler) GetTopProducts(c *fiber.Ctx) error {
	limitStr := c.Query("limit", "5")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 5
	}

	data, err := h.service.GetTopProducts(c.Context(), limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch top products"})
	}
	return c.JSON(data)
}
