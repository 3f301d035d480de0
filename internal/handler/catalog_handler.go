package handler

import (
	"go-retail-crm/internal/model"
	"go-retail-crm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

// SaveProduct upserts a product by id.
func (h *CatalogHandler) SaveProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	saved, err := h.service.SaveProduct(c.Context(), &product)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(saved)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(204)
}
