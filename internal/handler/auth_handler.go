package handler

import (
	"go-retail-crm/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	sessionService service.SessionService
}

func NewAuthHandler(sessionService service.SessionService) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

// LoginRequest represents the login request body. Password is accepted but
// never checked: login is a stub, not a security boundary.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles the stub sign-in
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email is required"})
	}

	response, err := h.sessionService.Login(req.Email)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(response)
}

// Logout clears the persisted current-user record
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.sessionService.Logout(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to clear session"})
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// Me returns the persisted current-user record, if any
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.sessionService.CurrentUser()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to read session"})
	}
	if user == nil {
		return c.Status(404).JSON(fiber.Map{"error": "No active session"})
	}
	return c.JSON(user)
}
