package handler

import (
	"go-retail-crm/internal/repository"
	"go-retail-crm/internal/ws"

	"github.com/gofiber/fiber/v2"
)

type StatusHandler struct {
	store *repository.FallbackStore
	wsHub *ws.Hub
}

func NewStatusHandler(store *repository.FallbackStore, hub *ws.Hub) *StatusHandler {
	return &StatusHandler{store: store, wsHub: hub}
}

// GetStatus runs the liveness probe and reports the offline indicator. The
// result is advisory UI state; operations attempt the remote path regardless.
// GET /api/v1/status
func (h *StatusHandler) GetStatus(c *fiber.Ctx) error {
	wasOffline := h.store.Offline()
	alive := h.store.Probe(c.Context())

	if wasOffline == alive { // state flipped
		h.wsHub.Publish(ws.Event{
			Type:    ws.EventConnectivity,
			Payload: map[string]interface{}{"offline": !alive},
		})
	}

	return c.JSON(fiber.Map{
		"remote_alive": alive,
		"offline":      !alive,
	})
}
