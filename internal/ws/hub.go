package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
)

// Event is what the hub pushes to connected dashboards: stock movements,
// committed orders, and offline-indicator changes.
type Event struct {
	Type    string      `json:"type"`
	Action  string      `json:"action,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
	Message string      `json:"message,omitempty"`
}

const (
	EventStockUpdate  = "stock_update"
	EventOrderCreated = "order_created"
	EventConnectivity = "connectivity"
)

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	log        zerolog.Logger
	mutex      sync.Mutex
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
		log:        log.With().Str("component", "ws_hub").Logger(),
	}
}

// Publish serializes an event and hands it to the broadcast loop without
// blocking the caller.
func (h *Hub) Publish(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("event", event.Type).Msg("dropping unserializable event")
		return
	}
	go func() { h.Broadcast <- msg }()
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			h.log.Info().Msg("ws client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}
