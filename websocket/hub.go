package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Event is the JSON frame pushed to dashboard clients when family state
// changes server-side.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const (
	EventChildUpdated = "child_updated"
	EventChildLocked  = "child_locked"
	EventAlertCreated = "alert_created"
)

// Hub maintains the set of connected clients grouped by family and fans
// events out to every client of the affected family.
type Hub struct {
	// Registered clients keyed by the family's parent firebase_uid.
	families map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *familyEvent

	mu sync.Mutex
}

type familyEvent struct {
	ParentUID string
	Data      []byte
}

func NewHub() *Hub {
	return &Hub{
		families:   make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *familyEvent),
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastToFamily delivers an event to every client watching the family.
// Marshalling errors are logged and dropped; a push must never fail the
// request that triggered it.
func (h *Hub) BroadcastToFamily(parentUID string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[WebSocket] failed to marshal %s event: %v", event.Type, err)
		return
	}
	h.broadcast <- &familyEvent{ParentUID: parentUID, Data: data}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.families[client.ParentUID]; !ok {
				h.families[client.ParentUID] = make(map[*Client]bool)
			}
			h.families[client.ParentUID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.families[client.ParentUID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.families, client.ParentUID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			if clients, ok := h.families[event.ParentUID]; ok {
				for client := range clients {
					select {
					case client.send <- event.Data:
					default:
						close(client.send)
						delete(clients, client)
						if len(clients) == 0 {
							delete(h.families, event.ParentUID)
						}
					}
				}
			}
			h.mu.Unlock()
		}
	}
}
