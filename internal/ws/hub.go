package ws

import (
	"encoding/json"
	"sync"

	"naijavalue/internal/models"
)

// Client is a single notification socket. One user can hold several at once
// (multiple tabs).
type Client struct {
	UserID uint
	Send   chan []byte
	hub    *Hub
	mu     sync.Mutex
	closed bool
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.hub != nil {
		c.hub.unregister(c)
	}
}

// Hub fans stored notifications out to connected clients. It implements
// service.NotificationPusher.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	byUser  map[uint]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		byUser:  make(map[uint]map[*Client]struct{}),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.hub = h
	h.clients[c] = struct{}{}
	if h.byUser[c.UserID] == nil {
		h.byUser[c.UserID] = make(map[*Client]struct{})
	}
	h.byUser[c.UserID][c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	if m := h.byUser[c.UserID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.byUser, c.UserID)
		}
	}
}

// Push routes a notification to its addressee, or to everyone when global.
// Slow clients are skipped rather than blocked on.
func (h *Hub) Push(n *models.Notification) {
	data, _ := json.Marshal(map[string]interface{}{"type": "notification", "notification": n})

	h.mu.RLock()
	var clients []*Client
	if n.IsGlobal || n.UserID == nil {
		clients = make([]*Client, 0, len(h.clients))
		for c := range h.clients {
			clients = append(clients, c)
		}
	} else if m := h.byUser[*n.UserID]; m != nil {
		clients = make([]*Client, 0, len(m))
		for c := range m {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.Send <- data:
		default:
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
