package progress

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one websocket subscriber to a session's job updates.
type Client struct {
	conn      *websocket.Conn
	sessionID string
	send      chan []byte
}

// Hub fans job status updates out to the subscribers of each session.
// Pushes are one-way; clients only listen.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]map[*Client]bool
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]map[*Client]bool),
	}
}

// HandleWS - GET /ws?session=<id>
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "Missing session parameter", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ [Progress] WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		conn:      conn,
		sessionID: sessionID,
		send:      make(chan []byte, 64),
	}
	h.register(client)
	log.Printf("👤 [Progress] Client subscribed to session %s", sessionID)

	go client.writePump()
	go h.readPump(client)
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.sessions[client.sessionID]
	if !ok {
		clients = make(map[*Client]bool)
		h.sessions[client.sessionID] = clients
	}
	clients[client] = true
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.sessions[client.sessionID]; ok {
		if clients[client] {
			delete(clients, client)
			close(client.send)
		}
		if len(clients) == 0 {
			delete(h.sessions, client.sessionID)
		}
	}
}

// Broadcast sends a JSON-encoded update to every subscriber of the
// session. Slow clients are dropped rather than blocking the sender.
func (h *Hub) Broadcast(sessionID string, update interface{}) {
	payload, err := json.Marshal(update)
	if err != nil {
		log.Printf("❌ [Progress] Failed to marshal update: %v", err)
		return
	}

	h.mu.RLock()
	clients := make([]*Client, 0, len(h.sessions[sessionID]))
	for client := range h.sessions[sessionID] {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.send <- payload:
		default:
			h.unregister(client)
			client.conn.Close()
		}
	}
}

// readPump drains (and discards) client frames so pings and close
// frames are processed.
func (h *Hub) readPump(client *Client) {
	defer func() {
		h.unregister(client)
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("⚠️  [Progress] WebSocket error: %v", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("⚠️  [Progress] WebSocket write error: %v", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
