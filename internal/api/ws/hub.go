package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans room events out to every websocket client watching that
// room. Clients are read-only spectators of the resolution feed; all
// game input goes through the HTTP API.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]struct{}),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// HandleWS upgrades the connection and subscribes it to a room's
// event stream until the client disconnects.
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	// Drain inbound frames so pings/pongs are processed; exit on error.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Broadcast sends an action envelope to every client in a room.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.RLock()
	clients, ok := h.rooms[roomCode]
	if !ok {
		h.mu.RUnlock()
		return
	}
	conns := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	var dead []*websocket.Conn
	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			dead = append(dead, conn)
		}
	}
	if len(dead) > 0 {
		h.mu.Lock()
		for _, conn := range dead {
			delete(h.rooms[roomCode], conn)
		}
		h.mu.Unlock()
	}
}
