package websocket

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"prestige-backend/internal/database"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans UI signals out to every connected client. The storefront and the
// admin dashboard both listen on the same feed; there are no user identities
// in this system, so there is no per-user routing.
type Hub struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]struct{}
	signals     *database.SignalBus
}

func NewHub(signals *database.SignalBus) *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]struct{}),
		signals:     signals,
	}
}

// Run subscribes to the signal channel and broadcasts until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	pubsub := h.signals.Subscribe(ctx)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast([]byte(msg.Payload))
		}
	}
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.register(conn)

	// Reader loop exists only to detect disconnects; clients never send.
	go func() {
		defer h.unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (h *Hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[conn] = struct{}{}
	log.Printf("WebSocket connected (total: %d)", len(h.connections))
}

func (h *Hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()
	delete(h.connections, conn)
	log.Printf("WebSocket disconnected (total: %d)", len(h.connections))
}

func (h *Hub) broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}
