// internal/ws/hub.go
package ws

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"bingo-engine/internal/domain"
)

const broadcastBuffer = 256

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans round events out to every connected subscriber.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	logger     *zap.Logger
}

// NewHub creates a Hub. Call Run before serving connections.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, broadcastBuffer),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run owns the client set until ctx is cancelled, then disconnects everyone.
func (h *Hub) Run(ctx context.Context) error {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				delete(h.clients, c)
				c.close()
			}
			return nil
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("websocket subscriber joined", zap.Int("subscribers", len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				c.close()
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Slow subscriber.
					delete(h.clients, c)
					c.close()
				}
			}
		}
	}
}

// Publish queues an event for broadcast. It never blocks; events are dropped when the queue is full.
func (h *Hub) Publish(event domain.RoundEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode round event", zap.String("type", string(event.Type)), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("round event dropped", zap.String("type", string(event.Type)), zap.Int64("round_id", event.RoundID))
	}
}

// ServeWS upgrades the request and registers the connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		logger: h.logger,
	}
	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	case <-r.Context().Done():
		_ = conn.Close()
		return
	}
	go client.writePump()
	go client.readPump()
}
