package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/oklog/ulid/v2"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

const (
	defaultWriteTimeout = 5 * time.Second
	sendQueueSize       = 16
)

var ErrEncodeEvent = errors.New("notifier: failed to encode event")

// client send is closed by the hub under h.mu when the client is unregistered
type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newClient(conn *websocket.Conn) *client {
	return &client{conn: conn, send: make(chan []byte, sendQueueSize)}
}

// Hub keeps the connected admin WebSocket clients and broadcasts order events to them.
// Delivery is fire-and-forget: every client has its own queue and writer goroutine,
// a client whose queue is full or whose write fails is dropped.
type Hub struct {
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	logger       Logger
	metrics      Metrics

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	idGen func() string
	now   func() time.Time
}

// NewHub creates a hub. allowedOrigin "*" or "" accepts any origin.
// metrics may be nil.
func NewHub(allowedOrigin string, writeTimeout time.Duration, bufferSize int, logger Logger, metrics Metrics) *Hub {
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	if bufferSize <= 0 {
		bufferSize = 1024
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  bufferSize,
			WriteBufferSize: bufferSize,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" || allowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		writeTimeout: writeTimeout,
		logger:       logger,
		metrics:      metrics,
		clients:      make(map[*client]struct{}),
		idGen:        func() string { return ulid.Make().String() },
		now:          time.Now,
	}
}

// ServeHTTP upgrades the request and keeps the client registered until it disconnects
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Notifier: upgrade failed: %v", err)
		return
	}

	c := newClient(conn)
	if !h.register(c) {
		_ = conn.Close()
		return
	}
	h.logger.Info("Notifier: admin client connected (%d total)", h.ClientCount())

	go h.writePump(c)

	// admin clients never send anything meaningful, reading only detects disconnects
	go func() {
		defer h.unregister(c)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// OrderCreated broadcasts NEW_ORDER
func (h *Hub) OrderCreated(ctx context.Context, order *domain.Order) error {
	return h.Publish(ctx, EventNewOrder, order)
}

// OrderUpdated broadcasts ORDER_UPDATED
func (h *Hub) OrderUpdated(ctx context.Context, order *domain.Order) error {
	return h.Publish(ctx, EventOrderUpdated, order)
}

// Publish queues one event for every connected client and returns without waiting for the writes.
// The reported delivery count is the number of clients the event was queued for.
func (h *Hub) Publish(_ context.Context, eventType EventType, order *domain.Order) error {
	event := Event{
		ID:        h.idGen(),
		Type:      eventType,
		Timestamp: h.now(),
		Order:     summarize(order),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeEvent, err)
	}

	var (
		queued int
		slow   []*client
	)

	h.mu.RLock()
	total := len(h.clients)
	for c := range h.clients {
		select {
		case c.send <- payload:
			queued++
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Notifier: dropping client with full send queue")
		h.unregister(c)
	}

	if h.metrics != nil {
		h.metrics.NotificationSent(string(eventType), queued)
	}
	h.logger.Info("Notifier: %s for order %s queued for %d/%d clients",
		eventType, order.OrderID, queued, total)

	return nil
}

// writePump is the only writer of c.conn, it exits once c.send is closed or a write fails
func (h *Hub) writePump(c *client) {
	for payload := range c.send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
			h.logger.Warn("Notifier: dropping client after failed write: %v", err)
			h.unregister(c)
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn("Notifier: dropping client after failed write: %v", err)
			h.unregister(c)
			return
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		close(c.send)
		delete(h.clients, c)
	}
	h.mu.Unlock()

	if ok {
		_ = c.conn.Close()
		h.logger.Info("Notifier: admin client disconnected")
	}
}
