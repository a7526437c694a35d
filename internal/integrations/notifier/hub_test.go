package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type recordingMetrics struct {
	mu        sync.Mutex
	delivered map[string]int
}

func (m *recordingMetrics) NotificationSent(event string, delivered int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delivered[event] += delivered
}

func newTestHub(t *testing.T) (*Hub, *recordingMetrics, string) {
	t.Helper()
	m := &recordingMetrics{delivered: map[string]int{}}
	hub := NewHub("*", time.Second, 0, nopLogger{}, m)
	hub.idGen = func() string { return "01HTESTEVENT" }
	hub.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }

	srv := httptest.NewServer(hub)
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})

	return hub, m, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func testOrder() *domain.Order {
	return &domain.Order{
		OrderID:     "SLQ1231",
		Customer:    domain.Customer{Name: "Asha", Phone: "98100"},
		Selection:   domain.CatalogSelection{ServiceID: "simple-blouse"},
		ServiceName: "Simple Blouse",
		BookingType: domain.BookingNormal,
		Measurement: domain.SelfMeasurement{},
		Status:      domain.StatusPickupAwaited,
		Pricing:     domain.PricingResult{Total: 500, BalanceAmount: 500},
	}
}

func TestHub_BroadcastsToAllClients(t *testing.T) {
	hub, m, url := newTestHub(t)

	first := dial(t, url)
	second := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.OrderCreated(context.Background(), testOrder()))

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, "01HTESTEVENT", event.ID)
		assert.Equal(t, EventNewOrder, event.Type)
		assert.Equal(t, "SLQ1231", event.Order.OrderID)
		assert.Equal(t, "booking", event.Order.ServiceType)
		assert.Equal(t, int64(500), event.Order.TotalAmount)
	}

	m.mu.Lock()
	assert.Equal(t, 2, m.delivered[string(EventNewOrder)])
	m.mu.Unlock()
}

// serverConn returns the server side of a fresh WebSocket connection
func serverConn(t *testing.T) *websocket.Conn {
	t.Helper()
	conns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if conn, err := upgrader.Upgrade(w, r, nil); err == nil {
			conns <- conn
		}
	}))
	t.Cleanup(srv.Close)

	dial(t, "ws"+strings.TrimPrefix(srv.URL, "http"))

	select {
	case conn := <-conns:
		t.Cleanup(func() { _ = conn.Close() })
		return conn
	case <-time.After(2 * time.Second):
		t.Fatal("server side of the connection never arrived")
		return nil
	}
}

func TestHub_StalledClientDoesNotBlockOthers(t *testing.T) {
	hub, m, url := newTestHub(t)

	healthy := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	// no writer goroutine and no queue room, like a peer that stopped reading
	stalled := &client{conn: serverConn(t), send: make(chan []byte)}
	require.True(t, hub.register(stalled))
	require.Equal(t, 2, hub.ClientCount())

	published := make(chan error, 1)
	go func() { published <- hub.OrderCreated(context.Background(), testOrder()) }()

	select {
	case err := <-published:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("publish blocked on the stalled client")
	}

	require.NoError(t, healthy.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := healthy.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "SLQ1231", event.Order.OrderID)

	assert.Equal(t, 1, hub.ClientCount())
	m.mu.Lock()
	assert.Equal(t, 1, m.delivered[string(EventNewOrder)])
	m.mu.Unlock()
}

func TestHub_DropsDisconnectedClients(t *testing.T) {
	hub, _, url := newTestHub(t)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)

	assert.NoError(t, hub.OrderUpdated(context.Background(), testOrder()))
}

func TestHub_NoClients(t *testing.T) {
	hub := NewHub("", 0, 0, nopLogger{}, nil)
	assert.NoError(t, hub.OrderUpdated(context.Background(), testOrder()))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	hub := NewHub("https://admin.sliques.in", time.Second, 0, nopLogger{}, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	header := map[string][]string{"Origin": {"https://evil.example"}}
	_, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), header)
	assert.Error(t, err)
	assert.Equal(t, 0, hub.ClientCount())
}
