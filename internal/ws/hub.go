package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/osse101/ArcFarmia_Go/internal/ambience"
	"github.com/osse101/ArcFarmia_Go/internal/bridge"
	"github.com/osse101/ArcFarmia_Go/internal/clock"
	"github.com/osse101/ArcFarmia_Go/internal/event"
	"github.com/osse101/ArcFarmia_Go/internal/farm"
	"github.com/osse101/ArcFarmia_Go/internal/metrics"
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected clients and pushes views to them
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	farm   farm.Service
	bridge bridge.Service
	sky    *ambience.Sky
	clock  clock.Clock
}

// NewHub creates a hub rendering views from the given services
func NewHub(f farm.Service, br bridge.Service, sky *ambience.Sky, clk clock.Clock) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		farm:    f,
		bridge:  br,
		sky:     sky,
		clock:   clk,
	}
}

// Subscribe pushes a fresh view whenever the farm, session or sky changes
func (h *Hub) Subscribe(bus event.Bus) {
	push := func(ctx context.Context, _ event.Event) error {
		h.Push(ctx)
		return nil
	}
	bus.Subscribe(event.FarmChanged, push)
	bus.Subscribe(event.SessionChanged, push)
	bus.Subscribe(event.AmbienceChanged, push)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Push sends the current view to every client
func (h *Hub) Push(ctx context.Context) {
	if h.ClientCount() == 0 {
		return
	}
	data, err := json.Marshal(h.viewFrame())
	if err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}
	h.broadcast(data)
}

func (h *Hub) viewFrame() ViewFrame {
	return ViewFrame{
		Type:     FrameView,
		View:     h.farm.View(),
		Session:  h.bridge.Session(),
		Ambience: h.sky.Current(h.clock.Now()),
	}
}

func (h *Hub) broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			slog.Warn(LogMsgSlowClient, "remote", c.conn.RemoteAddr().String())
		}
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	metrics.StreamClients.WithLabelValues(metrics.TransportWebSocket).Inc()
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	metrics.StreamClients.WithLabelValues(metrics.TransportWebSocket).Dec()
}

// Close disconnects every client and refuses new ones.
// Hijacked connections are not tracked by http.Server.Shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		_ = c.conn.Close()
	}
}
