package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// eventBuffer is the number of published events waiting for the hub loop
const eventBuffer = 256

// Event is the envelope pushed to connected clients
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type delivery struct {
	userID int64
	data   []byte
}

// Hub keeps the live connections of every user and pushes events to them.
// All registration and delivery happens on the Run goroutine.
type Hub struct {
	// Registered clients organized by user ID
	clients map[int64]map[*Client]bool

	events     chan delivery
	register   chan *Client
	unregister chan *Client

	done     chan struct{}
	stopOnce sync.Once

	// Guards clients for readers outside the hub loop
	mu sync.RWMutex

	now    func() time.Time
	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		events:     make(chan delivery, eventBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		now:        time.Now,
		logger:     logger,
	}
}

// Run processes registrations and events until ctx is cancelled or Stop is called.
// Every connection still open is closed on return.
func (h *Hub) Run(ctx context.Context) {
	defer h.closeAll()
	defer h.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			return
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case d := <-h.events:
			h.deliver(d)
		}
	}
}

// Stop makes Run return. It is safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Publish queues an event for every connection of userID. It never blocks;
// events published after Stop or while the queue is full are dropped.
func (h *Hub) Publish(userID int64, eventType string, payload interface{}) {
	data, err := json.Marshal(Event{Type: eventType, Payload: payload, Timestamp: h.now()})
	if err != nil {
		h.logger.Error().Err(err).Str("type", eventType).Msg("Failed to marshal live event")
		return
	}

	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.events <- delivery{userID: userID, data: data}:
	default:
		h.logger.Warn().Int64("userID", userID).Str("type", eventType).Msg("Live event queue full, dropping event")
	}
}

// ClientCount returns the number of open connections of a user
func (h *Hub) ClientCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.logger.Info().
		Int64("userID", client.userID).
		Str("addr", client.addr).
		Msg("Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

// removeLocked drops client and closes its send channel. h.mu must be held.
func (h *Hub) removeLocked(client *Client) {
	conns, ok := h.clients[client.userID]
	if !ok || !conns[client] {
		return
	}
	delete(conns, client)
	close(client.send)
	if len(conns) == 0 {
		delete(h.clients, client.userID)
	}

	h.logger.Info().
		Int64("userID", client.userID).
		Str("addr", client.addr).
		Msg("Client unregistered")
}

// deliver hands data to each connection of the user. Connections whose
// buffer is full are dropped.
func (h *Hub) deliver(d delivery) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.clients[d.userID]
	if len(conns) == 0 {
		h.logger.Debug().Int64("userID", d.userID).Msg("No live connections for event")
		return
	}

	for client := range conns {
		select {
		case client.send <- d.data:
		default:
			h.logger.Warn().Int64("userID", d.userID).Str("addr", client.addr).Msg("Slow client, closing connection")
			h.removeLocked(client)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conns := range h.clients {
		for client := range conns {
			h.removeLocked(client)
		}
	}
}

// enqueue registers client unless the hub has stopped
func (h *Hub) enqueue(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave unregisters client unless the hub has stopped
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}
