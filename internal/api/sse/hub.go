package sse

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ewhitmore/scorepad-go/internal/model"
)

// Hub manages SSE clients watching a single table
type Hub struct {
	table   model.TableCode
	clients map[*Client]bool
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
}

// NewHub creates a new Hub for a table
func NewHub(table model.TableCode, logger *slog.Logger) *Hub {
	return &Hub{
		table:      table,
		clients:    make(map[*Client]bool),
		logger:     logger.With(slog.String("table", string(table))),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	h.logger.Info("sse hub started")
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			clientCount := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("sse client registered",
				slog.String("remote", client.remoteAddr),
				slog.Int("total_clients", clientCount))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				clientCount := len(h.clients)
				h.mu.Unlock()
				h.logger.Info("sse client unregistered",
					slog.String("remote", client.remoteAddr),
					slog.Duration("connection_duration", time.Since(client.connectedAt)),
					slog.Int("total_clients", clientCount))
			} else {
				h.mu.Unlock()
			}

		case message := <-h.broadcast:
			h.mu.RLock()
			dropped := 0
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					dropped++
				}
			}
			h.mu.RUnlock()
			if dropped > 0 {
				h.logger.Warn("sse messages dropped - client buffers full",
					slog.Int("dropped", dropped))
			}

		case <-h.done:
			h.mu.Lock()
			clientCount := len(h.clients)
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Info("sse hub stopped", slog.Int("disconnected_clients", clientCount))
			return
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast sends a message to all clients
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("sse broadcast dropped - hub buffer full")
	}
}

// BroadcastEvent sends an SSE event with a name and data
func (h *Hub) BroadcastEvent(eventName, data string) {
	h.Broadcast(formatSSEMessage(eventName, data))
}

// Close shuts down the hub
func (h *Hub) Close() {
	close(h.done)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// formatSSEMessage frames an event per the SSE wire format; each line of
// data gets its own "data: " prefix
func formatSSEMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: ")
	b.WriteString(eventName)
	b.WriteString("\n")
	for _, line := range strings.Split(strings.ReplaceAll(data, "\r\n", "\n"), "\n") {
		b.WriteString("data: ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// HubManager manages hubs for all tables
type HubManager struct {
	hubs   map[model.TableCode]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.TableCode]*Hub),
		logger: logger.With(slog.String("component", "sse")),
	}
}

// GetOrCreateHub returns the hub for a table, creating one if it doesn't exist
func (m *HubManager) GetOrCreateHub(table model.TableCode) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[table]; ok {
		return hub
	}

	hub := NewHub(table, m.logger)
	m.hubs[table] = hub
	go hub.Run()
	return hub
}

// GetHub returns the hub for a table, or nil if it doesn't exist
func (m *HubManager) GetHub(table model.TableCode) *Hub {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hubs[table]
}

// RemoveHub removes and closes a hub
func (m *HubManager) RemoveHub(table model.TableCode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[table]; ok {
		hub.Close()
		delete(m.hubs, table)
		m.logger.Info("sse hub removed", slog.String("table", string(table)))
	}
}

// CleanupEmptyHubs removes hubs with no clients
func (m *HubManager) CleanupEmptyHubs() {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for code, hub := range m.hubs {
		if hub.ClientCount() == 0 {
			hub.Close()
			delete(m.hubs, code)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("sse empty hubs cleaned up", slog.Int("removed", removed))
	}
}
