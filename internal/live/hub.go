// Package live fans out review events to subscribed dashboard connections,
// scoped by tenant.
package live

import (
	"log/slog"
	"sync"
)

// Session is a live subscriber connection. Send must be safe to call from
// multiple goroutines; implementations serialize their own writes.
type Session interface {
	Send(event Event) error
}

// Hub is the registry of live sessions keyed by tenant. Register,
// Unregister, and Broadcast may all run concurrently from handler and
// worker goroutines; the registry is mutex-guarded.
type Hub struct {
	mu       sync.RWMutex
	sessions map[Session]string
	logger   *slog.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		sessions: make(map[Session]string),
		logger:   logger.With("system", "live"),
	}
}

// Register adds a session for the given tenant.
func (h *Hub) Register(s Session, tenantID string) {
	h.mu.Lock()
	h.sessions[s] = tenantID
	total := len(h.sessions)
	h.mu.Unlock()

	h.logger.Info("session connected", "tenant_id", tenantID, "total", total)
}

// Unregister removes a session if present. Safe to call repeatedly.
func (h *Hub) Unregister(s Session) {
	h.mu.Lock()
	_, present := h.sessions[s]
	delete(h.sessions, s)
	total := len(h.sessions)
	h.mu.Unlock()

	if present {
		h.logger.Info("session disconnected", "total", total)
	}
}

// Count returns the number of registered sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Broadcast delivers the event to every session registered for tenantID.
// Delivery is best-effort: a session whose send fails is dropped from the
// registry; other sessions and the caller are unaffected.
func (h *Hub) Broadcast(event Event, tenantID string) {
	h.mu.RLock()
	targets := make([]Session, 0, len(h.sessions))
	for s, t := range h.sessions {
		if t == tenantID {
			targets = append(targets, s)
		}
	}
	h.mu.RUnlock()

	sent := 0
	for _, s := range targets {
		if err := s.Send(event); err != nil {
			h.logger.Warn("send failed, dropping session", "tenant_id", tenantID, "error", err)
			h.Unregister(s)
			continue
		}
		sent++
	}

	if sent > 0 {
		h.logger.Info("event broadcast", "type", event.Type, "tenant_id", tenantID, "sessions", sent)
	}
}
