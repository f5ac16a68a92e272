package live

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	pingText = "ping"
	pongText = "pong"
)

// Handler upgrades HTTP requests to WebSocket sessions and registers them
// with the hub for the tenant named in the path.
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a WebSocket handler bound to the hub.
func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// Dashboards are served from separate origins; CORS policy is
			// enforced at the API module, not per socket.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger.With("handler", "live"),
	}
}

// Serve handles GET /ws/{tenant_id}. The connection stays registered until
// the client disconnects or a send fails. Inbound "ping" text receives an
// immediate "pong" reply, independent of broadcast traffic.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	tenantID := r.PathValue("tenant_id")
	if tenantID == "" {
		http.Error(w, "tenant_id required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "error", err)
		return
	}

	sess := &wsSession{conn: conn}
	h.hub.Register(sess, tenantID)
	defer func() {
		h.hub.Unregister(sess)
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if string(msg) == pingText {
			if err := sess.sendText(pongText); err != nil {
				return
			}
		}
	}
}

// wsSession wraps a websocket connection with a write mutex so broadcast
// goroutines and pong replies never interleave frames.
type wsSession struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *wsSession) Send(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(event)
}

func (s *wsSession) sendText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, []byte(text))
}
