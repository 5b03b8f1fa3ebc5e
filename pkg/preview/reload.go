package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// MessageType classifies a live-reload message.
type MessageType string

const (
	TypeReload MessageType = "reload"
	TypeError  MessageType = "error"
	TypeClear  MessageType = "clear"
)

// Message is sent to connected browsers over the reload socket.
type Message struct {
	Type   MessageType `json:"type"`
	Error  string      `json:"error,omitempty"`
	Source string      `json:"source,omitempty"`
}

// Hub tracks reload socket connections and broadcasts re-render events to
// them. The preview server notifies the hub whenever the manifest or a
// template changes and the document has been rebuilt.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Preview is a local dev tool; any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleSocket upgrades the request and parks the connection until the
// client goes away.
func (h *Hub) HandleSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyReload tells every connected browser to refresh. source names the
// file whose change triggered the rebuild.
func (h *Hub) NotifyReload(source string) {
	h.broadcast(Message{Type: TypeReload, Source: source})
}

// NotifyError pushes a render error to the browser overlay.
func (h *Hub) NotifyError(errMsg string) {
	h.broadcast(Message{Type: TypeError, Error: errMsg})
}

// ClearError clears the browser error overlay.
func (h *Hub) ClearError() {
	h.broadcast(Message{Type: TypeClear})
}

// ClientCount returns the number of connected browsers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			c.Close()
		}
	}
}
