package dev

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/puerro-dev/puerro/pkg/vdom"
)

// PatchMessage is sent to browsers via WebSocket for every mutation the
// differ applies.
type PatchMessage struct {
	Op    string `json:"op"`
	Tag   string `json:"tag"`
	Index int    `json:"index"`
}

// PatchStream broadcasts applied patches to connected WebSocket clients.
// It implements vdom.Recorder, so it plugs straight into a mount
// controller.
type PatchStream struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewPatchStream creates a new patch stream.
func NewPatchStream() *PatchStream {
	return &PatchStream{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (s *PatchStream) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// Record implements vdom.Recorder by broadcasting the patch.
func (s *PatchStream) Record(p vdom.Patch) {
	s.broadcast(PatchMessage{
		Op:    p.Op.String(),
		Tag:   p.Tag,
		Index: p.Index,
	})
}

// broadcast sends a message to all connected clients.
func (s *PatchStream) broadcast(msg PatchMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			s.mu.Lock()
			delete(s.clients, client)
			s.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (s *PatchStream) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
