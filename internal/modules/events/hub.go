package events

import (
	"sync"
	"time"

	"creatorhub/internal/domain"

	"github.com/gorilla/websocket"
)

// ProgressEvent is pushed to a creator's open sessions whenever their
// onboarding state changes.
type ProgressEvent struct {
	Type       string               `json:"type"`
	NextStep   domain.Section       `json:"next_step"`
	Percentage int                  `json:"percentage"`
	Status     domain.ProfileStatus `json:"status"`
	At         time.Time            `json:"at"`
}

// Hub tracks one live connection per user. A new connection replaces the
// previous one.
type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

// Unregister removes the session only when conn is still the registered one,
// so a replaced session's teardown cannot evict the creator's new connection.
func (h *Hub) Unregister(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	current, exists := h.connections[userID]
	if !exists || current != conn {
		return
	}
	if current != nil {
		_ = current.Close()
	}
	delete(h.connections, userID)
}

func (h *Hub) IsOnline(userID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[userID]
	return exists
}

// NotifyProgress implements the profile module's ProgressNotifier. Delivery
// is best effort; a failed write drops the connection.
func (h *Hub) NotifyProgress(userID int64, step domain.Section, percentage int, status domain.ProfileStatus) {
	h.mutex.RLock()
	conn, exists := h.connections[userID]
	h.mutex.RUnlock()

	if !exists || conn == nil {
		return
	}

	ev := ProgressEvent{
		Type:       "onboarding_progress",
		NextStep:   step,
		Percentage: percentage,
		Status:     status,
		At:         time.Now(),
	}
	if err := conn.WriteJSON(ev); err != nil {
		h.Unregister(userID, conn)
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
