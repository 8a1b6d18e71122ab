package dashboard

import (
	"sync"
	"time"

	"barbercrm/internal/observability"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

type liveConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (lc *liveConn) writeJSON(v any, wait time.Duration) error {
	lc.writeMu.Lock()
	defer lc.writeMu.Unlock()
	if err := lc.conn.SetWriteDeadline(time.Now().Add(wait)); err != nil {
		return err
	}
	return lc.conn.WriteJSON(v)
}

// Hub tracks the open dashboard websockets of every branch. A branch may have
// several open tabs.
type Hub struct {
	connections map[int64]map[*websocket.Conn]*liveConn
	mutex       sync.RWMutex
	// a peer that does not drain its socket within writeWait is dropped
	writeWait time.Duration
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]map[*websocket.Conn]*liveConn),
		writeWait:   writeWait,
	}
}

func (h *Hub) Register(branchID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	conns, ok := h.connections[branchID]
	if !ok {
		conns = make(map[*websocket.Conn]*liveConn)
		h.connections[branchID] = conns
	}
	if _, exists := conns[conn]; !exists {
		conns[conn] = &liveConn{conn: conn}
		observability.LiveConnections.Inc()
	}
}

func (h *Hub) Unregister(branchID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.unregisterLocked(branchID, conn)
}

func (h *Hub) unregisterLocked(branchID int64, conn *websocket.Conn) {
	conns, ok := h.connections[branchID]
	if !ok {
		return
	}
	if _, exists := conns[conn]; exists {
		_ = conn.Close()
		delete(conns, conn)
		observability.LiveConnections.Dec()
	}
	if len(conns) == 0 {
		delete(h.connections, branchID)
	}
}

// SendToBranch writes message to every connection of the branch and returns
// how many writes succeeded. Failed connections are dropped.
func (h *Hub) SendToBranch(branchID int64, message any) int {
	h.mutex.RLock()
	targets := make([]*liveConn, 0, len(h.connections[branchID]))
	for _, lc := range h.connections[branchID] {
		targets = append(targets, lc)
	}
	h.mutex.RUnlock()

	sent := 0
	for _, lc := range targets {
		if err := lc.writeJSON(message, h.writeWait); err != nil {
			h.Unregister(branchID, lc.conn)
			continue
		}
		sent++
	}
	return sent
}

// Send writes to one registered connection.
func (h *Hub) Send(branchID int64, conn *websocket.Conn, message any) error {
	h.mutex.RLock()
	lc, ok := h.connections[branchID][conn]
	h.mutex.RUnlock()
	if !ok {
		return ErrNotSubscribed
	}
	if err := lc.writeJSON(message, h.writeWait); err != nil {
		h.Unregister(branchID, conn)
		return err
	}
	return nil
}

func (h *Hub) IsOnline(branchID int64) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections[branchID]) > 0
}

func (h *Hub) GetOnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	n := 0
	for _, conns := range h.connections {
		n += len(conns)
	}
	return n
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for branchID, conns := range h.connections {
		for conn := range conns {
			h.unregisterLocked(branchID, conn)
		}
	}
}
