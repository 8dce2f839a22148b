package core

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadHub tracks the websocket connections of dev-mode browser tabs
// and tells them to refresh when the template watcher fires.
type ReloadHub interface {
	Notify()
	ServeWS(http.ResponseWriter, *http.Request)
}

type reloadHub struct {
	mu       sync.Mutex
	conns    []*websocket.Conn
	upgrader websocket.Upgrader
}

var NewReloadHub = func() ReloadHub {
	return &reloadHub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *reloadHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.conns = append(h.conns, conn)
	h.mu.Unlock()

	// Drain until the peer goes away, then drop it from the list.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				break
			}
		}
		h.drop(conn)
		conn.Close()
	}()
}

func (h *reloadHub) Notify() {
	h.mu.Lock()
	defer h.mu.Unlock()

	alive := h.conns[:0]
	for _, conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			conn.Close()
			continue
		}
		alive = append(alive, conn)
	}
	h.conns = alive
}

func (h *reloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, c := range h.conns {
		if c == conn {
			h.conns = append(h.conns[:i], h.conns[i+1:]...)
			return
		}
	}
}
