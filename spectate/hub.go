// Package spectate streams live frames to read-only websocket viewers.
package spectate

import (
	"encoding/json"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/snowhop/engine"
	"github.com/lixenwraith/snowhop/status"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 8
)

// frameMessage is the wire shape of a broadcast frame
type frameMessage struct {
	Type  string       `json:"type"`
	Frame engine.Frame `json:"frame"`
}

type client struct {
	id   uint64
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// Hub fans frames out to connected spectators
// Broadcast never blocks the caller: a client whose buffer is full is dropped
type Hub struct {
	mu      sync.Mutex
	clients map[uint64]*client
	nextID  atomic.Uint64
	closed  bool

	logger *log.Logger

	statClients *atomic.Int64
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
}

// NewHub creates a hub reporting into reg; a nil logger uses log.Default()
func NewHub(reg *status.Registry, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:     make(map[uint64]*client),
		logger:      logger,
		statClients: reg.Ints.Get("spectate.clients"),
		statFrames:  reg.Ints.Get("spectate.frames"),
		statDropped: reg.Ints.Get("spectate.dropped"),
	}
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast encodes f once and queues it for every client
func (h *Hub) Broadcast(f engine.Frame) {
	h.mu.Lock()
	if len(h.clients) == 0 || h.closed {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	data, err := json.Marshal(frameMessage{Type: "frame", Frame: f})
	if err != nil {
		h.logger.Printf("spectate: marshal frame %d: %v", f.Tick, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Printf("spectate: client %d too slow, dropping", id)
			h.removeLocked(id)
			h.statDropped.Add(1)
		}
	}
	h.statFrames.Add(1)
}

// Serve registers conn and pumps frames to it until the peer leaves
// Blocks until the connection ends
func (h *Hub) Serve(conn *websocket.Conn) {
	c := &client{
		id:   h.nextID.Add(1),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		conn.Close()
		return
	}
	h.clients[c.id] = c
	h.statClients.Store(int64(len(h.clients)))
	h.mu.Unlock()
	h.logger.Printf("spectate: client %d connected from %s", c.id, conn.RemoteAddr())

	// Reader only watches for the peer closing; spectators send nothing meaningful
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.remove(c.id)
				return
			}
		}
	}()

	for data := range c.send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Printf("spectate: write to client %d: %v", c.id, err)
			h.remove(c.id)
			break
		}
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()
	h.logger.Printf("spectate: client %d disconnected", c.id)
}

// Close disconnects every client and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id := range h.clients {
		h.removeLocked(id)
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(id)
}

func (h *Hub) removeLocked(id uint64) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	delete(h.clients, id)
	c.close()
	h.statClients.Store(int64(len(h.clients)))
}
