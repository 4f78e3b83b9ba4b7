package web

import (
	"encoding/binary"
	"net/http"
	"time"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

// cacheSize is the number of frames a client is expected to keep.
const cacheSize = 256

var upgrader = websocket.Upgrader{
	ReadBufferSize:  64,
	WriteBufferSize: 160 * 144 * 4,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type hub struct {
	clients              map[*Client]bool
	register, unregister chan *Client
	pressed, released    chan<- joypad.Button
	done                 chan struct{}

	frames        *cache
	lastHash      uint64
	lastFrame     []byte // last Frame message, replayed to new clients
	framesSkipped uint32
	currentID     uint8
	infoInterval  time.Duration

	log log.Logger
}

func newHub(pressed, released chan<- joypad.Button, l log.Logger) *hub {
	return &hub{
		clients:      make(map[*Client]bool),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		pressed:      pressed,
		released:     released,
		done:         make(chan struct{}),
		frames:       newCache(cacheSize),
		infoInterval: time.Second,
		log:          l,
	}
}

// ServeHTTP upgrades the request to a websocket and registers a
// new client with the hub.
func (h *hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Errorf("upgrading %s: %v", r.RemoteAddr, err)
		return
	}

	c := &Client{
		hub:         h,
		conn:        conn,
		Send:        make(chan []byte, 16),
		connectedAt: time.Now(),
	}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.ReadPump()
	go c.WritePump()
}

// run owns the client set. It assigns IDs, encodes frames from fb
// and fans them out, until the hub is closed.
func (h *hub) run(fb <-chan []byte) {
	ticker := time.NewTicker(h.infoInterval)
	defer ticker.Stop()

	for {
		select {
		case c := <-h.register:
			h.currentID++
			c.ID = h.currentID
			h.clients[c] = true
			h.frames.reset() // the new client holds no frames
			h.log.Infof("client %d connected from %s", c.ID, c.conn.RemoteAddr())

			c.Send <- []byte{ClientInfo, c.ID}
			if h.lastFrame != nil {
				c.Send <- h.lastFrame
			}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.Send)
				h.log.Infof("client %d disconnected after %s", c.ID, time.Since(c.connectedAt).Round(time.Second))
			}
		case frame, ok := <-fb:
			if !ok {
				fb = nil
				continue
			}
			for _, msg := range h.encode(frame) {
				h.broadcast(msg)
			}
		case <-ticker.C:
			if len(h.clients) > 0 {
				h.broadcast(h.info())
			}
		case <-h.done:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.Send)
			}
			return
		}
	}
}

// encode turns a frame into the messages that should be sent for
// it. A frame identical to the previous one produces none.
func (h *hub) encode(frame []byte) [][]byte {
	hash := xxhash.Sum64(frame)
	if hash == h.lastHash && h.lastFrame != nil {
		h.framesSkipped++
		return nil
	}
	h.lastHash = hash

	var msgs [][]byte
	if h.framesSkipped > 0 {
		skip := []byte{FrameSkip, 0, 0, 0, 0}
		binary.LittleEndian.PutUint32(skip[1:], h.framesSkipped)
		msgs = append(msgs, skip)
		h.framesSkipped = 0
	}

	if slot := h.frames.index(hash); slot != -1 {
		return append(msgs, []byte{FrameCache, uint8(slot), uint8(slot >> 8)})
	}

	slot := h.frames.add(hash)
	msg := make([]byte, 3+len(frame))
	msg[0] = Frame
	binary.LittleEndian.PutUint16(msg[1:], uint16(slot))
	copy(msg[3:], frame)
	h.lastFrame = msg

	return append(msgs, msg)
}

// broadcast queues msg for every client, dropping it for clients
// that have fallen behind.
func (h *hub) broadcast(msg []byte) {
	for c := range h.clients {
		select {
		case c.Send <- msg:
		default:
			h.log.Debugf("client %d: send buffer full, dropping message", c.ID)
		}
	}
}

// info encodes a ServerInfo message.
func (h *hub) info() []byte {
	msg := []byte{ServerInfo}
	for c := range h.clients {
		latency := c.latency.Load()
		msg = append(msg, c.ID, uint8(latency), uint8(latency>>8))
	}
	return msg
}

// send delivers a key event without blocking the read pump.
func (h *hub) send(ch chan<- joypad.Button, b joypad.Button) {
	select {
	case ch <- b:
	case <-h.done:
	default:
		h.log.Warnf("dropped key event for button %d", b)
	}
}

func (h *hub) close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}
