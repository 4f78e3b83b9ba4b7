package web

import (
	"net"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/dmgboy/internal/joypad"
)

const writeWait = 5 * time.Second

// Client is a connected websocket viewer.
type Client struct {
	hub  *hub
	conn *websocket.Conn
	Send chan []byte
	ID   uint8

	latency     atomic.Uint32 // smoothed round trip, in milliseconds
	connectedAt time.Time
}

// ReadPump reads key events from the client until the connection
// closes, and then unregisters the client.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}

		switch {
		case len(message) == 1 && message[0] == Closing:
			return
		case len(message) == 2 && message[0] <= joypad.ButtonDown:
			if message[1] == 0 {
				c.hub.send(c.hub.released, message[0])
			} else {
				c.hub.send(c.hub.pressed, message[0])
			}
		default:
			c.hub.log.Debugf("client %d: ignoring message %v", c.ID, message)
		}
	}
}

// WritePump writes queued messages to the client until the hub
// closes Send.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.Send {
		if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			c.hub.log.Errorf("client %d: setting write deadline: %v", c.ID, err)
			return
		}
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			c.hub.log.Debugf("client %d: write: %v", c.ID, err)
			return
		}

		// update average latency
		if tcp, ok := c.conn.UnderlyingConn().(*net.TCPConn); ok {
			if rtt, ok := roundTrip(tcp); ok {
				avg := c.latency.Load()
				c.latency.Store((avg*9 + uint32(rtt.Milliseconds())) / 10)
			}
		}
	}
	// the peer may already be gone
	if err := c.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait)); err != nil {
		c.hub.log.Debugf("client %d: close: %v", c.ID, err)
	}
}
