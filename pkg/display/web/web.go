// Package web provides a display driver that streams frames to
// websocket clients, and accepts their key presses.
package web

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/thelolagemann/dmgboy/internal/joypad"
	"github.com/thelolagemann/dmgboy/pkg/display"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

type driver struct {
	addr string

	mu     sync.Mutex
	hub    *hub
	server *http.Server
	log    log.Logger
}

var d = &driver{log: log.WithComponent(log.New(), "web")}

func init() {
	display.Install("web", d, []display.DriverOption{
		{
			Name:        "addr",
			Default:     ":8090",
			Value:       &d.addr,
			Description: "address to serve the websocket on",
			Type:        "string",
		},
	})
}

// Start serves websocket clients on the configured address until
// Stop is called.
func (d *driver) Start(fb <-chan []byte, pressed, released chan<- joypad.Button) error {
	d.mu.Lock()
	d.hub = newHub(pressed, released, d.log)
	d.server = &http.Server{Addr: d.addr, Handler: d.hub}
	h, srv := d.hub, d.server
	d.mu.Unlock()

	go h.run(fb)
	d.log.Infof("serving on %s", d.addr)

	err := srv.ListenAndServe()
	h.close()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop disconnects every client and shuts the server down.
func (d *driver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.server == nil {
		return nil
	}

	d.hub.close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.server.Shutdown(ctx)
}
