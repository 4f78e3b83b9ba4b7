//go:build !linux

package web

import (
	"net"
	"time"
)

// roundTrip isn't available outside of linux.
func roundTrip(*net.TCPConn) (time.Duration, bool) {
	return 0, false
}
