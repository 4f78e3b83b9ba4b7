package serial

import (
	"bytes"
	"testing"

	"github.com/thelolagemann/dmgboy/internal/types"
	"github.com/thelolagemann/dmgboy/pkg/log"
)

func TestController(t *testing.T) {
	c := NewController(log.NewNullLogger())
	for _, b := range []byte("Passed") {
		c.Write(types.SB, b)
		c.Write(types.SC, 0x81)
	}

	if c.Output() != "Passed" {
		t.Errorf("expected serial output %q, got %q", "Passed", c.Output())
	}
	if c.Read(types.SB) != 0 || c.Read(types.SC) != 0 {
		t.Errorf("serial reads should return 0")
	}
}

func TestController_Attach(t *testing.T) {
	var buf bytes.Buffer
	c := NewController(log.NewNullLogger())
	c.Attach(&buf)
	c.Write(types.SB, 'A')
	c.Write(types.SC, 'B')

	if buf.String() != "A" {
		t.Errorf("expected only SB writes to be forwarded, got %q", buf.String())
	}
}
