package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, "warn")

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := WithComponent(NewWithLevel(&buf, "debug"), "mmu")
	l.Debugf("write to rom")

	if !strings.Contains(buf.String(), "component=mmu") {
		t.Errorf("expected component field, got %q", buf.String())
	}

	// null loggers pass through untouched
	n := NewNullLogger()
	if WithComponent(n, "cpu") != n {
		t.Errorf("expected null logger to be returned unchanged")
	}
}
