package cheats

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGameGenie_Parse(t *testing.T) {
	tests := []struct {
		code    string
		address uint16
		newData uint8
		oldData uint8
		compare bool
	}{
		{"C9A-12B-8EA", 0x4A12, 0xC9, 0x18, true},
		{"C9A-12B", 0x4A12, 0xC9, 0, false},
		{"00F-FFF", 0x0FFF, 0x00, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := parseGameGenieCode(tt.code)
			if err != nil {
				t.Fatal(err)
			}
			if c.Address != tt.address || c.NewData != tt.newData || c.OldData != tt.oldData || c.Compare != tt.compare {
				t.Errorf("got %+v", c)
			}
		})
	}

	for _, code := range []string{"C9A12B8EA", "XYZ-12B", "C9A-12B-8E"} {
		if _, err := parseGameGenieCode(code); !errors.Is(err, ErrInvalidCode) {
			t.Errorf("%s: expected ErrInvalidCode, got %v", code, err)
		}
	}
}

func TestGameGenie_Read(t *testing.T) {
	g := NewGameGenie()
	if err := g.Load("C9A-12B-8EA", "infinite lives"); err != nil {
		t.Fatal(err)
	}

	if v := g.Read(0x4A12, 0x18); v != 0xC9 {
		t.Errorf("expected patched value $C9, got $%02X", v)
	}
	if v := g.Read(0x4A12, 0x19); v != 0x19 {
		t.Errorf("old data mismatch should not patch, got $%02X", v)
	}
	if v := g.Read(0x4A13, 0x18); v != 0x18 {
		t.Errorf("other address should not patch, got $%02X", v)
	}

	if err := g.Disable("infinite lives"); err != nil {
		t.Fatal(err)
	}
	if v := g.Read(0x4A12, 0x18); v != 0x18 {
		t.Errorf("disabled code should not patch, got $%02X", v)
	}
	if err := g.Enable("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := g.Load("C9A-12B-8EA", "infinite lives"); !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestGameShark(t *testing.T) {
	s := NewGameShark()
	if err := s.Load("01FF34C1", "max money"); err != nil {
		t.Fatal(err)
	}
	c := s.Codes[0]
	if c.ExternalRAMBank != 0x01 || c.NewData != 0xFF || c.Address != 0xC134 {
		t.Fatalf("got %+v", c)
	}

	written := map[uint16]uint8{}
	write := func(address uint16, value uint8) { written[address] = value }
	s.Apply(write)
	if written[0xC134] != 0xFF {
		t.Errorf("expected $FF written to $C134, got %v", written)
	}

	delete(written, 0xC134)
	s.Disable("max money")
	s.Apply(write)
	if len(written) != 0 {
		t.Errorf("disabled code should not write, got %v", written)
	}

	if err := s.Load("01FF3401", "rom"); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode for a ROM address, got %v", err)
	}
}

func TestParse(t *testing.T) {
	const file = `# Infinite lives
C9A-12B-8EA

# Max money
01FF34C1
01FF35C1
`
	genie, shark := NewGameGenie(), NewGameShark()
	cheats, err := Parse(strings.NewReader(file), genie, shark)
	if err != nil {
		t.Fatal(err)
	}
	if len(cheats) != 2 || cheats[0].Name != "Infinite lives" || len(cheats[1].Codes) != 2 {
		t.Fatalf("unexpected cheats %+v", cheats)
	}
	if len(genie.Codes) != 1 || len(shark.Codes) != 2 {
		t.Fatalf("expected 1 genie and 2 shark codes, got %d and %d", len(genie.Codes), len(shark.Codes))
	}

	var buf bytes.Buffer
	if err := Write(&buf, cheats); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(&buf, NewGameGenie(), NewGameShark()); err != nil {
		t.Errorf("written file did not parse: %v", err)
	}

	_, err = Parse(strings.NewReader("# bad\nnot-a-code\n"), genie, shark)
	if !errors.Is(err, ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
}
