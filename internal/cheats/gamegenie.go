package cheats

import (
	"fmt"
	"strconv"
	"strings"
)

// GameGenie patches the values read from ROM.
type GameGenie struct {
	Codes []GameGenieCode
}

// A GameGenieCode is formatted as ABC-DEF or ABC-DEF-GHI. AB is
// the new data, FCDE is the address XORed with 0xF000, and GI is
// the old data XORed with 0xBA and rotated left by 2. H is
// unknown. The replacement only happens while the ROM holds the
// old data, so a code meant for one bank leaves the others alone.
type GameGenieCode struct {
	NewData uint8
	Address uint16
	OldData uint8
	Compare bool // whether OldData was given

	Name    string
	Enabled bool
	raw     string
}

func isGameGenie(code string) bool {
	return (len(code) == 7 || len(code) == 11) && code[3] == '-'
}

func parseGameGenieCode(code string) (GameGenieCode, error) {
	if !isGameGenie(code) {
		return GameGenieCode{}, fmt.Errorf("%w: length %d", ErrInvalidCode, len(code))
	}
	digits := strings.ReplaceAll(code, "-", "")

	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return GameGenieCode{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	if len(digits) == 6 {
		v <<= 12
	}

	c := GameGenieCode{
		NewData: uint8(v >> 28),
		// FCDE
		Address: uint16(v&0xF000|(v>>16)&0x0FFF) ^ 0xF000,
		Compare: len(digits) == 9,
	}
	if c.Compare {
		gi := uint8((v>>4)&0xF0 | v&0x0F)
		c.OldData = (gi>>2 | gi<<6) ^ 0xBA
	}

	return c, nil
}

// NewGameGenie returns an empty GameGenie.
func NewGameGenie() *GameGenie {
	return &GameGenie{}
}

// Load adds the code under name, enabled.
func (g *GameGenie) Load(code, name string) error {
	c, err := parseGameGenieCode(code)
	if err != nil {
		return err
	}
	for _, existing := range g.Codes {
		if existing.Name == name && existing.raw == code {
			return ErrDuplicate
		}
	}

	c.Name = name
	c.Enabled = true
	c.raw = code
	g.Codes = append(g.Codes, c)
	return nil
}

// Read returns the value the bus sees at address, given the value
// the ROM holds there.
func (g *GameGenie) Read(address uint16, value uint8) uint8 {
	for _, c := range g.Codes {
		if c.Enabled && c.Address == address && (!c.Compare || c.OldData == value) {
			return c.NewData
		}
	}

	return value
}

// Enable enables every code loaded under name.
func (g *GameGenie) Enable(name string) error {
	return g.setEnabled(name, true)
}

// Disable disables every code loaded under name.
func (g *GameGenie) Disable(name string) error {
	return g.setEnabled(name, false)
}

func (g *GameGenie) setEnabled(name string, enabled bool) error {
	found := false
	for i := range g.Codes {
		if g.Codes[i].Name == name {
			g.Codes[i].Enabled = enabled
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
