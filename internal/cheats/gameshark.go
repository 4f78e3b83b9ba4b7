package cheats

import (
	"fmt"
	"strconv"
)

// GameShark holds codes that overwrite RAM.
type GameShark struct {
	Codes []GameSharkCode
}

// A GameSharkCode is formatted as ABCDGHEF, where AB is the
// external RAM bank, CD is the new data, and EFGH is the address.
type GameSharkCode struct {
	ExternalRAMBank uint8
	NewData         uint8
	Address         uint16

	Name    string
	Enabled bool
	raw     string
}

func parseGameSharkCode(code string) (GameSharkCode, error) {
	if len(code) != 8 {
		return GameSharkCode{}, fmt.Errorf("%w: length %d", ErrInvalidCode, len(code))
	}

	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return GameSharkCode{}, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}

	c := GameSharkCode{
		ExternalRAMBank: uint8(v >> 24),
		NewData:         uint8(v >> 16),
		// GHEF -> EFGH
		Address: uint16(v&0xFF)<<8 | uint16(v>>8)&0xFF,
	}
	if c.Address < 0xA000 || c.Address > 0xDFFF {
		return GameSharkCode{}, fmt.Errorf("%w: address $%04X is not RAM", ErrInvalidCode, c.Address)
	}

	return c, nil
}

// NewGameShark returns an empty GameShark.
func NewGameShark() *GameShark {
	return &GameShark{}
}

// Load adds the code under name, enabled.
func (g *GameShark) Load(code, name string) error {
	c, err := parseGameSharkCode(code)
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

// Apply writes every enabled code through write.
func (g *GameShark) Apply(write func(address uint16, value uint8)) {
	for _, c := range g.Codes {
		if c.Enabled {
			write(c.Address, c.NewData)
		}
	}
}

// Enable enables every code loaded under name.
func (g *GameShark) Enable(name string) error {
	return g.setEnabled(name, true)
}

// Disable disables every code loaded under name.
func (g *GameShark) Disable(name string) error {
	return g.setEnabled(name, false)
}

func (g *GameShark) setEnabled(name string, enabled bool) error {
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
