package cartridge

import (
	"fmt"
	"strings"
)

// Type is the cartridge type byte at 0x0147.
type Type uint8

const (
	ROM        Type = 0x00
	MBC1       Type = 0x01
	ROMRAM     Type = 0x08
	ROMRAMBATT Type = 0x09
)

var typeNames = map[Type]string{
	ROM:        "ROM ONLY",
	MBC1:       "MBC1",
	ROMRAM:     "ROM+RAM",
	ROMRAMBATT: "ROM+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unsupported (%02X)", uint8(t))
}

var ramMAP = map[uint8]uint{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0142 - Title of the game
	Title string

	CartridgeType  Type
	ROMSize        uint
	RAMSize        uint
	HeaderChecksum uint8
	GlobalChecksum uint16

	fingerprint uint64
	computed    uint8
}

// parseHeader parses the 0x50 bytes at 0x0100 - 0x014F.
func parseHeader(header []byte) Header {
	h := Header{}

	h.Title = parseTitle(header[0x34:0x43])
	h.CartridgeType = Type(header[0x47])
	// 32kB x (1 << n)
	h.ROMSize = (32 * 1024) << (header[0x48] & 0x0F)
	h.RAMSize = ramMAP[header[0x49]]
	h.HeaderChecksum = header[0x4D]
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	// x = x - byte - 1 over 0x0134 - 0x014C
	for _, b := range header[0x34:0x4D] {
		h.computed = h.computed - b - 1
	}

	return h
}

// parseTitle converts the title bytes to a string. NUL and
// other unprintable bytes become spaces, and trailing spaces
// are removed.
func parseTitle(b []byte) string {
	var s strings.Builder
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			s.WriteByte(' ')
		} else {
			s.WriteByte(c)
		}
	}
	return strings.TrimRight(s.String(), " ")
}

// ChecksumValid reports whether the header checksum at 0x014D
// matches the header contents.
func (h Header) ChecksumValid() bool {
	return h.computed == h.HeaderChecksum
}

// Fingerprint returns the xxhash digest of the ROM image,
// used to identify a ROM independent of its file name.
func (h Header) Fingerprint() uint64 {
	return h.fingerprint
}

func (h Header) String() string {
	return fmt.Sprintf("%s | Type: %s | ROM Size: %dkB | RAM Size: %dkB | %016x", h.Title, h.CartridgeType, h.ROMSize/1024, h.RAMSize/1024, h.fingerprint)
}
