// Package cheats implements Game Genie and GameShark codes.
//
// A Game Genie sits between the cartridge and the bus and
// substitutes the bytes read from ROM, while a GameShark
// writes its values into RAM once every frame.
package cheats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrInvalidCode is returned for a code that is neither a
	// Game Genie nor a GameShark code.
	ErrInvalidCode = errors.New("cheats: invalid code")
	// ErrNotFound is returned when enabling or disabling a
	// cheat that hasn't been loaded.
	ErrNotFound = errors.New("cheats: code not found")
	// ErrDuplicate is returned when loading a code under a name
	// that is already loaded with the same code.
	ErrDuplicate = errors.New("cheats: code already loaded")
)

// Cheat is a named group of codes.
type Cheat struct {
	Name  string
	Codes []string
}

// Parse reads cheats from r, loading every code into genie or
// shark, enabled. The format is as follows:
//
//	# Cheat Name
//	ABC-DEF-GHI
//	01FF34C1
//
// A cheat may mix Game Genie and GameShark codes. Blank lines
// are ignored, and codes before the first name are grouped under
// an empty name.
func Parse(r io.Reader, genie *GameGenie, shark *GameShark) ([]Cheat, error) {
	var cheats []Cheat
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line[0] == '#' {
			cheats = append(cheats, Cheat{Name: strings.TrimSpace(line[1:])})
			continue
		}
		if len(cheats) == 0 {
			cheats = append(cheats, Cheat{})
		}
		current := &cheats[len(cheats)-1]

		var err error
		switch {
		case isGameGenie(line):
			err = genie.Load(line, current.Name)
		case len(line) == 8:
			err = shark.Load(line, current.Name)
		default:
			err = ErrInvalidCode
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, err)
		}
		current.Codes = append(current.Codes, line)
	}

	return cheats, scanner.Err()
}

// LoadFile parses the cheat file at filename.
func LoadFile(filename string, genie *GameGenie, shark *GameShark) ([]Cheat, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, genie, shark)
}

// Write writes cheats to w in the format read by Parse.
func Write(w io.Writer, cheats []Cheat) error {
	for _, c := range cheats {
		if _, err := fmt.Fprintf(w, "# %s\n", c.Name); err != nil {
			return err
		}
		for _, code := range c.Codes {
			if _, err := fmt.Fprintln(w, code); err != nil {
				return err
			}
		}
	}

	return nil
}
