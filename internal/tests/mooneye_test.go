package tests

import (
	"path/filepath"
	"testing"

	"github.com/thelolagemann/dmgboy/internal/gameboy"
)

// ldBB is the opcode mooneye test ROMs execute once they have
// stored their result.
const ldBB = 0x40

type mooneyeTest struct {
	romFile string
	passed  bool
}

func (m *mooneyeTest) Name() string {
	return filepath.Base(m.romFile)
}

func (m *mooneyeTest) Run(t *testing.T) {
	t.Run(m.Name(), func(t *testing.T) {
		m.passed = checkMooneye(t, loadROM(t, m.romFile))
	})
}

func (m *mooneyeTest) Passed() bool {
	return m.passed
}

func testMooneye(table *TestTable) {
	tS := table.NewTestSuite("mooneye")
	for _, dir := range []string{"bits", "instr", "interrupts", "timer", "misc"} {
		tS.NewTestCollectionFromDir(filepath.Join(romRoot, "mooneye", "acceptance", dir), func(romFile string) ROMTest {
			return &mooneyeTest{romFile: romFile}
		})
	}
}

// runToBreakpoint steps g until it is about to execute LD B,B,
// reporting whether it got there in time.
func runToBreakpoint(g *gameboy.GameBoy) (bool, error) {
	limit := g.CPU.Cycles + frameLimit*gameboy.CyclesPerFrame
	for g.CPU.Cycles < limit {
		if g.MMU.Read(g.CPU.PC) == ldBB {
			return true, nil
		}
		if _, err := g.Step(); err != nil {
			return false, err
		}
	}
	return false, nil
}

// checkMooneye runs a mooneye ROM until the breakpoint. A
// passing ROM leaves the fibonacci sequence 3/5/8/13/21/34 in
// the registers B, C, D, E, H, L.
func checkMooneye(t *testing.T, g *gameboy.GameBoy) bool {
	t.Helper()
	reached, err := runToBreakpoint(g)
	if err != nil {
		t.Errorf("%v\n%s", err, g)
		return false
	}
	if !reached {
		t.Errorf("breakpoint not reached after %d frames\n%s", frameLimit, g)
		return false
	}

	passed := true
	expected := []uint8{3, 5, 8, 13, 21, 34}
	for i, r := range []uint8{g.CPU.B, g.CPU.C, g.CPU.D, g.CPU.E, g.CPU.H, g.CPU.L} {
		if r != expected[i] {
			t.Errorf("expected register %s to be %d, got %d", "BCDEHL"[i:i+1], expected[i], r)
			passed = false
		}
	}
	return passed
}

func TestMooneye_Harness(t *testing.T) {
	rom := make([]byte, 0x8000)
	copy(rom[0x100:], []byte{
		0x06, 3, // LD B,3
		0x0E, 5, // LD C,5
		0x16, 8, // LD D,8
		0x1E, 13, // LD E,13
		0x26, 21, // LD H,21
		0x2E, 34, // LD L,34
		ldBB,
		0x18, 0xFE, // JR -2
	})

	g, err := gameboy.NewGameBoy(rom)
	if err != nil {
		t.Fatal(err)
	}
	if !checkMooneye(t, g) {
		t.Fatal("expected the harness rom to pass")
	}
	if g.CPU.PC != 0x010C {
		t.Errorf("expected to stop at the breakpoint, PC $%04X", g.CPU.PC)
	}
}
