package tests

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thelolagemann/dmgboy/internal/cartridge"
	"github.com/thelolagemann/dmgboy/internal/gameboy"
)

var readme = flag.String("readme", "", "write a markdown table of the ROM results to this file")

// frameLimit is how long a test ROM gets to report a result.
const frameLimit = 60 * 30

// romRoot holds the test ROM suites, laid out as
// roms/<suite>/<collection>/<name>.gb.
const romRoot = "roms"

func Test_All(t *testing.T) {
	table := &TestTable{}
	testMooneye(table)
	testBlargg(table)

	for _, suite := range table.testSuites {
		t.Run(suite.name, func(t *testing.T) {
			for _, collection := range suite.collections {
				t.Run(collection.name, func(t *testing.T) {
					if len(collection.tests) == 0 {
						t.Skip("no roms found")
					}
					for _, test := range collection.tests {
						test.Run(t)
					}
				})
			}
		})
	}

	if *readme != "" {
		if err := os.WriteFile(*readme, []byte(table.CreateReadme()), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

// TestTable is a collection of many TestSuite(s).
type TestTable struct {
	testSuites []*TestSuite
}

// CreateReadme renders the results as markdown.
func (t *TestTable) CreateReadme() string {
	var sb strings.Builder
	sb.WriteString("# Table of Contents\n")
	for _, suite := range t.testSuites {
		sb.WriteString("* [" + suite.name + "](#" + suite.name + ")\n")
		for _, collection := range suite.collections {
			sb.WriteString("  * [" + collection.name + "](#" + collection.name + ")\n")
		}
	}

	for _, suite := range t.testSuites {
		sb.WriteString("# " + suite.name + "\n")
		for _, collection := range suite.collections {
			sb.WriteString("## " + collection.name + "\n")
			sb.WriteString(createMarkdownTable(collection.tests))
		}
	}

	return sb.String()
}

// NewTestSuite adds a suite to the table.
func (t *TestTable) NewTestSuite(name string) *TestSuite {
	suite := &TestSuite{name: name}
	t.testSuites = append(t.testSuites, suite)
	return suite
}

// TestSuite is a collection of tests (often by a single author, or for a single
// feature) that can be run together.
type TestSuite struct {
	name        string
	collections []*TestCollection
}

// NewTestCollectionFromDir adds a collection holding a test,
// created by newTest, for every ROM in dir. A missing directory
// gives an empty collection.
func (t *TestSuite) NewTestCollectionFromDir(dir string, newTest func(romFile string) ROMTest) *TestCollection {
	collection := &TestCollection{name: filepath.Base(dir)}
	t.collections = append(t.collections, collection)

	files, err := os.ReadDir(dir)
	if err != nil {
		return collection
	}
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".gb" {
			continue
		}
		collection.Add(newTest(filepath.Join(dir, file.Name())))
	}

	return collection
}

type TestCollection struct {
	tests []ROMTest
	name  string
}

func (t *TestCollection) Add(test ROMTest) {
	t.tests = append(t.tests, test)
}

type ROMTest interface {
	Run(t *testing.T)
	Passed() bool
	Name() string
}

func createMarkdownTable(tests []ROMTest) string {
	table := "| Test | Passing |\n| ---- | ------- |\n"
	for _, test := range tests {
		pass := "✅"
		if !test.Passed() {
			pass = "❌"
		}
		table += "| " + test.Name() + " | " + pass + " |\n"
	}
	return table
}

// loadROM reads romFile and creates a GameBoy for it, skipping
// the test for cartridges that need a memory bank controller.
func loadROM(t *testing.T, romFile string, opts ...gameboy.Opt) *gameboy.GameBoy {
	t.Helper()
	b, err := os.ReadFile(romFile)
	if err != nil {
		t.Fatal(err)
	}

	g, err := gameboy.NewGameBoy(b, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if typ := g.MMU.Cart.Header().CartridgeType; typ != cartridge.ROM || len(b) > cartridge.Size {
		t.Skipf("%s needs a %s cartridge", filepath.Base(romFile), typ)
	}
	return g
}
