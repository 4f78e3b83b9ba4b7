// Package display connects a running GameBoy to a display
// driver. Drivers register themselves with Install in their
// init function, and expose their options as command line flags
// through RegisterFlags.
package display

import (
	"errors"
	"flag"
	"fmt"

	"github.com/thelolagemann/dmgboy/internal/joypad"
)

// ErrUnknownDriver is returned by GetDriver for a name that
// hasn't been installed.
var ErrUnknownDriver = errors.New("display: unknown driver")

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	// Start the display driver. fb carries RGBA frames of
	// ppu.ScreenWidth x ppu.ScreenHeight pixels, and key events
	// are sent on pressed and released. Start blocks until the
	// driver is closed or Stop is called.
	Start(fb <-chan []byte, pressed, released chan<- joypad.Button) error
	// Stop the display driver.
	Stop() error
}

// DriverOption is a display driver option. This is used to
// configure a display driver.
type DriverOption struct {
	Name        string // name of the option
	Default     any    // default value of the option
	Value       any    // pointer to the value of the option
	Description string // description of the option
	Type        string // "int", "bool", "string", "float"
}

// InstalledDriver is a driver that has been installed. This is
// used to allow drivers to register their name.
type InstalledDriver struct {
	Name    string
	Options []DriverOption
	Driver
}

// InstalledDrivers is a list of all the installed drivers. This
// variable is exported so that it can be used by the main
// program to determine which drivers can be used. Drivers should
// call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name. "auto"
// selects the first installed driver.
func GetDriver(name string) (Driver, error) {
	if name == "auto" && len(InstalledDrivers) > 0 {
		return InstalledDrivers[0].Driver, nil
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, name)
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver, options []DriverOption) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:    name,
		Options: options,
		Driver:  driver,
	})
}

// RegisterFlags registers the options of every installed driver
// with fs, prefixed with the driver name, e.g. -web-addr.
func RegisterFlags(fs *flag.FlagSet) {
	for _, driver := range InstalledDrivers {
		for _, opt := range driver.Options {
			name := fmt.Sprintf("%s-%s", driver.Name, opt.Name)
			switch opt.Type {
			case "string":
				fs.StringVar(opt.Value.(*string), name, opt.Default.(string), opt.Description)
			case "bool":
				fs.BoolVar(opt.Value.(*bool), name, opt.Default.(bool), opt.Description)
			case "int":
				fs.IntVar(opt.Value.(*int), name, opt.Default.(int), opt.Description)
			case "float":
				fs.Float64Var(opt.Value.(*float64), name, opt.Default.(float64), opt.Description)
			default:
				panic(fmt.Sprintf("display: option %s has unknown type %q", name, opt.Type))
			}
		}
	}
}
