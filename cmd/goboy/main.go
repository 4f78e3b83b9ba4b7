package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/thelolagemann/dmgboy/internal/cheats"
	"github.com/thelolagemann/dmgboy/internal/gameboy"
	"github.com/thelolagemann/dmgboy/internal/ppu/palette"
	"github.com/thelolagemann/dmgboy/pkg/display"
	_ "github.com/thelolagemann/dmgboy/pkg/display/ebiten"
	_ "github.com/thelolagemann/dmgboy/pkg/display/web"
	"github.com/thelolagemann/dmgboy/pkg/log"
	"github.com/thelolagemann/dmgboy/pkg/utils"
	"github.com/thelolagemann/dmgboy/pkg/utils/desktop"
)

var palettes = map[string]int{
	"greyscale": palette.Greyscale,
	"green":     palette.Green,
	"red":       palette.Red,
	"yellow":    palette.Yellow,
}

func main() {
	romFile := flag.String("rom", "", "The rom file to load (.gb, .zip, .7z or .gz)")
	bootROM := flag.String("boot", "", "The boot rom file to load")
	cheatFile := flag.String("cheats", "", "A file of Game Genie and GameShark codes to apply")
	skipBoot := flag.Bool("skip-boot", false, "Start in the post-boot state even if a boot rom is given")
	displayDriver := flag.String("driver", "auto", "The display driver to use. Can be auto, ebiten, web or headless")
	frames := flag.Int("frames", 60, "Number of frames to run in headless mode")
	snapshot := flag.String("snapshot", "", "Write the last frame to this BMP file in headless mode")
	scale := flag.Int("scale", 1, "Scale factor of the snapshot")
	paletteName := flag.String("palette", "greyscale", "The colour scheme. Can be greyscale, green, red or yellow")
	logLevel := flag.String("log-level", "info", "The log level. Can be debug, info, warn or error")

	display.RegisterFlags(flag.CommandLine)
	flag.Parse()

	logger := log.NewWithLevel(os.Stderr, *logLevel)

	scheme, ok := palettes[strings.ToLower(*paletteName)]
	if !ok {
		logger.Errorf("unknown palette %q", *paletteName)
		os.Exit(2)
	}

	// ask for a rom if none was given
	if *romFile == "" {
		file, err := desktop.AskForFile("Open ROM", ".")
		if err != nil {
			logger.Errorf("no rom selected: %v", err)
			os.Exit(2)
		}
		*romFile = file
	}

	rom, err := utils.LoadFile(*romFile)
	if err != nil {
		logger.Errorf("loading rom: %v", err)
		os.Exit(1)
	}

	opts := []gameboy.Opt{gameboy.WithLogger(logger)}
	if *bootROM != "" {
		boot, err := utils.LoadFile(*bootROM)
		if err != nil {
			logger.Errorf("loading boot rom: %v", err)
			os.Exit(1)
		}
		opts = append(opts, gameboy.WithBootROM(boot))
	}
	if *cheatFile != "" {
		genie, shark := cheats.NewGameGenie(), cheats.NewGameShark()
		loaded, err := cheats.LoadFile(*cheatFile, genie, shark)
		if err != nil {
			logger.Errorf("loading cheats: %v", err)
			os.Exit(1)
		}
		logger.Infof("loaded %d cheats from %s", len(loaded), *cheatFile)
		opts = append(opts, gameboy.WithCheats(genie, shark))
	}
	if *skipBoot {
		opts = append(opts, gameboy.SkipBoot())
	}
	if *displayDriver == "headless" {
		opts = append(opts, gameboy.WithSerialOutput(os.Stdout))
	}

	gb, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		logger.Errorf("creating gameboy: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *displayDriver == "headless" {
		err = headless(ctx, gb, *frames, *snapshot, *scale, palette.Schemes[scheme])
	} else {
		var driver display.Driver
		driver, err = display.GetDriver(*displayDriver)
		if err == nil {
			err = display.Run(ctx, gb, driver, palette.Schemes[scheme])
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, gb)
		os.Exit(1)
	}
}

// headless runs the given number of frames without a display and
// prints the state the emulation finished in.
func headless(ctx context.Context, gb *gameboy.GameBoy, frames int, snapshot string, scale int, scheme palette.Scheme) error {
	if frames <= 0 {
		return errors.New("headless mode needs a positive -frames")
	}
	if err := gb.Run(ctx, frames); err != nil {
		return err
	}

	fmt.Println(gb)
	fmt.Printf("Fingerprint: %016x\n", gb.MMU.Cart.Header().Fingerprint())
	fmt.Printf("Frame: %016x\n", gb.PPU.Frame().Hash())
	for _, d := range gb.CPU.Disassemble(gb.MMU, gb.CPU.PC, 5) {
		fmt.Println(d)
	}

	if snapshot != "" {
		img := utils.ScaleImage(utils.FrameToImage(gb.PPU.Frame(), scheme), scale)
		if err := utils.SaveBMP(snapshot, img); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
	}
	return nil
}
