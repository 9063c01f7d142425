// emuwalker runs the Pokéwalker core in a desktop window. The flash
// ROM and EEPROM images are required; the window shows the 96x64 LCD
// scaled up, with the three hardware buttons on the arrow keys and
// space bar.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ankeraout/emuwalker/core"
)

const screenScale = 4

func main() {
	romPath := flag.String("rom", "", "Path to the flash ROM image (49152 bytes)")
	eepromPath := flag.String("eeprom", "", "Path to the EEPROM image (65536 bytes)")
	flag.Parse()

	if *romPath == "" || *eepromPath == "" {
		fmt.Fprintln(os.Stderr, "usage: emuwalker --rom <flash.bin> --eeprom <eeprom.bin>")
		os.Exit(1)
	}

	c := core.New()
	if err := loadFile(c, core.FileFlashROM, *romPath); err != nil {
		log.Fatalf("emuwalker: %v", err)
	}
	if err := loadFile(c, core.FileEEPROM, *eepromPath); err != nil {
		log.Fatalf("emuwalker: %v", err)
	}
	if err := c.Init(); err != nil {
		log.Fatalf("emuwalker: %v", err)
	}

	ebiten.SetWindowSize(core.ScreenWidth*screenScale, core.ScreenHeight*screenScale)
	ebiten.SetWindowTitle("emuwalker")

	if err := ebiten.RunGame(newGame(c)); err != nil {
		log.Fatalf("emuwalker: %v", err)
	}
}

// loadFile reads an image from disk and installs it in the core.
func loadFile(c *core.Core, kind core.File, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := c.LoadFile(kind, data); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
