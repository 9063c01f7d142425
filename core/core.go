// Package core owns the emulated machine: CPU, bus, memories, serial
// unit and framebuffer. The host drives it through Step or
// FrameAdvance and reads the video buffer when OnVBlank fires.
package core

import (
	"errors"
	"fmt"

	"github.com/Ankeraout/emuwalker/bus"
	"github.com/Ankeraout/emuwalker/cpu"
	"github.com/Ankeraout/emuwalker/ram"
	"github.com/Ankeraout/emuwalker/rom"
	"github.com/Ankeraout/emuwalker/ssu"
)

// Screen dimensions of the Pokéwalker LCD.
const (
	ScreenWidth  = 96
	ScreenHeight = 64
)

// EEPROMSize is the size of the external EEPROM image.
const EEPROMSize = 65536

// instructionsPerFrame is the deterministic frame budget: the LCD
// controller is not modelled, so a frame is a fixed number of executed
// instructions. The guest clock runs at 3.6864 MHz; at a rough average
// of four states per instruction that is ~15360 instructions per
// 1/60 s frame.
const instructionsPerFrame = 15360

// File identifies a loadable image.
type File int

const (
	// FileFlashROM is the 48 KiB on-chip flash image.
	FileFlashROM File = iota
	// FileEEPROM is the 64 KiB external EEPROM image.
	FileEEPROM
)

// Key identifies one of the three hardware buttons.
type Key int

const (
	KeyLeft Key = iota
	KeyMiddle
	KeyRight
)

// KeyState is a button position.
type KeyState int

const (
	KeyReleased KeyState = iota
	KeyPressed
)

// Load-time failure classes, so the host can branch on them with
// errors.Is.
var (
	// ErrBadFileSize reports a ROM or EEPROM image of the wrong length.
	ErrBadFileSize = errors.New("core: bad file size")
	// ErrUnknownFile reports a File value the core does not know.
	ErrUnknownFile = errors.New("core: unknown file")
	// ErrNotLoaded reports that Init ran before the flash ROM was loaded.
	ErrNotLoaded = errors.New("core: flash ROM not loaded")
)

// Core is the owning aggregate for the whole machine.
type Core struct {
	CPU *cpu.CPU
	Bus *bus.Bus
	ROM *rom.ROM
	RAM *ram.RAM
	SSU *ssu.SSU

	// OnVBlank, when set, is invoked by FrameAdvance once the frame
	// budget has run; the host reads VideoBuffer and pumps input from
	// inside it.
	OnVBlank func()

	video  [ScreenWidth * ScreenHeight]uint32
	eeprom []byte
	keys   [3]KeyState

	romLoaded bool
}

// New creates an empty core. Images must be loaded with LoadFile and
// the core wired with Init before the first Step.
func New() *Core {
	r := rom.New()
	m := ram.New()
	s := ssu.New()
	b := bus.New(r, m, s)

	c := &Core{
		CPU: cpu.New(b),
		Bus: b,
		ROM: r,
		RAM: m,
		SSU: s,
	}
	c.clearVideo()
	return c
}

// LoadFile installs an image. The buffer is copied; the caller keeps
// ownership of its slice. Sizes are fixed: 49152 bytes of flash ROM,
// 65536 bytes of EEPROM.
func (c *Core) LoadFile(kind File, data []byte) error {
	switch kind {
	case FileFlashROM:
		if len(data) != rom.Size {
			return fmt.Errorf("%w: flash ROM is %d bytes, want %d", ErrBadFileSize, len(data), rom.Size)
		}
		image := make([]byte, rom.Size)
		copy(image, data)
		if err := c.ROM.Init(image); err != nil {
			return err
		}
		c.romLoaded = true
		return nil

	case FileEEPROM:
		if len(data) != EEPROMSize {
			return fmt.Errorf("%w: EEPROM is %d bytes, want %d", ErrBadFileSize, len(data), EEPROMSize)
		}
		c.eeprom = make([]byte, EEPROMSize)
		copy(c.eeprom, data)
		return nil

	default:
		return fmt.Errorf("%w: %d", ErrUnknownFile, kind)
	}
}

// SaveFile returns a copy of a retained image buffer. Only the EEPROM
// image is retained; any other kind, FileFlashROM included, returns
// ErrUnknownFile.
func (c *Core) SaveFile(kind File) ([]byte, error) {
	switch kind {
	case FileEEPROM:
		if c.eeprom == nil {
			return nil, fmt.Errorf("%w: EEPROM", ErrNotLoaded)
		}
		out := make([]byte, len(c.eeprom))
		copy(out, c.eeprom)
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFile, kind)
	}
}

// Init finishes wiring after the file loads and leaves the machine in
// reset state.
func (c *Core) Init() error {
	if !c.romLoaded {
		return ErrNotLoaded
	}
	c.Reset()
	return nil
}

// Reset resets the CPU, RAM and SSU. The ROM image and the EEPROM
// buffer are untouched.
func (c *Core) Reset() {
	c.CPU.Reset()
	c.RAM.Reset()
	c.SSU.Reset()
	c.ROM.Reset()
	c.clearVideo()
}

// Step executes exactly one CPU instruction and advances the bus by
// one tick, which clocks the SSU.
func (c *Core) Step() {
	c.CPU.Step()
	c.Bus.Cycle()
}

// FrameAdvance steps until the machine would enter VBlank, then
// signals the host. The VBlank source is a deterministic instruction
// budget; see instructionsPerFrame.
func (c *Core) FrameAdvance() {
	for n := 0; n < instructionsPerFrame; n++ {
		c.Step()
	}
	if c.OnVBlank != nil {
		c.OnVBlank()
	}
}

// VideoBuffer returns the 96x64 RGBA framebuffer. The slice aliases
// core-owned memory and must be treated as read-only.
func (c *Core) VideoBuffer() []uint32 {
	return c.video[:]
}

// VideoRGBA flattens the framebuffer into the byte order image.RGBA
// and ebiten's WritePixels expect.
func (c *Core) VideoRGBA() []byte {
	out := make([]byte, len(c.video)*4)
	for n, px := range c.video {
		out[n*4+0] = uint8(px >> 24)
		out[n*4+1] = uint8(px >> 16)
		out[n*4+2] = uint8(px >> 8)
		out[n*4+3] = uint8(px)
	}
	return out
}

// SetInput records the state of a hardware button.
func (c *Core) SetInput(key Key, state KeyState) {
	if key >= KeyLeft && key <= KeyRight {
		c.keys[key] = state
	}
}

// Input returns the recorded state of a hardware button.
func (c *Core) Input(key Key) KeyState {
	if key >= KeyLeft && key <= KeyRight {
		return c.keys[key]
	}
	return KeyReleased
}

// clearVideo paints the whole screen as an unlit LCD (opaque black).
func (c *Core) clearVideo() {
	for n := range c.video {
		c.video[n] = 0x000000ff
	}
}
