// Package bus decodes 16-bit effective addresses to the on-chip
// peripherals and translates byte, word and longword accesses into
// peripheral calls. The bus itself holds no memory: unmapped addresses
// are open bus, reading all ones and swallowing writes.
package bus

import (
	"github.com/Ankeraout/emuwalker/ram"
	"github.com/Ankeraout/emuwalker/rom"
	"github.com/Ankeraout/emuwalker/ssu"
)

// peripheral is the byte/word access surface every bus target provides.
type peripheral interface {
	Read8(addr uint16) uint8
	Read16(addr uint16) uint16
	Write8(addr uint16, value uint8)
	Write16(addr uint16, value uint16)
}

// openBus is the target for every unmapped address.
type openBus struct{}

func (openBus) Read8(uint16) uint8     { return 0xff }
func (openBus) Read16(uint16) uint16   { return 0xffff }
func (openBus) Write8(uint16, uint8)   {}
func (openBus) Write16(uint16, uint16) {}

// Bus dispatches accesses to the ROM, RAM and SSU. It holds non-owning
// references; the core aggregate owns the peripherals.
type Bus struct {
	rom  *rom.ROM
	ram  *ram.RAM
	ssu  *ssu.SSU
	open openBus
}

// New wires a bus to its peripherals.
func New(r *rom.ROM, m *ram.RAM, s *ssu.SSU) *Bus {
	return &Bus{rom: r, ram: m, ssu: s}
}

// target decodes an address to its peripheral.
//
//	0x0000-0xbfff  ROM image
//	0xc000-0xf01f  open bus
//	0xf020-0xf023  ROM flash-control registers
//	0xf02b         ROM flash-control register (FENR)
//	0xf0e0-0xf0e4  SSU
//	0xf0e9, 0xf0eb SSU
//	0xf780-0xff7f  RAM
//	0xff80-0xffff  I/O page 2, all open bus in this core
func (b *Bus) target(addr uint16) peripheral {
	switch {
	case addr&0xc000 != 0xc000:
		return b.rom
	case addr >= rom.AddrFLMCR1 && addr <= rom.AddrEBR1, addr == rom.AddrFENR:
		return b.rom
	case addr >= ssu.AddrSSCRH && addr <= ssu.AddrSSSR,
		addr == ssu.AddrSSRDR, addr == ssu.AddrSSTDR:
		return b.ssu
	case addr >= ram.Base && addr <= ram.Base+ram.Size-1:
		return b.ram
	default:
		return b.open
	}
}

// Cycle advances the bus by one tick, clocking the SSU.
func (b *Bus) Cycle() {
	b.ssu.Cycle()
}

// Read8 reads a byte.
func (b *Bus) Read8(addr uint16) uint8 {
	return b.target(addr).Read8(addr)
}

// Read16 reads a big-endian word. The address is word-aligned first;
// real code aligns its word accesses, so accesses that would straddle
// two peripherals are not supported.
func (b *Bus) Read16(addr uint16) uint16 {
	addr &= 0xfffe
	return b.target(addr).Read16(addr)
}

// Read32 reads a big-endian longword as two word reads, high word
// first.
func (b *Bus) Read32(addr uint16) uint32 {
	return uint32(b.Read16(addr))<<16 | uint32(b.Read16(addr+2))
}

// Write8 writes a byte.
func (b *Bus) Write8(addr uint16, value uint8) {
	b.target(addr).Write8(addr, value)
}

// Write16 writes a big-endian word to the word-aligned address.
func (b *Bus) Write16(addr uint16, value uint16) {
	addr &= 0xfffe
	b.target(addr).Write16(addr, value)
}

// Write32 writes a big-endian longword as two word writes, high word
// first.
func (b *Bus) Write32(addr uint16, value uint32) {
	b.Write16(addr, uint16(value>>16))
	b.Write16(addr+2, uint16(value))
}
