// Package cpu implements an instruction-stepped interpreter for the
// Renesas H8/300H core found in the Pokéwalker. Each Step fetches one
// variable-length instruction through the bus, decodes it into an
// Instruction value and executes it.
package cpu

// Bus is the memory system the CPU fetches and loads through. The
// H8/300H is big-endian: 16- and 32-bit accesses read the high byte
// first. Cycle advances the peripherals by one bus tick.
type Bus interface {
	Read8(addr uint16) uint8
	Read16(addr uint16) uint16
	Read32(addr uint16) uint32
	Write8(addr uint16, value uint8)
	Write16(addr uint16, value uint16)
	Write32(addr uint16, value uint32)
	Cycle()
}

// CPU registers and execution state.
type CPU struct {
	// regs holds the eight general registers ER0..ER7. ER7 doubles as
	// the stack pointer. Each register is addressable as a longword
	// (ERn), two words (En high, Rn low) or two bytes of the low word
	// (RnH, RnL); the accessor methods below implement the views.
	regs [8]uint32

	// PC is the program counter. Only the low 16 bits reach the bus.
	PC uint32

	// CCR is the condition code register; see the Flag constants.
	CCR uint8

	// Initialized reports whether the reset vector has been fetched.
	// The first Step after Reset loads PC from address 0x0000.
	Initialized bool

	bus Bus
}

// New creates a CPU attached to the given bus, in reset state.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset puts the CPU in its power-on state: registers cleared, all
// flags cleared except the interrupt mask, PC at zero and the reset
// vector not yet fetched.
func (c *CPU) Reset() {
	c.regs = [8]uint32{}
	c.CCR = FlagI
	c.PC = 0
	c.Initialized = false
}

// Step executes exactly one instruction. On the first step after reset
// the reset vector at address 0x0000 is loaded into PC first.
func (c *CPU) Step() {
	if !c.Initialized {
		c.PC = uint32(c.bus.Read16(0x0000))
		c.Initialized = true
	}

	inst := Decode(c)
	c.execute(&inst)
}

// Fetch16 reads the instruction word at PC and advances PC past it.
// It makes the CPU a Fetcher for the decoder.
func (c *CPU) Fetch16() uint16 {
	w := c.bus.Read16(uint16(c.PC))
	c.PC += 2
	return w
}

// Register8 returns an 8-bit register by its 4-bit operand code:
// codes 0-7 select R0H..R7H, codes 8-15 select R0L..R7L.
func (c *CPU) Register8(code uint8) uint8 {
	if code&0x08 == 0 {
		return uint8(c.regs[code&0x07] >> 8)
	}
	return uint8(c.regs[code&0x07])
}

// SetRegister8 writes an 8-bit register by operand code, preserving
// the rest of the general register.
func (c *CPU) SetRegister8(code uint8, value uint8) {
	if code&0x08 == 0 {
		c.regs[code&0x07] = c.regs[code&0x07]&^uint32(0xff00) | uint32(value)<<8
	} else {
		c.regs[code&0x07] = c.regs[code&0x07]&^uint32(0x00ff) | uint32(value)
	}
}

// Register16 returns a 16-bit register by its 4-bit operand code:
// codes 0-7 select R0..R7, codes 8-15 select E0..E7.
func (c *CPU) Register16(code uint8) uint16 {
	if code&0x08 == 0 {
		return uint16(c.regs[code&0x07])
	}
	return uint16(c.regs[code&0x07] >> 16)
}

// SetRegister16 writes a 16-bit register by operand code, preserving
// the other half of the general register.
func (c *CPU) SetRegister16(code uint8, value uint16) {
	if code&0x08 == 0 {
		c.regs[code&0x07] = c.regs[code&0x07]&0xffff0000 | uint32(value)
	} else {
		c.regs[code&0x07] = c.regs[code&0x07]&0x0000ffff | uint32(value)<<16
	}
}

// Register32 returns general register ERn.
func (c *CPU) Register32(code uint8) uint32 {
	return c.regs[code&0x07]
}

// SetRegister32 writes general register ERn.
func (c *CPU) SetRegister32(code uint8, value uint32) {
	c.regs[code&0x07] = value
}
