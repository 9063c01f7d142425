package cpu

// push16 decrements the stack pointer and stores a word.
func (c *CPU) push16(value uint16) {
	sp := c.Register32(regSP) - 2
	c.SetRegister32(regSP, sp)
	c.bus.Write16(uint16(sp), value)
}

// pop16 reads a word off the stack and increments the stack pointer.
func (c *CPU) pop16() uint16 {
	sp := c.Register32(regSP)
	value := c.bus.Read16(uint16(sp))
	c.SetRegister32(regSP, sp+2)
	return value
}

// jumpTarget resolves the destination of JMP and JSR: register
// indirect, 24-bit absolute, or indirect through a zero-page vector.
func (c *CPU) jumpTarget(i *Instruction) uint32 {
	switch i.Mode {
	case ModeInd:
		return c.Register32(i.Rs)
	case ModeMemInd:
		return uint32(c.bus.Read16(uint16(i.EA)))
	default:
		return i.EA
	}
}

// opBcc handles the conditional branches. The displacement is relative
// to the address of the following instruction, where PC already points.
func (c *CPU) opBcc(i *Instruction) {
	if c.conditionMet(i.Cond) {
		c.PC += uint32(i.Disp)
	}
}

// opJmp transfers control unconditionally.
func (c *CPU) opJmp(i *Instruction) {
	c.PC = c.jumpTarget(i)
}

// opJsr pushes the 16-bit return address and jumps.
func (c *CPU) opJsr(i *Instruction) {
	c.push16(uint16(c.PC))
	c.PC = c.jumpTarget(i)
}

// opBsr pushes the 16-bit return address and branches.
func (c *CPU) opBsr(i *Instruction) {
	c.push16(uint16(c.PC))
	c.PC += uint32(i.Disp)
}

// opRts returns from a subroutine.
func (c *CPU) opRts(_ *Instruction) {
	c.PC = uint32(c.pop16())
}

// opRte returns from an exception: the CCR comes off the stack first
// (low byte of a 16-bit slot), then the return address.
func (c *CPU) opRte(_ *Instruction) {
	c.CCR = uint8(c.pop16())
	c.PC = uint32(c.pop16())
}
