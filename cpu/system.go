package cpu

// opLdc loads the CCR from a register, an immediate or memory. The
// memory forms transfer a word whose low byte is the CCR.
func (c *CPU) opLdc(i *Instruction) {
	switch i.Mode {
	case ModeReg:
		c.CCR = c.Register8(i.Rs)
	case ModeImm:
		c.CCR = uint8(i.Imm)
	default:
		c.CCR = uint8(c.readMem(c.operandAddress(i), SizeWord))
	}
}

// opStc stores the CCR to a register or memory, mirroring opLdc.
func (c *CPU) opStc(i *Instruction) {
	if i.Mode == ModeReg {
		c.SetRegister8(i.Rd, c.CCR)
		return
	}
	c.writeMem(c.operandAddress(i), SizeWord, uint32(c.CCR))
}
