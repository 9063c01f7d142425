package cpu

// opLogical handles AND, OR and XOR at every width, in the register
// and immediate forms. V is cleared; C and H are untouched.
func (c *CPU) opLogical(i *Instruction, op func(a, b uint32) uint32) {
	result := op(c.readReg(i.Rd, i.Size), c.source(i))
	c.setFlagsLogical(result, i.Size)
	c.writeReg(i.Rd, i.Size, result)
}

// opNot complements the operand.
func (c *CPU) opNot(i *Instruction) {
	result := ^c.readReg(i.Rd, i.Size)
	c.setFlagsLogical(result, i.Size)
	c.writeReg(i.Rd, i.Size, result)
}

// opExtu zero-extends the lower half of the operand: RdL into Rd for
// EXTU.W, Rn into ERn for EXTU.L.
func (c *CPU) opExtu(i *Instruction) {
	var result uint32
	if i.Size == SizeWord {
		result = uint32(c.Register16(i.Rd)) & 0x00ff
	} else {
		result = c.Register32(i.Rd) & 0xffff
	}
	c.setFlagsLogical(result, i.Size)
	c.writeReg(i.Rd, i.Size, result)
}

// opExts sign-extends the lower half of the operand.
func (c *CPU) opExts(i *Instruction) {
	var result uint32
	if i.Size == SizeWord {
		result = uint32(uint16(int16(int8(c.Register16(i.Rd)))))
	} else {
		result = uint32(int32(int16(c.Register32(i.Rd))))
	}
	c.setFlagsLogical(result, i.Size)
	c.writeReg(i.Rd, i.Size, result)
}
