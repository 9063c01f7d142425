package cpu

// operandAddress resolves an instruction's memory operand to a 24-bit
// effective address. The auto-increment modes adjust the pointer
// register here, by the operand width.
func (c *CPU) operandAddress(i *Instruction) uint32 {
	switch i.Mode {
	case ModeInd:
		return c.Register32(i.Rs)
	case ModePostInc:
		addr := c.Register32(i.Rs)
		c.SetRegister32(i.Rs, addr+i.Size.Bytes())
		return addr
	case ModePreDec:
		addr := c.Register32(i.Rs) - i.Size.Bytes()
		c.SetRegister32(i.Rs, addr)
		return addr
	case ModeDisp16, ModeDisp24:
		return c.Register32(i.Rs) + uint32(i.Disp)
	default: // ModeAbs8, ModeAbs16, ModeAbs24, ModeMemInd
		return i.EA
	}
}

// readMem reads a sized value at a bus address. Only the low 16 bits
// of the effective address reach the bus.
func (c *CPU) readMem(addr uint32, size Size) uint32 {
	switch size {
	case SizeByte:
		return uint32(c.bus.Read8(uint16(addr)))
	case SizeWord:
		return uint32(c.bus.Read16(uint16(addr)))
	}
	return c.bus.Read32(uint16(addr))
}

// writeMem writes a sized value at a bus address.
func (c *CPU) writeMem(addr uint32, size Size, value uint32) {
	switch size {
	case SizeByte:
		c.bus.Write8(uint16(addr), uint8(value))
	case SizeWord:
		c.bus.Write16(uint16(addr), uint16(value))
	default:
		c.bus.Write32(uint16(addr), value)
	}
}

// opMov handles MOV at every width and addressing mode, including the
// MOVFPE/MOVTPE patterns, which this core treats as ordinary moves.
// The moved value sets N and Z and clears V in every form.
func (c *CPU) opMov(i *Instruction) {
	var value uint32

	switch {
	case i.Mode == ModeReg:
		value = c.readReg(i.Rs, i.Size)
		c.writeReg(i.Rd, i.Size, value)
	case i.Mode == ModeImm:
		value = i.Imm
		c.writeReg(i.Rd, i.Size, value)
	case i.Store:
		value = c.readReg(i.Rd, i.Size)
		c.writeMem(c.operandAddress(i), i.Size, value)
	default:
		value = c.readMem(c.operandAddress(i), i.Size)
		c.writeReg(i.Rd, i.Size, value)
	}

	c.setFlagsLogical(value, i.Size)
}

// opEepmov handles EEPMOV: a block move from @ER5 to @ER6 of R4L bytes
// (EEPMOV.B) or R4 bytes (EEPMOV.W). Both pointers advance past the
// block and the count register drains to zero.
func (c *CPU) opEepmov(i *Instruction) {
	var count uint32
	if i.Kind == KindEepmovB {
		count = uint32(c.Register8(regR4L))
	} else {
		count = uint32(c.Register16(regR4))
	}

	src := c.Register32(regER5)
	dst := c.Register32(regER6)

	for n := count; n > 0; n-- {
		c.bus.Write8(uint16(dst), c.bus.Read8(uint16(src)))
		src++
		dst++
	}

	c.SetRegister32(regER5, src)
	c.SetRegister32(regER6, dst)

	if i.Kind == KindEepmovB {
		c.SetRegister8(regR4L, 0)
	} else {
		c.SetRegister16(regR4, 0)
	}
}
