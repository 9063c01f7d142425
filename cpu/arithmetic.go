package cpu

// opAdd handles ADD.B/W/L in the register and immediate forms.
func (c *CPU) opAdd(i *Instruction) {
	op1 := c.source(i)
	op2 := c.readReg(i.Rd, i.Size)
	result := op1 + op2

	c.setFlagsAdd(op1, op2, result, 0, i.Size)
	c.writeReg(i.Rd, i.Size, result)
}

// opAddx handles ADDX: byte addition with carry in. The zero flag is
// only ever cleared, so multi-precision sequences keep Z meaningful
// across the whole value.
func (c *CPU) opAddx(i *Instruction) {
	op1 := c.source(i)
	op2 := uint32(c.Register8(i.Rd))
	carry := uint32(0)
	if c.flag(FlagC) {
		carry = 1
	}
	result := op1 + op2 + carry

	prevZ := c.flag(FlagZ)
	c.setFlagsAdd(op1, op2, result, carry, i.Size)
	c.setFlag(FlagZ, prevZ && result&0xff == 0)
	c.SetRegister8(i.Rd, uint8(result))
}

// opAdds handles ADDS #1/#2/#4, ERd. No flags change.
func (c *CPU) opAdds(i *Instruction) {
	c.SetRegister32(i.Rd, c.Register32(i.Rd)+i.Imm)
}

// opSub handles SUB.B/W/L in the register and immediate forms.
func (c *CPU) opSub(i *Instruction) {
	src := c.source(i)
	dst := c.readReg(i.Rd, i.Size)
	result := dst - src

	c.setFlagsSub(dst, src, result, 0, i.Size)
	c.writeReg(i.Rd, i.Size, result)
}

// opSubx handles SUBX: byte subtraction with borrow in, with the same
// sticky zero flag as ADDX.
func (c *CPU) opSubx(i *Instruction) {
	src := c.source(i)
	dst := uint32(c.Register8(i.Rd))
	borrow := uint32(0)
	if c.flag(FlagC) {
		borrow = 1
	}
	result := dst - src - borrow

	prevZ := c.flag(FlagZ)
	c.setFlagsSub(dst, src, result, borrow, i.Size)
	c.setFlag(FlagZ, prevZ && result&0xff == 0)
	c.SetRegister8(i.Rd, uint8(result))
}

// opSubs handles SUBS #1/#2/#4, ERd. No flags change.
func (c *CPU) opSubs(i *Instruction) {
	c.SetRegister32(i.Rd, c.Register32(i.Rd)-i.Imm)
}

// opInc handles INC with increment 1 or 2. C and H are untouched; V is
// set when the increment crosses the positive limit.
func (c *CPU) opInc(i *Instruction) {
	old := c.readReg(i.Rd, i.Size)
	result := old + i.Imm

	sign := i.Size.signBit()
	c.setNZ(result, i.Size)
	c.setFlag(FlagV, old&sign == 0 && result&sign != 0)
	c.writeReg(i.Rd, i.Size, result)
}

// opDec handles DEC with decrement 1 or 2, the mirror of opInc.
func (c *CPU) opDec(i *Instruction) {
	old := c.readReg(i.Rd, i.Size)
	result := old - i.Imm

	sign := i.Size.signBit()
	c.setNZ(result, i.Size)
	c.setFlag(FlagV, old&sign != 0 && result&sign == 0)
	c.writeReg(i.Rd, i.Size, result)
}

// opNeg handles NEG: two's complement of the operand, flagged as a
// subtraction from zero.
func (c *CPU) opNeg(i *Instruction) {
	v := c.readReg(i.Rd, i.Size)
	result := -v

	c.setFlagsSub(0, v, result, 0, i.Size)
	c.writeReg(i.Rd, i.Size, result)
}

// opCmp handles CMP: a subtraction that only updates the flags.
func (c *CPU) opCmp(i *Instruction) {
	src := c.source(i)
	dst := c.readReg(i.Rd, i.Size)
	c.setFlagsSub(dst, src, dst-src, 0, i.Size)
}

// opDaa decimal-adjusts the 8-bit register Rd after a BCD addition.
func (c *CPU) opDaa(i *Instruction) {
	v := c.Register8(i.Rd)
	carry := c.flag(FlagC)

	var adjust uint8
	if c.flag(FlagH) || v&0x0f > 0x09 {
		adjust += 0x06
	}
	if carry || v > 0x99 {
		adjust += 0x60
		carry = true
	}

	result := v + adjust
	c.setNZ(uint32(result), SizeByte)
	c.setFlag(FlagC, carry)
	c.SetRegister8(i.Rd, result)
}

// opDas decimal-adjusts the 8-bit register Rd after a BCD subtraction.
// C is unchanged.
func (c *CPU) opDas(i *Instruction) {
	v := c.Register8(i.Rd)

	var adjust uint8
	if c.flag(FlagH) {
		adjust += 0x06
	}
	if c.flag(FlagC) {
		adjust += 0x60
	}

	result := v - adjust
	c.setNZ(uint32(result), SizeByte)
	c.SetRegister8(i.Rd, result)
}

// opMulxu handles MULXU: unsigned multiply, 8x8 into Rd or 16x16 into
// ERd. Flags are untouched.
func (c *CPU) opMulxu(i *Instruction) {
	if i.Size == SizeByte {
		result := uint16(uint8(c.Register16(i.Rd))) * uint16(c.Register8(i.Rs))
		c.SetRegister16(i.Rd, result)
		return
	}
	result := uint32(uint16(c.Register32(i.Rd))) * uint32(c.Register16(i.Rs))
	c.SetRegister32(i.Rd, result)
}

// opMulxs handles MULXS: the signed multiply, which also sets N and Z
// from the product.
func (c *CPU) opMulxs(i *Instruction) {
	if i.Size == SizeByte {
		result := int16(int8(c.Register16(i.Rd))) * int16(int8(c.Register8(i.Rs)))
		c.setNZ(uint32(uint16(result)), SizeWord)
		c.SetRegister16(i.Rd, uint16(result))
		return
	}
	result := int32(int16(c.Register32(i.Rd))) * int32(int16(c.Register16(i.Rs)))
	c.setNZ(uint32(result), SizeLong)
	c.SetRegister32(i.Rd, uint32(result))
}

// opDivxu handles DIVXU: unsigned divide, quotient in the low half of
// the destination and remainder in the high half. N and Z describe the
// divisor; division by zero leaves the destination alone.
func (c *CPU) opDivxu(i *Instruction) {
	if i.Size == SizeByte {
		divisor := c.Register8(i.Rs)
		c.setFlag(FlagN, divisor&0x80 != 0)
		c.setFlag(FlagZ, divisor == 0)
		if divisor == 0 {
			return
		}
		dividend := c.Register16(i.Rd)
		quotient := dividend / uint16(divisor)
		remainder := dividend % uint16(divisor)
		c.SetRegister16(i.Rd, remainder<<8|quotient&0x00ff)
		return
	}

	divisor := c.Register16(i.Rs)
	c.setFlag(FlagN, divisor&0x8000 != 0)
	c.setFlag(FlagZ, divisor == 0)
	if divisor == 0 {
		return
	}
	dividend := c.Register32(i.Rd)
	quotient := dividend / uint32(divisor)
	remainder := dividend % uint32(divisor)
	c.SetRegister32(i.Rd, remainder<<16|quotient&0xffff)
}

// opDivxs handles DIVXS, the signed divide. N is set when quotient
// would be negative (operand signs differ); Z flags a zero divisor.
func (c *CPU) opDivxs(i *Instruction) {
	if i.Size == SizeByte {
		divisor := int8(c.Register8(i.Rs))
		dividend := int16(c.Register16(i.Rd))
		c.setFlag(FlagN, (dividend < 0) != (divisor < 0))
		c.setFlag(FlagZ, divisor == 0)
		if divisor == 0 {
			return
		}
		quotient := dividend / int16(divisor)
		remainder := dividend % int16(divisor)
		c.SetRegister16(i.Rd, uint16(remainder)<<8|uint16(quotient)&0x00ff)
		return
	}

	divisor := int16(c.Register16(i.Rs))
	dividend := int32(c.Register32(i.Rd))
	c.setFlag(FlagN, (dividend < 0) != (divisor < 0))
	c.setFlag(FlagZ, divisor == 0)
	if divisor == 0 {
		return
	}
	quotient := dividend / int32(divisor)
	remainder := dividend % int32(divisor)
	c.SetRegister32(i.Rd, uint32(remainder)<<16|uint32(quotient)&0xffff)
}
