package cpu

// halfMask returns the mask below the half-carry boundary for a size:
// bit 3 for byte, bit 11 for word and bit 27 for long operations.
func halfMask(size Size) uint32 {
	switch size {
	case SizeByte:
		return 0x0f
	case SizeWord:
		return 0x0fff
	}
	return 0x0fffffff
}

// setNZ updates the negative and zero flags from a result.
func (c *CPU) setNZ(result uint32, size Size) {
	c.setFlag(FlagN, result&size.signBit() != 0)
	c.setFlag(FlagZ, result&size.mask() == 0)
}

// setFlagsAdd updates H, N, Z, V and C for an addition. carryIn is the
// carry added by ADDX; plain ADD passes zero.
func (c *CPU) setFlagsAdd(op1, op2, result uint32, carryIn uint32, size Size) {
	hm := halfMask(size)
	sign := size.signBit()
	mask := size.mask()

	c.setFlag(FlagH, (op1&hm+op2&hm+carryIn)&(hm+1) != 0)
	c.setFlag(FlagN, result&sign != 0)
	c.setFlag(FlagZ, result&mask == 0)
	c.setFlag(FlagV, (op1^op2)&sign == 0 && (op1^result)&sign != 0)
	if size == SizeLong {
		// The 33rd bit is not representable; a carry out of bit 31
		// shows as the result wrapping below the first operand.
		c.setFlag(FlagC, result < op1 || (carryIn != 0 && result == op1))
	} else {
		c.setFlag(FlagC, (uint64(op1&mask)+uint64(op2&mask)+uint64(carryIn))&uint64(mask+1) != 0)
	}
}

// setFlagsSub updates H, N, Z, V and C for a subtraction dst-src
// (also used by CMP and NEG). borrowIn is the borrow for SUBX.
func (c *CPU) setFlagsSub(dst, src, result uint32, borrowIn uint32, size Size) {
	hm := halfMask(size)
	sign := size.signBit()
	mask := size.mask()

	c.setFlag(FlagH, src&hm+borrowIn > dst&hm)
	c.setFlag(FlagN, result&sign != 0)
	c.setFlag(FlagZ, result&mask == 0)
	c.setFlag(FlagV, (dst^src)&sign != 0 && (dst^result)&sign != 0)
	c.setFlag(FlagC, uint64(src&mask)+uint64(borrowIn) > uint64(dst&mask))
}

// setFlagsLogical updates N and Z and clears V; C and H are untouched.
func (c *CPU) setFlagsLogical(result uint32, size Size) {
	c.setNZ(result, size)
	c.setFlag(FlagV, false)
}
