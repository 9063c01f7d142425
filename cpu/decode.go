package cpu

// Fetcher supplies big-endian opcode words to the decoder. The CPU is
// a Fetcher over the bus at PC; the disassembler fetches from a byte
// slice.
type Fetcher interface {
	Fetch16() uint16
}

// decoder accumulates the raw words it consumes into the Instruction
// so the disassembler can report instruction length and bytes.
type decoder struct {
	f    Fetcher
	inst Instruction
}

func (d *decoder) fetch() uint16 {
	w := d.f.Fetch16()
	if d.inst.WordCount < len(d.inst.Words) {
		d.inst.Words[d.inst.WordCount] = w
	}
	d.inst.WordCount++
	return w
}

func (d *decoder) fetch32() uint32 {
	hi := d.fetch()
	lo := d.fetch()
	return uint32(hi)<<16 | uint32(lo)
}

// Decode consumes one instruction from the fetcher and returns its
// decoded form. Bit patterns with no defined semantics decode to
// KindUndefined; the fetcher is never over-read past the words that
// identify the pattern.
func Decode(f Fetcher) Instruction {
	d := decoder{f: f}
	d.inst.Kind = KindUndefined
	w := d.fetch()
	d.decodeMain(w)
	return d.inst
}

// decodeMain dispatches on the high byte of the first opcode word
// (table 2.5 in the H8/300H manual). Prefix bytes hand off to the
// group decoders below.
func (d *decoder) decodeMain(w uint16) {
	i := &d.inst
	hb := uint8(w >> 8)
	lb := uint8(w)

	switch hb {
	case 0x00:
		if w == 0x0000 {
			i.Kind = KindNop
		}

	case 0x01:
		d.decodePrefix01(w)

	case 0x02: // STC.B CCR, Rd
		if lb&0xf0 == 0 {
			i.Kind, i.Size, i.Mode, i.Rd, i.Store = KindStc, SizeByte, ModeReg, lb&0x0f, true
		}
	case 0x03: // LDC.B Rs, CCR
		if lb&0xf0 == 0 {
			i.Kind, i.Size, i.Mode, i.Rs = KindLdc, SizeByte, ModeReg, lb&0x0f
		}
	case 0x04:
		i.Kind, i.Imm = KindOrc, uint32(lb)
	case 0x05:
		i.Kind, i.Imm = KindXorc, uint32(lb)
	case 0x06:
		i.Kind, i.Imm = KindAndc, uint32(lb)
	case 0x07:
		i.Kind, i.Size, i.Mode, i.Imm = KindLdc, SizeByte, ModeImm, uint32(lb)

	case 0x08: // ADD.B Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindAdd, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x09: // ADD.W Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindAdd, SizeWord, ModeReg, lb>>4, lb&0x0f
	case 0x0a:
		switch {
		case lb&0xf0 == 0x00: // INC.B Rd
			i.Kind, i.Size, i.Rd, i.Imm = KindInc, SizeByte, lb&0x0f, 1
		case lb&0x88 == 0x80: // ADD.L ERs, ERd
			i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindAdd, SizeLong, ModeReg, (lb>>4)&0x07, lb&0x07
		}
	case 0x0b:
		d.decodeIncAdds(w, KindAdds, KindInc)
	case 0x0c: // MOV.B Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindMov, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x0d: // MOV.W Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindMov, SizeWord, ModeReg, lb>>4, lb&0x0f
	case 0x0e: // ADDX Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindAddx, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x0f:
		switch {
		case lb&0xf0 == 0x00: // DAA Rd
			i.Kind, i.Size, i.Rd = KindDaa, SizeByte, lb&0x0f
		case lb&0x88 == 0x80: // MOV.L ERs, ERd
			i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindMov, SizeLong, ModeReg, (lb>>4)&0x07, lb&0x07
		}

	case 0x10:
		d.decodeShift(w, KindShll, KindShal)
	case 0x11:
		d.decodeShift(w, KindShlr, KindShar)
	case 0x12:
		d.decodeShift(w, KindRotxl, KindRotl)
	case 0x13:
		d.decodeShift(w, KindRotxr, KindRotr)

	case 0x14: // OR.B Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindOr, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x15: // XOR.B Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindXor, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x16: // AND.B Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindAnd, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x17:
		d.decodeUnary17(w)
	case 0x18: // SUB.B Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindSub, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x19: // SUB.W Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindSub, SizeWord, ModeReg, lb>>4, lb&0x0f
	case 0x1a:
		switch {
		case lb&0xf0 == 0x00: // DEC.B Rd
			i.Kind, i.Size, i.Rd, i.Imm = KindDec, SizeByte, lb&0x0f, 1
		case lb&0x88 == 0x80: // SUB.L ERs, ERd
			i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindSub, SizeLong, ModeReg, (lb>>4)&0x07, lb&0x07
		}
	case 0x1b:
		d.decodeIncAdds(w, KindSubs, KindDec)
	case 0x1c: // CMP.B Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindCmp, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x1d: // CMP.W Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindCmp, SizeWord, ModeReg, lb>>4, lb&0x0f
	case 0x1e: // SUBX Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindSubx, SizeByte, ModeReg, lb>>4, lb&0x0f
	case 0x1f:
		switch {
		case lb&0xf0 == 0x00: // DAS Rd
			i.Kind, i.Size, i.Rd = KindDas, SizeByte, lb&0x0f
		case lb&0x88 == 0x80: // CMP.L ERs, ERd
			i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindCmp, SizeLong, ModeReg, (lb>>4)&0x07, lb&0x07
		}

	case 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26, 0x27,
		0x28, 0x29, 0x2a, 0x2b, 0x2c, 0x2d, 0x2e, 0x2f:
		// MOV.B @aa:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd = KindMov, SizeByte, ModeAbs8, hb&0x0f
		i.EA = 0xff00 | uint32(lb)
	case 0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37,
		0x38, 0x39, 0x3a, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f:
		// MOV.B Rs, @aa:8
		i.Kind, i.Size, i.Mode, i.Rd, i.Store = KindMov, SizeByte, ModeAbs8, hb&0x0f, true
		i.EA = 0xff00 | uint32(lb)

	case 0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46, 0x47,
		0x48, 0x49, 0x4a, 0x4b, 0x4c, 0x4d, 0x4e, 0x4f:
		// Bcc d:8
		i.Kind, i.Cond, i.Disp = KindBcc, hb&0x0f, int32(int8(lb))

	case 0x50: // MULXU.B Rs, Rd
		i.Kind, i.Size, i.Rs, i.Rd = KindMulxu, SizeByte, lb>>4, lb&0x0f
	case 0x51: // DIVXU.B Rs, Rd
		i.Kind, i.Size, i.Rs, i.Rd = KindDivxu, SizeByte, lb>>4, lb&0x0f
	case 0x52: // MULXU.W Rs, ERd
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rs, i.Rd = KindMulxu, SizeWord, lb>>4, lb&0x07
		}
	case 0x53: // DIVXU.W Rs, ERd
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rs, i.Rd = KindDivxu, SizeWord, lb>>4, lb&0x07
		}
	case 0x54:
		if lb == 0x70 {
			i.Kind = KindRts
		}
	case 0x55: // BSR d:8
		i.Kind, i.Disp = KindBsr, int32(int8(lb))
	case 0x56:
		if lb == 0x70 {
			i.Kind = KindRte
		}
	case 0x57: // TRAPA #x:2
		if lb&0xcf == 0 {
			i.Kind, i.Imm = KindTrapa, uint32(lb>>4)&0x03
		}
	case 0x58: // Bcc d:16
		if lb&0x0f == 0 {
			i.Kind, i.Cond = KindBcc, lb>>4
			i.Disp = int32(int16(d.fetch()))
		}
	case 0x59: // JMP @ERn
		if lb&0x8f == 0 {
			i.Kind, i.Mode, i.Rs = KindJmp, ModeInd, (lb>>4)&0x07
		}
	case 0x5a: // JMP @aa:24
		i.Kind, i.Mode = KindJmp, ModeAbs24
		i.EA = uint32(lb)<<16 | uint32(d.fetch())
	case 0x5b: // JMP @@aa:8
		i.Kind, i.Mode, i.EA = KindJmp, ModeMemInd, uint32(lb)
	case 0x5c: // BSR d:16
		if lb == 0x00 {
			i.Kind = KindBsr
			i.Disp = int32(int16(d.fetch()))
		}
	case 0x5d: // JSR @ERn
		if lb&0x8f == 0 {
			i.Kind, i.Mode, i.Rs = KindJsr, ModeInd, (lb>>4)&0x07
		}
	case 0x5e: // JSR @aa:24
		i.Kind, i.Mode = KindJsr, ModeAbs24
		i.EA = uint32(lb)<<16 | uint32(d.fetch())
	case 0x5f: // JSR @@aa:8
		i.Kind, i.Mode, i.EA = KindJsr, ModeMemInd, uint32(lb)

	case 0x60: // BSET Rn, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.BitReg = KindBset, ModeReg, lb&0x0f, lb>>4, true
	case 0x61: // BNOT Rn, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.BitReg = KindBnot, ModeReg, lb&0x0f, lb>>4, true
	case 0x62: // BCLR Rn, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.BitReg = KindBclr, ModeReg, lb&0x0f, lb>>4, true
	case 0x63: // BTST Rn, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.BitReg = KindBtst, ModeReg, lb&0x0f, lb>>4, true
	case 0x64: // OR.W Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindOr, SizeWord, ModeReg, lb>>4, lb&0x0f
	case 0x65: // XOR.W Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindXor, SizeWord, ModeReg, lb>>4, lb&0x0f
	case 0x66: // AND.W Rs, Rd
		i.Kind, i.Size, i.Mode, i.Rs, i.Rd = KindAnd, SizeWord, ModeReg, lb>>4, lb&0x0f
	case 0x67: // BST / BIST #x:3, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.Invert = KindBst, ModeReg, lb&0x0f, (lb>>4)&0x07, lb&0x80 != 0

	case 0x68: // MOV.B @ERs, Rd / MOV.B Rs, @ERd
		d.movRegInd(SizeByte, lb, ModeInd)
	case 0x69: // MOV.W @ERs, Rd / MOV.W Rs, @ERd
		d.movRegInd(SizeWord, lb, ModeInd)
	case 0x6a:
		d.movAbs(SizeByte, lb)
	case 0x6b:
		d.movAbs(SizeWord, lb)
	case 0x6c: // MOV.B @ERs+, Rd / MOV.B Rs, @-ERd
		d.movRegInd(SizeByte, lb, ModePostInc)
	case 0x6d: // MOV.W @ERs+, Rd / MOV.W Rs, @-ERd
		d.movRegInd(SizeWord, lb, ModePostInc)
	case 0x6e: // MOV.B @(d:16,ERs), Rd / reverse
		d.movRegInd(SizeByte, lb, ModeDisp16)
		d.inst.Disp = int32(int16(d.fetch()))
	case 0x6f: // MOV.W @(d:16,ERs), Rd / reverse
		d.movRegInd(SizeWord, lb, ModeDisp16)
		d.inst.Disp = int32(int16(d.fetch()))

	case 0x70: // BSET #x:3, Rd
		if lb&0x80 == 0 {
			i.Kind, i.Mode, i.Rd, i.Bit = KindBset, ModeReg, lb&0x0f, (lb>>4)&0x07
		}
	case 0x71: // BNOT #x:3, Rd
		if lb&0x80 == 0 {
			i.Kind, i.Mode, i.Rd, i.Bit = KindBnot, ModeReg, lb&0x0f, (lb>>4)&0x07
		}
	case 0x72: // BCLR #x:3, Rd
		if lb&0x80 == 0 {
			i.Kind, i.Mode, i.Rd, i.Bit = KindBclr, ModeReg, lb&0x0f, (lb>>4)&0x07
		}
	case 0x73: // BTST #x:3, Rd
		if lb&0x80 == 0 {
			i.Kind, i.Mode, i.Rd, i.Bit = KindBtst, ModeReg, lb&0x0f, (lb>>4)&0x07
		}
	case 0x74: // BOR / BIOR #x:3, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.Invert = KindBor, ModeReg, lb&0x0f, (lb>>4)&0x07, lb&0x80 != 0
	case 0x75: // BXOR / BIXOR #x:3, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.Invert = KindBxor, ModeReg, lb&0x0f, (lb>>4)&0x07, lb&0x80 != 0
	case 0x76: // BAND / BIAND #x:3, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.Invert = KindBand, ModeReg, lb&0x0f, (lb>>4)&0x07, lb&0x80 != 0
	case 0x77: // BLD / BILD #x:3, Rd
		i.Kind, i.Mode, i.Rd, i.Bit, i.Invert = KindBld, ModeReg, lb&0x0f, (lb>>4)&0x07, lb&0x80 != 0

	case 0x78:
		d.decodeDisp24(w)
	case 0x79:
		d.decodeImmWord(w, SizeWord)
	case 0x7a:
		d.decodeImmWord(w, SizeLong)
	case 0x7b:
		// EEPMOV's second word is a fixed pattern.
		switch {
		case lb == 0x5c && d.fetch() == 0x598f:
			i.Kind = KindEepmovB
		case lb == 0xd4 && d.fetch() == 0x598f:
			i.Kind = KindEepmovW
		}
	case 0x7c:
		if lb&0x8f == 0 {
			d.decodeBitMem(ModeInd, (lb>>4)&0x07, 0, false)
		}
	case 0x7d:
		if lb&0x8f == 0 {
			d.decodeBitMem(ModeInd, (lb>>4)&0x07, 0, true)
		}
	case 0x7e:
		d.decodeBitMem(ModeAbs8, 0, 0xff00|uint32(lb), false)
	case 0x7f:
		d.decodeBitMem(ModeAbs8, 0, 0xff00|uint32(lb), true)

	case 0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x86, 0x87,
		0x88, 0x89, 0x8a, 0x8b, 0x8c, 0x8d, 0x8e, 0x8f:
		// ADD.B #xx:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd, i.Imm = KindAdd, SizeByte, ModeImm, hb&0x0f, uint32(lb)
	case 0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x96, 0x97,
		0x98, 0x99, 0x9a, 0x9b, 0x9c, 0x9d, 0x9e, 0x9f:
		// ADDX #xx:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd, i.Imm = KindAddx, SizeByte, ModeImm, hb&0x0f, uint32(lb)
	case 0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7,
		0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf:
		// CMP.B #xx:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd, i.Imm = KindCmp, SizeByte, ModeImm, hb&0x0f, uint32(lb)
	case 0xb0, 0xb1, 0xb2, 0xb3, 0xb4, 0xb5, 0xb6, 0xb7,
		0xb8, 0xb9, 0xba, 0xbb, 0xbc, 0xbd, 0xbe, 0xbf:
		// SUBX #xx:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd, i.Imm = KindSubx, SizeByte, ModeImm, hb&0x0f, uint32(lb)
	case 0xc0, 0xc1, 0xc2, 0xc3, 0xc4, 0xc5, 0xc6, 0xc7,
		0xc8, 0xc9, 0xca, 0xcb, 0xcc, 0xcd, 0xce, 0xcf:
		// OR.B #xx:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd, i.Imm = KindOr, SizeByte, ModeImm, hb&0x0f, uint32(lb)
	case 0xd0, 0xd1, 0xd2, 0xd3, 0xd4, 0xd5, 0xd6, 0xd7,
		0xd8, 0xd9, 0xda, 0xdb, 0xdc, 0xdd, 0xde, 0xdf:
		// XOR.B #xx:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd, i.Imm = KindXor, SizeByte, ModeImm, hb&0x0f, uint32(lb)
	case 0xe0, 0xe1, 0xe2, 0xe3, 0xe4, 0xe5, 0xe6, 0xe7,
		0xe8, 0xe9, 0xea, 0xeb, 0xec, 0xed, 0xee, 0xef:
		// AND.B #xx:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd, i.Imm = KindAnd, SizeByte, ModeImm, hb&0x0f, uint32(lb)
	default:
		// MOV.B #xx:8, Rd
		i.Kind, i.Size, i.Mode, i.Rd, i.Imm = KindMov, SizeByte, ModeImm, hb&0x0f, uint32(lb)
	}
}

// decodePrefix01 handles the 0x01-prefixed families: MOV.L memory
// forms, LDC/STC.W memory forms, SLEEP, and the signed multiply/divide
// and 32-bit logical groups that carry a second opcode word.
func (d *decoder) decodePrefix01(w uint16) {
	i := &d.inst

	switch uint8(w) {
	case 0x00: // MOV.L memory forms
		w2 := d.fetch()
		d.decodeMoveLong(w2)
	case 0x40: // LDC.W / STC.W memory forms
		w2 := d.fetch()
		d.decodeLdcStc(w2)
	case 0x80:
		i.Kind = KindSleep
	case 0xc0:
		w2 := d.fetch()
		switch {
		case w2&0xff00 == 0x5000: // MULXS.B Rs, Rd
			i.Kind, i.Size, i.Rs, i.Rd = KindMulxs, SizeByte, uint8(w2>>4)&0x0f, uint8(w2)&0x0f
		case w2&0xff08 == 0x5200: // MULXS.W Rs, ERd
			i.Kind, i.Size, i.Rs, i.Rd = KindMulxs, SizeWord, uint8(w2>>4)&0x0f, uint8(w2)&0x07
		}
	case 0xd0:
		w2 := d.fetch()
		switch {
		case w2&0xff00 == 0x5100: // DIVXS.B Rs, Rd
			i.Kind, i.Size, i.Rs, i.Rd = KindDivxs, SizeByte, uint8(w2>>4)&0x0f, uint8(w2)&0x0f
		case w2&0xff08 == 0x5300: // DIVXS.W Rs, ERd
			i.Kind, i.Size, i.Rs, i.Rd = KindDivxs, SizeWord, uint8(w2>>4)&0x0f, uint8(w2)&0x07
		}
	case 0xf0:
		w2 := d.fetch()
		kind := KindUndefined
		switch w2 & 0xff88 {
		case 0x6400:
			kind = KindOr
		case 0x6500:
			kind = KindXor
		case 0x6600:
			kind = KindAnd
		}
		if kind != KindUndefined { // op.L ERs, ERd
			i.Kind, i.Size, i.Mode = kind, SizeLong, ModeReg
			i.Rs, i.Rd = uint8(w2>>4)&0x07, uint8(w2)&0x07
		}
	}
}

// decodeMoveLong handles the second opcode word of the 0x0100-prefixed
// MOV.L memory forms.
func (d *decoder) decodeMoveLong(w2 uint16) {
	i := &d.inst
	lb := uint8(w2)

	switch uint8(w2 >> 8) {
	case 0x69: // MOV.L @ERs, ERd / MOV.L ERs, @ERd
		d.movRegIndLong(lb, ModeInd)
	case 0x6b:
		d.movAbs(SizeLong, lb)
	case 0x6d: // MOV.L @ERs+, ERd / MOV.L ERs, @-ERd
		d.movRegIndLong(lb, ModePostInc)
	case 0x6f: // MOV.L @(d:16,ERs), ERd / reverse
		d.movRegIndLong(lb, ModeDisp16)
		i.Disp = int32(int16(d.fetch()))
	case 0x78: // MOV.L @(d:24,ERs), ERd / reverse
		if lb&0x8f != 0 {
			return
		}
		ptr := (lb >> 4) & 0x07
		w3 := d.fetch()
		if w3&0xff00 != 0x6b00 {
			return
		}
		sub := uint8(w3>>4) & 0x0f
		if sub != 0x02 && sub != 0x0a {
			return
		}
		i.Kind, i.Size, i.Mode = KindMov, SizeLong, ModeDisp24
		i.Rs, i.Rd, i.Store = ptr, uint8(w3)&0x07, sub == 0x0a
		i.Disp = int32(d.fetch32() << 8) >> 8
	}
}

// decodeLdcStc handles the second opcode word of the 0x0140-prefixed
// LDC.W/STC.W memory forms. Bit 7 of the register byte selects the
// store direction (STC); the data register field is always zero.
func (d *decoder) decodeLdcStc(w2 uint16) {
	i := &d.inst
	lb := uint8(w2)
	store := lb&0x80 != 0

	switch uint8(w2 >> 8) {
	case 0x69: // @ERn
		if lb&0x0f == 0 {
			i.Kind, i.Mode = ldcStcKind(store), ModeInd
			i.Size, i.Rs, i.Store = SizeWord, (lb>>4)&0x07, store
		}
	case 0x6b: // @aa:16 / @aa:24
		switch lb {
		case 0x00, 0x80:
			i.Kind, i.Mode, i.Size, i.Store = ldcStcKind(store), ModeAbs16, SizeWord, store
			i.EA = uint32(d.fetch())
		case 0x20, 0xa0:
			i.Kind, i.Mode, i.Size, i.Store = ldcStcKind(store), ModeAbs24, SizeWord, store
			i.EA = d.fetch32() & 0xffffff
		}
	case 0x6d: // LDC.W @ERn+ / STC.W @-ERn
		if lb&0x0f == 0 {
			mode := ModePostInc
			if store {
				mode = ModePreDec
			}
			i.Kind, i.Mode = ldcStcKind(store), mode
			i.Size, i.Rs, i.Store = SizeWord, (lb>>4)&0x07, store
		}
	case 0x6f: // @(d:16,ERn)
		if lb&0x0f == 0 {
			i.Kind, i.Mode = ldcStcKind(store), ModeDisp16
			i.Size, i.Rs, i.Store = SizeWord, (lb>>4)&0x07, store
			i.Disp = int32(int16(d.fetch()))
		}
	case 0x78: // @(d:24,ERn)
		if lb&0x8f != 0 {
			return
		}
		ptr := (lb >> 4) & 0x07
		w3 := d.fetch()
		if w3 != 0x6b20 && w3 != 0x6ba0 {
			return
		}
		store = w3 == 0x6ba0
		i.Kind, i.Mode = ldcStcKind(store), ModeDisp24
		i.Size, i.Rs, i.Store = SizeWord, ptr, store
		i.Disp = int32(d.fetch32() << 8) >> 8
	}
}

func ldcStcKind(store bool) Kind {
	if store {
		return KindStc
	}
	return KindLdc
}

// decodeIncAdds handles the 0x0b/0x1b column: ADDS/SUBS on ERd and
// INC/DEC with increment 1 or 2 on Rd/ERd.
func (d *decoder) decodeIncAdds(w uint16, stepKind, unitKind Kind) {
	i := &d.inst
	lb := uint8(w)

	switch lb >> 4 {
	case 0x0: // ADDS/SUBS #1, ERd
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd, i.Imm = stepKind, SizeLong, lb&0x07, 1
		}
	case 0x8: // ADDS/SUBS #2, ERd
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd, i.Imm = stepKind, SizeLong, lb&0x07, 2
		}
	case 0x9: // ADDS/SUBS #4, ERd
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd, i.Imm = stepKind, SizeLong, lb&0x07, 4
		}
	case 0x5: // INC/DEC.W #1, Rd
		i.Kind, i.Size, i.Rd, i.Imm = unitKind, SizeWord, lb&0x0f, 1
	case 0xd: // INC/DEC.W #2, Rd
		i.Kind, i.Size, i.Rd, i.Imm = unitKind, SizeWord, lb&0x0f, 2
	case 0x7: // INC/DEC.L #1, ERd
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd, i.Imm = unitKind, SizeLong, lb&0x07, 1
		}
	case 0xf: // INC/DEC.L #2, ERd
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd, i.Imm = unitKind, SizeLong, lb&0x07, 2
		}
	}
}

// decodeShift handles one shift/rotate column (0x10-0x13): the low
// variant in sub-nibbles 0/1/3 and the high variant in 8/9/b.
func (d *decoder) decodeShift(w uint16, low, high Kind) {
	i := &d.inst
	lb := uint8(w)

	switch lb >> 4 {
	case 0x0:
		i.Kind, i.Size, i.Rd = low, SizeByte, lb&0x0f
	case 0x1:
		i.Kind, i.Size, i.Rd = low, SizeWord, lb&0x0f
	case 0x3:
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd = low, SizeLong, lb&0x07
		}
	case 0x8:
		i.Kind, i.Size, i.Rd = high, SizeByte, lb&0x0f
	case 0x9:
		i.Kind, i.Size, i.Rd = high, SizeWord, lb&0x0f
	case 0xb:
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd = high, SizeLong, lb&0x07
		}
	}
}

// decodeUnary17 handles the 0x17 column: NOT, NEG, EXTU and EXTS.
func (d *decoder) decodeUnary17(w uint16) {
	i := &d.inst
	lb := uint8(w)

	switch lb >> 4 {
	case 0x0:
		i.Kind, i.Size, i.Rd = KindNot, SizeByte, lb&0x0f
	case 0x1:
		i.Kind, i.Size, i.Rd = KindNot, SizeWord, lb&0x0f
	case 0x3:
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd = KindNot, SizeLong, lb&0x07
		}
	case 0x5:
		i.Kind, i.Size, i.Rd = KindExtu, SizeWord, lb&0x0f
	case 0x7:
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd = KindExtu, SizeLong, lb&0x07
		}
	case 0x8:
		i.Kind, i.Size, i.Rd = KindNeg, SizeByte, lb&0x0f
	case 0x9:
		i.Kind, i.Size, i.Rd = KindNeg, SizeWord, lb&0x0f
	case 0xb:
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd = KindNeg, SizeLong, lb&0x07
		}
	case 0xd:
		i.Kind, i.Size, i.Rd = KindExts, SizeWord, lb&0x0f
	case 0xf:
		if lb&0x08 == 0 {
			i.Kind, i.Size, i.Rd = KindExts, SizeLong, lb&0x07
		}
	}
}

// decodeImmWord handles the 0x79/0x7a columns: word/long immediate
// arithmetic and logic, selected by the sub-opcode nibble.
func (d *decoder) decodeImmWord(w uint16, size Size) {
	i := &d.inst
	lb := uint8(w)

	var kind Kind
	switch lb >> 4 {
	case 0x0:
		kind = KindMov
	case 0x1:
		kind = KindAdd
	case 0x2:
		kind = KindCmp
	case 0x3:
		kind = KindSub
	case 0x4:
		kind = KindOr
	case 0x5:
		kind = KindXor
	case 0x6:
		kind = KindAnd
	default:
		return
	}

	rd := lb & 0x0f
	if size == SizeLong {
		if lb&0x08 != 0 {
			return
		}
		rd = lb & 0x07
	}

	i.Kind, i.Size, i.Mode, i.Rd = kind, size, ModeImm, rd
	if size == SizeLong {
		i.Imm = d.fetch32()
	} else {
		i.Imm = uint32(d.fetch())
	}
}

// movRegInd decodes the register-indirect MOV forms whose register
// byte carries the pointer register in the high nibble (bit 7 = store
// direction) and the data register in the low nibble. For the
// post-increment column, the store direction is pre-decrement.
func (d *decoder) movRegInd(size Size, lb uint8, mode AddrMode) {
	i := &d.inst
	store := lb&0x80 != 0
	if mode == ModePostInc && store {
		mode = ModePreDec
	}
	i.Kind, i.Size, i.Mode = KindMov, size, mode
	i.Rs, i.Rd, i.Store = (lb>>4)&0x07, lb&0x0f, store
}

// movRegIndLong is movRegInd for the MOV.L forms, whose data register
// field is three bits.
func (d *decoder) movRegIndLong(lb uint8, mode AddrMode) {
	if lb&0x08 != 0 {
		return
	}
	d.movRegInd(SizeLong, lb&0xf7, mode)
	d.inst.Rd = lb & 0x07
}

// movAbs decodes the 0x6a/0x6b absolute-address MOV columns, shared
// with the MOV.L forms behind the 0x0100 prefix.
func (d *decoder) movAbs(size Size, lb uint8) {
	i := &d.inst
	rd := lb & 0x0f
	if size == SizeLong {
		if lb&0x08 != 0 {
			return
		}
		rd = lb & 0x07
	}

	switch (lb >> 4) & 0x0f {
	case 0x0: // MOV @aa:16, Rd
		i.Kind, i.Size, i.Mode, i.Rd = KindMov, size, ModeAbs16, rd
		i.EA = uint32(d.fetch())
	case 0x2: // MOV @aa:24, Rd
		i.Kind, i.Size, i.Mode, i.Rd = KindMov, size, ModeAbs24, rd
		i.EA = d.fetch32() & 0xffffff
	case 0x4: // MOVFPE @aa:16, Rd (byte only; plain move here)
		if size == SizeByte {
			i.Kind, i.Size, i.Mode, i.Rd = KindMov, size, ModeAbs16, rd
			i.EA = uint32(d.fetch())
		}
	case 0x8: // MOV Rd, @aa:16
		i.Kind, i.Size, i.Mode, i.Rd, i.Store = KindMov, size, ModeAbs16, rd, true
		i.EA = uint32(d.fetch())
	case 0xa: // MOV Rd, @aa:24
		i.Kind, i.Size, i.Mode, i.Rd, i.Store = KindMov, size, ModeAbs24, rd, true
		i.EA = d.fetch32() & 0xffffff
	case 0xc: // MOVTPE Rd, @aa:16 (byte only; plain move here)
		if size == SizeByte {
			i.Kind, i.Size, i.Mode, i.Rd, i.Store = KindMov, size, ModeAbs16, rd, true
			i.EA = uint32(d.fetch())
		}
	}
}

// decodeDisp24 decodes the 0x78-prefixed MOV @(d:24,ERn) forms. The
// second opcode word selects byte (0x6a) or word (0x6b) width and the
// load/store sub-nibble.
func (d *decoder) decodeDisp24(w uint16) {
	i := &d.inst
	lb := uint8(w)
	if lb&0x8f != 0 {
		return
	}
	ptr := (lb >> 4) & 0x07

	w2 := d.fetch()
	var size Size
	switch uint8(w2 >> 8) {
	case 0x6a:
		size = SizeByte
	case 0x6b:
		size = SizeWord
	default:
		return
	}

	sub := uint8(w2>>4) & 0x0f
	if sub != 0x02 && sub != 0x0a {
		return
	}

	i.Kind, i.Size, i.Mode = KindMov, size, ModeDisp24
	i.Rs, i.Rd, i.Store = ptr, uint8(w2)&0x0f, sub == 0x0a
	i.Disp = int32(d.fetch32() << 8) >> 8
}

// decodeBitMem decodes the bit-manipulation forms that address memory:
// @ERn via the 0x7c/0x7d prefixes and @aa:8 via 0x7e/0x7f. Read-style
// operations (BTST, BAND, BOR, BXOR, BLD) live in the 0x7c/0x7e
// column; write-style (BSET, BCLR, BNOT, BST) in 0x7d/0x7f.
func (d *decoder) decodeBitMem(mode AddrMode, ptr uint8, ea uint32, write bool) {
	i := &d.inst
	w2 := d.fetch()
	lb := uint8(w2)
	if lb&0x0f != 0 {
		return
	}
	bit := (lb >> 4) & 0x07
	invert := lb&0x80 != 0

	var kind Kind
	bitReg := false

	if write {
		switch uint8(w2 >> 8) {
		case 0x60:
			kind, bitReg = KindBset, true
		case 0x61:
			kind, bitReg = KindBnot, true
		case 0x62:
			kind, bitReg = KindBclr, true
		case 0x67:
			kind = KindBst
		case 0x70:
			if invert {
				return
			}
			kind = KindBset
		case 0x71:
			if invert {
				return
			}
			kind = KindBnot
		case 0x72:
			if invert {
				return
			}
			kind = KindBclr
		default:
			return
		}
	} else {
		switch uint8(w2 >> 8) {
		case 0x63:
			kind, bitReg = KindBtst, true
		case 0x73:
			if invert {
				return
			}
			kind = KindBtst
		case 0x74:
			kind = KindBor
		case 0x75:
			kind = KindBxor
		case 0x76:
			kind = KindBand
		case 0x77:
			kind = KindBld
		default:
			return
		}
	}

	i.Kind, i.Size, i.Mode = kind, SizeByte, mode
	i.Rs, i.EA = ptr, ea
	if bitReg {
		i.Bit, i.BitReg = uint8(w2>>4)&0x0f, true
		i.Invert = false
	} else {
		i.Bit, i.Invert = bit, invert
	}
}
