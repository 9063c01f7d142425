package cpu

// Size is the operand width of an instruction.
type Size int

const (
	// SizeNone marks instructions without a sized operand.
	SizeNone Size = iota
	// SizeByte is an 8-bit operation.
	SizeByte
	// SizeWord is a 16-bit operation.
	SizeWord
	// SizeLong is a 32-bit operation.
	SizeLong
)

// Bytes returns the operand width in bytes.
func (s Size) Bytes() uint32 {
	switch s {
	case SizeByte:
		return 1
	case SizeWord:
		return 2
	case SizeLong:
		return 4
	}
	return 0
}

// mask returns the operand-wide all-ones value.
func (s Size) mask() uint32 {
	switch s {
	case SizeByte:
		return 0xff
	case SizeWord:
		return 0xffff
	}
	return 0xffffffff
}

// signBit returns the operand's sign bit.
func (s Size) signBit() uint32 {
	switch s {
	case SizeByte:
		return 0x80
	case SizeWord:
		return 0x8000
	}
	return 0x80000000
}

// AddrMode is the addressing mode of an instruction's memory or
// register operand.
type AddrMode int

const (
	// ModeNone marks instructions without such an operand.
	ModeNone AddrMode = iota
	// ModeReg is register direct: Rn / ERn.
	ModeReg
	// ModeImm is immediate: #xx.
	ModeImm
	// ModeInd is register indirect: @ERn.
	ModeInd
	// ModePostInc is register indirect with post-increment: @ERn+.
	ModePostInc
	// ModePreDec is register indirect with pre-decrement: @-ERn.
	ModePreDec
	// ModeDisp16 is register indirect with 16-bit displacement: @(d:16,ERn).
	ModeDisp16
	// ModeDisp24 is register indirect with 24-bit displacement: @(d:24,ERn).
	ModeDisp24
	// ModeAbs8 is 8-bit absolute: @aa:8, in the 0xff00 page.
	ModeAbs8
	// ModeAbs16 is 16-bit absolute: @aa:16.
	ModeAbs16
	// ModeAbs24 is 24-bit absolute: @aa:24.
	ModeAbs24
	// ModeMemInd is memory indirect through a zero-page vector: @@aa:8.
	ModeMemInd
)

// Kind is the semantic instruction family a bit pattern decodes to.
type Kind int

const (
	KindUndefined Kind = iota
	KindNop
	KindSleep
	KindTrapa

	KindMov
	KindEepmovB
	KindEepmovW

	KindAdd
	KindAddx
	KindAdds
	KindSub
	KindSubx
	KindSubs
	KindInc
	KindDec
	KindNeg
	KindCmp
	KindDaa
	KindDas
	KindMulxu
	KindMulxs
	KindDivxu
	KindDivxs

	KindAnd
	KindOr
	KindXor
	KindNot
	KindExtu
	KindExts

	KindShal
	KindShar
	KindShll
	KindShlr
	KindRotl
	KindRotr
	KindRotxl
	KindRotxr

	KindBset
	KindBclr
	KindBnot
	KindBtst
	KindBand
	KindBor
	KindBxor
	KindBld
	KindBst

	KindBcc
	KindJmp
	KindJsr
	KindBsr
	KindRts
	KindRte

	KindAndc
	KindOrc
	KindXorc
	KindLdc
	KindStc
)

// Instruction is a decoded instruction: the kind plus the operand
// fields the execute step needs. Decode fills only the fields that are
// meaningful for the kind.
type Instruction struct {
	Kind Kind
	Size Size

	// Rd and Rs are destination and source register operand codes:
	// 4-bit codes for byte/word registers, 3-bit for ERn.
	Rd uint8
	Rs uint8

	// Mode describes the memory or register operand; EA carries the
	// decoded absolute address or vector, Disp the displacement for
	// the displacement modes.
	Mode AddrMode
	EA   uint32
	Disp int32

	// Store is the transfer direction for memory forms of MOV, LDC and
	// STC: false reads memory, true writes it.
	Store bool

	// Imm is the immediate operand.
	Imm uint32

	// Bit is the bit number for bit manipulation, BitReg selects the
	// register-sourced form (Bit then holds the 8-bit register code whose
	// low three bits give the bit number at run time) and Invert
	// marks the BIxx variants operating on the inverted bit.
	Bit    uint8
	BitReg bool
	Invert bool

	// Cond is the Bcc condition code.
	Cond uint8

	// Words are the raw opcode words as fetched; WordCount is how many
	// were consumed.
	Words     [5]uint16
	WordCount int
}
