package disassembler

import (
	"fmt"

	"github.com/Ankeraout/emuwalker/cpu"
)

// mnemonics for the kinds whose name does not depend on operands.
var mnemonics = map[cpu.Kind]string{
	cpu.KindNop:     "nop",
	cpu.KindSleep:   "sleep",
	cpu.KindRts:     "rts",
	cpu.KindRte:     "rte",
	cpu.KindMov:     "mov",
	cpu.KindEepmovB: "eepmov.b",
	cpu.KindEepmovW: "eepmov.w",
	cpu.KindAdd:     "add",
	cpu.KindAddx:    "addx",
	cpu.KindAdds:    "adds",
	cpu.KindSub:     "sub",
	cpu.KindSubx:    "subx",
	cpu.KindSubs:    "subs",
	cpu.KindInc:     "inc",
	cpu.KindDec:     "dec",
	cpu.KindNeg:     "neg",
	cpu.KindCmp:     "cmp",
	cpu.KindDaa:     "daa",
	cpu.KindDas:     "das",
	cpu.KindMulxu:   "mulxu",
	cpu.KindMulxs:   "mulxs",
	cpu.KindDivxu:   "divxu",
	cpu.KindDivxs:   "divxs",
	cpu.KindAnd:     "and",
	cpu.KindOr:      "or",
	cpu.KindXor:     "xor",
	cpu.KindNot:     "not",
	cpu.KindExtu:    "extu",
	cpu.KindExts:    "exts",
	cpu.KindShal:    "shal",
	cpu.KindShar:    "shar",
	cpu.KindShll:    "shll",
	cpu.KindShlr:    "shlr",
	cpu.KindRotl:    "rotl",
	cpu.KindRotr:    "rotr",
	cpu.KindRotxl:   "rotxl",
	cpu.KindRotxr:   "rotxr",
	cpu.KindJmp:     "jmp",
	cpu.KindJsr:     "jsr",
	cpu.KindBsr:     "bsr",
	cpu.KindAndc:    "andc",
	cpu.KindOrc:     "orc",
	cpu.KindXorc:    "xorc",
	cpu.KindLdc:     "ldc",
	cpu.KindStc:     "stc",
}

// branchNames indexes the Bcc mnemonics by condition code.
var branchNames = [16]string{
	"bra", "brn", "bhi", "bls", "bcc", "bcs", "bne", "beq",
	"bvc", "bvs", "bpl", "bmi", "bge", "blt", "bgt", "ble",
}

// bitNames indexes the bit-manipulation mnemonics; the BIxx variants
// insert an "i" after the leading "b".
var bitNames = map[cpu.Kind]string{
	cpu.KindBset: "bset",
	cpu.KindBclr: "bclr",
	cpu.KindBnot: "bnot",
	cpu.KindBtst: "btst",
	cpu.KindBand: "band",
	cpu.KindBor:  "bor",
	cpu.KindBxor: "bxor",
	cpu.KindBld:  "bld",
	cpu.KindBst:  "bst",
}

// Format renders one decoded instruction. next is the address of the
// following instruction, the base for branch displacements.
func Format(i *cpu.Instruction, next uint32) string {
	switch i.Kind {
	case cpu.KindUndefined:
		return fmt.Sprintf(".word 0x%04x", i.Words[0])
	case cpu.KindNop, cpu.KindSleep, cpu.KindRts, cpu.KindRte,
		cpu.KindEepmovB, cpu.KindEepmovW:
		return mnemonics[i.Kind]
	case cpu.KindTrapa:
		return fmt.Sprintf("trapa #%d", i.Imm)
	case cpu.KindBcc:
		return fmt.Sprintf("%s 0x%x", branchNames[i.Cond&0x0f], next+uint32(i.Disp))
	case cpu.KindBsr:
		return fmt.Sprintf("bsr 0x%x", next+uint32(i.Disp))
	case cpu.KindJmp, cpu.KindJsr:
		return fmt.Sprintf("%s %s", mnemonics[i.Kind], jumpOperand(i))
	case cpu.KindAndc, cpu.KindOrc, cpu.KindXorc:
		return fmt.Sprintf("%s #0x%02x, ccr", mnemonics[i.Kind], i.Imm)
	case cpu.KindLdc:
		return formatLdc(i)
	case cpu.KindStc:
		return formatStc(i)
	case cpu.KindMov:
		return formatMov(i)
	case cpu.KindAdds, cpu.KindSubs:
		return fmt.Sprintf("%s #%d, %s", mnemonics[i.Kind], i.Imm, reg32Name(i.Rd))
	case cpu.KindInc, cpu.KindDec:
		if i.Size == cpu.SizeByte {
			return fmt.Sprintf("%s.b %s", mnemonics[i.Kind], reg8Name(i.Rd))
		}
		return fmt.Sprintf("%s%s #%d, %s", mnemonics[i.Kind], sizeSuffix(i.Size), i.Imm, regName(i.Rd, i.Size))
	case cpu.KindNeg, cpu.KindNot, cpu.KindExtu, cpu.KindExts,
		cpu.KindDaa, cpu.KindDas,
		cpu.KindShal, cpu.KindShar, cpu.KindShll, cpu.KindShlr,
		cpu.KindRotl, cpu.KindRotr, cpu.KindRotxl, cpu.KindRotxr:
		return fmt.Sprintf("%s%s %s", mnemonics[i.Kind], sizeSuffix(i.Size), regName(i.Rd, i.Size))
	case cpu.KindMulxu, cpu.KindMulxs, cpu.KindDivxu, cpu.KindDivxs:
		// The destination is one width up from the named size.
		dst := reg16Name(i.Rd)
		if i.Size == cpu.SizeWord {
			dst = reg32Name(i.Rd)
		}
		return fmt.Sprintf("%s%s %s, %s", mnemonics[i.Kind], sizeSuffix(i.Size), regName(i.Rs, i.Size), dst)
	case cpu.KindBset, cpu.KindBclr, cpu.KindBnot, cpu.KindBtst,
		cpu.KindBand, cpu.KindBor, cpu.KindBxor, cpu.KindBld, cpu.KindBst:
		return formatBit(i)
	default:
		return formatTwoOperand(i)
	}
}

// formatTwoOperand renders the register/immediate arithmetic and
// logical families.
func formatTwoOperand(i *cpu.Instruction) string {
	name := mnemonics[i.Kind] + sizeSuffix(i.Size)
	if i.Mode == cpu.ModeImm {
		return fmt.Sprintf("%s #0x%x, %s", name, i.Imm, regName(i.Rd, i.Size))
	}
	return fmt.Sprintf("%s %s, %s", name, regName(i.Rs, i.Size), regName(i.Rd, i.Size))
}

// formatMov renders every MOV form.
func formatMov(i *cpu.Instruction) string {
	name := "mov" + sizeSuffix(i.Size)
	reg := regName(i.Rd, i.Size)

	switch {
	case i.Mode == cpu.ModeReg:
		return fmt.Sprintf("%s %s, %s", name, regName(i.Rs, i.Size), reg)
	case i.Mode == cpu.ModeImm:
		return fmt.Sprintf("%s #0x%x, %s", name, i.Imm, reg)
	case i.Store:
		return fmt.Sprintf("%s %s, %s", name, reg, memOperand(i))
	default:
		return fmt.Sprintf("%s %s, %s", name, memOperand(i), reg)
	}
}

// formatBit renders the bit-manipulation family.
func formatBit(i *cpu.Instruction) string {
	name := bitNames[i.Kind]
	if i.Invert {
		name = "bi" + name[1:]
	}

	var bit string
	if i.BitReg {
		bit = reg8Name(i.Bit)
	} else {
		bit = fmt.Sprintf("#%d", i.Bit)
	}

	if i.Mode == cpu.ModeReg {
		return fmt.Sprintf("%s %s, %s", name, bit, reg8Name(i.Rd))
	}
	return fmt.Sprintf("%s %s, %s", name, bit, memOperand(i))
}

func formatLdc(i *cpu.Instruction) string {
	switch i.Mode {
	case cpu.ModeReg:
		return fmt.Sprintf("ldc.b %s, ccr", reg8Name(i.Rs))
	case cpu.ModeImm:
		return fmt.Sprintf("ldc.b #0x%02x, ccr", i.Imm)
	default:
		return fmt.Sprintf("ldc.w %s, ccr", memOperand(i))
	}
}

func formatStc(i *cpu.Instruction) string {
	if i.Mode == cpu.ModeReg {
		return fmt.Sprintf("stc.b ccr, %s", reg8Name(i.Rd))
	}
	return fmt.Sprintf("stc.w ccr, %s", memOperand(i))
}

// memOperand renders a memory operand in H8 syntax.
func memOperand(i *cpu.Instruction) string {
	switch i.Mode {
	case cpu.ModeInd:
		return fmt.Sprintf("@%s", reg32Name(i.Rs))
	case cpu.ModePostInc:
		return fmt.Sprintf("@%s+", reg32Name(i.Rs))
	case cpu.ModePreDec:
		return fmt.Sprintf("@-%s", reg32Name(i.Rs))
	case cpu.ModeDisp16:
		return fmt.Sprintf("@(0x%x:16,%s)", uint16(i.Disp), reg32Name(i.Rs))
	case cpu.ModeDisp24:
		return fmt.Sprintf("@(0x%x:24,%s)", uint32(i.Disp)&0xffffff, reg32Name(i.Rs))
	case cpu.ModeAbs8:
		return fmt.Sprintf("@0x%02x:8", uint8(i.EA))
	case cpu.ModeAbs16:
		return fmt.Sprintf("@0x%04x:16", uint16(i.EA))
	case cpu.ModeAbs24:
		return fmt.Sprintf("@0x%06x:24", i.EA)
	default:
		return "?"
	}
}

// jumpOperand renders a JMP/JSR target.
func jumpOperand(i *cpu.Instruction) string {
	switch i.Mode {
	case cpu.ModeInd:
		return fmt.Sprintf("@%s", reg32Name(i.Rs))
	case cpu.ModeMemInd:
		return fmt.Sprintf("@@0x%02x:8", i.EA)
	default:
		return fmt.Sprintf("@0x%06x:24", i.EA)
	}
}

func sizeSuffix(s cpu.Size) string {
	switch s {
	case cpu.SizeByte:
		return ".b"
	case cpu.SizeWord:
		return ".w"
	case cpu.SizeLong:
		return ".l"
	}
	return ""
}

// reg8Name names an 8-bit register by operand code: r0h..r7h, r0l..r7l.
func reg8Name(code uint8) string {
	if code&0x08 == 0 {
		return fmt.Sprintf("r%dh", code&0x07)
	}
	return fmt.Sprintf("r%dl", code&0x07)
}

// reg16Name names a 16-bit register by operand code: r0..r7, e0..e7.
func reg16Name(code uint8) string {
	if code&0x08 == 0 {
		return fmt.Sprintf("r%d", code&0x07)
	}
	return fmt.Sprintf("e%d", code&0x07)
}

// reg32Name names a general register: er0..er7.
func reg32Name(code uint8) string {
	return fmt.Sprintf("er%d", code&0x07)
}

// regName names a register at the given operand width.
func regName(code uint8, size cpu.Size) string {
	switch size {
	case cpu.SizeByte:
		return reg8Name(code)
	case cpu.SizeWord:
		return reg16Name(code)
	}
	return reg32Name(code)
}
