// Package disassembler renders H8/300H machine code as assembly text.
// It reuses the cpu package's decoder, so the listing always agrees
// with what the interpreter would execute.
package disassembler

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Ankeraout/emuwalker/cpu"
)

// sliceFetcher feeds big-endian opcode words to the decoder from a
// byte slice. Reads past the end return all ones; the decoder takes
// them as ordinary opcode words, so an instruction cut off by the end
// of the code decodes with 0xffff in place of its missing words.
type sliceFetcher struct {
	code []byte
	pos  int
}

func (f *sliceFetcher) Fetch16() uint16 {
	if f.pos+1 >= len(f.code) {
		f.pos += 2
		return 0xffff
	}
	w := binary.BigEndian.Uint16(f.code[f.pos:])
	f.pos += 2
	return w
}

// Line is one disassembled instruction.
type Line struct {
	Address uint32
	Inst    cpu.Instruction
	Text    string
}

// Disassemble performs a linear sweep over the code and returns the
// listing as text: address, raw opcode words and assembly per line.
func Disassemble(code []byte) (string, error) {
	lines, err := Sweep(code, 0)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, l := range lines {
		count := l.Inst.WordCount
		if count > len(l.Inst.Words) {
			count = len(l.Inst.Words)
		}
		raw := make([]string, count)
		for n := 0; n < count; n++ {
			raw[n] = fmt.Sprintf("%04x", l.Inst.Words[n])
		}
		fmt.Fprintf(&out, "%06x: %-20s %s\n", l.Address, strings.Join(raw, " "), l.Text)
	}
	return out.String(), nil
}

// Sweep decodes every instruction in the code, assuming it starts at
// the given load address.
func Sweep(code []byte, origin uint32) ([]Line, error) {
	if len(code)%2 != 0 {
		return nil, fmt.Errorf("disassembler: code length %d is odd", len(code))
	}

	f := &sliceFetcher{code: code}
	var lines []Line
	for f.pos < len(code) {
		addr := origin + uint32(f.pos)
		inst := cpu.Decode(f)
		next := origin + uint32(f.pos)
		lines = append(lines, Line{
			Address: addr,
			Inst:    inst,
			Text:    Format(&inst, next),
		})
	}
	return lines, nil
}
