package cpu

import "testing"

// testBus is a flat 64 KiB memory with big-endian word access, enough
// to run any instruction without the real peripherals.
type testBus struct {
	mem [65536]byte
}

func (b *testBus) Read8(addr uint16) uint8 {
	return b.mem[addr]
}

func (b *testBus) Read16(addr uint16) uint16 {
	addr &= 0xfffe
	return uint16(b.mem[addr])<<8 | uint16(b.mem[addr+1])
}

func (b *testBus) Read32(addr uint16) uint32 {
	return uint32(b.Read16(addr))<<16 | uint32(b.Read16(addr+2))
}

func (b *testBus) Write8(addr uint16, value uint8) {
	b.mem[addr] = value
}

func (b *testBus) Write16(addr uint16, value uint16) {
	addr &= 0xfffe
	b.mem[addr] = uint8(value >> 8)
	b.mem[addr+1] = uint8(value)
}

func (b *testBus) Write32(addr uint16, value uint32) {
	b.Write16(addr, uint16(value>>16))
	b.Write16(addr+2, uint16(value))
}

func (b *testBus) Cycle() {}

// newTestCPU returns a CPU past its reset-vector fetch, with PC at 0.
func newTestCPU() (*CPU, *testBus) {
	b := &testBus{}
	c := New(b)
	c.Initialized = true
	c.CCR = 0
	return c, b
}

// load places code bytes at an address.
func load(b *testBus, addr uint16, code ...byte) {
	copy(b.mem[addr:], code)
}

// checkFlags compares the arithmetic flags against an expected
// "hnzvc"-order set of booleans.
func checkFlags(t *testing.T, c *CPU, h, n, z, v, carry bool) {
	t.Helper()
	for _, f := range []struct {
		name string
		mask uint8
		want bool
	}{
		{"H", FlagH, h},
		{"N", FlagN, n},
		{"Z", FlagZ, z},
		{"V", FlagV, v},
		{"C", FlagC, carry},
	} {
		if got := c.flag(f.mask); got != f.want {
			t.Errorf("flag %s = %v, want %v (CCR=%02x)", f.name, got, f.want, c.CCR)
		}
	}
}

func TestResetState(t *testing.T) {
	b := &testBus{}
	c := New(b)

	for n := uint8(0); n < 8; n++ {
		if c.Register32(n) != 0 {
			t.Errorf("ER%d = %08x, want 0", n, c.Register32(n))
		}
	}
	if c.CCR != 0x80 {
		t.Errorf("CCR = %02x, want 80 (I set)", c.CCR)
	}
	if c.PC != 0 {
		t.Errorf("PC = %08x, want 0", c.PC)
	}
	if c.Initialized {
		t.Error("Initialized = true after reset")
	}
}

func TestResetVectorFetch(t *testing.T) {
	b := &testBus{}
	c := New(b)
	load(b, 0x0000, 0x12, 0x34)
	// NOP at the vector target.
	load(b, 0x1234, 0x00, 0x00)

	c.Step()

	if c.PC != 0x1236 {
		t.Errorf("PC = %04x, want 1236 (vector 1234 + one NOP)", c.PC)
	}
	if !c.Initialized {
		t.Error("Initialized = false after first step")
	}
	if c.CCR&FlagI == 0 {
		t.Error("interrupt mask lost across the vector fetch")
	}
}

func TestRegisterViews(t *testing.T) {
	c, _ := newTestCPU()

	c.SetRegister32(3, 0x11223344)
	if got := c.Register16(3); got != 0x3344 {
		t.Errorf("R3 = %04x, want 3344", got)
	}
	if got := c.Register16(3 | 0x08); got != 0x1122 {
		t.Errorf("E3 = %04x, want 1122", got)
	}
	if got := c.Register8(3); got != 0x33 {
		t.Errorf("R3H = %02x, want 33", got)
	}
	if got := c.Register8(3 | 0x08); got != 0x44 {
		t.Errorf("R3L = %02x, want 44", got)
	}

	// Narrow writes preserve the bits outside the view.
	c.SetRegister8(3, 0xaa) // R3H
	if got := c.Register32(3); got != 0x1122aa44 {
		t.Errorf("ER3 = %08x after R3H write, want 1122aa44", got)
	}
	c.SetRegister8(3|0x08, 0xbb) // R3L
	if got := c.Register32(3); got != 0x1122aabb {
		t.Errorf("ER3 = %08x after R3L write, want 1122aabb", got)
	}
	c.SetRegister16(3|0x08, 0xccdd) // E3
	if got := c.Register32(3); got != 0xccddaabb {
		t.Errorf("ER3 = %08x after E3 write, want ccddaabb", got)
	}
	c.SetRegister16(3, 0xeeff) // R3
	if got := c.Register32(3); got != 0xccddeeff {
		t.Errorf("ER3 = %08x after R3 write, want ccddeeff", got)
	}
}

func TestUndefinedOpcodeIsNop(t *testing.T) {
	c, b := newTestCPU()
	// 0x7b with a low byte that is not an EEPMOV pattern.
	load(b, 0x0000, 0x7b, 0x00)

	c.Step()

	if c.PC != 0x0002 {
		t.Errorf("PC = %04x, want 0002 (pattern word consumed)", c.PC)
	}
}
