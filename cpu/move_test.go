package cpu

import "testing"

func TestMovImmediateByte(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x0000,
		0xf0, 0x42, // mov.b #0x42, r0h
		0xf8, 0x99, // mov.b #0x99, r0l
	)

	c.Step()
	if got := c.Register8(0); got != 0x42 {
		t.Errorf("R0H = %02x, want 42", got)
	}
	if c.flag(FlagN) || c.flag(FlagZ) || c.flag(FlagV) {
		t.Errorf("MOV.B #42 flags wrong: CCR=%02x", c.CCR)
	}
	if c.PC != 0x0002 {
		t.Errorf("PC = %04x, want 0002", c.PC)
	}

	c.Step()
	if got := c.Register8(0x08); got != 0x99 {
		t.Errorf("R0L = %02x, want 99", got)
	}
	if !c.flag(FlagN) {
		t.Error("N clear after moving a negative byte")
	}
}

func TestMovRegisterForms(t *testing.T) {
	c, b := newTestCPU()
	c.SetRegister8(1, 0x5a)
	c.SetRegister16(2, 0x1234)
	c.SetRegister32(3, 0xcafebabe)
	load(b, 0x0000,
		0x0c, 0x10, // mov.b r1h, r0h
		0x0d, 0x24, // mov.w r2, r4
		0x0f, 0xb5, // mov.l er3, er5
	)

	c.Step()
	if got := c.Register8(0); got != 0x5a {
		t.Errorf("R0H = %02x, want 5a", got)
	}
	c.Step()
	if got := c.Register16(4); got != 0x1234 {
		t.Errorf("R4 = %04x, want 1234", got)
	}
	c.Step()
	if got := c.Register32(5); got != 0xcafebabe {
		t.Errorf("ER5 = %08x, want cafebabe", got)
	}
	if !c.flag(FlagN) {
		t.Error("N clear after moving a negative longword")
	}
}

func TestMovRoundTripAddressingModes(t *testing.T) {
	tests := []struct {
		name  string
		store []byte
		fetch []byte
	}{
		{
			"@ERn",
			[]byte{0x68, 0xa8}, // mov.b r0l, @er2
			[]byte{0x68, 0x29}, // mov.b @er2, r1l
		},
		{
			"@(d:16,ERn)",
			[]byte{0x6e, 0xa8, 0x00, 0x20}, // mov.b r0l, @(0x20:16,er2)
			[]byte{0x6e, 0x29, 0x00, 0x20}, // mov.b @(0x20:16,er2), r1l
		},
		{
			"@aa:16",
			[]byte{0x6a, 0x88, 0x81, 0x00}, // mov.b r0l, @0x8100:16
			[]byte{0x6a, 0x09, 0x81, 0x00}, // mov.b @0x8100:16, r1l
		},
		{
			"@aa:24",
			[]byte{0x6a, 0xa8, 0x00, 0x00, 0x81, 0x00}, // mov.b r0l, @0x008100:24
			[]byte{0x6a, 0x29, 0x00, 0x00, 0x81, 0x00}, // mov.b @0x008100:24, r1l
		},
		{
			"@aa:8",
			[]byte{0x38, 0x40}, // mov.b r0l, @0x40:8
			[]byte{0x29, 0x40}, // mov.b @0x40:8, r1l
		},
		{
			"@(d:24,ERn)",
			[]byte{0x78, 0x20, 0x6a, 0xa8, 0x00, 0x00, 0x00, 0x20}, // mov.b r0l, @(0x20:24,er2)
			[]byte{0x78, 0x20, 0x6a, 0x29, 0x00, 0x00, 0x00, 0x20}, // mov.b @(0x20:24,er2), r1l
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, b := newTestCPU()
			c.SetRegister32(2, 0x8000)
			c.SetRegister8(0x08, 0xa5) // R0L

			load(b, 0x0000, tc.store...)
			load(b, uint16(len(tc.store)), tc.fetch...)

			c.Step()
			c.Step()

			if got := c.Register8(0x09); got != 0xa5 {
				t.Errorf("R1L = %02x, want a5 (round trip through %s)", got, tc.name)
			}
		})
	}
}

func TestMovPostIncPreDec(t *testing.T) {
	c, b := newTestCPU()
	c.SetRegister32(2, 0x8000)
	c.SetRegister8(0x08, 0x77)
	load(b, 0x0000,
		0x6c, 0xa8, // mov.b r0l, @-er2
		0x6c, 0x29, // mov.b @er2+, r1l
	)

	c.Step()
	if got := c.Register32(2); got != 0x7fff {
		t.Errorf("ER2 = %08x after pre-decrement, want 7fff", got)
	}
	c.Step()
	if got := c.Register8(0x09); got != 0x77 {
		t.Errorf("R1L = %02x, want 77", got)
	}
	if got := c.Register32(2); got != 0x8000 {
		t.Errorf("ER2 = %08x after post-increment, want 8000", got)
	}
}

func TestPushPopIdentity(t *testing.T) {
	c, b := newTestCPU()
	c.SetRegister32(7, 0xff80)
	c.SetRegister16(0, 0xbeef)
	load(b, 0x0000,
		0x6d, 0xf0, // mov.w r0, @-er7 (push)
		0x6d, 0x71, // mov.w @er7+, r1 (pop)
	)

	c.Step()
	if got := c.Register32(7); got != 0xff7e {
		t.Errorf("ER7 = %08x after push, want ff7e", got)
	}
	c.Step()
	if got := c.Register16(1); got != 0xbeef {
		t.Errorf("R1 = %04x, want beef", got)
	}
	if got := c.Register32(7); got != 0xff80 {
		t.Errorf("ER7 = %08x after pop, want ff80", got)
	}
}

func TestMovLongForms(t *testing.T) {
	c, b := newTestCPU()
	c.SetRegister32(2, 0x8000)
	load(b, 0x0000,
		0x7a, 0x01, 0xde, 0xad, 0xbe, 0xef, // mov.l #0xdeadbeef, er1
		0x01, 0x00, 0x69, 0xa1, // mov.l er1, @er2
		0x01, 0x00, 0x69, 0x23, // mov.l @er2, er3
	)

	c.Step()
	if got := c.Register32(1); got != 0xdeadbeef {
		t.Errorf("ER1 = %08x, want deadbeef", got)
	}
	c.Step()
	if got := b.Read32(0x8000); got != 0xdeadbeef {
		t.Errorf("mem = %08x, want deadbeef", got)
	}
	c.Step()
	if got := c.Register32(3); got != 0xdeadbeef {
		t.Errorf("ER3 = %08x, want deadbeef", got)
	}
}

func TestMovLongPushPop(t *testing.T) {
	c, b := newTestCPU()
	c.SetRegister32(7, 0xff80)
	c.SetRegister32(0, 0x01020304)
	load(b, 0x0000,
		0x01, 0x00, 0x6d, 0xf0, // mov.l er0, @-er7
		0x01, 0x00, 0x6d, 0x71, // mov.l @er7+, er1
	)

	c.Step()
	if got := c.Register32(7); got != 0xff7c {
		t.Errorf("ER7 = %08x after push, want ff7c", got)
	}
	c.Step()
	if got := c.Register32(1); got != 0x01020304 {
		t.Errorf("ER1 = %08x, want 01020304", got)
	}
	if got := c.Register32(7); got != 0xff80 {
		t.Errorf("ER7 = %08x after pop, want ff80", got)
	}
}

func TestMovWordImmediate(t *testing.T) {
	c, b := newTestCPU()
	load(b, 0x0000, 0x79, 0x03, 0x12, 0x34) // mov.w #0x1234, r3

	c.Step()

	if got := c.Register16(3); got != 0x1234 {
		t.Errorf("R3 = %04x, want 1234", got)
	}
}

func TestEepmovB(t *testing.T) {
	c, b := newTestCPU()
	c.SetRegister8(regR4L, 4)
	c.SetRegister32(regER5, 0xf900)
	c.SetRegister32(regER6, 0xfa00)
	load(b, 0xf900, 0x11, 0x22, 0x33, 0x44)
	load(b, 0x0000, 0x7b, 0x5c, 0x59, 0x8f) // eepmov.b

	c.Step()

	for n, want := range []byte{0x11, 0x22, 0x33, 0x44} {
		if got := b.mem[0xfa00+n]; got != want {
			t.Errorf("dst[%d] = %02x, want %02x", n, got, want)
		}
	}
	if got := c.Register32(regER5); got != 0xf904 {
		t.Errorf("ER5 = %08x, want f904", got)
	}
	if got := c.Register32(regER6); got != 0xfa04 {
		t.Errorf("ER6 = %08x, want fa04", got)
	}
	if got := c.Register8(regR4L); got != 0 {
		t.Errorf("R4L = %02x, want 0", got)
	}
}

func TestEepmovW(t *testing.T) {
	c, b := newTestCPU()
	c.SetRegister16(regR4, 0x0100)
	c.SetRegister32(regER5, 0x8000)
	c.SetRegister32(regER6, 0x9000)
	for n := 0; n < 0x100; n++ {
		b.mem[0x8000+n] = byte(n)
	}
	load(b, 0x0000, 0x7b, 0xd4, 0x59, 0x8f) // eepmov.w

	c.Step()

	for n := 0; n < 0x100; n++ {
		if got := b.mem[0x9000+n]; got != byte(n) {
			t.Fatalf("dst[%d] = %02x, want %02x", n, got, byte(n))
		}
	}
	if got := c.Register16(regR4); got != 0 {
		t.Errorf("R4 = %04x, want 0", got)
	}
}
