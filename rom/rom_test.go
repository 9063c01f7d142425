package rom

import "testing"

// testImage builds a full-size image whose bytes are a function of the
// address.
func testImage() []byte {
	img := make([]byte, Size)
	for n := range img {
		img[n] = byte(n ^ n>>8)
	}
	return img
}

func TestInitSizeCheck(t *testing.T) {
	r := New()
	if err := r.Init(make([]byte, Size-1)); err == nil {
		t.Error("short image accepted")
	}
	if err := r.Init(testImage()); err != nil {
		t.Errorf("full-size image rejected: %v", err)
	}
}

func TestImageReads(t *testing.T) {
	r := New()
	img := testImage()
	if err := r.Init(img); err != nil {
		t.Fatal(err)
	}

	for _, addr := range []uint16{0x0000, 0x1234, 0xbffe, 0xbfff} {
		if got := r.Read8(addr); got != img[addr] {
			t.Errorf("Read8(%04x) = %02x, want %02x", addr, got, img[addr])
		}
	}

	want := uint16(img[0x1234])<<8 | uint16(img[0x1235])
	if got := r.Read16(0x1234); got != want {
		t.Errorf("Read16(1234) = %04x, want %04x", got, want)
	}
	// Word reads align the address down first.
	if got := r.Read16(0x1235); got != want {
		t.Errorf("Read16(1235) = %04x, want %04x (aligned)", got, want)
	}
}

func TestImageWritesIgnored(t *testing.T) {
	r := New()
	img := testImage()
	if err := r.Init(img); err != nil {
		t.Fatal(err)
	}

	r.Write8(0x1000, 0x00)
	if got := r.Read8(0x1000); got != img[0x1000] {
		t.Errorf("image byte changed by write: %02x", got)
	}
	r.Write16(0x1000, 0x0000)
	if got := r.Read8(0x1000); got != img[0x1000] {
		t.Errorf("image byte changed by word write: %02x", got)
	}
}

func TestControlRegisters(t *testing.T) {
	r := New()
	if err := r.Init(testImage()); err != nil {
		t.Fatal(err)
	}

	for _, addr := range []uint16{AddrFLMCR1, AddrFLMCR2, AddrFLPWCR, AddrEBR1, AddrFENR} {
		if got := r.Read8(addr); got != 0xff {
			t.Errorf("Read8(%04x) = %02x, want ff (idle flash)", addr, got)
		}
		// Writes are dropped without effect.
		r.Write8(addr, 0x00)
		if got := r.Read8(addr); got != 0xff {
			t.Errorf("Read8(%04x) after write = %02x, want ff", addr, got)
		}
	}
}
