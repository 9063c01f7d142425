package ssu

import "testing"

func TestResetState(t *testing.T) {
	s := New()

	if got := s.Read8(AddrSSCRH); got != 0x08 {
		t.Errorf("SSCRH = %02x, want 08", got)
	}
	sssr := s.Read8(AddrSSSR)
	if sssr&StatusTEND == 0 {
		t.Errorf("SSSR = %02x, TEND clear after reset", sssr)
	}
	if sssr&StatusTDRE == 0 {
		t.Errorf("SSSR = %02x, TDRE clear after reset", sssr)
	}
	if sssr&(StatusRDRF|StatusORER) != 0 {
		t.Errorf("SSSR = %02x, RDRF/ORER set after reset", sssr)
	}
}

func TestIdleCyclesDoNothing(t *testing.T) {
	s := New()

	for n := 0; n < 10000; n++ {
		s.Cycle()
	}

	if got := s.Read8(AddrSSSR); got&StatusTEND == 0 {
		t.Errorf("SSSR = %02x, transfer started while idle", got)
	}
}

// configure drives the register sequence the guest firmware uses
// before transmitting.
func configure(s *SSU, cks uint8) {
	s.Write8(AddrSSCRH, 0x8c)
	s.Write8(AddrSSCRL, 0x40)
	s.Write8(AddrSSER, 0x80) // TE
	s.Write8(AddrSSMR, cks)
}

func TestSingleByteTransferTiming(t *testing.T) {
	s := New()
	configure(s, 0) // CKS=0: one bit per 256 cycles

	s.Write8(AddrSSTDR, 0x5a)

	if s.Read8(AddrSSSR)&StatusTEND != 0 {
		t.Fatal("TEND still set after SSTDR write")
	}

	cycles := 0
	for s.Read8(AddrSSSR)&StatusTEND == 0 {
		s.Cycle()
		cycles++
		if cycles > 3000 {
			t.Fatal("transfer never completed")
		}
	}

	if cycles != 8*256 {
		t.Errorf("transfer took %d cycles, want %d", cycles, 8*256)
	}
	if s.Read8(AddrSSSR)&StatusRDRF == 0 {
		t.Error("RDRF clear after a completed byte")
	}

	// Reading SSRDR returns the received byte once and clears RDRF.
	if got := s.Read8(AddrSSRDR); got != 0xff {
		t.Errorf("SSRDR = %02x, want ff", got)
	}
	if s.Read8(AddrSSSR)&StatusRDRF != 0 {
		t.Error("RDRF still set after reading SSRDR")
	}
}

func TestPrescalerSelect(t *testing.T) {
	s := New()
	configure(s, 1) // CKS=1: one bit per 128 cycles

	s.Write8(AddrSSTDR, 0xa5)

	cycles := 0
	for s.Read8(AddrSSSR)&StatusTEND == 0 {
		s.Cycle()
		cycles++
		if cycles > 2000 {
			t.Fatal("transfer never completed")
		}
	}

	if cycles != 8*128 {
		t.Errorf("transfer took %d cycles, want %d", cycles, 8*128)
	}
}

func TestBackToBackTransfer(t *testing.T) {
	s := New()
	configure(s, 0)

	s.Write8(AddrSSTDR, 0x11)
	// Buffer a second byte while the first is shifting.
	s.Cycle()
	s.Write8(AddrSSTDR, 0x22)

	if s.Read8(AddrSSSR)&StatusTDRE != 0 {
		t.Fatal("TDRE set while a byte is buffered")
	}

	// First byte completes after 2048 cycles; the transfer chains.
	for n := 1; n < 8*256; n++ {
		s.Cycle()
	}
	sssr := s.Read8(AddrSSSR)
	if sssr&StatusTEND != 0 {
		t.Error("TEND set although a second byte was buffered")
	}
	if sssr&StatusTDRE == 0 {
		t.Error("TDRE clear after the buffered byte moved to the shifter")
	}

	s.Read8(AddrSSRDR) // drain the first received byte

	for n := 0; n < 8*256; n++ {
		s.Cycle()
	}
	if s.Read8(AddrSSSR)&StatusTEND == 0 {
		t.Error("TEND clear after both bytes finished")
	}
}

func TestOverrunSetsORER(t *testing.T) {
	s := New()
	configure(s, 0)

	s.Write8(AddrSSTDR, 0x11)
	for n := 0; n < 8*256; n++ {
		s.Cycle()
	}
	// First byte received, never read. Send another.
	s.Write8(AddrSSTDR, 0x22)
	for n := 0; n < 8*256; n++ {
		s.Cycle()
	}

	if s.Read8(AddrSSSR)&StatusORER == 0 {
		t.Error("ORER clear after an overrun")
	}

	// ORER is cleared only by a software write-0 to SSSR.
	s.Write8(AddrSSSR, ^StatusORER)
	if s.Read8(AddrSSSR)&StatusORER != 0 {
		t.Error("ORER still set after write-to-clear")
	}
}

func TestStatusWriteIsAndMask(t *testing.T) {
	s := New()
	configure(s, 0)

	s.Write8(AddrSSTDR, 0x11)
	for n := 0; n < 8*256; n++ {
		s.Cycle()
	}
	if s.Read8(AddrSSSR)&StatusRDRF == 0 {
		t.Fatal("RDRF clear after a completed byte")
	}

	// Writing 1s keeps bits; writing 0 clears them.
	s.Write8(AddrSSSR, 0xff)
	if s.Read8(AddrSSSR)&StatusRDRF == 0 {
		t.Error("write-1 cleared RDRF")
	}
	s.Write8(AddrSSSR, ^StatusRDRF)
	if s.Read8(AddrSSSR)&StatusRDRF != 0 {
		t.Error("write-0 did not clear RDRF")
	}
}

func TestReadMasks(t *testing.T) {
	s := New()

	s.Write8(AddrSSCRL, 0xff)
	if got := s.Read8(AddrSSCRL); got != 0x78 {
		t.Errorf("SSCRL = %02x, want 78", got)
	}
	s.Write8(AddrSSMR, 0xff)
	if got := s.Read8(AddrSSMR); got != 0xe7 {
		t.Errorf("SSMR = %02x, want e7", got)
	}
	s.Write8(AddrSSER, 0xff)
	if got := s.Read8(AddrSSER); got != 0xef {
		t.Errorf("SSER = %02x, want ef", got)
	}
}

func TestRead16Path(t *testing.T) {
	s := New()

	if got := s.Read16(AddrSSCRH); got != 0xff08 {
		t.Errorf("Read16(SSCRH) = %04x, want ff08", got)
	}
}

func TestReceiveDataRegisterIsReadOnly(t *testing.T) {
	s := New()

	s.Write8(AddrSSRDR, 0x55)
	if got := s.Read8(AddrSSRDR); got != 0x00 {
		t.Errorf("SSRDR = %02x after write, want 00", got)
	}
}
