// Package ssu models the synchronous serial unit: a byte-oriented shift
// register clocked by a prescaler off the system clock. The CPU talks
// to it through seven registers in the I/O area; the shift register
// itself (SSTRSR) is never bus-visible.
package ssu

// Register addresses.
const (
	AddrSSCRH = 0xf0e0 // control register H
	AddrSSCRL = 0xf0e1 // control register L
	AddrSSMR  = 0xf0e2 // mode register
	AddrSSER  = 0xf0e3 // enable register
	AddrSSSR  = 0xf0e4 // status register
	AddrSSRDR = 0xf0e9 // receive data register
	AddrSSTDR = 0xf0eb // transmit data register
)

// SSSR status bits.
const (
	StatusCE   uint8 = 1 << 0 // conflict error
	StatusRDRF uint8 = 1 << 1 // receive data register full
	StatusTDRE uint8 = 1 << 2 // transmit data register empty
	StatusTEND uint8 = 1 << 3 // transmit end
	StatusORER uint8 = 1 << 6 // overrun error
)

// Read masks: only the defined bits of each register are bus-visible.
const (
	readMaskSSCRL = 0x78
	readMaskSSMR  = 0xe7
	readMaskSSER  = 0xef
	readMaskSSSR  = 0x4f
)

// SSU is the serial unit state. A transfer is in progress whenever
// SSSR.TEND is clear; Cycle advances it by one bus tick.
type SSU struct {
	sscrh uint8
	sscrl uint8
	ssmr  uint8
	sser  uint8
	sssr  uint8
	ssrdr uint8
	sstdr uint8

	// sstrsr is the internal shift register. The CPU cannot address it.
	sstrsr uint8

	// clockCounter accumulates 1<<CKS per tick; every 256 counts is one
	// bit time. bitCounter counts bits of the in-flight byte, 0..8.
	clockCounter int
	bitCounter   int
}

// New returns an SSU in its reset state.
func New() *SSU {
	s := &SSU{}
	s.Reset()
	return s
}

// Reset restores the power-on register values: the unit idle (TEND
// set) with an empty transmit buffer (TDRE set), everything else
// cleared except the SSCRH default.
func (s *SSU) Reset() {
	s.sscrh = 0x08
	s.sscrl = 0x00
	s.ssmr = 0x00
	s.sser = 0x00
	s.sssr = StatusTEND | StatusTDRE
	s.ssrdr = 0x00
	s.sstdr = 0x00
	s.sstrsr = 0x00
	s.clockCounter = 0
	s.bitCounter = 0
}

// Read8 returns the register at the given address, applying the read
// masks for registers with reserved bits. Reading SSRDR clears RDRF.
func (s *SSU) Read8(addr uint16) uint8 {
	switch addr {
	case AddrSSCRH:
		return s.sscrh
	case AddrSSCRL:
		return s.sscrl & readMaskSSCRL
	case AddrSSMR:
		return s.ssmr & readMaskSSMR
	case AddrSSER:
		return s.sser & readMaskSSER
	case AddrSSSR:
		return s.sssr & readMaskSSSR
	case AddrSSRDR:
		return s.readReceiveData()
	case AddrSSTDR:
		return s.sstdr
	default:
		return 0xff
	}
}

// Read16 is the unit's 16-bit path: the registers are 8 bits wide, so
// the upper byte reads as open bus.
func (s *SSU) Read16(addr uint16) uint16 {
	return 0xff00 | uint16(s.Read8(addr))
}

// Write8 stores a register value. SSSR is write-AND (software can only
// clear status bits); writing SSTDR starts or continues a transfer.
func (s *SSU) Write8(addr uint16, value uint8) {
	switch addr {
	case AddrSSCRH:
		s.sscrh = value
	case AddrSSCRL:
		s.sscrl = value
	case AddrSSMR:
		s.ssmr = value
	case AddrSSER:
		s.sser = value
	case AddrSSSR:
		s.sssr &= value
	case AddrSSRDR:
		// Receive data register is read-only.
	case AddrSSTDR:
		s.writeTransmitData(value)
	}
}

// Write16 forwards the low byte to the addressed register.
func (s *SSU) Write16(addr uint16, value uint16) {
	s.Write8(addr, uint8(value))
}

// Cycle advances the unit by one bus tick. While a transfer is in
// progress the prescaler accumulates 1<<CKS per tick; each 256 counts
// shifts one bit, and after eight bits the byte completes.
func (s *SSU) Cycle() {
	if s.sssr&StatusTEND != 0 {
		return
	}

	s.clockCounter += 1 << (s.ssmr & 0x07)
	if s.clockCounter < 256 {
		return
	}
	s.clockCounter -= 256

	s.bitCounter++
	if s.bitCounter < 8 {
		return
	}
	s.completeByte()
}

// completeByte finishes the in-flight byte: chains the next buffered
// byte if there is one, otherwise ends the transfer, and latches the
// received byte into SSRDR (or flags an overrun if the previous byte
// was never read).
func (s *SSU) completeByte() {
	if s.sssr&StatusTDRE == 0 {
		s.sstrsr = s.sstdr
		s.sssr |= StatusTDRE
	} else {
		s.sssr |= StatusTEND
	}

	if s.sssr&StatusRDRF != 0 {
		s.sssr |= StatusORER
	} else {
		// No peripheral device drives the line in this core, so a
		// completed transaction reads back as all ones.
		s.ssrdr = 0xff
	}
	s.sssr |= StatusRDRF

	s.bitCounter = 0
}

// readReceiveData returns SSRDR and clears RDRF.
func (s *SSU) readReceiveData() uint8 {
	s.sssr &^= StatusRDRF
	return s.ssrdr
}

// writeTransmitData stores SSTDR. If the unit is idle the byte moves
// straight into the shift register and a transfer starts, leaving the
// buffer empty again; otherwise it stays buffered and TDRE is cleared.
func (s *SSU) writeTransmitData(value uint8) {
	s.sstdr = value

	if s.sssr&StatusTEND != 0 {
		s.sstrsr = s.sstdr
		s.sssr |= StatusTDRE
		s.sssr &^= StatusTEND
		s.clockCounter = 0
		s.bitCounter = 0
	} else {
		s.sssr &^= StatusTDRE
	}
}
