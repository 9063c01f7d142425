package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadRegister returns a CPU register by name: "er0".."er7", "sp"
// (alias for er7), "pc" or "ccr". Names are case-insensitive.
func (c *Core) ReadRegister(name string) (uint32, error) {
	switch n := strings.ToLower(name); n {
	case "pc":
		return c.CPU.PC, nil
	case "ccr":
		return uint32(c.CPU.CCR), nil
	case "sp":
		return c.CPU.Register32(7), nil
	default:
		code, err := registerCode(n)
		if err != nil {
			return 0, err
		}
		return c.CPU.Register32(code), nil
	}
}

// WriteRegister sets a CPU register by name.
func (c *Core) WriteRegister(name string, value uint32) error {
	switch n := strings.ToLower(name); n {
	case "pc":
		c.CPU.PC = value
		return nil
	case "ccr":
		c.CPU.CCR = uint8(value)
		return nil
	case "sp":
		c.CPU.SetRegister32(7, value)
		return nil
	default:
		code, err := registerCode(n)
		if err != nil {
			return err
		}
		c.CPU.SetRegister32(code, value)
		return nil
	}
}

// ReadMemory reads one byte from the bus address space.
func (c *Core) ReadMemory(addr uint16) uint8 {
	return c.Bus.Read8(addr)
}

// WriteMemory writes one byte into the bus address space.
func (c *Core) WriteMemory(addr uint16, value uint8) {
	c.Bus.Write8(addr, value)
}

// registerCode parses an "erN" register name.
func registerCode(name string) (uint8, error) {
	if !strings.HasPrefix(name, "er") {
		return 0, fmt.Errorf("core: unknown register %q", name)
	}
	n, err := strconv.Atoi(name[2:])
	if err != nil || n < 0 || n > 7 {
		return 0, fmt.Errorf("core: unknown register %q", name)
	}
	return uint8(n), nil
}
