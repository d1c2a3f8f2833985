package nes

import "fmt"

// mapper0 implements NROM: https://www.nesdev.org/wiki/NROM
// No bank switching; PRG ROM is 16 or 32 KB, mirrored if only 16 KB are
// present, and CHR is a flat 8 KB bank (ROM or RAM).
type mapper0 struct {
	prgROM []byte
	chrROM []byte
}

// ReadFromCPU reads $8000-$FFFF. Cartridge handles $6000-$7FFF itself, so
// this is never called below $8000.
func (m *mapper0) ReadFromCPU(address uint16) (byte, error) {
	mod := uint16(len(m.prgROM))
	return m.prgROM[(address-0x8000)%mod], nil
}

// WriteFromCPU always fails: NROM has no registers and no writable PRG ROM.
func (m *mapper0) WriteFromCPU(address uint16, data byte) error {
	return fmt.Errorf("nes: NROM has no writable register at 0x%04x (data=0x%02x)", address, data)
}

func (m *mapper0) ReadFromPPU(address uint16) (byte, error) {
	return m.chrROM[address], nil
}

// WriteFromPPU writes through when the cartridge uses CHR-RAM; for
// CHR-ROM boards this silently mutates the in-memory copy, harmless since
// nothing re-reads the ROM from disk.
func (m *mapper0) WriteFromPPU(address uint16, data byte) error {
	m.chrROM[address] = data
	return nil
}
