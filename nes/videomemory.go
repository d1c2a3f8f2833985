package nes

import "fmt"

// VideoMemory is everything the PPU addresses besides its own registers:
// the cartridge's pattern tables, the two physical 1KB nametable pages
// (mirrored into the four logical nametable slots per the cartridge's
// mirroring mode), and the 32-byte palette RAM with its transparency
// aliases.
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
type VideoMemory struct {
	nametables *RAM // 2048 bytes backing two physical 1KB pages
	palette    [32]byte
	cartridge  *Cartridge
}

// NewVideoMemory creates the PPU's address space view over a cartridge.
func NewVideoMemory(cartridge *Cartridge) *VideoMemory {
	return &VideoMemory{
		nametables: NewRAM(),
		cartridge:  cartridge,
	}
}

// nametablePage resolves one of the four logical nametable indexes
// ($2000=0, $2400=1, $2800=2, $2C00=3) to one of the two physical 1KB
// pages, according to the cartridge's mirroring mode.
func (v *VideoMemory) nametablePage(logical int) int {
	switch v.cartridge.getTableMirrorMode() {
	case MirrorHorizontal:
		return logical >> 1
	case MirrorVertical:
		return logical & 1
	default:
		// Single-screen, and four-screen without real extra nametable RAM
		// on the board: everything maps to the first physical page.
		return 0
	}
}

// mirrorNametableAddress maps a $2000-$2FFF address onto an offset into
// the 2KB of physical nametable storage.
func (v *VideoMemory) mirrorNametableAddress(address uint16) uint16 {
	offset := (address - 0x2000) % 0x1000
	logical := int(offset / 0x400)
	inPage := offset % 0x400
	return uint16(v.nametablePage(logical))*0x400 + inPage
}

// palettePaletteIndex resolves a $3F00-$3FFF address to 0-31, applying the
// sprite-backdrop mirrors ($3F10/$3F14/$3F18/$3F1C alias $3F00/$3F04/
// $3F08/$3F0C).
func palettePaletteIndex(address uint16) uint16 {
	idx := (address - 0x3F00) % 0x20
	if idx >= 0x10 && idx%4 == 0 {
		idx -= 0x10
	}
	return idx
}

// Read reads one byte of PPU address space.
// $0000-$1FFF Pattern tables (cartridge CHR)
// $2000-$2FFF Nametables (mirrored per cartridge mirroring mode)
// $3000-$3EFF Mirror of $2000-$2EFF
// $3F00-$3FFF Palette RAM, mirrored every 32 bytes
func (v *VideoMemory) Read(address uint16) (byte, error) {
	switch {
	case address < 0x2000:
		return v.cartridge.ReadCHR(address), nil
	case address < 0x3F00:
		folded := 0x2000 + (address-0x2000)%0x1000
		return v.nametables.read(v.mirrorNametableAddress(folded)), nil
	case address <= 0x3FFF:
		return v.palette[palettePaletteIndex(address)], nil
	default:
		return 0, fmt.Errorf("nes: PPU bus read out of range: 0x%04x", address)
	}
}

// Write writes one byte of PPU address space.
func (v *VideoMemory) Write(address uint16, data byte) error {
	switch {
	case address < 0x2000:
		v.cartridge.WriteCHR(address, data)
		return nil
	case address < 0x3F00:
		folded := 0x2000 + (address-0x2000)%0x1000
		v.nametables.write(v.mirrorNametableAddress(folded), data)
		return nil
	case address <= 0x3FFF:
		v.palette[palettePaletteIndex(address)] = data
		return nil
	default:
		return fmt.Errorf("nes: PPU bus write out of range: address=0x%04x, data=0x%02x", address, data)
	}
}

// ReadPalette reads a raw palette RAM entry ($3F00-$3FFF), used by the
// renderer which always knows it is resolving a palette index and would
// rather not go through the generic Read's type switch per pixel.
func (v *VideoMemory) ReadPalette(address uint16) byte {
	return v.palette[palettePaletteIndex(address)]
}
