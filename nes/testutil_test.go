package nes

import "github.com/stretchr/testify/require"

// newSyntheticCartridge builds a minimal one-bank NROM iNES image entirely
// in memory (16KB PRG of zeros, 8KB CHR of zeros) so the cartridge/bus/PPU
// invariants below don't need a fixture ROM on disk. flags6 lets callers
// pick a mirroring mode.
func newSyntheticCartridge(t require.TestingT, flags6 byte) *Cartridge {
	header := []byte{'N', 'E', 'S', 0x1A, 1, 1, flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	data := append(header, make([]byte, prgROMSizeUnit+chrROMSizeUnit)...)
	cartridge, err := NewCartridge(data)
	require.NoError(t, err)
	return cartridge
}
