package nes

// Mapper abstracts cartridge-specific PRG/CHR bank switching. Cartridge
// owns the parsed iNES image and the battery RAM at $6000-$7FFF; everything
// at $8000 and up on the CPU side, and the whole $0000-$1FFF pattern table
// space on the PPU side, is delegated to the Mapper so other boards can be
// added without touching Cartridge or the bus.
type Mapper interface {
	ReadFromCPU(uint16) (byte, error)
	WriteFromCPU(uint16, byte) error
	ReadFromPPU(uint16) (byte, error)
	WriteFromPPU(uint16, byte) error
}

// NewMapper returns the Mapper implementation for an iNES mapper number.
// Only mapper 0 (NROM) is implemented; anything else returns nil and
// NewCartridge reports it as an unsupported cartridge.
func NewMapper(number byte, prgROM []byte, chrROM []byte) Mapper {
	switch number {
	case 0:
		return &mapper0{prgROM, chrROM}
	}
	return nil
}
