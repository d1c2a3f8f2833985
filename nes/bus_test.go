package nes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBus(t *testing.T) (*CPUBus, *PPU) {
	cartridge := newSyntheticCartridge(t, 0)
	videoMemory := NewVideoMemory(cartridge)
	ppu := NewPPU(videoMemory)
	apu := NewAPU()
	controller1, controller2 := NewController(), NewController()
	return NewCPUBus(NewRAM(), ppu, apu, cartridge, controller1, controller2), ppu
}

// TestPPUStatusReadClearsVBlank checks that reading PPUSTATUS twice in a
// row observes vblank cleared by the first read.
func TestPPUStatusReadClearsVBlank(t *testing.T) {
	bus, ppu := newTestBus(t)
	ppu.updateNMI(true) // simulate entering vblank without running a full frame

	first := bus.read(0x2002)
	require.NotZero(t, first&0x80, "first read should report vblank set")

	second := bus.read(0x2002)
	require.Zero(t, second&0x80, "second read should observe vblank cleared by the first")
}

// TestPPUScrollLatchResetsOnStatusRead checks that writing PPUSCROLL,
// reading PPUSTATUS, then writing PPUSCROLL again targets X again (the
// shared write-latch toggle reset by a PPUSTATUS read).
func TestPPUScrollLatchResetsOnStatusRead(t *testing.T) {
	bus, ppu := newTestBus(t)

	bus.write(0x2005, 0x11) // first write: targets X, latch now mid-sequence
	require.True(t, ppu.w)

	bus.read(0x2002) // resets the shared latch
	require.False(t, ppu.w)

	bus.write(0x2005, 0x22) // should be treated as a first write again (X)
	require.True(t, ppu.w)
	require.Equal(t, byte(0x22&7), ppu.x, "latch reset should make this write target X, not Y")
}

// TestOAMDMACopiesPage checks that writing the OAMDMA register copies a
// full 256-byte WRAM page into OAM and charges the CPU the documented
// stall.
func TestOAMDMACopiesPage(t *testing.T) {
	cartridge := newSyntheticCartridge(t, 0)
	videoMemory := NewVideoMemory(cartridge)
	ppu := NewPPU(videoMemory)
	apu := NewAPU()
	controller1, controller2 := NewController(), NewController()
	bus := NewCPUBus(NewRAM(), ppu, apu, cartridge, controller1, controller2)
	cpu := NewCPU(bus)

	for i := 0; i < 256; i++ {
		cpu.write(0x0700+uint16(i), byte(i))
	}

	cpu.write(0x4014, 0x07)

	for i := 0; i < 256; i++ {
		require.Equal(t, byte(i), ppu.primaryOAM[i], "OAM[%d]", i)
	}
	require.Equal(t, 513, cpu.stall)
}
