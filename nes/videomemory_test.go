package nes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVideoMemoryMirrorMode checks that a write to nametable $2000 reads
// back through the logical slot that shares its physical page, and that a
// write to a slot on the other physical page leaves $2000 unchanged.
func TestVideoMemoryMirrorMode(t *testing.T) {
	tests := []struct {
		name         string
		flags6       byte
		mirrorAddr   uint16 // address expected to alias $2000
		distinctAddr uint16 // address expected NOT to alias $2000
	}{
		{name: "horizontal", flags6: 0x00, mirrorAddr: 0x2400, distinctAddr: 0x2800},
		{name: "vertical", flags6: 0x01, mirrorAddr: 0x2800, distinctAddr: 0x2400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartridge := newSyntheticCartridge(t, tt.flags6)
			vmem := NewVideoMemory(cartridge)

			require.NoError(t, vmem.Write(0x2000, 0xAB))

			got, err := vmem.Read(tt.mirrorAddr)
			require.NoError(t, err)
			require.Equal(t, byte(0xAB), got, "%s mirror: %#04x should alias $2000", tt.name, tt.mirrorAddr)

			require.NoError(t, vmem.Write(tt.distinctAddr, 0xCD))
			got, err = vmem.Read(0x2000)
			require.NoError(t, err)
			require.Equal(t, byte(0xAB), got, "%s mirror: %#04x should not alias $2000", tt.name, tt.distinctAddr)
		})
	}
}

// TestVideoMemorySingleScreenMirror checks that all four logical
// nametables collapse onto the same physical page when the cartridge
// declares four-screen mirroring, which this core serves with
// single-screen behavior (see DESIGN.md).
func TestVideoMemorySingleScreenMirror(t *testing.T) {
	cartridge := newSyntheticCartridge(t, 1<<3) // four-screen bit set
	vmem := NewVideoMemory(cartridge)

	require.NoError(t, vmem.Write(0x2000, 0x42))
	for _, addr := range []uint16{0x2400, 0x2800, 0x2C00} {
		got, err := vmem.Read(addr)
		require.NoError(t, err)
		require.Equal(t, byte(0x42), got, "single-screen fallback: %#04x should alias $2000", addr)
	}
}

// TestPaletteAlias checks the four sprite/background transparency
// aliases ($3F10/$3F14/$3F18/$3F1C <-> $3F00/$3F04/$3F08/$3F0C) in both
// directions.
func TestPaletteAlias(t *testing.T) {
	aliases := []struct{ base, mirror uint16 }{
		{0x3F00, 0x3F10},
		{0x3F04, 0x3F14},
		{0x3F08, 0x3F18},
		{0x3F0C, 0x3F1C},
	}
	for _, a := range aliases {
		cartridge := newSyntheticCartridge(t, 0)
		vmem := NewVideoMemory(cartridge)

		require.NoError(t, vmem.Write(a.mirror, 0x17))
		got, err := vmem.Read(a.base)
		require.NoError(t, err)
		require.Equal(t, byte(0x17), got, "write to %#04x should read back at %#04x", a.mirror, a.base)

		require.NoError(t, vmem.Write(a.base, 0x2B))
		got, err = vmem.Read(a.mirror)
		require.NoError(t, err)
		require.Equal(t, byte(0x2B), got, "write to %#04x should read back at %#04x", a.base, a.mirror)
	}
}

// TestPaletteNoAliasOnNonZeroSubIndex checks that only sub-palette index 0
// aliases; indices 1-3 of each 4-byte sub-palette are ordinary, distinct
// palette RAM cells.
func TestPaletteNoAliasOnNonZeroSubIndex(t *testing.T) {
	cartridge := newSyntheticCartridge(t, 0)
	vmem := NewVideoMemory(cartridge)

	require.NoError(t, vmem.Write(0x3F11, 0x05))
	require.NoError(t, vmem.Write(0x3F01, 0x09))

	got, err := vmem.Read(0x3F11)
	require.NoError(t, err)
	require.Equal(t, byte(0x05), got)

	got, err = vmem.Read(0x3F01)
	require.NoError(t, err)
	require.Equal(t, byte(0x09), got)
}
