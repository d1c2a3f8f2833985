package nes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestControllerShiftOrder checks the canonical 8-read shift sequence
// A, B, Select, Start, Up, Down, Left, Right after strobing with A and
// Start held.
func TestControllerShiftOrder(t *testing.T) {
	c := NewController()
	var buttons [8]bool
	buttons[ButtonA] = true
	buttons[ButtonStart] = true
	c.Set(buttons)

	c.write(1) // strobe high
	c.write(0) // strobe low: reads now shift through the buttons from A

	want := []byte{1, 0, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		require.Equalf(t, w, c.read(), "read #%d", i)
	}
}

// TestControllerStrobeHighAlwaysReadsA checks that while strobe is held
// high, every read returns the current state of button A regardless of
// how many reads happen.
func TestControllerStrobeHighAlwaysReadsA(t *testing.T) {
	c := NewController()
	var buttons [8]bool
	buttons[ButtonA] = true
	c.Set(buttons)
	c.write(1) // strobe high

	for i := 0; i < 5; i++ {
		require.Equal(t, byte(1), c.read())
	}
}

// TestControllerReadPastEighthReturnsZero checks that reads past the 8th
// shift-register bit report no button pressed rather than reading
// past the end of the buttons array.
func TestControllerReadPastEighthReturnsZero(t *testing.T) {
	c := NewController()
	c.write(1)
	c.write(0)
	for i := 0; i < 8; i++ {
		c.read()
	}
	require.Equal(t, byte(0), c.read())
}
