package integration

import (
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"nesgo/nes"
)

// TestHelloWorld runs a minimal ROM to its first rendered frame and
// compares it pixel-for-pixel against a known-good reference image.
func TestHelloWorld(t *testing.T) {
	if _, err := os.Stat("sample1.nes"); err != nil {
		t.Skip("sample1.nes fixture not present, skipping")
	}
	b, err := os.ReadFile("sample1.nes")
	require.NoError(t, err)
	console, ok, err := nes.LoadINES(b, false)
	require.NoError(t, err)
	require.True(t, ok)

	r, err := os.Open("helloworld.png")
	require.NoError(t, err)
	defer r.Close()
	want, err := png.Decode(r)
	require.NoError(t, err)

	for {
		if _, err := console.Step(); err != nil {
			t.Fatalf("step: %v", err)
		}
		got, ok := console.Frame()
		if !ok {
			continue
		}
		for y := 0; y < got.Rect.Max.Y; y++ {
			for x := 0; x < got.Rect.Max.X; x++ {
				if got.At(x, y) != want.At(x, y) {
					t.Errorf("rendered color at (%d, %d) = %v, want %v", x, y, got.At(x, y), want.At(x, y))
				}
			}
		}
		return
	}
}
