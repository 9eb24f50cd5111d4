package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDxynDrawsAndReportsCollision(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0xD0, 0x11})) // DRW V0, V1, 1
	m.I = 0x300
	m.Memory[0x300] = 0xFF // one row, all 8 pixels on
	m.V[0], m.V[1] = 2, 2

	require.Nil(t, m.Step())
	require.Equal(t, byte(0), m.V[0xF], "first draw cannot collide with a blank screen")
	for x := 2; x < 10; x++ {
		require.True(t, m.fb.Pixel(0, x, 2))
	}

	// redraw the identical sprite: XOR erases every pixel it just set.
	m.PC = 0x200
	require.Nil(t, m.Step())
	require.Equal(t, byte(1), m.V[0xF], "re-drawing the same sprite must collide")
	for x := 2; x < 10; x++ {
		require.False(t, m.fb.Pixel(0, x, 2))
	}
}

func TestDxynClipsAtEdgeWithoutScreenWrapQuirk(t *testing.T) {
	m := newTestMachine(t, Chip8) // ScreenWrap off
	w, h := m.fb.Dimensions()

	require.NoError(t, m.Load([]byte{0xD0, 0x11}))
	m.I = 0x300
	m.Memory[0x300] = 0xFF
	m.V[0], m.V[1] = byte(w-4), byte(h-1)

	require.Nil(t, m.Step())

	for x := w - 4; x < w; x++ {
		require.True(t, m.fb.Pixel(0, x, h-1))
	}
	// the other 4 bits of the sprite byte would land at x >= w; clipped away.
	require.False(t, m.fb.Pixel(0, 0, h-1))
}

func TestDxynWrapsWithScreenWrapQuirk(t *testing.T) {
	m := newTestMachine(t, XOChip) // ScreenWrap on
	w, h := m.fb.Dimensions()

	require.NoError(t, m.Load([]byte{0xD0, 0x11}))
	m.PlaneMask = 1
	m.I = 0x300
	m.Memory[0x300] = 0xFF
	m.V[0], m.V[1] = byte(w-4), byte(h-1)

	require.Nil(t, m.Step())

	require.True(t, m.fb.Pixel(0, 0, h-1), "the wrapped-around columns must still be set")
}

func TestDxynBigSpriteCoversSixteenColumns(t *testing.T) {
	m := newTestMachine(t, SuperChip1_1)
	require.NoError(t, m.Load([]byte{0xD0, 0x10})) // N=0: 16x16
	m.setResolution(128, 64)
	m.PlaneMask = 1
	m.V[0], m.V[1] = 0, 0
	m.I = 0x300
	for i := 0; i < 32; i++ {
		m.Memory[0x300+i] = 0xFF
	}

	require.Nil(t, m.Step())
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			require.True(t, m.fb.Pixel(0, x, y))
		}
	}
}

func TestDxynMultiPlaneReadsSequentialPlaneData(t *testing.T) {
	m := newTestMachine(t, XOChip16Colour) // 4 planes
	require.NoError(t, m.Load([]byte{0xD0, 0x11})) // DRW V0, V1, 1
	m.PlaneMask = 0x3                      // planes 0 and 1
	m.I = 0x300
	m.Memory[0x300] = 0xFF // plane 0's row
	m.Memory[0x301] = 0x0F // plane 1's row
	m.V[0], m.V[1] = 0, 0

	require.Nil(t, m.Step())

	require.True(t, m.fb.Pixel(0, 0, 0))
	require.False(t, m.fb.Pixel(1, 0, 0))
	require.True(t, m.fb.Pixel(1, 4, 0))
}
