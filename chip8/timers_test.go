package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTickDecrementsDTAndSTTowardZero(t *testing.T) {
	m := newTestMachine(t, Chip8)
	m.DT, m.ST = 2, 1

	m.Tick()
	require.Equal(t, byte(1), m.DT)
	require.Equal(t, byte(0), m.ST)

	m.Tick()
	require.Equal(t, byte(0), m.DT)
	require.Equal(t, byte(0), m.ST) // saturates, never wraps negative

	require.Equal(t, uint64(2), m.tickCount)
}

func TestApplyInputEventsUpdatesKeyBitmap(t *testing.T) {
	m := newTestMachine(t, Chip8)
	m.ApplyInputEvents([]KeyEvent{{Key: 0x3, Pressed: true}})
	require.True(t, m.Keys[0x3])

	m.ApplyInputEvents([]KeyEvent{{Key: 0x3, Pressed: false}})
	require.False(t, m.Keys[0x3])
}

func TestSpriteDelayQuirkStallsUntilNextTick(t *testing.T) {
	m := newTestMachine(t, SuperChip1_0) // SpriteDelay on
	require.NoError(t, m.Load([]byte{0xD0, 0x01})) // DRW V0, V0, 1
	m.I = 0x300
	m.Memory[0x300] = 0xFF

	require.Nil(t, m.Step())
	require.Equal(t, uint32(0x200), m.PC, "DXYN must not have executed yet")
	require.False(t, m.fb.Pixel(0, 0, 0))

	// still the same tick: stays blocked.
	require.Nil(t, m.Step())
	require.Equal(t, uint32(0x200), m.PC)

	m.Tick()

	require.Nil(t, m.Step())
	require.Equal(t, uint32(0x202), m.PC)
	require.True(t, m.fb.Pixel(0, 0, 0))
}
