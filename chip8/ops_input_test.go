package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkipIfKeyPressed(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0xE0, 0x9E, 0x00, 0x00})) // SKP V0
	m.Keys[5] = true
	m.V[0] = 5

	require.Nil(t, m.Step())
	require.Equal(t, uint32(0x204), m.PC)
}

func TestSkipIfKeyNotPressed(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0xE0, 0xA1, 0x00, 0x00})) // SKNP V0
	m.V[0] = 5

	require.Nil(t, m.Step())
	require.Equal(t, uint32(0x204), m.PC)
}

func TestUnmatchedEPrefixTraps(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0xE0, 0x12}))

	trap := m.Step()
	require.NotNil(t, trap)
	require.Equal(t, TrapInvalidOpcode, trap.Kind)
}

func TestFx0aWaitsForPressThenRelease(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0xF0, 0x0A})) // LD V0, K

	require.Nil(t, m.Step())
	require.Equal(t, 1, m.waitState)
	require.Equal(t, uint32(0x202), m.PC, "FX0A has already been fetched; it doesn't re-fetch")

	// no key down yet: still waiting.
	require.Nil(t, m.Step())
	require.Equal(t, 1, m.waitState)

	m.Keys[0xB] = true
	require.Nil(t, m.Step())
	require.Equal(t, 2, m.waitState, "now waiting for the release of key B")
	require.Equal(t, byte(0), m.V[0], "V0 is not written until release")

	// still held: nothing happens yet.
	require.Nil(t, m.Step())
	require.Equal(t, 2, m.waitState)

	m.Keys[0xB] = false
	require.Nil(t, m.Step())
	require.Equal(t, 0, m.waitState)
	require.Equal(t, byte(0xB), m.V[0])
}
