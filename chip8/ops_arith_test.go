package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddCarry(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0x80, 0x14})) // ADD V0, V1
	m.V[0], m.V[1] = 0xFF, 0x02

	require.Nil(t, m.Step())
	require.Equal(t, byte(0x01), m.V[0])
	require.Equal(t, byte(1), m.V[0xF])
}

func TestAddCarryVfAsDestinationStaysCorrect(t *testing.T) {
	// VF is both the destination and the flag register here; the flag
	// write must happen after the arithmetic result is computed, not get
	// clobbered by it (spec §4.2, "VF assigned last").
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0x8F, 0x14})) // ADD VF, V1
	m.V[0xF], m.V[1] = 0xFF, 0x02

	require.Nil(t, m.Step())
	require.Equal(t, byte(1), m.V[0xF])
}

func TestSubBorrowFlag(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0x80, 0x15})) // SUB V0, V1
	m.V[0], m.V[1] = 0x05, 0x0A

	a, b := byte(0x05), byte(0x0A)
	require.Nil(t, m.Step())
	require.Equal(t, a-b, m.V[0])
	require.Equal(t, byte(0), m.V[0xF]) // V0 < V1: borrow occurred, flag clear
}

func TestShiftUsesVxWhenShiftQuirkOn(t *testing.T) {
	m := newTestMachine(t, SuperChip1_1) // Shift quirk on
	require.NoError(t, m.Load([]byte{0x80, 0x16})) // SHR V0, V1
	m.V[0] = 0x03
	m.V[1] = 0xFF

	require.Nil(t, m.Step())
	require.Equal(t, byte(0x01), m.V[0]) // shifted V0 (0x03>>1), not V1
	require.Equal(t, byte(1), m.V[0xF])
}

func TestShiftUsesVyWhenShiftQuirkOff(t *testing.T) {
	m := newTestMachine(t, Chip8) // Shift quirk off
	require.NoError(t, m.Load([]byte{0x80, 0x16})) // SHR V0, V1
	m.V[0] = 0x03
	m.V[1] = 0x04

	require.Nil(t, m.Step())
	require.Equal(t, byte(0x02), m.V[0]) // shifted V1 (0x04>>1) into V0
	require.Equal(t, byte(0), m.V[0xF])
}

func TestLogicQuirkClearsVf(t *testing.T) {
	m := newTestMachine(t, Chip8) // Logic quirk on
	require.NoError(t, m.Load([]byte{0x80, 0x11})) // OR V0, V1
	m.V[0], m.V[1] = 0x0F, 0xF0
	m.V[0xF] = 1

	require.Nil(t, m.Step())
	require.Equal(t, byte(0xFF), m.V[0])
	require.Equal(t, byte(0), m.V[0xF])
}

func TestUnmatched8PrefixTraps(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{0x80, 0x18})) // undefined 8XY8

	trap := m.Step()
	require.NotNil(t, trap)
	require.Equal(t, TrapInvalidOpcode, trap.Kind)
}
