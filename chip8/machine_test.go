package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T, arch Architecture) *Machine {
	t.Helper()
	m, err := NewMachine(Preset(arch), nil, nil, nil)
	require.NoError(t, err)
	return m
}

func TestNewMachineBootState(t *testing.T) {
	m := newTestMachine(t, Chip8)

	require.Equal(t, uint32(0x200), m.PC)
	require.Equal(t, 0, m.SP)
	require.Equal(t, uint32(0), m.I)
	require.Equal(t, [16]byte{}, m.V)
	require.NoError(t, m.VerifyFonts())
}

func TestLoadResetsToBootState(t *testing.T) {
	m := newTestMachine(t, Chip8)

	rom := []byte{0x12, 0x34, 0x00, 0xE0}
	require.NoError(t, m.Load(rom))
	require.Equal(t, uint32(0x200), m.PC)
	require.Equal(t, rom, m.Memory[0x200:0x200+len(rom)])

	m.V[3] = 77
	m.I = 0x555
	m.SP = 2
	m.R[0] = 9 // user flags survive a real Reset...

	m.Reset()

	require.Equal(t, uint32(0x200), m.PC)
	require.Equal(t, byte(0), m.V[3])
	require.Equal(t, uint32(0), m.I)
	require.Equal(t, 0, m.SP)
	require.Equal(t, byte(9), m.R[0]) // ...across a Reset, per spec §6
	require.Equal(t, rom, m.Memory[0x200:0x200+len(rom)])
}

func TestLoadRejectsOversizedProgram(t *testing.T) {
	m := newTestMachine(t, Chip8)
	err := m.Load(make([]byte, len(m.Memory)))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestPCStaysEvenAcrossOrdinaryInstructions(t *testing.T) {
	m := newTestMachine(t, SuperChip1_1)
	require.NoError(t, m.Load([]byte{
		0x60, 0x05, // LD V0, #05
		0x70, 0x01, // ADD V0, #01
		0x13, 0x00, // JP #300 -- jumps past the program, harmless for this check
	}))

	for i := 0; i < 3; i++ {
		require.Nil(t, m.Step())
		require.Zero(t, m.PC%2, "PC must stay word-aligned")
	}
}
