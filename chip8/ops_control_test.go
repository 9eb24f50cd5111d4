package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allArchitectures = []Architecture{
	Chip8, Chip8HiRes, Chip48, SuperChip1_0, SuperChip1_1, XOChip, XOChip16Colour,
}

func TestRetOnEmptyStackTrapsUnderflow(t *testing.T) {
	for _, arch := range allArchitectures {
		t.Run(arch.String(), func(t *testing.T) {
			m := newTestMachine(t, arch)
			require.NoError(t, m.Load([]byte{0x00, 0xEE})) // RET

			trap := m.Step()
			require.NotNil(t, trap)
			require.Equal(t, TrapStackUnderflow, trap.Kind)
		})
	}
}

func TestCallReturnRoundTrip(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.Load([]byte{
		0x22, 0x06, // 0x200: CALL #206
		0x00, 0x00, // 0x202: where RET comes back to, the word after CALL
		0x00, 0x00, // 0x204
		0x00, 0xEE, // 0x206: RET
	}))

	require.Nil(t, m.Step()) // CALL
	require.Equal(t, uint32(0x206), m.PC)
	require.Equal(t, 1, m.SP)

	require.Nil(t, m.Step()) // RET
	require.Equal(t, uint32(0x202), m.PC)
	require.Equal(t, 0, m.SP)
}

func TestScrollDownThenUpRoundTrips(t *testing.T) {
	m := newTestMachine(t, XOChip)
	m.PlaneMask = 1

	m.fb.TogglePixel(0, 5, 5)
	m.fb.TogglePixel(0, 10, 20)
	before := append([]byte(nil), m.fb.PlaneBitmaps()[0]...)

	m.fb.ScrollDown(m.scrollMask(), 3)
	m.fb.ScrollUp(m.scrollMask(), 3)

	require.Equal(t, before, m.fb.PlaneBitmaps()[0])
}

func TestScrollPastEdgeClearsPlane(t *testing.T) {
	m := newTestMachine(t, XOChip)
	m.PlaneMask = 1
	m.fb.TogglePixel(0, 5, 5)

	w, h := m.fb.Dimensions()
	m.fb.ScrollDown(m.scrollMask(), h)

	for _, b := range m.fb.PlaneBitmaps()[0] {
		require.Zero(t, b)
	}
	_ = w
}

func TestBnnnUsesV0WithoutJumpQuirk(t *testing.T) {
	m := newTestMachine(t, Chip8) // Jump quirk off
	require.NoError(t, m.Load([]byte{0xB2, 0x00}))
	m.V[0] = 0x10

	require.Nil(t, m.Step())
	require.Equal(t, uint32(0x200+0x10), m.PC)
}

func TestBnnnUsesVxWithJumpQuirk(t *testing.T) {
	m := newTestMachine(t, SuperChip1_1) // Jump quirk on
	require.NoError(t, m.Load([]byte{0xB3, 0x00}))
	m.V[3] = 0x10

	require.Nil(t, m.Step())
	require.Equal(t, uint32(0x300+0x10), m.PC)
}
