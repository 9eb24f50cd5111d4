package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFontAddressesLandOnGlyphBoundaries(t *testing.T) {
	require.Equal(t, uint32(LowResFontAddr), lowResFontAddr(0))
	require.Equal(t, uint32(LowResFontAddr+5*0xF), lowResFontAddr(0xF))
	require.Equal(t, uint32(HiResFontAddr), hiResFontAddr(0))
	require.Equal(t, uint32(HiResFontAddr+10*0xF), hiResFontAddr(0xF))
}

func TestInstalledFontsMatchCanonicalDigest(t *testing.T) {
	m := newTestMachine(t, Chip8)
	require.NoError(t, m.VerifyFonts())
}

func TestVerifyFontsCatchesCorruption(t *testing.T) {
	m := newTestMachine(t, Chip8)
	m.Memory[LowResFontAddr] ^= 0xFF
	require.Error(t, m.VerifyFonts())
}
