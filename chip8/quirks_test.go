package chip8

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetsValidate(t *testing.T) {
	for _, arch := range allArchitectures {
		require.NoError(t, Preset(arch).Validate(), arch.String())
	}
}

func TestValidateRejectsBadMemSize(t *testing.T) {
	cfg := Preset(Chip8)
	cfg.MemSize = 0x800
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsMultiPlaneOnClassicArch(t *testing.T) {
	cfg := Preset(Chip8)
	cfg.MaxPlanes = 4
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsOddResolution(t *testing.T) {
	cfg := Preset(Chip8)
	cfg.StartWidth = 65
	require.Error(t, cfg.Validate())
}

func TestXOChip16ColourHasFourPlanes(t *testing.T) {
	require.Equal(t, 4, Preset(XOChip16Colour).MaxPlanes)
}
