package termhost

import "fmt"

// Bell is a minimal chip8.Audio for terminal sessions: it rings the ANSI
// terminal bell once per gate-on edge instead of sustaining a tone, since
// a terminal has no notion of pitch or waveform playback.
type Bell struct {
	gated bool
}

func (b *Bell) SetTone(float64) error { return nil }

func (b *Bell) SetPattern([16]byte) error { return nil }

func (b *Bell) Gate(on bool) error {
	if on && !b.gated {
		fmt.Print("\a")
	}
	b.gated = on
	return nil
}

func (b *Bell) Mute(bool) error { return nil }
