package sdlhost

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

const sampleRateHz = 44100

// feedAudio runs for the lifetime of the Host, keeping the SDL audio
// queue topped up with whatever the machine's ST/pattern state currently
// calls for. The teacher drove a single fixed square wave from a cgo
// SDL_AudioCallback (massung-CHIP-8/audio.go); QueueAudio lets a plain Go
// goroutine do the same without cgo.
func (h *Host) feedAudio() {
	var phase float64

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		if sdl.GetQueuedAudioSize(h.audioDev) > sampleRateHz/10*2 {
			continue
		}

		n := sampleRateHz / 50 // 20ms of samples
		buf := make([]byte, n*2)

		if !h.gated {
			sdl.QueueAudio(h.audioDev, buf) // silence
			continue
		}

		for i := 0; i < n; i++ {
			var v float64
			if h.useTone {
				v = squareWave(phase)
			} else {
				v = patternSample(h.pattern, phase)
			}

			phase += h.freqHz / sampleRateHz
			if phase >= 1 {
				phase -= math.Trunc(phase)
			}

			binary.LittleEndian.PutUint16(buf[i*2:], uint16(int16(v*math.MaxInt16*0.25)))
		}

		sdl.QueueAudio(h.audioDev, buf)
	}
}

func squareWave(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

// patternSample reads the XO-CHIP 128-bit audio pattern buffer (spec
// §4.6) as a one-bit waveform, indexed by phase the same way squareWave
// is, so FX3A's pitch register still controls playback speed.
func patternSample(pattern [16]byte, phase float64) float64 {
	bitIdx := int(phase * 128)
	byteIdx := bitIdx / 8
	bit := byte(0x80 >> uint(bitIdx%8))

	if pattern[byteIdx]&bit != 0 {
		return 1
	}
	return -1
}

// SetTone implements chip8.Audio: sets the playback frequency (FX3A's
// pitch). It drives the square wave until SetPattern installs a pattern,
// and the pattern playback after that.
func (h *Host) SetTone(freqHz float64) error {
	h.freqHz = freqHz
	return nil
}

// SetPattern implements chip8.Audio: switches to XO-CHIP pattern
// playback at whatever pitch FX3A last set via SetTone's freqHz.
func (h *Host) SetPattern(pattern [16]byte) error {
	h.useTone = false
	h.pattern = pattern
	return nil
}

// Gate implements chip8.Audio.
func (h *Host) Gate(on bool) error {
	h.gated = on
	return nil
}

// Mute implements chip8.Audio by gating audio off. The mute does not
// persist: the next Gate(true) turns audio back on, and Mute(false) has
// no effect.
func (h *Host) Mute(muted bool) error {
	if muted {
		h.gated = false
	}
	return nil
}
