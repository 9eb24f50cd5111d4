// Package sdlhost implements the windowed Display, Input, and Audio
// ports on top of github.com/veandco/go-sdl2, grounded in the teacher's
// SDL app (massung-CHIP-8/main.go, screen.go, input.go, audio.go), but
// reworked to implement chip8.Display/Input/Audio instead of driving a
// single hardcoded CHIP_8 VM and debug dashboard.
package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/massung/chip8/chip8"
)

// Host owns the SDL window, renderer, and render-target texture used to
// present the emulated framebuffer, plus the key and audio state (Host
// implements Display, Input, and Audio all at once, since in practice an
// SDL window owns all three).
type Host struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	width, height, planes int
	palette               []chip8.Colour

	keys    [16]bool
	keyMap  map[sdl.Scancode]byte
	quit    bool

	audioDev sdl.AudioDeviceID
	gated    bool
	freqHz   float64
	pattern  [16]byte
	useTone  bool
}

// New opens a 1024x512 SDL window with the given title and initializes
// the audio device. The caller must call Close when done.
func New(title string) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	window, renderer, err := sdl.CreateWindowAndRenderer(1024, 512, sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}
	window.SetTitle(title)

	h := &Host{
		window:   window,
		renderer: renderer,
		keyMap:   defaultKeyMap(),
	}

	spec := &sdl.AudioSpec{
		Freq:     44100,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  1024,
	}
	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}
	h.audioDev = dev
	h.freqHz = 4000
	h.useTone = true
	sdl.PauseAudioDevice(dev, false)

	go h.feedAudio()

	return h, nil
}

// Close releases the window, renderer, texture, and audio device.
func (h *Host) Close() {
	if h.texture != nil {
		h.texture.Destroy()
	}
	sdl.CloseAudioDevice(h.audioDev)
	h.renderer.Destroy()
	h.window.Destroy()
	sdl.Quit()
}

// SetMode implements chip8.Display.
func (h *Host) SetMode(width, height, planes int) error {
	if h.texture != nil {
		h.texture.Destroy()
	}

	texture, err := h.renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, int32(width), int32(height))
	if err != nil {
		return fmt.Errorf("sdlhost: %w", err)
	}

	h.texture = texture
	h.width, h.height, h.planes = width, height, planes
	h.palette = defaultPalette(planes)

	return nil
}

// SetPalette implements chip8.Display.
func (h *Host) SetPalette(colours []chip8.Colour) error {
	h.palette = colours
	return nil
}

// Present implements chip8.Display: it redraws every plane's bitmap into
// the render-target texture, then stretches that texture to fill the
// window (mirroring RefreshScreen/CopyScreen in the teacher's screen.go,
// generalized from one fixed monochrome plane to an indexed palette over
// up to four planes).
func (h *Host) Present(planeBitmaps [][]byte, dirty chip8.Rect) error {
	if err := h.renderer.SetRenderTarget(h.texture); err != nil {
		return fmt.Errorf("sdlhost: %w", err)
	}

	bg := h.palette[0]
	h.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	h.renderer.Clear()

	rowBytes := h.width / 8
	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			idx := y*rowBytes + x/8
			bit := byte(0x80 >> uint(x%8))

			var colourIdx byte
			for p := 0; p < len(planeBitmaps); p++ {
				if planeBitmaps[p][idx]&bit != 0 {
					colourIdx |= 1 << uint(p)
				}
			}
			if colourIdx == 0 {
				continue
			}

			c := h.palette[int(colourIdx)%len(h.palette)]
			h.renderer.SetDrawColor(c.R, c.G, c.B, 255)
			h.renderer.DrawPoint(int32(x), int32(y))
		}
	}

	h.renderer.SetRenderTarget(nil)

	w, height := h.window.GetSize()
	h.renderer.SetDrawColor(0, 0, 0, 255)
	h.renderer.Clear()
	h.renderer.Copy(h.texture, &sdl.Rect{W: int32(h.width), H: int32(h.height)}, &sdl.Rect{W: w, H: height})
	h.renderer.Present()

	return nil
}

func defaultPalette(planes int) []chip8.Colour {
	n := 1 << uint(planes)
	colours := make([]chip8.Colour, n)
	colours[0] = chip8.Colour{R: 17, G: 29, B: 43}
	for i := 1; i < n; i++ {
		shade := uint8(255 - (i * 255 / n))
		colours[i] = chip8.Colour{R: shade, G: shade, B: shade}
	}
	return colours
}
