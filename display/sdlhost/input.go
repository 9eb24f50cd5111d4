package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/massung/chip8/chip8"
)

// defaultKeyMap mirrors the teacher's KeyMap (massung-CHIP-8/input.go):
// the hex keypad laid across the left half of a QWERTY keyboard.
func defaultKeyMap() map[sdl.Scancode]byte {
	return map[sdl.Scancode]byte{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
}

// Poll implements chip8.Input: it drains the SDL event queue, folding key
// up/down events into CHIP-8 key events and tracking window-close as a
// quit request (spec §6, "Input is polled once per tick").
func (h *Host) Poll() ([]chip8.KeyEvent, error) {
	var events []chip8.KeyEvent

	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			h.quit = true
		case *sdl.KeyDownEvent:
			if ev.Repeat == 0 {
				if key, ok := h.keyMap[ev.Keysym.Scancode]; ok {
					h.keys[key] = true
					events = append(events, chip8.KeyEvent{Key: key, Pressed: true})
				}
			}
		case *sdl.KeyUpEvent:
			if ev.Repeat == 0 {
				if key, ok := h.keyMap[ev.Keysym.Scancode]; ok {
					h.keys[key] = false
					events = append(events, chip8.KeyEvent{Key: key, Pressed: false})
				}
			}
		}
	}

	return events, nil
}

// KeyState implements chip8.Input.
func (h *Host) KeyState(key byte) bool { return h.keys[key&0xF] }

// Quit reports whether the window has been asked to close.
func (h *Host) Quit() bool { return h.quit }
