// Package termhost implements a terminal Display and Input port on top
// of github.com/JoelOtter/termloop, grounded in the teacher pack's
// Francesco149-go-hachi/drivers/termloop/termloop.go driver: one
// rectangle entity per pixel, diffed against the previous frame, and a
// key-down-only terminal translated into CHIP-8 press/release pairs via
// a short auto-release timer.
package termhost

import (
	"sync"
	"time"

	tl "github.com/JoelOtter/termloop"

	"github.com/massung/chip8/chip8"
)

const keyHoldFor = 150 * time.Millisecond

// Host renders the framebuffer as a grid of terminal cells and reports
// keypad state translated from termloop's key-down stream.
type Host struct {
	game   *tl.Game
	screen *tl.Screen

	mu        sync.Mutex
	cells     [][]*tl.Rectangle // [x][y]
	lastPlane []byte
	width, height int

	keyMap map[tl.Key]byte
	held   map[byte]time.Time
	events []chip8.KeyEvent
}

// New starts a termloop game in the background and returns a Host ready
// to be passed as both a chip8.Display and chip8.Input.
func New() *Host {
	h := &Host{
		game:   tl.NewGame(),
		keyMap: defaultKeyMap(),
		held:   make(map[byte]time.Time),
	}
	h.screen = h.game.Screen()
	h.screen.AddEntity(&inputEntity{h: h})

	go h.game.Start()

	return h
}

// Close stops the termloop game loop.
func (h *Host) Close() { h.game.Stop() }

// SetMode implements chip8.Display: it rebuilds the cell grid at the new
// resolution, one terminal rune per CHIP-8 pixel.
func (h *Host) SetMode(width, height, planes int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for x := range h.cells {
		for _, r := range h.cells[x] {
			if r != nil {
				h.screen.RemoveEntity(r)
			}
		}
	}

	h.width, h.height = width, height
	h.cells = make([][]*tl.Rectangle, width)
	for x := 0; x < width; x++ {
		h.cells[x] = make([]*tl.Rectangle, height)
	}
	h.lastPlane = make([]byte, (width/8)*height)

	return nil
}

// SetPalette implements chip8.Display and ignores the palette: Present
// renders only plane 0, as white cells, so pixels set only in other
// planes are not shown.
func (h *Host) SetPalette([]chip8.Colour) error { return nil }

// Present implements chip8.Display: it diffs plane 0 against the last
// frame and adds/removes rectangle entities only where a pixel actually
// changed, the same incremental-update trick as UpdateScreen in the
// teacher pack's termloop driver.
func (h *Host) Present(planeBitmaps [][]byte, dirty chip8.Rect) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	plane := planeBitmaps[0]
	rowBytes := h.width / 8

	for y := 0; y < h.height; y++ {
		for bx := 0; bx < rowBytes; bx++ {
			idx := y*rowBytes + bx
			before := h.lastPlane[idx]
			after := plane[idx]
			if before == after {
				continue
			}

			mask := byte(0x80)
			for bit := 0; bit < 8; bit++ {
				if before&mask == after&mask {
					mask >>= 1
					continue
				}
				x := bx*8 + bit
				if after&mask != 0 {
					r := tl.NewRectangle(x, y, 1, 1, tl.ColorWhite)
					h.cells[x][y] = r
					h.screen.AddEntity(r)
				} else if r := h.cells[x][y]; r != nil {
					h.screen.RemoveEntity(r)
					h.cells[x][y] = nil
				}
				mask >>= 1
			}
		}
	}

	copy(h.lastPlane, plane)

	return nil
}

// Poll implements chip8.Input: it hands back every press/release folded
// in since the last call and releases any key whose hold timer expired.
func (h *Host) Poll() ([]chip8.KeyEvent, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	for key, t := range h.held {
		if now.Sub(t) > keyHoldFor {
			delete(h.held, key)
			h.events = append(h.events, chip8.KeyEvent{Key: key, Pressed: false})
		}
	}

	events := h.events
	h.events = nil

	return events, nil
}

// KeyState implements chip8.Input.
func (h *Host) KeyState(key byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.held[key&0xF]
	return ok
}

// inputEntity is a termloop entity whose only job is to receive Tick
// events and fold key-downs into the Host's pending event queue; it has
// no visual representation.
type inputEntity struct {
	h *Host
}

func (*inputEntity) Draw(*tl.Screen) {}

func (e *inputEntity) Tick(ev tl.Event) {
	if ev.Type != tl.EventKey {
		return
	}

	key, ok := e.h.keyMap[ev.Key]
	if !ok {
		return
	}

	e.h.mu.Lock()
	defer e.h.mu.Unlock()

	if _, already := e.h.held[key]; !already {
		e.h.events = append(e.h.events, chip8.KeyEvent{Key: key, Pressed: true})
	}
	e.h.held[key] = time.Now()
}

// defaultKeyMap mirrors the teacher pack's go-hachi termloop driver
// (Francesco149-go-hachi/drivers/termloop/termloop.go), mapping a row of
// function keys and ctrl-letters to the hex keypad.
func defaultKeyMap() map[tl.Key]byte {
	return map[tl.Key]byte{
		tl.KeyTab:        0x0,
		tl.KeyF2:         0x1,
		tl.KeyF3:         0x2,
		tl.KeyF4:         0x3,
		tl.KeyF5:         0x4,
		tl.KeyF6:         0x5,
		tl.KeyF7:         0x6,
		tl.KeyF8:         0x7,
		tl.KeyF9:         0x8,
		tl.KeyF10:        0x9,
		tl.KeyCtrlA:      0xA,
		tl.KeyCtrlB:      0xB,
		tl.KeyCtrlC:      0xC,
		tl.KeyCtrlD:      0xD,
		tl.KeyCtrlE:      0xE,
		tl.KeyCtrlF:      0xF,
		tl.KeyArrowDown:  0x2,
		tl.KeyArrowLeft:  0x4,
		tl.KeyArrowRight: 0x6,
		tl.KeyArrowUp:    0x8,
		tl.KeyEnter:      0x5,
	}
}
