package chip8

// Display, Input, and Audio are the capability set a host must implement
// to run a Machine (spec §6). The core only ever calls through these
// interfaces; it never type-switches on the concrete port, matching the
// teacher's Driver abstraction (Francesco149-go-hachi/hachi/driver.go).
//
// Ports are invoked synchronously from the Machine's own methods
// (NewMachine, Step, Tick, Run). A Display
// must treat the PlaneBitmaps slice passed to Present as read-only for
// the duration of that call only; the Machine may mutate the underlying
// framebuffer as soon as Present returns.
type Display interface {
	// SetMode is called whenever resolution or plane count changes
	// (boot, 00FE/00FF).
	SetMode(width, height, planes int) error

	// SetPalette installs the colours addressed by a pixel's
	// concatenated plane bits, indices 0..2^planes-1.
	SetPalette(colours []Colour) error

	// Present delivers a read-only snapshot of every plane's bit-packed
	// rows, plus the rectangle that changed since the last call.
	Present(planeBitmaps [][]byte, dirty Rect) error
}

// KeyEvent is a single press or release of a CHIP-8 keypad key (0x0-0xF).
type KeyEvent struct {
	Key     byte
	Pressed bool
}

// Input is polled once per 60 Hz tick; see spec §5 on event visibility.
type Input interface {
	Poll() ([]KeyEvent, error)
	KeyState(key byte) bool
}

// Audio receives tone/pattern/gate commands driven by ST and, on
// XO-CHIP, the pattern buffer and pitch register.
type Audio interface {
	SetTone(freqHz float64) error
	SetPattern(bytes [16]byte) error
	Gate(on bool) error
	Mute(muted bool) error
}

// Colour is a host-facing RGB colour used by SetPalette.
type Colour struct {
	R, G, B uint8
}

// Rect is a dirty rectangle in pixel coordinates, end-exclusive.
type Rect struct {
	X, Y, W, H int
}

// NullDisplay, NullInput, and NullAudio are do-nothing ports, useful for
// headless runs and tests; they mirror the teacher's NullDriver pattern.
type NullDisplay struct{}

func (NullDisplay) SetMode(int, int, int) error           { return nil }
func (NullDisplay) SetPalette([]Colour) error             { return nil }
func (NullDisplay) Present([][]byte, Rect) error          { return nil }

type NullInput struct{}

func (NullInput) Poll() ([]KeyEvent, error)  { return nil, nil }
func (NullInput) KeyState(byte) bool         { return false }

type NullAudio struct{}

func (NullAudio) SetTone(float64) error        { return nil }
func (NullAudio) SetPattern([16]byte) error    { return nil }
func (NullAudio) Gate(bool) error              { return nil }
func (NullAudio) Mute(bool) error              { return nil }
