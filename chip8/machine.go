// Package chip8 implements the emulation core shared by the CHIP-8,
// CHIP-8 hi-res, CHIP-48, Super-CHIP 1.0/1.1, XO-CHIP, and XO-CHIP
// 16-colour dialects: the instruction decoder and dispatch table, the
// register/memory/stack state, the multi-plane display framebuffer, the
// timer/clock subsystem, and the quirks that select between dialects.
//
// The core is single-threaded and cooperative (spec §5): a host drives
// it by calling Process or Step repeatedly and polling/presenting
// through the Display, Input, and Audio ports supplied to NewMachine.
// The core never touches a CLI, a file system, or a concrete windowing
// library; those are host concerns (spec §1, "Out of scope").
package chip8

import (
	"math/rand"
	"time"
)

// Machine is one running instance of the emulator. The host creates one
// Machine per ROM run; there is no process-wide singleton (spec §9).
type Machine struct {
	Config

	// rom holds the pristine program image copied in at Load, used to
	// restore memory on Reset without re-loading from the host.
	rom []byte

	Memory []byte
	Stack  []uint32
	SP     int

	V  [16]byte
	I  uint32
	PC uint32

	R [16]byte // persistent user-flag registers, SAVEFLAGS/LOADFLAGS

	DT, ST     byte
	videoTimer byte

	fb        *Framebuffer
	PlaneMask byte

	Keys [16]bool

	// waitReg/waitState implement FX0A's press-then-release block
	// without suspending the goroutine: Step returns immediately each
	// cycle until the wait resolves (spec §5).
	waitReg   *byte
	waitState int // 0 idle, 1 waiting for press, 2 waiting for release
	waitKey   byte

	// spritePending/spriteTickAt implement the sprite_delay quirk the
	// same way: DXYN is re-entered every cycle until a tick boundary
	// is crossed.
	spritePending bool
	spriteTickAt  uint64

	tickCount uint64
	Cycles    int64
	clockZero time.Time

	halted bool

	audioPattern [16]byte
	audioPitch   byte

	rng *rand.Rand

	display Display
	input   Input
	audio   Audio

	debugMode bool
}

// NewMachine creates a Machine for the given configuration and ports.
// Display/Input/Audio may be nil, in which case the corresponding Null*
// port is used. Memory, registers, stack, and framebuffer are created
// zeroed, fonts are installed, and PC is set to 0x200 by an initial
// Reset; the caller must still call Load to place a ROM before
// Run/Process/Step will do anything useful.
func NewMachine(cfg Config, display Display, input Input, audio Audio) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	if display == nil {
		display = NullDisplay{}
	}
	if input == nil {
		input = NullInput{}
	}
	if audio == nil {
		audio = NullAudio{}
	}

	m := &Machine{
		Config:  cfg,
		Memory:  make([]byte, cfg.MemSize),
		Stack:   make([]uint32, cfg.StackCapacity),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		display: display,
		input:   input,
		audio:   audio,
	}

	m.fb = newFramebuffer(cfg.StartWidth, cfg.StartHeight, cfg.MaxPlanes)
	m.Reset()

	if err := m.display.SetMode(cfg.StartWidth, cfg.StartHeight, cfg.MaxPlanes); err != nil {
		return nil, &PortError{Port: "display", Err: err}
	}

	return m, nil
}

// Load installs ROM bytes at 0x200 and resets the machine to boot state
// (spec §3, "Lifecycle"). The program must fit within memsize-0x200.
func (m *Machine) Load(program []byte) error {
	if len(program) > len(m.Memory)-0x200 {
		return &ConfigError{Reason: "program too large to fit in memory"}
	}

	m.rom = make([]byte, len(program))
	copy(m.rom, program)

	m.Reset()

	return nil
}

// SetDebugMode controls whether an unmatched opcode is a fatal trap
// (false, default) or a skip that advances PC past the bad word (true).
// A skipped opcode is not logged or otherwise reported.
func (m *Machine) SetDebugMode(debug bool) { m.debugMode = debug }

// Reset restores the machine to its just-booted state: memory (fonts +
// ROM), registers, stack, framebuffer, and timers are all cleared and
// PC is set to 0x200. R0..R15 user-flag registers are NOT cleared; they
// are the one artefact the spec asks the host to persist across runs
// (spec §6).
func (m *Machine) Reset() {
	for i := range m.Memory {
		m.Memory[i] = 0
	}

	m.installFonts()
	copy(m.Memory[0x200:], m.rom)

	m.Stack = make([]uint32, m.StackCapacity)
	m.SP = 0

	m.V = [16]byte{}
	m.I = 0
	m.PC = 0x200

	m.DT, m.ST, m.videoTimer = 0, 0, 0

	m.fb.SetMode(m.StartWidth, m.StartHeight)
	m.PlaneMask = 1 // real hardware powers up drawing to plane 0 only

	m.Keys = [16]bool{}
	m.waitReg = nil
	m.waitState = 0
	m.spritePending = false

	m.tickCount = 0
	m.Cycles = 0
	m.clockZero = time.Now()

	m.halted = false
}

// Resolution returns the active display width and height.
func (m *Machine) Resolution() (int, int) { return m.fb.Dimensions() }

// peekWord reads the 16-bit big-endian word at addr without advancing
// PC or otherwise mutating state; used by the skip-next helper to
// detect a following XO-CHIP F000 long-jump word (spec §4.3).
func (m *Machine) peekWord(addr uint32) uint16 {
	if int(addr)+1 >= len(m.Memory) {
		return 0
	}
	return uint16(m.Memory[addr])<<8 | uint16(m.Memory[addr+1])
}

// fetch reads the word at PC and advances PC by 2.
func (m *Machine) fetch() uint16 {
	w := m.peekWord(m.PC)
	m.PC += 2
	return w
}
