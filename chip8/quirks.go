package chip8

import "fmt"

// Architecture identifies one of the seven CHIP-8 family dialects this
// core can emulate. Each architecture fixes a default Quirks set, memory
// size, stack capacity, plane count, and starting resolution; the CLI may
// override individual quirks after the preset is applied.
type Architecture int

const (
	Chip8 Architecture = iota
	Chip8HiRes
	Chip48
	SuperChip1_0
	SuperChip1_1
	XOChip
	XOChip16Colour
)

// String names the architecture the way ROM packs and the CLI refer to it.
func (a Architecture) String() string {
	switch a {
	case Chip8:
		return "chip8"
	case Chip8HiRes:
		return "chip8hires"
	case Chip48:
		return "chip48"
	case SuperChip1_0:
		return "schip1.0"
	case SuperChip1_1:
		return "schip1.1"
	case XOChip:
		return "xochip"
	case XOChip16Colour:
		return "xochip16"
	default:
		return fmt.Sprintf("arch(%d)", int(a))
	}
}

// Quirks selects between historically divergent behaviours of otherwise
// identical opcodes (spec §4.8). Booleans match the ON column of the
// quirks table exactly.
type Quirks struct {
	// Load: FX55/FX65 leave I unchanged when on. When off, I is
	// incremented (amount decided by IndexIncrement).
	Load bool

	// Shift: 8XY6/8XYE shift Vx in place when on; shift Vy into Vx
	// when off.
	Shift bool

	// Logic: 8XY1/2/3 clear VF after the operation when on.
	Logic bool

	// IndexOverflow: FX1E sets VF when I overflows 0xFFF.
	IndexOverflow bool

	// IndexIncrement: when Load is off, increment I by x (not x+1)
	// when on; by x+1 when off.
	IndexIncrement bool

	// Jump: BNNN uses Vx as the base register (X = high nibble of NN)
	// instead of V0.
	Jump bool

	// SpriteDelay: DXYN stalls the CPU until the next video tick.
	SpriteDelay bool

	// ScreenWrap: sprites wrap on both axes instead of clipping at
	// screen edges.
	ScreenWrap bool

	// LoResIsDouble halves the 00FB/00FC/00CN/00DN scroll distance
	// while in low-resolution mode, matching the CHIP-48/Super-CHIP
	// convention of scrolling in "high-res pixel" units.
	LoResIsDouble bool
}

// Config is the fully resolved, boot-time configuration for a Machine:
// the architecture's quirks plus the structural parameters (memory size,
// stack depth, plane count, user-flag count, starting resolution) that
// are not booleans and so don't belong in Quirks.
type Config struct {
	Arch Architecture
	Quirks

	MemSize       int
	StackCapacity int
	MaxPlanes     int
	MaxUserFlags  int

	StartWidth, StartHeight int
	ClockSpeed              int64
}

// Validate rejects configuration/quirk combinations that cannot be
// satisfied by this core (spec §7, configuration errors).
func (c Config) Validate() error {
	if c.MemSize != 0x1000 && c.MemSize != 0x10000 {
		return fmt.Errorf("chip8: unsupported memory size %#x", c.MemSize)
	}
	if c.StackCapacity != 12 && c.StackCapacity != 16 {
		return fmt.Errorf("chip8: unsupported stack capacity %d", c.StackCapacity)
	}
	if c.MaxPlanes != 1 && c.MaxPlanes != 2 && c.MaxPlanes != 4 {
		return fmt.Errorf("chip8: unsupported plane count %d", c.MaxPlanes)
	}
	if c.MaxPlanes > 1 && c.Arch != XOChip && c.Arch != XOChip16Colour {
		return fmt.Errorf("chip8: plane count %d is not valid for %s", c.MaxPlanes, c.Arch)
	}
	if c.StartWidth <= 0 || c.StartHeight <= 0 || c.StartWidth%8 != 0 {
		return fmt.Errorf("chip8: invalid resolution %dx%d", c.StartWidth, c.StartHeight)
	}
	if c.MaxUserFlags != 8 && c.MaxUserFlags != 16 {
		return fmt.Errorf("chip8: unsupported user-flag register count %d", c.MaxUserFlags)
	}
	return nil
}

// Preset returns the default Config for an architecture. The caller may
// mutate individual Quirks fields afterward (CLI overrides are applied
// after the preset, per spec §4.8).
func Preset(arch Architecture) Config {
	switch arch {
	case Chip8:
		return Config{
			Arch:          arch,
			MemSize:       0x1000,
			StackCapacity: 12,
			MaxPlanes:     1,
			MaxUserFlags:  8,
			StartWidth:    64,
			StartHeight:   32,
			ClockSpeed:    700,
			Quirks: Quirks{
				Logic:         true,
				LoResIsDouble: true,
			},
		}
	case Chip8HiRes:
		p := Preset(Chip8)
		p.Arch = arch
		p.StartHeight = 64
		return p
	case Chip48:
		return Config{
			Arch:          arch,
			MemSize:       0x1000,
			StackCapacity: 12,
			MaxPlanes:     1,
			MaxUserFlags:  8,
			StartWidth:    64,
			StartHeight:   32,
			ClockSpeed:    1000,
			Quirks: Quirks{
				Shift:         true,
				Load:          true,
				Jump:          true,
				LoResIsDouble: true,
			},
		}
	case SuperChip1_0:
		return Config{
			Arch:          arch,
			MemSize:       0x1000,
			StackCapacity: 16,
			MaxPlanes:     1,
			MaxUserFlags:  8,
			StartWidth:    64,
			StartHeight:   32,
			ClockSpeed:    1500,
			Quirks: Quirks{
				Shift:         true,
				Load:          true,
				Jump:          true,
				SpriteDelay:   true,
				LoResIsDouble: true,
			},
		}
	case SuperChip1_1:
		p := Preset(SuperChip1_0)
		p.Arch = arch
		p.SpriteDelay = false
		return p
	case XOChip:
		return Config{
			Arch:          arch,
			MemSize:       0x10000,
			StackCapacity: 16,
			MaxPlanes:     2,
			MaxUserFlags:  16,
			StartWidth:    64,
			StartHeight:   32,
			ClockSpeed:    1000,
			Quirks: Quirks{
				Shift:      true,
				Load:       true,
				Jump:       true,
				ScreenWrap: true,
			},
		}
	case XOChip16Colour:
		p := Preset(XOChip)
		p.Arch = arch
		p.MaxPlanes = 4
		return p
	default:
		panic(fmt.Sprintf("chip8: unknown architecture %d", int(arch)))
	}
}
