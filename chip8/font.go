package chip8

import (
	"crypto/sha256"
	"fmt"
)

// Font memory layout (spec §3, §6): the low-res font is installed at
// 0x000 and the hi-res font at 0x050, both below the 0x200 program
// origin so FX29/FX30 addresses never collide with ROM bytes.
const (
	LowResFontAddr  = 0x000
	LowResFontSize  = 80
	HiResFontAddr   = 0x050
	HiResFontSize   = 160
)

// LowResFont holds the sixteen 5-byte low-res hex digit glyphs (0..F),
// using only the high nibble of each byte, in the classic COSMAC VIP
// layout also used by deluziki-chip-8-emulator/chip8/chip8.go.
var LowResFont = [LowResFontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// HiResFont holds the sixteen 10-byte Super-CHIP hi-res glyphs (0..F),
// each an 8x10 bitmap, one byte per row.
var HiResFont = [HiResFontSize]byte{
	0x3C, 0x7E, 0xE7, 0xC3, 0xC3, 0xC3, 0xC3, 0xE7, 0x7E, 0x3C, // 0
	0x18, 0x38, 0x58, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, // 1
	0x3E, 0x7F, 0xC3, 0x06, 0x0C, 0x18, 0x30, 0x60, 0xFF, 0xFF, // 2
	0x3C, 0x7E, 0xC3, 0x03, 0x0E, 0x0E, 0x03, 0xC3, 0x7E, 0x3C, // 3
	0x06, 0x0E, 0x1E, 0x36, 0x66, 0xC6, 0xFF, 0xFF, 0x06, 0x06, // 4
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFE, 0x03, 0xC3, 0x7E, 0x3C, // 5
	0x3E, 0x7C, 0xC0, 0xC0, 0xFC, 0xFE, 0xC3, 0xC3, 0x7E, 0x3C, // 6
	0xFF, 0xFF, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x30, // 7
	0x3C, 0x7E, 0xC3, 0xC3, 0x7E, 0x7E, 0xC3, 0xC3, 0x7E, 0x3C, // 8
	0x3C, 0x7E, 0xC3, 0xC3, 0x7F, 0x3F, 0x03, 0x03, 0x3E, 0x7C, // 9
	0x0C, 0x1E, 0x3E, 0x66, 0x66, 0xFE, 0xFE, 0xC6, 0xC6, 0xC6, // A
	0xFC, 0xFE, 0xC3, 0xC3, 0xFE, 0xFC, 0xC3, 0xC3, 0xFE, 0xFC, // B
	0x3C, 0x7E, 0xC3, 0xC0, 0xC0, 0xC0, 0xC0, 0xC3, 0x7E, 0x3C, // C
	0xFC, 0xFE, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xC3, 0xFE, 0xFC, // D
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFC, 0xC0, 0xC0, 0xFF, 0xFF, // E
	0xFF, 0xFF, 0xC0, 0xC0, 0xFC, 0xFC, 0xC0, 0xC0, 0xC0, 0xC0, // F
}

// LowResFontSHA256 and HiResFontSHA256 record the expected digest of
// each font table as fixed values. Tests verify the installed memory
// bytes against these (spec §8, invariant 5) so a future edit to the
// glyph tables cannot silently drift.
var (
	LowResFontSHA256 = [sha256.Size]byte{
		0x7b, 0xad, 0xf9, 0x21, 0xf6, 0xc9, 0x31, 0x5b,
		0xe9, 0x82, 0xd0, 0x83, 0x07, 0xb7, 0x96, 0xc0,
		0xe8, 0xf6, 0x84, 0x11, 0x41, 0xaf, 0xb4, 0x75,
		0xaa, 0x2e, 0xe5, 0xa5, 0xe0, 0x74, 0xcd, 0xec,
	}
	HiResFontSHA256 = [sha256.Size]byte{
		0x47, 0xf5, 0x33, 0xf2, 0x98, 0x4d, 0x67, 0xe1,
		0x6d, 0xfb, 0xe5, 0x18, 0x97, 0xa2, 0x9b, 0xdd,
		0xd2, 0xe4, 0x25, 0x52, 0x0c, 0x90, 0x0f, 0x3c,
		0xb6, 0xfa, 0xa2, 0xc9, 0x6d, 0x66, 0xd6, 0x34,
	}
)

// installFonts copies both glyph tables into memory at their fixed
// addresses. Called once per Reset.
func (m *Machine) installFonts() {
	copy(m.Memory[LowResFontAddr:], LowResFont[:])
	copy(m.Memory[HiResFontAddr:], HiResFont[:])
}

// lowResFontAddr returns the memory address of the low-res glyph for
// the low nibble of v (FX29).
func lowResFontAddr(v byte) uint32 {
	return LowResFontAddr + uint32(v&0xF)*5
}

// hiResFontAddr returns the memory address of the hi-res glyph for the
// low nibble of v (FX30).
func hiResFontAddr(v byte) uint32 {
	return HiResFontAddr + uint32(v&0xF)*10
}

// VerifyFonts checks that the font bytes currently resident in memory
// match the canonical glyph tables, for diagnostics and tests.
func (m *Machine) VerifyFonts() error {
	if sha256.Sum256(m.Memory[LowResFontAddr:LowResFontAddr+LowResFontSize]) != LowResFontSHA256 {
		return fmt.Errorf("chip8: low-res font corrupted in memory")
	}
	if sha256.Sum256(m.Memory[HiResFontAddr:HiResFontAddr+HiResFontSize]) != HiResFontSHA256 {
		return fmt.Errorf("chip8: hi-res font corrupted in memory")
	}
	return nil
}
