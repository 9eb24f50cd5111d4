package chip8

import "fmt"

// disassembleOne renders the instruction at addr in the same column
// layout as the teacher's Disassemble (massung-CHIP-8/chip8/disasm.go),
// extended with the Super-CHIP/XO-CHIP opcodes this core also decodes.
func (m *Machine) disassembleOne(addr uint32) string {
	if int(addr)+1 >= len(m.Memory) {
		return fmt.Sprintf("%04X -", addr)
	}

	inst := m.peekWord(addr)
	a := inst & 0xFFF
	b := byte(inst & 0xFF)
	n := byte(inst & 0xF)
	x := inst >> 8 & 0xF
	y := inst >> 4 & 0xF

	switch {
	case inst == 0x0000:
		return fmt.Sprintf("%04X -", addr)
	case inst == 0x00E0:
		return fmt.Sprintf("%04X - CLS", addr)
	case inst == 0x00EE:
		return fmt.Sprintf("%04X - RET", addr)
	case inst == 0x00FB:
		return fmt.Sprintf("%04X - SCR", addr)
	case inst == 0x00FC:
		return fmt.Sprintf("%04X - SCL", addr)
	case inst == 0x00FD:
		return fmt.Sprintf("%04X - EXIT", addr)
	case inst == 0x00FE:
		return fmt.Sprintf("%04X - LOW", addr)
	case inst == 0x00FF:
		return fmt.Sprintf("%04X - HIGH", addr)
	case inst&0xFFF0 == 0x00C0:
		return fmt.Sprintf("%04X - SCD    %d", addr, n)
	case inst&0xFFF0 == 0x00D0:
		return fmt.Sprintf("%04X - SCU    %d", addr, n)
	case inst&0xF000 == 0x0000:
		return fmt.Sprintf("%04X - SYS    #%04X", addr, a)
	case inst&0xF000 == 0x1000:
		return fmt.Sprintf("%04X - JP     #%04X", addr, a)
	case inst&0xF000 == 0x2000:
		return fmt.Sprintf("%04X - CALL   #%04X", addr, a)
	case inst&0xF000 == 0x3000:
		return fmt.Sprintf("%04X - SE     V%X, #%02X", addr, x, b)
	case inst&0xF000 == 0x4000:
		return fmt.Sprintf("%04X - SNE    V%X, #%02X", addr, x, b)
	case inst&0xF00F == 0x5000:
		return fmt.Sprintf("%04X - SE     V%X, V%X", addr, x, y)
	case inst&0xF000 == 0x6000:
		return fmt.Sprintf("%04X - LD     V%X, #%02X", addr, x, b)
	case inst&0xF000 == 0x7000:
		return fmt.Sprintf("%04X - ADD    V%X, #%02X", addr, x, b)
	case inst&0xF00F == 0x8000:
		return fmt.Sprintf("%04X - LD     V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x8001:
		return fmt.Sprintf("%04X - OR     V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x8002:
		return fmt.Sprintf("%04X - AND    V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x8003:
		return fmt.Sprintf("%04X - XOR    V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x8004:
		return fmt.Sprintf("%04X - ADD    V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x8005:
		return fmt.Sprintf("%04X - SUB    V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x8006:
		return fmt.Sprintf("%04X - SHR    V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x8007:
		return fmt.Sprintf("%04X - SUBN   V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x800E:
		return fmt.Sprintf("%04X - SHL    V%X, V%X", addr, x, y)
	case inst&0xF00F == 0x9000:
		return fmt.Sprintf("%04X - SNE    V%X, V%X", addr, x, y)
	case inst&0xF000 == 0xA000:
		return fmt.Sprintf("%04X - LD     I, #%04X", addr, a)
	case inst&0xF000 == 0xB000:
		return fmt.Sprintf("%04X - JP     V0, #%04X", addr, a)
	case inst&0xF000 == 0xC000:
		return fmt.Sprintf("%04X - RND    V%X, #%02X", addr, x, b)
	case inst&0xF000 == 0xD000:
		return fmt.Sprintf("%04X - DRW    V%X, V%X, %d", addr, x, y, n)
	case inst&0xF0FF == 0xE09E:
		return fmt.Sprintf("%04X - SKP    V%X", addr, x)
	case inst&0xF0FF == 0xE0A1:
		return fmt.Sprintf("%04X - SKNP   V%X", addr, x)
	case inst == 0xF000:
		nnnn := m.peekWord(addr + 2)
		return fmt.Sprintf("%04X - LD     I, #%04X (long)", addr, nnnn)
	case inst&0xF0FF == 0xF001:
		return fmt.Sprintf("%04X - PLANE  %d", addr, x)
	case inst == 0xF002:
		return fmt.Sprintf("%04X - AUDIO  [I]", addr)
	case inst&0xF0FF == 0xF007:
		return fmt.Sprintf("%04X - LD     V%X, DT", addr, x)
	case inst&0xF0FF == 0xF00A:
		return fmt.Sprintf("%04X - LD     V%X, K", addr, x)
	case inst&0xF0FF == 0xF015:
		return fmt.Sprintf("%04X - LD     DT, V%X", addr, x)
	case inst&0xF0FF == 0xF018:
		return fmt.Sprintf("%04X - LD     ST, V%X", addr, x)
	case inst&0xF0FF == 0xF01E:
		return fmt.Sprintf("%04X - ADD    I, V%X", addr, x)
	case inst&0xF0FF == 0xF029:
		return fmt.Sprintf("%04X - LD     F, V%X", addr, x)
	case inst&0xF0FF == 0xF030:
		return fmt.Sprintf("%04X - LD     HF, V%X", addr, x)
	case inst&0xF0FF == 0xF033:
		return fmt.Sprintf("%04X - LD     B, V%X", addr, x)
	case inst&0xF0FF == 0xF03A:
		return fmt.Sprintf("%04X - PITCH  V%X", addr, x)
	case inst&0xF0FF == 0xF055:
		return fmt.Sprintf("%04X - LD     [I], V%X", addr, x)
	case inst&0xF0FF == 0xF065:
		return fmt.Sprintf("%04X - LD     V%X, [I]", addr, x)
	case inst&0xF0FF == 0xF075:
		return fmt.Sprintf("%04X - LD     R, V%X", addr, x)
	case inst&0xF0FF == 0xF085:
		return fmt.Sprintf("%04X - LD     V%X, R", addr, x)
	}

	return fmt.Sprintf("%04X - ??", addr)
}

// disassembleAround renders a short window of instructions centred on
// addr: the two preceding words, addr itself, and the one following
// word, for a Trap's Snippet (spec §6, §7).
func (m *Machine) disassembleAround(addr uint32) []string {
	lines := make([]string, 0, 4)

	for _, off := range []int32{-4, -2, 0, 2} {
		a := int64(addr) + int64(off)
		if a < 0 || int(a)+1 >= len(m.Memory) {
			continue
		}
		lines = append(lines, m.disassembleOne(uint32(a)))
	}

	return lines
}
