package chip8

// op0xxx dispatches the 0-prefixed opcodes: CLS, RET, the Super-CHIP/
// XO-CHIP scroll/resolution family, and the ignored 0NNN machine-code
// call (spec §4.1, §4.3, §4.5).
func op0xxx(m *Machine, inst instruction) *Trap {
	switch inst.nn {
	case 0xE0:
		m.fb.Clear(m.PlaneMask)
		return nil
	case 0xEE:
		return m.ret()
	case 0xFB:
		m.fb.ScrollRight(m.scrollMask(), m.scrollAmount(4))
		return nil
	case 0xFC:
		m.fb.ScrollLeft(m.scrollMask(), m.scrollAmount(4))
		return nil
	case 0xFD:
		m.halted = true
		return nil
	case 0xFE:
		m.setResolution(64, 32)
		return nil
	case 0xFF:
		m.setResolution(128, 64)
		return nil
	}

	switch inst.nn & 0xF0 {
	case 0xC0:
		m.fb.ScrollDown(m.scrollMask(), m.scrollAmount(int(inst.n)))
		return nil
	case 0xD0:
		m.fb.ScrollUp(m.scrollMask(), m.scrollAmount(int(inst.n)))
		return nil
	}

	// 0NNN: call to RCA 1802/native machine code. No host executes
	// real machine code on behalf of a CHIP-8 ROM; treated as a no-op,
	// matching every modern interpreter's handling of legacy SYS calls.
	return nil
}

// scrollMask returns which planes a scroll affects: every plane on the
// single-plane classic dialects, only the selected planes on XO-CHIP
// (spec §4.5, "XO-CHIP scrolls are per selected-plane; classic scrolls
// are global").
func (m *Machine) scrollMask() byte {
	if m.Arch == XOChip || m.Arch == XOChip16Colour {
		return m.PlaneMask
	}
	return byte(1<<uint(m.MaxPlanes) - 1)
}

// scrollAmount halves a hi-res scroll distance while in low-resolution
// mode, when the architecture's LoResIsDouble quirk calls for it.
func (m *Machine) scrollAmount(n int) int {
	w, _ := m.fb.Dimensions()
	if w <= 64 && m.LoResIsDouble {
		return n / 2
	}
	return n
}

func (m *Machine) setResolution(w, h int) {
	m.fb.SetMode(w, h)
	if err := m.display.SetMode(w, h, m.MaxPlanes); err != nil {
		// The SetMode error is dropped: the instruction has no trap slot
		// for port failures, and nothing reports the error later.
		_ = err
	}
}

// op1nnn: 1NNN JP NNN.
func op1nnn(m *Machine, inst instruction) *Trap {
	m.PC = uint32(inst.nnn)
	return nil
}

// op2nnn: 2NNN CALL NNN.
func op2nnn(m *Machine, inst instruction) *Trap {
	if m.SP >= m.StackCapacity {
		return &Trap{Kind: TrapStackOverflow}
	}
	m.Stack[m.SP] = m.PC
	m.SP++
	m.PC = uint32(inst.nnn)
	return nil
}

func (m *Machine) ret() *Trap {
	if m.SP == 0 {
		return &Trap{Kind: TrapStackUnderflow}
	}
	m.SP--
	m.PC = m.Stack[m.SP]
	return nil
}

// op3xnn: 3XNN SE Vx, NN.
func op3xnn(m *Machine, inst instruction) *Trap {
	if m.V[inst.x] == inst.nn {
		m.skipNext()
	}
	return nil
}

// op4xnn: 4XNN SNE Vx, NN.
func op4xnn(m *Machine, inst instruction) *Trap {
	if m.V[inst.x] != inst.nn {
		m.skipNext()
	}
	return nil
}

// op5xyn: 5XY0 SE Vx, Vy. No other op in the 5-prefix family is defined
// by this spec; any other n is an invalid opcode.
func op5xyn(m *Machine, inst instruction) *Trap {
	if inst.n != 0 {
		return m.badOpcode()
	}
	if m.V[inst.x] == m.V[inst.y] {
		m.skipNext()
	}
	return nil
}

// op9xyn: 9XY0 SNE Vx, Vy.
func op9xyn(m *Machine, inst instruction) *Trap {
	if inst.n != 0 {
		return m.badOpcode()
	}
	if m.V[inst.x] != m.V[inst.y] {
		m.skipNext()
	}
	return nil
}

// opBnnn: BNNN JP V0, NNN (classic) or JP Vx, XNN (Super-CHIP jump
// quirk), per spec §4.3.
func opBnnn(m *Machine, inst instruction) *Trap {
	if m.Jump {
		// inst.x is the same nibble as the "X" in XNN: BXNN jumps to
		// XNN + Vx.
		m.PC = uint32(inst.nnn) + uint32(m.V[inst.x])
	} else {
		m.PC = uint32(inst.nnn) + uint32(m.V[0])
	}
	return nil
}
