package chip8

// op6xnn: 6XNN LD Vx, NN.
func op6xnn(m *Machine, inst instruction) *Trap {
	m.V[inst.x] = inst.nn
	return nil
}

// op7xnn: 7XNN ADD Vx, NN (no carry, wraps mod 256).
func op7xnn(m *Machine, inst instruction) *Trap {
	m.V[inst.x] += inst.nn
	return nil
}

// op8xyn dispatches the arithmetic/logic family (spec §4.2). In every
// flag-producing case VF is assigned last so the result stays
// observable to a subsequent read, even when x == 0xF.
func op8xyn(m *Machine, inst instruction) *Trap {
	x, y := inst.x, inst.y

	switch inst.n {
	case 0x0:
		m.V[x] = m.V[y]
	case 0x1:
		m.V[x] |= m.V[y]
		if m.Logic {
			m.V[0xF] = 0
		}
	case 0x2:
		m.V[x] &= m.V[y]
		if m.Logic {
			m.V[0xF] = 0
		}
	case 0x3:
		m.V[x] ^= m.V[y]
		if m.Logic {
			m.V[0xF] = 0
		}
	case 0x4:
		sum := uint16(m.V[x]) + uint16(m.V[y])
		result := byte(sum)
		carry := boolByte(sum > 0xFF)
		m.V[x] = result
		m.V[0xF] = carry
	case 0x5:
		borrow := boolByte(m.V[x] >= m.V[y])
		result := m.V[x] - m.V[y]
		m.V[x] = result
		m.V[0xF] = borrow
	case 0x6:
		var src byte
		if m.Shift {
			src = m.V[x]
		} else {
			src = m.V[y]
		}
		bit := src & 1
		m.V[x] = src >> 1
		m.V[0xF] = bit
	case 0x7:
		borrow := boolByte(m.V[y] >= m.V[x])
		result := m.V[y] - m.V[x]
		m.V[x] = result
		m.V[0xF] = borrow
	case 0xE:
		var src byte
		if m.Shift {
			src = m.V[x]
		} else {
			src = m.V[y]
		}
		bit := src >> 7
		m.V[x] = src << 1
		m.V[0xF] = bit
	default:
		return m.badOpcode()
	}

	return nil
}

// opCxnn: CXNN RND Vx, NN — Vx := random byte & NN.
func opCxnn(m *Machine, inst instruction) *Trap {
	m.V[inst.x] = byte(m.rng.Intn(256)) & inst.nn
	return nil
}
