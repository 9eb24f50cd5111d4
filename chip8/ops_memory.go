package chip8

import "math"

// opAnnn: ANNN LD I, NNN.
func opAnnn(m *Machine, inst instruction) *Trap {
	m.I = uint32(inst.nnn)
	return nil
}

// opFxxx dispatches every F-prefixed opcode: register/timer/font/BCD
// moves (spec §4.4), the XO-CHIP extended-load/plane/audio family
// (spec §4.1, §4.4, §4.6), and user-flag persistence.
func opFxxx(m *Machine, inst instruction) *Trap {
	switch inst.nn {
	case 0x00:
		if inst.x != 0 {
			return m.badOpcode()
		}
		// F000 NNNN: I <- NNNN, a two-word XO-CHIP sequence; the
		// second word is consumed here rather than by the decoder
		// (spec §9, "dynamic-length instructions").
		nnnn := m.peekWord(m.PC)
		m.I = uint32(nnnn)
		m.PC += 2
		return nil
	case 0x01:
		// FN01: select plane mask N (x carries the mask nibble here).
		m.PlaneMask = inst.x
		return nil
	case 0x02:
		if inst.x != 0 {
			return m.badOpcode()
		}
		return m.saveAudioPattern()
	case 0x07:
		m.V[inst.x] = m.DT
		return nil
	case 0x0A:
		m.beginKeyWait(inst.x)
		return nil
	case 0x15:
		m.DT = m.V[inst.x]
		return nil
	case 0x18:
		m.ST = m.V[inst.x]
		_ = m.audio.Gate(m.ST > 0) // audio port failures are non-fatal, spec §7
		return nil
	case 0x1E:
		return m.addIX(inst.x)
	case 0x29:
		m.I = lowResFontAddr(m.V[inst.x])
		return nil
	case 0x30:
		m.I = hiResFontAddr(m.V[inst.x])
		return nil
	case 0x33:
		return m.bcd(inst.x)
	case 0x3A:
		m.audioPitch = m.V[inst.x]
		freq := basePatternFreqHz * math.Exp2((float64(m.audioPitch)-64.0)/48.0)
		_ = m.audio.SetTone(freq)
		return nil
	case 0x55:
		return m.saveRegs(inst.x)
	case 0x65:
		return m.loadRegs(inst.x)
	case 0x75:
		return m.storeUserFlags(inst.x)
	case 0x85:
		return m.loadUserFlags(inst.x)
	}

	return m.badOpcode()
}

// addIX: FX1E ADD I, Vx. When the index_overflow quirk is on, VF is set
// on a 12-bit overflow of I (spec §4.4, §4.8).
func (m *Machine) addIX(x byte) *Trap {
	m.I += uint32(m.V[x])

	if m.IndexOverflow {
		if m.I > 0xFFF {
			m.V[0xF] = 1
		} else {
			m.V[0xF] = 0
		}
	}

	return nil
}

// saveRegs: FX55 LD [I], Vx — store V0..Vx through I.
func (m *Machine) saveRegs(x byte) *Trap {
	for i := byte(0); i <= x; i++ {
		addr := m.I + uint32(i)
		if int(addr) >= len(m.Memory) {
			return &Trap{Kind: TrapIndexOutOfRange, Address: addr}
		}
		m.Memory[addr] = m.V[i]
	}
	m.advanceIndexAfterRegisterOp(x)
	return nil
}

// loadRegs: FX65 LD Vx, [I] — load V0..Vx through I.
func (m *Machine) loadRegs(x byte) *Trap {
	for i := byte(0); i <= x; i++ {
		addr := m.I + uint32(i)
		if int(addr) >= len(m.Memory) {
			return &Trap{Kind: TrapIndexOutOfRange, Address: addr}
		}
		m.V[i] = m.Memory[addr]
	}
	m.advanceIndexAfterRegisterOp(x)
	return nil
}

// advanceIndexAfterRegisterOp reconciles the load and index_increment
// quirks (spec §4.4, §4.8): load=on leaves I untouched; load=off
// increments I by x (index_increment=on) or x+1 (index_increment=off).
func (m *Machine) advanceIndexAfterRegisterOp(x byte) {
	if m.Quirks.Load {
		return
	}
	if m.IndexIncrement {
		m.I += uint32(x)
	} else {
		m.I += uint32(x) + 1
	}
}

// storeUserFlags: FX75 store V0..Vx into the persistent R0..R15 flags.
func (m *Machine) storeUserFlags(x byte) *Trap {
	if int(x) >= m.MaxUserFlags {
		return m.badOpcode()
	}
	copy(m.R[:x+1], m.V[:x+1])
	return nil
}

// loadUserFlags: FX85 load R0..Rx into V0..Vx.
func (m *Machine) loadUserFlags(x byte) *Trap {
	if int(x) >= m.MaxUserFlags {
		return m.badOpcode()
	}
	copy(m.V[:x+1], m.R[:x+1])
	return nil
}

// bcd: FX33 LD B, Vx — write the 3-digit binary-coded decimal
// representation of Vx to memory at I, I+1, I+2.
func (m *Machine) bcd(x byte) *Trap {
	v := m.V[x]
	if int(m.I)+2 >= len(m.Memory) {
		return &Trap{Kind: TrapIndexOutOfRange, Address: m.I + 2}
	}
	m.Memory[m.I] = v / 100
	m.Memory[m.I+1] = (v / 10) % 10
	m.Memory[m.I+2] = v % 10
	return nil
}

// saveAudioPattern: F002 — copy the 16-byte XO-CHIP audio pattern
// buffer from memory at I (spec §4.4, §4.6).
func (m *Machine) saveAudioPattern() *Trap {
	if int(m.I)+16 > len(m.Memory) {
		return &Trap{Kind: TrapIndexOutOfRange, Address: m.I + 16}
	}
	copy(m.audioPattern[:], m.Memory[m.I:m.I+16])
	_ = m.audio.SetPattern(m.audioPattern)
	return nil
}

// basePatternFreqHz is the XO-CHIP audio pattern buffer's base playback
// rate at the neutral pitch value (64), per the FX3A formula (spec §4.6).
const basePatternFreqHz = 4000.0
