package chip8

// Tick advances the 60Hz timer/clock subsystem by one step (spec §4.6):
// DT, ST, and the video timer saturate-decrement toward zero, and
// tickCount advances so the sprite_delay quirk has a notion of "a tick
// has passed". ST reaching zero gates audio off.
func (m *Machine) Tick() {
	if m.DT > 0 {
		m.DT--
	}
	if m.ST > 0 {
		m.ST--
		if m.ST == 0 {
			_ = m.audio.Gate(false)
		}
	}
	if m.videoTimer > 0 {
		m.videoTimer--
	}

	m.tickCount++
}

// ApplyInputEvents folds a batch of key events into the live key-state
// bitmap. Hosts call this once per tick with whatever Input.Poll
// returned (spec §5: "input events are only visible to the core at tick
// boundaries, never mid-cycle-burst").
func (m *Machine) ApplyInputEvents(events []KeyEvent) {
	for _, ev := range events {
		m.Keys[ev.Key&0xF] = ev.Pressed
	}
}
