package chip8

import (
	"context"
	"time"
)

// Process catches the CPU up to wall-clock time, stepping as many cycles
// as the configured clock speed says should have elapsed since the last
// call (or since Reset), mirroring the teacher's Process (massung-CHIP-8/
// chip8/chip8.go). When paused it only advances the cycle accounting, not
// the machine. A ClockSpeed of zero selects uncapped mode (spec §5): the
// budget for one call becomes "every cycle that fits in one 1/60s tick",
// rather than a cycles-per-second target.
func (m *Machine) Process(paused bool) *Trap {
	elapsed := time.Since(m.clockZero)

	var budget int64
	var deadline time.Time
	if m.ClockSpeed > 0 {
		budget = elapsed.Nanoseconds() * int64(m.ClockSpeed) / int64(time.Second)
	} else {
		budget = m.Cycles + m.uncappedBurst()
		deadline = time.Now().Add(time.Second / 60)
	}

	if paused {
		m.Cycles = budget
		return nil
	}

	for m.Cycles < budget {
		if trap := m.Step(); trap != nil {
			return trap
		}

		// A blocking wait (FX0A, sprite_delay) can't be caught up by
		// spinning Step in place; let the wall clock move on instead of
		// busy-looping until a key or tick arrives.
		if m.waitState != 0 || m.spritePending {
			break
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}

	return nil
}

// uncappedBurst caps the cycle count of a single Process call when no
// clock speed is configured; Process also ends such a call once one
// 1/60s tick of wall time has passed, so an uncapped machine still
// yields control back to the host at the input/video cadence instead of
// running forever in one call.
func (m *Machine) uncappedBurst() int64 {
	const burstCyclesPerTick = 1_000_000
	return burstCyclesPerTick
}

// Run drives the machine until ctx is cancelled, a fatal Trap occurs, or
// a Display port fails: CPU cycles are caught up on a 1ms tick (matching
// the teacher's clock/video ticker pair in main.go), the 60Hz timer
// subsystem ticks on its own ticker, input is polled and folded in at
// that same cadence, and the display is presented once per timer tick.
// An Input failure is ignored here (that tick's events are dropped); a
// Display failure is fatal (spec §7).
func (m *Machine) Run(ctx context.Context) error {
	clock := time.NewTicker(time.Millisecond)
	defer clock.Stop()

	video := time.NewTicker(time.Second / 60)
	defer video.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-video.C:
			if events, err := m.input.Poll(); err == nil {
				m.ApplyInputEvents(events)
			}

			m.Tick()

			w, h := m.Resolution()
			if err := m.display.Present(m.fb.PlaneBitmaps(), Rect{X: 0, Y: 0, W: w, H: h}); err != nil {
				return &PortError{Port: "display", Err: err}
			}

		case <-clock.C:
			if trap := m.Process(m.halted); trap != nil {
				return trap
			}
			if m.halted {
				return &Trap{Kind: TrapHalt, PC: m.PC}
			}
		}
	}
}
