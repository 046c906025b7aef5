// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package timer implements the two countdown timers of the CHIP-8 machine.
// The timers are decremented by the Tick() function only. Tick() must be
// called by the host at a fixed rate, nominally 60Hz, decoupled from
// instruction throughput.
package timer

import "fmt"

// Timer holds the delay and sound countdown values. Both saturate at zero.
type Timer struct {
	Delay uint8
	Sound uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

// Snapshot creates a copy of the Timer in its current state.
func (tmr *Timer) Snapshot() *Timer {
	n := *tmr
	return &n
}

// Reset both timers to zero.
func (tmr *Timer) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("D: 0x%02X\tS: 0x%02X", tmr.Delay, tmr.Sound)
}

// Tick decrements both timers, flooring at zero. Never called as a side
// effect of instruction execution.
func (tmr *Timer) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// SoundActive is the definition of "a tone should be playing".
func (tmr *Timer) SoundActive() bool {
	return tmr.Sound > 0
}
