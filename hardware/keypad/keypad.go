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

// Package keypad holds the most recent snapshot of the sixteen key CHIP-8
// keypad. The snapshot is supplied by the host before a batch of execution
// steps. The emulation core only ever reads the snapshot; it never samples
// the host keyboard itself.
package keypad

// NumKeys is the number of keys on the CHIP-8 keypad.
const NumKeys = 16

// Keypad is a pressed/released snapshot of the keypad. One bit per key.
type Keypad struct {
	keys uint16
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Snapshot creates a copy of the Keypad in its current state.
func (key *Keypad) Snapshot() *Keypad {
	n := *key
	return &n
}

// Reset releases all keys.
func (key *Keypad) Reset() {
	key.keys = 0
}

// Set replaces the snapshot with a new pressed/released mask.
func (key *Keypad) Set(mask uint16) {
	key.keys = mask
}

// Press a single key.
func (key *Keypad) Press(k uint8) {
	if k < NumKeys {
		key.keys |= 1 << k
	}
}

// Release a single key.
func (key *Keypad) Release(k uint8) {
	if k < NumKeys {
		key.keys &^= 1 << k
	}
}

// IsPressed returns the state of a single key. Key values outside the keypad
// return false; validity of the key value is the caller's concern.
func (key *Keypad) IsPressed(k uint8) bool {
	return k < NumKeys && key.keys&(1<<k) != 0
}

// FirstPressed returns the lowest-indexed pressed key. The second return
// value is false if no key is pressed at all.
func (key *Keypad) FirstPressed() (uint8, bool) {
	for k := uint8(0); k < NumKeys; k++ {
		if key.keys&(1<<k) != 0 {
			return k, true
		}
	}
	return 0, false
}
