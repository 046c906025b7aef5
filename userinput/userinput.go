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

// Package userinput translates host keyboard events into CHIP-8 keypad
// keys. It knows nothing about any particular GUI framework; the gui
// packages convert their own event types into the plain key names used
// here.
//
// The mapping is the conventional one for the left side of a modern
// keyboard, mirroring the 4x4 layout of the original hex keypad:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
package userinput

// keyboard key (lower case) to CHIP-8 keypad key
var keypadMap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
	'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
}

// Key returns the CHIP-8 keypad key for a host keyboard key. The second
// return value is false if the host key has no mapping.
func Key(host rune) (uint8, bool) {
	k, ok := keypadMap[host]
	return k, ok
}
