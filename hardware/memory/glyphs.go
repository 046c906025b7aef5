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

package memory

// the built-in glyph sprites for the sixteen hexadecimal digits. five bytes
// per digit, one byte per row, only the top nibble of each byte is used.
// written into the reserved glyph region on every program load.
var glyphs = [80]uint8{
	// 0
	0b11110000,
	0b10010000,
	0b10010000,
	0b10010000,
	0b11110000,

	// 1
	0b01100000,
	0b10100000,
	0b00100000,
	0b00100000,
	0b11110000,

	// 2
	0b11110000,
	0b00010000,
	0b11110000,
	0b10000000,
	0b11110000,

	// 3
	0b11110000,
	0b00010000,
	0b11110000,
	0b00010000,
	0b11110000,

	// 4
	0b10010000,
	0b10010000,
	0b11110000,
	0b00010000,
	0b00010000,

	// 5
	0b11110000,
	0b10000000,
	0b11110000,
	0b00010000,
	0b11110000,

	// 6
	0b11110000,
	0b10000000,
	0b11110000,
	0b10010000,
	0b11110000,

	// 7
	0b11110000,
	0b00010000,
	0b00010000,
	0b00010000,
	0b00010000,

	// 8
	0b11110000,
	0b10010000,
	0b11110000,
	0b10010000,
	0b11110000,

	// 9
	0b11110000,
	0b10010000,
	0b11110000,
	0b00010000,
	0b00010000,

	// A
	0b11110000,
	0b10010000,
	0b11110000,
	0b10010000,
	0b10010000,

	// B
	0b11100000,
	0b10010000,
	0b11100000,
	0b10010000,
	0b11100000,

	// C
	0b11110000,
	0b10000000,
	0b10000000,
	0b10000000,
	0b11110000,

	// D
	0b11100000,
	0b10010000,
	0b10010000,
	0b10010000,
	0b11100000,

	// E
	0b11110000,
	0b10000000,
	0b11110000,
	0b10000000,
	0b11110000,

	// F
	0b11110000,
	0b10000000,
	0b11110000,
	0b10000000,
	0b10000000,
}
