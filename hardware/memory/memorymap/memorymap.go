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

// Package memorymap defines the memory layout of the CHIP-8 machine. A
// single 4096 byte address space holds program code and data, the built-in
// glyph sprites and the display frame buffer.
package memorymap

// Memtop is the size of the addressable memory space. Every memory access is
// checked against this value. There are no mirrors and no unmapped holes.
const Memtop = uint16(0x1000)

// The built-in glyph sprites live in the low reserved region. One sprite for
// each of the sixteen hexadecimal digits, GlyphSize bytes each.
const (
	OriginGlyphs = uint16(0x0010)
	GlyphSize    = uint16(0x0005)
	MemtopGlyphs = OriginGlyphs + GlyphSize*16 - 1
)

// The display frame buffer is packed one bit per pixel, row-major, most
// significant bit first. Note that DisplaySize is 0x00ff and not 0x0100. The
// final byte of the display therefore coincides with the final byte of
// memory and is reachable by the sprite blit but is not covered by the clear
// or compare operations. This is the behaviour of the original hardware
// description and changing it would alter what programs observe.
const (
	OriginDisplay = uint16(0x0f00)
	DisplaySize   = uint16(0x00ff)
)

// Dimensions of the display in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// The load origins for the two program species. Which origin is used depends
// on the cartridgeloader.
const (
	OriginCHIP8  = uint16(0x0200)
	OriginETI660 = uint16(0x0600)
)
