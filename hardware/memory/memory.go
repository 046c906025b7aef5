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

// Package memory implements the single 4096 byte address space of the CHIP-8
// machine. Program code and data, the built-in glyph sprites and the display
// frame buffer all live in the one RAM instance. Layout constants are in the
// memorymap package.
//
// Every access is checked against the memory top. An out-of-range access is
// returned as a curated error with the AccessError pattern and is treated as
// a fatal fault by the CHIP8 type in the hardware package.
package memory

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Error patterns raised by the memory package.
const (
	// AccessError is a fatal fault when raised during execution.
	AccessError = "memory: access beyond memory top (%#04x)"

	// LoadError is returned by Load() when the program image will not fit.
	// It is a reportable condition, not a fault. Memory is not changed.
	LoadError = "memory: program of %d bytes will not fit at origin %#04x"
)

// RAM is the single linear memory space of the machine.
type RAM struct {
	ram []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. Memory
// is created zeroed.
func NewRAM() *RAM {
	return &RAM{
		ram: make([]uint8, memorymap.Memtop),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.ram = make([]uint8, len(ram.ram))
	copy(n.ram, ram.ram)
	return &n
}

// Reset zeroes all of memory.
func (ram *RAM) Reset() {
	for i := range ram.ram {
		ram.ram[i] = 0
	}
}

// Load copies a program image into memory at the given origin address and
// writes the glyph sprites into their reserved region. Fails, leaving memory
// untouched, if the image will not fit.
func (ram *RAM) Load(data []uint8, origin uint16) error {
	if len(data)+int(origin) >= int(memorymap.Memtop) {
		return curated.Errorf(LoadError, len(data), origin)
	}

	copy(ram.ram[origin:], data)
	copy(ram.ram[memorymap.OriginGlyphs:], glyphs[:])

	return nil
}

// Read8 returns the byte at the given address.
func (ram *RAM) Read8(address uint16) (uint8, error) {
	if address >= memorymap.Memtop {
		return 0, curated.Errorf(AccessError, address)
	}
	return ram.ram[address], nil
}

// Write8 writes a byte to the given address.
func (ram *RAM) Write8(address uint16, data uint8) error {
	if address >= memorymap.Memtop {
		return curated.Errorf(AccessError, address)
	}
	ram.ram[address] = data
	return nil
}

// Read16 returns two consecutive bytes combined big-endian. Used for
// instruction fetch.
func (ram *RAM) Read16(address uint16) (uint16, error) {
	if int(address)+1 >= int(memorymap.Memtop) {
		return 0, curated.Errorf(AccessError, address)
	}
	return uint16(ram.ram[address])<<8 | uint16(ram.ram[address+1]), nil
}

// ReadBlock returns a view of length bytes starting at the given address.
// The returned slice aliases memory and must not be retained across writes.
func (ram *RAM) ReadBlock(address uint16, length uint16) ([]uint8, error) {
	if int(address)+int(length) > int(memorymap.Memtop) {
		return nil, curated.Errorf(AccessError, address)
	}
	return ram.ram[address : address+length], nil
}

// WriteBlock copies the data slice into memory at the given address.
func (ram *RAM) WriteBlock(address uint16, data []uint8) error {
	if int(address)+len(data) > int(memorymap.Memtop) {
		return curated.Errorf(AccessError, address)
	}
	copy(ram.ram[address:], data)
	return nil
}

// Display returns the portion of memory reserved for the display frame
// buffer. The returned slice aliases memory.
func (ram *RAM) Display() []uint8 {
	return ram.ram[memorymap.OriginDisplay:]
}
