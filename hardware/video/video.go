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

// Package video implements the display operations of the CHIP-8 machine.
// The frame buffer itself is the reserved region of RAM described by the
// memorymap package; this package owns the operations over it and the
// private shadow copy used to decide whether a redraw is needed.
//
// Pixel output is not handled here. A renderer asks NeedsRedraw() and, when
// true, calls Draw() to fetch the raw one-bit-per-pixel buffer.
package video

import (
	"bytes"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Video owns the display operations over the frame buffer region of RAM.
type Video struct {
	mem *memory.RAM

	// copy of the frame buffer as of the last Draw(). used only to decide
	// whether the visible frame has changed
	shadow [memorymap.DisplaySize]uint8
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(mem *memory.RAM) *Video {
	return &Video{
		mem: mem,
	}
}

// Snapshot creates a copy of Video in its current state. The new instance
// still points at the supplied RAM.
func (vid *Video) Snapshot(mem *memory.RAM) *Video {
	n := *vid
	n.mem = mem
	return &n
}

// Plumb a new RAM instance into the Video.
func (vid *Video) Plumb(mem *memory.RAM) {
	vid.mem = mem
}

// Reset clears the frame buffer and the shadow copy.
func (vid *Video) Reset() {
	vid.Clear()
	for i := range vid.shadow {
		vid.shadow[i] = 0
	}
}

// Clear zeroes the frame buffer region.
func (vid *Video) Clear() {
	display := vid.mem.Display()
	for i := uint16(0); i < memorymap.DisplaySize; i++ {
		display[i] = 0
	}
}

// DrawSprite XOR-blits a sprite into the frame buffer. Each byte of the
// sprite is one row of eight pixels, most significant bit leftmost.
// Coordinates wrap modulo the display dimensions, per pixel, on both axes.
//
// Returns true if any pixel was flipped from set to unset, which is the
// collision condition reported through the flag register.
func (vid *Video) DrawSprite(baseX uint8, baseY uint8, sprite []uint8) bool {
	display := vid.mem.Display()

	flippedOff := false
	for srcY := 0; srcY < len(sprite); srcY++ {
		for srcX := 0; srcX < 8; srcX++ {
			dispX := (srcX + int(baseX)) % memorymap.DisplayWidth
			dispY := (srcY + int(baseY)) % memorymap.DisplayHeight

			// pixels are packed eight to a byte, highest bit first
			pixel := dispY*memorymap.DisplayWidth + dispX
			block := pixel / 8
			bit := uint(7 - (pixel % 8))

			srcBit := sprite[srcY]&(1<<uint(7-srcX)) != 0
			dstBit := display[block]&(1<<bit) != 0

			if srcBit && dstBit {
				flippedOff = true
			}

			if srcBit {
				display[block] ^= 1 << bit
			}
		}
	}

	return flippedOff
}

// Pixel returns the state of a single pixel of the frame buffer.
func (vid *Video) Pixel(x int, y int) bool {
	display := vid.mem.Display()
	pixel := y*memorymap.DisplayWidth + x
	return display[pixel/8]&(1<<uint(7-(pixel%8))) != 0
}

// NeedsRedraw returns true if the frame buffer has changed since the last
// call to Draw().
func (vid *Video) NeedsRedraw() bool {
	return !bytes.Equal(vid.mem.Display()[:memorymap.DisplaySize], vid.shadow[:])
}

// Draw snapshots the frame buffer into the shadow copy and returns the raw
// one-bit-per-pixel buffer for the renderer to consume. The returned slice
// aliases RAM and is valid until the next execution step.
func (vid *Video) Draw() []uint8 {
	copy(vid.shadow[:], vid.mem.Display())
	return vid.mem.Display()
}

// String returns the frame buffer as bordered rows of '#' and ' '
// characters, one character per pixel.
func (vid *Video) String() string {
	display := vid.mem.Display()

	border := func(s *strings.Builder) {
		s.WriteString("+")
		for x := 0; x < memorymap.DisplayWidth; x++ {
			s.WriteString("-")
		}
		s.WriteString("+\n")
	}

	s := strings.Builder{}
	border(&s)
	for y := 0; y < memorymap.DisplayHeight; y++ {
		s.WriteString("|")
		for x := 0; x < memorymap.DisplayWidth/8; x++ {
			block := display[y*memorymap.DisplayWidth/8+x]
			for i := 0; i < 8; i++ {
				if block&(1<<uint(7-i)) != 0 {
					s.WriteString("#")
				} else {
					s.WriteString(" ")
				}
			}
		}
		s.WriteString("|\n")
	}
	border(&s)

	return s.String()
}
