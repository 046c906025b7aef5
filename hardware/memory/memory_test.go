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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/test"
)

func TestLoad(t *testing.T) {
	ram := memory.NewRAM()

	err := ram.Load([]uint8{0x11, 0x22, 0x33}, memorymap.OriginCHIP8)
	test.ExpectedSuccess(t, err)

	d, err := ram.Read8(memorymap.OriginCHIP8)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x11)

	d, err = ram.Read8(memorymap.OriginCHIP8 + 2)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x33)

	// loading writes the glyph sprites. digit 0 is a box shape
	expected := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}
	for i, e := range expected {
		d, err = ram.Read8(memorymap.OriginGlyphs + uint16(i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, d, e)
	}
}

func TestLoadTooBig(t *testing.T) {
	ram := memory.NewRAM()

	// fill memory with a sentinel value so we can check nothing changed
	for i := uint16(0); i < memorymap.Memtop; i++ {
		_ = ram.Write8(i, 0xaa)
	}

	data := make([]uint8, int(memorymap.Memtop)-int(memorymap.OriginCHIP8))
	err := ram.Load(data, memorymap.OriginCHIP8)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.LoadError) {
		t.Errorf("expected load error, got %v", err)
	}

	// memory is untouched after a failed load. not even the glyphs
	for i := uint16(0); i < memorymap.Memtop; i++ {
		d, _ := ram.Read8(i)
		if d != 0xaa {
			t.Fatalf("memory changed at %#04x after failed load", i)
		}
	}
}

func TestLoadETI660Origin(t *testing.T) {
	ram := memory.NewRAM()

	err := ram.Load([]uint8{0x99}, memorymap.OriginETI660)
	test.ExpectedSuccess(t, err)

	d, err := ram.Read8(memorymap.OriginETI660)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x99)
}

func TestAccessBounds(t *testing.T) {
	ram := memory.NewRAM()

	_, err := ram.Read8(memorymap.Memtop)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, memory.AccessError) {
		t.Errorf("expected access error, got %v", err)
	}

	err = ram.Write8(memorymap.Memtop, 0x01)
	test.ExpectedFailure(t, err)

	// the last byte of memory is valid
	err = ram.Write8(memorymap.Memtop-1, 0x01)
	test.ExpectedSuccess(t, err)

	// but a 16 bit read from it is not
	_, err = ram.Read16(memorymap.Memtop - 1)
	test.ExpectedFailure(t, err)
}

func TestRead16BigEndian(t *testing.T) {
	ram := memory.NewRAM()

	_ = ram.Write8(0x0200, 0x12)
	_ = ram.Write8(0x0201, 0x34)

	d, err := ram.Read16(0x0200)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x1234)
}

func TestSnapshot(t *testing.T) {
	ram := memory.NewRAM()
	_ = ram.Write8(0x0300, 0x55)

	snap := ram.Snapshot()

	// writes to the original do not show in the snapshot
	_ = ram.Write8(0x0300, 0x66)

	d, _ := snap.Read8(0x0300)
	test.Equate(t, d, 0x55)
}

func TestDisplayAliasesMemory(t *testing.T) {
	ram := memory.NewRAM()

	_ = ram.Write8(memorymap.OriginDisplay, 0x80)
	test.Equate(t, ram.Display()[0], 0x80)
}
