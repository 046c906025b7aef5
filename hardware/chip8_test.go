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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/test"
)

// attach builds a loader around an in-memory program image. the Data field
// being populated means the loader never goes to disk.
func attach(t *testing.T, ch8 *hardware.CHIP8, image []uint8) {
	t.Helper()
	cartload := cartridgeloader.NewLoader("test.ch8", "AUTO")
	cartload.Data = image
	if err := ch8.AttachCartridge(cartload); err != nil {
		t.Fatal(err)
	}
}

func TestAttachCartridge(t *testing.T) {
	ch8 := hardware.NewCHIP8()
	attach(t, ch8, []uint8{0x60, 0x0a})

	test.Equate(t, ch8.CPU.PC, memorymap.OriginCHIP8)

	d, err := ch8.Mem.Read8(memorymap.OriginCHIP8)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x60)
}

func TestAttachTooBig(t *testing.T) {
	ch8 := hardware.NewCHIP8()

	cartload := cartridgeloader.NewLoader("test.ch8", "AUTO")
	cartload.Data = make([]uint8, int(memorymap.Memtop))
	err := ch8.AttachCartridge(cartload)
	test.ExpectedFailure(t, err)
}

// a short program: load 0x0a into V0, point the index register at the sprite
// data stored further into the image and draw it at (V0, V0).
func TestProgram(t *testing.T) {
	image := make([]uint8, 0x15)
	copy(image, []uint8{
		0x60, 0x0a, // LD V0, 0x0a
		0xa2, 0x10, // LD I, 0x210
		0xd0, 0x05, // DRW V0, V0, 5
	})
	copy(image[0x10:], []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0})

	ch8 := hardware.NewCHIP8()
	attach(t, ch8, image)

	if err := ch8.Step(3); err != nil {
		t.Fatal(err)
	}

	test.Equate(t, ch8.CPU.V[0x0], 0x0a)
	test.Equate(t, ch8.CPU.I, 0x0210)
	test.Equate(t, ch8.CPU.PC, int(memorymap.OriginCHIP8)+6)

	// no collision on a clear display
	test.Equate(t, ch8.CPU.V[0xf], 0)

	// the box shape of the sprite appears at (10,10)
	test.Equate(t, ch8.Video.Pixel(10, 10), true)
	test.Equate(t, ch8.Video.Pixel(13, 10), true)
	test.Equate(t, ch8.Video.Pixel(11, 11), false)
	test.Equate(t, ch8.Video.Pixel(10, 14), true)

	test.Equate(t, ch8.Video.NeedsRedraw(), true)
}

func TestStepBatchEndsOnAwaitKey(t *testing.T) {
	ch8 := hardware.NewCHIP8()
	attach(t, ch8, []uint8{
		0x60, 0x01, // LD V0, 0x01
		0xf1, 0x0a, // LD V1, K
		0x62, 0x02, // LD V2, 0x02
	})

	// the batch ends early at the await. V2 is never written
	if err := ch8.Step(10); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, ch8.CPU.V[0x0], 0x01)
	test.Equate(t, ch8.CPU.V[0x2], 0x00)

	// press a key. the next batch spends a step on fulfilment and then
	// continues
	ch8.Keypad.Press(0x8)
	if err := ch8.Step(2); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, ch8.CPU.V[0x1], 0x08)
	test.Equate(t, ch8.CPU.V[0x2], 0x02)
}

func TestFaultWrapping(t *testing.T) {
	ch8 := hardware.NewCHIP8()

	// return with an empty call stack
	attach(t, ch8, []uint8{0x00, 0xee})

	err := ch8.Step(1)
	test.ExpectedFailure(t, err)

	// the fault wraps the underlying cause
	if !curated.Is(err, hardware.FaultError) {
		t.Errorf("expected wrapped fault, got %v", err)
	}
	if !curated.Has(err, cpu.OutOfStackError) {
		t.Errorf("expected out of stack fault in the chain, got %v", err)
	}
}

func TestReset(t *testing.T) {
	ch8 := hardware.NewCHIP8()
	attach(t, ch8, []uint8{0x60, 0x99})

	if err := ch8.Step(1); err != nil {
		t.Fatal(err)
	}
	ch8.Timer.Delay = 10
	test.Equate(t, ch8.CPU.V[0x0], 0x99)

	if err := ch8.Reset(); err != nil {
		t.Fatal(err)
	}

	// registers and timers are cleared, the program is reloaded
	test.Equate(t, ch8.CPU.V[0x0], 0x00)
	test.Equate(t, ch8.Timer.Delay, 0x00)
	test.Equate(t, ch8.CPU.PC, memorymap.OriginCHIP8)

	d, _ := ch8.Mem.Read8(memorymap.OriginCHIP8)
	test.Equate(t, d, 0x60)
}

func TestSoundActive(t *testing.T) {
	ch8 := hardware.NewCHIP8()
	attach(t, ch8, []uint8{
		0x60, 0x02, // LD V0, 0x02
		0xf0, 0x18, // LD ST, V0
	})

	if err := ch8.Step(2); err != nil {
		t.Fatal(err)
	}
	test.Equate(t, ch8.SoundActive(), true)

	ch8.Tick()
	test.Equate(t, ch8.SoundActive(), true)
	ch8.Tick()
	test.Equate(t, ch8.SoundActive(), false)
}
