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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/random"
)

// testMachine assembles a CPU with real instances of its collaborators. the
// random source uses a zero seed so random numbers are predictable.
type testMachine struct {
	mem *memory.RAM
	vid *video.Video
	tmr *timer.Timer
	key *keypad.Keypad
	mc  *cpu.CPU
}

func newTestMachine() *testMachine {
	tm := &testMachine{
		mem: memory.NewRAM(),
		tmr: timer.NewTimer(),
		key: keypad.NewKeypad(),
	}
	tm.vid = video.NewVideo(tm.mem)

	rnd := random.NewRandom()
	rnd.ZeroSeed = true

	tm.mc = cpu.NewCPU(tm.mem, tm.vid, tm.tmr, tm.key, rnd)
	tm.mc.LoadPC(memorymap.OriginCHIP8)

	return tm
}

// putInstructions copies a byte sequence into memory and returns the address
// of the byte after the sequence.
func (tm *testMachine) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		if err := tm.mem.Write8(origin+uint16(i), b); err != nil {
			panic(err)
		}
	}
	return origin + uint16(len(bytes))
}

// step the CPU once, failing the test on any error.
func (tm *testMachine) step(t *testing.T) bool {
	t.Helper()
	executed, err := tm.mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	return executed
}
