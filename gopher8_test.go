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

package main_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware"
)

func BenchmarkCPU(b *testing.B) {
	// a tight loop: increment V0 then jump back to the increment
	cartload := cartridgeloader.Loader{
		Filename: "bench.ch8",
		Species:  cartridgeloader.SpeciesCHIP8,
		Data:     []byte{0x60, 0x00, 0x70, 0x01, 0x12, 0x02},
	}

	ch8 := hardware.NewCHIP8()
	err := ch8.AttachCartridge(cartload)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		err = ch8.Step(1)
		if err != nil {
			b.Fatal(err)
		}
	}
}
