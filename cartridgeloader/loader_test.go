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

package cartridgeloader_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/test"
)

func TestSpeciesSelection(t *testing.T) {
	// explicit species always wins
	cl := cartridgeloader.NewLoader("game.ch8", "ETI660")
	test.Equate(t, cl.Species, cartridgeloader.SpeciesETI660)

	// AUTO and the empty string select by file extension
	cl = cartridgeloader.NewLoader("game.ch8", "AUTO")
	test.Equate(t, cl.Species, cartridgeloader.SpeciesCHIP8)

	cl = cartridgeloader.NewLoader("game.eti", "")
	test.Equate(t, cl.Species, cartridgeloader.SpeciesETI660)

	cl = cartridgeloader.NewLoader("game.ETI", "auto")
	test.Equate(t, cl.Species, cartridgeloader.SpeciesETI660)
}

func TestOrigin(t *testing.T) {
	cl := cartridgeloader.NewLoader("game.ch8", "CHIP8")
	origin, err := cl.Origin()
	test.ExpectedSuccess(t, err)
	test.Equate(t, origin, memorymap.OriginCHIP8)

	cl = cartridgeloader.NewLoader("game.eti", "AUTO")
	origin, err = cl.Origin()
	test.ExpectedSuccess(t, err)
	test.Equate(t, origin, memorymap.OriginETI660)

	cl = cartridgeloader.NewLoader("game.ch8", "VIP")
	_, err = cl.Origin()
	test.ExpectedFailure(t, err)
}

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join("roms", "pong.ch8"), "AUTO")
	test.Equate(t, cl.ShortName(), "pong")
}

func TestLoad(t *testing.T) {
	f, err := ioutil.TempFile("", "*.ch8")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(f.Name())

	image := []byte{0x60, 0x0a, 0x12, 0x00}
	if _, err := f.Write(image); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cl := cartridgeloader.NewLoader(f.Name(), "AUTO")
	err = cl.Load()
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(cl.Data), len(image))
	test.Equate(t, cl.Data[0], 0x60)
	test.Equate(t, cl.Hash != "", true)
}

func TestLoadMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader("no_such_file.ch8", "AUTO")
	err := cl.Load()
	test.ExpectedFailure(t, err)
}
