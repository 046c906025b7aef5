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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Error patterns returned by the cartridgeloader package.
const (
	LoaderError = "cartridgeloader: %v"
)

// The two program species. The species decides the load origin in memory.
const (
	SpeciesCHIP8  = "CHIP8"
	SpeciesETI660 = "ETI660"
)

// Loader is used to specify the program to attach to the machine. It also
// permits the caller to specify the species of the program. Species
// selection by file extension is good enough in almost all cases.
type Loader struct {
	// filename of program to load
	Filename string

	// one of the Species values above. empty string or "AUTO" selects by
	// file extension at NewLoader() time
	Species string

	// sha1 of the loaded data. empty until Load() has been called
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return this
	// copy rather than re-reading the file
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The species argument will be used to set the Species field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used: ".eti" selects the ETI660 species, everything else
// selects CHIP8. Letter case is not significant.
func NewLoader(filename string, species string) Loader {
	cl := Loader{
		Filename: filename,
		Species:  SpeciesCHIP8,
	}

	species = strings.TrimSpace(strings.ToUpper(species))
	if species != "AUTO" && species != "" {
		cl.Species = species
	} else if strings.EqualFold(filepath.Ext(filename), ".eti") {
		cl.Species = SpeciesETI660
	}

	return cl
}

// ShortName returns a shortened version of the loader filename. Useful for
// log messages and generated filenames.
func (cl Loader) ShortName() string {
	sn := filepath.Base(cl.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(cl.Filename))
}

// Origin returns the memory address the program will be loaded at, according
// to the species.
func (cl Loader) Origin() (uint16, error) {
	switch cl.Species {
	case SpeciesCHIP8:
		return memorymap.OriginCHIP8, nil
	case SpeciesETI660:
		return memorymap.OriginETI660, nil
	}
	return 0, curated.Errorf(LoaderError, fmt.Sprintf("unrecognised species (%s)", cl.Species))
}

// Load the program image from disk. There is no magic header and no checksum
// so any byte sequence is accepted; a malformed program is caught later by
// the execution bounds and opcode checks.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	data, err := ioutil.ReadFile(cl.Filename)
	if err != nil {
		return curated.Errorf(LoaderError, err)
	}

	cl.Data = data
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))

	return nil
}
