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

// Package cartridgeloader is used to specify the program to be attached to
// the emulated machine. The Loader type records the filename and the species
// of the program; the species decides the load origin in memory.
//
// The loader performs no validation of the program bytes. Malformed programs
// are caught at execution time by the bounds and opcode checks in the
// hardware package.
package cartridgeloader
