/*
   GaxRip - GSF ripper for the GAX sound engine
   Copyright (c) 2023, the GaxRip authors

   This file is part of GaxRip.

   GaxRip is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   GaxRip is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with GaxRip. If not, see <http://www.gnu.org/licenses/>.
*/

package gax

import (
	"encoding/binary"

	"github.com/gaxrip/gaxrip/pkg/gax/agb"
)

/*
	The engine's working memory pointer is not part of any static metadata,
	it is a literal baked into the play function's machine code. So the play
	entry point must have been located before the pointer can be read, and
	the field offset inside the function differs between releases.
*/
func findWorkRAMPointer(rom []byte, version Version, play agb.Address) agb.Address {
	if version.Major == 3 {
		return findWorkRAMPointerV3(rom, play)
	}
	return findWorkRAMPointerV2(rom, play)
}

/*
	In version 2 the pointer field moved around between function body
	shapes. The byte at play+2 is a branch operand that discriminates the
	shapes, so it selects the field offset: 0x30 and 0x4c are the two known
	alternate layouts, everything else uses the common one.
*/
func findWorkRAMPointerV2(rom []byte, play agb.Address) agb.Address {

	offset, err := play.Offset()
	if err != nil {
		return agb.Address{}
	}
	if int(offset)+0xf4 >= len(rom) {
		return agb.Address{}
	}

	var field uint32
	switch rom[offset+2] {
	case 0x30:
		field = 0xc4
	case 0x4c:
		field = 0x134
	default:
		field = 0xf0
	}

	return readRAMPointer(rom, offset+field)
}

// In version 3 the pointer sits at one fixed offset inside the play function.
func findWorkRAMPointerV3(rom []byte, play agb.Address) agb.Address {

	offset, err := play.Add(0x124).Offset()
	if err != nil {
		return agb.Address{}
	}
	if int(offset)+4 >= len(rom) {
		return agb.Address{}
	}

	return readRAMPointer(rom, offset)
}

/*
	readRAMPointer reads a little endian pointer at offset and validates
	that it lands in one of the writable RAM windows. Anything else means
	the pointer was not located, which is an optional outcome, not a hard
	failure.
*/
func readRAMPointer(rom []byte, offset uint32) agb.Address {

	if int(offset)+4 > len(rom) {
		return agb.Address{}
	}

	ptr := agb.Ptr(binary.LittleEndian.Uint32(rom[offset:]))
	if ptr.IsEWRAM() || ptr.IsIWRAM() {
		return ptr
	}

	return agb.Address{}
}
