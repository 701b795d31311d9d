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
	"bytes"

	"github.com/gaxrip/gaxrip/pkg/gax/agb"
)

/*
	The catalogs below are the bit exact compatibility surface of the
	identifier. Each entry point has one ordered list of signatures, newest
	engine release first, so that an image compatible with several releases
	resolves to the correct concrete code shape and not to an earlier
	coincidental match.

	Signatures are append only: a new point release that changes even one
	instruction gets a new entry, existing entries are never edited or
	generalized into wildcard patterns.
*/

var gax2EstimateSigs = [][]byte{
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x82, 0xb0, 0x07, 0x1c, 0x00, 0x24, 0x00, 0x20, 0x00, 0x90}, // GAX 3
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x8b, 0xb0, 0x00, 0x90, 0x00, 0x20, 0x80, 0x46, 0x00, 0x21}, // GAX 2.3
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x8a, 0xb0, 0x81, 0x46, 0x00, 0x27, 0x00, 0x20, 0x02, 0x90}, // GAX 2.2
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x88, 0xb0, 0x00, 0x90, 0x00, 0x27, 0x00, 0x20, 0x02, 0x90}, // GAX 2.1
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x87, 0xb0, 0x00, 0x90, 0x00, 0x27, 0x00, 0x20, 0x02, 0x90}, // GAX 2.02
}

var gax2NewSigs = [][]byte{
	{0xf0, 0xb5, 0x47, 0x46, 0x80, 0xb4, 0x81, 0xb0, 0x06, 0x1c, 0x00, 0x2e}, // GAX 2.3 and GAX 3
	{0x10, 0xb5, 0x04, 0x1c, 0x00, 0x2c, 0x09, 0xd1, 0x02, 0x48, 0x03, 0x49}, // GAX 2.2
}

var gax2InitSigs = [][]byte{
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x81, 0xb0, 0x07, 0x1c, 0x00, 0x26, 0x0e, 0x48, 0x39, 0x68}, // GAX 3
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x81, 0xb0, 0x07, 0x1c, 0x00, 0x22, 0x0e, 0x48, 0x39, 0x68}, // GAX 3.05-ND
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x86, 0xb0, 0x07, 0x1c, 0x00, 0x20, 0x05, 0x90, 0x3a, 0x68}, // GAX 2.3
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x84, 0xb0, 0x07, 0x1c, 0x00, 0x20, 0x82, 0x46, 0x3c, 0x68}, // GAX 2.2
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x84, 0xb0, 0x07, 0x1c, 0x00, 0x20, 0x81, 0x46, 0x3b, 0x68}, // GAX 2.1
	{0xf0, 0xb5, 0x57, 0x46, 0x4e, 0x46, 0x45, 0x46, 0xe0, 0xb4, 0x83, 0xb0, 0x07, 0x1c, 0x00, 0x20, 0x81, 0x46, 0x3b, 0x68}, // GAX 2.02
}

var gaxIrqSigs = [][]byte{
	{0xf0, 0xb5, 0x3b, 0x48, 0x02, 0x68, 0x11, 0x68, 0x3a, 0x48, 0x81, 0x42, 0x6d, 0xd1, 0x50, 0x6d, 0x00, 0x28, 0x6a, 0xd0, 0x50, 0x6d, 0x01, 0x28, 0x1a, 0xd1, 0x02, 0x20, 0x50, 0x65, 0x36, 0x49}, // GAX 3
	{0xf0, 0xb5, 0x33, 0x48, 0x03, 0x68, 0x1a, 0x68, 0x32, 0x49, 0x07, 0x1c, 0x8a, 0x42, 0x5b, 0xd1, 0x58, 0x6d, 0x00, 0x28, 0x58, 0xd0, 0x58, 0x6d, 0x01, 0x28, 0x1a, 0xd1, 0x02, 0x20, 0x58, 0x65}, // GAX 3.05-ND
	{0xf0, 0xb5, 0x3f, 0x48, 0x02, 0x68, 0x11, 0x68, 0x3e, 0x48, 0x81, 0x42, 0x75, 0xd1, 0x90, 0x6b, 0x00, 0x28, 0x72, 0xd0, 0x90, 0x6b, 0x01, 0x28, 0x1a, 0xd1, 0x3b, 0x49, 0x80, 0x20, 0x08, 0x80}, // GAX 2.2 and 2.3
	{0x10, 0xb5, 0x27, 0x4c, 0x23, 0x68, 0x19, 0x68, 0x26, 0x48, 0x81, 0x42, 0x44, 0xd1, 0x18, 0x6b, 0x00, 0x28, 0x41, 0xd0, 0x18, 0x6b, 0x01, 0x28, 0x10, 0xd1, 0x23, 0x49, 0x80, 0x20, 0x08, 0x80}, // GAX 2.1
	{0x10, 0xb5, 0x25, 0x4c, 0x23, 0x68, 0x19, 0x68, 0x24, 0x48, 0x81, 0x42, 0x40, 0xd1, 0x18, 0x6b, 0x00, 0x28, 0x3d, 0xd0, 0x18, 0x6b, 0x01, 0x28, 0x10, 0xd1, 0x21, 0x49, 0x80, 0x20, 0x08, 0x80}, // GAX 2.02
}

var gaxPlaySigs = [][]byte{
	{0x70, 0xb5, 0x81, 0xb0, 0x47, 0x48, 0x01, 0x68, 0x48, 0x6d, 0x00, 0x28, 0x00, 0xd1}, // GAX 3
	{0xf0, 0xb5, 0x81, 0xb0, 0x3a, 0x48, 0x01, 0x68, 0x88, 0x6b, 0x00, 0x28, 0x00, 0xd1}, // GAX 2.3
	{0xf0, 0xb5, 0x30, 0x4d, 0x29, 0x68, 0x88, 0x6b, 0x00, 0x28, 0x00, 0xd1, 0xd4, 0xe0}, // GAX 2.2
	{0x70, 0xb5, 0x4c, 0x4e, 0x31, 0x68, 0x08, 0x6b, 0x00, 0x28, 0x00, 0xd1, 0x8e, 0xe0}, // GAX 2.1
}

/*
	scan applies one signature catalog against the image, starting at offset.
	Catalog entries are tried in order; the first entry that matches anywhere
	wins, and the match position is returned as a ROM address. When no entry
	matches, the result is an unset address, which is a valid outcome and not
	an error.
*/
func scan(rom []byte, sigs [][]byte, offset int) agb.Address {

	if offset < 0 || offset >= len(rom) {
		return agb.Address{}
	}

	for _, sig := range sigs {
		if ix := bytes.Index(rom[offset:], sig); ix >= 0 {
			return agb.ROMAddr(uint32(offset + ix))
		}
	}

	return agb.Address{}
}
