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

/*
	The two prebuilt driver blocks. Each is installed verbatim and then gets
	its literal pool patched with the addresses discovered for the concrete
	image; the offset constants below are the wire contract between
	identification and installation.

	Address fields are written little endian with the low bit forced to 1
	(Thumb call convention). The work RAM address, and for version 2 the
	work area size, are data and written verbatim.
*/

// patch field offsets, version 3 block
const (
	gaxMyWorkRAMOffsetV3   = 0x88
	gax2EstimateOffsetV3   = 0x8c
	gax2NewOffsetV3        = 0x90
	gax2InitOffsetV3       = 0x94
	gaxIrqOffsetV3         = 0x98
	gaxPlayOffsetV3        = 0x9c
	gax2ParamFxImmOffsetV3 = 0x26
)

// patch field offsets, version 2 block
const (
	gax2NewOffsetV2        = 0x80
	gax2InitOffsetV2       = 0x84
	gaxIrqOffsetV2         = 0x88
	gaxPlayOffsetV2        = 0x8c
	gaxMyWorkRAMOffsetV2   = 0x90
	gaxMyWorkRAMSizeOffsetV2 = 0x94
)

// version 3 driver block: ARM reset shim, Thumb driver loop, literal pool
var gax3DriverBlock = []byte{
	// ARM: set up IRQ and system mode stacks, switch to Thumb
	0x12, 0x00, 0xa0, 0xe3, 0x00, 0xf0, 0x29, 0xe1,
	0x64, 0xd0, 0x9f, 0xe5, 0x1f, 0x00, 0xa0, 0xe3,
	0x00, 0xf0, 0x29, 0xe1, 0x5c, 0xd0, 0x9f, 0xe5,
	0x01, 0x00, 0x8f, 0xe2, 0x10, 0xff, 0x2f, 0xe1,
	// Thumb: gax2_new + gax2_init with the minigsf parameters
	0x00, 0xb5, 0x14, 0x48, 0x00, 0x68, 0x30, 0x21,
	0x13, 0x4a, 0x13, 0x4b, 0x98, 0x47, 0x11, 0x48,
	0x0f, 0x49, 0x88, 0x47, 0x10, 0x48, 0x0e, 0x49,
	0x88, 0x47, 0x04, 0x20, 0x03, 0x21, 0x08, 0x43,
	0x0c, 0x4a, 0x10, 0x60, 0x0c, 0x48, 0x0c, 0x49,
	0x08, 0x60, 0x01, 0x20, 0x0b, 0x4a, 0x10, 0x80,
	// Thumb: VBlank loop, gax_irq + gax_play each frame
	0x00, 0x20, 0x40, 0x21, 0x09, 0x06, 0x08, 0x60,
	0x09, 0x48, 0x80, 0x47, 0x09, 0x48, 0x80, 0x47,
	0x70, 0x46, 0x00, 0xf0, 0x02, 0xf8, 0xf4, 0xe7,
	0x30, 0xbf, 0x70, 0x47, 0xc0, 0x46, 0xc0, 0x46,
	0x03, 0x49, 0x0a, 0x88, 0x01, 0x32, 0x0a, 0x80,
	0x70, 0x47, 0xc0, 0x46, 0x02, 0x02, 0x00, 0x04,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	// literal pool, patched on install
	0x00, 0x00, 0x00, 0x03, // my work RAM
	0x00, 0x00, 0x00, 0x00, // gax2_estimate
	0x00, 0x00, 0x00, 0x00, // gax2_new
	0x00, 0x00, 0x00, 0x00, // gax2_init
	0x00, 0x00, 0x00, 0x00, // gax_irq
	0x00, 0x00, 0x00, 0x00, // gax_play
	0xfc, 0x7f, 0x00, 0x03, // system stack top
	0xa0, 0x7f, 0x00, 0x03, // irq stack top
}

// version 2 driver block
var gax2DriverBlock = []byte{
	// ARM: set up IRQ and system mode stacks, switch to Thumb
	0x12, 0x00, 0xa0, 0xe3, 0x00, 0xf0, 0x29, 0xe1,
	0x74, 0xd0, 0x9f, 0xe5, 0x1f, 0x00, 0xa0, 0xe3,
	0x00, 0xf0, 0x29, 0xe1, 0x6c, 0xd0, 0x9f, 0xe5,
	0x01, 0x00, 0x8f, 0xe2, 0x10, 0xff, 0x2f, 0xe1,
	// Thumb: gax2_new + gax2_init with the minigsf parameters
	0x00, 0xb5, 0x12, 0x48, 0x00, 0x68, 0x11, 0x49,
	0x12, 0x4a, 0x90, 0x47, 0x10, 0x48, 0x0e, 0x49,
	0x88, 0x47, 0x0f, 0x48, 0x0d, 0x49, 0x88, 0x47,
	0x04, 0x20, 0x03, 0x21, 0x08, 0x43, 0x0b, 0x4a,
	0x10, 0x60, 0x0b, 0x48, 0x0b, 0x49, 0x08, 0x60,
	0x01, 0x20, 0x0a, 0x4a, 0x10, 0x80, 0xc0, 0x46,
	// Thumb: VBlank loop, gax_irq + gax_play each frame
	0x00, 0x20, 0x40, 0x21, 0x09, 0x06, 0x08, 0x60,
	0x07, 0x48, 0x80, 0x47, 0x07, 0x48, 0x80, 0x47,
	0x70, 0x46, 0x00, 0xf0, 0x02, 0xf8, 0xf6, 0xe7,
	0x30, 0xbf, 0x70, 0x47, 0xc0, 0x46, 0xc0, 0x46,
	0x03, 0x49, 0x0a, 0x88, 0x01, 0x32, 0x0a, 0x80,
	0x70, 0x47, 0xc0, 0x46, 0x02, 0x02, 0x00, 0x04,
	// literal pool, patched on install
	0x00, 0x00, 0x00, 0x00, // gax2_new
	0x00, 0x00, 0x00, 0x00, // gax2_init
	0x00, 0x00, 0x00, 0x00, // gax_irq
	0x00, 0x00, 0x00, 0x00, // gax_play
	0x00, 0x00, 0x00, 0x03, // my work RAM
	0x00, 0x20, 0x00, 0x00, // my work RAM size
}

//
func gsfDriverBlock(version Version) []byte {
	if version.Major == 3 {
		return gax3DriverBlock
	}
	return gax2DriverBlock
}

// GsfDriverSize returns the installed size of the driver block for the
// given engine version.
func GsfDriverSize(version Version) int {
	return len(gsfDriverBlock(version))
}

// GsfDriverParamOffset returns where, relative to the driver block start,
// the minigsf parameter record is loaded at playback time. The record sits
// directly behind the block.
func GsfDriverParamOffset(version Version) int {
	return GsfDriverSize(version)
}
