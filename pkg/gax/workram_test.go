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
	"testing"

	"github.com/gaxrip/gaxrip/pkg/gax/agb"
)

//
func TestFindWorkRAMPointerV3(t *testing.T) {

	play := agb.ROMAddr(0x40)

	tests := []struct {
		name string
		ptr  uint32
		want agb.Address
	}{
		{"iwram", 0x03001234, agb.Ptr(0x03001234)},
		{"ewram", 0x02004000, agb.Ptr(0x02004000)},
		{"rom pointer rejected", 0x08001234, agb.Address{}},
		{"null rejected", 0, agb.Address{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			rom := make([]byte, 0x400)
			binary.LittleEndian.PutUint32(rom[0x40+0x124:], tc.ptr)

			got := findWorkRAMPointer(rom, NewVersion(3, 5), play)
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

//
func TestFindWorkRAMPointerV2(t *testing.T) {

	// the byte at play+2 selects the pointer field offset
	tests := []struct {
		name     string
		selector byte
		field    uint32
	}{
		{"layout 0x30", 0x30, 0xc4},
		{"layout 0x4c", 0x4c, 0x134},
		{"common layout", 0x00, 0xf0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			rom := make([]byte, 0x400)
			rom[0x40+2] = tc.selector
			binary.LittleEndian.PutUint32(rom[0x40+tc.field:], 0x03002000)

			got := findWorkRAMPointer(rom, NewVersion(2, 2), agb.ROMAddr(0x40))
			if got.Value() != 0x03002000 {
				t.Errorf("got %s, want 0x03002000", got)
			}
		})
	}
}

//
func TestFindWorkRAMPointerBounds(t *testing.T) {

	// play so close to the image end that the field cannot be read
	rom := make([]byte, 0x100)

	if got := findWorkRAMPointer(
		rom, NewVersion(3, 5), agb.ROMAddr(0x80)); got.Set() {
		t.Errorf("v3: got %s near image end", got)
	}
	if got := findWorkRAMPointer(
		rom, NewVersion(2, 2), agb.ROMAddr(0x80)); got.Set() {
		t.Errorf("v2: got %s near image end", got)
	}
}

//
func TestFindWorkRAMPointerUnsetPlay(t *testing.T) {

	rom := make([]byte, 0x400)

	if got := findWorkRAMPointer(
		rom, NewVersion(3, 5), agb.Address{}); got.Set() {
		t.Errorf("got %s without a play entry point", got)
	}
	if got := findWorkRAMPointer(
		rom, NewVersion(2, 2), agb.Address{}); got.Set() {
		t.Errorf("got %s without a play entry point", got)
	}
}
