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

package agb

import (
	"fmt"
)

// Domain identifies the memory window an address falls into, as seen by the
// AGB bus.
type Domain int

const (
	DomainInvalid Domain = iota
	DomainROM
	DomainIWRAM
	DomainEWRAM
)

//
func (d Domain) String() string {
	switch d {
	case DomainROM:
		return "ROM"
	case DomainIWRAM:
		return "IWRAM"
	case DomainEWRAM:
		return "EWRAM"
	}
	return "invalid"
}

// The three window bases partition the 32 bit space. All signature and
// pointer field offsets in the identification code are relative to these.
const (
	ROMBase   uint32 = 0x08000000
	IWRAMBase uint32 = 0x03000000
	EWRAMBase uint32 = 0x02000000

	romMask    uint32 = 0x01ffffff // 32 MB window, cartridge mirror included
	ramMask    uint32 = 0x00ffffff
	romOffsets uint32 = romMask
)

/*
	Address is a 32 bit AGB bus address. The zero value is "unset", which is
	distinct from every valid address, including address 0. Pointers read
	from an image are carried as Address values so that they can be
	classified; only ROM addresses ever convert to image buffer offsets.
*/
type Address struct {
	ptr uint32
	set bool
}

// Ptr wraps a raw bus address.
func Ptr(p uint32) Address {
	return Address{ptr: p, set: true}
}

// ROMAddr converts a linear image buffer offset back to its bus address in
// the ROM window.
func ROMAddr(offset uint32) Address {
	return Ptr(ROMBase + (offset & romOffsets))
}

//
func (a Address) Set() bool {
	return a.set
}

//
func (a Address) Value() uint32 {
	return a.ptr
}

// Add returns the address shifted by delta. Adding to an unset address
// yields an unset address.
func (a Address) Add(delta uint32) Address {
	if !a.set {
		return Address{}
	}
	return Ptr(a.ptr + delta)
}

//
func (a Address) Domain() Domain {
	if !a.set {
		return DomainInvalid
	}
	switch {
	case a.ptr&^romMask == ROMBase:
		return DomainROM
	case a.ptr&^ramMask == IWRAMBase:
		return DomainIWRAM
	case a.ptr&^ramMask == EWRAMBase:
		return DomainEWRAM
	}
	return DomainInvalid
}

//
func (a Address) IsROM() bool {
	return a.Domain() == DomainROM
}

//
func (a Address) IsIWRAM() bool {
	return a.Domain() == DomainIWRAM
}

//
func (a Address) IsEWRAM() bool {
	return a.Domain() == DomainEWRAM
}

// Offset converts a ROM address into the linear image buffer offset. RAM
// addresses are values read from the image, never indexes into it, so they
// do not convert.
func (a Address) Offset() (uint32, error) {
	if !a.IsROM() {
		return 0, fmt.Errorf("not a ROM address: %s", a)
	}
	return a.ptr & romOffsets, nil
}

//
func (a Address) String() string {
	if !a.set {
		return "----"
	}
	return fmt.Sprintf("0x%08X", a.ptr)
}
