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
	"testing"
)

//
func TestDomain(t *testing.T) {

	tests := []struct {
		name string
		addr Address
		want Domain
	}{
		{"unset", Address{}, DomainInvalid},
		{"rom base", Ptr(0x08000000), DomainROM},
		{"rom middle", Ptr(0x08123456), DomainROM},
		{"rom mirror end", Ptr(0x09ffffff), DomainROM},
		{"iwram base", Ptr(0x03000000), DomainIWRAM},
		{"iwram middle", Ptr(0x03004b00), DomainIWRAM},
		{"ewram base", Ptr(0x02000000), DomainEWRAM},
		{"ewram middle", Ptr(0x02030000), DomainEWRAM},
		{"null", Ptr(0x00000000), DomainInvalid},
		{"bios", Ptr(0x00003000), DomainInvalid},
		{"io", Ptr(0x04000000), DomainInvalid},
		{"past rom window", Ptr(0x0a000000), DomainInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.addr.Domain(); got != tc.want {
				t.Errorf("domain of %s: got %s, want %s", tc.addr, got, tc.want)
			}
		})
	}
}

//
func TestROMAddrRoundTrip(t *testing.T) {

	for _, offset := range []uint32{0, 4, 0x100, 0x00ffffff, 0x01fffffc} {

		a := ROMAddr(offset)
		if !a.IsROM() {
			t.Fatalf("ROMAddr(0x%x) not in ROM domain", offset)
		}

		got, err := a.Offset()
		if err != nil {
			t.Fatalf("offset of %s: %v", a, err)
		}
		if got != offset {
			t.Errorf("round trip of 0x%x: got 0x%x", offset, got)
		}
	}
}

//
func TestOffsetRejectsRAM(t *testing.T) {

	for _, a := range []Address{{}, Ptr(0x03000100), Ptr(0x02000100), Ptr(0)} {
		if _, err := a.Offset(); err == nil {
			t.Errorf("offset of %s: expected error", a)
		}
	}
}

//
func TestAddPropagatesUnset(t *testing.T) {

	if got := (Address{}).Add(0x124); got.Set() {
		t.Errorf("adding to unset address yielded %s", got)
	}

	if got := Ptr(0x08000100).Add(0x24); got.Value() != 0x08000124 {
		t.Errorf("add: got %s", got)
	}
}

//
func TestAddressString(t *testing.T) {

	if got := Ptr(0x08000100).String(); got != "0x08000100" {
		t.Errorf("got %q", got)
	}
	if got := (Address{}).String(); got != "----" {
		t.Errorf("got %q", got)
	}
}

//
func TestBranchARM(t *testing.T) {

	tests := []struct {
		name     string
		from, to uint32
		want     uint32
	}{
		{"zero displacement", 0x08000000, 0x08000008, 0xea000000},
		{"one word forward", 0x08000000, 0x0800000c, 0xea000001},
		{"driver block", 0x08000000, 0x08000400, 0xea0000fe},
		{"branch to self", 0x08000000, 0x08000000, 0xeafffffe},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BranchARM(tc.from, tc.to); got != tc.want {
				t.Errorf("branch 0x%08x -> 0x%08x: got 0x%08x, want 0x%08x",
					tc.from, tc.to, got, tc.want)
			}
		})
	}
}
