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

// syntheticV3Image lays out a minimal image the way a GAX 3 build does:
// identification text, then the entry point functions in catalog order,
// with the work RAM literal inside the play function.
func syntheticV3Image() []byte {

	rom := make([]byte, 0x1000)

	copy(rom[0x10:], "GAX Sound Engine v3.05 \xa9 Shin'en Multimedia\x00")

	copy(rom[0x100:], gax2EstimateSigs[0])
	copy(rom[0x200:], gax2NewSigs[0])
	copy(rom[0x300:], gax2InitSigs[0])
	copy(rom[0x400:], gaxIrqSigs[0])
	copy(rom[0x500:], gaxPlaySigs[0])

	binary.LittleEndian.PutUint32(rom[0x500+0x124:], 0x03002000)

	return rom
}

//
func TestInspect(t *testing.T) {

	p := Inspect(syntheticV3Image())

	if !p.Ok() {
		t.Fatal("identification incomplete")
	}

	if p.VersionText != "GAX Sound Engine v3.05" {
		t.Errorf("version text: got %q", p.VersionText)
	}
	if p.Version != NewVersion(3, 5) {
		t.Errorf("version: got %s", p.Version)
	}

	if p.Estimate.Value() != 0x08000100 {
		t.Errorf("estimate: got %s", p.Estimate)
	}
	if p.New.Value() != 0x08000200 {
		t.Errorf("new: got %s", p.New)
	}
	if p.Init.Value() != 0x08000300 {
		t.Errorf("init: got %s", p.Init)
	}
	if p.Irq.Value() != 0x08000400 {
		t.Errorf("irq: got %s", p.Irq)
	}
	if p.Play.Value() != 0x08000500 {
		t.Errorf("play: got %s", p.Play)
	}
	if p.WorkRAM.Value() != 0x03002000 {
		t.Errorf("work RAM: got %s", p.WorkRAM)
	}
}

// a foreign image identifies as nothing at all, without errors
func TestInspectForeignImage(t *testing.T) {

	rom := make([]byte, 0x1000)
	for i := range rom {
		rom[i] = byte(i * 7)
	}

	p := Inspect(rom)

	if p.Ok() {
		t.Error("foreign image identified as complete")
	}
	if p.VersionText != "" {
		t.Errorf("version text: got %q", p.VersionText)
	}
	if p.Estimate.Set() || p.New.Set() || p.Init.Set() ||
		p.Irq.Set() || p.Play.Set() || p.WorkRAM.Set() {
		t.Error("entry points found in a foreign image")
	}
	if len(p.Songs) != 0 {
		t.Errorf("got %d songs", len(p.Songs))
	}
}

// inspection plus installation, end to end
func TestInspectAndInstall(t *testing.T) {

	rom := syntheticV3Image()
	p := Inspect(rom)
	end := agb.ROMAddr(uint32(len(rom)))

	if err := InstallGsfDriver(rom, end, agb.Address{}, 0, p); err == nil {
		t.Fatal("expected out of range error at the image end")
	}

	grown := append(rom, make([]byte, GsfDriverSize(p.Version))...)
	if err := InstallGsfDriver(grown, end, agb.Address{}, 0, p); err != nil {
		t.Fatalf("install failed: %v", err)
	}

	// the discovered work pointer sits below the collision bound, so the
	// work area shifts past it
	if got := binary.LittleEndian.Uint32(
		grown[0x1000+0x88:]); got != 0x03002004 {
		t.Errorf("work field: got 0x%08x", got)
	}
}
