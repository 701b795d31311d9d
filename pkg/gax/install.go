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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/gaxrip/gaxrip/pkg/gax/agb"
)

// IWRAM addresses below this bound may clash with the engine's own state
const iwramCollisionBound = 0x03004000

/*
	InstallGsfDriver writes the replacement driver block into the image at
	address and redirects the program entry vector to it. workAddress may be
	unset, in which case a suitable work area is picked. All validation
	happens before the first byte is written: a failed call leaves the image
	byte for byte unchanged.
*/
func InstallGsfDriver(rom []byte, address, workAddress agb.Address,
	workSize uint32, param *DriverParam) error {

	if !address.IsROM() {
		return fmt.Errorf("gsf driver address %s: %w", address, ErrInvalidAddress)
	}

	if !param.Ok() {
		return &IncompleteIdentificationError{Param: param}
	}

	offset, err := address.Offset()
	if err != nil {
		return err
	}

	block := gsfDriverBlock(param.Version)
	if int(offset)+len(block) > len(rom) {
		return fmt.Errorf(
			"gsf driver block of %d bytes at %s: %w",
			len(block), address, ErrOutOfRange)
	}
	if len(rom) < 4 {
		return fmt.Errorf("image too small for an entry vector: %w", ErrOutOfRange)
	}

	work := resolveWorkAddress(workAddress, param.WorkRAM)

	log.WithFields(log.Fields{
		"address": address,
		"work":    work,
		"version": param.Version}).Debug("installing gsf driver")

	// commit phase, no failure past this point
	copy(rom[offset:], block)

	if param.Version.Major == 3 {
		putAddress(rom, offset+gax2EstimateOffsetV3, param.Estimate)
		putAddress(rom, offset+gax2NewOffsetV3, param.New)
		putAddress(rom, offset+gax2InitOffsetV3, param.Init)
		putAddress(rom, offset+gaxIrqOffsetV3, param.Irq)
		putAddress(rom, offset+gaxPlayOffsetV3, param.Play)

		binary.LittleEndian.PutUint32(
			rom[offset+gaxMyWorkRAMOffsetV3:], work.Value())

		// effects parameter layout changed in 3.05
		sfx := byte(0x2c)
		if param.Version.Minor >= 5 {
			sfx = 0x30
		}
		rom[offset+gax2ParamFxImmOffsetV3] = sfx

	} else {
		putAddress(rom, offset+gax2NewOffsetV2, param.New)
		putAddress(rom, offset+gax2InitOffsetV2, param.Init)
		putAddress(rom, offset+gaxIrqOffsetV2, param.Irq)
		putAddress(rom, offset+gaxPlayOffsetV2, param.Play)

		binary.LittleEndian.PutUint32(
			rom[offset+gaxMyWorkRAMOffsetV2:], work.Value())
		binary.LittleEndian.PutUint32(
			rom[offset+gaxMyWorkRAMSizeOffsetV2:], workSize)
	}

	// redirect the program entry vector into the installed block
	binary.LittleEndian.PutUint32(
		rom[0:], agb.BranchARM(agb.ROMBase, address.Value()))

	return nil
}

/*
	resolveWorkAddress picks the effective work area base. Callers that do
	not care get IWRAM. When the engine's own discovered work pointer sits
	in the same low IWRAM bank, the area is shifted to just past that
	pointer. EWRAM would avoid any possible overlap, but its slower access
	can interfere with playback, so the shift stays within IWRAM.
*/
func resolveWorkAddress(work, discovered agb.Address) agb.Address {

	if work.Set() {
		return work
	}

	work = agb.Ptr(agb.IWRAMBase)

	if discovered.Set() && discovered.Value()&^0x00ffffff == agb.IWRAMBase {
		if discovered.Value() < iwramCollisionBound {
			work = discovered.Add(4)
		}
	}

	return work
}

// putAddress writes an entry point address with the Thumb mode bit forced.
func putAddress(rom []byte, offset uint32, a agb.Address) {
	binary.LittleEndian.PutUint32(rom[offset:], a.Value()|1)
}
