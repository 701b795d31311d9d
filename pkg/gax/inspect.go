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
	log "github.com/sirupsen/logrus"
)

/*
	Inspect runs the full identification pass over an image and returns the
	aggregated record. It never fails: whatever could not be located stays
	unset in the record, and callers decide whether that is acceptable.

	The estimate function is scanned from the start of the image. All
	supported releases lay the remaining entry points out after it, so the
	other four catalogs start scanning at the estimate's offset; when the
	estimate itself is missing they fall back to the image start.
*/
func Inspect(rom []byte) *DriverParam {

	p := &DriverParam{}

	p.VersionText = FindVersionText(rom, 0)
	p.Version = ParseVersionText(p.VersionText)

	p.Estimate = scan(rom, gax2EstimateSigs, 0)

	code := 0
	if offset, err := p.Estimate.Offset(); err == nil {
		code = int(offset)
	}

	p.New = scan(rom, gax2NewSigs, code)
	p.Init = scan(rom, gax2InitSigs, code)
	p.Irq = scan(rom, gaxIrqSigs, code)
	p.Play = scan(rom, gaxPlaySigs, code)

	p.WorkRAM = findWorkRAMPointer(rom, p.Version, p.Play)
	p.Songs = ScanSongs(rom, p.Version)

	log.WithFields(log.Fields{
		"version":  p.Version,
		"complete": p.Ok(),
		"songs":    len(p.Songs)}).Debug("inspection finished")

	return p
}
