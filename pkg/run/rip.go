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

package run

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/gaxrip/gaxrip/pkg/gax"
	"github.com/gaxrip/gaxrip/pkg/gax/agb"
	"github.com/gaxrip/gaxrip/pkg/gsf"
	"github.com/gaxrip/gaxrip/pkg/rom"
	"github.com/gaxrip/gaxrip/pkg/util"
)

// GBA sample rate the engine is typically configured for
const defaultMixingRate = 15769

//
const defaultVolume = 256

//
const defaultWorkSize = 0x8000

//
func NewRip() *Rip {

	r := &Rip{}
	r.Runner = *NewRunner(
		`rip -i|--input {file|url} [-o|--outdir {dir}] [--driver {address}]
      [--work {address}] [--work-size {size}] [--rate {mixing rate}]
      [--volume {volume}]`,
		"rip a GSF set from a ROM image",
		`
Use the rip command to identify the GAX driver in a ROM image, install the
replacement driver, and write a gsflib plus one minigsf per song. The input
can be a local file or an http(s) URL, optionally compressed (gz, zip, 7z).`,
		"", runnerHelpEpilogue, r.Run)

	r.AddBaseSettings()
	r.AddSetting(&r.Input, "input", "i", "", nil, "ROM image file or URL", true)
	r.AddSetting(&r.OutDir, "outdir", "o", "", ".", "output directory", false)
	r.AddSetting(&r.Driver, "driver", "", "", uint32(0),
		"ROM address for the driver block; 0 appends it to the image", false)
	r.AddSetting(&r.Work, "work", "", "", uint32(0),
		"RAM address for the driver work area; 0 picks one", false)
	r.AddSetting(&r.WorkSize, "work-size", "", "", uint32(defaultWorkSize),
		"work area size in bytes (version 2 engines only)", false)
	r.AddSetting(&r.Rate, "rate", "", "", defaultMixingRate,
		"mixing rate in Hz", false)
	r.AddSetting(&r.Volume, "volume", "", "", defaultVolume,
		"playback volume", false)

	return r
}

//
type Rip struct {
	Runner
	//
	Input    string
	OutDir   string
	Driver   uint32
	Work     uint32
	WorkSize uint32
	Rate     int
	Volume   int
}

//
func (r *Rip) Run() error {

	r.ParseSettings()

	image, name, err := rom.Load(r.Input)
	if err != nil {
		return err
	}

	param := gax.Inspect(image)
	if !param.Ok() {
		return &gax.IncompleteIdentificationError{Param: param}
	}

	log.WithFields(log.Fields{
		"name":    name,
		"version": param.Version,
		"songs":   len(param.Songs)}).Info("driver identified")

	var driver agb.Address
	if r.Driver != 0 {
		driver = agb.Ptr(r.Driver)
	} else {
		// append the driver block plus the parameter record, word aligned
		grow := (4 - len(image)%4) % 4
		driver = agb.ROMAddr(uint32(len(image) + grow))
		grow += gax.GsfDriverSize(param.Version) + gax.MinigsfParamSize
		image = append(image, make([]byte, grow)...)
	}

	var work agb.Address
	if r.Work != 0 {
		work = agb.Ptr(r.Work)
	}

	if err := gax.InstallGsfDriver(
		image, driver, work, r.WorkSize, param); err != nil {
		return err
	}

	if err := os.MkdirAll(r.OutDir, 0755); err != nil {
		return err
	}

	lib := fmt.Sprintf("%s.gsflib", name)
	tags := map[string]string{
		"game":  name,
		"gsfby": fmt.Sprintf("GaxRip %s", util.GaxRipVersion),
	}

	if err := gsf.WriteFile(
		filepath.Join(r.OutDir, lib),
		gsf.NewProgram(gsf.EntryPoint, gsf.EntryPoint, image), tags); err != nil {
		return err
	}

	offset, err := driver.Offset()
	if err != nil {
		return err
	}
	paramAddr := gsf.EntryPoint + offset +
		uint32(gax.GsfDriverParamOffset(param.Version))

	for ix, song := range param.Songs {

		data, err := gax.NewMinigsfData(gax.MinigsfParams{
			Song:       song.Address,
			MixingRate: uint16(r.Rate),
			Volume:     uint16(r.Volume),
		})
		if err != nil {
			return err
		}

		songTags := map[string]string{
			"_lib":  lib,
			"game":  name,
			"gsfby": tags["gsfby"],
		}
		if song.Info.Name != "" {
			songTags["title"] = song.Info.Name
		}
		if song.Info.Artist != "" {
			songTags["artist"] = song.Info.Artist
		}

		out := filepath.Join(r.OutDir,
			fmt.Sprintf("%s-%03d.minigsf", name, ix+1))
		if err := gsf.WriteFile(out,
			gsf.NewProgram(gsf.EntryPoint, paramAddr, data), songTags); err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"file": out, "song": song.Address}).Debug("minigsf written")
	}

	fmt.Printf("\nripped %d song(s) from %s into %s\n",
		len(param.Songs), name, r.OutDir)
	return nil
}
