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

package control

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gaxrip/gaxrip/pkg/gax"
	"github.com/gaxrip/gaxrip/pkg/rom"
)

// wire representation of an identification; addresses go out formatted,
// so clients need no knowledge of the AGB memory map
type InspectReply struct {
	VersionText string        `json:"versionText"`
	Version     string        `json:"version"`
	Estimate    string        `json:"estimate"`
	New         string        `json:"new"`
	Init        string        `json:"init"`
	Irq         string        `json:"irq"`
	Play        string        `json:"play"`
	WorkRAM     string        `json:"workRam"`
	Complete    bool          `json:"complete"`
	Songs       []InspectSong `json:"songs"`
}

//
type InspectSong struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Artist  string `json:"artist"`
}

// inspect receives a ROM image in the request body, optionally compressed
// as indicated by the compressor query arg, and replies with the driver
// identification. Identification never fails hard here; an incomplete
// result is reported as such.
func (a *api) inspect(w http.ResponseWriter, req *http.Request) {

	in := http.MaxBytesReader(w, req.Body, rom.MaxImageSize)

	rd, err := rom.NewReader(in, getArg(req, "compressor"))
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}
	defer rd.Close()

	image, err := io.ReadAll(rd)
	if handleError(err, http.StatusUnprocessableEntity, w) {
		return
	}

	param := gax.Inspect(image)

	reply := &InspectReply{
		VersionText: param.VersionText,
		Version:     param.Version.String(),
		Estimate:    param.Estimate.String(),
		New:         param.New.String(),
		Init:        param.Init.String(),
		Irq:         param.Irq.String(),
		Play:        param.Play.String(),
		WorkRAM:     param.WorkRAM.String(),
		Complete:    param.Ok(),
	}

	for _, s := range param.Songs {
		reply.Songs = append(reply.Songs, InspectSong{
			Address: s.Address.String(),
			Name:    s.Info.Name,
			Artist:  s.Info.Artist,
		})
	}

	if wantsJSON(req) {
		sendJSONReply(reply, http.StatusOK, w)

	} else {
		var sb strings.Builder
		param.WriteAsTable(&sb)
		sb.WriteString(fmt.Sprintf("\nsongs: %d\n", len(param.Songs)))
		sendReply([]byte(sb.String()), http.StatusOK, w)
	}
}
