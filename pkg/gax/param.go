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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gaxrip/gaxrip/pkg/gax/agb"
)

/*
	DriverParam aggregates everything the identification pass discovered
	about one image. It is built once by Inspect and not modified after
	that; the installer and the diagnostics both consume it.

	Estimate, WorkRAM and the song list are informative. Ok only requires
	the version and the four entry points the replacement driver calls.
*/
type DriverParam struct {
	VersionText string
	Version     Version
	Estimate    agb.Address
	New         agb.Address
	Init        agb.Address
	Irq         agb.Address
	Play        agb.Address
	WorkRAM     agb.Address
	Songs       []MusicEntry
}

//
func (p *DriverParam) Ok() bool {
	return p.Version.Ok() &&
		p.New.Set() && p.Init.Set() && p.Irq.Set() && p.Play.Set()
}

// WriteAsTable renders the discovered values for diagnostics.
func (p *DriverParam) WriteAsTable(w io.Writer) {

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Name\tAddress / Value\n")
	fmt.Fprintf(tw, "----\t---------------\n")
	fmt.Fprintf(tw, "version text\t%s\n", p.VersionText)
	fmt.Fprintf(tw, "version\t%s\n", p.Version)
	fmt.Fprintf(tw, "gax2_estimate\t%s\n", p.Estimate)
	fmt.Fprintf(tw, "gax2_new\t%s\n", p.New)
	fmt.Fprintf(tw, "gax2_init\t%s\n", p.Init)
	fmt.Fprintf(tw, "gax_irq\t%s\n", p.Irq)
	fmt.Fprintf(tw, "gax_play\t%s\n", p.Play)
	fmt.Fprintf(tw, "gax work RAM\t%s\n", p.WorkRAM)
	fmt.Fprintf(tw, "songs\t%d\n", len(p.Songs))
}

// WriteSongsAsTable renders the discovered song list for diagnostics.
func WriteSongsAsTable(w io.Writer, songs []MusicEntry) {

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Name\tArtist\tFull Name\tAddress\n")
	fmt.Fprintf(tw, "----\t------\t---------\t-------\n")
	for _, s := range songs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			s.Info.Name, s.Info.Artist, s.Info.Raw, s.Address)
	}
}
